package domain

type ProjectionPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// ProjectionSeries holds one value per year, year 0 being the initial value.
type ProjectionSeries []ProjectionPoint

// Values returns the bare values in year order.
func (p ProjectionSeries) Values() []float64 {
	values := make([]float64, len(p))
	for i, point := range p {
		values[i] = point.Value
	}
	return values
}

// Final returns the last projected value, or 0 for an empty series.
func (p ProjectionSeries) Final() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Value
}

// DualProjection carries the same property valued in local currency and in
// the indexed unit.
type DualProjection struct {
	Local     ProjectionSeries `json:"local"`
	Indexed   ProjectionSeries `json:"indexed"`
	UnitValue float64          `json:"unit_value"`
}

type AppreciationSummary struct {
	Initial  float64 `json:"initial"`
	Final    float64 `json:"final"`
	Gain     float64 `json:"gain"`
	GainPct  float64 `json:"gain_pct"`
	Currency string  `json:"currency"`
}
