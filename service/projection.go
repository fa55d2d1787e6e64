package service

import (
	"math"

	"property-investment/domain"
)

// ProjectedValue compounds the initial value once per year, year 0 included.
func ProjectedValue(initial, appreciationRate float64, horizonYears int) (domain.ProjectionSeries, error) {
	if err := firstError(
		checkAmount("initial_value", initial),
		checkRate("appreciation_rate", appreciationRate),
		checkHorizon("horizon_years", horizonYears),
	); err != nil {
		return nil, err
	}

	series := make(domain.ProjectionSeries, horizonYears+1)
	for year := 0; year <= horizonYears; year++ {
		series[year] = domain.ProjectionPoint{
			Year:  year,
			Value: initial * math.Pow(1+appreciationRate/100, float64(year)),
		}
	}
	return series, nil
}

// DualCurrencyProjection values the property in local currency and in the
// indexed unit. The local series grows by appreciation and unit growth
// together; the indexed series, starting at initialLocal/unitValue, grows
// by appreciation alone.
func DualCurrencyProjection(
	initialLocal float64,
	appreciationRate float64,
	unitGrowthRate float64,
	horizonYears int,
	unitValue float64,
) (domain.DualProjection, error) {
	if err := firstError(
		checkAmount("initial_value", initialLocal),
		checkRate("appreciation_rate", appreciationRate),
		checkRate("unit_growth_rate", unitGrowthRate),
		checkHorizon("horizon_years", horizonYears),
	); err != nil {
		return domain.DualProjection{}, err
	}
	indexed, err := ToIndexedUnit(initialLocal, unitValue)
	if err != nil {
		return domain.DualProjection{}, err
	}

	localSeries := make(domain.ProjectionSeries, 0, horizonYears+1)
	indexedSeries := make(domain.ProjectionSeries, 0, horizonYears+1)

	local := initialLocal
	for year := 0; year <= horizonYears; year++ {
		localSeries = append(localSeries, domain.ProjectionPoint{Year: year, Value: local})
		indexedSeries = append(indexedSeries, domain.ProjectionPoint{Year: year, Value: indexed})

		local *= (1 + appreciationRate/100) * (1 + unitGrowthRate/100)
		indexed *= 1 + appreciationRate/100
	}
	if err := checkResult("unit_value", unitValue, indexedSeries.Final()); err != nil {
		return domain.DualProjection{}, err
	}

	return domain.DualProjection{
		Local:     localSeries,
		Indexed:   indexedSeries,
		UnitValue: unitValue,
	}, nil
}

// Appreciation summarises the gain between the first and last point.
func Appreciation(series domain.ProjectionSeries, currency string) domain.AppreciationSummary {
	if len(series) == 0 {
		return domain.AppreciationSummary{Currency: currency}
	}
	initial := series[0].Value
	final := series.Final()

	summary := domain.AppreciationSummary{
		Initial:  initial,
		Final:    final,
		Gain:     final - initial,
		Currency: currency,
	}
	if initial != 0 {
		summary.GainPct = (final/initial - 1) * 100
	}
	return summary
}
