package domain

// InvestmentInputs holds every figure the calculator needs for one
// evaluation. Amounts are in local currency unless
// AnalysisOptions.InputsInIndexedUnits is set; percentages are 0-100.
type InvestmentInputs struct {
	PropertyValue      float64 `json:"property_value" msgpack:"property_value"`
	DownPaymentPct     float64 `json:"down_payment_pct" msgpack:"down_payment_pct"`
	AnnualInterestRate float64 `json:"annual_interest_rate" msgpack:"annual_interest_rate"`
	LoanTermYears      int     `json:"loan_term_years" msgpack:"loan_term_years"`
	MonthlyRent        float64 `json:"monthly_rent" msgpack:"monthly_rent"`
	CommonExpenses     float64 `json:"common_expenses" msgpack:"common_expenses"`
	RentalInsurance    float64 `json:"rental_insurance" msgpack:"rental_insurance"`
	Maintenance        float64 `json:"maintenance" msgpack:"maintenance"`
	OccupancyPct       float64 `json:"occupancy_pct" msgpack:"occupancy_pct"`
	AppreciationRate   float64 `json:"appreciation_rate" msgpack:"appreciation_rate"`
	UnitGrowthRate     float64 `json:"unit_growth_rate" msgpack:"unit_growth_rate"`
	HorizonYears       int     `json:"horizon_years" msgpack:"horizon_years"`
}

// AnalysisOptions switches the optional parts of an analysis.
type AnalysisOptions struct {
	DualCurrency         bool `json:"dual_currency" msgpack:"dual_currency"`
	IncludeMaintenance   bool `json:"include_maintenance" msgpack:"include_maintenance"`
	InputsInIndexedUnits bool `json:"inputs_in_indexed_units" msgpack:"inputs_in_indexed_units"`
	Explain              bool `json:"explain" msgpack:"explain"`
}

// DefaultAnalysisOptions returns the options used when a caller sends none.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{IncludeMaintenance: true}
}

// DefaultInvestmentInputs mirrors the starting values of the dashboard form.
func DefaultInvestmentInputs() InvestmentInputs {
	return InvestmentInputs{
		PropertyValue:      50_000_000,
		DownPaymentPct:     20,
		AnnualInterestRate: 5.5,
		LoanTermYears:      30,
		MonthlyRent:        300_000,
		CommonExpenses:     50_000,
		RentalInsurance:    15_000,
		Maintenance:        30_000,
		OccupancyPct:       95,
		AppreciationRate:   3,
		UnitGrowthRate:     3,
		HorizonYears:       10,
	}
}
