package domain

type Yields struct {
	GrossCapRate     float64  `json:"gross_cap_rate"`
	NetCapRate       float64  `json:"net_cap_rate"`
	DownPaymentYield *float64 `json:"down_payment_yield,omitempty"` // nil sin pie
}

// InvestmentReport is the full set of metrics produced for one set of
// inputs. It is rebuilt from scratch on every analysis.
type InvestmentReport struct {
	Inputs            InvestmentInputs    `json:"inputs"`
	Options           AnalysisOptions     `json:"options"`
	Fingerprint       string              `json:"fingerprint"`
	IndexedUnitValue  float64             `json:"indexed_unit_value"`
	LoanAmount        float64             `json:"loan_amount"`
	DownPaymentAmount float64             `json:"down_payment_amount"`
	MonthlyPayment    float64             `json:"monthly_payment"`
	EffectiveRate     float64             `json:"effective_annual_rate"`
	EffectiveRent     float64             `json:"effective_rent"`
	TotalMonthlyRent  float64             `json:"total_monthly_rent"`
	Yields            Yields              `json:"yields"`
	CashFlow          CashFlowSummary     `json:"cash_flow"`
	Expenses          ExpenseBreakdown    `json:"expenses"`
	Schedule          LoanSchedule        `json:"schedule"`
	Projection        ProjectionSeries    `json:"projection"`
	DualProjection    *DualProjection     `json:"dual_projection,omitempty"`
	Appreciation      AppreciationSummary `json:"appreciation"`
	Explanation       string              `json:"explanation,omitempty"`
}
