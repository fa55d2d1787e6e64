package domain

type TermComparisonInput struct {
	Inputs            InvestmentInputs `json:"inputs"`
	MinTermYears      int              `json:"min_term_years"`
	MaxTermYears      int              `json:"max_term_years"`
	MaxMonthlyPayment float64          `json:"max_monthly_payment"` // 0 = sin límite
	Preference        string           `json:"preference"`          // "minimize_interest", "maximize_cash_flow", "balanced"
	Options           AnalysisOptions  `json:"options"`             // solo IncludeMaintenance afecta la comparación
}

type TermOption struct {
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	MonthlyNet     float64 `json:"monthly_net"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermComparisonResult struct {
	RecommendedTerm int          `json:"recommended_term"`
	Options         []TermOption `json:"options"`
}
