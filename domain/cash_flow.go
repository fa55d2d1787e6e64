package domain

type CashFlowSummary struct {
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	MonthlyNet float64 `json:"monthly_net"`
	AnnualNet  float64 `json:"annual_net"`
}

type ExpenseShare struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Share  float64 `json:"share_pct"`
}

// ExpenseBreakdown lists the recurring monthly costs and their share of the
// total.
type ExpenseBreakdown struct {
	Items []ExpenseShare `json:"items"`
	Total float64        `json:"total"`
}
