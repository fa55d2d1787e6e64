package domain

type AmortizationEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// LoanSchedule is the month-by-month amortization of a fixed-payment loan.
// ResidualDrift is the floating-point residue folded into the last
// month's principal so that the final balance is exactly zero.
type LoanSchedule struct {
	Principal      float64             `json:"principal"`
	AnnualRate     float64             `json:"annual_rate"`
	TermYears      int                 `json:"term_years"`
	MonthlyPayment float64             `json:"monthly_payment"`
	TotalPaid      float64             `json:"total_paid"`
	TotalInterest  float64             `json:"total_interest"`
	TotalPrincipal float64             `json:"total_principal"`
	ResidualDrift  float64             `json:"residual_drift"`
	Entries        []AmortizationEntry `json:"entries"`
}

// FinalBalance returns the balance after the last payment.
func (s LoanSchedule) FinalBalance() float64 {
	if len(s.Entries) == 0 {
		return s.Principal
	}
	return s.Entries[len(s.Entries)-1].Balance
}
