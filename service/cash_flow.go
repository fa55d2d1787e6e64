package service

import (
	"gonum.org/v1/gonum/floats"

	"property-investment/domain"
)

// MonthlyCashFlow nets occupied rent against every recurring cost.
func MonthlyCashFlow(
	monthlyRent float64,
	occupancyPct float64,
	payment float64,
	commonExpenses float64,
	insurance float64,
	maintenance float64,
) (domain.CashFlowSummary, error) {
	if err := firstError(
		checkAmount("monthly_rent", monthlyRent),
		checkPercent("occupancy_pct", occupancyPct),
		checkAmount("monthly_payment", payment),
		checkAmount("common_expenses", commonExpenses),
		checkAmount("rental_insurance", insurance),
		checkAmount("maintenance", maintenance),
	); err != nil {
		return domain.CashFlowSummary{}, err
	}

	income := monthlyRent * occupancyPct / 100
	expenses := payment + commonExpenses + insurance + maintenance
	net := income - expenses

	return domain.CashFlowSummary{
		Income:     income,
		Expenses:   expenses,
		MonthlyNet: net,
		AnnualNet:  net * MonthsPerYear,
	}, nil
}

// ExpenseShares splits the monthly costs into their share of the total.
// Maintenance is left out when includeMaintenance is false.
func ExpenseShares(
	payment float64,
	commonExpenses float64,
	insurance float64,
	maintenance float64,
	includeMaintenance bool,
) domain.ExpenseBreakdown {
	items := []domain.ExpenseShare{
		{Name: "loan_payment", Amount: payment},
		{Name: "common_expenses", Amount: commonExpenses},
		{Name: "rental_insurance", Amount: insurance},
	}
	if includeMaintenance {
		items = append(items, domain.ExpenseShare{Name: "maintenance", Amount: maintenance})
	}

	amounts := make([]float64, len(items))
	for i, item := range items {
		amounts[i] = item.Amount
	}
	total := floats.Sum(amounts)

	if total > 0 {
		for i := range items {
			items[i].Share = items[i].Amount / total * 100
		}
	}

	return domain.ExpenseBreakdown{Items: items, Total: total}
}
