package service

import "property-investment/domain"

// BuildReport runs the whole engine over one validated input set. Monetary
// inputs must already be in local currency.
func BuildReport(
	inputs domain.InvestmentInputs,
	opts domain.AnalysisOptions,
	unitValue float64,
) (domain.InvestmentReport, error) {
	if err := firstError(ValidateInputs(inputs), checkUnitValue(unitValue)); err != nil {
		return domain.InvestmentReport{}, err
	}

	loanAmount, err := LoanAmount(inputs.PropertyValue, inputs.DownPaymentPct)
	if err != nil {
		return domain.InvestmentReport{}, err
	}
	downPayment, err := DownPaymentAmount(inputs.PropertyValue, inputs.DownPaymentPct)
	if err != nil {
		return domain.InvestmentReport{}, err
	}

	schedule, err := AmortizationSchedule(loanAmount, inputs.AnnualInterestRate, inputs.LoanTermYears)
	if err != nil {
		return domain.InvestmentReport{}, err
	}
	payment := schedule.MonthlyPayment

	cae, err := EffectiveAnnualRate(inputs.AnnualInterestRate, inputs.LoanTermYears)
	if err != nil {
		return domain.InvestmentReport{}, err
	}

	yields, err := buildYields(inputs)
	if err != nil {
		return domain.InvestmentReport{}, err
	}

	maintenance := 0.0
	if opts.IncludeMaintenance {
		maintenance = inputs.Maintenance
	}
	cashFlow, err := MonthlyCashFlow(
		inputs.MonthlyRent, inputs.OccupancyPct, payment,
		inputs.CommonExpenses, inputs.RentalInsurance, maintenance,
	)
	if err != nil {
		return domain.InvestmentReport{}, err
	}

	projection, err := ProjectedValue(inputs.PropertyValue, inputs.AppreciationRate, inputs.HorizonYears)
	if err != nil {
		return domain.InvestmentReport{}, err
	}

	report := domain.InvestmentReport{
		Inputs:            inputs,
		Options:           opts,
		IndexedUnitValue:  unitValue,
		LoanAmount:        roundTo2Decimals(loanAmount),
		DownPaymentAmount: roundTo2Decimals(downPayment),
		MonthlyPayment:    roundTo2Decimals(payment),
		EffectiveRate:     roundTo2Decimals(cae),
		EffectiveRent:     roundTo2Decimals(inputs.MonthlyRent * inputs.OccupancyPct / 100),
		TotalMonthlyRent:  roundTo2Decimals(inputs.MonthlyRent + inputs.CommonExpenses + inputs.RentalInsurance),
		Yields:            yields,
		CashFlow: domain.CashFlowSummary{
			Income:     roundTo2Decimals(cashFlow.Income),
			Expenses:   roundTo2Decimals(cashFlow.Expenses),
			MonthlyNet: roundTo2Decimals(cashFlow.MonthlyNet),
			AnnualNet:  roundTo2Decimals(cashFlow.AnnualNet),
		},
		Expenses:     ExpenseShares(payment, inputs.CommonExpenses, inputs.RentalInsurance, inputs.Maintenance, opts.IncludeMaintenance),
		Schedule:     schedule,
		Projection:   projection,
		Appreciation: Appreciation(projection, CurrencyLocal),
	}

	if opts.DualCurrency {
		dual, err := DualCurrencyProjection(
			inputs.PropertyValue, inputs.AppreciationRate, inputs.UnitGrowthRate,
			inputs.HorizonYears, unitValue,
		)
		if err != nil {
			return domain.InvestmentReport{}, err
		}
		report.DualProjection = &dual
		report.Appreciation = Appreciation(dual.Indexed, CurrencyIndexed)
	}

	return report, nil
}

func buildYields(inputs domain.InvestmentInputs) (domain.Yields, error) {
	gross, err := GrossYield(inputs.PropertyValue, inputs.MonthlyRent)
	if err != nil {
		return domain.Yields{}, err
	}
	net, err := NetYield(inputs.PropertyValue, inputs.MonthlyRent, inputs.OccupancyPct)
	if err != nil {
		return domain.Yields{}, err
	}

	yields := domain.Yields{
		GrossCapRate: roundTo2Decimals(gross),
		NetCapRate:   roundTo2Decimals(net),
	}

	// Sin pie no hay base para la rentabilidad sobre el pie.
	if inputs.DownPaymentPct > 0 {
		dp, err := DownPaymentYield(
			inputs.PropertyValue, inputs.DownPaymentPct, inputs.MonthlyRent,
			inputs.CommonExpenses, inputs.RentalInsurance, inputs.OccupancyPct,
		)
		if err != nil {
			return domain.Yields{}, err
		}
		dp = roundTo2Decimals(dp)
		yields.DownPaymentYield = &dp
	}
	return yields, nil
}
