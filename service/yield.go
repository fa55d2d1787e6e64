package service

import "property-investment/domain"

// GrossYield is the gross CAP rate: a full year of rent over the property
// value, in percent.
func GrossYield(propertyValue, monthlyRent float64) (float64, error) {
	if err := firstError(
		checkPositiveAmount("property_value", propertyValue),
		checkAmount("monthly_rent", monthlyRent),
	); err != nil {
		return 0, err
	}
	gross := monthlyRent * MonthsPerYear / propertyValue * 100
	if err := checkResult("property_value", propertyValue, gross); err != nil {
		return 0, err
	}
	return gross, nil
}

// NetYield is GrossYield scaled by occupancy.
func NetYield(propertyValue, monthlyRent, occupancyPct float64) (float64, error) {
	if err := checkPercent("occupancy_pct", occupancyPct); err != nil {
		return 0, err
	}
	gross, err := GrossYield(propertyValue, monthlyRent)
	if err != nil {
		return 0, err
	}
	return gross * occupancyPct / 100, nil
}

// DownPaymentYield relates the occupied net rent (rent minus common
// expenses and insurance) to the cash put down, not to the full value.
func DownPaymentYield(
	propertyValue float64,
	downPaymentPct float64,
	monthlyRent float64,
	commonExpenses float64,
	insurance float64,
	occupancyPct float64,
) (float64, error) {
	if err := firstError(
		checkPositiveAmount("property_value", propertyValue),
		checkPercent("down_payment_pct", downPaymentPct),
		checkAmount("monthly_rent", monthlyRent),
		checkAmount("common_expenses", commonExpenses),
		checkAmount("rental_insurance", insurance),
		checkPercent("occupancy_pct", occupancyPct),
	); err != nil {
		return 0, err
	}
	if downPaymentPct == 0 {
		return 0, domain.NewInvalidInput("down_payment_pct", downPaymentPct, "debe ser mayor que cero")
	}

	downPayment := propertyValue * downPaymentPct / 100
	annualIncome := (monthlyRent - commonExpenses - insurance) * MonthsPerYear * occupancyPct / 100
	yield := annualIncome / downPayment * 100
	if err := checkResult("down_payment_pct", downPaymentPct, yield); err != nil {
		return 0, err
	}
	return yield, nil
}
