package service

import (
	"math"

	"property-investment/domain"
)

func checkFinite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return domain.NewInvalidInput(field, value, "debe ser un número finito")
	}
	return nil
}

// checkResult rejects a non-finite result. Inputs that pass their own
// checks can still overflow, e.g. a subnormal divisor.
func checkResult(field string, input, result float64) error {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return domain.NewInvalidInput(field, input, "produce un resultado no finito")
	}
	return nil
}

// checkAmount accepts 0..MaxAmount.
func checkAmount(field string, value float64) error {
	if err := checkFinite(field, value); err != nil {
		return err
	}
	if value < 0 {
		return domain.NewInvalidInput(field, value, "no puede ser negativo")
	}
	if value > MaxAmount {
		return domain.NewInvalidInput(field, value, "excede el máximo permitido")
	}
	return nil
}

// checkPositiveAmount is checkAmount for values used as divisors.
func checkPositiveAmount(field string, value float64) error {
	if err := checkAmount(field, value); err != nil {
		return err
	}
	if value == 0 {
		return domain.NewInvalidInput(field, value, "debe ser mayor que cero")
	}
	return nil
}

func checkPercent(field string, value float64) error {
	if err := checkFinite(field, value); err != nil {
		return err
	}
	if value < 0 || value > 100 {
		return domain.NewInvalidInput(field, value, "debe estar entre 0 y 100")
	}
	return nil
}

func checkRate(field string, value float64) error {
	if err := checkFinite(field, value); err != nil {
		return err
	}
	if value < 0 {
		return domain.NewInvalidInput(field, value, "no puede ser negativa")
	}
	if value > MaxInterestRate {
		return domain.NewInvalidInput(field, value, "excede el máximo permitido")
	}
	return nil
}

func checkTerm(field string, years int) error {
	if years < MinTermYears {
		return domain.NewInvalidInput(field, float64(years), "debe ser al menos un año")
	}
	if years > MaxTermYears {
		return domain.NewInvalidInput(field, float64(years), "excede el plazo máximo")
	}
	return nil
}

func checkHorizon(field string, years int) error {
	if years < 0 || years > MaxHorizonYears {
		return domain.NewInvalidInput(field, float64(years), "fuera de rango")
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateInputs checks a full input set before an analysis.
func ValidateInputs(in domain.InvestmentInputs) error {
	return firstError(
		checkPositiveAmount("property_value", in.PropertyValue),
		checkPercent("down_payment_pct", in.DownPaymentPct),
		checkRate("annual_interest_rate", in.AnnualInterestRate),
		checkTerm("loan_term_years", in.LoanTermYears),
		checkAmount("monthly_rent", in.MonthlyRent),
		checkAmount("common_expenses", in.CommonExpenses),
		checkAmount("rental_insurance", in.RentalInsurance),
		checkAmount("maintenance", in.Maintenance),
		checkPercent("occupancy_pct", in.OccupancyPct),
		checkRate("appreciation_rate", in.AppreciationRate),
		checkRate("unit_growth_rate", in.UnitGrowthRate),
		checkHorizon("horizon_years", in.HorizonYears),
	)
}
