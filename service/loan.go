package service

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"property-investment/domain"
)

var ErrResidualDrift = errors.New("el saldo residual excede la tolerancia")

func monthlyRate(annualRate float64) float64 {
	return annualRate / MonthsPerYear / 100
}

// checkDrift bounds the residue folded into the last payment relative to
// the principal. Loans under one peso are measured against one peso.
func checkDrift(drift, principal float64) error {
	limit := BalanceTolerance * math.Max(principal, 1)
	if math.IsNaN(drift) || math.Abs(drift) > limit {
		return fmt.Errorf("%w: %g (límite %g)", ErrResidualDrift, drift, limit)
	}
	return nil
}

// FixedPayment returns the monthly installment of an amortizing loan.
func FixedPayment(principal, annualRate float64, years int) (float64, error) {
	if err := firstError(
		checkAmount("principal", principal),
		checkRate("annual_rate", annualRate),
		checkTerm("years", years),
	); err != nil {
		return 0, err
	}

	n := float64(years * MonthsPerYear)
	r := monthlyRate(annualRate)

	// Con tasa cero la fórmula divide por cero; su límite es principal/n.
	// Una tasa subnormal también termina en r == 0.
	if r == 0 {
		return principal / n, nil
	}

	// log1p/expm1 mantienen (1+r)^n - 1 exacto cuando 1+r redondea a 1.
	exponent := n * math.Log1p(r)
	payment := principal * (r / math.Expm1(exponent)) * math.Exp(exponent)
	if err := checkResult("annual_rate", annualRate, payment); err != nil {
		return 0, err
	}
	return payment, nil
}

// remainingBalance returns the balance left after k payments in closed
// form. Iterating b = b(1+r) - payment multiplies rounding by (1+r)^n,
// which no longer closes the loan at high rates over long terms.
func remainingBalance(principal, r float64, months int) func(k int) float64 {
	n := float64(months)
	if r == 0 {
		return func(k int) float64 {
			return principal * (n - float64(k)) / n
		}
	}
	l := math.Log1p(r)
	total := math.Expm1(n * l)
	return func(k int) float64 {
		return principal * ((total - math.Expm1(float64(k)*l)) / total)
	}
}

// AmortizationSchedule walks the loan month by month. Interest accrues on
// the opening balance and the rest of the fixed payment goes to principal.
// Whatever balance is left before the last payment, at most a few ulps of
// drift, is folded into that payment so the loan closes at exactly zero;
// the amount is reported as ResidualDrift.
func AmortizationSchedule(principal, annualRate float64, years int) (domain.LoanSchedule, error) {
	payment, err := FixedPayment(principal, annualRate, years)
	if err != nil {
		return domain.LoanSchedule{}, err
	}

	months := years * MonthsPerYear
	r := monthlyRate(annualRate)
	balanceAfter := remainingBalance(principal, r, months)
	entries := make([]domain.AmortizationEntry, 0, months)
	interests := make([]float64, 0, months)
	principals := make([]float64, 0, months)
	paid := make([]float64, 0, months)

	balance := principal
	drift := 0.0
	for month := 1; month <= months; month++ {
		interest := balance * r
		next := balanceAfter(month)
		principalPaid := balance - next
		monthPayment := payment

		if month == months {
			next = 0
			principalPaid = balance
			monthPayment = interest + principalPaid
			drift = monthPayment - payment
		}
		balance = next

		entries = append(entries, domain.AmortizationEntry{
			Month:     month,
			Payment:   monthPayment,
			Interest:  interest,
			Principal: principalPaid,
			Balance:   balance,
		})
		interests = append(interests, interest)
		principals = append(principals, principalPaid)
		paid = append(paid, monthPayment)
	}

	if err := checkDrift(drift, principal); err != nil {
		return domain.LoanSchedule{}, err
	}

	return domain.LoanSchedule{
		Principal:      principal,
		AnnualRate:     annualRate,
		TermYears:      years,
		MonthlyPayment: payment,
		TotalPaid:      floats.Sum(paid),
		TotalInterest:  floats.Sum(interests),
		TotalPrincipal: floats.Sum(principals),
		ResidualDrift:  drift,
		Entries:        entries,
	}, nil
}

// EffectiveAnnualRate (CAE) compounds the nominal monthly rate over a year.
// years is validated but does not enter the formula.
func EffectiveAnnualRate(nominalRate float64, years int) (float64, error) {
	if err := firstError(
		checkRate("annual_rate", nominalRate),
		checkTerm("years", years),
	); err != nil {
		return 0, err
	}
	return math.Expm1(MonthsPerYear*math.Log1p(monthlyRate(nominalRate))) * 100, nil
}

// LoanAmount is the financed part of the property value.
func LoanAmount(propertyValue, downPaymentPct float64) (float64, error) {
	if err := firstError(
		checkAmount("property_value", propertyValue),
		checkPercent("down_payment_pct", downPaymentPct),
	); err != nil {
		return 0, err
	}
	return propertyValue * (1 - downPaymentPct/100), nil
}

func DownPaymentAmount(propertyValue, downPaymentPct float64) (float64, error) {
	if err := firstError(
		checkAmount("property_value", propertyValue),
		checkPercent("down_payment_pct", downPaymentPct),
	); err != nil {
		return 0, err
	}
	return propertyValue * downPaymentPct / 100, nil
}
