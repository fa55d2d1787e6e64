package service

import "property-investment/domain"

const (
	CurrencyLocal   = "CLP"
	CurrencyIndexed = "UF"
)

const (
	DirectionToLocal   = "to_local"
	DirectionToIndexed = "to_indexed"
)

func checkUnitValue(unitValue float64) error {
	return checkPositiveAmount("unit_value", unitValue)
}

// ToLocalCurrency converts an amount in indexed units to local currency.
func ToLocalCurrency(units, unitValue float64) (float64, error) {
	if err := firstError(checkUnitValue(unitValue), checkFinite("amount", units)); err != nil {
		return 0, err
	}
	local := units * unitValue
	if err := checkResult("amount", units, local); err != nil {
		return 0, err
	}
	return local, nil
}

// ToIndexedUnit converts a local-currency amount to indexed units.
func ToIndexedUnit(local, unitValue float64) (float64, error) {
	if err := firstError(checkUnitValue(unitValue), checkFinite("amount", local)); err != nil {
		return 0, err
	}
	units := local / unitValue
	if err := checkResult("amount", local, units); err != nil {
		return 0, err
	}
	return units, nil
}

// UnitConverter binds the conversion pair to one unit value.
type UnitConverter struct {
	unitValue float64
}

func NewUnitConverter(unitValue float64) (UnitConverter, error) {
	if err := checkUnitValue(unitValue); err != nil {
		return UnitConverter{}, err
	}
	return UnitConverter{unitValue: unitValue}, nil
}

func (c UnitConverter) UnitValue() float64 {
	return c.unitValue
}

func (c UnitConverter) ToLocal(units float64) float64 {
	return units * c.unitValue
}

func (c UnitConverter) ToIndexed(local float64) float64 {
	return local / c.unitValue
}

// Convert applies one of the DirectionTo* constants.
func (c UnitConverter) Convert(amount float64, direction string) (float64, error) {
	switch direction {
	case DirectionToLocal:
		return ToLocalCurrency(amount, c.unitValue)
	case DirectionToIndexed:
		return ToIndexedUnit(amount, c.unitValue)
	}
	return 0, &domain.InvalidInputError{Field: "direction", Reason: "dirección de conversión desconocida: " + direction}
}

// ToLocalInputs converts every monetary field from indexed units to local
// currency, leaving rates, percentages and years untouched.
func (c UnitConverter) ToLocalInputs(in domain.InvestmentInputs) domain.InvestmentInputs {
	out := in
	out.PropertyValue = c.ToLocal(in.PropertyValue)
	out.MonthlyRent = c.ToLocal(in.MonthlyRent)
	out.CommonExpenses = c.ToLocal(in.CommonExpenses)
	out.RentalInsurance = c.ToLocal(in.RentalInsurance)
	out.Maintenance = c.ToLocal(in.Maintenance)
	return out
}
