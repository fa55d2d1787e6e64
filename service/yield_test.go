package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-investment/domain"
)

func TestGrossAndNetYield(t *testing.T) {
	gross, err := GrossYield(50_000_000, 300_000)
	require.NoError(t, err)
	assert.InDelta(t, 7.2, gross, 1e-9)

	net, err := NetYield(50_000_000, 300_000, 95)
	require.NoError(t, err)
	assert.InDelta(t, 6.84, net, 1e-9)

	full, err := NetYield(50_000_000, 300_000, 100)
	require.NoError(t, err)
	assert.InDelta(t, gross, full, 1e-12)
}

func TestGrossYield_ZeroPropertyValue(t *testing.T) {
	_, err := GrossYield(0, 300_000)
	assert.Error(t, err)
}

func TestNetYield_OccupancyOutOfRange(t *testing.T) {
	_, err := NetYield(50_000_000, 300_000, 101)
	assert.Error(t, err)

	_, err = NetYield(50_000_000, 300_000, -1)
	assert.Error(t, err)
}

func TestDownPaymentYield(t *testing.T) {
	yield, err := DownPaymentYield(50_000_000, 20, 300_000, 50_000, 15_000, 95)
	require.NoError(t, err)
	assert.InDelta(t, 26.79, yield, 1e-9)

	// Gastos mayores que la renta dan rentabilidad negativa
	negative, err := DownPaymentYield(50_000_000, 20, 40_000, 50_000, 15_000, 100)
	require.NoError(t, err)
	assert.Less(t, negative, 0.0)
}

func TestDownPaymentYield_ZeroDownPayment(t *testing.T) {
	_, err := DownPaymentYield(50_000_000, 0, 300_000, 50_000, 15_000, 95)
	assert.Error(t, err)
}

func TestYields_SubnormalDivisor(t *testing.T) {
	var invalid *domain.InvalidInputError

	_, err := GrossYield(5e-324, 300_000)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "property_value", invalid.Field)

	_, err = GrossYield(1e-300, 300_000)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "property_value", invalid.Field)

	_, err = NetYield(1e-300, 300_000, 95)
	assert.Error(t, err)

	// El pie de una propiedad subnormal redondea a cero.
	_, err = DownPaymentYield(5e-324, 20, 300_000, 0, 0, 100)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "down_payment_pct", invalid.Field)

	_, err = DownPaymentYield(5e-324, 20, 0, 0, 0, 100)
	assert.Error(t, err)
}
