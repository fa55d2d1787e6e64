package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-investment/domain"
)

func newTestTermService() *TermComparisonService {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	return NewTermComparisonService(NewReportNarrator(NarratorConfig{}, logger), logger)
}

func TestCompareTerms_MinimizeInterest(t *testing.T) {
	svc := newTestTermService()

	result, err := svc.CompareTerms(context.Background(), domain.TermComparisonInput{
		Inputs:       domain.DefaultInvestmentInputs(),
		MinTermYears: 15,
		MaxTermYears: 30,
		Preference:   PreferenceMinimizeInterest,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, result.RecommendedTerm)
	assert.Len(t, result.Options, 16)
	assert.Equal(t, result.RecommendedTerm, result.Options[0].TermYears)
	assert.NotEmpty(t, result.Options[0].Reason)

	for i := 1; i < len(result.Options); i++ {
		assert.GreaterOrEqual(t, result.Options[i-1].Score, result.Options[i].Score)
	}
}

func TestCompareTerms_MaxMonthlyPaymentFilters(t *testing.T) {
	svc := newTestTermService()

	result, err := svc.CompareTerms(context.Background(), domain.TermComparisonInput{
		Inputs:            domain.DefaultInvestmentInputs(),
		MinTermYears:      10,
		MaxTermYears:      30,
		MaxMonthlyPayment: 250_000,
		Preference:        PreferenceBalanced,
	})
	require.NoError(t, err)

	require.NotEmpty(t, result.Options)
	for _, option := range result.Options {
		assert.LessOrEqual(t, option.MonthlyPayment, 250_000.0)
		assert.Greater(t, option.TermYears, 10)
	}
}

func TestCompareTerms_NoEligibleTerm(t *testing.T) {
	svc := newTestTermService()

	_, err := svc.CompareTerms(context.Background(), domain.TermComparisonInput{
		Inputs:            domain.DefaultInvestmentInputs(),
		MinTermYears:      10,
		MaxTermYears:      30,
		MaxMonthlyPayment: 1_000,
		Preference:        PreferenceMaximizeCashFlow,
	})
	assert.ErrorIs(t, err, ErrNoEligibleTerm)
}

func TestCompareTerms_SingleTerm(t *testing.T) {
	svc := newTestTermService()

	result, err := svc.CompareTerms(context.Background(), domain.TermComparisonInput{
		Inputs:       domain.DefaultInvestmentInputs(),
		MinTermYears: 20,
		MaxTermYears: 20,
		Preference:   PreferenceBalanced,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, result.RecommendedTerm)
	assert.Len(t, result.Options, 1)
}

func TestCompareTerms_MaintenanceOption(t *testing.T) {
	svc := newTestTermService()
	input := domain.TermComparisonInput{
		Inputs:       domain.DefaultInvestmentInputs(),
		MinTermYears: 20,
		MaxTermYears: 20,
		Preference:   PreferenceBalanced,
		Options:      domain.DefaultAnalysisOptions(),
	}

	with, err := svc.CompareTerms(context.Background(), input)
	require.NoError(t, err)

	input.Options.IncludeMaintenance = false
	without, err := svc.CompareTerms(context.Background(), input)
	require.NoError(t, err)

	assert.InDelta(t, input.Inputs.Maintenance, without.Options[0].MonthlyNet-with.Options[0].MonthlyNet, 0.02)
	assert.Equal(t, with.Options[0].MonthlyPayment, without.Options[0].MonthlyPayment)
}

func TestCompareTerms_InvalidInput(t *testing.T) {
	svc := newTestTermService()
	base := domain.TermComparisonInput{
		Inputs:       domain.DefaultInvestmentInputs(),
		MinTermYears: 10,
		MaxTermYears: 30,
		Preference:   PreferenceBalanced,
	}

	testCases := []struct {
		name   string
		mutate func(*domain.TermComparisonInput)
	}{
		{"zero min term", func(in *domain.TermComparisonInput) { in.MinTermYears = 0 }},
		{"min above max", func(in *domain.TermComparisonInput) { in.MinTermYears = 31 }},
		{"max above limit", func(in *domain.TermComparisonInput) { in.MaxTermYears = MaxTermYears + 1 }},
		{"unknown preference", func(in *domain.TermComparisonInput) { in.Preference = "cheapest" }},
		{"negative payment cap", func(in *domain.TermComparisonInput) { in.MaxMonthlyPayment = -1 }},
		{"invalid inputs", func(in *domain.TermComparisonInput) { in.Inputs.PropertyValue = 0 }},
		{"inputs in indexed units", func(in *domain.TermComparisonInput) { in.Options.InputsInIndexedUnits = true }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)

			_, err := svc.CompareTerms(context.Background(), input)
			var invalid *domain.InvalidInputError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}
