package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"property-investment/domain"
	"property-investment/repository"
)

type InvestmentService struct {
	rates    repository.RateRepository
	narrator *ReportNarrator
	log      zerolog.Logger
}

// NewInvestmentService creates an InvestmentService. narrator may be nil, in
// which case Explain requests are ignored.
func NewInvestmentService(
	rates repository.RateRepository,
	narrator *ReportNarrator,
	log zerolog.Logger,
) *InvestmentService {
	return &InvestmentService{
		rates:    rates,
		narrator: narrator,
		log:      log.With().Str("service", "investment").Logger(),
	}
}

// IndexedUnitValue returns the unit value analyses are currently run with.
func (s *InvestmentService) IndexedUnitValue(ctx context.Context) (float64, error) {
	value, err := s.rates.IndexedUnitValue(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get indexed unit value: %w", err)
	}
	if err := checkUnitValue(value); err != nil {
		return 0, err
	}
	return value, nil
}

// Converter returns a UnitConverter bound to the current unit value.
func (s *InvestmentService) Converter(ctx context.Context) (UnitConverter, error) {
	value, err := s.IndexedUnitValue(ctx)
	if err != nil {
		return UnitConverter{}, err
	}
	return NewUnitConverter(value)
}

// Analyze computes the full investment report for one input set.
func (s *InvestmentService) Analyze(
	ctx context.Context,
	inputs domain.InvestmentInputs,
	opts domain.AnalysisOptions,
) (domain.InvestmentReport, error) {

	// Validar entrada antes de consultar la UF
	if err := ValidateInputs(inputs); err != nil {
		return domain.InvestmentReport{}, err
	}

	converter, err := s.Converter(ctx)
	if err != nil {
		return domain.InvestmentReport{}, err
	}

	local := inputs
	if opts.InputsInIndexedUnits {
		local = converter.ToLocalInputs(inputs)
	}

	report, err := BuildReport(local, opts, converter.UnitValue())
	if err != nil {
		return domain.InvestmentReport{}, err
	}

	fingerprint, err := Fingerprint(inputs, opts, converter.UnitValue())
	if err != nil {
		return domain.InvestmentReport{}, fmt.Errorf("failed to fingerprint inputs: %w", err)
	}
	report.Fingerprint = fingerprint

	if opts.Explain && s.narrator != nil {
		report.Explanation = s.narrator.ExplainReport(ctx, report)
	}

	s.log.Debug().
		Str("fingerprint", fingerprint).
		Float64("monthly_payment", report.MonthlyPayment).
		Float64("monthly_net", report.CashFlow.MonthlyNet).
		Bool("dual_currency", opts.DualCurrency).
		Msg("Investment analyzed")

	return report, nil
}
