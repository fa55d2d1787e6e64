package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"property-investment/domain"
)

// ErrNoEligibleTerm is returned when every term exceeds the payment cap.
var ErrNoEligibleTerm = errors.New("no se encontraron plazos válidos con la cuota máxima especificada")

type TermComparisonService struct {
	narrator *ReportNarrator
	log      zerolog.Logger
}

func NewTermComparisonService(narrator *ReportNarrator, log zerolog.Logger) *TermComparisonService {
	return &TermComparisonService{
		narrator: narrator,
		log:      log.With().Str("service", "term_comparison").Logger(),
	}
}

// CompareTerms evalúa cada plazo del rango y los ordena según la preferencia
func (s *TermComparisonService) CompareTerms(
	ctx context.Context,
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	// Validaciones
	if err := checkTerm("min_term_years", input.MinTermYears); err != nil {
		return domain.TermComparisonResult{}, err
	}
	if err := checkTerm("max_term_years", input.MaxTermYears); err != nil {
		return domain.TermComparisonResult{}, err
	}
	if input.MinTermYears > input.MaxTermYears {
		return domain.TermComparisonResult{}, domain.NewInvalidInput("min_term_years", float64(input.MinTermYears), "plazo mínimo mayor que máximo")
	}
	if input.MaxTermYears-input.MinTermYears > MaxTermRangeYears {
		return domain.TermComparisonResult{}, domain.NewInvalidInput("max_term_years", float64(input.MaxTermYears), fmt.Sprintf("rango de plazos excede el máximo de %d años", MaxTermRangeYears))
	}
	if err := checkAmount("max_monthly_payment", input.MaxMonthlyPayment); err != nil {
		return domain.TermComparisonResult{}, err
	}

	switch input.Preference {
	case PreferenceMinimizeInterest, PreferenceMaximizeCashFlow, PreferenceBalanced:
	default:
		return domain.TermComparisonResult{}, &domain.InvalidInputError{Field: "preference", Reason: "preferencia inválida: " + input.Preference}
	}

	// Sin repositorio de tasas no hay conversión desde UF.
	if input.Options.InputsInIndexedUnits {
		return domain.TermComparisonResult{}, &domain.InvalidInputError{
			Field:  "options.inputs_in_indexed_units",
			Reason: "la comparación de plazos requiere montos en pesos",
		}
	}

	// El plazo se reemplaza en cada escenario; el resto de las entradas debe ser válido.
	base := input.Inputs
	base.LoanTermYears = input.MinTermYears
	if err := ValidateInputs(base); err != nil {
		return domain.TermComparisonResult{}, err
	}

	loanAmount, err := LoanAmount(base.PropertyValue, base.DownPaymentPct)
	if err != nil {
		return domain.TermComparisonResult{}, err
	}

	maintenance := base.Maintenance
	if !input.Options.IncludeMaintenance {
		maintenance = 0
	}

	options := []domain.TermOption{}
	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		schedule, err := AmortizationSchedule(loanAmount, base.AnnualInterestRate, term)
		if err != nil {
			return domain.TermComparisonResult{}, err
		}

		// Filtrar por cuota máxima
		if input.MaxMonthlyPayment > 0 && schedule.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		cashFlow, err := MonthlyCashFlow(
			base.MonthlyRent, base.OccupancyPct, schedule.MonthlyPayment,
			base.CommonExpenses, base.RentalInsurance, maintenance,
		)
		if err != nil {
			return domain.TermComparisonResult{}, err
		}

		options = append(options, domain.TermOption{
			TermYears:      term,
			MonthlyPayment: roundTo2Decimals(schedule.MonthlyPayment),
			TotalInterest:  roundTo2Decimals(schedule.TotalInterest),
			MonthlyNet:     roundTo2Decimals(cashFlow.MonthlyNet),
			Reason:         generateTermReason(input.Preference),
		})
	}

	if len(options) == 0 {
		return domain.TermComparisonResult{}, ErrNoEligibleTerm
	}

	scoreTermOptions(options, input.Preference)

	// Ordenar por score descendente; a igual score, el plazo más corto primero
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Score == options[j].Score {
			return options[i].TermYears < options[j].TermYears
		}
		return options[i].Score > options[j].Score
	})

	if s.narrator != nil && s.narrator.Enabled() {
		options[0].Reason = s.narrator.ExplainTerm(ctx, options[0], input.Preference)
	}

	s.log.Debug().
		Int("recommended_term", options[0].TermYears).
		Int("evaluated", len(options)).
		Str("preference", input.Preference).
		Msg("Loan terms compared")

	return domain.TermComparisonResult{
		RecommendedTerm: options[0].TermYears,
		Options:         options,
	}, nil
}

// scoreTermOptions puntúa de 0 a 10 normalizando cada criterio dentro de
// las opciones evaluadas.
func scoreTermOptions(options []domain.TermOption, preference string) {
	interests := make([]float64, len(options))
	nets := make([]float64, len(options))
	terms := make([]float64, len(options))
	for i, o := range options {
		interests[i] = o.TotalInterest
		nets[i] = o.MonthlyNet
		terms[i] = float64(o.TermYears)
	}

	for i, o := range options {
		// Menos interés es mejor, más flujo es mejor, menos años es mejor
		interestScore := 10 - normalize(o.TotalInterest, interests)
		cashFlowScore := normalize(o.MonthlyNet, nets)
		termScore := 10 - normalize(float64(o.TermYears), terms)

		var score float64
		switch preference {
		case PreferenceMinimizeInterest:
			score = 0.6*interestScore + 0.2*cashFlowScore + 0.2*termScore
		case PreferenceMaximizeCashFlow:
			score = 0.2*interestScore + 0.6*cashFlowScore + 0.2*termScore
		case PreferenceBalanced:
			score = 0.4*interestScore + 0.4*cashFlowScore + 0.2*termScore
		}
		options[i].Score = roundTo2Decimals(score)
	}
}

// normalize maps value into 0..10 within the range of values. A flat range
// maps to the midpoint.
func normalize(value float64, values []float64) float64 {
	lo, hi := floats.Min(values), floats.Max(values)
	if hi == lo {
		return 5
	}
	return 10 * (value - lo) / (hi - lo)
}

func generateTermReason(preference string) string {
	switch preference {
	case PreferenceMinimizeInterest:
		return "Plazo optimizado para minimizar el costo total de intereses"
	case PreferenceMaximizeCashFlow:
		return "Plazo optimizado para maximizar el flujo de caja mensual"
	case PreferenceBalanced:
		return "Balance óptimo entre cuota mensual y costo total"
	}
	return "Recomendación basada en los parámetros proporcionados"
}
