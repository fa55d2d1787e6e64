package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"property-investment/domain"
)

const (
	DefaultLLMURL   = "https://api.openai.com/v1/chat/completions"
	DefaultLLMModel = "gpt-4o-mini"
)

type NarratorConfig struct {
	APIKey string
	APIURL string
	Model  string
}

// ReportNarrator turns computed metrics into a short explanation. Without
// an API key, or when the LLM call fails, it falls back to a fixed text
// built from the same figures.
type ReportNarrator struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	log        zerolog.Logger
}

type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewReportNarrator(cfg NarratorConfig, log zerolog.Logger) *ReportNarrator {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultLLMURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultLLMModel
	}

	return &ReportNarrator{
		apiKey:  cfg.APIKey,
		apiURL:  apiURL,
		model:   model,
		enabled: cfg.APIKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("service", "narrator").Logger(),
	}
}

func (s *ReportNarrator) Enabled() bool {
	return s.enabled
}

// ExplainReport genera una explicación de la inversión completa
func (s *ReportNarrator) ExplainReport(ctx context.Context, report domain.InvestmentReport) string {
	if !s.enabled {
		return s.fallbackReportExplanation(report)
	}

	in := report.Inputs
	unit := report.IndexedUnitValue

	prompt := fmt.Sprintf(`Analiza esta inversión inmobiliaria en Chile y genera una explicación clara y educativa.

DATOS DE LA INVERSIÓN:
- Valor de la propiedad: $%.0f CLP (%.2f UF)
- Pie: %.0f%% ($%.0f CLP)
- Crédito: $%.0f CLP a %.2f%% anual, %d años (CAE %.2f%%)
- Cuota mensual: $%.0f CLP (%.2f UF)
- Renta mensual: $%.0f CLP con %.0f%% de ocupación
- CAP Rate bruto: %.2f%%, CAP Rate neto: %.2f%%
- Flujo de caja mensual: $%.0f CLP, anual: $%.0f CLP
- Plusvalía proyectada a %d años: %.2f%%

INSTRUCCIONES:
1. Explica si el flujo de caja es positivo o negativo y qué lo explica.
2. Compara la rentabilidad por arriendo con la plusvalía esperada.
3. Menciona los montos en pesos y en UF.
4. Sé realista, sin prometer resultados.

Genera una explicación de 3-4 oraciones que sea fácil de entender para cualquier persona.`,
		in.PropertyValue, in.PropertyValue/unit,
		in.DownPaymentPct, report.DownPaymentAmount,
		report.LoanAmount, in.AnnualInterestRate, in.LoanTermYears, report.EffectiveRate,
		report.MonthlyPayment, report.MonthlyPayment/unit,
		in.MonthlyRent, in.OccupancyPct,
		report.Yields.GrossCapRate, report.Yields.NetCapRate,
		report.CashFlow.MonthlyNet, report.CashFlow.AnnualNet,
		in.HorizonYears, report.Appreciation.GainPct)

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to generate report explanation, using fallback")
		return s.fallbackReportExplanation(report)
	}
	return explanation
}

// ExplainTerm genera una explicación para el plazo recomendado
func (s *ReportNarrator) ExplainTerm(ctx context.Context, option domain.TermOption, preference string) string {
	if !s.enabled {
		return s.fallbackTermExplanation(option, preference)
	}

	prompt := fmt.Sprintf(`Explica en 2-3 oraciones por qué un crédito hipotecario a %d años es la mejor opción para la preferencia "%s".
Cuota mensual: $%.0f CLP. Intereses totales: $%.0f CLP. Flujo de caja mensual resultante: $%.0f CLP.`,
		option.TermYears, preferenceDescription(preference),
		option.MonthlyPayment, option.TotalInterest, option.MonthlyNet)

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		s.log.Warn().Err(err).Int("term_years", option.TermYears).Msg("Failed to generate term explanation, using fallback")
		return s.fallbackTermExplanation(option, preference)
	}
	return explanation
}

func (s *ReportNarrator) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: "Eres un asesor financiero experto en inversión inmobiliaria en Chile. Explicas créditos hipotecarios, CAE, CAP Rate, flujo de caja y plusvalía en español claro, con montos en pesos y en UF.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (s *ReportNarrator) fallbackReportExplanation(report domain.InvestmentReport) string {
	flow := "positivo"
	advice := "El arriendo cubre la cuota y los gastos, dejando un excedente cada mes."
	if report.CashFlow.MonthlyNet < 0 {
		flow = "negativo"
		advice = "Tendrás que aportar la diferencia cada mes, por lo que la inversión depende de la plusvalía."
	}

	return fmt.Sprintf("Con una cuota de $%.0f y un flujo de caja mensual %s de $%.0f ($%.0f al año), el CAP Rate neto es %.2f%%. %s La plusvalía proyectada a %d años es de %.2f%%.",
		report.MonthlyPayment, flow, report.CashFlow.MonthlyNet, report.CashFlow.AnnualNet,
		report.Yields.NetCapRate, advice,
		report.Inputs.HorizonYears, report.Appreciation.GainPct)
}

func (s *ReportNarrator) fallbackTermExplanation(option domain.TermOption, preference string) string {
	switch preference {
	case PreferenceMinimizeInterest:
		return fmt.Sprintf("El plazo de %d años minimiza los intereses totales ($%.0f), con una cuota de $%.0f.",
			option.TermYears, option.TotalInterest, option.MonthlyPayment)
	case PreferenceMaximizeCashFlow:
		return fmt.Sprintf("El plazo de %d años deja el mejor flujo de caja mensual ($%.0f) con una cuota de $%.0f.",
			option.TermYears, option.MonthlyNet, option.MonthlyPayment)
	default:
		return fmt.Sprintf("El plazo de %d años equilibra la cuota ($%.0f) y los intereses totales ($%.0f).",
			option.TermYears, option.MonthlyPayment, option.TotalInterest)
	}
}

func preferenceDescription(preference string) string {
	switch preference {
	case PreferenceMinimizeInterest:
		return "minimizar el costo total de intereses"
	case PreferenceMaximizeCashFlow:
		return "maximizar el flujo de caja mensual"
	case PreferenceBalanced:
		return "balance entre cuota mensual y costo total"
	}
	return preference
}
