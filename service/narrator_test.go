package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-investment/config"
	"property-investment/domain"
)

func testReport(t *testing.T) domain.InvestmentReport {
	t.Helper()
	report, err := BuildReport(domain.DefaultInvestmentInputs(), domain.DefaultAnalysisOptions(), config.DefaultIndexedUnitValue)
	require.NoError(t, err)
	return report
}

func TestReportNarrator_FallbackWithoutAPIKey(t *testing.T) {
	narrator := NewReportNarrator(NarratorConfig{}, zerolog.New(nil).Level(zerolog.Disabled))
	assert.False(t, narrator.Enabled())

	explanation := narrator.ExplainReport(context.Background(), testReport(t))
	assert.Contains(t, explanation, "negativo")
	assert.Contains(t, explanation, "10 años")
}

func TestReportNarrator_CallsLLM(t *testing.T) {
	var received ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Buena inversión a largo plazo."}}]}`))
	}))
	defer server.Close()

	narrator := NewReportNarrator(NarratorConfig{
		APIKey: "test-key",
		APIURL: server.URL,
		Model:  "test-model",
	}, zerolog.New(nil).Level(zerolog.Disabled))

	explanation := narrator.ExplainReport(context.Background(), testReport(t))
	assert.Equal(t, "Buena inversión a largo plazo.", explanation)
	assert.Equal(t, "test-model", received.Model)
	require.Len(t, received.Messages, 2)
	assert.Contains(t, received.Messages[1].Content, "UF")
}

func TestReportNarrator_FallbackOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	narrator := NewReportNarrator(NarratorConfig{APIKey: "k", APIURL: server.URL}, zerolog.New(nil).Level(zerolog.Disabled))

	option := domain.TermOption{TermYears: 20, MonthlyPayment: 275_000, TotalInterest: 26_000_000}
	explanation := narrator.ExplainTerm(context.Background(), option, PreferenceMinimizeInterest)
	assert.Contains(t, explanation, "20 años")
	assert.Contains(t, explanation, "intereses")
}
