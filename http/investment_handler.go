package http

import (
	"net/http"

	"property-investment/domain"
	"property-investment/service"
)

// AnalyzeRequest carries a full form. Fields left out keep the dashboard
// defaults.
type AnalyzeRequest struct {
	Inputs  domain.InvestmentInputs `json:"inputs"`
	Options domain.AnalysisOptions  `json:"options"`
}

// HandleAnalyze handles POST /investment/analyze
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	req := AnalyzeRequest{
		Inputs:  domain.DefaultInvestmentInputs(),
		Options: domain.DefaultAnalysisOptions(),
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}

	report, err := h.investment.Analyze(r.Context(), req.Inputs, req.Options)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// HandleCompareTerms handles POST /investment/compare-terms
func (h *Handler) HandleCompareTerms(w http.ResponseWriter, r *http.Request) {
	req := domain.TermComparisonInput{
		Inputs:     domain.DefaultInvestmentInputs(),
		Preference: service.PreferenceBalanced,
		Options:    domain.DefaultAnalysisOptions(),
	}
	if !h.decodeJSON(w, r, &req) {
		return
	}

	result, err := h.terms.CompareTerms(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
