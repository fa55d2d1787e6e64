package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"property-investment/domain"
	"property-investment/service"
)

// Handler serves the calculator API.
type Handler struct {
	investment *service.InvestmentService
	terms      *service.TermComparisonService
	log        zerolog.Logger
}

func NewHandler(
	investment *service.InvestmentService,
	terms *service.TermComparisonService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		investment: investment,
		terms:      terms,
		log:        log.With().Str("handler", "calculator").Logger(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// decodeJSON decodes the body into dst, writing a 400 on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.log.Debug().Err(err).Str("path", r.URL.Path).Msg("Failed to decode request body")
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// writeError maps service errors onto status codes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *domain.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalid.Error(), Field: invalid.Field})
	case errors.Is(err, service.ErrNoEligibleTerm):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// writeJSON writes a JSON response. The body is encoded before the status
// goes out, so an encoding failure can still become a 500.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		h.log.Error().Err(err).Int("status", status).Msg("Failed to encode JSON response")
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "internal server error"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.log.Debug().Err(err).Msg("Failed to write response")
	}
}
