package http

import (
	"net/http"
	"time"

	"property-investment/domain"
	"property-investment/service"
)

type LoanRequest struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	Years      int     `json:"years"`
}

type LoanPaymentResponse struct {
	MonthlyPayment      float64 `json:"monthly_payment"`
	EffectiveAnnualRate float64 `json:"effective_annual_rate"`
	TotalPaid           float64 `json:"total_paid"`
	TotalInterest       float64 `json:"total_interest"`
}

type ProjectionRequest struct {
	InitialValue     float64 `json:"initial_value"`
	AppreciationRate float64 `json:"appreciation_rate"`
	UnitGrowthRate   float64 `json:"unit_growth_rate"`
	HorizonYears     int     `json:"horizon_years"`
	DualCurrency     bool    `json:"dual_currency"`
}

type ProjectionResponse struct {
	Projection     domain.ProjectionSeries    `json:"projection"`
	DualProjection *domain.DualProjection     `json:"dual_projection,omitempty"`
	Appreciation   domain.AppreciationSummary `json:"appreciation"`
}

type YieldRequest struct {
	PropertyValue   float64 `json:"property_value"`
	MonthlyRent     float64 `json:"monthly_rent"`
	OccupancyPct    float64 `json:"occupancy_pct"`
	DownPaymentPct  float64 `json:"down_payment_pct"`
	CommonExpenses  float64 `json:"common_expenses"`
	RentalInsurance float64 `json:"rental_insurance"`
}

type CashFlowRequest struct {
	MonthlyRent     float64 `json:"monthly_rent"`
	OccupancyPct    float64 `json:"occupancy_pct"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	CommonExpenses  float64 `json:"common_expenses"`
	RentalInsurance float64 `json:"rental_insurance"`
	Maintenance     float64 `json:"maintenance"`
}

type ConvertRequest struct {
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"` // "to_local", "to_indexed"
}

type ConvertResponse struct {
	Amount    float64 `json:"amount"`
	Direction string  `json:"direction"`
	Result    float64 `json:"result"`
	UnitValue float64 `json:"unit_value"`
}

// HandleHealth handles GET /health
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// HandleIndexedUnit handles GET /rates/indexed-unit
func (h *Handler) HandleIndexedUnit(w http.ResponseWriter, r *http.Request) {
	value, err := h.investment.IndexedUnitValue(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"unit":     service.CurrencyIndexed,
		"currency": service.CurrencyLocal,
		"value":    value,
	})
}

// HandleLoanPayment handles POST /loan/payment
func (h *Handler) HandleLoanPayment(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	schedule, err := service.AmortizationSchedule(req.Principal, req.AnnualRate, req.Years)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	cae, err := service.EffectiveAnnualRate(req.AnnualRate, req.Years)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, LoanPaymentResponse{
		MonthlyPayment:      schedule.MonthlyPayment,
		EffectiveAnnualRate: cae,
		TotalPaid:           schedule.TotalPaid,
		TotalInterest:       schedule.TotalInterest,
	})
}

// HandleLoanSchedule handles POST /loan/schedule
func (h *Handler) HandleLoanSchedule(w http.ResponseWriter, r *http.Request) {
	var req LoanRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	schedule, err := service.AmortizationSchedule(req.Principal, req.AnnualRate, req.Years)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, schedule)
}

// HandleProjection handles POST /projection
func (h *Handler) HandleProjection(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	projection, err := service.ProjectedValue(req.InitialValue, req.AppreciationRate, req.HorizonYears)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := ProjectionResponse{
		Projection:   projection,
		Appreciation: service.Appreciation(projection, service.CurrencyLocal),
	}

	if req.DualCurrency {
		unitValue, err := h.investment.IndexedUnitValue(r.Context())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		dual, err := service.DualCurrencyProjection(
			req.InitialValue, req.AppreciationRate, req.UnitGrowthRate, req.HorizonYears, unitValue,
		)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		resp.DualProjection = &dual
		resp.Appreciation = service.Appreciation(dual.Indexed, service.CurrencyIndexed)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// HandleYield handles POST /yield
func (h *Handler) HandleYield(w http.ResponseWriter, r *http.Request) {
	var req YieldRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	gross, err := service.GrossYield(req.PropertyValue, req.MonthlyRent)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	net, err := service.NetYield(req.PropertyValue, req.MonthlyRent, req.OccupancyPct)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := domain.Yields{GrossCapRate: gross, NetCapRate: net}
	if req.DownPaymentPct > 0 {
		dp, err := service.DownPaymentYield(
			req.PropertyValue, req.DownPaymentPct, req.MonthlyRent,
			req.CommonExpenses, req.RentalInsurance, req.OccupancyPct,
		)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		resp.DownPaymentYield = &dp
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// HandleCashFlow handles POST /cashflow
func (h *Handler) HandleCashFlow(w http.ResponseWriter, r *http.Request) {
	var req CashFlowRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	summary, err := service.MonthlyCashFlow(
		req.MonthlyRent, req.OccupancyPct, req.MonthlyPayment,
		req.CommonExpenses, req.RentalInsurance, req.Maintenance,
	)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
}

// HandleConvert handles POST /convert
func (h *Handler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	converter, err := h.investment.Converter(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := converter.Convert(req.Amount, req.Direction)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ConvertResponse{
		Amount:    req.Amount,
		Direction: req.Direction,
		Result:    result,
		UnitValue: converter.UnitValue(),
	})
}
