package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/sensitivity"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

// ROIHandler handles calculation API endpoints
// ⭐ SSOT: calculation API handlers live in this struct and nowhere else.
type ROIHandler struct {
	engine *roi.Engine
	logger *logger.Logger
}

// NewROIHandler creates a new calculation handler
func NewROIHandler(engine *roi.Engine, log *logger.Logger) *ROIHandler {
	return &ROIHandler{
		engine: engine,
		logger: log,
	}
}

// MetricsPayload mirrors roi.CalculatedMetrics for the wire. JSON has no
// infinity, so an indefinite payback is a null plus an explicit flag.
type MetricsPayload struct {
	TotalInitialInvestment      float64  `json:"total_initial_investment"`
	TotalAnnualOperationalCosts float64  `json:"total_annual_operational_costs"`
	TotalCostsOverHorizon       float64  `json:"total_costs_over_horizon"`
	AnnualCostSavings           float64  `json:"annual_cost_savings"`
	AnnualEfficiencyValue       float64  `json:"annual_efficiency_value"`
	AnnualRevenueImpact         float64  `json:"annual_revenue_impact"`
	TotalAnnualBenefits         float64  `json:"total_annual_benefits"`
	TotalBenefitsOverHorizon    float64  `json:"total_benefits_over_horizon"`
	NetAnnualBenefit            float64  `json:"net_annual_benefit"`
	NetBenefitsOverHorizon      float64  `json:"net_benefits_over_horizon"`
	ROIPercentage               float64  `json:"roi_percentage"`
	PaybackPeriodYears          *float64 `json:"payback_period_years"`
	PaybackIndefinite           bool     `json:"payback_indefinite"`
	NetPresentValue             float64  `json:"net_present_value"`
}

// NewMetricsPayload lowers engine metrics into the wire form.
func NewMetricsPayload(m roi.CalculatedMetrics) MetricsPayload {
	p := MetricsPayload{
		TotalInitialInvestment:      m.TotalInitialInvestment,
		TotalAnnualOperationalCosts: m.TotalAnnualOperationalCosts,
		TotalCostsOverHorizon:       m.TotalCostsOverHorizon,
		AnnualCostSavings:           m.AnnualCostSavings,
		AnnualEfficiencyValue:       m.AnnualEfficiencyValue,
		AnnualRevenueImpact:         m.AnnualRevenueImpact,
		TotalAnnualBenefits:         m.TotalAnnualBenefits,
		TotalBenefitsOverHorizon:    m.TotalBenefitsOverHorizon,
		NetAnnualBenefit:            m.NetAnnualBenefit,
		NetBenefitsOverHorizon:      m.NetBenefitsOverHorizon,
		ROIPercentage:               m.ROIPercentage,
		NetPresentValue:             m.NetPresentValue,
	}
	if math.IsInf(m.PaybackPeriodYears, 1) {
		p.PaybackIndefinite = true
	} else {
		v := m.PaybackPeriodYears
		p.PaybackPeriodYears = &v
	}
	return p
}

// CalculateResponse carries one engine run.
type CalculateResponse struct {
	Inputs         roi.CalculatorInputs `json:"inputs"`
	Metrics        MetricsPayload       `json:"metrics"`
	Interpretation string               `json:"interpretation"`
}

// NewCalculateResponse lowers an engine result into the wire form.
func NewCalculateResponse(result roi.Result) CalculateResponse {
	return CalculateResponse{
		Inputs:         result.Inputs,
		Metrics:        NewMetricsPayload(result.Metrics),
		Interpretation: result.Interpretation,
	}
}

// GetDefaults returns the canonical benchmark inputs
// GET /api/roi/defaults
func (h *ROIHandler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, roi.DefaultInputs())
}

// Calculate runs the engine on the posted inputs
// POST /api/roi/calculate
//
// Numbers are never validated here: any decodable inputs flow straight
// to the engine and degenerate values propagate arithmetically.
func (h *ROIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var inputs roi.CalculatorInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.engine.Calculate(inputs)

	respondJSON(w, http.StatusOK, NewCalculateResponse(result))
}

// SensitivityRequest describes one sweep batch. Absent inputs mean the
// canonical benchmark scenario.
type SensitivityRequest struct {
	Inputs     *roi.CalculatorInputs   `json:"inputs,omitempty"`
	Parameters []sensitivity.Parameter `json:"parameters"`
}

// SensitivityResponse carries the completed sweeps.
type SensitivityResponse struct {
	Inputs  roi.CalculatorInputs  `json:"inputs"`
	Results []*sensitivity.Result `json:"results"`
}

// Sensitivity sweeps parameters over the engine
// POST /api/sensitivity
func (h *ROIHandler) Sensitivity(w http.ResponseWriter, r *http.Request) {
	var req SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Parameters) == 0 {
		respondError(w, http.StatusBadRequest, "At least one sweep parameter is required")
		return
	}

	base := roi.DefaultInputs()
	if req.Inputs != nil {
		base = *req.Inputs
	}

	results, err := sensitivity.RunAll(base, req.Parameters)
	if err != nil {
		// Sweep errors name the offending parameter; pass them through
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"parameters": len(req.Parameters),
	}).Debug("Sensitivity sweep completed")

	respondJSON(w, http.StatusOK, SensitivityResponse{
		Inputs:  base,
		Results: results,
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
