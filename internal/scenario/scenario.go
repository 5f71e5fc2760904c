// Package scenario persists saved ROI business cases: a named set of
// calculator inputs together with the metrics and narrative derived from
// them, snapshotted for the sales workflow. The stored metrics are
// denormalized; storage never feeds back into computation, the engine can
// always recompute everything from the stored inputs.
package scenario

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
)

// Scenario is one saved business case.
type Scenario struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Company        string                `json:"company"`
	Inputs         roi.CalculatorInputs  `json:"inputs"`
	Metrics        roi.CalculatedMetrics `json:"metrics"`
	Interpretation string                `json:"interpretation"`
	Draft          bool                  `json:"draft"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// New builds a scenario from an engine result.
func New(name, company string, result roi.Result, draft bool) *Scenario {
	now := time.Now().UTC()
	return &Scenario{
		ID:             uuid.New().String(),
		Name:           name,
		Company:        company,
		Inputs:         result.Inputs,
		Metrics:        result.Metrics,
		Interpretation: result.Interpretation,
		Draft:          draft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// metricsJSON mirrors roi.CalculatedMetrics with a JSON-safe payback.
// encoding/json rejects +Inf, so an indefinite payback travels as null
// plus an explicit flag and is restored to +Inf on decode.
type metricsJSON struct {
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

func lowerMetrics(m roi.CalculatedMetrics) metricsJSON {
	out := metricsJSON{
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
		out.PaybackIndefinite = true
	} else {
		v := m.PaybackPeriodYears
		out.PaybackPeriodYears = &v
	}
	return out
}

func (mj metricsJSON) lift() roi.CalculatedMetrics {
	m := roi.CalculatedMetrics{
		TotalInitialInvestment:      mj.TotalInitialInvestment,
		TotalAnnualOperationalCosts: mj.TotalAnnualOperationalCosts,
		TotalCostsOverHorizon:       mj.TotalCostsOverHorizon,
		AnnualCostSavings:           mj.AnnualCostSavings,
		AnnualEfficiencyValue:       mj.AnnualEfficiencyValue,
		AnnualRevenueImpact:         mj.AnnualRevenueImpact,
		TotalAnnualBenefits:         mj.TotalAnnualBenefits,
		TotalBenefitsOverHorizon:    mj.TotalBenefitsOverHorizon,
		NetAnnualBenefit:            mj.NetAnnualBenefit,
		NetBenefitsOverHorizon:      mj.NetBenefitsOverHorizon,
		ROIPercentage:               mj.ROIPercentage,
		NetPresentValue:             mj.NetPresentValue,
	}
	if mj.PaybackIndefinite || mj.PaybackPeriodYears == nil {
		m.PaybackPeriodYears = math.Inf(1)
	} else {
		m.PaybackPeriodYears = *mj.PaybackPeriodYears
	}
	return m
}

// MarshalJSON writes the scenario with the lowered metric form.
func (s Scenario) MarshalJSON() ([]byte, error) {
	type alias Scenario
	return json.Marshal(struct {
		alias
		Metrics metricsJSON `json:"metrics"`
	}{alias: alias(s), Metrics: lowerMetrics(s.Metrics)})
}

// UnmarshalJSON restores the +Inf payback sentinel from the wire form.
func (s *Scenario) UnmarshalJSON(data []byte) error {
	type alias Scenario
	aux := struct {
		*alias
		Metrics metricsJSON `json:"metrics"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Metrics = aux.Metrics.lift()
	return nil
}
