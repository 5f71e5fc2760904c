package roi

import (
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
)

// Engine derives the full metric set and narrative for a set of inputs.
// It is stateless; one engine serves concurrent callers.
type Engine struct {
	interp *interpret.Generator
}

// NewEngine creates an engine that renders narratives with the given
// generator.
func NewEngine(gen *interpret.Generator) *Engine {
	return &Engine{interp: gen}
}

var defaultEngine = NewEngine(interpret.Default())

// Calculate runs the full pipeline with the default en-US dollar
// narrative. Total function: any numeric input yields a result.
func Calculate(in CalculatorInputs) Result {
	return defaultEngine.Calculate(in)
}

// Calculate derives all metrics in dependency order and attaches the
// narrative interpretation.
func (e *Engine) Calculate(in CalculatorInputs) Result {
	m := CalculatedMetrics{}

	// Costs.
	m.TotalInitialInvestment = TotalInitialInvestment(in.Initial)
	m.TotalAnnualOperationalCosts = TotalAnnualOperationalCosts(in.Initial, in.Ongoing)
	m.TotalCostsOverHorizon = TotalCostsOverHorizon(m.TotalInitialInvestment, m.TotalAnnualOperationalCosts, in.Financial.TimeHorizonYears)

	// Benefits.
	m.AnnualCostSavings = AnnualCostSavings(in.Benefits)
	m.AnnualEfficiencyValue = AnnualEfficiencyValue(in.Benefits)
	m.AnnualRevenueImpact = AnnualRevenueImpact(in.Benefits)
	m.TotalAnnualBenefits = TotalAnnualBenefits(m.AnnualCostSavings, m.AnnualEfficiencyValue, m.AnnualRevenueImpact)
	m.TotalBenefitsOverHorizon = TotalBenefitsOverHorizon(m.TotalAnnualBenefits, in.Financial.TimeHorizonYears)

	// Net figures.
	m.NetAnnualBenefit = NetAnnualBenefit(m.TotalAnnualBenefits, m.TotalAnnualOperationalCosts)
	m.NetBenefitsOverHorizon = NetBenefitsOverHorizon(m.TotalBenefitsOverHorizon, m.TotalCostsOverHorizon)

	// Performance ratios.
	m.ROIPercentage = ROIPercentage(m.NetBenefitsOverHorizon, m.TotalInitialInvestment)
	m.PaybackPeriodYears = PaybackPeriodYears(m.TotalInitialInvestment, m.NetAnnualBenefit)
	m.NetPresentValue = NetPresentValue(m.TotalInitialInvestment, m.NetAnnualBenefit, in.Financial.TimeHorizonYears, in.Financial.AnnualDiscountRate)

	return Result{
		Inputs:  in,
		Metrics: m,
		Interpretation: e.interp.Narrative(
			m.ROIPercentage,
			m.PaybackPeriodYears,
			m.NetPresentValue,
			in.Financial.TimeHorizonYears,
			in.Financial.AnnualDiscountRate,
		),
	}
}
