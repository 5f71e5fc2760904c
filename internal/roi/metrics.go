package roi

import "math"

// The metric functions below are individually exported so callers can
// recompute a subset without re-running the whole pipeline; sensitivity
// sweeps rely on that. Formulas consume earlier metrics in strict
// dependency order and never round intermediates.

// TotalInitialInvestment sums the one-time costs: setup fee, hardware,
// implementation labor, training and other one-time items.
func TotalInitialInvestment(c InitialCosts) float64 {
	return c.SoftwareLicenseSetupFee +
		c.HardwareCosts +
		c.ImplementationHours*c.ImplementationHourlyRate +
		c.TrainingUsers*c.TrainingCostPerUser +
		c.OtherOneTimeCosts
}

// TotalAnnualOperationalCosts sums the recurring annual costs. The annual
// license fee comes from InitialCosts, where the field is declared.
func TotalAnnualOperationalCosts(ic InitialCosts, oc OngoingCosts) float64 {
	return ic.SoftwareLicenseAnnualFee +
		oc.AnnualMaintenanceSupport +
		oc.PersonnelFTEs*oc.PersonnelBlendedSalary +
		oc.UtilitiesInfrastructure +
		oc.MarketingAdoption +
		oc.OtherAnnualOpEx
}

// TotalCostsOverHorizon is the initial investment plus operational costs
// across the time horizon.
func TotalCostsOverHorizon(tii, taoc float64, years int) float64 {
	return tii + taoc*float64(years)
}

// AnnualCostSavings sums the displaced tool costs.
func AnnualCostSavings(b QuantifiableBenefits) float64 {
	var total float64
	for _, cost := range b.CurrentToolCosts {
		total += cost
	}
	return total
}

// AnnualEfficiencyValue prices the weekly hours saved across a 52-week
// year at the blended hourly rate.
func AnnualEfficiencyValue(b QuantifiableBenefits) float64 {
	return b.FTEHoursSavedPerWeek * 52 * b.BlendedHourlyRate
}

// AnnualRevenueImpact applies the benchmark improvement to current
// revenue, scaled by the attribution factor.
func AnnualRevenueImpact(b QuantifiableBenefits) float64 {
	return b.ClientCurrentRevenue * (b.BenchmarkImprovementPercent / 100) * (b.AttributionFactor / 100)
}

// TotalAnnualBenefits sums the three annual benefit streams.
func TotalAnnualBenefits(savings, efficiency, revenueImpact float64) float64 {
	return savings + efficiency + revenueImpact
}

// TotalBenefitsOverHorizon extends the annual benefits across the horizon.
func TotalBenefitsOverHorizon(tab float64, years int) float64 {
	return tab * float64(years)
}

// NetAnnualBenefit is annual benefits minus annual operational costs.
func NetAnnualBenefit(tab, taoc float64) float64 {
	return tab - taoc
}

// NetBenefitsOverHorizon is horizon benefits minus horizon costs.
func NetBenefitsOverHorizon(tbot, tcot float64) float64 {
	return tbot - tcot
}

// ROIPercentage is net horizon benefits as a percentage of the initial
// investment. Exactly 0 when the investment is 0; never NaN or infinite
// from the division guard.
func ROIPercentage(nbot, tii float64) float64 {
	if tii == 0 {
		return 0
	}
	return nbot / tii * 100
}

// PaybackPeriodYears is the years of net annual benefit needed to recover
// the initial investment. +Inf when the net annual benefit is zero or
// negative: no finite payback exists. The sentinel is in-band, not an
// error.
func PaybackPeriodYears(tii, nab float64) float64 {
	if nab <= 0 {
		return math.Inf(1)
	}
	return tii / nab
}

// NetPresentValue discounts a constant net annual benefit over the horizon
// at the annually compounded discount rate and subtracts the initial
// investment. A horizon of zero or less yields -tii (empty summation).
func NetPresentValue(tii, nab float64, years int, discountRate float64) float64 {
	npv := -tii
	for year := 1; year <= years; year++ {
		npv += nab / math.Pow(1+discountRate/100, float64(year))
	}
	return npv
}
