// Package roi implements the IMPACT cost/benefit model: a fixed set of
// deterministic transformations from business inputs to derived financial
// metrics, plus the narrative interpretation attached to each result.
//
// Every operation is a pure function of its inputs. The engine performs no
// validation: negative or degenerate inputs propagate arithmetically and
// are a caller responsibility.
package roi

// InitialCosts holds the one-time costs of adopting the platform.
//
// SoftwareLicenseAnnualFee is declared here but is a recurring cost; it is
// summed into TotalAnnualOperationalCosts, never into the initial
// investment. Callers depend on the field living in this record, so it
// must not move to OngoingCosts.
type InitialCosts struct {
	SoftwareLicenseSetupFee  float64 `json:"software_license_setup_fee" yaml:"software_license_setup_fee"`
	SoftwareLicenseAnnualFee float64 `json:"software_license_annual_fee" yaml:"software_license_annual_fee"`
	HardwareCosts            float64 `json:"hardware_costs" yaml:"hardware_costs"`
	ImplementationHours      float64 `json:"implementation_hours" yaml:"implementation_hours"`
	ImplementationHourlyRate float64 `json:"implementation_hourly_rate" yaml:"implementation_hourly_rate"`
	TrainingUsers            float64 `json:"training_users" yaml:"training_users"`
	TrainingCostPerUser      float64 `json:"training_cost_per_user" yaml:"training_cost_per_user"`
	OtherOneTimeCosts        float64 `json:"other_one_time_costs" yaml:"other_one_time_costs"`
}

// OngoingCosts holds the recurring annual cost components.
type OngoingCosts struct {
	AnnualMaintenanceSupport float64 `json:"annual_maintenance_support" yaml:"annual_maintenance_support"`
	PersonnelFTEs            float64 `json:"personnel_ftes" yaml:"personnel_ftes"`
	PersonnelBlendedSalary   float64 `json:"personnel_blended_salary" yaml:"personnel_blended_salary"`
	UtilitiesInfrastructure  float64 `json:"utilities_infrastructure" yaml:"utilities_infrastructure"`
	MarketingAdoption        float64 `json:"marketing_adoption" yaml:"marketing_adoption"`
	OtherAnnualOpEx          float64 `json:"other_annual_opex" yaml:"other_annual_opex"`
}

// QuantifiableBenefits holds the measurable annual gains attributed to the
// platform. Percentages are on a 0-100 scale and divided by 100 at point
// of use.
type QuantifiableBenefits struct {
	CurrentToolCosts            []float64 `json:"current_tool_costs" yaml:"current_tool_costs"`
	FTEHoursSavedPerWeek        float64   `json:"fte_hours_saved_per_week" yaml:"fte_hours_saved_per_week"`
	BlendedHourlyRate           float64   `json:"blended_hourly_rate" yaml:"blended_hourly_rate"`
	ClientCurrentRevenue        float64   `json:"client_current_revenue" yaml:"client_current_revenue"`
	BenchmarkImprovementPercent float64   `json:"benchmark_improvement_percent" yaml:"benchmark_improvement_percent"`
	AttributionFactor           float64   `json:"attribution_factor" yaml:"attribution_factor"`
}

// FinancialParameters frames the analysis window.
type FinancialParameters struct {
	TimeHorizonYears   int     `json:"time_horizon_years" yaml:"time_horizon_years"`
	AnnualDiscountRate float64 `json:"annual_discount_rate" yaml:"annual_discount_rate"`
}

// CalculatorInputs aggregates the four input records; the sole input to
// the engine.
type CalculatorInputs struct {
	Initial   InitialCosts         `json:"initial_costs" yaml:"initial_costs"`
	Ongoing   OngoingCosts         `json:"ongoing_costs" yaml:"ongoing_costs"`
	Benefits  QuantifiableBenefits `json:"quantifiable_benefits" yaml:"quantifiable_benefits"`
	Financial FinancialParameters  `json:"financial_parameters" yaml:"financial_parameters"`
}

// CalculatedMetrics is the full derived metric set, in dependency order.
// PaybackPeriodYears is +Inf when the net annual benefit is not positive.
type CalculatedMetrics struct {
	TotalInitialInvestment      float64 `json:"total_initial_investment"`
	TotalAnnualOperationalCosts float64 `json:"total_annual_operational_costs"`
	TotalCostsOverHorizon       float64 `json:"total_costs_over_horizon"`
	AnnualCostSavings           float64 `json:"annual_cost_savings"`
	AnnualEfficiencyValue       float64 `json:"annual_efficiency_value"`
	AnnualRevenueImpact         float64 `json:"annual_revenue_impact"`
	TotalAnnualBenefits         float64 `json:"total_annual_benefits"`
	TotalBenefitsOverHorizon    float64 `json:"total_benefits_over_horizon"`
	NetAnnualBenefit            float64 `json:"net_annual_benefit"`
	NetBenefitsOverHorizon      float64 `json:"net_benefits_over_horizon"`
	ROIPercentage               float64 `json:"roi_percentage"`
	PaybackPeriodYears          float64 `json:"payback_period_years"`
	NetPresentValue             float64 `json:"net_present_value"`
}

// Result is the engine's sole output: the inputs it was given, the derived
// metrics and the narrative interpretation.
type Result struct {
	Inputs         CalculatorInputs  `json:"inputs"`
	Metrics        CalculatedMetrics `json:"metrics"`
	Interpretation string            `json:"interpretation"`
}
