// Package sensitivity sweeps a single calculator input across a range and
// reports how the headline metrics respond. Sweeps recompute metrics
// through the individually exported functions of the calculation core
// instead of re-running the full pipeline with narrative generation.
package sensitivity

import (
	"math"
	"sort"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
)

// Sweepable input names. These are the sliders a sales engineer actually
// moves during a live session.
const (
	ParamSetupFee         = "software_license_setup_fee"
	ParamAnnualLicenseFee = "software_license_annual_fee"
	ParamMaintenance      = "annual_maintenance_support"
	ParamPersonnelFTEs    = "personnel_ftes"
	ParamHoursSaved       = "fte_hours_saved_per_week"
	ParamBlendedRate      = "blended_hourly_rate"
	ParamRevenue          = "client_current_revenue"
	ParamImprovement      = "benchmark_improvement_percent"
	ParamAttribution      = "attribution_factor"
	ParamDiscountRate     = "annual_discount_rate"
	ParamTimeHorizon      = "time_horizon_years"
)

// Parameter describes one sweep: which input to vary and across what
// range. Unit and Description are filled from the registry when left
// empty.
type Parameter struct {
	Name        string  `yaml:"name" json:"name"`
	Min         float64 `yaml:"min" json:"min"`
	Max         float64 `yaml:"max" json:"max"`
	Steps       int     `yaml:"steps" json:"steps"`
	Unit        string  `yaml:"unit,omitempty" json:"unit"`
	Description string  `yaml:"description,omitempty" json:"description"`
}

// binding connects a parameter name to the input field it patches.
type binding struct {
	unit        string
	description string
	get         func(roi.CalculatorInputs) float64
	set         func(*roi.CalculatorInputs, float64)
}

var bindings = map[string]binding{
	ParamSetupFee: {
		unit:        "dollars",
		description: "One-time software license setup fee",
		get:         func(in roi.CalculatorInputs) float64 { return in.Initial.SoftwareLicenseSetupFee },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Initial.SoftwareLicenseSetupFee = v },
	},
	ParamAnnualLicenseFee: {
		unit:        "dollars",
		description: "Recurring annual software license fee",
		get:         func(in roi.CalculatorInputs) float64 { return in.Initial.SoftwareLicenseAnnualFee },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Initial.SoftwareLicenseAnnualFee = v },
	},
	ParamMaintenance: {
		unit:        "dollars",
		description: "Annual maintenance and support fee",
		get:         func(in roi.CalculatorInputs) float64 { return in.Ongoing.AnnualMaintenanceSupport },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Ongoing.AnnualMaintenanceSupport = v },
	},
	ParamPersonnelFTEs: {
		unit:        "ftes",
		description: "Internal staffing dedicated to running the platform",
		get:         func(in roi.CalculatorInputs) float64 { return in.Ongoing.PersonnelFTEs },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Ongoing.PersonnelFTEs = v },
	},
	ParamHoursSaved: {
		unit:        "hours",
		description: "Weekly FTE hours saved across the team",
		get:         func(in roi.CalculatorInputs) float64 { return in.Benefits.FTEHoursSavedPerWeek },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Benefits.FTEHoursSavedPerWeek = v },
	},
	ParamBlendedRate: {
		unit:        "dollars",
		description: "Blended hourly rate used to price saved hours",
		get:         func(in roi.CalculatorInputs) float64 { return in.Benefits.BlendedHourlyRate },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Benefits.BlendedHourlyRate = v },
	},
	ParamRevenue: {
		unit:        "dollars",
		description: "Client's current annual revenue",
		get:         func(in roi.CalculatorInputs) float64 { return in.Benefits.ClientCurrentRevenue },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Benefits.ClientCurrentRevenue = v },
	},
	ParamImprovement: {
		unit:        "percent",
		description: "Expected improvement on the performance benchmark",
		get:         func(in roi.CalculatorInputs) float64 { return in.Benefits.BenchmarkImprovementPercent },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Benefits.BenchmarkImprovementPercent = v },
	},
	ParamAttribution: {
		unit:        "percent",
		description: "Share of the improvement credited to the platform",
		get:         func(in roi.CalculatorInputs) float64 { return in.Benefits.AttributionFactor },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Benefits.AttributionFactor = v },
	},
	ParamDiscountRate: {
		unit:        "percent",
		description: "Annual discount rate applied in the NPV calculation",
		get:         func(in roi.CalculatorInputs) float64 { return in.Financial.AnnualDiscountRate },
		set:         func(in *roi.CalculatorInputs, v float64) { in.Financial.AnnualDiscountRate = v },
	},
	ParamTimeHorizon: {
		unit:        "years",
		description: "Analysis window in whole years; swept values are rounded",
		get:         func(in roi.CalculatorInputs) float64 { return float64(in.Financial.TimeHorizonYears) },
		set: func(in *roi.CalculatorInputs, v float64) {
			in.Financial.TimeHorizonYears = int(math.Round(v))
		},
	},
}

// Info describes one sweepable input for discovery endpoints and CLI help.
type Info struct {
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// Parameters lists every sweepable input in stable name order.
func Parameters() []Info {
	infos := make([]Info, 0, len(bindings))
	for name, b := range bindings {
		infos = append(infos, Info{Name: name, Unit: b.unit, Description: b.description})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
