package sensitivity

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
)

// Swing classifies how much the outcome moves across a swept range.
const (
	SwingLow    = "LOW"
	SwingMedium = "MEDIUM"
	SwingHigh   = "HIGH"
)

// ROI range above this share of the base ROI is a medium swing.
const mediumSwingRatio = 0.25

// Point is the headline metric set at one swept value.
type Point struct {
	Value              float64 `json:"value"`
	ROIPercentage      float64 `json:"roi_percentage"`
	PaybackPeriodYears float64 `json:"payback_period_years"`
	NetPresentValue    float64 `json:"net_present_value"`
	NetAnnualBenefit   float64 `json:"net_annual_benefit"`
	ROIBand            string  `json:"roi_band"`
}

// MarshalJSON emits a null payback when the +Inf sentinel is present,
// since JSON has no infinity.
func (p Point) MarshalJSON() ([]byte, error) {
	type alias Point
	out := struct {
		alias
		PaybackPeriodYears *float64 `json:"payback_period_years"`
	}{alias: alias(p)}
	if !math.IsInf(p.PaybackPeriodYears, 1) {
		v := p.PaybackPeriodYears
		out.PaybackPeriodYears = &v
	}
	return json.Marshal(out)
}

// Summary condenses a sweep into the figures a reviewer scans first.
type Summary struct {
	BaseValue        float64  `json:"base_value"`
	BaseROI          float64  `json:"base_roi"`
	MinROI           float64  `json:"min_roi"`
	MaxROI           float64  `json:"max_roi"`
	MinNPV           float64  `json:"min_npv"`
	MaxNPV           float64  `json:"max_npv"`
	ROIBandChanges   bool     `json:"roi_band_changes"`
	BreakEvenCrossed bool     `json:"break_even_crossed"`
	Swing            string   `json:"swing"`
	Notes            []string `json:"notes,omitempty"`
}

// Result is one completed sweep.
type Result struct {
	Parameter Parameter `json:"parameter"`
	Points    []Point   `json:"points"`
	Summary   Summary   `json:"summary"`
}

// Run sweeps one parameter across [Min, Max] in Steps evenly spaced
// values, holding every other input at its base value. The base inputs
// are never mutated.
func Run(base roi.CalculatorInputs, p Parameter) (*Result, error) {
	b, ok := bindings[p.Name]
	if !ok {
		return nil, fmt.Errorf("unknown sweep parameter %q", p.Name)
	}
	if p.Steps < 2 {
		return nil, fmt.Errorf("sweep parameter %q: need at least 2 steps, got %d", p.Name, p.Steps)
	}
	if p.Min > p.Max {
		return nil, fmt.Errorf("sweep parameter %q: min %v exceeds max %v", p.Name, p.Min, p.Max)
	}
	if p.Unit == "" {
		p.Unit = b.unit
	}
	if p.Description == "" {
		p.Description = b.description
	}

	points := make([]Point, 0, p.Steps)
	stepSize := (p.Max - p.Min) / float64(p.Steps-1)
	for i := 0; i < p.Steps; i++ {
		value := p.Min + stepSize*float64(i)
		patched := base
		b.set(&patched, value)
		points = append(points, headline(patched, value))
	}

	basePoint := headline(base, b.get(base))
	return &Result{
		Parameter: p,
		Points:    points,
		Summary:   summarize(p, basePoint, points),
	}, nil
}

// RunAll executes several sweeps against the same base inputs.
func RunAll(base roi.CalculatorInputs, params []Parameter) ([]*Result, error) {
	results := make([]*Result, 0, len(params))
	for _, p := range params {
		r, err := Run(base, p)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// headline recomputes just the numeric chain through the exported metric
// functions; no narrative is generated per point.
func headline(in roi.CalculatorInputs, value float64) Point {
	tii := roi.TotalInitialInvestment(in.Initial)
	taoc := roi.TotalAnnualOperationalCosts(in.Initial, in.Ongoing)
	tcot := roi.TotalCostsOverHorizon(tii, taoc, in.Financial.TimeHorizonYears)

	tab := roi.TotalAnnualBenefits(
		roi.AnnualCostSavings(in.Benefits),
		roi.AnnualEfficiencyValue(in.Benefits),
		roi.AnnualRevenueImpact(in.Benefits),
	)
	tbot := roi.TotalBenefitsOverHorizon(tab, in.Financial.TimeHorizonYears)

	nab := roi.NetAnnualBenefit(tab, taoc)
	nbot := roi.NetBenefitsOverHorizon(tbot, tcot)
	roiPct := roi.ROIPercentage(nbot, tii)

	return Point{
		Value:              value,
		ROIPercentage:      roiPct,
		PaybackPeriodYears: roi.PaybackPeriodYears(tii, nab),
		NetPresentValue:    roi.NetPresentValue(tii, nab, in.Financial.TimeHorizonYears, in.Financial.AnnualDiscountRate),
		NetAnnualBenefit:   nab,
		ROIBand:            interpret.ROIBand(roiPct),
	}
}

func summarize(p Parameter, base Point, points []Point) Summary {
	s := Summary{
		BaseValue: base.Value,
		BaseROI:   base.ROIPercentage,
		MinROI:    points[0].ROIPercentage,
		MaxROI:    points[0].ROIPercentage,
		MinNPV:    points[0].NetPresentValue,
		MaxNPV:    points[0].NetPresentValue,
	}

	for _, pt := range points {
		s.MinROI = math.Min(s.MinROI, pt.ROIPercentage)
		s.MaxROI = math.Max(s.MaxROI, pt.ROIPercentage)
		s.MinNPV = math.Min(s.MinNPV, pt.NetPresentValue)
		s.MaxNPV = math.Max(s.MaxNPV, pt.NetPresentValue)
		if pt.ROIBand != points[0].ROIBand {
			s.ROIBandChanges = true
		}
	}
	s.BreakEvenCrossed = s.MinNPV <= 0 && s.MaxNPV > 0

	switch {
	case s.ROIBandChanges:
		s.Swing = SwingHigh
		s.Notes = append(s.Notes, fmt.Sprintf(
			"Outcome band changes within the tested range of %s; validate this input with the client before presenting.", p.Name))
	case s.MaxROI-s.MinROI > mediumSwingRatio*math.Abs(base.ROIPercentage):
		s.Swing = SwingMedium
	default:
		s.Swing = SwingLow
	}
	if s.BreakEvenCrossed {
		s.Notes = append(s.Notes, fmt.Sprintf(
			"NPV crosses break-even between %s=%v and %s=%v.", p.Name, p.Min, p.Name, p.Max))
	}
	return s
}
