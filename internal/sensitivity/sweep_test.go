package sensitivity

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
)

func TestRun_AttributionSweep(t *testing.T) {
	r, err := Run(roi.DefaultInputs(), Parameter{
		Name:  ParamAttribution,
		Min:   0,
		Max:   100,
		Steps: 5,
	})
	require.NoError(t, err)
	require.Len(t, r.Points, 5)

	assert.Equal(t, []float64{0, 25, 50, 75, 100}, pointValues(r.Points))

	// More attribution means more revenue impact, so ROI must rise
	// strictly across the sweep.
	for i := 1; i < len(r.Points); i++ {
		assert.Greater(t, r.Points[i].ROIPercentage, r.Points[i-1].ROIPercentage,
			"ROI not monotonic at step %d", i)
	}

	// With zero attribution the scenario loses money: indefinite payback.
	first := r.Points[0]
	assert.True(t, math.IsInf(first.PaybackPeriodYears, 1))
	assert.Equal(t, interpret.ROIBandNegative, first.ROIBand)
	assert.Equal(t, interpret.ROIBandStrong, r.Points[4].ROIBand)

	s := r.Summary
	assert.Equal(t, 35.0, s.BaseValue)
	assert.True(t, s.ROIBandChanges)
	assert.True(t, s.BreakEvenCrossed)
	assert.Equal(t, SwingHigh, s.Swing)
	assert.NotEmpty(t, s.Notes)
	assert.Equal(t, first.ROIPercentage, s.MinROI)
	assert.Equal(t, r.Points[4].ROIPercentage, s.MaxROI)
}

func TestRun_DiscountRateSweepIsLowSwing(t *testing.T) {
	// ROI ignores discounting entirely, so sweeping the rate moves only
	// NPV and the outcome stays firmly in one band.
	r, err := Run(roi.DefaultInputs(), Parameter{
		Name:  ParamDiscountRate,
		Min:   9,
		Max:   11,
		Steps: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, r.Summary.MinROI, r.Summary.MaxROI)
	assert.False(t, r.Summary.ROIBandChanges)
	assert.False(t, r.Summary.BreakEvenCrossed)
	assert.Equal(t, SwingLow, r.Summary.Swing)
	assert.Empty(t, r.Summary.Notes)
}

func TestRun_TimeHorizonAppliesRoundedYears(t *testing.T) {
	in := roi.DefaultInputs()
	r, err := Run(in, Parameter{Name: ParamTimeHorizon, Min: 1, Max: 5, Steps: 5})
	require.NoError(t, err)

	for i, pt := range r.Points {
		years := i + 1
		patched := in
		patched.Financial.TimeHorizonYears = years
		want := roi.Calculate(patched).Metrics

		assert.Equal(t, want.ROIPercentage, pt.ROIPercentage, "years=%d", years)
		assert.Equal(t, want.NetPresentValue, pt.NetPresentValue, "years=%d", years)
	}
}

func TestRun_DoesNotMutateBaseInputs(t *testing.T) {
	base := roi.DefaultInputs()
	_, err := Run(base, Parameter{Name: ParamRevenue, Min: 0, Max: 5000000, Steps: 3})
	require.NoError(t, err)

	assert.Equal(t, roi.DefaultInputs(), base)
}

func TestRun_FillsRegistryMetadata(t *testing.T) {
	r, err := Run(roi.DefaultInputs(), Parameter{Name: ParamAttribution, Min: 0, Max: 50, Steps: 2})
	require.NoError(t, err)

	assert.Equal(t, "percent", r.Parameter.Unit)
	assert.NotEmpty(t, r.Parameter.Description)
}

func TestRun_Errors(t *testing.T) {
	in := roi.DefaultInputs()

	_, err := Run(in, Parameter{Name: "no_such_input", Min: 0, Max: 1, Steps: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sweep parameter")

	_, err = Run(in, Parameter{Name: ParamRevenue, Min: 0, Max: 1, Steps: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 steps")

	_, err = Run(in, Parameter{Name: ParamRevenue, Min: 10, Max: 1, Steps: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds max")
}

func TestRunAll(t *testing.T) {
	results, err := RunAll(roi.DefaultInputs(), []Parameter{
		{Name: ParamHoursSaved, Min: 0, Max: 20, Steps: 5},
		{Name: ParamBlendedRate, Min: 20, Max: 90, Steps: 8},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, ParamHoursSaved, results[0].Parameter.Name)
	assert.Equal(t, ParamBlendedRate, results[1].Parameter.Name)

	_, err = RunAll(roi.DefaultInputs(), []Parameter{{Name: "bogus", Min: 0, Max: 1, Steps: 2}})
	assert.Error(t, err)
}

func TestPoint_MarshalJSON_InfinitePayback(t *testing.T) {
	data, err := json.Marshal(Point{Value: 1, PaybackPeriodYears: math.Inf(1), ROIBand: interpret.ROIBandNegative})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"payback_period_years":null`)

	data, err = json.Marshal(Point{Value: 1, PaybackPeriodYears: 0.5})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"payback_period_years":0.5`)
}

func TestParameters_Listing(t *testing.T) {
	infos := Parameters()
	require.NotEmpty(t, infos)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
		assert.NotEmpty(t, info.Unit, "unit missing for %s", info.Name)
		assert.NotEmpty(t, info.Description, "description missing for %s", info.Name)
	}
	assert.Contains(t, names, ParamAttribution)
	assert.Contains(t, names, ParamTimeHorizon)
	assert.True(t, sortedStrings(names), "listing must be name-sorted")
}

func pointValues(points []Point) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if strings.Compare(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}
