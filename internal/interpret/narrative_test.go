package interpret

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestROIBand(t *testing.T) {
	tests := []struct {
		name   string
		roiPct float64
		want   string
	}{
		{"well above threshold", 7971.9, ROIBandStrong},
		{"just above 100", 100.01, ROIBandStrong},
		{"exactly 100 is modest", 100, ROIBandModest},
		{"small positive", 12.5, ROIBandModest},
		{"exactly 0 is negative", 0, ROIBandNegative},
		{"below zero", -42, ROIBandNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ROIBand(tt.roiPct))
		})
	}
}

func TestPaybackBand(t *testing.T) {
	tests := []struct {
		name  string
		years float64
		want  string
	}{
		{"near-instant", 0.04, PaybackBandRapid},
		{"just under two", 1.999, PaybackBandRapid},
		{"exactly two is moderate", 2.0, PaybackBandModerate},
		{"just under four", 3.999, PaybackBandModerate},
		{"exactly four is extended", 4.0, PaybackBandExtended},
		{"very long", 12, PaybackBandExtended},
		{"sentinel", math.Inf(1), PaybackBandIndefinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaybackBand(tt.years))
		})
	}
}

func TestNPVBand(t *testing.T) {
	assert.Equal(t, NPVBandPositive, NPVBand(0.01))
	assert.Equal(t, NPVBandNegative, NPVBand(0))
	assert.Equal(t, NPVBandNegative, NPVBand(-120000))
}

func TestNarrative_StrongScenario(t *testing.T) {
	g := Default()

	// Default benchmark scenario figures.
	s := g.Narrative(7971.891891891892, 18500.0/497700.0, 1219206.2359128476, 3, 10)

	assert.Contains(t, s, "strong financial return")
	assert.Contains(t, s, "7,971.9%")
	assert.Contains(t, s, "$79.72")
	assert.Contains(t, s, "rapid")
	assert.Contains(t, s, "quick recovery")
	assert.Contains(t, s, "positive NPV")
	assert.Contains(t, s, "$1,219,206")
	assert.Contains(t, s, "economically attractive")
	assert.Contains(t, s, "10.0%")
}

func TestNarrative_ParagraphOrder(t *testing.T) {
	s := Default().Narrative(50, 2.5, -1000, 5, 8)

	roi := strings.Index(s, "**Return on Investment:**")
	payback := strings.Index(s, "**Payback Period:**")
	npv := strings.Index(s, "**Net Present Value:**")

	assert.True(t, roi >= 0 && payback > roi && npv > payback, "paragraphs out of order: %s", s)
	assert.Equal(t, 2, strings.Count(s, "\n\n"))
}

func TestNarrative_ModestAndModerate(t *testing.T) {
	s := Default().Narrative(100, 2.0, 500, 3, 10)

	assert.Contains(t, s, "positive but modest return")
	assert.Contains(t, s, "$1.00")
	assert.Contains(t, s, "reasonable")
	assert.Contains(t, s, "moderate risk")
}

func TestNarrative_ExtendedPayback(t *testing.T) {
	s := Default().Narrative(20, 4.0, -250, 5, 12)

	assert.Contains(t, s, "extended")
	assert.Contains(t, s, "higher risk")
	assert.Contains(t, s, "negative NPV")
	assert.Contains(t, s, "does not meet the required rate of return")
	assert.Contains(t, s, "12.0%")
	assert.Contains(t, s, "-$250")
}

func TestNarrative_IndefinitePaybackSkipsRiskCommentary(t *testing.T) {
	s := Default().Narrative(-80, math.Inf(1), -50000, 3, 10)

	assert.Contains(t, s, "indefinite (negative annual benefit)")
	assert.Contains(t, s, "may not recover its costs")
	assert.NotContains(t, s, "risk", "indefinite payback must not carry risk commentary")
}
