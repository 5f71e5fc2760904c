// Package interpret turns computed ROI metrics into the qualitative
// narrative shown to prospects. Band thresholds are fixed contract values
// shared by the narrative, the CLI report and sensitivity summaries.
package interpret

import (
	"fmt"
	"math"
	"strings"
)

// Outcome bands per headline metric.
const (
	ROIBandStrong   = "strong"
	ROIBandModest   = "modest"
	ROIBandNegative = "negative"

	PaybackBandRapid      = "rapid"
	PaybackBandModerate   = "moderate"
	PaybackBandExtended   = "extended"
	PaybackBandIndefinite = "indefinite"

	NPVBandPositive = "positive"
	NPVBandNegative = "negative"
)

// ROIBand classifies an ROI percentage. The strong branch is strictly
// greater than 100; exactly 100 is modest, exactly 0 is negative.
func ROIBand(roiPct float64) string {
	switch {
	case roiPct > 100:
		return ROIBandStrong
	case roiPct > 0:
		return ROIBandModest
	default:
		return ROIBandNegative
	}
}

// PaybackBand classifies a payback period in years. The +Inf sentinel maps
// to the indefinite band; exactly 2.0 is moderate and exactly 4.0 extended.
func PaybackBand(years float64) string {
	switch {
	case math.IsInf(years, 1):
		return PaybackBandIndefinite
	case years < 2:
		return PaybackBandRapid
	case years < 4:
		return PaybackBandModerate
	default:
		return PaybackBandExtended
	}
}

// NPVBand classifies a net present value. Exactly zero falls in the
// negative band.
func NPVBand(npv float64) string {
	if npv > 0 {
		return NPVBandPositive
	}
	return NPVBandNegative
}

// Generator renders the three-paragraph result narrative.
type Generator struct {
	f *Formatter
}

// NewGenerator creates a narrative generator on top of a formatter.
func NewGenerator(f *Formatter) *Generator {
	return &Generator{f: f}
}

// Default returns a generator with the en-US dollar formatter.
func Default() *Generator {
	return NewGenerator(DefaultFormatter())
}

// Narrative composes the ROI, payback and NPV paragraphs in that fixed
// order. Markup is markdown bold labels with blank-line paragraph breaks.
func (g *Generator) Narrative(roiPct, paybackYears, npv float64, horizonYears int, discountRate float64) string {
	var b strings.Builder
	b.WriteString(g.roiParagraph(roiPct, horizonYears))
	b.WriteString("\n\n")
	b.WriteString(g.paybackParagraph(paybackYears))
	b.WriteString("\n\n")
	b.WriteString(g.npvParagraph(npv, discountRate))
	return b.String()
}

func (g *Generator) roiParagraph(roiPct float64, horizonYears int) string {
	pct := g.f.Percent(roiPct)
	switch ROIBand(roiPct) {
	case ROIBandStrong:
		return fmt.Sprintf(
			"**Return on Investment:** The projected ROI of %s over %d years represents a strong financial return. Every dollar invested is expected to return %s in net benefits.",
			pct, horizonYears, g.f.Amount(roiPct/100))
	case ROIBandModest:
		return fmt.Sprintf(
			"**Return on Investment:** The projected ROI of %s over %d years is a positive but modest return. Every dollar invested is expected to return %s in net benefits.",
			pct, horizonYears, g.f.Amount(roiPct/100))
	default:
		return fmt.Sprintf(
			"**Return on Investment:** The projected ROI of %s over %d years indicates the investment may not recover its costs within the analysis period.",
			pct, horizonYears)
	}
}

func (g *Generator) paybackParagraph(years float64) string {
	switch PaybackBand(years) {
	case PaybackBandIndefinite:
		// The risk sentence only applies to finite paybacks.
		return "**Payback Period:** The payback period is indefinite (negative annual benefit). Annual operating costs meet or exceed total annual benefits, so the initial investment is never recovered."
	case PaybackBandRapid:
		return fmt.Sprintf(
			"**Payback Period:** The initial investment is recovered in %s years. This rapid payback allows quick recovery of the invested capital.",
			g.f.Years(years))
	case PaybackBandModerate:
		return fmt.Sprintf(
			"**Payback Period:** The initial investment is recovered in %s years, a reasonable window that carries moderate risk.",
			g.f.Years(years))
	default:
		return fmt.Sprintf(
			"**Payback Period:** The initial investment is recovered in %s years. This extended payback carries higher risk and warrants careful review.",
			g.f.Years(years))
	}
}

func (g *Generator) npvParagraph(npv, discountRate float64) string {
	if NPVBand(npv) == NPVBandPositive {
		return fmt.Sprintf(
			"**Net Present Value:** Discounted at %s, the investment generates a positive NPV of %s. Future benefits outweigh total costs after accounting for the time value of money, making it economically attractive.",
			g.f.Percent(discountRate), g.f.Currency(npv))
	}
	return fmt.Sprintf(
		"**Net Present Value:** Discounted at %s, the investment produces a negative NPV of %s. The projected benefits do not meet the required rate of return.",
		g.f.Percent(discountRate), g.f.Currency(npv))
}
