package interpret

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders currency and percentage values for a single locale.
// ⭐ SSOT: all locale-sensitive formatting happens here; the calculation
// core stays locale-independent.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for a BCP-47 locale tag and a currency
// symbol. An unparseable tag falls back to en-US.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// DefaultFormatter returns the en-US dollar formatter used by the standard
// narrative.
func DefaultFormatter() *Formatter {
	return NewFormatter("en-US", "$")
}

// Currency renders a whole-currency amount with grouping separators and no
// decimals. The sign precedes the symbol: -$12,345.
func (f *Formatter) Currency(v float64) string {
	rounded := math.Round(math.Abs(v))
	s := f.printer.Sprintf("%s%v", f.symbol, number.Decimal(rounded, number.Scale(0)))
	if v < 0 {
		return "-" + s
	}
	return s
}

// Amount renders a currency amount to two decimal places.
func (f *Formatter) Amount(v float64) string {
	return f.printer.Sprintf("%s%v", f.symbol, number.Decimal(v, number.Scale(2)))
}

// Percent renders a percentage to one decimal place.
func (f *Formatter) Percent(v float64) string {
	return f.printer.Sprintf("%v%%", number.Decimal(v, number.Scale(1)))
}

// Years renders a year count to one decimal place.
func (f *Formatter) Years(v float64) string {
	return f.printer.Sprintf("%v", number.Decimal(v, number.Scale(1)))
}
