package portfolio

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Ratio is a fraction that may be undefined. The zero Ratio is undefined.
type Ratio struct {
	value   decimal.Decimal
	defined bool
}

// NoGainData is returned when a gain cannot be expressed relative to a zero
// principal.
var NoGainData = Ratio{}

func newRatio(num, den decimal.Decimal) Ratio {
	if !den.IsPositive() {
		return NoGainData
	}
	return Ratio{value: num.Div(den), defined: true}
}

// Value returns the fraction and whether it is defined.
func (r Ratio) Value() (decimal.Decimal, bool) {
	return r.value, r.defined
}

func (r Ratio) IsDefined() bool { return r.defined }

// Percent returns the ratio scaled by 100, or zero when undefined.
func (r Ratio) Percent() decimal.Decimal {
	if !r.defined {
		return decimal.Zero
	}
	return r.value.Mul(hundred)
}

// GainPercent returns (current - principal) / principal. A principal of zero
// (or a negative one, which no valid record carries) yields NoGainData.
func GainPercent(current, principal decimal.Decimal) Ratio {
	return newRatio(current.Sub(principal), principal)
}
