// Package display turns portfolio values into strings for the presentation
// layer. Masking happens here only; aggregation always sees real values.
package display

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"afripay/internal/portfolio"
	"afripay/pkg/errors"
)

// DefaultMaskToken replaces every masked value regardless of its magnitude.
const DefaultMaskToken = "••••••"

// NoGainDataLabel is shown for a gain that has no defined percentage.
const NoGainDataLabel = "N/A"

// quantityPlaces is the precision of asset quantities.
const quantityPlaces = 6

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// Currency looks up an ISO 4217 code. The error wraps errors.ErrUnknownCurrency.
func Currency(code string) (*money.Currency, error) {
	c := money.GetCurrency(strings.ToUpper(strings.TrimSpace(code)))
	if c == nil {
		return nil, errors.Wrap(errors.ErrUnknownCurrency, code)
	}
	return c, nil
}

// FormatCurrency formats amount in the currency's conventions, rounded to its
// minor unit. Unknown codes, and amounts too large for the minor-unit range,
// fall back to FormatNumber.
func FormatCurrency(amount decimal.Decimal, code string) string {
	cur, err := Currency(code)
	if err != nil {
		return FormatNumber(amount, code)
	}
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return FormatNumber(amount, cur.Code)
	}
	return cur.Formatter().Format(minor.IntPart())
}

// FormatNumber is the generic format: two decimals, comma thousands separator
// and the code, if any, as a suffix.
func FormatNumber(amount decimal.Decimal, code string) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)

	if code = strings.TrimSpace(code); code != "" {
		b.WriteByte(' ')
		b.WriteString(code)
	}
	return b.String()
}

// FormatPercent renders a ratio as a percentage with two decimals and an
// explicit sign for gains: "+12.50%", "-3.10%". An undefined ratio renders as
// NoGainDataLabel.
func FormatPercent(r portfolio.Ratio) string {
	if !r.IsDefined() {
		return NoGainDataLabel
	}
	pct := r.Percent().Round(2)
	s := pct.StringFixed(2) + "%"
	if !pct.IsNegative() {
		s = "+" + s
	}
	return s
}

// FormatRatio renders a ratio as an unsigned percentage, e.g. utilisation.
func FormatRatio(r portfolio.Ratio) string {
	if !r.IsDefined() {
		return NoGainDataLabel
	}
	return r.Percent().StringFixed(2) + "%"
}

// FormatQuantity renders an asset quantity with six decimals and its symbol.
func FormatQuantity(quantity decimal.Decimal, symbol string) string {
	s := quantity.StringFixed(quantityPlaces)
	if symbol = strings.TrimSpace(symbol); symbol != "" {
		s += " " + symbol
	}
	return s
}

// MaskedOrVisible returns DefaultMaskToken when masked, value otherwise.
func MaskedOrVisible(value string, masked bool) string {
	if masked {
		return DefaultMaskToken
	}
	return value
}
