package validator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"afripay/pkg/errors"
)

const (
	// maxAmountLength bounds the raw text accepted as an amount.
	maxAmountLength = 64
	// maxIntegerDigits and maxFractionDigits bound the magnitude of a parsed
	// amount so that scientific notation cannot produce unbounded values.
	maxIntegerDigits  = 30
	maxFractionDigits = 64
)

// ParseAmount parses a decimal amount string within the accepted bounds.
// Surrounding whitespace is ignored. The error wraps errors.ErrMalformedAmount.
// The "amount" tag accepts exactly the non-negative values this returns.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, errors.Wrap(errors.ErrMalformedAmount, "empty amount")
	}
	if len(s) > maxAmountLength {
		return decimal.Zero, errors.Wrap(errors.ErrMalformedAmount, "amount too long")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", errors.ErrMalformedAmount, raw)
	}

	exp := int(d.Exponent())
	if exp < -maxFractionDigits || coefficientDigits(d)+exp > maxIntegerDigits {
		return decimal.Zero, fmt.Errorf("%w: %q out of range", errors.ErrMalformedAmount, raw)
	}
	return d, nil
}

func coefficientDigits(d decimal.Decimal) int {
	c := d.Coefficient()
	return len(c.Abs(c).String())
}
