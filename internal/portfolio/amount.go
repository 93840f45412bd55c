// Package portfolio turns raw account records into category totals and net
// worth. Every function here is pure: inputs are never modified and the same
// input always yields the same output.
package portfolio

import (
	"github.com/shopspring/decimal"

	"afripay/pkg/validator"
)

// ParseAmountStrict parses a decimal amount string. Surrounding whitespace is
// ignored. The error wraps errors.ErrMalformedAmount. Record validation uses
// the same rules, so every amount counted as zero here is also reported.
func ParseAmountStrict(raw string) (decimal.Decimal, error) {
	return validator.ParseAmount(raw)
}

// ParseAmount is the total form of ParseAmountStrict: anything that does not
// parse is zero.
func ParseAmount(raw string) decimal.Decimal {
	d, err := ParseAmountStrict(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
