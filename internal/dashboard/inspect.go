package dashboard

import (
	"fmt"
	"sort"

	"afripay/internal/domain"
	"afripay/internal/portfolio"
	"afripay/pkg/errors"
	"afripay/pkg/validator"
)

// Warning describes malformed input found in an account set. Warnings never
// stop aggregation; malformed amounts are counted as zero.
type Warning struct {
	Record  string `json:"record"`
	ID      string `json:"id"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s: %s", w.Record, w.ID, w.Field, w.Message)
}

// Inspect validates every record in set and reports what the aggregation will
// have to recover from.
func Inspect(v *validator.Validator, set domain.AccountSet) []Warning {
	var out []Warning

	for _, w := range set.Wallets {
		out = append(out, structWarnings(v, "wallet", w.ID.String(), &w)...)
	}

	for _, h := range set.Holdings {
		out = append(out, structWarnings(v, "holding", h.ID.String(), &h)...)
	}

	for _, inv := range set.Investments {
		out = append(out, structWarnings(v, "investment", inv.ID.String(), &inv)...)
	}

	for _, cf := range set.CreditFacilities {
		id := cf.ID.String()
		out = append(out, structWarnings(v, "credit", id, &cf)...)
		if portfolio.ValueCredit(cf).OverLimit {
			out = append(out, Warning{"credit", id, "creditLimit", errors.ErrCreditOverLimit.Error()})
		}
	}

	return out
}

func structWarnings(v *validator.Validator, record, id string, s interface{}) []Warning {
	errs := v.ValidateStructured(s)
	if len(errs) == 0 {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make([]Warning, 0, len(errs))
	for _, f := range fields {
		out = append(out, Warning{Record: record, ID: id, Field: f, Message: errs[f]})
	}
	return out
}
