package portfolio

import (
	"github.com/shopspring/decimal"

	"afripay/internal/domain"
)

// AggregateFiat sums the balance of wallets whose type is in types.
func AggregateFiat(wallets []domain.Wallet, types WalletTypeSet) decimal.Decimal {
	total := decimal.Zero
	for _, w := range wallets {
		if types.Has(w.WalletType) {
			total = total.Add(ParseAmount(w.Balance))
		}
	}
	return total
}

// AggregateCrypto sums balance × exchange rate over cryptocurrency holdings.
func AggregateCrypto(holdings []domain.AssetHolding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		if h.Asset.Type == domain.AssetTypeCryptocurrency {
			total = total.Add(HoldingValue(h))
		}
	}
	return total
}

// AggregateInvestments sums the current value of investments.
func AggregateInvestments(investments []domain.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(ParseAmount(inv.CurrentValue))
	}
	return total
}

// AggregateCredit sums the available credit of facilities.
func AggregateCredit(facilities []domain.CreditFacility) decimal.Decimal {
	total := decimal.Zero
	for _, f := range facilities {
		total = total.Add(ParseAmount(f.AvailableCredit))
	}
	return total
}

// HoldingValue is balance × exchange rate. A negative rate counts as zero.
func HoldingValue(h domain.AssetHolding) decimal.Decimal {
	rate := ParseAmount(h.Asset.ExchangeRate)
	if rate.IsNegative() {
		rate = decimal.Zero
	}
	return ParseAmount(h.Balance).Mul(rate)
}

// HoldingValuation is one holding priced at its current exchange rate.
type HoldingValuation struct {
	Holding     domain.AssetHolding
	Quantity    decimal.Decimal
	Value       decimal.Decimal
	Invested    decimal.Decimal
	Gain        decimal.Decimal
	GainPercent Ratio
}

// ValueHolding prices a holding and computes its gain against TotalInvested.
func ValueHolding(h domain.AssetHolding) HoldingValuation {
	value := HoldingValue(h)
	invested := ParseAmount(h.TotalInvested)
	return HoldingValuation{
		Holding:     h,
		Quantity:    ParseAmount(h.Balance),
		Value:       value,
		Invested:    invested,
		Gain:        value.Sub(invested),
		GainPercent: GainPercent(value, invested),
	}
}

// InvestmentValuation is an investment with its gain over the principal.
type InvestmentValuation struct {
	Investment  domain.Investment
	Principal   decimal.Decimal
	Current     decimal.Decimal
	Gain        decimal.Decimal
	GainPercent Ratio
}

func ValueInvestment(inv domain.Investment) InvestmentValuation {
	principal := ParseAmount(inv.PrincipalAmount)
	current := ParseAmount(inv.CurrentValue)
	return InvestmentValuation{
		Investment:  inv,
		Principal:   principal,
		Current:     current,
		Gain:        current.Sub(principal),
		GainPercent: GainPercent(current, principal),
	}
}

// CreditPosition is a facility with its utilisation. OverLimit flags stale
// data where available + used exceeds the limit; such facilities are still
// aggregated.
type CreditPosition struct {
	Facility    domain.CreditFacility
	Limit       decimal.Decimal
	Available   decimal.Decimal
	Used        decimal.Decimal
	Utilisation Ratio
	OverLimit   bool
}

func ValueCredit(f domain.CreditFacility) CreditPosition {
	limit := ParseAmount(f.CreditLimit)
	available := ParseAmount(f.AvailableCredit)
	used := ParseAmount(f.UsedCredit)
	return CreditPosition{
		Facility:    f,
		Limit:       limit,
		Available:   available,
		Used:        used,
		Utilisation: newRatio(used, limit),
		OverLimit:   available.Add(used).GreaterThan(limit),
	}
}
