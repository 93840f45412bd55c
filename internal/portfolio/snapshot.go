package portfolio

import (
	"github.com/shopspring/decimal"

	"afripay/internal/domain"
)

// Snapshot holds the category totals of one aggregation. Totals across
// currencies are summed as if unit-equivalent; no conversion takes place.
type Snapshot struct {
	TotalFiatBalance     decimal.Decimal `json:"totalFiatBalance"`
	TotalCryptoValue     decimal.Decimal `json:"totalCryptoValue"`
	TotalInvestmentValue decimal.Decimal `json:"totalInvestmentValue"`
	TotalCreditAvailable decimal.Decimal `json:"totalCreditAvailable"`
	TotalNetWorth        decimal.Decimal `json:"totalNetWorth"`
}

// Total returns the total of one category.
func (s Snapshot) Total(c Category) decimal.Decimal {
	switch c {
	case CategoryFiat:
		return s.TotalFiatBalance
	case CategoryCrypto:
		return s.TotalCryptoValue
	case CategoryInvestment:
		return s.TotalInvestmentValue
	case CategoryCredit:
		return s.TotalCreditAvailable
	default:
		return decimal.Zero
	}
}

// Sum adds the totals of the given categories.
func (s Snapshot) Sum(categories ...Category) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(s.Total(c))
	}
	return total
}

// NetWorth is the sum of all four category totals.
func NetWorth(s Snapshot) decimal.Decimal {
	return s.Sum(AllCategories...)
}

// Options selects what an aggregation includes.
type Options struct {
	// FiatWalletTypes are the wallets counted as cash balance.
	FiatWalletTypes WalletTypeSet
	// NetWorthCategories are the totals summed into net worth.
	NetWorthCategories []Category
}

func DefaultOptions() Options {
	return Options{
		FiatWalletTypes:    NewWalletTypeSet(domain.WalletTypePrimary, domain.WalletTypeSavings),
		NetWorthCategories: AllCategories,
	}
}

// OptionsFromNames builds Options from configuration names. Duplicate
// categories are counted once.
func OptionsFromNames(walletTypes, categories []string) (Options, error) {
	opts := Options{FiatWalletTypes: NewWalletTypeSet()}
	for _, name := range walletTypes {
		wt, err := ParseWalletType(name)
		if err != nil {
			return Options{}, err
		}
		opts.FiatWalletTypes[wt] = struct{}{}
	}

	seen := make(map[Category]bool)
	for _, name := range categories {
		c, err := ParseCategory(name)
		if err != nil {
			return Options{}, err
		}
		if !seen[c] {
			seen[c] = true
			opts.NetWorthCategories = append(opts.NetWorthCategories, c)
		}
	}
	return opts, nil
}

// Aggregate computes a fresh Snapshot from one account set.
func Aggregate(set domain.AccountSet, opts Options) Snapshot {
	s := Snapshot{
		TotalFiatBalance:     AggregateFiat(set.Wallets, opts.FiatWalletTypes),
		TotalCryptoValue:     AggregateCrypto(set.Holdings),
		TotalInvestmentValue: AggregateInvestments(set.Investments),
		TotalCreditAvailable: AggregateCredit(set.CreditFacilities),
	}
	s.TotalNetWorth = s.Sum(opts.NetWorthCategories...)
	return s
}
