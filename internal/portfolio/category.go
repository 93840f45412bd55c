package portfolio

import (
	"fmt"
	"strings"

	"afripay/internal/domain"
	"afripay/pkg/errors"
)

// Category is one of the portfolio totals that make up net worth.
type Category string

const (
	CategoryFiat       Category = "fiat"
	CategoryCrypto     Category = "crypto"
	CategoryInvestment Category = "investment"
	CategoryCredit     Category = "credit"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{CategoryFiat, CategoryCrypto, CategoryInvestment, CategoryCredit}

// ParseCategory maps a configuration name to a Category.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errors.ErrUnknownCategory, name)
}

// AllWalletTypes lists every wallet type in tab order.
var AllWalletTypes = []domain.WalletType{
	domain.WalletTypePrimary,
	domain.WalletTypeCrypto,
	domain.WalletTypeSavings,
	domain.WalletTypeInvestment,
	domain.WalletTypeBusiness,
}

// ParseWalletType maps a configuration name to a WalletType.
func ParseWalletType(name string) (domain.WalletType, error) {
	wt := domain.WalletType(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Describe(wt); !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownWallet, name)
	}
	return wt, nil
}

// WalletTypeSet is an unordered set of wallet types.
type WalletTypeSet map[domain.WalletType]struct{}

func NewWalletTypeSet(types ...domain.WalletType) WalletTypeSet {
	set := make(WalletTypeSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

func (s WalletTypeSet) Has(t domain.WalletType) bool {
	_, ok := s[t]
	return ok
}

// Descriptor is the presentation metadata of a wallet type.
type Descriptor struct {
	Type    domain.WalletType `json:"type"`
	Label   string            `json:"label"`
	Icon    string            `json:"icon"`
	Tagline string            `json:"tagline"`
	Actions []string          `json:"actions"`
}

// Describe returns the descriptor of a wallet type. The switch must name every
// member of AllWalletTypes; the generic descriptor and false are returned for
// anything else.
func Describe(t domain.WalletType) (Descriptor, bool) {
	switch t {
	case domain.WalletTypePrimary:
		return Descriptor{t, "Primary Wallet", "wallet", "Main spending account", []string{"Send", "Receive"}}, true
	case domain.WalletTypeSavings:
		return Descriptor{t, "Savings Wallet", "piggy-bank", "Goal-based savings", []string{"Deposit", "Withdraw"}}, true
	case domain.WalletTypeCrypto:
		return Descriptor{t, "Crypto Wallet", "bitcoin", "Digital assets", []string{"Buy", "Sell"}}, true
	case domain.WalletTypeInvestment:
		return Descriptor{t, "Investment Wallet", "trending-up", "Portfolio funds", []string{"Invest", "Add Funds"}}, true
	case domain.WalletTypeBusiness:
		return Descriptor{t, "Business Wallet", "building", "Business account", []string{"Send", "Receive"}}, true
	default:
		return Descriptor{t, "Wallet", "wallet", "", nil}, false
	}
}
