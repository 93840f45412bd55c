package portfolio

import (
	"github.com/shopspring/decimal"

	"afripay/internal/domain"
)

// Tab is the wallets of one type with their balance total.
type Tab struct {
	Descriptor Descriptor
	Wallets    []domain.Wallet
	Total      decimal.Decimal
	Pending    decimal.Decimal
}

// FilterWallets returns the wallets of type t in their original order.
func FilterWallets(wallets []domain.Wallet, t domain.WalletType) []domain.Wallet {
	var out []domain.Wallet
	for _, w := range wallets {
		if w.WalletType == t {
			out = append(out, w)
		}
	}
	return out
}

// Tabs groups wallets by type in the given order. Tabs without wallets are
// kept so the presentation layer can offer to create one.
func Tabs(wallets []domain.Wallet, order []domain.WalletType) []Tab {
	tabs := make([]Tab, 0, len(order))
	for _, t := range order {
		desc, _ := Describe(t)
		filtered := FilterWallets(wallets, t)
		pending := decimal.Zero
		for _, w := range filtered {
			pending = pending.Add(ParseAmount(w.PendingBalance))
		}
		tabs = append(tabs, Tab{
			Descriptor: desc,
			Wallets:    filtered,
			Total:      AggregateFiat(filtered, NewWalletTypeSet(t)),
			Pending:    pending,
		})
	}
	return tabs
}
