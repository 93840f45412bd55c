package dashboard

import (
	"time"

	"github.com/google/uuid"

	"afripay/internal/display"
	"afripay/internal/domain"
	"afripay/internal/portfolio"
)

// Totals are the formatted category totals of the portfolio overview.
type Totals struct {
	NetWorth        string `json:"netWorth"`
	Cash            string `json:"cash"`
	Crypto          string `json:"crypto"`
	Investments     string `json:"investments"`
	CreditAvailable string `json:"creditAvailable"`
}

type WalletRow struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Currency  string    `json:"currency"`
	Balance   string    `json:"balance"`
	Pending   string    `json:"pending,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type TabView struct {
	Type    domain.WalletType `json:"type"`
	Label   string            `json:"label"`
	Icon    string            `json:"icon"`
	Tagline string            `json:"tagline"`
	Actions []string          `json:"actions"`
	Total   string            `json:"total"`
	Wallets []WalletRow       `json:"wallets"`
}

type HoldingRow struct {
	ID          uuid.UUID `json:"id"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	Quantity    string    `json:"quantity"`
	GainPercent string    `json:"gainPercent"`
}

type InvestmentRow struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	RiskLevel    string    `json:"riskLevel"`
	Status       string    `json:"status"`
	CurrentValue string    `json:"currentValue"`
	Principal    string    `json:"principal"`
	GainPercent  string    `json:"gainPercent"`
}

type CreditRow struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Limit       string    `json:"limit"`
	Available   string    `json:"available"`
	Used        string    `json:"used"`
	Utilisation string    `json:"utilisation"`
	OverLimit   bool      `json:"overLimit"`
}

// Overview is the wallets screen: the snapshot with everything formatted.
type Overview struct {
	Snapshot    portfolio.Snapshot `json:"snapshot"`
	Totals      Totals             `json:"totals"`
	Tabs        []TabView          `json:"tabs"`
	Holdings    []HoldingRow       `json:"holdings"`
	Investments []InvestmentRow    `json:"investments"`
	Credit      []CreditRow        `json:"credit"`
	Masked      bool               `json:"masked"`
	Warnings    []Warning          `json:"warnings,omitempty"`
}

// BuildOverview aggregates set and formats the result. Totals mix currencies
// and are shown in the formatter's default currency.
func BuildOverview(set domain.AccountSet, opts portfolio.Options, f *display.Formatter) *Overview {
	snap := portfolio.Aggregate(set, opts)

	o := &Overview{
		Snapshot: snap,
		Totals: Totals{
			NetWorth:        f.Money(snap.TotalNetWorth, ""),
			Cash:            f.Money(snap.TotalFiatBalance, ""),
			Crypto:          f.Money(snap.TotalCryptoValue, ""),
			Investments:     f.Money(snap.TotalInvestmentValue, ""),
			CreditAvailable: f.Money(snap.TotalCreditAvailable, ""),
		},
		Tabs:        []TabView{},
		Holdings:    []HoldingRow{},
		Investments: []InvestmentRow{},
		Credit:      []CreditRow{},
		Masked:      f.Config().Masked,
	}

	for _, tab := range portfolio.Tabs(set.Wallets, portfolio.AllWalletTypes) {
		tv := TabView{
			Type:    tab.Descriptor.Type,
			Label:   tab.Descriptor.Label,
			Icon:    tab.Descriptor.Icon,
			Tagline: tab.Descriptor.Tagline,
			Actions: tab.Descriptor.Actions,
			Total:   f.Money(tab.Total, ""),
			Wallets: make([]WalletRow, 0, len(tab.Wallets)),
		}
		for _, w := range tab.Wallets {
			row := WalletRow{
				ID:        w.ID,
				Label:     tab.Descriptor.Label,
				Currency:  w.Currency,
				Balance:   f.Money(portfolio.ParseAmount(w.Balance), w.Currency),
				CreatedAt: w.CreatedAt,
			}
			if pending := portfolio.ParseAmount(w.PendingBalance); pending.IsPositive() {
				row.Pending = f.Money(pending, w.Currency)
			}
			tv.Wallets = append(tv.Wallets, row)
		}
		o.Tabs = append(o.Tabs, tv)
	}

	for _, h := range set.Holdings {
		if h.Asset.Type != domain.AssetTypeCryptocurrency {
			continue
		}
		v := portfolio.ValueHolding(h)
		o.Holdings = append(o.Holdings, HoldingRow{
			ID:          h.ID,
			Symbol:      h.Asset.Symbol,
			Name:        h.Asset.Name,
			Value:       f.Money(v.Value, h.Asset.QuoteCurrency),
			Quantity:    f.Quantity(v.Quantity, h.Asset.Symbol),
			GainPercent: f.Percent(v.GainPercent),
		})
	}

	for _, inv := range set.Investments {
		v := portfolio.ValueInvestment(inv)
		o.Investments = append(o.Investments, InvestmentRow{
			ID:           inv.ID,
			Name:         inv.Product.Name,
			RiskLevel:    inv.Product.RiskLevel,
			Status:       inv.Status,
			CurrentValue: f.Money(v.Current, inv.Currency),
			Principal:    f.Money(v.Principal, inv.Currency),
			GainPercent:  f.Percent(v.GainPercent),
		})
	}

	for _, cf := range set.CreditFacilities {
		p := portfolio.ValueCredit(cf)
		o.Credit = append(o.Credit, CreditRow{
			ID:          cf.ID,
			Type:        cf.Type,
			Limit:       f.Money(p.Limit, cf.Currency),
			Available:   f.Money(p.Available, cf.Currency),
			Used:        f.Money(p.Used, cf.Currency),
			Utilisation: f.Ratio(p.Utilisation),
			OverLimit:   p.OverLimit,
		})
	}

	return o
}
