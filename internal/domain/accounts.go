package domain

import (
	"time"

	"github.com/google/uuid"
)

// Amounts on every record are kept as the decimal strings received from the
// data source. They are parsed at aggregation time, never stored parsed.

// WalletType is the category tag of a fiat-denominated account.
type WalletType string

const (
	WalletTypePrimary    WalletType = "primary"
	WalletTypeSavings    WalletType = "savings"
	WalletTypeCrypto     WalletType = "crypto"
	WalletTypeInvestment WalletType = "investment"
	WalletTypeBusiness   WalletType = "business"
)

// Wallet represents a user's currency wallet
type Wallet struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	Balance        string     `json:"balance" validate:"amount"`
	PendingBalance string     `json:"pendingBalance" validate:"amount"`
	Currency       string     `json:"currency" validate:"required,iso4217"`
	WalletType     WalletType `json:"walletType" validate:"required,oneof=primary savings crypto investment business"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type AssetType string

const (
	AssetTypeCryptocurrency AssetType = "cryptocurrency"
	AssetTypeStock          AssetType = "stock"
	AssetTypeCommodity      AssetType = "commodity"
	AssetTypeFiat           AssetType = "fiat"
)

// Asset is a tradable instrument priced by ExchangeRate in QuoteCurrency.
type Asset struct {
	Symbol         string    `json:"symbol" validate:"required"`
	Name           string    `json:"name"`
	Type           AssetType `json:"type" validate:"required"`
	IconURL        string    `json:"iconUrl,omitempty"`
	ExchangeRate   string    `json:"exchangeRate" validate:"amount"`
	QuoteCurrency  string    `json:"quoteCurrency,omitempty" validate:"omitempty,iso4217"`
	PriceChange24h string    `json:"priceChange24h,omitempty"`
}

// AssetHolding is a quantity of an asset held by the user.
type AssetHolding struct {
	ID              uuid.UUID `json:"id"`
	Balance         string    `json:"balance" validate:"amount"`
	TotalInvested   string    `json:"totalInvested" validate:"amount"`
	AverageBuyPrice string    `json:"averageBuyPrice" validate:"amount"`
	Asset           Asset     `json:"asset"`
}

type InvestmentProduct struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	ExpectedReturn string `json:"expectedReturn"`
	RiskLevel      string `json:"riskLevel"`
}

// Investment is a time-bound investment position.
type Investment struct {
	ID              uuid.UUID         `json:"id"`
	PrincipalAmount string            `json:"principalAmount" validate:"amount"`
	CurrentValue    string            `json:"currentValue" validate:"amount"`
	InterestEarned  string            `json:"interestEarned"`
	Currency        string            `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Status          string            `json:"status"`
	StartDate       *time.Time        `json:"startDate,omitempty"`
	MaturityDate    *time.Time        `json:"maturityDate,omitempty"`
	Product         InvestmentProduct `json:"product"`
}

// CreditFacility is a line of credit. AvailableCredit + UsedCredit is expected
// not to exceed CreditLimit, but stale data may break that.
type CreditFacility struct {
	ID              uuid.UUID `json:"id"`
	Type            string    `json:"type"`
	CreditLimit     string    `json:"creditLimit" validate:"amount"`
	AvailableCredit string    `json:"availableCredit" validate:"amount"`
	UsedCredit      string    `json:"usedCredit" validate:"amount"`
	InterestRate    string    `json:"interestRate"`
	Currency        string    `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Status          string    `json:"status"`
}

// AccountSet is one resolved snapshot of the user's account records. It is
// read-only for the dashboard core.
type AccountSet struct {
	Wallets          []Wallet         `json:"wallets"`
	Holdings         []AssetHolding   `json:"holdings"`
	Investments      []Investment     `json:"investments"`
	CreditFacilities []CreditFacility `json:"creditFacilities"`
}

// IsEmpty reports whether the set carries no records at all.
func (s AccountSet) IsEmpty() bool {
	return len(s.Wallets) == 0 && len(s.Holdings) == 0 &&
		len(s.Investments) == 0 && len(s.CreditFacilities) == 0
}
