package display

import (
	"github.com/shopspring/decimal"

	"afripay/internal/portfolio"
)

// Config is the display configuration threaded into every formatting call.
type Config struct {
	Masked    bool   `json:"masked"`
	MaskToken string `json:"maskToken,omitempty"`
	// DefaultCurrency formats totals that carry no currency of their own.
	DefaultCurrency string `json:"defaultCurrency,omitempty"`
}

// Formatter applies a Config to the package-level format functions.
type Formatter struct {
	cfg Config
}

func NewFormatter(cfg Config) *Formatter {
	if cfg.MaskToken == "" {
		cfg.MaskToken = DefaultMaskToken
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "USD"
	}
	return &Formatter{cfg: cfg}
}

func (f *Formatter) Config() Config { return f.cfg }

func (f *Formatter) mask(value string) string {
	if f.cfg.Masked {
		return f.cfg.MaskToken
	}
	return value
}

// Money formats amount in code, or in the default currency when code is empty.
func (f *Formatter) Money(amount decimal.Decimal, code string) string {
	if code == "" {
		code = f.cfg.DefaultCurrency
	}
	return f.mask(FormatCurrency(amount, code))
}

// Percent formats a gain ratio. It is masked like money.
func (f *Formatter) Percent(r portfolio.Ratio) string {
	return f.mask(FormatPercent(r))
}

// Ratio formats an unsigned ratio such as credit utilisation.
func (f *Formatter) Ratio(r portfolio.Ratio) string {
	return f.mask(FormatRatio(r))
}

func (f *Formatter) Quantity(quantity decimal.Decimal, symbol string) string {
	return f.mask(FormatQuantity(quantity, symbol))
}
