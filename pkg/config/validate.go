// Package config loads and validates service configuration.
package config

import (
	"fmt"
	"strings"
)

// Validate ensures the dashboard configuration is usable.
func (c *Config) Validate() error {
	var problems []string

	if len(c.Dashboard.FiatWalletTypes) == 0 {
		problems = append(problems, "DASHBOARD_FIAT_WALLET_TYPES is empty")
	}
	if len(c.Dashboard.NetWorthCategories) == 0 {
		problems = append(problems, "DASHBOARD_NET_WORTH_CATEGORIES is empty")
	}
	if strings.TrimSpace(c.Dashboard.MaskToken) == "" {
		problems = append(problems, "DASHBOARD_MASK_TOKEN is empty")
	}
	if c.Dashboard.FetchTimeout <= 0 {
		problems = append(problems, "DASHBOARD_FETCH_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}

	return nil
}
