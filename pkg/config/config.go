// ==============================================================================
// CONFIG PACKAGE - pkg/config/config.go
// ==============================================================================
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Logging   LoggingConfig
	Dashboard DashboardConfig
	Fixture   FixtureConfig
}

type LoggingConfig struct {
	ServiceName string
	Level       string
}

type DashboardConfig struct {
	// FiatWalletTypes selects the wallets summed into the cash balance.
	FiatWalletTypes []string
	// NetWorthCategories selects the category totals summed into net worth.
	NetWorthCategories []string
	MaskBalances       bool
	MaskToken          string
	FetchTimeout       time.Duration
}

type FixtureConfig struct {
	Path string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// LoadFile is Load with an explicit dotenv file. Variables already set in the
// environment take precedence over the file.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, err
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	return &Config{
		Logging: LoggingConfig{
			ServiceName: getEnv("LOG_SERVICE_NAME", "dashboard"),
			Level:       getEnv("LOG_LEVEL", "info"),
		},
		Dashboard: DashboardConfig{
			FiatWalletTypes:    getListEnv("DASHBOARD_FIAT_WALLET_TYPES", []string{"primary", "savings"}),
			NetWorthCategories: getListEnv("DASHBOARD_NET_WORTH_CATEGORIES", []string{"fiat", "crypto", "investment", "credit"}),
			MaskBalances:       getBoolEnv("DASHBOARD_MASK_BALANCES", false),
			MaskToken:          getEnv("DASHBOARD_MASK_TOKEN", "••••••"),
			FetchTimeout:       getDurationEnv("DASHBOARD_FETCH_TIMEOUT", 10*time.Second),
		},
		Fixture: FixtureConfig{
			Path: getEnv("DASHBOARD_FIXTURE", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
