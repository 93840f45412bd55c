// Command dashboard renders one dashboard route from a fixture document and
// prints the resulting page as JSON.
//
//	dashboard [-fixture file] [-masked] [route]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"afripay/internal/dashboard"
	"afripay/internal/display"
	"afripay/internal/fixture"
	"afripay/internal/portfolio"
	"afripay/pkg/config"
	"afripay/pkg/errors"
	"afripay/pkg/logger"
	"afripay/pkg/validator"
)

func main() {
	cfg := config.Load()

	fixturePath := flag.String("fixture", cfg.Fixture.Path, "path to a fixture JSON document")
	masked := flag.Bool("masked", cfg.Dashboard.MaskBalances, "hide balances behind the mask token")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-fixture file] [-masked] [route]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts, err := portfolio.OptionsFromNames(cfg.Dashboard.FiatWalletTypes, cfg.Dashboard.NetWorthCategories)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", errors.Wrap(err, "invalid configuration"))
	}

	if *fixturePath == "" {
		flag.Usage()
		log.Fatal("No fixture given: pass -fixture or set DASHBOARD_FIXTURE")
	}

	src, err := fixture.Load(*fixturePath)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	route := "/"
	if flag.NArg() > 0 {
		route = flag.Arg(0)
	}

	appLogger := logger.NewWithWriter(cfg.Logging.ServiceName, os.Stderr, logger.ParseLevel(cfg.Logging.Level))

	svc := dashboard.NewService(src, src, opts, validator.New(), appLogger)
	svc.SetFetchTimeout(cfg.Dashboard.FetchTimeout)

	page, err := svc.Render(context.Background(), route, display.Config{
		Masked:    *masked,
		MaskToken: cfg.Dashboard.MaskToken,
	})
	if err != nil {
		appLogger.Fatal("Failed to render dashboard", map[string]interface{}{
			"route": route,
			"error": err.Error(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(page); err != nil {
		log.Fatalf("Failed to write page: %v", err)
	}
}
