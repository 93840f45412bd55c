// Package dashboard runs the access gate on each request and, once the
// visitor has full access, builds the portfolio overview from the account
// data source.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"afripay/internal/display"
	"afripay/internal/domain"
	"afripay/internal/gate"
	"afripay/internal/portfolio"
	"afripay/pkg/errors"
	"afripay/pkg/logger"
	"afripay/pkg/validator"
)

const defaultFetchTimeout = 10 * time.Second

// IdentityProvider reports the session and the signed-in user's profile.
type IdentityProvider interface {
	Session(ctx context.Context) (domain.Session, error)
	// Profile returns nil, or an error, when no profile is available.
	Profile(ctx context.Context) (*domain.UserProfile, error)
}

// AccountSource fetches the user's account records.
type AccountSource interface {
	Accounts(ctx context.Context, userID uuid.UUID) (domain.AccountSet, error)
}

// Page is what the presentation layer renders for one request.
type Page struct {
	Decision gate.Decision `json:"decision"`
	Views    []gate.View   `json:"views"`
	Overview *Overview     `json:"overview,omitempty"`
}

type Service struct {
	identity     IdentityProvider
	accounts     AccountSource
	opts         portfolio.Options
	validator    *validator.Validator
	logger       logger.Logger
	tracker      *Tracker
	fetchTimeout time.Duration
}

func NewService(identity IdentityProvider, accounts AccountSource, opts portfolio.Options, val *validator.Validator, log logger.Logger) *Service {
	return &Service{
		identity:     identity,
		accounts:     accounts,
		opts:         opts,
		validator:    val,
		logger:       log,
		tracker:      &Tracker{},
		fetchTimeout: defaultFetchTimeout,
	}
}

// SetFetchTimeout bounds each account fetch. Non-positive values are ignored.
func (s *Service) SetFetchTimeout(d time.Duration) {
	if d > 0 {
		s.fetchTimeout = d
	}
}

// Render gates route and builds the page. Collaborator failures degrade to
// defined states: no session is unauthenticated, no profile is an incomplete
// profile and no account data is an empty portfolio. The only error is
// errors.ErrStaleAccountData, returned when a newer Render started while this
// one was fetching; the caller should drop the page.
func (s *Service) Render(ctx context.Context, route string, cfg display.Config) (*Page, error) {
	session, err := s.identity.Session(ctx)
	if err != nil {
		s.logger.Warn("Session unavailable, treating visitor as signed out", map[string]interface{}{
			"error": fmt.Errorf("%w: %v", errors.ErrSessionUnavailable, err).Error(),
		})
		session = domain.Session{}
	}

	var profile *domain.UserProfile
	if session.Authenticated && !session.Loading {
		profile, err = s.identity.Profile(ctx)
		if err != nil {
			s.logger.Warn("Profile unavailable, treating profile as incomplete", map[string]interface{}{
				"error": fmt.Errorf("%w: %v", errors.ErrProfileUnavailable, err).Error(),
			})
			profile = nil
		}
	}

	decision := gate.Decide(session, profile, route)
	s.logger.Debug("Access gate evaluated", map[string]interface{}{
		"state":      decision.State,
		"requested":  route,
		"route":      decision.Route,
		"view":       decision.View,
		"redirected": decision.Redirected,
	})

	page := &Page{
		Decision: decision,
		Views:    decision.State.Views(),
	}

	if !showsPortfolio(decision.View) {
		return page, nil
	}

	overview, err := s.overview(ctx, profile.ID, cfg)
	if err != nil {
		return nil, err
	}
	page.Overview = overview
	return page, nil
}

// showsPortfolio reports whether v displays balances.
func showsPortfolio(v gate.View) bool {
	return v == gate.ViewHome || v == gate.ViewWallets
}

func (s *Service) overview(ctx context.Context, userID uuid.UUID, cfg display.Config) (*Overview, error) {
	ticket := s.tracker.Begin()

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	set, err := s.accounts.Accounts(fetchCtx, userID)
	cancel()
	if err != nil {
		s.logger.Error("Failed to fetch accounts, showing empty portfolio", map[string]interface{}{
			"error":   fmt.Errorf("%w: %v", errors.ErrAccountsUnavailable, err).Error(),
			"user_id": userID,
		})
		set = domain.AccountSet{}
	}

	if !s.tracker.Resolve(ticket) {
		s.logger.Debug("Discarding superseded account fetch", map[string]interface{}{
			"ticket":  uint64(ticket),
			"user_id": userID,
		})
		return nil, errors.ErrStaleAccountData
	}

	warnings := Inspect(s.validator, set)
	for _, w := range warnings {
		s.logger.Warn("Malformed account record", map[string]interface{}{
			"record":  w.Record,
			"id":      w.ID,
			"field":   w.Field,
			"detail":  w.Message,
			"user_id": userID,
		})
	}

	o := BuildOverview(set, s.opts, display.NewFormatter(cfg))
	o.Warnings = warnings

	s.logger.Info("Portfolio overview built", map[string]interface{}{
		"user_id":     userID,
		"wallets":     len(set.Wallets),
		"holdings":    len(set.Holdings),
		"investments": len(set.Investments),
		"credit":      len(set.CreditFacilities),
		"warnings":    len(warnings),
	})

	return o, nil
}
