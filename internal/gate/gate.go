// Package gate decides which views a visitor may see from the session and
// profile reported by the identity provider. It holds no state between calls.
package gate

import (
	"strings"

	"afripay/internal/domain"
)

// State is the account-readiness stage of a visitor.
type State string

const (
	StateLoading            State = "loading"
	StateUnauthenticated    State = "unauthenticated"
	StateIncompleteProfile  State = "incomplete_profile"
	StateUnverifiedIdentity State = "unverified_identity"
	StateFullAccess         State = "full_access"
)

// AllStates lists every state in priority order.
var AllStates = []State{
	StateLoading,
	StateUnauthenticated,
	StateIncompleteProfile,
	StateUnverifiedIdentity,
	StateFullAccess,
}

// Evaluate classifies the visitor. Checks run in priority order: loading,
// authentication, profile completeness, then identity verification. A nil
// profile on an authenticated session is an incomplete profile.
func Evaluate(session domain.Session, profile *domain.UserProfile) State {
	switch {
	case session.Loading:
		return StateLoading
	case !session.Authenticated:
		return StateUnauthenticated
	case !profile.IsComplete():
		return StateIncompleteProfile
	case !profile.IsVerified():
		return StateUnverifiedIdentity
	default:
		return StateFullAccess
	}
}

// Views returns the views admitted in s. Loading admits only the loading view.
func (s State) Views() []View {
	if s == StateLoading {
		return []View{ViewLoading}
	}
	routes := routeTable(s)
	views := make([]View, 0, len(routes))
	seen := make(map[View]bool, len(routes))
	for _, r := range routes {
		if !seen[r.View] {
			seen[r.View] = true
			views = append(views, r.View)
		}
	}
	return views
}

// Routes returns a copy of the route table admitted in s.
func (s State) Routes() []Route {
	return append([]Route(nil), routeTable(s)...)
}

// DefaultRoute is where requests outside the state's view-set land. It is
// empty for Loading.
func (s State) DefaultRoute() string {
	routes := routeTable(s)
	if len(routes) == 0 {
		return ""
	}
	return routes[0].Path
}

// Admits reports whether v is part of the state's view-set.
func (s State) Admits(v View) bool {
	for _, admitted := range s.Views() {
		if admitted == v {
			return true
		}
	}
	return false
}

// Decision is the outcome of gating one requested route.
type Decision struct {
	State     State  `json:"state"`
	Requested string `json:"requested"`
	// Route is the path actually served; empty while loading.
	Route      string `json:"route"`
	View       View   `json:"view"`
	Redirected bool   `json:"redirected"`
}

// Decide gates a requested route. A route outside the current view-set falls
// back to the state's default route; only in full access does an unknown route
// resolve to the not-found view.
func Decide(session domain.Session, profile *domain.UserProfile, requested string) Decision {
	state := Evaluate(session, profile)
	path := NormalizePath(requested)
	d := Decision{State: state, Requested: requested}

	if state == StateLoading {
		d.View = ViewLoading
		return d
	}

	routes := routeTable(state)
	if r, ok := lookup(routes, path); ok {
		d.Route = r.Path
		d.View = r.View
		return d
	}

	if state == StateFullAccess {
		d.Route = path
		d.View = ViewNotFound
		return d
	}

	def := routes[0]
	d.Route = def.Path
	d.View = def.View
	d.Redirected = true
	return d
}

// NormalizePath strips the query, fragment and trailing slashes from a
// requested location and lower-cases it; route matching ignores case. An empty
// location is the root.
func NormalizePath(location string) string {
	p := strings.ToLower(strings.TrimSpace(location))
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}
