package dashboard

import (
	"sync"
)

// Ticket identifies one account fetch.
type Ticket uint64

// Tracker orders account fetches. A fetch superseded by a newer Begin before
// it resolved is rejected, so an old response arriving late can never replace
// newer data.
type Tracker struct {
	mu       sync.Mutex
	issued   Ticket
	accepted Ticket
}

// Begin starts a fetch and supersedes every fetch begun before it.
func (t *Tracker) Begin() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.issued++
	return t.issued
}

// Resolve reports whether the result of the fetch identified by ticket may be
// used. Each ticket resolves at most once.
func (t *Tracker) Resolve(ticket Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ticket != t.issued || ticket <= t.accepted {
		return false
	}
	t.accepted = ticket
	return true
}
