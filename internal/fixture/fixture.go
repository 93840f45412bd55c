// Package fixture serves the identity and account collaborators from a JSON
// document, for the CLI and for tests.
package fixture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"afripay/internal/domain"
	"afripay/pkg/errors"
)

// Document is the on-disk shape of a fixture.
type Document struct {
	Session  domain.Session      `json:"session"`
	Profile  *domain.UserProfile `json:"profile,omitempty"`
	Accounts domain.AccountSet   `json:"accounts"`
}

// Source answers session, profile and account queries from one Document. It
// never modifies the document and is safe for concurrent use.
type Source struct {
	doc Document
}

func New(doc Document) *Source {
	return &Source{doc: doc}
}

// Load reads and decodes the fixture at path.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open fixture")
	}
	defer f.Close()

	src, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return src, nil
}

// Decode parses a fixture document. Unknown fields and trailing data are
// rejected.
func Decode(r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFixtureInvalid, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFixtureInvalid, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", errors.ErrFixtureInvalid)
	}
	if doc.Session.Authenticated && doc.Profile != nil && doc.Profile.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: profile has no id", errors.ErrFixtureInvalid)
	}

	return New(doc), nil
}

func (s *Source) Session(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	return s.doc.Session, nil
}

// Profile returns a copy of the fixture profile, or ErrProfileUnavailable
// when the document has none.
func (s *Source) Profile(ctx context.Context) (*domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.doc.Profile == nil {
		return nil, errors.ErrProfileUnavailable
	}
	p := *s.doc.Profile
	return &p, nil
}

// Accounts returns the account set of the fixture profile. Any other user
// has no accounts here.
func (s *Source) Accounts(ctx context.Context, userID uuid.UUID) (domain.AccountSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.AccountSet{}, err
	}
	if s.doc.Profile == nil || s.doc.Profile.ID != userID {
		return domain.AccountSet{}, fmt.Errorf("%w: no accounts for user %s", errors.ErrAccountsUnavailable, userID)
	}
	return s.doc.Accounts, nil
}
