package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Session is the authentication state reported by the identity provider.
type Session struct {
	Loading       bool `json:"isLoading"`
	Authenticated bool `json:"isAuthenticated"`
}

type KYCStatus string

const (
	KYCStatusUnverified KYCStatus = "unverified"
	KYCStatusPending    KYCStatus = "pending"
	KYCStatusVerified   KYCStatus = "verified"
	KYCStatusRejected   KYCStatus = "rejected"
)

// UserProfile is the signed-in user's record as far as access gating needs it.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	KYCStatus KYCStatus `json:"kycStatus"`
}

// IsComplete reports whether both name fields are present. A nil profile is
// never complete.
func (p *UserProfile) IsComplete() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.FirstName) != "" && strings.TrimSpace(p.LastName) != ""
}

// IsVerified reports whether identity verification has succeeded.
func (p *UserProfile) IsVerified() bool {
	return p != nil && p.KYCStatus == KYCStatusVerified
}
