// Package session provides the session context value object: the explicit,
// role-tagged association between a request and an authenticated
// principal. A session is the only carrier of "who is asking" passed into
// the access policy; it is opaque to the order ledger. Sessions replace
// the original system's global cookie-keyed session state with a value
// threaded through every call.
package session

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role identifies which principal kind a session authenticates.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleMerchant marks a session authenticated as a merchant.
	RoleMerchant

	// RoleBuyer marks a session authenticated as a buyer.
	RoleBuyer
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleMerchant:
		return "merchant"
	case RoleBuyer:
		return "buyer"
	default:
		return "unknown"
	}
}

// Validate checks the role is merchant or buyer.
func (r Role) Validate() error {
	if r != RoleMerchant && r != RoleBuyer {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// RoleFromString parses a role name.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "merchant":
		return RoleMerchant, nil
	case "buyer":
		return RoleBuyer, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a recognized role", s))
	}
}

// ErrSessionIsNotConstructed is returned when a Session was not created
// through NewSession.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession")

// Session is an immutable value object pairing an opaque token with an
// authenticated principal and its role. It expires after its deadline and
// is removed explicitly on logout.
type Session struct {
	token     string
	username  string
	role      Role
	expiresAt time.Time

	isConstructed bool
}

// NewSession creates a session for an authenticated principal. The token
// is a fresh random identifier and the session expires ttl from now.
func NewSession(username string, role Role, ttl time.Duration) (Session, error) {
	if username == "" {
		return Session{}, errs.NewValueIsRequiredError("username")
	}
	if err := role.Validate(); err != nil {
		return Session{}, err
	}
	if ttl <= 0 {
		return Session{}, errs.NewValueIsInvalidError("ttl")
	}

	return Session{
		token:         kernel.NewUUID().String(),
		username:      username,
		role:          role,
		expiresAt:     time.Now().Add(ttl),
		isConstructed: true,
	}, nil
}

// RestoreSession reconstructs a session from the session store.
func RestoreSession(token, username string, role Role, expiresAt time.Time) (Session, error) {
	if token == "" {
		return Session{}, errs.NewValueIsRequiredError("token")
	}
	if username == "" {
		return Session{}, errs.NewValueIsRequiredError("username")
	}
	if err := role.Validate(); err != nil {
		return Session{}, err
	}

	return Session{
		token:         token,
		username:      username,
		role:          role,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the session was created through a factory function.
func (s Session) Validate() error {
	if !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// Token returns the opaque session token presented by the client.
func (s Session) Token() string {
	return s.token
}

// Username returns the authenticated principal's username.
func (s Session) Username() string {
	return s.username
}

// Role returns the authenticated principal's role.
func (s Session) Role() Role {
	return s.role
}

// ExpiresAt returns the session's expiry deadline.
func (s Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsExpired reports whether the session has passed its deadline at the
// given instant.
func (s Session) IsExpired(now time.Time) bool {
	return now.After(s.expiresAt)
}
