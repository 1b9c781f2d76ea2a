package buyer

import (
	"crypto/subtle"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrBuyerIsNotConstructed is returned when a Buyer instance was not
	// created through NewBuyer or RestoreBuyer.
	ErrBuyerIsNotConstructed = errors.New("Buyer must be created via NewBuyer or RestoreBuyer")
)

// Buyer represents a registered buyer principal. Buyers browse shops,
// place orders, and track their own order history. The buyer and merchant
// username namespaces are independent: the same username may exist as
// both.
type Buyer struct {
	// id is the unique identifier for the buyer
	id kernel.UUID

	// username is the unique login name within the buyer namespace
	username string

	// secret is the registration credential, compared on login
	secret string

	// isConstructed ensures the buyer was created via a factory function
	isConstructed bool
}

// NewBuyer creates a new Buyer with validation. Username and secret must
// be non-empty.
func NewBuyer(id kernel.UUID, username, secret string) (*Buyer, error) {
	b := &Buyer{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setUsername(username),
		b.setSecret(secret),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBuyer reconstructs a buyer from persistence.
func RestoreBuyer(id kernel.UUID, username, secret string) (*Buyer, error) {
	return NewBuyer(id, username, secret)
}

// Validate ensures the Buyer instance was properly constructed.
func (b *Buyer) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBuyerIsNotConstructed
	}

	return nil
}

// IsEqual compares two buyers by their unique identifiers.
func (b *Buyer) IsEqual(other *Buyer) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the buyer's unique identifier.
func (b *Buyer) ID() kernel.UUID {
	return b.id
}

// Username returns the buyer's login name.
func (b *Buyer) Username() string {
	return b.username
}

// Secret returns the stored credential. Access is limited to persistence
// mapping; authentication goes through VerifySecret.
func (b *Buyer) Secret() string {
	return b.secret
}

// VerifySecret compares a presented secret against the stored one in
// constant time.
func (b *Buyer) VerifySecret(secret string) bool {
	return subtle.ConstantTimeCompare([]byte(b.secret), []byte(secret)) == 1
}

func (b *Buyer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Buyer) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	b.username = username
	return nil
}

func (b *Buyer) setSecret(secret string) error {
	if secret == "" {
		return errs.NewValueIsRequiredError("secret")
	}
	b.secret = secret
	return nil
}
