package merchant

import (
	"crypto/subtle"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrMerchantIsNotConstructed is returned when a Merchant instance was
	// not created through NewMerchant or RestoreMerchant.
	ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant or RestoreMerchant")
)

// Merchant represents a registered merchant principal. A merchant owns
// exactly one shop, identified by its unique shop name, and manages the
// orders placed at that shop.
//
// Merchant follows these invariants:
//   - Must have a valid unique identifier
//   - Username and shop name are non-empty and immutable
//   - A merchant is never deleted
type Merchant struct {
	// id is the unique identifier for the merchant
	id kernel.UUID

	// username is the unique login name within the merchant namespace
	username string

	// secret is the registration credential, compared on login
	secret string

	// shopName is the unique name of the merchant's shop
	shopName string

	// isConstructed ensures the merchant was created via a factory function
	isConstructed bool
}

// NewMerchant creates a new Merchant with validation. Username, secret,
// and shop name must all be non-empty.
func NewMerchant(id kernel.UUID, username, secret, shopName string) (*Merchant, error) {
	m := &Merchant{
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setUsername(username),
		m.setSecret(secret),
		m.setShopName(shopName),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMerchant reconstructs a merchant from persistence.
func RestoreMerchant(id kernel.UUID, username, secret, shopName string) (*Merchant, error) {
	return NewMerchant(id, username, secret, shopName)
}

// Validate ensures the Merchant instance was properly constructed.
func (m *Merchant) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMerchantIsNotConstructed
	}

	return nil
}

// IsEqual compares two merchants by their unique identifiers.
func (m *Merchant) IsEqual(other *Merchant) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the merchant's unique identifier.
func (m *Merchant) ID() kernel.UUID {
	return m.id
}

// Username returns the merchant's login name.
func (m *Merchant) Username() string {
	return m.username
}

// Secret returns the stored credential. Access is limited to persistence
// mapping; authentication goes through VerifySecret.
func (m *Merchant) Secret() string {
	return m.secret
}

// ShopName returns the name of the merchant's shop.
func (m *Merchant) ShopName() string {
	return m.shopName
}

// VerifySecret compares a presented secret against the stored one in
// constant time.
func (m *Merchant) VerifySecret(secret string) bool {
	return subtle.ConstantTimeCompare([]byte(m.secret), []byte(secret)) == 1
}

// OwnsShop reports whether the merchant owns the given shop.
func (m *Merchant) OwnsShop(shopName string) bool {
	return m.shopName == shopName
}

func (m *Merchant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Merchant) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	m.username = username
	return nil
}

func (m *Merchant) setSecret(secret string) error {
	if secret == "" {
		return errs.NewValueIsRequiredError("secret")
	}
	m.secret = secret
	return nil
}

func (m *Merchant) setShopName(shopName string) error {
	if shopName == "" {
		return errs.NewValueIsRequiredError("shopName")
	}
	m.shopName = shopName
	return nil
}
