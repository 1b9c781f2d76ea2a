package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrRegisterMerchantCommandIsNotConstructed = errors.New(
		"RegisterMerchantCommand must be created via NewRegisterMerchantCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrSecretIsRequired   = errors.New("secret is required")
	ErrShopNameIsRequired = errors.New("shop name is required")
)

// RegisterMerchantCommand represents a request to register a new merchant
// together with its shop. Usernames and shop names are unique; conflicts
// surface from the handler as already-exists errors.
type RegisterMerchantCommand struct { //nolint:recvcheck //using for validation
	merchantID kernel.UUID
	username   string
	secret     string
	shopName   string

	guard guard.ConstructorGuard
}

// NewRegisterMerchantCommand creates a command to register a merchant.
// Validates that the ID is valid and username, secret, and shop name are
// non-empty.
func NewRegisterMerchantCommand(
	merchantID kernel.UUID,
	username, secret, shopName string,
) (RegisterMerchantCommand, error) {
	cmd := RegisterMerchantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMerchantID(merchantID),
		cmd.setUsername(username),
		cmd.setSecret(secret),
		cmd.setShopName(shopName),
	); err != nil {
		return RegisterMerchantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterMerchantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMerchantCommandIsNotConstructed)
}

// MerchantID returns the identifier for the new merchant.
func (c RegisterMerchantCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Username returns the requested login name.
func (c RegisterMerchantCommand) Username() string {
	return c.username
}

// Secret returns the registration credential.
func (c RegisterMerchantCommand) Secret() string {
	return c.secret
}

// ShopName returns the requested shop name.
func (c RegisterMerchantCommand) ShopName() string {
	return c.shopName
}

func (c *RegisterMerchantCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *RegisterMerchantCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterMerchantCommand) setSecret(secret string) error {
	if secret == "" {
		return ErrSecretIsRequired
	}

	c.secret = secret
	return nil
}

func (c *RegisterMerchantCommand) setShopName(shopName string) error {
	if shopName == "" {
		return ErrShopNameIsRequired
	}

	c.shopName = shopName
	return nil
}
