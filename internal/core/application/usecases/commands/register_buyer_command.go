package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRegisterBuyerCommandIsNotConstructed = errors.New(
	"RegisterBuyerCommand must be created via NewRegisterBuyerCommand constructor",
)

// RegisterBuyerCommand represents a request to register a new buyer.
// Buyer usernames are unique within the buyer namespace only; a buyer and
// a merchant may share a username.
type RegisterBuyerCommand struct { //nolint:recvcheck //using for validation
	buyerID  kernel.UUID
	username string
	secret   string

	guard guard.ConstructorGuard
}

// NewRegisterBuyerCommand creates a command to register a buyer.
func NewRegisterBuyerCommand(buyerID kernel.UUID, username, secret string) (RegisterBuyerCommand, error) {
	cmd := RegisterBuyerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBuyerID(buyerID),
		cmd.setUsername(username),
		cmd.setSecret(secret),
	); err != nil {
		return RegisterBuyerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterBuyerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBuyerCommandIsNotConstructed)
}

// BuyerID returns the identifier for the new buyer.
func (c RegisterBuyerCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Username returns the requested login name.
func (c RegisterBuyerCommand) Username() string {
	return c.username
}

// Secret returns the registration credential.
func (c RegisterBuyerCommand) Secret() string {
	return c.secret
}

func (c *RegisterBuyerCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *RegisterBuyerCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterBuyerCommand) setSecret(secret string) error {
	if secret == "" {
		return ErrSecretIsRequired
	}

	c.secret = secret
	return nil
}
