package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrLogOutCommandIsNotConstructed = errors.New(
		"LogOutCommand must be created via NewLogOutCommand constructor",
	)
	ErrTokenIsRequired = errors.New("session token is required")
)

// LogOutCommand represents a request to close a session.
type LogOutCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewLogOutCommand creates a logout command for the given session token.
func NewLogOutCommand(token string) (LogOutCommand, error) {
	cmd := LogOutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setToken(token); err != nil {
		return LogOutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogOutCommand) Validate() error {
	return c.guard.Validate(ErrLogOutCommandIsNotConstructed)
}

// Token returns the session token to revoke.
func (c LogOutCommand) Token() string {
	return c.token
}

func (c *LogOutCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}
