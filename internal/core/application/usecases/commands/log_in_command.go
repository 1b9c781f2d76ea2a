package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/session"
	"marketplace/internal/pkg/guard"
)

var ErrLogInCommandIsNotConstructed = errors.New(
	"LogInCommand must be created via NewLogInCommand constructor",
)

// LogInCommand represents a request to authenticate as a merchant or a
// buyer and open a session.
type LogInCommand struct { //nolint:recvcheck //using for validation
	role     session.Role
	username string
	secret   string

	guard guard.ConstructorGuard
}

// NewLogInCommand creates a login command for the given role.
func NewLogInCommand(role session.Role, username, secret string) (LogInCommand, error) {
	cmd := LogInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setUsername(username),
		cmd.setSecret(secret),
	); err != nil {
		return LogInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogInCommand) Validate() error {
	return c.guard.Validate(ErrLogInCommandIsNotConstructed)
}

// Role returns the principal role being authenticated.
func (c LogInCommand) Role() session.Role {
	return c.role
}

// Username returns the login name.
func (c LogInCommand) Username() string {
	return c.username
}

// Secret returns the presented credential.
func (c LogInCommand) Secret() string {
	return c.secret
}

func (c *LogInCommand) setRole(role session.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *LogInCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *LogInCommand) setSecret(secret string) error {
	if secret == "" {
		return ErrSecretIsRequired
	}

	c.secret = secret
	return nil
}
