package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/session"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// LogInCommandHandler authenticates a principal and opens a session.
// Unknown usernames and wrong secrets produce the same error, so the
// response does not reveal whether an account exists.
type LogInCommandHandler struct {
	merchants  ports.MerchantRepository
	buyers     ports.BuyerRepository
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

// NewLogInCommandHandler creates a login handler. The TTL bounds how long
// an issued session stays valid without a new login.
func NewLogInCommandHandler(
	merchants ports.MerchantRepository,
	buyers ports.BuyerRepository,
	sessions ports.SessionStore,
	sessionTTL time.Duration,
) LogInCommandHandler {
	return LogInCommandHandler{
		merchants:  merchants,
		buyers:     buyers,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Handle verifies the credentials and returns a freshly issued session.
func (h *LogInCommandHandler) Handle(ctx context.Context, cmd LogInCommand) (session.Session, error) {
	if err := cmd.Validate(); err != nil {
		return session.Session{}, err
	}

	ok, err := h.verifySecret(ctx, cmd)
	if err != nil {
		return session.Session{}, err
	}
	if !ok {
		return session.Session{}, errs.NewInvalidCredentialsError(cmd.Role().String())
	}

	s, err := session.NewSession(cmd.Username(), cmd.Role(), h.sessionTTL)
	if err != nil {
		return session.Session{}, err
	}

	if err = h.sessions.Put(s); err != nil {
		return session.Session{}, err
	}

	return s, nil
}

func (h *LogInCommandHandler) verifySecret(ctx context.Context, cmd LogInCommand) (bool, error) {
	switch cmd.Role() {
	case session.RoleMerchant:
		m, err := h.merchants.GetByUsername(ctx, cmd.Username())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return m.VerifySecret(cmd.Secret()), nil
	case session.RoleBuyer:
		b, err := h.buyers.GetByUsername(ctx, cmd.Username())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return b.VerifySecret(cmd.Secret()), nil
	default:
		return false, errs.NewValueIsInvalidError("role")
	}
}
