package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// LogOutCommandHandler revokes a session. Revoking a token that is
// already gone is a no-op, so logout is idempotent.
type LogOutCommandHandler struct {
	sessions ports.SessionStore
}

// NewLogOutCommandHandler creates a logout handler.
func NewLogOutCommandHandler(sessions ports.SessionStore) LogOutCommandHandler {
	return LogOutCommandHandler{
		sessions: sessions,
	}
}

// Handle removes the session for the command's token.
func (h *LogOutCommandHandler) Handle(_ context.Context, cmd LogOutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.sessions.Delete(cmd.Token())
	return nil
}
