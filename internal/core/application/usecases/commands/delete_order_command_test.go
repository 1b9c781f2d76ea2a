package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(id, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "alice", cmd.MerchantUsername())
}

func TestNewDeleteOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.UUID{}, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewDeleteOrderCommand_EmptyMerchantUsername(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMerchantUsernameIsRequired)
}
