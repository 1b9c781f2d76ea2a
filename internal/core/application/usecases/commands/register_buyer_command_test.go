package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterBuyerCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterBuyerCommand(id, "bob", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.BuyerID())
	assert.Equal(t, "bob", cmd.Username())
	assert.Equal(t, "hunter2", cmd.Secret())
}

func TestNewRegisterBuyerCommand_InvalidBuyerID(t *testing.T) {
	_, err := commands.NewRegisterBuyerCommand(kernel.UUID{}, "bob", "hunter2")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRegisterBuyerCommand_EmptyUsername(t *testing.T) {
	_, err := commands.NewRegisterBuyerCommand(kernel.NewUUID(), "", "hunter2")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUsernameIsRequired)
}

func TestNewRegisterBuyerCommand_EmptySecret(t *testing.T) {
	_, err := commands.NewRegisterBuyerCommand(kernel.NewUUID(), "bob", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSecretIsRequired)
}
