package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, "alice", order.Accepted)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "alice", cmd.MerchantUsername())
	assert.Equal(t, order.Accepted, cmd.NewStatus())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, "alice", order.Accepted)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeOrderStatusCommand_EmptyMerchantUsername(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "", order.Accepted)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrMerchantUsernameIsRequired)
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "alice", order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
