package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/buyer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
	"marketplace/internal/core/domain/model/session"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogInCommandHandler_Handle_MerchantSuccess(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLogInCommand(session.RoleMerchant, "alice", "s3cret")

	m, err := merchant.NewMerchant(kernel.NewUUID(), "alice", "s3cret", "Corner Deli")
	require.NoError(t, err)

	merchants := new(MockMerchantRepository)
	merchants.On("GetByUsername", mock.Anything, "alice").Return(m, nil).Once()

	sessions := new(MockSessionStore)
	sessions.On("Put", mock.AnythingOfType("session.Session")).Return(nil).Once()

	h := commands.NewLogInCommandHandler(merchants, new(MockBuyerRepository), sessions, time.Hour)
	s, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "alice", s.Username())
	assert.Equal(t, session.RoleMerchant, s.Role())
	assert.NotEmpty(t, s.Token())
	assert.False(t, s.IsExpired(time.Now()))
	merchants.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestLogInCommandHandler_Handle_BuyerSuccess(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLogInCommand(session.RoleBuyer, "bob", "hunter2")

	b, err := buyer.NewBuyer(kernel.NewUUID(), "bob", "hunter2")
	require.NoError(t, err)

	buyers := new(MockBuyerRepository)
	buyers.On("GetByUsername", mock.Anything, "bob").Return(b, nil).Once()

	sessions := new(MockSessionStore)
	sessions.On("Put", mock.AnythingOfType("session.Session")).Return(nil).Once()

	h := commands.NewLogInCommandHandler(new(MockMerchantRepository), buyers, sessions, time.Hour)
	s, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, session.RoleBuyer, s.Role())
	buyers.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestLogInCommandHandler_Handle_WrongSecret(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLogInCommand(session.RoleMerchant, "alice", "wrong")

	m, err := merchant.NewMerchant(kernel.NewUUID(), "alice", "s3cret", "Corner Deli")
	require.NoError(t, err)

	merchants := new(MockMerchantRepository)
	merchants.On("GetByUsername", mock.Anything, "alice").Return(m, nil).Once()

	h := commands.NewLogInCommandHandler(merchants, new(MockBuyerRepository), new(MockSessionStore), time.Hour)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLogInCommandHandler_Handle_UnknownUsernameSameError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewLogInCommand(session.RoleBuyer, "ghost", "whatever")

	buyers := new(MockBuyerRepository)
	buyers.On("GetByUsername", mock.Anything, "ghost").
		Return(nil, errs.NewObjectNotFoundError("username", "ghost")).Once()

	h := commands.NewLogInCommandHandler(new(MockMerchantRepository), buyers, new(MockSessionStore), time.Hour)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	// Unknown account and wrong secret must be indistinguishable.
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestLogInCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LogInCommand{} // not constructed properly
	h := commands.NewLogInCommandHandler(
		new(MockMerchantRepository), new(MockBuyerRepository), new(MockSessionStore), time.Hour,
	)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
