package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.LineItem {
	t.Helper()
	items, err := order.NewLineItems([]order.ItemPair{{Name: "Widget", Quantity: 2}})
	require.NoError(t, err)
	return items
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, "AliceShop", "bob", testItems(t))

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "AliceShop", o.ShopName())
		assert.Equal(t, "bob", o.BuyerUsername())
		assert.Equal(t, order.Pending, o.Status())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, "Widget", o.Items()[0].Name())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "AliceShop", "bob", testItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty shop name", func(t *testing.T) {
		_, err := order.NewOrder(validID, "", "bob", testItems(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty buyer username", func(t *testing.T) {
		_, err := order.NewOrder(validID, "AliceShop", "", testItems(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		_, err := order.NewOrder(validID, "AliceShop", "bob", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with persisted status", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(id, "AliceShop", "bob", testItems(t), order.Accepted)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should reject invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t), order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Items_Immutable(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t))
	require.NoError(t, err)

	items := o.Items()
	items[0], _ = order.NewLineItem("Tampered", 99)

	assert.Equal(t, "Widget", o.Items()[0].Name())
}

func TestOrder_BelongsToShop(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t))
	require.NoError(t, err)

	assert.True(t, o.BelongsToShop("AliceShop"))
	assert.False(t, o.BelongsToShop("EveShop"))
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("strict mode follows the state machine", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t))
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Accepted, order.StrictTransitions))
		assert.Equal(t, order.Accepted, o.Status())

		require.NoError(t, o.ChangeStatus(order.Completed, order.StrictTransitions))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("strict mode rejects illegal transition and leaves status unchanged", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t))
		require.NoError(t, err)

		err = o.ChangeStatus(order.Completed, order.StrictTransitions)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("permissive mode allows re-opening a completed order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t), order.Completed)
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Pending, order.PermissiveTransitions))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("no mode can leave the deleted tombstone", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t), order.Deleted)
		require.NoError(t, err)

		require.Error(t, o.ChangeStatus(order.Pending, order.StrictTransitions))
		require.Error(t, o.ChangeStatus(order.Pending, order.PermissiveTransitions))
		assert.Equal(t, order.Deleted, o.Status())
	})
}

func TestOrder_MarkDeleted(t *testing.T) {
	t.Run("soft-deletes from any status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Accepted, order.Rejected, order.Completed} {
			o, err := order.RestoreOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t), status)
			require.NoError(t, err)

			require.NoError(t, o.MarkDeleted())
			assert.Equal(t, order.Deleted, o.Status())
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "AliceShop", "bob", testItems(t))
		require.NoError(t, err)

		require.NoError(t, o.MarkDeleted())
		require.NoError(t, o.MarkDeleted())
		assert.Equal(t, order.Deleted, o.Status())
	})
}
