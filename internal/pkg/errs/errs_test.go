package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("username", "alice")

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, "alice", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: alice", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("unique constraint violation")
		err := errs.NewObjectAlreadyExistsErrorWithCause("shopName", "AliceShop", cause)

		assert.Equal(t, "shopName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: shopName, value is: AliceShop (cause: unique constraint violation)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("items", cause)

		assert.Equal(t, "items", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: items (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("username")

	assert.Equal(t, "username", err.ParamName)
	assert.Equal(t, "value is required: username", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -5, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, "value is invalid: -5 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("change order status")

		assert.Equal(t, "change order status", err.Operation)
		assert.Equal(t, "unauthorized: change order status", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("shop mismatch")
		err := errs.NewUnauthorizedErrorWithCause("delete order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "unauthorized: delete order (cause: shop mismatch)", err.Error())
	})
}

func TestInvalidCredentialsError(t *testing.T) {
	err := errs.NewInvalidCredentialsError("merchant")

	assert.Equal(t, "merchant", err.Kind)
	assert.Equal(t, "invalid credentials: merchant", err.Error())
	assert.Equal(t, errs.ErrInvalidCredentials, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "invalid credentials", errs.ErrInvalidCredentials.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewObjectAlreadyExistsError("username", "alice"), errs.ErrObjectAlreadyExists)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("username"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewUnauthorizedError("list orders"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewInvalidCredentialsError("buyer"), errs.ErrInvalidCredentials)
	})
}
