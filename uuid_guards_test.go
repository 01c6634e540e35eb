package guard_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard"
)

func TestValidUUID(t *testing.T) {
	t.Run("passes for canonical UUID", func(t *testing.T) {
		id := uuid.NewString()
		got, err := guard.ValidUUID("userID", id)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		_, err := guard.ValidUUID("userID", "")
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("fails for wrong length", func(t *testing.T) {
		_, err := guard.ValidUUID("userID", "123e4567")
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("fails for misplaced hyphens", func(t *testing.T) {
		_, err := guard.ValidUUID("userID", "123e4567e89b-12d3-a456-4266141740000")
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("fails for non-hex characters", func(t *testing.T) {
		_, err := guard.ValidUUID("userID", "zzze4567-e89b-12d3-a456-426614174000")
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})

	t.Run("nil UUID string is still a valid UUID", func(t *testing.T) {
		_, err := guard.ValidUUID("userID", uuid.Nil.String())
		assert.NoError(t, err)
	})
}

func TestNotNilUUID(t *testing.T) {
	t.Run("passes for non-nil UUID", func(t *testing.T) {
		id := uuid.New()
		got, err := guard.NotNilUUID("userID", id)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("fails for nil UUID", func(t *testing.T) {
		_, err := guard.NotNilUUID("userID", uuid.Nil)
		assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	})
}
