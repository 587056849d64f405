package kernel_test

import (
	"testing"

	"fastfood/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		require.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should reject malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})

	t.Run("should reject nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round-trips through Bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject short slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID

		require.Error(t, id.Validate())
	})
}
