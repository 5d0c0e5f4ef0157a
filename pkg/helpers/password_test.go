package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	t.Run("correct password verifies", func(t *testing.T) {
		v, err := h.Hash("Password123!")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(v, "$2a$"))
		assert.True(t, h.Verify("Password123!", v))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		v, err := h.Hash("Password123!")
		require.NoError(t, err)
		assert.False(t, h.Verify("wrong", v))
		assert.False(t, h.Verify("password123!", v))
	})

	t.Run("same password produces different verifiers (salt)", func(t *testing.T) {
		v1, err := h.Hash("samepassword")
		require.NoError(t, err)
		v2, err := h.Hash("samepassword")
		require.NoError(t, err)
		assert.NotEqual(t, v1, v2)
		assert.True(t, h.Verify("samepassword", v1))
		assert.True(t, h.Verify("samepassword", v2))
	})

	t.Run("passwords beyond 72 bytes are not truncated", func(t *testing.T) {
		base := strings.Repeat("a", 80)
		v, err := h.Hash(base + "x")
		require.NoError(t, err)
		assert.True(t, h.Verify(base+"x", v))
		assert.False(t, h.Verify(base+"y", v))
	})

	t.Run("malformed verifier is a mismatch", func(t *testing.T) {
		assert.False(t, h.Verify("password", "not-a-bcrypt-hash"))
		assert.False(t, h.Verify("password", ""))
	})

	t.Run("verifier is not plain bcrypt of the password", func(t *testing.T) {
		raw, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
		require.NoError(t, err)
		assert.False(t, h.Verify("Password123!", string(raw)))
	})
}

func TestNewPasswordHasherCostBounds(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}
