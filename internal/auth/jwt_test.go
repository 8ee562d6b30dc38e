package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret")
	hostID := "8e5a2c1e-6f2d-4a7b-9c3d-1f0e2a3b4c5d"

	t.Run("round trip", func(t *testing.T) {
		token, err := m.GenerateToken(hostID, "amina@example.com", time.Hour)
		require.NoError(t, err)

		claims, err := m.ParseAndValidate(token)
		require.NoError(t, err)
		assert.Equal(t, hostID, claims.HostID)
		assert.Equal(t, "amina@example.com", claims.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := m.GenerateToken(hostID, "amina@example.com", time.Hour)
		require.NoError(t, err)

		other := NewJWTManager("different-secret")
		_, err = other.ParseAndValidate(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := m.GenerateToken(hostID, "amina@example.com", -time.Minute)
		require.NoError(t, err)

		_, err = m.ParseAndValidate(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.ParseAndValidate("not.a.jwt")
		assert.Error(t, err)
	})
}
