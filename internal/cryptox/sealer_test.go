package cryptox

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_DeterministicAndDistinct(t *testing.T) {
	k1, err := DeriveKey([]byte("device-a"))
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("device-a"))
	require.NoError(t, err)
	k3, err := DeriveKey([]byte("device-b"))
	require.NoError(t, err)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestSealer_SealOpen(t *testing.T) {
	s, err := NewSealer([]byte("device-secret"))
	require.NoError(t, err)

	sealed := s.Seal([]byte("bearer-xyz"), "access_token")
	assert.False(t, bytes.Contains(sealed, []byte("bearer-xyz")))

	plain, err := s.Open(sealed, "access_token")
	require.NoError(t, err)
	assert.Equal(t, "bearer-xyz", string(plain))
}

func TestSealer_NonceIsFresh(t *testing.T) {
	s, err := NewSealer([]byte("device-secret"))
	require.NoError(t, err)

	a := s.Seal([]byte("same"), "k")
	b := s.Seal([]byte("same"), "k")
	assert.NotEqual(t, a, b)
}

func TestSealer_OpenRejectsTampering(t *testing.T) {
	s, err := NewSealer([]byte("device-secret"))
	require.NoError(t, err)
	sealed := s.Seal([]byte("bearer-xyz"), "access_token")

	t.Run("wrong label", func(t *testing.T) {
		_, err := s.Open(sealed, "other")
		require.ErrorIs(t, err, ErrSealedValueCorrupt)
	})

	t.Run("flipped byte", func(t *testing.T) {
		bad := append([]byte(nil), sealed...)
		bad[len(bad)-1] ^= 0xff
		_, err := s.Open(bad, "access_token")
		require.ErrorIs(t, err, ErrSealedValueCorrupt)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := s.Open([]byte{1, 2, 3}, "access_token")
		require.ErrorIs(t, err, ErrSealedValueCorrupt)
	})

	t.Run("other device", func(t *testing.T) {
		other, err := NewSealer([]byte("another-device"))
		require.NoError(t, err)
		_, err = other.Open(sealed, "access_token")
		require.ErrorIs(t, err, ErrSealedValueCorrupt)
	})
}

func TestNewSealer_EmptySecret(t *testing.T) {
	_, err := NewSealer(nil)
	require.Error(t, err)
}

func TestLoadOrCreateDeviceSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "device.key")

	first, err := LoadOrCreateDeviceSecret(path)
	require.NoError(t, err)
	assert.Len(t, first, 32)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := LoadOrCreateDeviceSecret(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadOrCreateDeviceSecret_Invalid(t *testing.T) {
	dir := t.TempDir()

	notHex := filepath.Join(dir, "nothex.key")
	require.NoError(t, os.WriteFile(notHex, []byte("zz"), 0o600))
	_, err := LoadOrCreateDeviceSecret(notHex)
	require.Error(t, err)

	short := filepath.Join(dir, "short.key")
	require.NoError(t, os.WriteFile(short, []byte(hex.EncodeToString([]byte("abc"))), 0o600))
	_, err = LoadOrCreateDeviceSecret(short)
	require.Error(t, err)
}
