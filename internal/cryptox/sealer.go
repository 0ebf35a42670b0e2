// Package cryptox seals values kept in the local store so the bearer token
// never sits on disk in clear text.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/calcms/internal/common"
	"github.com/dmitrijs2005/calcms/internal/filex"
	"golang.org/x/crypto/hkdf"
)

const (
	deviceSecretSize = 32
	sealingInfo      = "calcms/secure-store/v1"
)

var ErrSealedValueCorrupt = errors.New("sealed value corrupt")

// Sealer encrypts and authenticates small values with AES-256-GCM.
// The sealed form is nonce || ciphertext.
type Sealer struct {
	aead cipher.AEAD
}

// DeriveKey expands the device secret into a 32-byte sealing key (HKDF-SHA256).
func DeriveKey(deviceSecret []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, deviceSecret, nil, []byte(sealingInfo))
	key := make([]byte, 32)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

func NewSealer(deviceSecret []byte) (*Sealer, error) {
	if len(deviceSecret) == 0 {
		return nil, errors.New("empty device secret")
	}
	key, err := DeriveKey(deviceSecret)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext. label is authenticated but not encrypted; the
// same label must be passed to Open.
func (s *Sealer) Seal(plaintext []byte, label string) []byte {
	nonce := common.GenerateRandByteArray(s.aead.NonceSize())
	return s.aead.Seal(nonce, nonce, plaintext, []byte(label))
}

func (s *Sealer) Open(sealed []byte, label string) ([]byte, error) {
	n := s.aead.NonceSize()
	if len(sealed) < n+s.aead.Overhead() {
		return nil, ErrSealedValueCorrupt
	}
	plaintext, err := s.aead.Open(nil, sealed[:n], sealed[n:], []byte(label))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSealedValueCorrupt, err)
	}
	return plaintext, nil
}

// LoadOrCreateDeviceSecret reads the hex-encoded device secret at path,
// creating the file (mode 0600) with a fresh random secret when missing.
func LoadOrCreateDeviceSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		secret, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("device key %s: %w", path, err)
		}
		if len(secret) != deviceSecretSize {
			return nil, fmt.Errorf("device key %s: want %d bytes, got %d", path, deviceSecretSize, len(secret))
		}
		return secret, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if _, err := filex.EnsureParentDir(path, 0o700); err != nil {
		return nil, err
	}
	secret := common.GenerateRandByteArray(deviceSecretSize)
	if err := os.WriteFile(path, []byte(hex.EncodeToString(secret)), 0o600); err != nil {
		return nil, err
	}
	return secret, nil
}
