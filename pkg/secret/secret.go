package secret

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"

	"github.com/taicode-labs/auth-sdk/pkg/token"
)

const (
	// MasterKeySize is the required length of a master key for Derive.
	MasterKeySize = 32

	// valueSize is the length of key material before base64url encoding.
	valueSize = 32

	// deriveInfo provides domain separation for HKDF derivation.
	deriveInfo = "auth-sdk-token-secret-v1"
)

// GenerateMasterKey returns a random 32-byte master key suitable for Derive.
// Generate it once and store it securely.
func GenerateMasterKey() ([]byte, error) {
	key := make([]byte, MasterKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("secret: generate master key: %w", err)
	}
	return key, nil
}

// New returns a secret with a freshly generated UUID key identifier and 32
// bytes of random key material, base64url-encoded.
func New() (token.Secret, error) {
	buf := make([]byte, valueSize)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return token.Secret{}, fmt.Errorf("secret: generate key material: %w", err)
	}
	return token.Secret{
		Key:   uuid.NewString(),
		Value: base64.RawURLEncoding.EncodeToString(buf),
	}, nil
}

// Derive deterministically expands a 32-byte master key into the signing
// secret for keyID using HKDF-SHA-256 with the keyID as salt. The same master
// key and keyID always yield the same secret, and the keyID becomes the
// secretKey segment of tokens signed with it.
func Derive(master []byte, keyID string) (token.Secret, error) {
	if len(master) != MasterKeySize {
		return token.Secret{}, ErrInvalidMasterKey
	}
	if keyID == "" || strings.Contains(keyID, ":") {
		return token.Secret{}, ErrInvalidKeyID
	}

	r := hkdf.New(sha256.New, master, []byte(keyID), []byte(deriveInfo))
	buf := make([]byte, valueSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return token.Secret{}, fmt.Errorf("secret: derive key material: %w", err)
	}

	return token.Secret{
		Key:   keyID,
		Value: base64.RawURLEncoding.EncodeToString(buf),
	}, nil
}
