// Package secret manufactures key material for the token package.
//
// Storage, rotation, and distribution of secrets stay with the caller; this
// package only produces token.Secret values, either from fresh randomness or
// deterministically from a master key.
//
// New returns a secret with a UUID key identifier and 32 bytes of random key
// material. Derive expands a single 32-byte master key into independent
// per-identifier signing secrets with HKDF-SHA-256, so a fleet of verifiers
// can reconstruct any signing secret from the master key plus the secretKey
// segment embedded in the token.
//
// # Usage
//
//	import "github.com/taicode-labs/auth-sdk/pkg/secret"
//
//	master, err := secret.GenerateMasterKey()
//	if err != nil {
//	    // handle error
//	}
//
//	s, err := secret.Derive(master, "sessions-2024q2")
//	if err != nil {
//	    // handle error
//	}
//	tok, err := token.Sign(s, payload)
//
// # Error Handling
//
// Functions return sentinel errors such as ErrInvalidMasterKey and
// ErrInvalidKeyID that can be matched with errors.Is.
package secret
