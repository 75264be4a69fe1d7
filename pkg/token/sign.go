package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// HMAC-SHA256 is the only supported scheme. It is deliberately not
// configurable: a fixed algorithm leaves no room for confusion attacks.

// computeSignature signs the base64url text of the canonical payload
// encoding, not the raw JSON bytes, so the signed message is exactly the
// third token segment as transmitted.
func computeSignature(secretValue, encodedPayload string) string {
	h := hmac.New(sha256.New, []byte(secretValue))
	h.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// verifySignature recomputes the signature and compares in constant time to
// prevent timing side channels.
func verifySignature(secretValue, encodedPayload, candidate string) bool {
	expected := computeSignature(secretValue, encodedPayload)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) == 1
}
