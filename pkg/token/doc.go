// Package token issues, parses, and verifies compact signed tokens carrying
// an application-defined payload plus creation and expiry timestamps.
//
// Tokens are stateless, tamper-evident credentials: a service can hand one
// out and later check it without a database lookup. Typical uses are session
// tokens, invite links, and short-lived capability tokens. The payload is
// signed, not encrypted: anyone holding a token can read it.
//
// Token format: secretKey:base64url(signature):base64url(payload)
//
// The payload is serialized canonically (object keys sorted at every nesting
// level, no insignificant whitespace) so semantically equal payloads always
// produce identical tokens. Signatures are HMAC-SHA256 over the base64url
// payload text, verified with a constant-time comparison. The secretKey
// segment is a public identifier that lets a verifier select which key
// material to use; the key material itself never appears in the token.
//
// # Usage
//
//	import "github.com/taicode-labs/auth-sdk/pkg/token"
//
//	secret := token.Secret{Key: "k1", Value: "my-very-strong-secret"}
//
//	tok, err := token.Sign(secret, token.NewPayload("42", "alice", time.Hour))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !token.Verify(tok, secret) {
//	    // reject the request
//	}
//
//	if parsed := token.Parse(tok); parsed != nil {
//	    _ = parsed.Payload.Data["userId"] // untrusted until Verify succeeds
//	}
//
// # Error Handling
//
// Only Sign returns errors (ErrInvalidPayload, ErrUnsupportedValue,
// ErrInvalidSecret), since the caller controls the input and can fix it.
// Parse and Verify are total over arbitrary strings: every malformed,
// tampered, or expired input collapses to nil or false with no reason
// attached, so a verifier cannot be used as an oracle for why a token was
// rejected.
//
// # Clock Injection
//
// Expiry checks read the wall clock once per call. Construct a Codec with
// WithClock to pin "now" in tests instead of depending on real time.
package token
