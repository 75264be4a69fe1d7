package token

import (
	"strings"
	"time"
)

// segmentCount is the number of colon-separated segments in a valid token
// (secretKey:signature:encodedPayload).
const segmentCount = 3

// timeLayout is the millisecond-precision UTC form NewPayload issues
// timestamps in. Parsing accepts any RFC 3339 timestamp, offsets included.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// Secret pairs a public key identifier with private HMAC key material. Key is
// embedded unencrypted in issued tokens so a verifier can select the matching
// material; Value never leaves the issuing or verifying process. Secrets are
// supplied per call and not retained.
type Secret struct {
	Key   string
	Value string
}

// ParsedToken is the result of decoding a token without verifying its
// signature. It is an untrusted view: nothing in it is authenticated until
// Verify succeeds with the matching secret.
type ParsedToken struct {
	SecretKey string
	Payload   Payload
}

// Codec issues and verifies tokens. All operations are pure and safe for
// concurrent use; the only state is the injected time source.
type Codec struct {
	now func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock replaces the time source used for expiry checks and payload
// construction. Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Codec. Without options it reads the wall clock.
func New(opts ...Option) *Codec {
	c := &Codec{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewPayload builds a version-tagged payload for userID and username created
// at the codec clock's current time. A positive ttl sets expiredTime; zero or
// negative ttl leaves the payload without an expiry.
func (c *Codec) NewPayload(userID, username string, ttl time.Duration) Payload {
	now := c.now().UTC()
	p := Payload{
		Version:     CurrentVersion,
		CreatedTime: now.Format(timeLayout),
		Data: Data{
			DataKeyUserID:   userID,
			DataKeyUsername: username,
		},
	}
	if ttl > 0 {
		p.ExpiredTime = now.Add(ttl).Format(timeLayout)
	}
	return p
}

// Sign canonical-encodes the payload, signs the encoded text with
// secret.Value, and assembles the three-segment token string. The result is
// deterministic for identical payload and secret; the codec adds no nonce or
// timestamp of its own.
func (c *Codec) Sign(secret Secret, payload Payload) (string, error) {
	if secret.Key == "" || strings.Contains(secret.Key, ":") {
		return "", ErrInvalidSecret
	}
	if err := payload.Validate(); err != nil {
		return "", err
	}
	enc, err := encodePayload(payload)
	if err != nil {
		return "", err
	}
	sig := computeSignature(secret.Value, enc)
	return secret.Key + ":" + sig + ":" + enc, nil
}

// Parse splits the token and decodes its payload without checking the
// signature or expiry. The result must not be trusted: use Verify before
// acting on anything the token carries. Malformed input yields nil, never an
// error.
func (c *Codec) Parse(tok string) *ParsedToken {
	key, _, enc, ok := splitToken(tok)
	if !ok {
		return nil
	}
	payload, err := decodePayload(enc)
	if err != nil {
		return nil
	}
	return &ParsedToken{SecretKey: key, Payload: payload}
}

// Verify reports whether tok carries a valid signature for secret and has not
// expired. It never fails with an error for any input string, and it reports
// only a boolean so callers cannot distinguish a bad signature from an
// expired or malformed token.
//
// When secret.Key is non-empty the embedded key identifier must match it.
func (c *Codec) Verify(tok string, secret Secret) bool {
	now := c.now()

	key, sig, enc, ok := splitToken(tok)
	if !ok {
		return false
	}
	if secret.Key != "" && key != secret.Key {
		return false
	}
	if !verifySignature(secret.Value, enc, sig) {
		return false
	}
	payload, err := decodePayload(enc)
	if err != nil {
		return false
	}
	return !expiredAt(payload, now)
}

// IsExpired reports whether the payload's expiry is strictly in the past. A
// payload without an expiredTime never expires by policy. An expiredTime that
// does not parse as an ISO-8601 timestamp counts as expired.
func (c *Codec) IsExpired(payload Payload) bool {
	return expiredAt(payload, c.now())
}

// expiredAt takes an explicit now so Verify uses a single consistent instant
// for the whole call.
func expiredAt(p Payload, now time.Time) bool {
	if p.ExpiredTime == "" {
		return false
	}
	exp, err := time.Parse(time.RFC3339, p.ExpiredTime)
	if err != nil {
		return true
	}
	// After compares absolute instants, so timestamps with offsets are
	// normalized onto a single timeline.
	return now.After(exp)
}

// splitToken enforces the wire invariant: exactly three non-empty
// colon-separated segments.
func splitToken(tok string) (key, sig, enc string, ok bool) {
	parts := strings.Split(tok, ":")
	if len(parts) != segmentCount || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// defaultCodec backs the package-level functions with a wall-clock Codec.
var defaultCodec = New()

// NewPayload builds a payload using the default wall-clock codec.
func NewPayload(userID, username string, ttl time.Duration) Payload {
	return defaultCodec.NewPayload(userID, username, ttl)
}

// Sign issues a token using the default codec.
func Sign(secret Secret, payload Payload) (string, error) {
	return defaultCodec.Sign(secret, payload)
}

// Parse decodes a token without verification using the default codec.
func Parse(tok string) *ParsedToken {
	return defaultCodec.Parse(tok)
}

// Verify checks a token against a secret using the default codec.
func Verify(tok string, secret Secret) bool {
	return defaultCodec.Verify(tok, secret)
}

// IsExpired checks a payload's expiry against the wall clock.
func IsExpired(payload Payload) bool {
	return defaultCodec.IsExpired(payload)
}
