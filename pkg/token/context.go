package token

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var (
	tokenContextKey   = &contextKey{name: "auth_token"}         // raw token string
	payloadContextKey = &contextKey{name: "auth_token_payload"} // verified payload
)

// SetToken sets the raw token string in the context.
func SetToken(ctx context.Context, tok string) context.Context {
	return context.WithValue(ctx, tokenContextKey, tok)
}

// GetToken returns the raw token string from the context.
// If no token is found, the second return value will be false.
func GetToken(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenContextKey).(string)
	return tok, ok
}

// SetPayload sets a payload in the context. Store only payloads that passed
// Verify; downstream readers treat the stored value as authenticated.
func SetPayload(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadContextKey, payload)
}

// GetPayload returns the payload from the context.
// If no payload is found, the second return value will be false.
func GetPayload(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadContextKey).(Payload)
	return payload, ok
}
