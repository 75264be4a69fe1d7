package token

import "errors"

var (
	// ErrInvalidPayload indicates the payload fails structural validation:
	// missing createdTime, missing data, or data without non-empty userId and
	// username strings.
	ErrInvalidPayload = errors.New("token: invalid payload structure")

	// ErrUnsupportedValue indicates a payload data value outside the
	// JSON-compatible set (string, number, bool, null, array, object).
	ErrUnsupportedValue = errors.New("token: unsupported payload data value")

	// ErrInvalidSecret indicates a secret whose key identifier is empty or
	// contains the ':' separator and therefore cannot be framed in a token.
	ErrInvalidSecret = errors.New("token: invalid secret key identifier")

	// ErrDecode indicates a payload segment that is not valid base64url or
	// does not decode to a JSON object. Parse and Verify collapse it to
	// nil/false; it surfaces only from internal decoding.
	ErrDecode = errors.New("token: malformed payload encoding")
)
