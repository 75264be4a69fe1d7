package secret

import "errors"

var (
	// ErrInvalidMasterKey indicates a master key of the wrong length.
	ErrInvalidMasterKey = errors.New("secret: master key must be 32 bytes")

	// ErrInvalidKeyID indicates a key identifier that is empty or contains
	// the token segment separator.
	ErrInvalidKeyID = errors.New("secret: invalid key identifier")
)
