package token

// Wire names of the required data fields.
const (
	DataKeyUserID   = "userId"
	DataKeyUsername = "username"
)

// CurrentVersion tags payloads produced by NewPayload. Version 0 denotes the
// legacy untagged wire shape and is omitted from the encoding.
const CurrentVersion = 2

// Data holds the application-defined payload fields. The userId and username
// keys are required non-empty strings; any other keys pass through signing
// and parsing untouched.
type Data map[string]any

// Payload is the signed content of a token. Timestamps are ISO-8601 strings
// exactly as they appear on the wire. An empty ExpiredTime means the token
// never expires; callers may still reject such tokens at a higher layer.
//
// A payload is built immediately before signing and never mutated afterwards;
// verifiers reconstruct their own copy from the token bytes.
type Payload struct {
	Version     int    `json:"version,omitempty"`
	CreatedTime string `json:"createdTime"`
	ExpiredTime string `json:"expiredTime,omitempty"`
	Data        Data   `json:"data"`
}

// Validate reports whether the payload satisfies the structural requirements
// for signing: a non-empty createdTime and a data map carrying non-empty
// userId and username strings. Values outside the required keys are not
// inspected here; Sign checks them for wire compatibility separately.
func (p Payload) Validate() error {
	if p.CreatedTime == "" || p.Data == nil {
		return ErrInvalidPayload
	}
	for _, key := range []string{DataKeyUserID, DataKeyUsername} {
		s, ok := p.Data[key].(string)
		if !ok || s == "" {
			return ErrInvalidPayload
		}
	}
	return nil
}

// IsValidPayload reports whether candidate has the structural shape of a
// signable payload. It accepts a Payload, a *Payload, or the map form a
// decoded token produces; anything else is invalid.
func IsValidPayload(candidate any) bool {
	switch v := candidate.(type) {
	case Payload:
		return v.Validate() == nil
	case *Payload:
		return v != nil && v.Validate() == nil
	case map[string]any:
		p, err := payloadFromMap(v)
		if err != nil {
			return false
		}
		return p.Validate() == nil
	case Data:
		p, err := payloadFromMap(v)
		if err != nil {
			return false
		}
		return p.Validate() == nil
	default:
		return false
	}
}
