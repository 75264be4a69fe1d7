package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// encodePayload serializes p into its canonical base64url text form.
// encoding/json emits map keys in sorted order at every nesting level with no
// insignificant whitespace, so semantically equal payloads produce identical
// bytes regardless of how their fields were assembled.
func encodePayload(p Payload) (string, error) {
	if err := checkDataValues(p.Data); err != nil {
		return "", err
	}
	m := map[string]any{
		"createdTime": p.CreatedTime,
		"data":        map[string]any(p.Data),
	}
	if p.ExpiredTime != "" {
		m["expiredTime"] = p.ExpiredTime
	}
	if p.Version != 0 {
		m["version"] = p.Version
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("token: encode payload: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// decodePayload reverses encodePayload. It performs no signature or validity
// checking; it only demands well-formed base64url wrapping a single JSON
// object. Numbers are kept as json.Number so their literals survive a
// re-encoding byte for byte.
func decodePayload(enc string) (Payload, error) {
	raw, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if m == nil {
		// "null" decodes without error but is not an object.
		return Payload{}, ErrDecode
	}
	if _, err := dec.Token(); err != io.EOF {
		return Payload{}, fmt.Errorf("%w: trailing data", ErrDecode)
	}

	return payloadFromMap(m)
}

// payloadFromMap maps decoded JSON onto a Payload, enforcing only the field
// types the wire format fixes: string timestamps, an object for data, and a
// numeric version tag. Unknown top-level keys are ignored.
func payloadFromMap(m map[string]any) (Payload, error) {
	var p Payload
	for key, v := range m {
		switch key {
		case "createdTime":
			s, ok := v.(string)
			if !ok {
				return Payload{}, ErrDecode
			}
			p.CreatedTime = s
		case "expiredTime":
			s, ok := v.(string)
			if !ok {
				return Payload{}, ErrDecode
			}
			p.ExpiredTime = s
		case "version":
			n, err := versionOf(v)
			if err != nil {
				return Payload{}, err
			}
			p.Version = n
		case "data":
			switch obj := v.(type) {
			case map[string]any:
				p.Data = Data(obj)
			case Data:
				p.Data = obj
			default:
				return Payload{}, ErrDecode
			}
		}
	}
	return p, nil
}

// versionOf accepts the numeric forms a version tag can arrive in: json.Number
// from decoding, or plain Go integers and floats from caller-built maps.
func versionOf(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, ErrDecode
		}
		return int(i), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, ErrDecode
		}
		return int(n), nil
	default:
		return 0, ErrDecode
	}
}

// checkDataValues walks the data bag and rejects anything outside the
// JSON-compatible value set the wire format supports.
func checkDataValues(d Data) error {
	for key, v := range d {
		if err := checkValue(v); err != nil {
			return fmt.Errorf("%w: key %q", ErrUnsupportedValue, key)
		}
	}
	return nil
}

func checkValue(v any) error {
	switch val := v.(type) {
	case nil, string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	case []any:
		for _, item := range val {
			if err := checkValue(item); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		for _, item := range val {
			if err := checkValue(item); err != nil {
				return err
			}
		}
		return nil
	case Data:
		return checkValue(map[string]any(val))
	default:
		return ErrUnsupportedValue
	}
}
