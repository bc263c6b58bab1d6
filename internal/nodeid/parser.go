// internal/nodeid/parser.go
package nodeid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ParseJSON decodes an identifier from a raw JSON token. Only strings and
// integral numbers are accepted.
func ParseJSON(raw []byte) (ID, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ID{}, fmt.Errorf("identifier cannot be empty")
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ID{}, fmt.Errorf("invalid string identifier %s: %w", raw, err)
		}
		return String(s), nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := strconv.ParseInt(string(raw), 10, 64)
		if err != nil {
			return ID{}, fmt.Errorf("identifier %s is not an integer: %w", raw, err)
		}
		return Int(n), nil
	default:
		return ID{}, fmt.Errorf("identifier must be a string or an integer, got %s", raw)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, preserving the identifier's kind.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.kind == KindInteger {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}
