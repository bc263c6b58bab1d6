package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/specialistvlad/scenariotree/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var jsonNull = []byte("null")

// DecodeJSON decodes a scenario tree document. Syntax errors are returned as
// plain errors; shape errors are returned as *MalformedInputError.
func DecodeJSON(data []byte) (*Record, error) {
	var top json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return decodeJSONRecord(top, RootLocation)
}

func decodeJSONRecord(raw json.RawMessage, loc string) (*Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, &MalformedInputError{Location: loc, Err: errors.New("record must be a JSON object")}
	}

	rec := &Record{Location: loc}

	if v, ok := fields[FieldNodeID]; ok {
		id, err := nodeid.ParseJSON(v)
		if err != nil {
			return nil, Invalid(loc, FieldNodeID, err)
		}
		rec.NodeID = &id
	}

	if v, ok := fields[FieldYear]; ok {
		var year int
		if err := decodeScalar(v, &year); err != nil {
			return nil, Invalid(loc, FieldYear, err)
		}
		rec.Year = &year
	}

	if v, ok := fields[FieldProbability]; ok {
		var p float64
		if err := decodeScalar(v, &p); err != nil {
			return nil, Invalid(loc, FieldProbability, err)
		}
		rec.Probability = &p
	}

	if v, ok := fields[FieldState]; ok {
		state, err := decodeState(v)
		if err != nil {
			return nil, Invalid(loc, FieldState, err)
		}
		rec.State = &state
	}

	if v, ok := fields[FieldChildren]; ok {
		var children []json.RawMessage
		if isNull(v) {
			return nil, Invalid(loc, FieldChildren, errors.New("must be a list, got null"))
		}
		if err := json.Unmarshal(v, &children); err != nil {
			return nil, Invalid(loc, FieldChildren, errors.New("must be a list of records"))
		}
		rec.Children = make([]*Record, 0, len(children))
		for i, childRaw := range children {
			child, err := decodeJSONRecord(childRaw, ChildLocation(loc, i))
			if err != nil {
				return nil, err
			}
			rec.Children = append(rec.Children, child)
		}
	}

	return rec, nil
}

// decodeScalar unmarshals a non-null JSON value into target.
func decodeScalar(raw json.RawMessage, target any) error {
	if isNull(raw) {
		return errors.New("must not be null")
	}
	return json.Unmarshal(raw, target)
}

// decodeState converts an arbitrary JSON value into a cty.Value using the
// type implied by its structure. JSON null becomes a dynamic null.
func decodeState(raw json.RawMessage) (cty.Value, error) {
	if isNull(raw) {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	var sv ctyjson.SimpleJSONValue
	if err := sv.UnmarshalJSON(raw); err != nil {
		return cty.NilVal, err
	}
	return sv.Value, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}
