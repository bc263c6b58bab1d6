package record

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a scenario tree document written in YAML. The document
// must use the same schema as the JSON form; it is normalised to JSON and
// handed to DecodeJSON so both formats share one set of shape rules.
func DecodeYAML(data []byte) (*Record, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := checkYAMLIDs(doc, RootLocation); err != nil {
		return nil, err
	}

	normalised, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("YAML document cannot be represented as JSON: %w", err)
	}
	return DecodeJSON(normalised)
}

// checkYAMLIDs rejects float node identifiers before the document is turned
// into JSON, where a whole float such as 1.0 would come out as the integer 1.
func checkYAMLIDs(doc any, loc string) error {
	m, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	if id, ok := m[FieldNodeID].(float64); ok {
		return Invalid(loc, FieldNodeID, fmt.Errorf("identifier must be a string or an integer, got %v", id))
	}
	children, _ := m[FieldChildren].([]any)
	for i, child := range children {
		if err := checkYAMLIDs(child, ChildLocation(loc, i)); err != nil {
			return err
		}
	}
	return nil
}
