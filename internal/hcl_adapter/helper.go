package hcl_adapter

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/scenariotree/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// labelID turns a node block's label into a string identifier.
func labelID(block *hcl.Block) (nodeid.ID, error) {
	if len(block.Labels) == 0 || block.Labels[0] == "" {
		return nodeid.ID{}, errEmptyLabel
	}
	return nodeid.String(block.Labels[0]), nil
}

// attrValue evaluates an attribute with no variables in scope and rejects
// null results.
func attrValue(attr *hcl.Attribute) (cty.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() {
		return cty.NilVal, errors.New("must not be null")
	}
	return val, nil
}

// attrInt evaluates an attribute as a whole number.
func attrInt(attr *hcl.Attribute) (int, error) {
	val, err := attrValue(attr)
	if err != nil {
		return 0, err
	}
	var out int
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return 0, err
	}
	return out, nil
}

// attrFloat evaluates an attribute as a floating point number.
func attrFloat(attr *hcl.Attribute) (float64, error) {
	val, err := attrValue(attr)
	if err != nil {
		return 0, err
	}
	var out float64
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return 0, err
	}
	return out, nil
}
