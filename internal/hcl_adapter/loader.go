package hcl_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/scenariotree/internal/ctxlog"
	"github.com/specialistvlad/scenariotree/internal/record"
)

// blockTypeNode is the only block type a scenario tree file contains.
const blockTypeNode = "node"

// fileSchema matches the top level of a scenario tree file.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockTypeNode, LabelNames: []string{record.FieldNodeID}},
	},
}

// nodeSchema matches the body of a single node block.
var nodeSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: record.FieldYear},
		{Name: record.FieldProbability},
		{Name: record.FieldState},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockTypeNode, LabelNames: []string{record.FieldNodeID}},
	},
}

// Loader is the HCL-specific scenario tree decoder.
type Loader struct{}

// NewLoader creates a new HCL scenario tree loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Decode parses src as HCL native syntax and translates its single root
// `node` block into a record tree. filename is only used in diagnostics.
func (l *Loader) Decode(ctx context.Context, src []byte, filename string) (*record.Record, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL decoder started.", "file", filename, "bytes", len(src))

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	content, _, diags := file.Body.PartialContent(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	roots := content.Blocks.OfType(blockTypeNode)
	if len(roots) != 1 {
		return nil, &record.MalformedInputError{
			Location: record.RootLocation,
			Err:      fmt.Errorf("expected exactly one top-level %q block in %s, found %d", blockTypeNode, filename, len(roots)),
		}
	}

	rec, err := l.translateNode(roots[0], record.RootLocation)
	if err != nil {
		return nil, err
	}

	logger.Debug("HCL decoding complete.", "file", filename, "records", rec.Count())
	return rec, nil
}

// translateNode converts one `node` block and, recursively, its nested blocks.
func (l *Loader) translateNode(block *hcl.Block, loc string) (*record.Record, error) {
	content, _, diags := block.Body.PartialContent(nodeSchema)
	if diags.HasErrors() {
		return nil, &record.MalformedInputError{Location: loc, Err: diags}
	}

	id, err := labelID(block)
	if err != nil {
		return nil, record.Invalid(loc, record.FieldNodeID, err)
	}
	rec := &record.Record{NodeID: &id, Location: loc}

	if attr, ok := content.Attributes[record.FieldYear]; ok {
		year, err := attrInt(attr)
		if err != nil {
			return nil, record.Invalid(loc, record.FieldYear, err)
		}
		rec.Year = &year
	}

	if attr, ok := content.Attributes[record.FieldProbability]; ok {
		p, err := attrFloat(attr)
		if err != nil {
			return nil, record.Invalid(loc, record.FieldProbability, err)
		}
		rec.Probability = &p
	}

	if attr, ok := content.Attributes[record.FieldState]; ok {
		state, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, record.Invalid(loc, record.FieldState, diags)
		}
		rec.State = &state
	}

	for i, child := range content.Blocks.OfType(blockTypeNode) {
		childRec, err := l.translateNode(child, record.ChildLocation(loc, i))
		if err != nil {
			return nil, err
		}
		rec.Children = append(rec.Children, childRec)
	}

	return rec, nil
}

var errEmptyLabel = errors.New("node label cannot be empty")
