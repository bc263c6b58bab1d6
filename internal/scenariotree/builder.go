package scenariotree

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/scenariotree/internal/nodeid"
	"github.com/specialistvlad/scenariotree/internal/record"
	"github.com/zclconf/go-cty/cty"
)

// builder is the accumulator of one construction pass. It owns the node
// arena and the identifier lookup until they are handed to a Tree.
type builder struct {
	logger *slog.Logger
	opts   options

	nodes  []Node
	lookup map[nodeid.ID]int
}

func newBuilder(logger *slog.Logger, opts options, sizeHint int) *builder {
	return &builder{
		logger: logger,
		opts:   opts,
		nodes:  make([]Node, 0, sizeHint),
		lookup: make(map[nodeid.ID]int, sizeHint),
	}
}

// build creates the node for rec under parent (noParent for the root),
// registers it, and then builds its children in order. It returns the arena
// index of the new node.
func (b *builder) build(rec *record.Record, parent int) (int, error) {
	id, year, probability, state, err := requiredFields(rec)
	if err != nil {
		return 0, err
	}

	var path nodeid.Path
	if parent == noParent {
		path = nodeid.Path{id}
	} else {
		path = b.nodes[parent].pathToRoot.Extend(id)
	}

	idx := len(b.nodes)
	b.nodes = append(b.nodes, Node{
		index:       idx,
		parent:      parent,
		id:          id,
		year:        year,
		probability: probability,
		state:       state,
		pathToRoot:  path,
		location:    rec.Location,
	})

	if err := b.register(id, idx); err != nil {
		return 0, err
	}
	b.logger.Debug("Scenario tree node created.", "node_id", id.String(), "year", year, "depth", len(path)-1, "location", rec.Location)

	for i, childRec := range rec.Children {
		if childRec == nil {
			return 0, &record.MalformedInputError{
				Location: record.ChildLocation(rec.Location, i),
				Err:      errors.New("record is empty"),
			}
		}
		childIdx, err := b.build(childRec, idx)
		if err != nil {
			return 0, err
		}
		// Index access: the arena may have grown while building the child.
		b.nodes[idx].children = append(b.nodes[idx].children, childIdx)
	}

	return idx, nil
}

// register adds a node to the lookup. An existing entry for the same
// identifier is replaced unless unique identifiers are enforced.
func (b *builder) register(id nodeid.ID, idx int) error {
	if prev, exists := b.lookup[id]; exists {
		if b.opts.uniqueIDs {
			return record.Invalid(b.nodes[idx].location, record.FieldNodeID,
				fmt.Errorf("duplicate identifier %#v, first defined at %s", id, b.nodes[prev].location))
		}
		b.logger.Warn("Duplicate node_id, the later node replaces the earlier one in the lookup.",
			"node_id", id.String(),
			"replaced", b.nodes[prev].location,
			"by", b.nodes[idx].location,
		)
	}
	b.lookup[id] = idx
	return nil
}

// requiredFields extracts the four scalar fields of a record, failing on the
// first one that is absent.
func requiredFields(rec *record.Record) (nodeid.ID, int, float64, cty.Value, error) {
	switch {
	case rec.NodeID == nil:
		return nodeid.ID{}, 0, 0, cty.NilVal, record.Missing(rec.Location, record.FieldNodeID)
	case rec.Year == nil:
		return nodeid.ID{}, 0, 0, cty.NilVal, record.Missing(rec.Location, record.FieldYear)
	case rec.Probability == nil:
		return nodeid.ID{}, 0, 0, cty.NilVal, record.Missing(rec.Location, record.FieldProbability)
	case rec.State == nil:
		return nodeid.ID{}, 0, 0, cty.NilVal, record.Missing(rec.Location, record.FieldState)
	}
	return *rec.NodeID, *rec.Year, *rec.Probability, *rec.State, nil
}
