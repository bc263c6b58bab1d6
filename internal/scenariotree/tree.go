package scenariotree

import (
	"context"
	"errors"

	"github.com/specialistvlad/scenariotree/internal/ctxlog"
	"github.com/specialistvlad/scenariotree/internal/nodeid"
	"github.com/specialistvlad/scenariotree/internal/record"
)

// Tree is a fully built, immutable scenario tree.
type Tree struct {
	nodes  []Node
	root   *Node
	lookup map[nodeid.ID]*Node
	leaves map[nodeid.ID]*Node
}

// Construct builds a Tree from the root record of a scenario tree. It fails
// with a *MalformedInputError if any record lacks a required field.
func Construct(ctx context.Context, rec *record.Record, opts ...Option) (*Tree, error) {
	logger := ctxlog.FromContext(ctx)
	if rec == nil {
		return nil, &record.MalformedInputError{Location: record.RootLocation, Err: errors.New("record is empty")}
	}

	o := newOptions(opts)
	b := newBuilder(logger, o, rec.Count())

	logger.Debug("Building scenario tree.", "records", cap(b.nodes), "unique_ids", o.uniqueIDs)
	rootIdx, err := b.build(rec, noParent)
	if err != nil {
		return nil, err
	}

	t := &Tree{nodes: b.nodes}
	for i := range t.nodes {
		t.nodes[i].tree = t
	}
	t.root = &t.nodes[rootIdx]

	t.lookup = make(map[nodeid.ID]*Node, len(b.lookup))
	for id, idx := range b.lookup {
		t.lookup[id] = &t.nodes[idx]
	}

	t.leaves = make(map[nodeid.ID]*Node)
	t.walk(t.root, func(n *Node) {
		if n.IsLeaf() {
			t.leaves[n.id] = n
		}
	})

	logger.Debug("Scenario tree constructed.", "node_count", t.NodeCount(), "leaf_count", len(t.leaves))
	return t, nil
}

// walk visits n and its descendants pre-order.
func (t *Tree) walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, idx := range n.children {
		t.walk(&t.nodes[idx], visit)
	}
}

// Root returns the node without a parent.
func (t *Tree) Root() *Node {
	return t.root
}

// NodeCount returns the number of distinct identifiers in the tree.
func (t *Tree) NodeCount() int {
	return len(t.lookup)
}

// Node looks a node up by identifier.
func (t *Tree) Node(id nodeid.ID) (*Node, bool) {
	n, ok := t.lookup[id]
	return n, ok
}

// NodeLookup returns a copy of the identifier-to-node index covering every
// node of the tree.
func (t *Tree) NodeLookup() map[nodeid.ID]*Node {
	return copyIndex(t.lookup)
}

// Leaf looks a leaf node up by identifier.
func (t *Tree) Leaf(id nodeid.ID) (*Node, bool) {
	n, ok := t.leaves[id]
	return n, ok
}

// LeafNodes returns a copy of the identifier-to-node index restricted to
// nodes without children.
func (t *Tree) LeafNodes() map[nodeid.ID]*Node {
	return copyIndex(t.leaves)
}

// LeafCount returns the number of entries in the leaf index.
func (t *Tree) LeafCount() int {
	return len(t.leaves)
}

// MaxDepth returns the depth of the deepest node; a lone root has depth 0.
func (t *Tree) MaxDepth() int {
	depth := 0
	for i := range t.nodes {
		if d := t.nodes[i].Depth(); d > depth {
			depth = d
		}
	}
	return depth
}

func copyIndex(in map[nodeid.ID]*Node) map[nodeid.ID]*Node {
	out := make(map[nodeid.ID]*Node, len(in))
	for id, n := range in {
		out[id] = n
	}
	return out
}
