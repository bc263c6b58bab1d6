package scenariotree

import (
	"github.com/specialistvlad/scenariotree/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
)

// noParent marks the root in Node.parent.
const noParent = -1

// Node is one (year, state) point of a scenario tree. Nodes are created only
// by Construct and are read-only afterwards.
type Node struct {
	tree     *Tree
	index    int
	parent   int
	children []int

	id          nodeid.ID
	year        int
	probability float64
	state       cty.Value
	pathToRoot  nodeid.Path
	location    string
}

// ID returns the node's identifier.
func (n *Node) ID() nodeid.ID {
	return n.id
}

// Year returns the model year the node belongs to.
func (n *Node) Year() int {
	return n.year
}

// Probability returns the node's probability weight, as given in the source.
func (n *Node) Probability() float64 {
	return n.probability
}

// State returns the opaque state payload. It may be a null value.
func (n *Node) State() cty.Value {
	return n.state
}

// Location returns the position of the node's record in its source, e.g.
// `root.children[1]`.
func (n *Node) Location() string {
	return n.location
}

// Parent returns the node's parent, or false for the root.
func (n *Node) Parent() (*Node, bool) {
	if n.parent == noParent {
		return nil, false
	}
	return &n.tree.nodes[n.parent], true
}

// Children returns the node's children in source order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	for i, idx := range n.children {
		out[i] = &n.tree.nodes[idx]
	}
	return out
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// PathToRoot returns the identifiers from this node up to and including the
// root, closest node first.
func (n *Node) PathToRoot() nodeid.Path {
	out := make(nodeid.Path, len(n.pathToRoot))
	copy(out, n.pathToRoot)
	return out
}

// Depth returns the number of edges between the node and the root.
func (n *Node) Depth() int {
	return len(n.pathToRoot) - 1
}
