// Package printer renders scenario trees for humans.
package printer

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/ddddddO/gtree"
	"github.com/specialistvlad/scenariotree/internal/scenariotree"
)

// Tree writes an ASCII drawing of the whole tree, one line per node.
func Tree(w io.Writer, tree *scenariotree.Tree) error {
	root := gtree.NewRoot(label(tree.Root()))
	addChildren(root, tree.Root())
	return gtree.OutputProgrammably(w, root)
}

// addChildren attaches the children of n below parent. gtree merges siblings
// with equal text, so a label already used under the same parent gets the
// node's source location appended.
func addChildren(parent *gtree.Node, n *scenariotree.Node) {
	used := make(map[string]bool, len(n.Children()))
	for _, child := range n.Children() {
		text := label(child)
		if used[text] {
			text = fmt.Sprintf("%s [%s]", text, child.Location())
		}
		used[text] = true
		addChildren(parent.Add(text), child)
	}
}

func label(n *scenariotree.Node) string {
	return fmt.Sprintf("%#v (year=%d, p=%s)", n.ID(), n.Year(), strconv.FormatFloat(n.Probability(), 'g', -1, 64))
}

// Summary writes the node and leaf counts followed by every leaf scenario
// with its path to the root, sorted by leaf identifier.
func Summary(w io.Writer, tree *scenariotree.Tree) error {
	if _, err := fmt.Fprintf(w, "nodes:  %d\nleaves: %d\ndepth:  %d\n", tree.NodeCount(), tree.LeafCount(), tree.MaxDepth()); err != nil {
		return err
	}

	leaves := make([]*scenariotree.Node, 0, tree.LeafCount())
	for _, n := range tree.LeafNodes() {
		leaves = append(leaves, n)
	}
	sort.Slice(leaves, func(i, j int) bool {
		a, b := leaves[i].ID(), leaves[j].ID()
		if a.Kind() != b.Kind() {
			return a.Kind() < b.Kind()
		}
		if ai, ok := a.Int64(); ok {
			bi, _ := b.Int64()
			return ai < bi
		}
		return a.String() < b.String()
	})

	for _, n := range leaves {
		if _, err := fmt.Fprintf(w, "  %s\n", n.PathToRoot()); err != nil {
			return err
		}
	}
	return nil
}
