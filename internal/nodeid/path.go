// internal/nodeid/path.go
package nodeid

import "strings"

// Path is an ordered chain of identifiers from a node up to and including the
// root of its tree, closest node first.
type Path []ID

// Extend returns a new path that starts with id and continues with p. The
// receiver is never modified.
func (p Path) Extend(id ID) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, id)
	return append(out, p...)
}

// Head returns the first identifier of the path, i.e. the node itself.
func (p Path) Head() (ID, bool) {
	if len(p) == 0 {
		return ID{}, false
	}
	return p[0], true
}

// Root returns the last identifier of the path, i.e. the tree's root.
func (p Path) Root() (ID, bool) {
	if len(p) == 0 {
		return ID{}, false
	}
	return p[len(p)-1], true
}

// String renders the path as `leaf<-parent<-root`.
func (p Path) String() string {
	var sb strings.Builder
	for i, id := range p {
		if i > 0 {
			sb.WriteString("<-")
		}
		sb.WriteString(id.String())
	}
	return sb.String()
}

// Equal reports whether two paths hold the same identifiers in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
