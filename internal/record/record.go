package record

import (
	"fmt"

	"github.com/specialistvlad/scenariotree/internal/nodeid"
	"github.com/zclconf/go-cty/cty"
)

// Field names as they appear in scenario tree files.
const (
	FieldNodeID      = "node_id"
	FieldYear        = "year"
	FieldProbability = "probability"
	FieldState       = "state"
	FieldChildren    = "children"
)

// RootLocation is the Location of the top-level record.
const RootLocation = "root"

// Record is one raw node description. Nil pointers mark absent fields.
type Record struct {
	NodeID      *nodeid.ID
	Year        *int
	Probability *float64
	// State is nil when the field is absent. A present JSON null is a
	// non-nil pointer to a null cty.Value.
	State    *cty.Value
	Children []*Record

	// Location is a human-readable position of the record in its source,
	// e.g. `root.children[1].children[0]`.
	Location string
}

// ChildLocation returns the Location of the i-th child of a record at loc.
func ChildLocation(loc string, i int) string {
	return fmt.Sprintf("%s.%s[%d]", loc, FieldChildren, i)
}

// Count returns the number of records in the subtree rooted at r, r included.
func (r *Record) Count() int {
	if r == nil {
		return 0
	}
	n := 1
	for _, child := range r.Children {
		n += child.Count()
	}
	return n
}
