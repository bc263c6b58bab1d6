// internal/nodeid/doc.go

/*
Package nodeid provides a structured, type-safe representation for scenario
tree node identifiers.

Source files may identify a node either by a string (`"R"`, `"2030_high"`) or
by an integer (`0`, `17`). The ID type keeps that distinction, so the string
`"1"` and the integer `1` are different identifiers, and it is comparable so
it can be used directly as a map key.

This package also owns Path, the closest-node-first chain of identifiers from
a node up to the root of its tree.
*/
package nodeid
