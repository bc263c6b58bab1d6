// internal/nodeid/types.go
package nodeid

import "strconv"

// Kind reports which JSON kind an identifier was written as.
type Kind uint8

const (
	// KindString marks an identifier written as a string.
	KindString Kind = iota
	// KindInteger marks an identifier written as an integral number.
	KindInteger
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// ID is the identity of one node in a scenario tree. The zero value is the
// empty string identifier.
type ID struct {
	kind Kind
	text string
	num  int64
}

// String creates a string identifier.
func String(s string) ID {
	return ID{kind: KindString, text: s}
}

// Int creates an integer identifier.
func Int(n int64) ID {
	return ID{kind: KindInteger, text: strconv.FormatInt(n, 10), num: n}
}

// Kind returns the kind the identifier was written as.
func (id ID) Kind() Kind {
	return id.kind
}

// IsInteger reports whether the identifier is an integer.
func (id ID) IsInteger() bool {
	return id.kind == KindInteger
}

// Int64 returns the numeric value of an integer identifier. The boolean is
// false for string identifiers.
func (id ID) Int64() (int64, bool) {
	if id.kind != KindInteger {
		return 0, false
	}
	return id.num, true
}

// String returns the canonical text of the identifier. Integer identifiers
// render in base 10 and string identifiers render verbatim.
func (id ID) String() string {
	return id.text
}

// GoString renders the identifier unambiguously, quoting string identifiers.
func (id ID) GoString() string {
	if id.kind == KindInteger {
		return id.text
	}
	return strconv.Quote(id.text)
}
