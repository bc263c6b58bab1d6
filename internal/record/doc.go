// Package record defines the raw, format-agnostic nested record a scenario
// tree is built from, and the decoders that produce it from JSON and YAML.
//
// A Record mirrors one entry of a scenario tree file:
//
//	{"node_id": "R", "year": 2020, "probability": 1.0, "state": {...}, "children": [...]}
//
// Every scalar field is optional at this layer. Decoders only check that a
// field which is present has the right shape; deciding that a missing field
// is an error belongs to the tree loader, which reports it with the
// record's Location.
//
// The `state` payload is opaque to the tree and is carried as a cty.Value,
// so any JSON/YAML structure survives decoding with its type information
// intact.
package record
