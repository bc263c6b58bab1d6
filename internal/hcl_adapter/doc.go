// Package hcl_adapter decodes scenario trees written in HCL native syntax
// into the format-agnostic record.Record model.
//
// A tree is written as a single top-level `node` block. The block label is
// the node identifier and nested `node` blocks are its children, in source
// order:
//
//	node "R" {
//	  year        = 2020
//	  probability = 1
//	  state       = { demand = "base" }
//
//	  node "A" {
//	    year        = 2030
//	    probability = 0.5
//	    state       = { demand = "high" }
//	  }
//	}
//
// Identifiers written as labels are always string identifiers. Attributes are
// evaluated without variables or functions; the payload in `state` is kept as
// the cty.Value HCL produced for it.
//
// Like the JSON decoder, this package does not decide that a missing
// attribute is an error; it only leaves the corresponding record field nil.
package hcl_adapter
