// Package source locates and reads the scenario tree description of a
// dataset.
//
// A dataset is a directory. Its scenario tree is read from the first of the
// following files that exists:
//
//	scenariotree.json   (canonical)
//	scenariotree.yaml
//	scenariotree.yml
//	scenariotree.hcl
//
// When none exists, Load fails with a *NotFoundError naming the expected
// location of the canonical JSON file, before any tree construction begins.
// The result of a successful Load is a format-agnostic *record.Record; this
// package never checks that required fields are present.
package source
