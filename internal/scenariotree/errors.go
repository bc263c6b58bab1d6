package scenariotree

import (
	"github.com/specialistvlad/scenariotree/internal/record"
	"github.com/specialistvlad/scenariotree/internal/source"
)

var (
	// ErrNotFound matches errors raised when a dataset has no scenario tree.
	ErrNotFound = source.ErrNotFound
	// ErrMalformedInput matches errors raised for records that are missing a
	// required field or hold a field of the wrong shape.
	ErrMalformedInput = record.ErrMalformedInput
)

type (
	// NotFoundError names the dataset and the expected scenario tree file.
	NotFoundError = source.NotFoundError
	// MalformedInputError names the offending record and field.
	MalformedInputError = record.MalformedInputError
)
