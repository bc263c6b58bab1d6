package scenariotree

import (
	"context"

	"github.com/specialistvlad/scenariotree/internal/ctxlog"
	"github.com/specialistvlad/scenariotree/internal/source"
)

// Load reads the scenario tree of a dataset directory and constructs it.
// It fails with a *NotFoundError when the dataset has no scenario tree file
// and with a *MalformedInputError when a record lacks a required field. Both
// are returned as produced, without further wrapping.
func Load(ctx context.Context, dataset string, opts ...Option) (*Tree, error) {
	logger := ctxlog.FromContext(ctx)

	o := newOptions(opts)
	src := o.source
	if src == nil {
		src = source.New()
	}

	rec, path, err := src.Load(ctx, dataset)
	if err != nil {
		return nil, err
	}

	tree, err := Construct(ctx, rec, opts...)
	if err != nil {
		logger.Debug("Scenario tree construction failed.", "path", path, "error", err)
		return nil, err
	}

	logger.Info("Scenario tree loaded.", "path", path, "nodes", tree.NodeCount(), "leaves", tree.LeafCount())
	return tree, nil
}
