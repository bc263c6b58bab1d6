package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/scenariotree/internal/printer"
	"github.com/specialistvlad/scenariotree/internal/scenariotree"
)

// Run loads the configured dataset's scenario tree and reports on it.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("App.Run method started.", "dataset", a.config.Dataset)

	opts := []scenariotree.Option{scenariotree.WithSource(a.source)}
	if a.config.UniqueIDs {
		opts = append(opts, scenariotree.WithUniqueIDs())
	}

	tree, err := scenariotree.Load(ctx, a.config.Dataset, opts...)
	if err != nil {
		return fmt.Errorf("failed to load scenario tree of dataset %s: %w", a.config.Dataset, err)
	}
	a.tree = tree

	if err := printer.Summary(a.outW, tree); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if a.config.PrintTree {
		a.logger.Debug("Rendering scenario tree.")
		if err := printer.Tree(a.outW, tree); err != nil {
			return fmt.Errorf("failed to render scenario tree: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
