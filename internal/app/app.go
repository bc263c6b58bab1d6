package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/scenariotree/internal/ctxlog"
	"github.com/specialistvlad/scenariotree/internal/scenariotree"
	"github.com/specialistvlad/scenariotree/internal/source"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	source *source.Source

	tree *scenariotree.Tree
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger. src may be nil to read datasets with the default
// formats.
func NewApp(outW, logW io.Writer, cfg *Config, src *source.Source) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if src == nil {
		src = source.New()
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		source: src,
	}
}

// Tree returns the scenario tree loaded by the last successful Run. This is
// primarily for testing.
func (a *App) Tree() *scenariotree.Tree {
	return a.tree
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
