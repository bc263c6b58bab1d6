package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/scenariotree/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("scenariotree", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
scenariotree - Load and inspect the scenario tree of a dataset.

Usage:
  scenariotree [options] [DATASET_DIR]

Arguments:
  DATASET_DIR
    Directory containing scenariotree.json (or scenariotree.yaml, .yml, .hcl).

Options:
`)
		flagSet.PrintDefaults()
	}

	datasetFlag := flagSet.String("dataset", "", "Path to the dataset directory.")
	dFlag := flagSet.String("d", "", "Path to the dataset directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	printFlag := flagSet.Bool("print", false, "Render the whole tree after the summary.")
	uniqueIDsFlag := flagSet.Bool("unique-ids", false, "Fail when two nodes share a node_id instead of keeping the later one.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *datasetFlag != "" {
		path = *datasetFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Dataset path determined.", "path", path)

	if path == "" {
		slog.Debug("No dataset path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		Dataset:   path,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		PrintTree: *printFlag,
		UniqueIDs: *uniqueIDsFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
