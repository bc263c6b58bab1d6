package main

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/scenariotree/internal/cli"
	"github.com/specialistvlad/scenariotree/internal/scenariotree"
	"github.com/specialistvlad/scenariotree/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_LoadsDataset(t *testing.T) {
	t.Parallel()

	dataset := testutil.WriteDataset(t, map[string]string{"scenariotree.json": testutil.ThreeNodeJSON})
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-print", dataset})
	require.NoError(t, err)
	require.Contains(t, out.String(), "nodes:  3")
	require.Contains(t, out.String(), `"A" (year=1, p=0.5)`)
	require.Empty(t, logs.String(), "default log level is warn")
}

func TestRun_MissingDataset(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{t.TempDir()})
	require.ErrorIs(t, err, scenariotree.ErrNotFound)
	require.Contains(t, err.Error(), "scenariotree.json not found")
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-log-level", "loud", "data"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}
