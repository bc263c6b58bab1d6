package scenariotree

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/scenariotree/internal/ctxlog"
	"github.com/specialistvlad/scenariotree/internal/nodeid"
	"github.com/specialistvlad/scenariotree/internal/record"
	"github.com/specialistvlad/scenariotree/internal/source"
	"github.com/specialistvlad/scenariotree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromDataset(t *testing.T) {
	dataset := testutil.WriteDataset(t, map[string]string{"scenariotree.json": testutil.EnergyTreeJSON})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	tree, err := Load(ctx, dataset)
	require.NoError(t, err)
	assert.Equal(t, 5, tree.NodeCount())
	assert.Equal(t, 3, tree.LeafCount())
	assert.Contains(t, logs.String(), "Scenario tree loaded.")
	assert.Contains(t, logs.String(), "node_id=4")
}

func TestLoad_AllFormatsBuildTheSameTree(t *testing.T) {
	build := func(fileName, content string) *Tree {
		dataset := testutil.WriteDataset(t, map[string]string{fileName: content})
		tree, err := Load(context.Background(), dataset)
		require.NoError(t, err, fileName)
		return tree
	}

	want := shapeOf(build("scenariotree.json", testutil.ThreeNodeJSON))
	for fileName, content := range map[string]string{
		"scenariotree.yaml": testutil.ThreeNodeYAML,
		"scenariotree.hcl":  testutil.ThreeNodeHCL,
	} {
		if diff := cmp.Diff(want, shapeOf(build(fileName, content))); diff != "" {
			t.Errorf("%s builds a different tree (-json +%s):\n%s", fileName, fileName, diff)
		}
	}
}

func TestLoad_NotFound(t *testing.T) {
	dataset := t.TempDir()

	tree, err := Load(context.Background(), dataset)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, tree)

	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, filepath.Join(dataset, source.FileName), nfErr.Path)
}

func TestLoad_MalformedInputPropagates(t *testing.T) {
	dataset := testutil.WriteDataset(t, map[string]string{
		"scenariotree.json": `{"node_id": "R", "year": 0, "probability": 1, "state": {},
			"children": [{"node_id": "A", "year": 1, "state": {}}]}`,
	})

	tree, err := Load(context.Background(), dataset)
	require.ErrorIs(t, err, ErrMalformedInput)
	assert.Nil(t, tree)

	var mErr *MalformedInputError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, record.FieldProbability, mErr.Field)
	assert.Equal(t, "root.children[0]", mErr.Location)
	_, unwrapped := err.(*MalformedInputError)
	assert.True(t, unwrapped, "got %T", err)
}

func TestLoad_OptionsReachConstruct(t *testing.T) {
	dataset := testutil.WriteDataset(t, map[string]string{"scenariotree.json": duplicateIDsJSON})

	_, err := Load(context.Background(), dataset)
	require.NoError(t, err)

	_, err = Load(context.Background(), dataset, WithUniqueIDs())
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestLoad_WithSource(t *testing.T) {
	hclOnly := source.New(source.DefaultFormats()[3])
	dataset := testutil.WriteDataset(t, map[string]string{
		"scenariotree.json": `not even json`,
		"scenariotree.hcl":  testutil.ThreeNodeHCL,
	})

	tree, err := Load(context.Background(), dataset, WithSource(hclOnly))
	require.NoError(t, err)
	_, ok := tree.Leaf(nodeid.String("B"))
	assert.True(t, ok)
}
