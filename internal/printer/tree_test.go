package printer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/specialistvlad/scenariotree/internal/record"
	"github.com/specialistvlad/scenariotree/internal/scenariotree"
	"github.com/specialistvlad/scenariotree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func energyTree(t *testing.T) *scenariotree.Tree {
	t.Helper()
	rec, err := record.DecodeJSON([]byte(testutil.EnergyTreeJSON))
	require.NoError(t, err)
	tree, err := scenariotree.Construct(context.Background(), rec)
	require.NoError(t, err)
	return tree
}

func TestTree_RendersEveryNode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, energyTree(t)))

	out := buf.String()
	for _, want := range []string{
		"0 (year=2020, p=1)",
		"1 (year=2030, p=0.6)",
		"2 (year=2030, p=0.4)",
		"3 (year=2040, p=0.3)",
		"4 (year=2040, p=0.7)",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("3 (year")), bytes.Index(buf.Bytes(), []byte("4 (year")))
}

func constructJSON(t *testing.T, doc string) *scenariotree.Tree {
	t.Helper()
	rec, err := record.DecodeJSON([]byte(doc))
	require.NoError(t, err)
	tree, err := scenariotree.Construct(context.Background(), rec)
	require.NoError(t, err)
	return tree
}

func TestTree_KeepsLookalikeSiblingsApart(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "integer and string id",
			doc: `{"node_id": "R", "year": 0, "probability": 1, "state": {}, "children": [
				{"node_id": 1, "year": 1, "probability": 0.5, "state": {},
					"children": [{"node_id": "x", "year": 2, "probability": 1, "state": {}}]},
				{"node_id": "1", "year": 1, "probability": 0.5, "state": {},
					"children": [{"node_id": "y", "year": 2, "probability": 1, "state": {}}]}]}`,
			want: []string{
				"1 (year=1, p=0.5)",
				`"1" (year=1, p=0.5)`,
			},
		},
		{
			name: "duplicate id",
			doc: `{"node_id": "R", "year": 0, "probability": 1, "state": {}, "children": [
				{"node_id": "X", "year": 1, "probability": 0.5, "state": {},
					"children": [{"node_id": "x", "year": 2, "probability": 1, "state": {}}]},
				{"node_id": "X", "year": 1, "probability": 0.5, "state": {},
					"children": [{"node_id": "y", "year": 2, "probability": 1, "state": {}}]}]}`,
			want: []string{
				`"X" (year=1, p=0.5)`,
				`"X" (year=1, p=0.5) [root.children[1]]`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Tree(&buf, constructJSON(t, tc.doc)))
			out := buf.String()

			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
			// Root, two siblings and one grandchild under each.
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			require.Len(t, lines, 5, out)
			assert.Contains(t, lines[2], `"x"`)
			assert.Contains(t, lines[4], `"y"`)
		})
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, energyTree(t)))

	assert.Equal(t,
		"nodes:  5\nleaves: 3\ndepth:  2\n  2<-0\n  3<-1<-0\n  4<-1<-0\n",
		buf.String())
}
