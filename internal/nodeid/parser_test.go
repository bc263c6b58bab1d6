// internal/nodeid/parser_test.go
package nodeid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	testCases := []struct {
		name       string
		raw        string
		expectErr  bool
		expectedID ID
	}{
		{
			name:       "string identifier",
			raw:        `"R"`,
			expectedID: String("R"),
		},
		{
			name:       "string with escapes",
			raw:        `"2030 high"`,
			expectedID: String("2030 high"),
		},
		{
			name:       "integer identifier",
			raw:        `17`,
			expectedID: Int(17),
		},
		{
			name:       "negative integer with surrounding whitespace",
			raw:        "  -3 ",
			expectedID: Int(-3),
		},
		{
			name:      "error - fractional number",
			raw:       `1.5`,
			expectErr: true,
		},
		{
			name:      "error - exponent number",
			raw:       `1e3`,
			expectErr: true,
		},
		{
			name:      "error - null",
			raw:       `null`,
			expectErr: true,
		},
		{
			name:      "error - object",
			raw:       `{"a":1}`,
			expectErr: true,
		},
		{
			name:      "error - empty input",
			raw:       ``,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ParseJSON([]byte(tc.raw))
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

func TestStringAndIntegerIDsAreDistinct(t *testing.T) {
	s := String("1")
	n := Int(1)

	assert.Equal(t, s.String(), n.String())
	assert.NotEqual(t, s, n)

	lookup := map[ID]string{s: "string", n: "integer"}
	assert.Len(t, lookup, 2)
}

func TestJSONRoundTripPreservesKind(t *testing.T) {
	in := []ID{String("A"), Int(42), String("42")}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["A", 42, "42"]`, string(data))

	var out []ID
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestIDAccessors(t *testing.T) {
	n := Int(7)
	v, ok := n.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(7), v)
	assert.True(t, n.IsInteger())
	assert.Equal(t, KindInteger, n.Kind())
	assert.Equal(t, "7", n.GoString())

	s := String("7")
	_, ok = s.Int64()
	assert.False(t, ok)
	assert.Equal(t, `"7"`, s.GoString())
	assert.Equal(t, "string", s.Kind().String())
}
