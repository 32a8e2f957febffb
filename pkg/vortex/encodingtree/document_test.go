package encodingtree

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocument = `
fields: [id, level]
root:
  encoding: vortex.chunked
  bytes: 2048
  children:
    - encoding: vortex.struct
      bytes: 1024
      children:
        - {encoding: fastlanes.bitpacked, bytes: 512}
        - {encoding: vortex.dict, bytes: 512, values: 4, codes: 128}
    - encoding: vortex.struct
      bytes: 1024
      children:
        - {encoding: vortex.runend, bytes: 100, runs: 7}
        - {encoding: vortex.zstd, bytes: 924}
`

func Test_Load(t *testing.T) {
	doc, err := Load(strings.NewReader(testDocument), LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "level"}, doc.Fields)
	assert.Equal(t, "vortex.chunked", doc.Root.EncodingID())
	assert.Equal(t, uint64(2048), doc.Root.ByteSize())
	require.Len(t, doc.Root.Children(), 2)

	fields := FindFirstStructChildren(doc.Root)
	require.Len(t, fields, 2)
	assert.Equal(t, " [Dict: 4 values, 128 codes]", Describe(fields[1]))
	assert.Equal(t, doc.Fields, FindColumnsWithEncoding(doc.Root, "vortex.zstd", doc.Fields))

	values, codes, ok := doc.Root.Nodes[0].Nodes[1].DictStats()
	assert.True(t, ok)
	assert.Equal(t, uint64(4), values)
	assert.Equal(t, uint64(128), codes)

	runs, ok := doc.Root.Nodes[1].Nodes[0].RunCount()
	assert.True(t, ok)
	assert.Equal(t, uint64(7), runs)

	_, ok = doc.Root.RunCount()
	assert.False(t, ok)
}

func Test_LoadJSON(t *testing.T) {
	const in = `{"fields": ["a"], "root": {"encoding": "vortex.struct", "bytes": 8, "children": [{"encoding": "vortex.constant", "bytes": 8}]}}`
	doc, err := Load(strings.NewReader(in), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "└─ vortex.struct (8 bytes)\n  └─ Column [a]:\n    └─ vortex.constant (8 bytes) [Constant]\n",
		Render(doc.Root, RenderOptions{FieldNames: doc.Fields}))
}

func Test_LoadErrors(t *testing.T) {
	tests := []struct {
		Name    string
		In      string
		Opts    LoadOptions
		Is      error
		Message string
	}{
		{
			Name: "missing root",
			In:   "fields: [a]\n",
			Is:   ErrMissingRoot,
		},
		{
			Name:    "missing encoding",
			In:      "root:\n  bytes: 1\n  children:\n    - {bytes: 2}\n",
			Message: "root: missing encoding",
		},
		{
			Name:    "missing child encoding",
			In:      "root:\n  encoding: vortex.struct\n  children:\n    - {encoding: vortex.primitive}\n    - {bytes: 2}\n",
			Message: "root.children[1]: missing encoding",
		},
		{
			Name:    "null child",
			In:      "root:\n  encoding: vortex.struct\n  children:\n    - null\n",
			Message: "root.children[0]: empty node",
		},
		{
			Name: "too deep",
			In:   "root:\n  encoding: a\n  children:\n    - encoding: b\n      children:\n        - {encoding: c}\n",
			Opts: LoadOptions{MaxDepth: 2},
			Is:   ErrTooDeep,
		},
		{
			Name:    "unknown field",
			In:      "root:\n  encoding: a\n  size: 3\n",
			Message: "field size not found",
		},
		{
			Name:    "not a document",
			In:      "- a\n- b\n",
			Message: "decoding encoding tree",
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			doc, err := Load(strings.NewReader(tt.In), tt.Opts)
			require.Error(t, err)
			assert.Nil(t, doc)
			if tt.Is != nil {
				assert.True(t, errors.Is(err, tt.Is), err.Error())
			}
			if tt.Message != "" {
				assert.Contains(t, err.Error(), tt.Message)
			}
		})
	}
}

func nestedDocument(depth int) string {
	return `{"root": ` + strings.Repeat(`{"encoding": "vortex.sparse", "children": [`, depth-1) +
		`{"encoding": "vortex.primitive"}` + strings.Repeat(`]}`, depth-1) + `}`
}

func Test_LoadDepthLimit(t *testing.T) {
	_, err := Load(strings.NewReader(nestedDocument(DefaultMaxDepth)), LoadOptions{})
	require.NoError(t, err)

	_, err = Load(strings.NewReader(nestedDocument(DefaultMaxDepth+1)), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooDeep))

	_, err = Load(strings.NewReader(nestedDocument(DefaultMaxDepth+1)), LoadOptions{MaxDepth: 1000})
	require.NoError(t, err)
}
