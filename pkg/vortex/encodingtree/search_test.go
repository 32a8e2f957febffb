package encodingtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(encoding string, children ...*StaticNode) *StaticNode {
	return NewStaticNode(encoding, 10, children...)
}

func uint64p(v uint64) *uint64 { return &v }

// listNode is a Node whose children may contain nil entries.
type listNode struct {
	encoding string
	children []Node
}

func (n listNode) EncodingID() string { return n.encoding }
func (n listNode) ByteSize() uint64   { return 10 }
func (n listNode) Children() []Node   { return n.children }

func encodings(nodes []Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.EncodingID())
	}
	return ids
}

func Test_FindFirstStructChildren(t *testing.T) {
	tests := []struct {
		Name string
		Root *StaticNode
		Want []string
	}{
		{
			Name: "root is a struct",
			Root: node(StructEncoding, node("vortex.primitive"), node("vortex.varbin")),
			Want: []string{"vortex.primitive", "vortex.varbin"},
		},
		{
			Name: "struct nested below another struct is ignored",
			Root: node("vortex.chunked",
				node(StructEncoding,
					node("vortex.primitive"),
					node(StructEncoding, node("vortex.bool"), node("vortex.null")),
				),
			),
			Want: []string{"vortex.primitive", StructEncoding},
		},
		{
			Name: "first struct in document order wins",
			Root: node("vortex.chunked",
				node("vortex.primitive"),
				node("vortex.zstd", node(StructEncoding, node("vortex.alp"))),
				node(StructEncoding, node("vortex.fsst")),
			),
			Want: []string{"vortex.alp"},
		},
		{
			Name: "empty struct is skipped",
			Root: node("vortex.chunked",
				node(StructEncoding),
				node(StructEncoding, node("vortex.fsst")),
			),
			Want: []string{"vortex.fsst"},
		},
		{
			Name: "no struct",
			Root: node("vortex.chunked", node("vortex.primitive"), node("vortex.dict", node("vortex.varbin"))),
			Want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, encodings(FindFirstStructChildren(tt.Root)))
		})
	}

	assert.Nil(t, FindFirstStructChildren(nil))
}

func Test_ContainsEncoding(t *testing.T) {
	root := node("vortex.chunked",
		node(StructEncoding,
			node("vortex.primitive"),
			node("vortex.dict", node("vortex.varbin", node("vortex.zstd"))),
		),
	)
	assert.True(t, ContainsEncoding(root, "vortex.chunked"))
	assert.True(t, ContainsEncoding(root, "vortex.zstd"))
	assert.True(t, ContainsEncoding(root, StructEncoding))
	assert.False(t, ContainsEncoding(root, "vortex.runend"))
	assert.False(t, ContainsEncoding(nil, "vortex.zstd"))
}

func Test_FindColumnsWithEncoding(t *testing.T) {
	names := []string{"timestamp", "level", "message"}

	t.Run("encoding anywhere flags every column", func(t *testing.T) {
		root := node("vortex.chunked",
			node(StructEncoding,
				node("vortex.primitive"),
				node("vortex.primitive"),
				node("vortex.varbin", node("vortex.zstd")),
			),
		)
		assert.Equal(t, names, FindColumnsWithEncoding(root, "vortex.zstd", names))
	})

	t.Run("encoding under an unrelated node still flags every column", func(t *testing.T) {
		root := node("vortex.chunked",
			node("vortex.zstd"),
			node(StructEncoding, node("vortex.primitive"), node("vortex.primitive"), node("vortex.primitive")),
		)
		assert.Equal(t, names, FindColumnsWithEncoding(root, "vortex.zstd", names))
	})

	t.Run("missing encoding", func(t *testing.T) {
		root := node(StructEncoding, node("vortex.primitive"), node("vortex.dict"), node("vortex.varbin"))
		assert.Empty(t, FindColumnsWithEncoding(root, "vortex.zstd", names))
	})

	t.Run("result does not alias the input", func(t *testing.T) {
		root := node("vortex.zstd")
		got := FindColumnsWithEncoding(root, "vortex.zstd", names)
		require.Len(t, got, 3)
		got[0] = "changed"
		assert.Equal(t, "timestamp", names[0])
	})
}

func Test_ColumnEncodings(t *testing.T) {
	dict := node("vortex.dict", node("fastlanes.bitpacked"), node("vortex.varbin"))
	dict.Bytes = 64
	dict.Values, dict.Codes = uint64p(3), uint64p(100)
	root := node("vortex.chunked",
		node(StructEncoding,
			node("vortex.primitive"),
			dict,
			node("vortex.runend"),
		),
	)

	got := ColumnEncodings(root, []string{"id", "level"})
	assert.Equal(t, []ColumnEncoding{
		{Name: "id", EncodingID: "vortex.primitive", ByteSize: 10},
		{Name: "level", EncodingID: "vortex.dict", ByteSize: 64, Description: " [Dict: 3 values, 100 codes]"},
	}, got)

	got = ColumnEncodings(root, []string{"id", "level", "message", "extra"})
	assert.Len(t, got, 3)
	assert.Equal(t, " [RLE]", got[2].Description)

	assert.Empty(t, ColumnEncodings(node("vortex.primitive"), []string{"id"}))
	assert.Empty(t, ColumnEncodings(root, nil))
}

func Test_NilChildren(t *testing.T) {
	withNil := listNode{encoding: StructEncoding, children: []Node{nil, node("vortex.zstd")}}

	assert.True(t, ContainsEncoding(withNil, "vortex.zstd"))
	assert.Len(t, FindFirstStructChildren(withNil), 2)
	assert.Equal(t, []ColumnEncoding{
		{Name: "id"},
		{Name: "msg", EncodingID: "vortex.zstd", ByteSize: 10, Description: " [Zstd]"},
	}, ColumnEncodings(withNil, []string{"id", "msg"}))

	static := NewStaticNode(StructEncoding, 20, nil, node("vortex.zstd"), nil)
	assert.Equal(t, []string{"vortex.zstd"}, encodings(static.Children()))
	assert.Equal(t, []string{"vortex.zstd"}, encodings(FindFirstStructChildren(static)))
	assert.Equal(t, []ColumnEncoding{
		{Name: "msg", EncodingID: "vortex.zstd", ByteSize: 10, Description: " [Zstd]"},
	}, ColumnEncodings(static, []string{"msg"}))
}
