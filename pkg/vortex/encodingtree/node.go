// Package encodingtree analyses an already materialized tree of compressed
// array nodes: which encoding backs each column, whether an encoding is used
// at all, and a readable rendering of the whole tree.
//
// The tree is borrowed from whoever built it and is never modified.
package encodingtree

// StructEncoding is the encoding id of a struct node. Its children are the
// struct fields, in schema order.
const StructEncoding = "vortex.struct"

// Node is a single array in an encoding tree.
type Node interface {
	EncodingID() string
	ByteSize() uint64
	Children() []Node
}

// DictNode is implemented by nodes that can report dictionary statistics.
// ok is false when the statistics are unavailable.
type DictNode interface {
	DictStats() (values, codes uint64, ok bool)
}

// RunEndNode is implemented by nodes that can report their run count.
type RunEndNode interface {
	RunCount() (runs uint64, ok bool)
}

func IsStruct(n Node) bool {
	return n != nil && n.EncodingID() == StructEncoding
}
