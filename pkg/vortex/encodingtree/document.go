package encodingtree

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultMaxDepth bounds the depth of loaded trees. The analyzer walks trees
// recursively and does not limit depth itself.
const DefaultMaxDepth = 256

var (
	ErrTooDeep     = errors.New("encoding tree exceeds maximum depth")
	ErrMissingRoot = errors.New("encoding tree has no root")
)

// Document is a serialized encoding tree together with the schema field
// names, as dumped by a tool that can materialize the arrays of a file.
// JSON documents decode as well since JSON is valid YAML.
//
//	fields: [id, name]
//	root:
//	  encoding: vortex.struct
//	  bytes: 1024
//	  children:
//	    - {encoding: fastlanes.bitpacked, bytes: 512}
//	    - {encoding: vortex.dict, bytes: 512, values: 4, codes: 128}
type Document struct {
	Fields []string    `yaml:"fields,omitempty" json:"fields,omitempty"`
	Root   *StaticNode `yaml:"root" json:"root"`
}

// StaticNode is a Node backed by plain values.
type StaticNode struct {
	Encoding string `yaml:"encoding" json:"encoding"`
	Bytes    uint64 `yaml:"bytes" json:"bytes"`

	// Dictionary and run-end statistics, when known.
	Values *uint64 `yaml:"values,omitempty" json:"values,omitempty"`
	Codes  *uint64 `yaml:"codes,omitempty" json:"codes,omitempty"`
	Runs   *uint64 `yaml:"runs,omitempty" json:"runs,omitempty"`

	Nodes []*StaticNode `yaml:"children,omitempty" json:"children,omitempty"`
}

func NewStaticNode(encoding string, bytes uint64, children ...*StaticNode) *StaticNode {
	return &StaticNode{Encoding: encoding, Bytes: bytes, Nodes: children}
}

func (n *StaticNode) EncodingID() string { return n.Encoding }
func (n *StaticNode) ByteSize() uint64   { return n.Bytes }

// Children returns the non-nil children of n.
func (n *StaticNode) Children() []Node {
	if len(n.Nodes) == 0 {
		return nil
	}
	children := make([]Node, 0, len(n.Nodes))
	for _, c := range n.Nodes {
		if c != nil {
			children = append(children, c)
		}
	}
	return children
}

func (n *StaticNode) DictStats() (values, codes uint64, ok bool) {
	if n.Values == nil || n.Codes == nil {
		return 0, 0, false
	}
	return *n.Values, *n.Codes, true
}

func (n *StaticNode) RunCount() (uint64, bool) {
	if n.Runs == nil {
		return 0, false
	}
	return *n.Runs, true
}

type LoadOptions struct {
	// MaxDepth is the deepest tree accepted, the root being at depth 1.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// Load decodes a Document and validates its tree.
func Load(r io.Reader, opts LoadOptions) (*Document, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding encoding tree")
	}
	if doc.Root == nil {
		return nil, ErrMissingRoot
	}
	if err := validate(doc.Root, "root", 1, maxDepth); err != nil {
		return nil, err
	}
	return &doc, nil
}

func validate(n *StaticNode, path string, depth, maxDepth int) error {
	if depth > maxDepth {
		return errors.Wrapf(ErrTooDeep, "%s is at depth %d, limit %d", path, depth, maxDepth)
	}
	if n == nil {
		return errors.Errorf("%s: empty node", path)
	}
	if n.Encoding == "" {
		return errors.Errorf("%s: missing encoding", path)
	}
	for i, c := range n.Nodes {
		if err := validate(c, fmt.Sprintf("%s.children[%d]", path, i), depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}
