package encodingtree

import (
	"fmt"
	"strings"
)

type RenderOptions struct {
	// FieldNames labels the fields of struct nodes with a matching number of
	// children. Without names no labels are rendered.
	FieldNames []string

	// CollapseRepeats expands only the first matching struct and replaces the
	// fields of every later one with a single summary line. Later structs are
	// assumed to have the same layout, as chunked files repeat one struct
	// per chunk. Their contents are not compared.
	CollapseRepeats bool
}

// Render returns the encoding tree of root, one node per line:
//
//	└─ vortex.chunked (2048 bytes)
//	  └─ vortex.struct (1024 bytes)
//	    ├─ Column [id]:
//	      └─ fastlanes.bitpacked (512 bytes) [Bit-packed]
//	    └─ Column [name]:
//	      └─ vortex.dict (512 bytes) [Dict: 4 values, 128 codes]
//	  └─ vortex.struct (1024 bytes)
//	    [Same structure: 2 columns]
func Render(root Node, opts RenderOptions) string {
	var sb strings.Builder
	if root == nil {
		return ""
	}
	r := renderer{sb: &sb, names: opts.FieldNames, collapse: opts.CollapseRepeats}
	r.named(root, 0, false)
	return sb.String()
}

type renderer struct {
	sb       *strings.Builder
	names    []string
	collapse bool
}

func (r renderer) line(n Node, depth int) {
	fmt.Fprintf(r.sb, "%s└─ %s (%d bytes)%s\n", indent(depth), n.EncodingID(), n.ByteSize(), Describe(n))
}

// named renders n and looks for structs to label. shown tells whether a
// struct has already been expanded; the updated value is returned so that
// siblings and later subtrees see it.
func (r renderer) named(n Node, depth int, shown bool) bool {
	if n == nil {
		return shown
	}
	r.line(n, depth)
	children := n.Children()

	if len(r.names) > 0 && IsStruct(n) && len(children) == len(r.names) {
		prefix := indent(depth) + "  "
		if r.collapse && shown {
			fmt.Fprintf(r.sb, "%s[Same structure: %d columns]\n", prefix, len(children))
			return shown
		}
		for i, child := range children {
			branch := "├─"
			if i == len(children)-1 {
				branch = "└─"
			}
			fmt.Fprintf(r.sb, "%s%s Column [%s]:\n", prefix, branch, r.names[i])
			r.plain(child, depth+2)
		}
		return true
	}

	for _, child := range children {
		shown = r.named(child, depth+1, shown)
	}
	return shown
}

// plain renders n and its subtree without labels. Nil nodes are skipped.
func (r renderer) plain(n Node, depth int) {
	if n == nil {
		return
	}
	r.line(n, depth)
	for _, child := range n.Children() {
		r.plain(child, depth+1)
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
