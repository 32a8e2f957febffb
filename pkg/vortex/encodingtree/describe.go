package encodingtree

import "fmt"

var descriptions = map[string]func(Node) string{
	"vortex.zstd": fixed(" [Zstd]"),
	"vortex.dict": func(n Node) string {
		if d, ok := n.(DictNode); ok {
			if values, codes, ok := d.DictStats(); ok {
				return fmt.Sprintf(" [Dict: %d values, %d codes]", values, codes)
			}
		}
		return " [Dict]"
	},
	"vortex.runend": func(n Node) string {
		if r, ok := n.(RunEndNode); ok {
			if runs, ok := r.RunCount(); ok {
				return fmt.Sprintf(" [RLE: %d runs]", runs)
			}
		}
		return " [RLE]"
	},
	"vortex.sparse":       fixed(" [Sparse]"),
	"vortex.alp":          fixed(" [ALP float compression]"),
	"vortex.alprd":        fixed(" [ALP-RD]"),
	"vortex.pco":          fixed(" [PCO quantile compression]"),
	"vortex.for":          fixed(" [Frame-of-Reference]"),
	"fastlanes.bitpacked": fixed(" [Bit-packed]"),
	"vortex.delta":        fixed(" [Delta]"),
	"vortex.fsst":         fixed(" [FSST string compression]"),
	"vortex.sequence":     fixed(" [Sequence]"),
	"vortex.constant":     fixed(" [Constant]"),
}

func fixed(s string) func(Node) string {
	return func(Node) string { return s }
}

// Describe returns a short suffix summarising n, such as " [RLE: 12 runs]".
// Encodings without a description return an empty string.
func Describe(n Node) string {
	if n == nil {
		return ""
	}
	if fn, ok := descriptions[n.EncodingID()]; ok {
		return fn(n)
	}
	return ""
}
