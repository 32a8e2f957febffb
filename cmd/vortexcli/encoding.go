package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/xlab/treeprint"

	inspectcontext "github.com/grafana/vortex-inspect/pkg/inspect/context"
	"github.com/grafana/vortex-inspect/pkg/vortex/encodingtree"
)

type encodingParams struct {
	format      string
	target      string
	verboseTree bool
	noCollapse  bool
	maxDepth    int
	path        string
}

func addEncodingParams(cmd commander) *encodingParams {
	params := &encodingParams{}
	cmd.Flag("format", "Output format.").Default(formatText).EnumVar(&params.format, formatText, formatJSON)
	cmd.Flag("target", "Encoding to search the columns for.").Default("vortex.zstd").StringVar(&params.target)
	cmd.Flag("verbose-tree", "Print the full encoding tree.").Default("false").BoolVar(&params.verboseTree)
	cmd.Flag("no-collapse", "Expand every repeated struct in the encoding tree.").Default("false").BoolVar(&params.noCollapse)
	cmd.Flag("max-depth", "Deepest encoding tree accepted.").Default(fmt.Sprint(encodingtree.DefaultMaxDepth)).IntVar(&params.maxDepth)
	cmd.Arg("tree", "Encoding tree document (YAML or JSON).").Required().ExistingFileVar(&params.path)
	return params
}

type encodingOutput struct {
	File          string                        `json:"file"`
	RootEncoding  string                        `json:"root_encoding"`
	RootBytes     uint64                        `json:"root_bytes"`
	Columns       []encodingtree.ColumnEncoding `json:"columns"`
	Target        string                        `json:"target"`
	TargetColumns []string                      `json:"target_columns"`
	Tree          string                        `json:"tree,omitempty"`
}

func encodingInspect(ctx context.Context, params *encodingParams) error {
	f, err := os.Open(params.path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := encodingtree.Load(f, encodingtree.LoadOptions{MaxDepth: params.maxDepth})
	if err != nil {
		return errors.Wrapf(err, "loading %s", params.path)
	}

	result := analyzeEncodings(doc, params)
	result.File = params.path
	if len(doc.Fields) > 0 && len(result.Columns) == 0 {
		level.Warn(inspectcontext.Logger(ctx)).Log("msg", "no struct in the encoding tree matches the field names", "fields", len(doc.Fields))
	}

	out := output(ctx)
	if params.format == formatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printEncodings(out, result)
	return nil
}

func analyzeEncodings(doc *encodingtree.Document, params *encodingParams) *encodingOutput {
	result := &encodingOutput{
		RootEncoding:  doc.Root.EncodingID(),
		RootBytes:     doc.Root.ByteSize(),
		Columns:       encodingtree.ColumnEncodings(doc.Root, doc.Fields),
		Target:        params.target,
		TargetColumns: encodingtree.FindColumnsWithEncoding(doc.Root, params.target, doc.Fields),
	}
	if result.Columns == nil {
		result.Columns = []encodingtree.ColumnEncoding{}
	}
	result.TargetColumns = nonNil(result.TargetColumns)
	if params.verboseTree {
		result.Tree = encodingtree.Render(doc.Root, encodingtree.RenderOptions{
			FieldNames:      doc.Fields,
			CollapseRepeats: !params.noCollapse,
		})
	}
	return result
}

func printEncodings(out io.Writer, r *encodingOutput) {
	fmt.Fprintln(out, "File:", r.File)
	fmt.Fprintf(out, "Root encoding: %s (%s)\n", r.RootEncoding, humanize.Bytes(r.RootBytes))

	if len(r.Columns) > 0 {
		columns := treeprint.NewWithRoot("Columns")
		for _, c := range r.Columns {
			columns.AddNode(fmt.Sprintf("%s: %s (%s)%s", c.Name, c.EncodingID, humanize.Bytes(c.ByteSize), c.Description))
		}
		fmt.Fprint(out, columns.String())
	}

	if len(r.TargetColumns) == 0 {
		fmt.Fprintf(out, "Columns using %s: (none)\n", r.Target)
	} else {
		fmt.Fprintf(out, "Columns using %s: %s\n", r.Target, strings.Join(r.TargetColumns, ", "))
	}

	if r.Tree != "" {
		fmt.Fprintln(out, "Encoding tree:")
		fmt.Fprint(out, r.Tree)
	}
}
