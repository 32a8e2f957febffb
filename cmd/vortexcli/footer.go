package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-multierror"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	inspectcontext "github.com/grafana/vortex-inspect/pkg/inspect/context"
	vortexobj "github.com/grafana/vortex-inspect/pkg/objstore"
	"github.com/grafana/vortex-inspect/pkg/vortex/footer"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type footerParams struct {
	storage  *storageParams
	format   string
	tailSize int64
	paths    []string
}

func addFooterParams(cmd commander) *footerParams {
	params := &footerParams{}
	params.storage = addStorageParams(cmd)
	cmd.Flag("format", "Output format.").Default(formatText).EnumVar(&params.format, formatText, formatJSON)
	cmd.Flag("tail-size", "Bytes read from the end of each file in the first request.").Default(strconv.Itoa(vortexobj.DefaultTailSize)).Int64Var(&params.tailSize)
	cmd.Arg("file", "Vortex file path, or object name for remote backends.").Required().StringsVar(&params.paths)
	return params
}

type footerOutput struct {
	File            string         `json:"file"`
	Size            int64          `json:"size"`
	Version         uint16         `json:"version"`
	PostscriptSize  uint16         `json:"postscript_size"`
	Footer          footer.Segment `json:"footer"`
	SegmentCount    int            `json:"segment_count"`
	ArrayEncodings  []string       `json:"array_encodings"`
	LayoutEncodings []string       `json:"layout_encodings"`
	Optional        []namedSegment `json:"segments,omitempty"`
}

type namedSegment struct {
	Name string `json:"name"`
	footer.Segment
}

// footerInspect prints the footer of every file. A file that cannot be read
// is logged and skipped, and the failures are returned together.
func footerInspect(ctx context.Context, params *footerParams) error {
	bkt, err := params.storage.bucket(ctx)
	if err != nil {
		return err
	}
	defer bkt.Close()

	var errs error
	out := output(ctx)
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	for _, path := range params.paths {
		fileCtx := inspectcontext.WithFile(ctx, path)
		result, err := readFooter(fileCtx, bkt, params, path)
		if err != nil {
			level.Warn(inspectcontext.Logger(fileCtx)).Log("msg", "failed to read footer", "err", err)
			errs = multierror.Append(errs, errors.Wrap(err, path))
			continue
		}
		if params.format == formatJSON {
			if err := enc.Encode(result); err != nil {
				return err
			}
			continue
		}
		printFooter(out, result)
	}
	return errs
}

func readFooter(ctx context.Context, bkt vortexobj.Bucket, params *footerParams, path string) (*footerOutput, error) {
	name, err := params.storage.objectName(path)
	if err != nil {
		return nil, err
	}
	f, err := vortexobj.OpenFile(ctx, bkt, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	md, err := footer.Read(vortexobj.NewTailReaderAt(f, f.Size(), params.tailSize))
	if err != nil {
		return nil, err
	}
	level.Debug(inspectcontext.Logger(ctx)).Log("msg", "read footer", "version", md.Version, "footer_offset", md.Footer.Offset, "footer_length", md.Footer.Length)

	result := &footerOutput{
		File:            path,
		Size:            f.Size(),
		Version:         md.Version,
		PostscriptSize:  md.PostscriptLength,
		Footer:          md.Footer,
		SegmentCount:    md.SegmentCount,
		ArrayEncodings:  nonNil(md.ArrayEncodings),
		LayoutEncodings: nonNil(md.LayoutEncodings),
	}
	for _, s := range []struct {
		name    string
		segment *footer.Segment
	}{
		{"dtype", md.DType},
		{"layout", md.Layout},
		{"statistics", md.Statistics},
	} {
		if s.segment != nil {
			result.Optional = append(result.Optional, namedSegment{Name: s.name, Segment: *s.segment})
		}
	}
	return result, nil
}

func printFooter(out io.Writer, r *footerOutput) {
	fmt.Fprintln(out, "File:", r.File)
	fmt.Fprintln(out, "\t Size:", humanize.Bytes(uint64(r.Size)))
	fmt.Fprintln(out, "\t Version:", r.Version)
	fmt.Fprintf(out, "\t Footer: offset %d, %s\n", r.Footer.Offset, humanize.Bytes(uint64(r.Footer.Length)))
	fmt.Fprintln(out, "\t Segments:", r.SegmentCount)
	for _, s := range r.Optional {
		fmt.Fprintf(out, "\t Postscript %s: offset %d, %s\n", s.Name, s.Offset, humanize.Bytes(uint64(s.Length)))
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Kind", "#", "Encoding"})
	appendEncodings(table, "array", r.ArrayEncodings)
	appendEncodings(table, "layout", r.LayoutEncodings)
	table.Render()
}

func appendEncodings(table *tablewriter.Table, kind string, ids []string) {
	if len(ids) == 0 {
		table.Append([]string{kind, "-", "(none)"})
		return
	}
	for i, id := range ids {
		table.Append([]string{kind, strconv.Itoa(i + 1), id})
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
