package footer

import (
	"encoding/binary"
	"io"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"

	"github.com/grafana/vortex-inspect/pkg/vortex/footer/fbs"
)

const flatbufferBuilderInitialCapacity = 1024

// WriteOptions describes the tail written after the data payload.
type WriteOptions struct {
	Version         uint16
	ArrayEncodings  []string
	LayoutEncodings []string
	Segments        []Segment

	// Optional postscript segments.
	DType      *Segment
	Layout     *Segment
	Statistics *Segment
}

// Write writes data followed by a footer, a postscript pointing at it and
// the trailer. The footer starts right after data. Encoding ids are written
// as given, duplicates included.
func Write(w io.Writer, data []byte, opts WriteOptions) (int64, error) {
	footerBytes := EncodeFooter(opts.ArrayEncodings, opts.LayoutEncodings, opts.Segments)
	if uint64(len(footerBytes)) > math.MaxUint32 {
		return 0, errors.Errorf("footer of %d bytes does not fit a segment", len(footerBytes))
	}
	footerSegment := Segment{
		Offset: uint64(len(data)),
		Length: uint32(len(footerBytes)),
	}
	psBytes := EncodePostscript(Postscript{
		DType:      opts.DType,
		Layout:     opts.Layout,
		Statistics: opts.Statistics,
		Footer:     &footerSegment,
	})
	if len(psBytes) > math.MaxUint16 {
		return 0, errors.Errorf("postscript of %d bytes exceeds %d", len(psBytes), math.MaxUint16)
	}
	trailer := EncodeTrailer(Trailer{Version: opts.Version, PostscriptLength: uint16(len(psBytes))})

	var written int64
	for _, b := range [][]byte{data, footerBytes, psBytes, trailer[:]} {
		n, err := w.Write(b)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// EncodeTrailer returns the eight trailer bytes.
func EncodeTrailer(t Trailer) [TrailerSize]byte {
	var b [TrailerSize]byte
	binary.LittleEndian.PutUint16(b[0:2], t.Version)
	binary.LittleEndian.PutUint16(b[2:4], t.PostscriptLength)
	copy(b[4:], Magic[:])
	return b
}

// EncodePostscript returns a postscript flatbuffer. A nil footer produces a
// postscript without a footer segment.
func EncodePostscript(ps Postscript) []byte {
	fb := flatbuffers.NewBuilder(flatbufferBuilderInitialCapacity)
	segment := func(s *Segment) flatbuffers.UOffsetT {
		if s == nil {
			return 0
		}
		fbs.PostscriptSegmentStart(fb)
		fbs.PostscriptSegmentAddOffset(fb, s.Offset)
		fbs.PostscriptSegmentAddLength(fb, s.Length)
		fbs.PostscriptSegmentAddAlignmentExponent(fb, s.AlignmentExponent)
		return fbs.PostscriptSegmentEnd(fb)
	}
	dtype, layout, statistics, footer := segment(ps.DType), segment(ps.Layout), segment(ps.Statistics), segment(ps.Footer)

	fbs.PostscriptStart(fb)
	if ps.DType != nil {
		fbs.PostscriptAddDtype(fb, dtype)
	}
	if ps.Layout != nil {
		fbs.PostscriptAddLayout(fb, layout)
	}
	if ps.Statistics != nil {
		fbs.PostscriptAddStatistics(fb, statistics)
	}
	if ps.Footer != nil {
		fbs.PostscriptAddFooter(fb, footer)
	}
	fb.Finish(fbs.PostscriptEnd(fb))
	return fb.FinishedBytes()
}

// EncodeFooter returns a footer flatbuffer listing the given specs in order.
func EncodeFooter(arrayIDs, layoutIDs []string, segments []Segment) []byte {
	fb := flatbuffers.NewBuilder(flatbufferBuilderInitialCapacity)

	arraySpecs := make([]flatbuffers.UOffsetT, len(arrayIDs))
	for i, id := range arrayIDs {
		s := fb.CreateString(id)
		fbs.ArraySpecStart(fb)
		fbs.ArraySpecAddId(fb, s)
		arraySpecs[i] = fbs.ArraySpecEnd(fb)
	}
	layoutSpecs := make([]flatbuffers.UOffsetT, len(layoutIDs))
	for i, id := range layoutIDs {
		s := fb.CreateString(id)
		fbs.LayoutSpecStart(fb)
		fbs.LayoutSpecAddId(fb, s)
		layoutSpecs[i] = fbs.LayoutSpecEnd(fb)
	}

	// flatbuffers adds everything back to front. Reverse iterate so they're in
	// the right order when they come out.
	fbs.FooterStartArraySpecsVector(fb, len(arraySpecs))
	for i := len(arraySpecs) - 1; i >= 0; i-- {
		fb.PrependUOffsetT(arraySpecs[i])
	}
	arrays := fb.EndVector(len(arraySpecs))

	fbs.FooterStartLayoutSpecsVector(fb, len(layoutSpecs))
	for i := len(layoutSpecs) - 1; i >= 0; i-- {
		fb.PrependUOffsetT(layoutSpecs[i])
	}
	layouts := fb.EndVector(len(layoutSpecs))

	fbs.FooterStartSegmentSpecsVector(fb, len(segments))
	for i := len(segments) - 1; i >= 0; i-- {
		s := segments[i]
		fbs.CreateSegmentSpec(fb, s.Offset, s.Length, s.AlignmentExponent)
	}
	segs := fb.EndVector(len(segments))

	fbs.FooterStart(fb)
	fbs.FooterAddArraySpecs(fb, arrays)
	fbs.FooterAddLayoutSpecs(fb, layouts)
	fbs.FooterAddSegmentSpecs(fb, segs)
	fb.Finish(fbs.FooterEnd(fb))
	return fb.FinishedBytes()
}
