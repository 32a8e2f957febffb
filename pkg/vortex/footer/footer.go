// Package footer locates and decodes the tail of a Vortex file: the fixed
// trailer, the postscript and the footer. It only reads metadata and never
// touches column data, so it keeps working when the file's arrays cannot be
// materialized.
//
// The tail layout is
//
//	[ data ][ footer ][ postscript ][ version:u16 LE ][ postscript_len:u16 LE ][ "VTXF" ]
//
// where the last eight bytes are the trailer.
package footer

import (
	"bytes"
	"encoding/binary"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/grafana/vortex-inspect/pkg/vortex/footer/fbs"
)

const TrailerSize = 8

var Magic = [4]byte{'V', 'T', 'X', 'F'}

// Source is a random-access view of a file with a known size.
// *bytes.Reader and *io.SectionReader both satisfy it.
type Source interface {
	io.ReaderAt
	Size() int64
}

// Segment locates a byte range in the file.
type Segment struct {
	Offset            uint64 `json:"offset"`
	Length            uint32 `json:"length"`
	AlignmentExponent uint8  `json:"alignment_exponent"`
}

func (s Segment) End() uint64 { return s.Offset + uint64(s.Length) }

type Trailer struct {
	Version          uint16
	PostscriptLength uint16
}

// Metadata is everything Read extracts from the tail of a file.
type Metadata struct {
	Version          uint16
	PostscriptLength uint16

	Footer Segment
	// Optional postscript segments, nil when absent.
	DType      *Segment
	Layout     *Segment
	Statistics *Segment

	// Encoding ids in first-seen order without duplicates or empty ids.
	ArrayEncodings  []string
	LayoutEncodings []string

	SegmentCount int
}

// ReadBytes decodes the tail of an in-memory file.
func ReadBytes(b []byte) (*Metadata, error) {
	return Read(bytes.NewReader(b))
}

// ReadEncodings returns the array and layout encoding ids declared in the footer.
func ReadEncodings(src Source) (array []string, layout []string, err error) {
	md, err := Read(src)
	if err != nil {
		return nil, nil, err
	}
	return md.ArrayEncodings, md.LayoutEncodings, nil
}

// Read locates the trailer at the end of src, follows the postscript to the
// footer and decodes both. Every validation failure is returned as *Error.
func Read(src Source) (*Metadata, error) {
	if src.Size() < TrailerSize {
		size := src.Size()
		if size < 0 {
			size = 0
		}
		return nil, newError(ErrTooSmall, 0, TrailerSize, uint64(size),
			"file size %d, need at least %d bytes", size, TrailerSize)
	}
	fileSize := uint64(src.Size())

	tail, err := readRange(src, fileSize-TrailerSize, TrailerSize, fileSize, ErrRead)
	if err != nil {
		return nil, err
	}
	trailer, err := DecodeTrailer(tail)
	if err != nil {
		return nil, err
	}
	if trailer.PostscriptLength == 0 {
		return nil, newError(ErrEmptyPostscript, fileSize-TrailerSize, 0, fileSize,
			"postscript length is 0")
	}
	psLen := uint64(trailer.PostscriptLength)
	if psLen+TrailerSize > fileSize {
		return nil, newError(ErrPostscriptOverflow, fileSize-TrailerSize, psLen, fileSize,
			"postscript size %d exceeds file size %d", psLen, fileSize)
	}

	psOffset := fileSize - TrailerSize - psLen
	psBytes, err := readRange(src, psOffset, int(psLen), fileSize, ErrEmptyPostscriptRead)
	if err != nil {
		return nil, err
	}
	md := &Metadata{
		Version:          trailer.Version,
		PostscriptLength: trailer.PostscriptLength,
	}
	ps, err := decodePostscript(psBytes, psOffset, fileSize)
	if err != nil {
		return nil, err
	}
	if ps.Footer == nil {
		return nil, newError(ErrMissingFooterSegment, psOffset, psLen, fileSize,
			"no footer segment in %d byte postscript", psLen)
	}
	md.Footer = *ps.Footer
	md.DType, md.Layout, md.Statistics = ps.DType, ps.Layout, ps.Statistics

	if md.Footer.Length == 0 {
		return nil, newError(ErrEmptyFooter, md.Footer.Offset, 0, fileSize,
			"footer length is 0")
	}
	footerLen := uint64(md.Footer.Length)
	if footerLen > fileSize || md.Footer.Offset > fileSize-footerLen {
		return nil, newError(ErrFooterOverflow, md.Footer.Offset, footerLen, fileSize,
			"footer [%d, +%d) beyond file size %d", md.Footer.Offset, footerLen, fileSize)
	}

	footerBytes, err := readRange(src, md.Footer.Offset, int(footerLen), fileSize, ErrEmptyFooterRead)
	if err != nil {
		return nil, err
	}
	if err := decodeFooter(footerBytes, md, fileSize); err != nil {
		return nil, err
	}
	return md, nil
}

// DecodeTrailer decodes the last eight bytes of a file.
func DecodeTrailer(b []byte) (Trailer, error) {
	if len(b) != TrailerSize {
		return Trailer{}, newError(ErrTooSmall, 0, TrailerSize, uint64(len(b)),
			"trailer is %d bytes, want %d", len(b), TrailerSize)
	}
	if !bytes.Equal(b[4:8], Magic[:]) {
		return Trailer{}, newError(ErrBadMagic, 4, 4, 0,
			"got magic %q, want %q", b[4:8], Magic[:])
	}
	return Trailer{
		Version:          binary.LittleEndian.Uint16(b[0:2]),
		PostscriptLength: binary.LittleEndian.Uint16(b[2:4]),
	}, nil
}

// readRange reads exactly n bytes at off. A read that yields nothing is
// reported as emptyKind, any other short or failed read as ErrRead.
func readRange(src Source, off uint64, n int, fileSize uint64, emptyKind error) ([]byte, error) {
	buf := make([]byte, n)
	m, err := src.ReadAt(buf, int64(off))
	if m == n {
		return buf, nil
	}
	if err == io.EOF {
		err = nil
	}
	if m == 0 && err == nil {
		return nil, newError(emptyKind, off, uint64(n), fileSize,
			"read 0 of %d bytes at offset %d", n, off)
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return nil, newError(ErrRead, off, uint64(n), fileSize,
		"read %d of %d bytes at offset %d", m, n, off).withCause(err)
}

// Postscript holds the segments the postscript points at.
type Postscript struct {
	DType, Layout, Statistics, Footer *Segment
}

// decodePostscript is the only place the postscript flatbuffer is touched.
// Accessors on a corrupt buffer index out of range, so the root and vtable
// are checked first and anything left is caught and reported.
func decodePostscript(b []byte, off, fileSize uint64) (ps Postscript, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(ErrMalformedRecord, off, uint64(len(b)), fileSize,
				"postscript: %v", r)
		}
	}()
	if err := checkRoot(b); err != nil {
		return ps, newError(ErrMalformedRecord, off, uint64(len(b)), fileSize,
			"postscript: %s", err)
	}
	root := fbs.GetRootAsPostscript(b, 0)
	segment := func(s *fbs.PostscriptSegment) *Segment {
		if s == nil {
			return nil
		}
		return &Segment{
			Offset:            s.Offset(),
			Length:            s.Length(),
			AlignmentExponent: s.AlignmentExponent(),
		}
	}
	ps.DType = segment(root.Dtype(nil))
	ps.Layout = segment(root.Layout(nil))
	ps.Statistics = segment(root.Statistics(nil))
	ps.Footer = segment(root.Footer(nil))
	return ps, nil
}

// decodeFooter fills the encoding ids of md. Ids are copied out of b.
func decodeFooter(b []byte, md *Metadata, fileSize uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newError(ErrMalformedRecord, md.Footer.Offset, uint64(len(b)), fileSize,
				"footer: %v", r)
		}
	}()
	if err := checkRoot(b); err != nil {
		return newError(ErrMalformedRecord, md.Footer.Offset, uint64(len(b)), fileSize,
			"footer: %s", err)
	}
	root := fbs.GetRootAsFooter(b, 0)

	numArrays, numLayouts, numSegments := root.ArraySpecsLength(), root.LayoutSpecsLength(), root.SegmentSpecsLength()
	// Each element needs at least 4 (table offsets) or 16 (segment structs) bytes.
	if numArrays > len(b)/4 || numLayouts > len(b)/4 || numSegments > len(b)/16 {
		return newError(ErrMalformedRecord, md.Footer.Offset, uint64(len(b)), fileSize,
			"footer: vector lengths %d/%d/%d exceed %d byte record", numArrays, numLayouts, numSegments, len(b))
	}

	arrays := newOrderedSet(numArrays)
	var arraySpec fbs.ArraySpec
	for i := 0; i < numArrays; i++ {
		root.ArraySpecs(&arraySpec, i)
		arrays.add(string(arraySpec.Id()))
	}

	layouts := newOrderedSet(numLayouts)
	var layoutSpec fbs.LayoutSpec
	for i := 0; i < numLayouts; i++ {
		root.LayoutSpecs(&layoutSpec, i)
		layouts.add(string(layoutSpec.Id()))
	}

	md.ArrayEncodings = arrays.values
	md.LayoutEncodings = layouts.values
	md.SegmentCount = numSegments
	return nil
}

type rootError string

func (e rootError) Error() string { return string(e) }

// checkRoot validates the root table offset and its vtable header.
func checkRoot(b []byte) error {
	if len(b) < flatbuffers.SizeUOffsetT {
		return rootError("buffer shorter than root offset")
	}
	pos := uint64(flatbuffers.GetUOffsetT(b))
	if pos+flatbuffers.SizeSOffsetT > uint64(len(b)) {
		return rootError("root table offset out of range")
	}
	vtable := int64(pos) - int64(flatbuffers.GetSOffsetT(b[pos:]))
	if vtable < 0 || vtable+2*flatbuffers.SizeVOffsetT > int64(len(b)) {
		return rootError("vtable offset out of range")
	}
	vtableLen := int64(flatbuffers.GetVOffsetT(b[vtable:]))
	if vtable+vtableLen > int64(len(b)) {
		return rootError("vtable extends past buffer")
	}
	return nil
}

// orderedSet keeps the first occurrence of each non-empty string.
type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet(capacity int) *orderedSet {
	return &orderedSet{
		seen:   make(map[string]struct{}, capacity),
		values: make([]string, 0, capacity),
	}
}

func (s *orderedSet) add(v string) {
	if v == "" {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}
