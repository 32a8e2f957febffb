package footer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. A returned *Error matches exactly one of them with errors.Is.
var (
	ErrTooSmall             = errors.New("file too small to hold a trailer")
	ErrBadMagic             = errors.New("invalid magic bytes")
	ErrEmptyPostscript      = errors.New("empty postscript")
	ErrPostscriptOverflow   = errors.New("postscript exceeds file size")
	ErrEmptyPostscriptRead  = errors.New("postscript read returned no bytes")
	ErrMissingFooterSegment = errors.New("postscript missing footer segment")
	ErrEmptyFooter          = errors.New("empty footer")
	ErrFooterOverflow       = errors.New("footer extends beyond file size")
	ErrEmptyFooterRead      = errors.New("footer read returned no bytes")
	ErrMalformedRecord      = errors.New("malformed record")
	ErrRead                 = errors.New("read failed")
)

// Error describes where in the file the tail could not be decoded.
type Error struct {
	Kind error

	// Offset and Length describe the byte range being validated or read.
	Offset   uint64
	Length   uint64
	FileSize uint64

	msg string
	err error
}

func newError(kind error, offset, length, fileSize uint64, format string, args ...interface{}) *Error {
	return &Error{
		Kind:     kind,
		Offset:   offset,
		Length:   length,
		FileSize: fileSize,
		msg:      fmt.Sprintf(format, args...),
	}
}

func (e *Error) withCause(err error) *Error {
	e.err = err
	return e
}

func (e *Error) Error() string {
	s := "vortex footer: " + e.Kind.Error()
	if e.msg != "" {
		s += ": " + e.msg
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.err
}
