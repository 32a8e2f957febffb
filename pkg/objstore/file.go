package objstore

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// DefaultTailSize covers the trailer, postscript and footer of most files,
// so that their metadata is fetched with a single request.
const DefaultTailSize = 64 << 10

// File is an object opened for random access with a known size.
type File struct {
	ReaderAtCloser
	name string
	size int64
}

// OpenFile opens the object name. Its size is taken from the object
// attributes.
func OpenFile(ctx context.Context, bkt Bucket, name string) (*File, error) {
	attrs, err := bkt.Attributes(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading attributes of %s", name)
	}
	r, err := bkt.ReaderAt(ctx, name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	return &File{ReaderAtCloser: r, name: name, size: attrs.Size}, nil
}

func (f *File) Name() string { return f.name }
func (f *File) Size() int64  { return f.size }

// TailReaderAt reads the last bytes of an object once and serves every read
// that starts inside them from memory. Reads before the tail go to the
// underlying reader. If fetching the tail fails all reads fall through.
type TailReaderAt struct {
	r       io.ReaderAt
	size    int64
	tailOff int64

	once sync.Once
	tail []byte
	err  error
}

func NewTailReaderAt(r io.ReaderAt, size, tailSize int64) *TailReaderAt {
	if tailSize <= 0 {
		tailSize = DefaultTailSize
	}
	tailOff := size - tailSize
	if tailOff < 0 {
		tailOff = 0
	}
	return &TailReaderAt{r: r, size: size, tailOff: tailOff}
}

func (t *TailReaderAt) Size() int64 { return t.size }

func (t *TailReaderAt) ReadAt(p []byte, off int64) (int, error) {
	if off < t.tailOff {
		return t.r.ReadAt(p, off)
	}
	t.once.Do(t.load)
	if t.err != nil {
		return t.r.ReadAt(p, off)
	}
	if off >= t.size {
		return 0, io.EOF
	}
	n := copy(p, t.tail[off-t.tailOff:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (t *TailReaderAt) load() {
	buf := make([]byte, t.size-t.tailOff)
	n, err := t.r.ReadAt(buf, t.tailOff)
	if n == len(buf) {
		t.tail = buf
		return
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	t.err = err
}
