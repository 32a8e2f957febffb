package objstore

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanos-io/objstore"
)

type countingReaderAt struct {
	io.ReaderAt
	calls int
}

func (c *countingReaderAt) ReadAt(p []byte, off int64) (int, error) {
	c.calls++
	return c.ReaderAt.ReadAt(p, off)
}

func testObject(size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestOpenFile(t *testing.T) {
	ctx := context.Background()
	mem := objstore.NewInMemBucket()
	data := testObject(1000)
	require.NoError(t, mem.Upload(ctx, "data/file.vortex", bytes.NewReader(data)))

	bkt := NewBucket(mem)
	f, err := OpenFile(ctx, bkt, "data/file.vortex")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "data/file.vortex", f.Name())
	assert.Equal(t, int64(1000), f.Size())

	buf := make([]byte, 10)
	n, err := f.ReadAt(buf, 990)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, data[990:], buf)

	_, err = OpenFile(ctx, bkt, "missing")
	require.Error(t, err)
	assert.True(t, mem.IsObjNotFoundErr(errors.Cause(err)))
}

func TestNewBucketKeepsReaderAt(t *testing.T) {
	bkt := NewBucket(objstore.NewInMemBucket())
	assert.Same(t, bkt, NewBucket(bkt))
}

func TestTailReaderAt(t *testing.T) {
	data := testObject(1000)

	t.Run("serves the tail from one read", func(t *testing.T) {
		src := &countingReaderAt{ReaderAt: bytes.NewReader(data)}
		r := NewTailReaderAt(src, int64(len(data)), 100)
		assert.Equal(t, int64(1000), r.Size())

		for _, tc := range []struct{ off, n int }{{992, 8}, {950, 42}, {900, 100}, {999, 1}} {
			buf := make([]byte, tc.n)
			n, err := r.ReadAt(buf, int64(tc.off))
			require.NoError(t, err)
			assert.Equal(t, tc.n, n)
			assert.Equal(t, data[tc.off:tc.off+tc.n], buf)
		}
		assert.Equal(t, 1, src.calls)
	})

	t.Run("reads before the tail go through", func(t *testing.T) {
		src := &countingReaderAt{ReaderAt: bytes.NewReader(data)}
		r := NewTailReaderAt(src, int64(len(data)), 100)

		buf := make([]byte, 20)
		n, err := r.ReadAt(buf, 890)
		require.NoError(t, err)
		assert.Equal(t, 20, n)
		assert.Equal(t, data[890:910], buf)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("short read at the end", func(t *testing.T) {
		r := NewTailReaderAt(bytes.NewReader(data), int64(len(data)), 100)
		buf := make([]byte, 10)
		n, err := r.ReadAt(buf, 995)
		assert.Equal(t, io.EOF, err)
		assert.Equal(t, 5, n)

		n, err = r.ReadAt(buf, 1000)
		assert.Equal(t, io.EOF, err)
		assert.Equal(t, 0, n)
	})

	t.Run("tail larger than the object", func(t *testing.T) {
		src := &countingReaderAt{ReaderAt: bytes.NewReader(data[:50])}
		r := NewTailReaderAt(src, 50, 0)
		buf := make([]byte, 50)
		n, err := r.ReadAt(buf, 0)
		require.NoError(t, err)
		assert.Equal(t, 50, n)
		assert.Equal(t, data[:50], buf)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("falls through when the tail cannot be read", func(t *testing.T) {
		// The reader is shorter than the announced size.
		src := &countingReaderAt{ReaderAt: bytes.NewReader(data[:950])}
		r := NewTailReaderAt(src, 1000, 100)
		buf := make([]byte, 10)
		n, err := r.ReadAt(buf, 920)
		require.NoError(t, err)
		assert.Equal(t, 10, n)
		assert.Equal(t, data[920:930], buf)
		assert.Equal(t, 2, src.calls)
	})
}

func TestReaderAtShortRead(t *testing.T) {
	ctx := context.Background()
	mem := objstore.NewInMemBucket()
	require.NoError(t, mem.Upload(ctx, "small", bytes.NewReader([]byte("abc"))))

	r, err := NewBucket(mem).ReaderAt(ctx, "small")
	require.NoError(t, err)
	buf := make([]byte, 8)
	n, err := r.ReadAt(buf, 0)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", string(buf[:n]))
}
