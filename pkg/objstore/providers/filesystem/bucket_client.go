package filesystem

import (
	"context"
	"os"
	"path/filepath"

	"github.com/thanos-io/objstore"
	"github.com/thanos-io/objstore/providers/filesystem"

	vortexobj "github.com/grafana/vortex-inspect/pkg/objstore"
)

// Config holds the configuration for a filesystem bucket.
type Config struct {
	Directory string `yaml:"dir"`
}

type Bucket struct {
	objstore.Bucket
	rootDir string
}

// NewBucket returns a new filesystem.Bucket.
func NewBucket(rootDir string, middlewares ...func(objstore.Bucket) (objstore.Bucket, error)) (*Bucket, error) {
	var (
		b   objstore.Bucket
		err error
	)
	b, err = filesystem.NewBucket(rootDir)
	if err != nil {
		return nil, err
	}
	for _, wrap := range middlewares {
		b, err = wrap(b)
		if err != nil {
			return nil, err
		}
	}
	return &Bucket{Bucket: b, rootDir: rootDir}, nil
}

// ReaderAt opens the file directly, bypassing the middlewares.
func (b *Bucket) ReaderAt(ctx context.Context, filename string) (vortexobj.ReaderAtCloser, error) {
	f, err := os.Open(filepath.Join(b.rootDir, filename))
	if err != nil {
		return nil, err
	}

	return &FileReaderAt{File: f}, nil
}

type FileReaderAt struct {
	*os.File
}

func (b *FileReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	return b.File.ReadAt(p, off)
}
