package client

import (
	"context"

	"github.com/pkg/errors"
	"github.com/thanos-io/objstore"

	inspectcontext "github.com/grafana/vortex-inspect/pkg/inspect/context"
	vortexobj "github.com/grafana/vortex-inspect/pkg/objstore"
	"github.com/grafana/vortex-inspect/pkg/objstore/providers/filesystem"
	"github.com/grafana/vortex-inspect/pkg/objstore/providers/s3"
)

const (
	// Filesystem is the value for the filesystem storage backend.
	Filesystem = "filesystem"

	// S3 is the value for the S3 storage backend.
	S3 = "s3"
)

var (
	SupportedBackends = []string{Filesystem, S3}

	ErrUnsupportedStorageBackend = errors.New("unsupported storage backend")
)

type Config struct {
	Backend    string            `yaml:"backend"`
	Filesystem filesystem.Config `yaml:"filesystem"`
	S3         s3.Config         `yaml:"s3"`

	// Middlewares wrap the backend client before instrumentation.
	Middlewares []func(objstore.Bucket) (objstore.Bucket, error) `yaml:"-"`
}

func (cfg *Config) Validate() error {
	switch cfg.Backend {
	case Filesystem:
		return nil
	case S3:
		return cfg.S3.Validate()
	}
	return ErrUnsupportedStorageBackend
}

// NewBucket creates a new bucket client based on the configured backend
func NewBucket(ctx context.Context, cfg Config, name string) (vortexobj.Bucket, error) {
	var (
		backendClient objstore.Bucket
		err           error
	)
	logger := inspectcontext.Logger(ctx)
	reg := inspectcontext.Registry(ctx)

	switch cfg.Backend {
	case S3:
		backendClient, err = s3.NewBucketClient(cfg.S3, name, logger)
	case Filesystem:
		// Filesystem reads go through FileReaderAt, so the metrics
		// middleware only observes attribute lookups. As for the other
		// backends, the configured middlewares run inside the metrics.
		middlewares := append([]func(objstore.Bucket) (objstore.Bucket, error){}, cfg.Middlewares...)
		middlewares = append(middlewares, func(b objstore.Bucket) (objstore.Bucket, error) {
			return objstore.WrapWithMetrics(b, reg, name), nil
		})
		fs, err := filesystem.NewBucket(cfg.Filesystem.Directory, middlewares...)
		if err != nil {
			return nil, err
		}
		return fs, nil
	default:
		return nil, ErrUnsupportedStorageBackend
	}

	if err != nil {
		return nil, err
	}

	// Wrap the client with any provided middleware
	for _, wrap := range cfg.Middlewares {
		backendClient, err = wrap(backendClient)
		if err != nil {
			return nil, err
		}
	}
	return vortexobj.NewBucket(objstore.WrapWithMetrics(backendClient, reg, name)), nil
}
