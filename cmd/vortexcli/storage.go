package main

import (
	"context"
	"path/filepath"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	inspectcontext "github.com/grafana/vortex-inspect/pkg/inspect/context"
	vortexobj "github.com/grafana/vortex-inspect/pkg/objstore"
	"github.com/grafana/vortex-inspect/pkg/objstore/client"
	"github.com/grafana/vortex-inspect/pkg/objstore/providers/s3"
)

const bucketName = "vortexcli"

type storageParams struct {
	client.Config
}

func addStorageParams(cmd commander) *storageParams {
	params := &storageParams{}
	cmd.Flag("storage.backend", "Backend storing the files.").Default(client.Filesystem).EnumVar(&params.Backend, client.SupportedBackends...)
	cmd.Flag("storage.filesystem.dir", "Directory file paths are resolved against.").Default(".").StringVar(&params.Filesystem.Directory)
	cmd.Flag("storage.s3.endpoint", "The S3 bucket endpoint.").Envar("VORTEXCLI_S3_ENDPOINT").StringVar(&params.S3.Endpoint)
	cmd.Flag("storage.s3.region", "The S3 region.").Envar("VORTEXCLI_S3_REGION").StringVar(&params.S3.Region)
	cmd.Flag("storage.s3.bucket-name", "The S3 bucket name.").Envar("VORTEXCLI_S3_BUCKET_NAME").StringVar(&params.S3.BucketName)
	cmd.Flag("storage.s3.access-key-id", "The S3 access key ID.").Envar("VORTEXCLI_S3_ACCESS_KEY_ID").StringVar(&params.S3.AccessKeyID)
	cmd.Flag("storage.s3.secret-access-key", "The S3 secret access key.").Envar("VORTEXCLI_S3_SECRET_ACCESS_KEY").StringVar(&params.S3.SecretAccessKey)
	cmd.Flag("storage.s3.insecure", "Use HTTP instead of HTTPS for S3.").Default("false").BoolVar(&params.S3.Insecure)
	cmd.Flag("storage.s3.bucket-lookup-type", "The S3 bucket lookup style.").Default(s3.AutoLookup).EnumVar(&params.S3.BucketLookupType, s3.SupportedBucketLookupTypes...)
	return params
}

func (p *storageParams) bucket(ctx context.Context) (vortexobj.Bucket, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return client.NewBucket(ctx, p.Config, bucketName)
}

// objectName maps a command line path to an object name. Filesystem paths
// are made relative to the storage directory, object store names are used
// as given.
func (p *storageParams) objectName(path string) (string, error) {
	if p.Backend != client.Filesystem {
		return path, nil
	}
	root, err := filepath.Abs(p.Filesystem.Directory)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	name, err := filepath.Rel(root, abs)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", path)
	}
	return filepath.ToSlash(name), nil
}

func logBucketOperations(ctx context.Context, reg prometheus.Gatherer) {
	logger := inspectcontext.Logger(ctx)
	families, err := reg.Gather()
	if err != nil {
		level.Debug(logger).Log("msg", "failed to gather metrics", "err", err)
		return
	}
	for _, f := range families {
		if f.GetName() != "objstore_bucket_operations_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			if m.GetCounter().GetValue() == 0 {
				continue
			}
			var op string
			for _, l := range m.GetLabel() {
				if l.GetName() == "operation" {
					op = l.GetValue()
				}
			}
			level.Debug(logger).Log("msg", "bucket operations", "operation", op, "count", m.GetCounter().GetValue())
		}
	}
}
