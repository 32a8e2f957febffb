package s3

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/thanos-io/objstore"
	"github.com/thanos-io/objstore/providers/s3"
)

const (
	AutoLookup               = "auto"
	VirtualHostedStyleLookup = "virtual-hosted"
	PathStyleLookup          = "path"
)

var (
	SupportedBucketLookupTypes = []string{AutoLookup, VirtualHostedStyleLookup, PathStyleLookup}

	errUnsupportedBucketLookupType = errors.New("invalid bucket lookup type")
	errMissingEndpoint             = errors.New("missing s3 endpoint")
)

// Config holds the configuration for an S3 bucket.
type Config struct {
	Endpoint         string `yaml:"endpoint"`
	Region           string `yaml:"region"`
	BucketName       string `yaml:"bucket_name"`
	AccessKeyID      string `yaml:"access_key_id"`
	SecretAccessKey  string `yaml:"secret_access_key"`
	Insecure         bool   `yaml:"insecure"`
	ForcePathStyle   bool   `yaml:"force_path_style"`
	BucketLookupType string `yaml:"bucket_lookup_type"`
}

func (cfg *Config) Validate() error {
	if cfg.Endpoint == "" {
		return errMissingEndpoint
	}
	switch cfg.BucketLookupType {
	case "", AutoLookup, VirtualHostedStyleLookup, PathStyleLookup:
		return nil
	}
	return errors.Wrapf(errUnsupportedBucketLookupType, "%q", cfg.BucketLookupType)
}

// NewBucketClient creates a new S3 bucket client
func NewBucketClient(cfg Config, name string, logger log.Logger) (objstore.Bucket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	warnForDeprecatedConfigFields(cfg, logger)

	return s3.NewBucketWithConfig(logger, newS3Config(cfg), name)
}

func newS3Config(cfg Config) s3.Config {
	bucketLookupType := s3.AutoLookup
	if cfg.ForcePathStyle || cfg.BucketLookupType == PathStyleLookup {
		bucketLookupType = s3.PathLookup
	} else if cfg.BucketLookupType == VirtualHostedStyleLookup {
		bucketLookupType = s3.VirtualHostLookup
	}

	s3Cfg := s3.DefaultConfig
	s3Cfg.Bucket = cfg.BucketName
	s3Cfg.Endpoint = cfg.Endpoint
	s3Cfg.Region = cfg.Region
	s3Cfg.AccessKey = cfg.AccessKeyID
	s3Cfg.SecretKey = cfg.SecretAccessKey
	s3Cfg.Insecure = cfg.Insecure
	s3Cfg.BucketLookupType = bucketLookupType
	return s3Cfg
}

func warnForDeprecatedConfigFields(cfg Config, logger log.Logger) {
	if cfg.ForcePathStyle {
		level.Warn(logger).Log("msg", "S3 bucket client config has a deprecated force-path-style option set. Please, use bucket-lookup-type instead.")
	}
}
