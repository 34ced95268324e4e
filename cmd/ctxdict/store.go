package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/arloliu/ctxdict/blobstore"
	minioblob "github.com/arloliu/ctxdict/blobstore/minio"
	s3blob "github.com/arloliu/ctxdict/blobstore/s3"
)

// storeFlags selects the model store: a local directory, an S3 bucket or a
// MinIO bucket. Exactly one may be given; a local directory is the default.
type storeFlags struct {
	dir string

	s3Bucket string
	s3Prefix string
	s3Region string

	minioEndpoint string
	minioBucket   string
	minioPrefix   string
	minioSecure   bool
}

func (f *storeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.dir, "dir", "", "Local model directory (default \".\")")

	fs.StringVar(&f.s3Bucket, "s3-bucket", "", "S3 bucket holding the models")
	fs.StringVar(&f.s3Prefix, "s3-prefix", "", "Key prefix of the models in the S3 bucket")
	fs.StringVar(&f.s3Region, "s3-region", "", "AWS region (default from the AWS configuration)")

	fs.StringVar(&f.minioEndpoint, "minio-endpoint", "", "MinIO endpoint host:port; credentials come from MINIO_ACCESS_KEY and MINIO_SECRET_KEY")
	fs.StringVar(&f.minioBucket, "minio-bucket", "", "MinIO bucket holding the models")
	fs.StringVar(&f.minioPrefix, "minio-prefix", "", "Key prefix of the models in the MinIO bucket")
	fs.BoolVar(&f.minioSecure, "minio-secure", false, "Use HTTPS for MinIO")
}

func (f *storeFlags) open(ctx context.Context) (blobstore.Store, error) {
	selected := 0
	for _, set := range []bool{f.dir != "", f.s3Bucket != "", f.minioEndpoint != ""} {
		if set {
			selected++
		}
	}
	if selected > 1 {
		return nil, errors.New("-dir, -s3-bucket and -minio-endpoint are mutually exclusive")
	}

	switch {
	case f.s3Bucket != "":
		client, err := s3blob.NewClient(ctx, f.s3Region)
		if err != nil {
			return nil, err
		}

		return s3blob.NewStore(client, f.s3Bucket, f.s3Prefix), nil
	case f.minioEndpoint != "":
		if f.minioBucket == "" {
			return nil, errors.New("-minio-bucket is required with -minio-endpoint")
		}
		client, err := minioblob.NewClient(f.minioEndpoint,
			os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), f.minioSecure)
		if err != nil {
			return nil, err
		}

		return minioblob.NewStore(client, f.minioBucket, f.minioPrefix), nil
	default:
		dir := f.dir
		if dir == "" {
			dir = "."
		}

		return blobstore.NewLocalStore(dir), nil
	}
}
