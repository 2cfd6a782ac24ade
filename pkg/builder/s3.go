package builder

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/adapter/s3client"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// S3Uploader copies artifacts to S3.
type S3Uploader = s3client.Uploader

// NewS3Client builds an S3 client from the upload section.
func NewS3Client(ctx context.Context, cfg UploadConfig) (*s3.Client, error) {
	return s3client.NewClient(ctx, cfg)
}

// NewS3Uploader binds an S3 client to the upload configuration.
func NewS3Uploader(cli s3client.PutObjectAPI, cfg UploadConfig, simName string, options ...types.Option[*s3client.Uploader]) (*s3client.Uploader, error) {
	return s3client.NewUploader(cli, cfg, simName, options...)
}

// NewS3UploaderFromConfig builds the client and the uploader in one step.
func NewS3UploaderFromConfig(ctx context.Context, cfg Config, options ...types.Option[*s3client.Uploader]) (*s3client.Uploader, error) {
	cli, err := s3client.NewClient(ctx, cfg.Upload)
	if err != nil {
		return nil, err
	}
	return s3client.NewUploader(cli, cfg.Upload, cfg.Output.SimName, options...)
}

// S3UploaderWithLogger attaches loggers to the uploader.
func S3UploaderWithLogger(l ...types.Logger) types.Option[*s3client.Uploader] {
	return s3client.WithLogger(l...)
}

// S3UploaderWithSensor attaches sensors to the uploader.
func S3UploaderWithSensor(s ...types.Sensor) types.Option[*s3client.Uploader] {
	return s3client.WithSensor(s...)
}

// S3ListKeys returns object keys for a bucket/prefix, optionally filtered by suffix.
func S3ListKeys(ctx context.Context, cli s3client.ListObjectsAPI, bucket, prefix string, suffixes ...string) ([]string, error) {
	return s3client.ListKeys(ctx, cli, bucket, prefix, suffixes...)
}
