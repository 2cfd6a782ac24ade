// Package s3client uploads run artifacts to S3 or an S3-compatible store.
package s3client

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/codec"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// PutObjectAPI is the subset of *s3.Client the uploader needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader copies artifact files to s3://bucket/prefix/<sim>/<file>[.ext].
type Uploader struct {
	componentMetadata types.ComponentMetadata

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorsLock sync.Mutex

	cli         PutObjectAPI
	bucket      string
	prefix      string
	simName     string
	compression string
	ext         string
}

// NewUploader validates cfg and binds it to cli.
func NewUploader(cli PutObjectAPI, cfg types.UploadConfig, simName string, options ...types.Option[*Uploader]) (*Uploader, error) {
	if cli == nil {
		return nil, &types.ConfigError{Field: "upload.client", Reason: "s3 client is required"}
	}
	if !cfg.Enabled() {
		return nil, &types.ConfigError{Field: "upload.bucket", Reason: "bucket is required"}
	}
	ext, err := codec.Extension(cfg.Compression)
	if err != nil {
		return nil, err
	}
	u := &Uploader{
		componentMetadata: types.ComponentMetadata{ID: uuid.NewString(), Type: "S3_UPLOADER"},
		cli:               cli,
		bucket:            strings.TrimSpace(cfg.Bucket),
		prefix:            strings.Trim(cfg.Prefix, "/"),
		simName:           simName,
		compression:       codec.Normalize(cfg.Compression),
		ext:               ext,
	}
	for _, opt := range options {
		if opt != nil {
			opt(u)
		}
	}
	return u, nil
}

// Key returns the object key for a local file.
func (u *Uploader) Key(file string) string {
	parts := make([]string, 0, 3)
	if u.prefix != "" {
		parts = append(parts, u.prefix)
	}
	if u.simName != "" {
		parts = append(parts, u.simName)
	}
	parts = append(parts, filepath.Base(file)+u.ext)
	return path.Join(parts...)
}

// Upload compresses and stores one file, returning its key.
func (u *Uploader) Upload(ctx context.Context, file string) (string, error) {
	key := u.Key(file)
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", u.fail(key, fmt.Errorf("read %s: %w", file, err))
	}
	body, err := codec.Compress(raw, u.compression)
	if err != nil {
		return "", u.fail(key, fmt.Errorf("compress %s: %w", file, err))
	}

	in := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType(file)),
		Metadata: map[string]string{
			"sim-name":    u.simName,
			"compression": u.compression,
		},
	}
	if enc := codec.ContentEncoding(u.compression); enc != "" {
		in.ContentEncoding = aws.String(enc)
	}
	if _, err := u.cli.PutObject(ctx, in); err != nil {
		return "", u.fail(key, fmt.Errorf("put s3://%s/%s: %w", u.bucket, key, err))
	}

	size := int64(len(body))
	u.NotifyLoggers(types.InfoLevel, "Artifact uploaded",
		"component", u.componentMetadata,
		"event", "Upload",
		"result", "SUCCESS",
		"bucket", u.bucket,
		"key", key,
		"bytes", size,
		"compression", u.compression,
	)
	for _, s := range u.snapshotSensors() {
		s.InvokeOnUpload(u.componentMetadata, key, size)
	}
	return key, nil
}

// UploadAll uploads files in order and stops at the first failure.
func (u *Uploader) UploadAll(ctx context.Context, files []string) ([]string, error) {
	keys := make([]string, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return keys, err
		}
		k, err := u.Upload(ctx, f)
		if err != nil {
			return keys, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (u *Uploader) fail(key string, err error) error {
	u.NotifyLoggers(types.ErrorLevel, "Artifact upload failed",
		"component", u.componentMetadata,
		"event", "Upload",
		"result", "FAILURE",
		"bucket", u.bucket,
		"key", key,
		"error", err,
	)
	for _, s := range u.snapshotSensors() {
		s.InvokeOnError(u.componentMetadata, err)
	}
	return err
}

func contentType(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".parquet":
		return "application/parquet"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
