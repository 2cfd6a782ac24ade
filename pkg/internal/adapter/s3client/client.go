package s3client

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// DefaultRoleDuration is the session length requested when assuming a role.
const DefaultRoleDuration = 15 * time.Minute

// sharedResolver maps both S3 and STS to the same endpoint override.
func sharedResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		switch service {
		case s3.ServiceID, sts.ServiceID:
			return aws.Endpoint{URL: endpoint, HostnameImmutable: true}, nil
		default:
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		}
	})
}

func loadOptions(cfg types.UploadConfig) []func(*config.LoadOptions) error {
	var loaders []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loaders = append(loaders, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken),
		))
	}
	if cfg.Endpoint != "" {
		loaders = append(loaders, config.WithEndpointResolverWithOptions(sharedResolver(cfg.Endpoint)))
	}
	return loaders
}

// NewClient builds an S3 client for cfg. Static keys are used when set,
// otherwise the default provider chain; a RoleARN is assumed through STS on
// top of either.
func NewClient(ctx context.Context, cfg types.UploadConfig) (*s3.Client, error) {
	if !cfg.Enabled() {
		return nil, &types.ConfigError{Field: "upload.bucket", Reason: "bucket is required"}
	}
	base, err := config.LoadDefaultConfig(ctx, loadOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	pathStyle := func(o *s3.Options) { o.UsePathStyle = cfg.ForcePathStyle }
	if cfg.RoleARN == "" {
		return s3.NewFromConfig(base, pathStyle), nil
	}

	sessionName := cfg.SessionName
	if sessionName == "" {
		sessionName = "split-bar-antenna"
	}
	provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(base), cfg.RoleARN, func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = sessionName
		o.Duration = DefaultRoleDuration
	})
	assumed := base
	assumed.Credentials = aws.NewCredentialsCache(provider)
	return s3.NewFromConfig(assumed, pathStyle), nil
}
