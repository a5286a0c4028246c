package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
)

// ErrInvalidTarget reports an unusable storage target.
var ErrInvalidTarget = errors.New("invalid storage target")

// Open resolves target to a store and key prefix.
// "s3://bucket/prefix" selects S3 with the default AWS credential chain;
// anything else is a local directory.
func Open(ctx context.Context, target string) (BlobStore, string, error) {
	if target == "" {
		return nil, "", fmt.Errorf("%w: empty target", ErrInvalidTarget)
	}

	if !strings.HasPrefix(target, "s3://") {
		return NewLocalStore(target), "", nil
	}

	bucket, prefix, err := ParseS3URL(target)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewS3Store(cfg, bucket), prefix, nil
}

// ParseS3URL splits "s3://bucket/prefix" into its parts.
func ParseS3URL(s3URL string) (bucket, prefix string, err error) {
	u, err := url.Parse(s3URL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q is not an s3://bucket url", ErrInvalidTarget, s3URL)
	}
	return u.Host, strings.Trim(u.Path, "/"), nil
}
