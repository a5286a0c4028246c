//go:build integration

package storage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/localstack"
)

// TestS3Store_Integration runs the store against LocalStack. Requires Docker.
func TestS3Store_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := localstack.Run(ctx, "localstack/localstack:3.0")
	require.NoError(t, err)
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	}()

	endpoint, err := container.PortEndpoint(ctx, "4566/tcp", "http")
	require.NoError(t, err)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("us-east-1"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "test")),
	)
	require.NoError(t, err)

	store := NewS3Store(cfg, "shop-reports", func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	_, err = store.Client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String("shop-reports")})
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "nightly/tied.json", []byte(`{"result":2}`)))

	data, err := store.Get(ctx, "nightly/tied.json")
	require.NoError(t, err)
	require.Equal(t, `{"result":2}`, string(data))

	_, err = store.Get(ctx, "nightly/missing.json")
	require.ErrorIs(t, err, ErrNotFound)

	keys, err := store.List(ctx, "nightly/")
	require.NoError(t, err)
	require.Equal(t, []string{"nightly/tied.json"}, keys)
}
