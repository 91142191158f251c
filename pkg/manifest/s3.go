package manifest

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// ObjectGetter is the slice of the S3 client LoadS3 needs. *s3.Client
// satisfies it; tests can substitute a fake.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// LoadS3 fetches and parses a manifest object from S3. The format is
// picked from the key's extension.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	specs, err := manifest.LoadS3(ctx, s3.NewFromConfig(cfg), "my-bucket", "routes.yaml")
func LoadS3(ctx context.Context, client ObjectGetter, bucket, key string) ([]router.RouteSpec, error) {
	format, err := DetectFormat(key)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("manifest: get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("manifest: read s3://%s/%s: %w", bucket, key, err)
	}
	return Parse(data, format)
}
