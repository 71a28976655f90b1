package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// openSource resolves one input argument to a reader and a display name.
// "-" means stdin and s3://bucket/key fetches an object from S3. Anything
// else is a local path.
func openSource(ctx context.Context, arg string) (io.ReadCloser, string, error) {
	switch {
	case arg == "-":
		return io.NopCloser(os.Stdin), "<stdin>", nil
	case strings.HasPrefix(arg, "s3://"):
		return openS3(ctx, arg)
	default:
		f, err := os.Open(arg)
		if err != nil {
			return nil, "", err
		}
		return f, arg, nil
	}
}

func parseS3(arg string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(arg, "s3://")
	bucket, key, ok := strings.Cut(trimmed, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 source %q (want s3://bucket/key)", arg)
	}
	return bucket, key, nil
}

func openS3(ctx context.Context, arg string) (io.ReadCloser, string, error) {
	bucket, key, err := parseS3(arg)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("loading aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", arg, err)
	}
	return out.Body, arg, nil
}
