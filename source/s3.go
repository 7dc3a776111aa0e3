package source

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/flowgo"
	"github.com/hupe1980/flowgo/kmeans"
)

// S3 creates a lazy dataset from an S3 object holding delimited text points
// (same format as File, including transparent decompression by key
// extension). The object is fetched when the dataset is evaluated.
func S3(f *flowgo.Flow, client *s3.Client, bucket, key string, dim int, optFns ...Option) *flowgo.Dataset[kmeans.Point] {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}

	return flowgo.FromFunc(f, func(ctx context.Context) ([]kmeans.Point, error) {
		out, err := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("source: get s3://%s/%s: %w", bucket, key, err)
		}
		defer out.Body.Close()

		r := newThrottledReader(ctx, out.Body, opts.rateLimitBytesPerSec)

		dr, closer, err := decompress(key, r)
		if err != nil {
			return nil, err
		}
		defer closer.Close()

		return parsePoints(dr, dim)
	})
}
