package source

import (
	"context"
	"fmt"

	"github.com/hupe1980/flowgo"
	"github.com/hupe1980/flowgo/kmeans"
	"github.com/minio/minio-go/v7"
)

// MinIO creates a lazy dataset from a MinIO (or S3-compatible) object
// holding delimited text points, same format as File.
func MinIO(f *flowgo.Flow, client *minio.Client, bucket, key string, dim int, optFns ...Option) *flowgo.Dataset[kmeans.Point] {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}

	return flowgo.FromFunc(f, func(ctx context.Context) ([]kmeans.Point, error) {
		obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("source: get %s/%s: %w", bucket, key, err)
		}
		defer obj.Close()

		r := newThrottledReader(ctx, obj, opts.rateLimitBytesPerSec)

		dr, closer, err := decompress(key, r)
		if err != nil {
			return nil, err
		}
		defer closer.Close()

		return parsePoints(dr, dim)
	})
}
