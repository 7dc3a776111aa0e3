package source

import (
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/flowgo"
	"github.com/hupe1980/flowgo/kmeans"
)

// File creates a lazy dataset from a delimited text file of points, one per
// line with dim values each. Files ending in .gz, .zst or .lz4 are
// decompressed transparently.
func File(f *flowgo.Flow, filePath string, dim int, optFns ...Option) *flowgo.Dataset[kmeans.Point] {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}

	return flowgo.FromFunc(f, func(ctx context.Context) ([]kmeans.Point, error) {
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("source: open %s: %w", filePath, err)
		}
		defer file.Close()

		r := newThrottledReader(ctx, file, opts.rateLimitBytesPerSec)

		dr, closer, err := decompress(filePath, r)
		if err != nil {
			return nil, err
		}
		defer closer.Close()

		return parsePoints(dr, dim)
	})
}
