// Package source provides point dataset sources for the kmeans package:
// in-memory slices, random generators, delimited text files with transparent
// decompression, and S3/MinIO objects.
//
// File and object sources are lazy: the data is read when the dataset is
// first evaluated. Sources backed by mutable or remote data should be cached
// (or are cached by kmeans.Train) before being read twice.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"path"
	"strconv"
	"strings"

	"github.com/hupe1980/flowgo"
	"github.com/hupe1980/flowgo/kmeans"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/time/rate"
)

type options struct {
	rateLimitBytesPerSec int
}

// Option configures file and object sources.
type Option func(*options)

// WithRateLimit throttles reading to bytesPerSec. Useful for bulk loads
// from shared object storage. 0 means unlimited (the default).
func WithRateLimit(bytesPerSec int) Option {
	return func(o *options) {
		o.rateLimitBytesPerSec = bytesPerSec
	}
}

// Slice creates a dataset from in-memory points.
func Slice(f *flowgo.Flow, points []kmeans.Point) *flowgo.Dataset[kmeans.Point] {
	return flowgo.FromSlice(f, points)
}

// Uniform creates a lazy dataset of n random points with dim components
// drawn uniformly from [min, max). The generator is non-deterministic:
// every evaluation produces different points, so the dataset must be cached
// before it is read twice (kmeans.Train does this).
func Uniform(f *flowgo.Flow, n, dim int, min, max float64) *flowgo.Dataset[kmeans.Point] {
	width := max - min
	return flowgo.Generate(f, n, func(int) kmeans.Point {
		p := make(kmeans.Point, dim)
		for i := range p {
			// The global rand source is safe for concurrent use.
			p[i] = min + width*rand.Float64()
		}
		return p
	})
}

// parsePoints reads one point per line: dim floats separated by whitespace
// or commas. Blank lines and lines starting with '#' are skipped.
func parsePoints(r io.Reader, dim int) ([]kmeans.Point, error) {
	var points []kmeans.Point

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) != dim {
			return nil, fmt.Errorf("source: line %d: %w", lineNo,
				&kmeans.ErrDimensionMismatch{Expected: dim, Actual: len(fields)})
		}

		p := make(kmeans.Point, dim)
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("source: line %d: parse %q: %w", lineNo, field, err)
			}
			p[i] = v
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}
	return points, nil
}

// decompress wraps r according to the file extension of name:
// .gz, .zst and .lz4 are decompressed transparently, anything else is
// passed through. The returned closer must be closed after reading.
func decompress(name string, r io.Reader) (io.Reader, io.Closer, error) {
	switch path.Ext(name) {
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("source: gzip %s: %w", name, err)
		}
		return gr, gr, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("source: zstd %s: %w", name, err)
		}
		rc := zr.IOReadCloser()
		return rc, rc, nil
	case ".lz4":
		return lz4.NewReader(r), io.NopCloser(nil), nil
	default:
		return r, io.NopCloser(nil), nil
	}
}

// throttledReader limits read throughput with a token bucket.
type throttledReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func newThrottledReader(ctx context.Context, r io.Reader, bytesPerSec int) io.Reader {
	if bytesPerSec <= 0 {
		return r
	}
	return &throttledReader{
		ctx:     ctx,
		r:       r,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

func (t *throttledReader) Read(p []byte) (int, error) {
	if burst := t.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.limiter.WaitN(t.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
