// Package codec compresses artifacts before they leave the machine.
package codec

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
	"github.com/pierrec/lz4"
)

// Algorithm names accepted by Compress and Decompress.
const (
	None   = "none"
	Gzip   = "gzip"
	Zstd   = "zstd"
	Snappy = "snappy"
	Brotli = "brotli"
	LZ4    = "lz4"
)

var extensions = map[string]string{
	None:   "",
	Gzip:   ".gz",
	Zstd:   ".zst",
	Snappy: ".sz",
	Brotli: ".br",
	LZ4:    ".lz4",
}

// Normalize lower-cases the name and maps "" to None.
func Normalize(algorithm string) string {
	a := strings.ToLower(strings.TrimSpace(algorithm))
	if a == "" {
		return None
	}
	return a
}

// Supported reports whether the algorithm is known.
func Supported(algorithm string) bool {
	_, ok := extensions[Normalize(algorithm)]
	return ok
}

// Extension returns the file suffix for the algorithm.
func Extension(algorithm string) (string, error) {
	ext, ok := extensions[Normalize(algorithm)]
	if !ok {
		return "", fmt.Errorf("codec: %q: %w", algorithm, types.ErrUnsupportedFormat)
	}
	return ext, nil
}

// ContentEncoding returns the HTTP Content-Encoding value for the algorithm,
// or "" when the object is stored as is.
func ContentEncoding(algorithm string) string {
	switch Normalize(algorithm) {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Brotli:
		return "br"
	case Snappy:
		return "x-snappy-framed"
	case LZ4:
		return "x-lz4"
	}
	return ""
}

// Compress encodes data with the named algorithm.
func Compress(data []byte, algorithm string) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch Normalize(algorithm) {
	case None:
		return data, nil
	case Gzip:
		w = gzip.NewWriter(&b)
	case Snappy:
		w = snappy.NewBufferedWriter(&b)
	case Zstd:
		var err error
		w, err = zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
	case Brotli:
		w = brotli.NewWriterLevel(&b, brotli.BestCompression)
	case LZ4:
		w = lz4.NewWriter(&b)
	default:
		return nil, fmt.Errorf("codec: %q: %w", algorithm, types.ErrUnsupportedFormat)
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte, algorithm string) ([]byte, error) {
	var r io.Reader

	switch Normalize(algorithm) {
	case None:
		return data, nil
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case Snappy:
		r = snappy.NewReader(bytes.NewReader(data))
	case Zstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case Brotli:
		r = brotli.NewReader(bytes.NewReader(data))
	case LZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("codec: %q: %w", algorithm, types.ErrUnsupportedFormat)
	}

	var b bytes.Buffer
	if _, err := io.Copy(&b, r); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
