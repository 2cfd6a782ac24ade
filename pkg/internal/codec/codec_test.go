package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/codec"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("E_max_with=0.125;"), 512)
	for _, algo := range []string{codec.None, codec.Gzip, codec.Zstd, codec.Snappy, codec.Brotli, codec.LZ4, ""} {
		t.Run(algo, func(t *testing.T) {
			packed, err := codec.Compress(payload, algo)
			if err != nil {
				t.Fatalf("Compress(%q): %v", algo, err)
			}
			if codec.Normalize(algo) != codec.None && len(packed) >= len(payload) {
				t.Fatalf("%s did not shrink a repetitive payload: %d >= %d", algo, len(packed), len(payload))
			}
			out, err := codec.Decompress(packed, algo)
			if err != nil {
				t.Fatalf("Decompress(%q): %v", algo, err)
			}
			if !bytes.Equal(out, payload) {
				t.Fatalf("%s round trip mismatch", algo)
			}
		})
	}
}

func TestUnsupported(t *testing.T) {
	if _, err := codec.Compress([]byte("x"), "rar"); !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := codec.Decompress([]byte("x"), "rar"); !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := codec.Extension("rar"); !errors.Is(err, types.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if codec.Supported("rar") {
		t.Fatalf("rar should not be supported")
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{"GZIP": ".gz", "zstd": ".zst", "none": "", "lz4": ".lz4"}
	for algo, want := range cases {
		got, err := codec.Extension(algo)
		if err != nil {
			t.Fatalf("Extension(%q): %v", algo, err)
		}
		if got != want {
			t.Fatalf("Extension(%q) = %q, want %q", algo, got, want)
		}
	}
	if codec.ContentEncoding("brotli") != "br" || codec.ContentEncoding("none") != "" {
		t.Fatalf("unexpected content encodings")
	}
}
