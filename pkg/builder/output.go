package builder

import (
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/codec"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/params"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/sink"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/spectrum"
	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// Spectrum is the power spectrum of a line-profile trace.
type Spectrum = spectrum.Spectrum

// NewResultSink builds the sink for cfg.Format.
func NewResultSink(cfg OutputConfig, options ...types.Option[types.ResultSink]) (types.ResultSink, error) {
	return sink.New(cfg, options...)
}

// ResultSinkWithLogger attaches loggers to a sink.
func ResultSinkWithLogger(l ...types.Logger) types.Option[types.ResultSink] {
	return sink.WithLogger(l...)
}

// ResultSinkWithSensor attaches sensors to a sink.
func ResultSinkWithSensor(s ...types.Sensor) types.Option[types.ResultSink] {
	return sink.WithSensor(s...)
}

// WriteParams dumps cfg as key=value lines.
func WriteParams(path string, cfg Config) error {
	return sink.WriteParams(path, cfg)
}

// DumpPairs returns the ordered key/value view written by WriteParams.
func DumpPairs(cfg Config) []params.Pair {
	return params.Pairs(cfg)
}

// AnalyzeLineProfile returns the spectrum of the trace at the centre of the
// x axis.
func AnalyzeLineProfile(series *LineProfileSeries, interval float64) (*Spectrum, error) {
	return spectrum.Analyze(series, interval)
}

// Compress encodes data with none, gzip, zstd, snappy, brotli or lz4.
func Compress(data []byte, algorithm string) ([]byte, error) {
	return codec.Compress(data, algorithm)
}

// Decompress reverses Compress.
func Decompress(data []byte, algorithm string) ([]byte, error) {
	return codec.Decompress(data, algorithm)
}
