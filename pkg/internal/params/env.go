package params

import (
	"os"
	"strconv"
	"strings"

	"github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SPLITBAR_"

// EnvOr returns the env value with surrounding whitespace and quotes
// removed, or def when that leaves nothing.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(strings.TrimSpace(os.Getenv(key)), `"`))
	if v == "" {
		return def
	}
	return v
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvFloatOr returns the parsed float env value or def on empty/parse failure.
func EnvFloatOr(key string, def float64) float64 {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// EnvBoolOr returns the parsed bool env value or def on empty/parse failure.
func EnvBoolOr(key string, def bool) bool {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// ApplyEnv overlays SPLITBAR_* environment variables onto cfg.
func ApplyEnv(cfg Config) Config {
	sim := &cfg.Simulation
	sim.Material = EnvOr(EnvPrefix+"MATERIAL", sim.Material)
	sim.Component = types.FieldComponent(EnvOr(EnvPrefix+"COMPONENT", string(sim.Component)))
	sim.Resolution = EnvIntOr(EnvPrefix+"RESOLUTION", sim.Resolution)
	sim.SimTime = EnvFloatOr(EnvPrefix+"SIM_TIME", sim.SimTime)
	sim.RunTime = EnvFloatOr(EnvPrefix+"RUN_TIME", sim.RunTime)
	sim.SamplingInterval = EnvFloatOr(EnvPrefix+"SAMPLING_INTERVAL", sim.SamplingInterval)
	sim.SkipFraction = EnvFloatOr(EnvPrefix+"SKIP_FRACTION", sim.SkipFraction)
	sim.LineWidth = EnvIntOr(EnvPrefix+"LINE_WIDTH", sim.LineWidth)
	sim.BorderWidth = EnvIntOr(EnvPrefix+"BORDER_WIDTH", sim.BorderWidth)
	sim.PML = EnvFloatOr(EnvPrefix+"PML", sim.PML)

	out := &cfg.Output
	out.SimName = EnvOr(EnvPrefix+"SIM_NAME", out.SimName)
	out.PathToSave = EnvOr(EnvPrefix+"PATH_TO_SAVE", out.PathToSave)
	out.Format = EnvOr(EnvPrefix+"FORMAT", out.Format)
	out.ParquetCompression = EnvOr(EnvPrefix+"PARQUET_COMPRESSION", out.ParquetCompression)

	up := &cfg.Upload
	up.Bucket = EnvOr(EnvPrefix+"S3_BUCKET", up.Bucket)
	up.Prefix = EnvOr(EnvPrefix+"S3_PREFIX", up.Prefix)
	up.Region = EnvOr(EnvPrefix+"S3_REGION", EnvOr("AWS_REGION", up.Region))
	up.Endpoint = EnvOr(EnvPrefix+"S3_ENDPOINT", up.Endpoint)
	up.ForcePathStyle = EnvBoolOr(EnvPrefix+"S3_FORCE_PATH_STYLE", up.ForcePathStyle)
	up.RoleARN = EnvOr(EnvPrefix+"S3_ROLE_ARN", up.RoleARN)
	up.AccessKey = EnvOr(EnvPrefix+"S3_ACCESS_KEY", up.AccessKey)
	up.SecretKey = EnvOr(EnvPrefix+"S3_SECRET_KEY", up.SecretKey)
	up.Compression = EnvOr(EnvPrefix+"S3_COMPRESSION", up.Compression)

	cfg.Log.Level = EnvOr(EnvPrefix+"LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = EnvOr(EnvPrefix+"LOG_FILE", cfg.Log.File)
	return cfg
}
