package types

// UploadConfig selects the S3 (or S3-compatible) destination for artifacts.
// An empty Bucket disables uploads.
type UploadConfig struct {
	Bucket         string `yaml:"bucket"`
	Prefix         string `yaml:"prefix"`
	Region         string `yaml:"region"`
	Endpoint       string `yaml:"endpoint"`
	ForcePathStyle bool   `yaml:"force_path_style"`
	RoleARN        string `yaml:"role_arn"`
	SessionName    string `yaml:"session_name"`
	AccessKey      string `yaml:"access_key"`
	SecretKey      string `yaml:"secret_key"`
	SessionToken   string `yaml:"session_token"`
	Compression    string `yaml:"compression"` // none|gzip|zstd|snappy|brotli|lz4
}

// Enabled reports whether uploads are configured.
func (c UploadConfig) Enabled() bool {
	return c.Bucket != ""
}
