package s3client

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// WithLogger attaches loggers to the uploader.
func WithLogger(loggers ...types.Logger) types.Option[*Uploader] {
	return func(u *Uploader) {
		u.ConnectLogger(loggers...)
	}
}

// WithSensor attaches sensors to the uploader.
func WithSensor(sensors ...types.Sensor) types.Option[*Uploader] {
	return func(u *Uploader) {
		u.ConnectSensor(sensors...)
	}
}

// WithComponentMetadata sets the uploader name and id.
func WithComponentMetadata(name string, id string) types.Option[*Uploader] {
	return func(u *Uploader) {
		u.SetComponentMetadata(name, id)
	}
}
