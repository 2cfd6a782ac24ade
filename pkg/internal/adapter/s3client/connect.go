package s3client

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// ConnectLogger attaches loggers.
func (u *Uploader) ConnectLogger(loggers ...types.Logger) {
	u.loggersLock.Lock()
	defer u.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			u.loggers = append(u.loggers, l)
		}
	}
}

// ConnectSensor attaches sensors that observe uploads.
func (u *Uploader) ConnectSensor(sensors ...types.Sensor) {
	u.sensorsLock.Lock()
	defer u.sensorsLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			u.sensors = append(u.sensors, s)
		}
	}
}

// GetComponentMetadata returns the uploader metadata.
func (u *Uploader) GetComponentMetadata() types.ComponentMetadata {
	return u.componentMetadata
}

// SetComponentMetadata updates the name and id, keeping the type.
func (u *Uploader) SetComponentMetadata(name string, id string) {
	u.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: u.componentMetadata.Type}
}

func (u *Uploader) snapshotLoggers() []types.Logger {
	u.loggersLock.Lock()
	defer u.loggersLock.Unlock()
	return append([]types.Logger(nil), u.loggers...)
}

func (u *Uploader) snapshotSensors() []types.Sensor {
	u.sensorsLock.Lock()
	defer u.sensorsLock.Unlock()
	return append([]types.Sensor(nil), u.sensors...)
}
