package sensor

import "github.com/lruba939/MEEP-split-bar-antenna/pkg/internal/types"

// RegisterOnStart registers callbacks fired when a component begins a run.
func (s *Sensor) RegisterOnStart(callback ...func(types.ComponentMetadata)) {
	register(&s.callbackLock, &s.OnStart, callback...)
}

// RegisterOnSample registers callbacks fired for every accepted sample.
func (s *Sensor) RegisterOnSample(callback ...func(types.ComponentMetadata, float64)) {
	register(&s.callbackLock, &s.OnSample, callback...)
}

// RegisterOnSkip registers callbacks fired for samples inside the warm-up window.
func (s *Sensor) RegisterOnSkip(callback ...func(types.ComponentMetadata, float64)) {
	register(&s.callbackLock, &s.OnSkip, callback...)
}

func (s *Sensor) RegisterOnComplete(callback ...func(types.ComponentMetadata, int)) {
	register(&s.callbackLock, &s.OnComplete, callback...)
}

func (s *Sensor) RegisterOnNoData(callback ...func(types.ComponentMetadata)) {
	register(&s.callbackLock, &s.OnNoData, callback...)
}

func (s *Sensor) RegisterOnError(callback ...func(types.ComponentMetadata, error)) {
	register(&s.callbackLock, &s.OnError, callback...)
}

// RegisterOnArtifactWritten registers callbacks fired after a sink writes a file.
func (s *Sensor) RegisterOnArtifactWritten(callback ...func(types.ComponentMetadata, string, int64)) {
	register(&s.callbackLock, &s.OnArtifactWritten, callback...)
}

// RegisterOnUpload registers callbacks fired after an object is stored remotely.
func (s *Sensor) RegisterOnUpload(callback ...func(types.ComponentMetadata, string, int64)) {
	register(&s.callbackLock, &s.OnUpload, callback...)
}

// InvokeOnStart invokes registered start callbacks.
func (s *Sensor) InvokeOnStart(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, &s.OnStart) {
		if cb != nil {
			cb(c)
		}
	}
}

// InvokeOnSample invokes registered sample callbacks.
func (s *Sensor) InvokeOnSample(c types.ComponentMetadata, t float64) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, &s.OnSample) {
		if cb != nil {
			cb(c, t)
		}
	}
}

func (s *Sensor) InvokeOnSkip(c types.ComponentMetadata, t float64) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, &s.OnSkip) {
		if cb != nil {
			cb(c, t)
		}
	}
}

func (s *Sensor) InvokeOnComplete(c types.ComponentMetadata, samples int) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, &s.OnComplete) {
		if cb != nil {
			cb(c, samples)
		}
	}
}

func (s *Sensor) InvokeOnNoData(c types.ComponentMetadata) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, &s.OnNoData) {
		if cb != nil {
			cb(c)
		}
	}
}

func (s *Sensor) InvokeOnError(c types.ComponentMetadata, err error) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, &s.OnError) {
		if cb != nil {
			cb(c, err)
		}
	}
}

func (s *Sensor) InvokeOnArtifactWritten(c types.ComponentMetadata, path string, bytes int64) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, &s.OnArtifactWritten) {
		if cb != nil {
			cb(c, path, bytes)
		}
	}
}

func (s *Sensor) InvokeOnUpload(c types.ComponentMetadata, key string, bytes int64) {
	for _, cb := range snapshotCallbacks(&s.callbackLock, &s.OnUpload) {
		if cb != nil {
			cb(c, key, bytes)
		}
	}
}
