package sensor

import "sync"

func snapshotCallbacks[T any](mu *sync.Mutex, callbacks *[]T) []T {
	mu.Lock()
	out := append([]T(nil), (*callbacks)...)
	mu.Unlock()
	return out
}

func register[T any](mu *sync.Mutex, callbacks *[]T, add ...T) {
	if len(add) == 0 {
		return
	}
	mu.Lock()
	*callbacks = append(*callbacks, add...)
	mu.Unlock()
}
