package platform

import "sync"

var (
	defaultPlatform Platform
	defaultOnce     sync.Once
)

// Default returns the process-wide host platform, built once on first use.
func Default() Platform {
	defaultOnce.Do(func() {
		defaultPlatform = New(nil)
	})
	return defaultPlatform
}
