//go:build wasm

package pulse

import "sync"

var (
	defaultEngineOnce sync.Once
	defaultEngine     *Engine
)

// DefaultEngine returns the single process-wide Engine. wasm builds run
// on one goroutine, so goid-based per-goroutine lookup (see
// engine_default.go) would be redundant overhead.
func DefaultEngine() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine()
	})

	return defaultEngine
}
