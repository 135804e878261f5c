//go:build !wasm

package pulse

import (
	"sync"

	"github.com/petermattis/goid"
)

var defaultEngines sync.Map // goroutine id (int64) -> *Engine

// DefaultEngine returns a per-goroutine Engine, creating one on first use
// for the calling goroutine. Most callers want an explicit *Engine from
// NewEngine; this ambient accessor exists for callers that don't want to
// thread one through.
func DefaultEngine() *Engine {
	gid := goid.Get()

	if e, ok := defaultEngines.Load(gid); ok {
		return e.(*Engine)
	}

	e := NewEngine()
	defaultEngines.Store(gid, e)
	return e
}
