package pulse

import (
	"context"
	"fmt"
)

// Engine owns the queue, the barrier registry, and the re-entrance flag
// for one propagation lifeline. It is an explicit value rather than a
// package-level singleton, so isolated engines — one per test, one per
// goroutine, one per tenant — cost nothing to create.
//
// An Engine is single-threaded cooperative: its fields are touched only
// from inside Launch and the user callbacks it invokes synchronously, so
// it carries no internal lock. Concurrent use from independent goroutines
// should use independent Engines — see DefaultEngine.
type Engine struct {
	queue    *PriorityQueue
	barriers *barrierRegistry
	started  bool

	sink DiagnosticSink
	ctx  context.Context
}

// EngineOption configures an Engine at construction.
type EngineOption func(*Engine)

// WithDiagnosticSink overrides where caught user-function panics are
// reported. The default is a SlogSink writing to slog.Default().
func WithDiagnosticSink(sink DiagnosticSink) EngineOption {
	return func(e *Engine) { e.sink = sink }
}

// WithContext sets the context.Context passed to the diagnostic sink.
// The default is context.Background().
func WithContext(ctx context.Context) EngineOption {
	return func(e *Engine) { e.ctx = ctx }
}

// NewEngine constructs an empty Engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		queue:    NewPriorityQueue(),
		barriers: newBarrierRegistry(),
		sink:     NewSlogSink(nil),
		ctx:      context.Background(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// LaunchSpec is the descriptor form of an injection: {target, params,
// defer}, unpacked into (target(s), payload(s), upsert). Exactly one of
// Target or Targets should be set; when Targets is set, ParamsList
// supplies the parallel payload for each target (missing entries default
// to nil).
type LaunchSpec struct {
	Target  *GraphNode
	Targets []*GraphNode

	Params     any
	ParamsList []any

	// Defer is the "upsert" flag: when true and a drain is already
	// active, Launch only enqueues and returns — it never starts a
	// nested drain, relying on the live drain loop to consume the
	// newly-seeded layers.
	Defer bool
}

// Launch is the injection entry point. unit may be a *GraphNode, a
// []*GraphNode (with payload as the parallel []any), or a LaunchSpec
// descriptor.
func (e *Engine) Launch(unit any, payload any, upsert bool) {
	switch u := unit.(type) {
	case *GraphNode:
		e.launch(LaunchSpec{Target: u, Params: payload, Defer: upsert})

	case []*GraphNode:
		payloads, _ := payload.([]any)
		e.launch(LaunchSpec{Targets: u, ParamsList: payloads, Defer: upsert})

	case LaunchSpec:
		e.launch(u)

	default:
		panic(fmt.Sprintf("pulse: Launch: unsupported unit type %T", unit))
	}
}

// LaunchNode is a typed convenience for the common single-node case.
func (e *Engine) LaunchNode(node *GraphNode, payload any, upsert bool) {
	e.launch(LaunchSpec{Target: node, Params: payload, Defer: upsert})
}

// LaunchNodes is a typed convenience for the parallel-arrays case.
func (e *Engine) LaunchNodes(nodes []*GraphNode, payloads []any, upsert bool) {
	e.launch(LaunchSpec{Targets: nodes, ParamsList: payloads, Defer: upsert})
}

// launch implements the re-entrant driver semantics over an
// already-unpacked LaunchSpec.
func (e *Engine) launch(spec LaunchSpec) {
	e.seed(spec)

	if !e.started {
		e.started = true
		e.drain()
		e.started = false
		return
	}

	if spec.Defer {
		// A drain is already live; it will consume what we just seeded.
		return
	}

	// Nested, non-deferred launch: standard re-entrance. Run the drain
	// loop now, saving and restoring the flag's prior value (which is
	// already true here, but the save/restore keeps the invariant
	// explicit regardless of call depth).
	prev := e.started
	e.started = true
	e.drain()
	e.started = prev
}

// seed queues the initial Pure-priority layer(s) for a launch.
func (e *Engine) seed(spec LaunchSpec) {
	if spec.Target != nil {
		e.queue.Enqueue(Pure, &Layer{
			Idx:   0,
			Frame: &Frame{Value: spec.Params, Node: spec.Target},
			node:  spec.Target,
		})
		return
	}

	for i, node := range spec.Targets {
		var payload any
		if i < len(spec.ParamsList) {
			payload = spec.ParamsList[i]
		}

		e.queue.Enqueue(Pure, &Layer{
			Idx:   0,
			Frame: &Frame{Value: payload, Node: node},
			node:  node,
		})
	}
}

// drain repeatedly dequeues a layer and runs the interpreter on it until
// the queue is empty.
func (e *Engine) drain() {
	for {
		l := e.queue.Dequeue()
		if l == nil {
			return
		}

		e.runLayer(l)
	}
}

// runLayer interprets one layer and, on clean completion, enqueues one
// Child-priority layer per child node, reusing the outgoing value and
// linking the new frame's parent to the current one.
func (e *Engine) runLayer(l *Layer) {
	if e.interpret(l) != outcomeDone {
		return
	}

	for _, child := range l.node.Next {
		childFrame := &Frame{
			Value:  l.Frame.Value,
			Parent: l.Frame,
			Node:   child,
		}

		e.queue.Enqueue(Child, &Layer{Idx: 0, Frame: childFrame, node: child})
	}
}
