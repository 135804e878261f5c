package pulse

import "fmt"

type runOutcome int

const (
	outcomeDone      runOutcome = iota // ran to completion, fan out to children
	outcomeStopped                     // check/filter skipped, or a user function panicked
	outcomeSuspended                   // barrier or run re-queued the node elsewhere
)

// interpret evaluates node.Seq[l.Idx:] against l.Frame, step by step.
func (e *Engine) interpret(l *Layer) runOutcome {
	node := l.node
	frame := l.Frame

	for i := l.Idx; i < len(node.Seq); i++ {
		step := node.Seq[i]

		switch step.Kind {
		case StepBarrier:
			data := step.Barrier
			// A checkpoint: only a layer redequeued at exactly this
			// cursor and at the barrier's target priority may pass
			// through. Anything else is a fresh arrival and must
			// suspend — coalesced against any barrier of the same id
			// already in flight.
			if i != l.Idx || l.Class != data.Priority {
				if e.barriers.tryClaim(data.ID) {
					e.queue.Enqueue(data.Priority, &Layer{Idx: i, Frame: frame, ID: data.ID, node: node})
				}
				return outcomeSuspended
			}
			e.barriers.release(data.ID)

		case StepRun:
			// run at the wrong priority/cursor is just a gate: requeue
			// at Effect and suspend. run at the correct priority falls
			// straight into compute semantics — load-bearing, not a
			// bug: run at correct priority IS a compute with an
			// effect-priority requeue gate.
			if i != l.Idx || l.Class != Effect {
				e.queue.Enqueue(Effect, &Layer{Idx: i, Frame: frame, ID: 0, node: node})
				return outcomeSuspended
			}

			result, ok := e.callUser(node, step, l.Class, func() any {
				return step.Run.Fn(frame.Value, node.Scope, frame)
			})
			if !ok {
				return outcomeStopped
			}
			frame.Value = result

		case StepMov:
			e.execMov(frame, step.Mov)

		case StepCheck:
			if e.execCheck(frame, step.Check) {
				return outcomeStopped
			}

		case StepFilter:
			keep, ok := e.callUserBool(node, step, l.Class, func() bool {
				return step.Filter.Fn(frame.Value, node.Scope, frame)
			})
			if !ok || !keep {
				return outcomeStopped
			}

		case StepCompute:
			result, ok := e.callUser(node, step, l.Class, func() any {
				return step.Compute.Fn(frame.Value, node.Scope, frame)
			})
			if !ok {
				return outcomeStopped
			}
			frame.Value = result

		default:
			// An unknown opcode cannot arise from correct graph
			// construction. Treated as a programming error, not a
			// recoverable runtime failure.
			panic(fmt.Sprintf("pulse: unknown step kind %d", step.Kind))
		}
	}

	return outcomeDone
}

// execMov moves a value between slots of the current frame, a literal,
// or a ref cell. Assignment, not copy.
func (e *Engine) execMov(frame *Frame, data MovData) {
	var v any

	switch data.From {
	case SlotStack:
		v = frame.Value
	case SlotA:
		v = frame.A
	case SlotB:
		v = frame.B
	case SlotValue:
		v = data.Value
	case SlotStore:
		v = data.Reg.Read()
	default:
		panic(fmt.Sprintf("pulse: mov: unknown source slot %d", data.From))
	}

	switch data.To {
	case SlotStack:
		frame.Value = v
	case SlotA:
		frame.A = v
	case SlotB:
		frame.B = v
	case SlotStore:
		data.Reg.write(v)
	default:
		panic(fmt.Sprintf("pulse: mov: unknown destination slot %d", data.To))
	}
}

// execCheck evaluates a builtin predicate and reports whether the node
// should skip. Only filter/compute/run are guarded against user panics —
// a changed-check whose stack value and ref cell value share a
// non-comparable type (e.g. both slices) will panic here and propagate
// out of Launch uncaught, by design.
func (e *Engine) execCheck(frame *Frame, data CheckData) (skip bool) {
	switch data.Kind {
	case CheckDefined:
		return frame.Value == nil
	case CheckChanged:
		return frame.Value == data.Reg.Read()
	default:
		panic(fmt.Sprintf("pulse: check: unknown kind %d", data.Kind))
	}
}

// callUser runs fn, converting any panic into a Failure reported to the
// engine's diagnostic sink. ok is false iff fn panicked.
func (e *Engine) callUser(node *GraphNode, step Step, class PriorityClass, fn func() any) (result any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			result = nil
			e.sink.Report(e.ctx, Failure{Node: node, Step: step, Class: class, Value: r})
		}
	}()

	return fn(), true
}

// callUserBool is callUser specialised for filter's boolean return.
func (e *Engine) callUserBool(node *GraphNode, step Step, class PriorityClass, fn func() bool) (result bool, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			result = false
			e.sink.Report(e.ctx, Failure{Node: node, Step: step, Class: class, Value: r})
		}
	}()

	return fn(), true
}
