package pulse

import (
	"context"
	"log/slog"
)

// Failure is a structured record of a user-function panic caught by the
// interpreter while executing a filter, compute, or run step. The node
// stops, no children are scheduled, and the drain continues.
type Failure struct {
	Node  *GraphNode
	Step  Step
	Class PriorityClass
	Value any // the panic value recovered from the user function
}

// DiagnosticSink receives [Failure] records. The default, [SlogSink], wraps
// a *slog.Logger (slog.Default() when none is given) and passes the
// engine's context along with each record, rather than a bespoke logging
// type.
type DiagnosticSink interface {
	Report(ctx context.Context, f Failure)
}

// SlogSink reports failures to a *slog.Logger at Error level.
type SlogSink struct {
	Logger *slog.Logger
}

// NewSlogSink wraps logger as a DiagnosticSink. A nil logger falls back
// to slog.Default().
func NewSlogSink(logger *slog.Logger) SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return SlogSink{Logger: logger}
}

func (s SlogSink) Report(ctx context.Context, f Failure) {
	s.Logger.ErrorContext(ctx, "pulse: node step panicked",
		"step", f.Step.Kind.String(),
		"class", f.Class.String(),
		"panic", f.Value,
	)
}
