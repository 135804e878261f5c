// Command pulsedemo wires up two of the propagation scenarios from the
// engine's own test suite — a simple derivation and a barrier-coalesced
// combine — and prints their results.
package main

import (
	"log/slog"
	"os"

	"github.com/corvid-labs/pulse"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	engine := pulse.NewEngine(pulse.WithDiagnosticSink(pulse.NewSlogSink(logger)))

	doubled := pulse.NewRefCell(1, nil)
	double := pulse.NewGraphNode([]pulse.Step{
		pulse.ComputeStep(func(v, _ any, _ *pulse.Frame) any { return v.(int) * 2 }),
		pulse.MovStep(pulse.SlotStack, pulse.SlotStore, pulse.MovData{Store: 1}),
	}, nil)
	double.Register(1, doubled)

	source := pulse.NewGraphNode(nil, nil)
	source.AddChild(double)

	engine.LaunchNode(source, 21, false)
	logger.Info("simple derivation settled", "doubled", doubled.Read())

	var combineCalls int
	combined := pulse.NewGraphNode([]pulse.Step{
		pulse.BarrierStep(1, pulse.Barrier),
		pulse.ComputeStep(func(v, _ any, _ *pulse.Frame) any {
			combineCalls++
			return v
		}),
	}, nil)

	left := pulse.NewGraphNode(nil, nil)
	right := pulse.NewGraphNode(nil, nil)
	left.AddChild(combined)
	right.AddChild(combined)

	fanIn := pulse.NewGraphNode(nil, nil)
	fanIn.AddChild(left)
	fanIn.AddChild(right)

	engine.LaunchNode(fanIn, "tick", false)
	logger.Info("combine coalescing settled", "calls", combineCalls)
}
