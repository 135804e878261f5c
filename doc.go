// Package pulse is the propagation engine of a reactive dataflow runtime.
//
// Graphs of [GraphNode] values, wired up by an external graph-construction
// layer (not part of this package), are driven by [Engine.Launch]: an
// injection of one or more values into source nodes that the engine
// propagates downstream deterministically, executing each node's
// instruction sequence and fanning out to children in priority order.
package pulse
