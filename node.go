package pulse

// GraphNode is an immutable-after-construction record holding one node's
// instruction sequence, its children, its register table of ref-cell
// handles, and its scope. Construction of the graph (the
// createStore/createEvent/createEffect/sample/combine surface) lives
// outside this package; callers build GraphNode values directly, the way
// this package's own tests do.
type GraphNode struct {
	Seq   []Step
	Next  []*GraphNode
	Reg   map[RefID]*RefCell
	Scope any
}

// NewGraphNode constructs a node with the given instruction sequence and
// scope. Children are attached with AddChild; the register table is
// attached with Register.
func NewGraphNode(seq []Step, scope any) *GraphNode {
	return &GraphNode{
		Seq:   seq,
		Next:  nil,
		Reg:   make(map[RefID]*RefCell),
		Scope: scope,
	}
}

// AddChild appends a child node, preserving fan-out order.
func (n *GraphNode) AddChild(child *GraphNode) {
	n.Next = append(n.Next, child)
}

// Register maps a local ref id to a ref cell in this node's register
// table, and back-fills any already-built step that references it by
// RefID so the interpreter can resolve it without a second lookup.
func (n *GraphNode) Register(id RefID, cell *RefCell) {
	n.Reg[id] = cell

	for i := range n.Seq {
		s := &n.Seq[i]
		switch s.Kind {
		case StepMov:
			if s.Mov.Store == id {
				s.Mov.Reg = cell
			}
		case StepCheck:
			if s.Check.Store == id {
				s.Check.Reg = cell
			}
		}
	}
}

// Frame is the per-node, per-traversal stack frame: the propagated value,
// two scratch slots for multi-argument opcodes, and a parent link forming
// a per-propagation call stack that user functions can walk for causal
// context. A Frame's lifetime ends when the drain that created it
// returns; frames are ordinary garbage-collected values, not pooled —
// one is allocated per recompute and the cost is dominated by the user
// function it wraps anyway.
type Frame struct {
	Value  any
	A, B   any
	Parent *Frame
	Node   *GraphNode
}
