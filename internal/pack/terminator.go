package pack

// TermKind enumerates terminator kinds.
type TermKind uint8

const (
	TermGoto TermKind = iota
	TermSwitchInt
	TermResume
	TermAbort
	TermReturn
	TermUnreachable
	TermGeneratorDrop
	TermDrop
	TermDropAndReplace
	TermAssert
	TermYield
	TermCall
	TermFalseEdges
	TermFalseUnwind

	termKindCount
)

// Terminator is the single control-flow-transferring instruction ending a
// block. Exactly one variant struct is meaningful, selected by Kind.
type Terminator struct {
	Kind TermKind `msgpack:"kind"`

	Goto           GotoTerm           `msgpack:"goto"`
	SwitchInt      SwitchIntTerm      `msgpack:"switch_int"`
	Drop           DropTerm           `msgpack:"drop"`
	DropAndReplace DropAndReplaceTerm `msgpack:"drop_and_replace"`
	Assert         AssertTerm         `msgpack:"assert"`
	Yield          YieldTerm          `msgpack:"yield"`
	Call           CallTerm           `msgpack:"call"`
	FalseEdges     FalseEdgesTerm     `msgpack:"false_edges"`
	FalseUnwind    FalseUnwindTerm    `msgpack:"false_unwind"`
}

type GotoTerm struct {
	Target BlockIndex `msgpack:"target"`
}

type SwitchIntTerm struct {
	// Targets may repeat an index; each entry stands on its own.
	Targets []BlockIndex `msgpack:"targets"`
}

type DropTerm struct {
	Target    BlockIndex `msgpack:"target"`
	HasUnwind bool       `msgpack:"has_unwind"`
	Unwind    BlockIndex `msgpack:"unwind"`
}

type DropAndReplaceTerm struct {
	Target    BlockIndex `msgpack:"target"`
	HasUnwind bool       `msgpack:"has_unwind"`
	Unwind    BlockIndex `msgpack:"unwind"`
}

type AssertTerm struct {
	Target     BlockIndex `msgpack:"target"`
	HasCleanup bool       `msgpack:"has_cleanup"`
	Cleanup    BlockIndex `msgpack:"cleanup"`
}

type YieldTerm struct {
	Resume  BlockIndex `msgpack:"resume"`
	HasDrop bool       `msgpack:"has_drop"`
	Drop    BlockIndex `msgpack:"drop"`
}

type CallTerm struct {
	Operand    CallOperand `msgpack:"operand"`
	HasCleanup bool        `msgpack:"has_cleanup"`
	Cleanup    BlockIndex  `msgpack:"cleanup"`
	HasRet     bool        `msgpack:"has_ret"`
	Ret        BlockIndex  `msgpack:"ret"`
}

type FalseEdgesTerm struct {
	RealTarget BlockIndex `msgpack:"real_target"`
}

type FalseUnwindTerm struct {
	RealTarget BlockIndex `msgpack:"real_target"`
}
