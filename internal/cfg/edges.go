package cfg

import (
	"fmt"
	"strconv"

	"mircfg/internal/pack"
)

// Display labels for terminator kinds and edge annotations.
const (
	gotoLabel        = "goto"
	retLabel         = "ret"
	callLabel        = "call"
	cleanupLabel     = "cleanup"
	abortLabel       = "abort"
	falseEdgeLabel   = "false edge"
	falseUnwindLabel = "false unwind"
	switchIntLabel   = "switch_int"
	resumeLabel      = "resume"
	unreachLabel     = "unreachable"
	genDropLabel     = "gen drop"
	dropLabel        = "drop"
	unwindLabel      = "unwind"
	dropReplaceLabel = "drop+replace"
	yieldLabel       = "yield"
	assertLabel      = "assert"

	unknownCalleePrefix = "???"
)

// Graphviz attributes for pseudo node kinds.
const (
	resumeAttrs = "shape=point, color=blue"
	abortAttrs  = "shape=point, color=red"
	retAttrs    = "shape=point"
	callAttrs   = "fillcolor = lightblue1, style = filled"
)

// Edge is one directed edge of the graph. An empty Label means the edge is
// drawn unlabeled.
type Edge struct {
	From  string
	To    string
	Label string
}

// PseudoNode is a synthetic node declaration produced alongside the edges
// that reference it. Attrs is the raw attribute list, empty for none.
type PseudoNode struct {
	Name  string
	Attrs string
}

// TermEdges is the complete rendering contribution of one terminator: the
// pseudo nodes it mints, every edge it produces (in emission order) and the
// display label for the block's record cell.
type TermEdges struct {
	Pseudo []PseudoNode
	Edges  []Edge
	Label  string
}

// MapTerminator converts the terminator of the block at src into its edge
// set. It is a pure function over its inputs except for the pseudo-node
// counters advanced through reg.
func MapTerminator(reg *ExternalNodes, src pack.BlockIndex, t pack.Terminator) TermEdges {
	from := blockName(src)

	switch t.Kind {
	case pack.TermGoto:
		return TermEdges{
			Edges: []Edge{{From: from, To: blockName(t.Goto.Target)}},
			Label: gotoLabel,
		}
	case pack.TermFalseEdges:
		return TermEdges{
			Edges: []Edge{{From: from, To: blockName(t.FalseEdges.RealTarget)}},
			Label: falseEdgeLabel,
		}
	case pack.TermFalseUnwind:
		return TermEdges{
			Edges: []Edge{{From: from, To: blockName(t.FalseUnwind.RealTarget)}},
			Label: falseUnwindLabel,
		}
	case pack.TermSwitchInt:
		edges := make([]Edge, 0, len(t.SwitchInt.Targets))
		for _, target := range t.SwitchInt.Targets {
			edges = append(edges, Edge{From: from, To: blockName(target)})
		}
		return TermEdges{Edges: edges, Label: switchIntLabel}
	case pack.TermResume:
		return sinkEdges(reg, from, resumeLabel, resumeAttrs)
	case pack.TermAbort:
		return sinkEdges(reg, from, abortLabel, abortAttrs)
	case pack.TermReturn:
		return sinkEdges(reg, from, retLabel, retAttrs)
	case pack.TermUnreachable:
		return sinkEdges(reg, from, unreachLabel, "")
	case pack.TermGeneratorDrop:
		return sinkEdges(reg, from, genDropLabel, "")
	case pack.TermDrop:
		return dropStyleEdges(from, dropLabel, t.Drop.Target, t.Drop.HasUnwind, t.Drop.Unwind, unwindLabel)
	case pack.TermDropAndReplace:
		return dropStyleEdges(from, dropReplaceLabel, t.DropAndReplace.Target, t.DropAndReplace.HasUnwind, t.DropAndReplace.Unwind, unwindLabel)
	case pack.TermAssert:
		return dropStyleEdges(from, assertLabel, t.Assert.Target, t.Assert.HasCleanup, t.Assert.Cleanup, unwindLabel)
	case pack.TermYield:
		return dropStyleEdges(from, yieldLabel, t.Yield.Resume, t.Yield.HasDrop, t.Yield.Drop, dropLabel)
	case pack.TermCall:
		return callEdges(reg, from, t.Call)
	default:
		panic(fmt.Sprintf("cfg: unknown terminator kind %d", t.Kind))
	}
}

// sinkEdges handles the variants that transfer control out of the function:
// one fresh pseudo node and one unlabeled edge into it.
func sinkEdges(reg *ExternalNodes, from, prefix, attrs string) TermEdges {
	node := reg.Request(prefix)
	return TermEdges{
		Pseudo: []PseudoNode{{Name: node, Attrs: attrs}},
		Edges:  []Edge{{From: from, To: node}},
		Label:  prefix,
	}
}

// dropStyleEdges handles Drop/DropAndReplace/Assert/Yield: one primary edge
// plus an optional labeled secondary edge.
func dropStyleEdges(from, label string, target pack.BlockIndex, hasSecond bool, second pack.BlockIndex, secondLabel string) TermEdges {
	edges := []Edge{{From: from, To: blockName(target)}}
	if hasSecond {
		edges = append(edges, Edge{From: from, To: blockName(second), Label: secondLabel})
	}
	return TermEdges{Edges: edges, Label: label}
}

func callEdges(reg *ExternalNodes, from string, call pack.CallTerm) TermEdges {
	prefix := unknownCalleePrefix
	if call.Operand.Kind == pack.CallFn {
		prefix = call.Operand.Fn.String()
	}
	target := reg.Request(prefix)

	edges := []Edge{{From: from, To: target}}
	if call.HasCleanup {
		edges = append(edges, Edge{From: from, To: blockName(call.Cleanup), Label: cleanupLabel})
	}
	if call.HasRet {
		// The return edge leaves the callee node, not the calling block.
		edges = append(edges, Edge{From: target, To: blockName(call.Ret)})
	}
	return TermEdges{
		Pseudo: []PseudoNode{{Name: target, Attrs: callAttrs}},
		Edges:  edges,
		Label:  callLabel,
	}
}

func blockName(idx pack.BlockIndex) string {
	return strconv.FormatUint(uint64(idx), 10)
}
