// Package cfg turns decoded function bodies into DOT control-flow graphs:
// one node per basic block, synthetic pseudo nodes for control-flow sinks
// and call targets, and edges determined by each block's terminator.
package cfg

import (
	"fmt"
	"io"

	"fortio.org/safecast"

	"mircfg/internal/pack"
)

const entryNode = "__entry"

const blockAttrs = "shape = record, style=filled, fillcolor=beige"

// WriteGraph writes the complete DOT description of one function body.
// Blocks are visited once each in index order; block 0 is the entry and
// receives an edge from a distinguished entry point node.
func WriteGraph(w io.Writer, body *pack.Body) error {
	gw := &graphWriter{w: w}
	gw.line(`digraph "g" {`)
	gw.line("\tnode [ shape=box ]")
	gw.node(entryNode, "", "shape=point")
	gw.edge(Edge{From: entryNode, To: "0"})

	reg := NewExternalNodes()
	for i := range body.Blocks {
		idx, err := safecast.Conv[uint32](i)
		if err != nil {
			return fmt.Errorf("function %s: %w", body.DefID, err)
		}
		src := pack.BlockIndex(idx)
		blk := &body.Blocks[i]

		te := MapTerminator(reg, src, blk.Term)
		for _, p := range te.Pseudo {
			gw.node(p.Name, p.Name, p.Attrs)
		}
		for _, e := range te.Edges {
			gw.edge(e)
		}

		name := blockName(src)
		gw.node(name, fmt.Sprintf("{%s | %s | %s}", name, statementsText(blk), te.Label), blockAttrs)
	}

	gw.line("}")
	return gw.err
}

// graphWriter latches the first write error so emission code stays linear.
type graphWriter struct {
	w   io.Writer
	err error
}

func (g *graphWriter) line(s string) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintln(g.w, s)
}

func (g *graphWriter) node(name, label, attrs string) {
	if attrs == "" {
		g.line(fmt.Sprintf("\t%q[ label = \"%s\"]", name, label))
		return
	}
	g.line(fmt.Sprintf("\t%q[ label = \"%s\", %s]", name, label, attrs))
}

func (g *graphWriter) edge(e Edge) {
	if e.Label == "" {
		g.line(fmt.Sprintf("%q -> %q;", e.From, e.To))
		return
	}
	g.line(fmt.Sprintf("%q -> %q [label = \"%s\"];", e.From, e.To, e.Label))
}
