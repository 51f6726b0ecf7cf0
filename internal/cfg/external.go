package cfg

import "fmt"

// ExternalNodes mints unique names for pseudo nodes within one rendering
// pass. Each prefix counts independently from zero, so every request yields
// a fresh node while requests sharing a prefix stay visually grouped.
//
// A registry is created per function body and discarded with the pass; no
// state crosses function boundaries.
type ExternalNodes struct {
	counts map[string]int
}

// NewExternalNodes returns an empty registry.
func NewExternalNodes() *ExternalNodes {
	return &ExternalNodes{counts: make(map[string]int)}
}

// Request returns "prefix(N)" where N is the number of prior requests for
// this prefix.
func (x *ExternalNodes) Request(prefix string) string {
	n := x.counts[prefix]
	x.counts[prefix] = n + 1
	return fmt.Sprintf("%s(%d)", prefix, n)
}
