package pack

// Statement is an opaque non-terminator instruction. The decoder carries
// only its display text; statements are rendered, never interpreted.
type Statement struct {
	Text string `msgpack:"text"`
}

// Block is a straight-line statement sequence ending in one terminator.
type Block struct {
	Stmts []Statement `msgpack:"stmts"`
	Term  Terminator  `msgpack:"term"`
}
