package pack

// Body is one decoded function: its identity and its blocks in index order.
// Block 0 is always the entry block.
type Body struct {
	DefID  DefID   `msgpack:"def_id"`
	Blocks []Block `msgpack:"blocks"`
}

// RecordKind enumerates top-level record kinds in the pack stream.
type RecordKind uint8

const (
	// RecordBody carries a function body.
	RecordBody RecordKind = iota

	recordKindCount
)

// Record is one top-level entry of the pack stream.
type Record struct {
	Kind RecordKind `msgpack:"kind"`
	Body *Body      `msgpack:"body"`
}
