package pack

import "fmt"

// BlockIndex identifies a basic block by its position inside one Body.
// The index is the identity: blocks carry no separate id.
type BlockIndex uint32

// DefID identifies a function globally: a crate hash plus an index of the
// definition within that crate.
type DefID struct {
	CrateHash uint64 `msgpack:"crate_hash"`
	DefIdx    uint32 `msgpack:"def_idx"`
}

func (d DefID) String() string {
	return fmt.Sprintf("%d-%d", d.CrateHash, d.DefIdx)
}

// CallOperandKind enumerates callee reference kinds.
type CallOperandKind uint8

const (
	// CallUnknown is a callee that could not be resolved to a DefID.
	CallUnknown CallOperandKind = iota
	// CallFn is a callee resolved to a concrete function.
	CallFn
)

// CallOperand references the callee of a Call terminator.
type CallOperand struct {
	Kind CallOperandKind `msgpack:"kind"`
	Fn   DefID           `msgpack:"fn"`
}
