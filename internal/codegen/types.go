package codegen

import (
	atypes "aurora/internal/types"

	lltypes "github.com/llir/llvm/ir/types"
)

// convType maps a checked Aurora type onto its LLVM representation. void
// only ever appears here as a function return type; it is never the type
// of a stack slot.
func (e *Emitter) convType(t *atypes.Type) lltypes.Type {
	switch t.Kind {
	case atypes.I32:
		return lltypes.I32
	case atypes.I64:
		return lltypes.I64
	case atypes.Bool:
		return lltypes.I1
	case atypes.Void:
		return lltypes.Void
	case atypes.Ptr:
		return lltypes.NewPointer(e.convType(t.Elem))
	case atypes.Array:
		return lltypes.NewArray(uint64(t.N), e.convType(t.Elem))
	default:
		return lltypes.Void
	}
}
