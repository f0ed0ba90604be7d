package sema

import "aurora/internal/types"

// binding is a single lexical-scope entry: a name's type and whether it was
// declared `unique`.
type binding struct {
	typ      *types.Type
	isUnique bool
}

// signature is a function's type: parameter types in order plus a return
// type.
type signature struct {
	params []*types.Type
	ret    *types.Type
}
