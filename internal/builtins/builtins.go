// Package builtins defines the handful of runtime-provided functions every
// Aurora program gets for free, without an import or a declaration: a
// console I/O pair and a bump allocator pair backing the `unique` ownership
// model. The semantic analyzer pre-seeds its function table from this list
// before it ever looks at user code, and the code emitter declares (but
// never defines) the same signatures with external linkage in every module
// it produces, so the linker can resolve them against the runtime support
// object.
package builtins

import "aurora/internal/types"

// Signature describes one builtin's calling convention.
type Signature struct {
	Name   string
	Params []*types.Type
	Return *types.Type
}

// Table lists every builtin, in declaration order. Order only matters for
// the order diagnostics and emitted declarations appear in; it has no
// semantic effect.
var Table = []Signature{
	{
		Name:   "print_i64",
		Params: []*types.Type{types.I64Type()},
		Return: types.I64Type(),
	},
	{
		Name:   "read_i64",
		Params: nil,
		Return: types.I64Type(),
	},
	{
		Name:   "malloc",
		Params: []*types.Type{types.I64Type()},
		Return: types.PtrTo(types.I64Type()),
	},
	{
		Name:   "free",
		Params: []*types.Type{types.PtrTo(types.I64Type())},
		Return: types.VoidType(),
	},
}

// Lookup returns the builtin named name, or false if there is none.
func Lookup(name string) (Signature, bool) {
	for _, b := range Table {
		if b.Name == name {
			return b, true
		}
	}
	return Signature{}, false
}
