package codegen

import (
	"aurora/internal/ast"
	"aurora/internal/report"
	atypes "aurora/internal/types"

	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
)

// emitFunc lowers one function definition: an entry block, a stack slot per
// parameter, the body, and — if control falls off the end — an implicit
// terminator matching the declared return type.
func (e *Emitter) emitFunc(fn *ast.Func) {
	llFunc := e.funcs[fn.Name]

	entry := llFunc.NewBlock("entry")
	e.enclosingFunc = llFunc
	e.block = entry

	e.pushScope()

	for i, p := range fn.Params {
		slot := entry.NewAlloca(e.convType(p.Type))
		entry.NewStore(llFunc.Params[i], slot)
		e.declare(p.Name, slot, p.Type)
	}

	e.emitStmts(fn.Body)

	if e.block.Term == nil {
		e.emitCleanupsFrame(e.topFrame())
		e.emitImplicitReturn(fn.ReturnType)
	}

	e.popScope()

	e.verifyFunc(llFunc)
}

// emitImplicitReturn supplies the terminator a function body is missing
// when it falls off the end: a zero value for integer/bool returns, `ret
// void` for void.
func (e *Emitter) emitImplicitReturn(retType *atypes.Type) {
	switch {
	case retType.IsVoid():
		e.block.NewRet(nil)
	case retType.Kind == atypes.Bool:
		e.block.NewRet(constant.NewBool(false))
	case retType.IsInteger():
		e.block.NewRet(constant.NewInt(e.convType(retType).(*lltypes.IntType), 0))
	default:
		panic(report.Raise(nil, "internal compiler error: function falls off the end with non-trivial return type `%s`", retType))
	}
}
