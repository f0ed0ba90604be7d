package codegen

import (
	"aurora/internal/ast"
	atypes "aurora/internal/types"

	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

func (e *Emitter) emitStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *Emitter) emitStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.LetStmt:
		e.emitLet(st)
	case *ast.ExprStmt:
		e.emitExpr(st.X)
	case *ast.ReturnStmt:
		e.emitReturn(st)
	case *ast.IfStmt:
		e.emitIf(st)
	case *ast.WhileStmt:
		e.emitWhile(st)
	case *ast.DeferStmt:
		e.recordDefer(st.X)
	case *ast.BreakStmt:
		e.emitBreak()
	case *ast.ContinueStmt:
		e.emitContinue()
	}
}

// emitLet lowers a `let` binding. A scalar allocates a slot of its own type
// and stores its initializer directly; an array literal allocates a slot of
// array<T,N> and stores every element via a two-index GEP. A `unique`
// binding additionally records a deferred free of the bound name in the
// current frame.
func (e *Emitter) emitLet(st *ast.LetStmt) {
	typ := st.ResolvedType

	var slot value.Value
	if typ.Kind == atypes.Array {
		if lit, ok := st.Init.(*ast.ArrayLit); ok {
			slot = e.allocArrayLit(lit, typ)
		} else {
			// Any other array-typed initializer (e.g. a plain reference to
			// another array-typed name) already yields a slot pointer —
			// arrays are addresses, never loaded values — so the new binding
			// simply aliases it.
			slot = e.emitExpr(st.Init)
		}
	} else {
		v := e.emitExpr(st.Init)
		slot = e.block.NewAlloca(e.convType(typ))
		e.block.NewStore(v, slot)
	}

	e.declare(st.Name, slot, typ)

	if st.Unique {
		e.recordFree(st.Name)
	}
}

func (e *Emitter) allocArrayLit(lit *ast.ArrayLit, typ *atypes.Type) value.Value {
	slot := e.block.NewAlloca(e.convType(typ))
	for i, elem := range lit.Elems {
		v := e.emitExpr(elem)
		ptr := e.block.NewGetElementPtr(e.convType(typ), slot,
			constant.NewInt(lltypes.I32, 0), constant.NewInt(lltypes.I32, int64(i)))
		e.block.NewStore(v, ptr)
	}
	return slot
}

func (e *Emitter) emitReturn(st *ast.ReturnStmt) {
	var retVal value.Value
	if st.Value != nil {
		retVal = e.emitExpr(st.Value)
	}

	e.emitCleanupsTo(0)
	e.block.NewRet(retVal)
	e.openDeadBlock()
}

func (e *Emitter) emitBreak() {
	target := e.breakTargets[len(e.breakTargets)-1]
	e.emitCleanupsTo(e.loopBase[len(e.loopBase)-1])
	e.block.NewBr(target)
	e.openDeadBlock()
}

func (e *Emitter) emitContinue() {
	target := e.continueTargets[len(e.continueTargets)-1]
	e.emitCleanupsTo(e.loopBase[len(e.loopBase)-1])
	e.block.NewBr(target)
	e.openDeadBlock()
}

// openDeadBlock starts a fresh basic block after an unconditional jump so
// that any statements textually following a return/break/continue still
// have somewhere to land; they are unreachable at runtime.
func (e *Emitter) openDeadBlock() {
	e.block = e.appendBlock()
}
