package codegen

import (
	"aurora/internal/ast"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// truthy coerces any scalar condition value to i1 by comparing it against
// zero — any scalar is accepted as truthy by the emitter, not just bool,
// so a bare integer condition like `if (n) { ... }` still lowers to a
// well-typed `br i1`.
func (e *Emitter) truthy(v value.Value) value.Value {
	if v.Type() == lltypes.I1 {
		return v
	}
	if pt, ok := v.Type().(*lltypes.PointerType); ok {
		return e.block.NewICmp(enum.IPredNE, v, constant.NewNull(pt))
	}
	it := v.Type().(*lltypes.IntType)
	return e.block.NewICmp(enum.IPredNE, v, constant.NewInt(it, 0))
}

// emitIf lowers an if/else into three or four blocks: a then-block, an
// optional else-block, and a merge block both branches converge on. A
// branch whose block already ends in a terminator (an early return, break,
// or continue) is left exactly as is — only a block still open at the end
// of its statement list gets its frame's cleanups replayed and a jump to
// the merge block.
func (e *Emitter) emitIf(st *ast.IfStmt) {
	cond := e.truthy(e.emitExpr(st.Cond))

	thenBlock := e.appendBlock()
	var elseBlock *ir.Block
	if len(st.Else) > 0 {
		elseBlock = e.appendBlock()
	}
	mergeBlock := e.appendBlock()

	elseTarget := mergeBlock
	if elseBlock != nil {
		elseTarget = elseBlock
	}
	e.block.NewCondBr(cond, thenBlock, elseTarget)

	e.block = thenBlock
	e.pushScope()
	e.emitStmts(st.Then)
	if e.block.Term == nil {
		e.emitCleanupsFrame(e.topFrame())
		e.block.NewBr(mergeBlock)
	}
	e.popScope()

	if elseBlock != nil {
		e.block = elseBlock
		e.pushScope()
		e.emitStmts(st.Else)
		if e.block.Term == nil {
			e.emitCleanupsFrame(e.topFrame())
			e.block.NewBr(mergeBlock)
		}
		e.popScope()
	}

	e.block = mergeBlock
}

// emitWhile lowers a while loop into cond/body/end blocks, pushing end onto
// the break-target stack and cond onto the continue-target stack for the
// duration of the body.
func (e *Emitter) emitWhile(st *ast.WhileStmt) {
	condBlock := e.appendBlock()
	bodyBlock := e.appendBlock()
	endBlock := e.appendBlock()

	e.block.NewBr(condBlock)

	e.block = condBlock
	cond := e.truthy(e.emitExpr(st.Cond))
	e.block.NewCondBr(cond, bodyBlock, endBlock)

	e.block = bodyBlock
	e.pushScope()
	e.loopBase = append(e.loopBase, len(e.scopes)-1)
	e.breakTargets = append(e.breakTargets, endBlock)
	e.continueTargets = append(e.continueTargets, condBlock)

	e.emitStmts(st.Body)
	if e.block.Term == nil {
		e.emitCleanupsFrame(e.topFrame())
		e.block.NewBr(condBlock)
	}

	e.loopBase = e.loopBase[:len(e.loopBase)-1]
	e.breakTargets = e.breakTargets[:len(e.breakTargets)-1]
	e.continueTargets = e.continueTargets[:len(e.continueTargets)-1]
	e.popScope()

	e.block = endBlock
}
