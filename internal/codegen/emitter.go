// Package codegen lowers a checked Aurora program into a typed SSA module
// using github.com/llir/llvm: one allocated stack slot per local variable,
// explicit load/store with an always-known pointee type, and two- or
// one-index GEPs depending on whether the base is an array or a pointer.
//
// The emitter does not consult the semantic analyzer's symbol table. Per
// the project's usual rule that a symbol table belongs to the stage that
// built it, the emitter walks the same checked AST and reconstructs its own
// local environment from scratch, keyed by (slot pointer, declared type)
// pairs — the type has to travel with the pointer because the IR's
// pointers are opaque.
package codegen

import (
	"aurora/internal/ast"
	"aurora/internal/builtins"
	"aurora/internal/report"
	atypes "aurora/internal/types"
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/value"
)

// localVar is one binding in the emitter's environment: the stack slot
// backing a name and the Aurora type that slot was allocated to hold.
type localVar struct {
	ptr value.Value
	typ *atypes.Type
}

// scopeFrame is one entry in the emitter's lexical scope stack. cleanups
// holds, in declaration order, the `unique` frees and explicit `defer`
// expressions that must run — in reverse order — whenever this frame's
// block exits.
type scopeFrame struct {
	vars     map[string]*localVar
	cleanups []cleanupAction
}

type cleanupAction struct {
	isFree  bool
	varName string // set when isFree
	expr    ast.Expr
}

// Emitter holds all state needed to lower one program into one module.
type Emitter struct {
	mod   *ir.Module
	funcs map[string]*ir.Func

	// funcRet mirrors each known function's return type, builtins included,
	// so the emitter can re-derive an expression's type on demand without
	// consulting sema's (long since discarded) symbol table.
	funcRet map[string]*atypes.Type

	enclosingFunc *ir.Func
	block         *ir.Block

	scopes []*scopeFrame

	loopBase        []int
	breakTargets    []*ir.Block
	continueTargets []*ir.Block
}

// Emit lowers prog into a fresh LLVM module. prog is assumed to have
// already passed semantic analysis; Emit panics with an internal-error
// CompileError if it encounters anything sema should have rejected.
func Emit(prog *ast.Program) *ir.Module {
	e := &Emitter{
		mod:     ir.NewModule(),
		funcs:   make(map[string]*ir.Func),
		funcRet: make(map[string]*atypes.Type),
	}

	e.declareBuiltins()
	for _, fn := range prog.Funcs {
		e.declareFunc(fn)
	}
	for _, fn := range prog.Funcs {
		e.emitFunc(fn)
	}

	return e.mod
}

func (e *Emitter) declareBuiltins() {
	for _, b := range builtins.Table {
		params := make([]*ir.Param, len(b.Params))
		for i, pt := range b.Params {
			params[i] = ir.NewParam("", e.convType(pt))
		}
		fn := e.mod.NewFunc(b.Name, e.convType(b.Return), params...)
		fn.Linkage = enum.LinkageExternal
		e.funcs[b.Name] = fn
		e.funcRet[b.Name] = b.Return
	}
}

func (e *Emitter) declareFunc(fn *ast.Func) {
	params := make([]*ir.Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = ir.NewParam(p.Name, e.convType(p.Type))
	}
	llFunc := e.mod.NewFunc(fn.Name, e.convType(fn.ReturnType), params...)
	llFunc.Linkage = enum.LinkageExternal
	e.funcs[fn.Name] = llFunc
	e.funcRet[fn.Name] = fn.ReturnType
}

// -----------------------------------------------------------------------------
// Scope management

func (e *Emitter) pushScope() {
	e.scopes = append(e.scopes, &scopeFrame{vars: make(map[string]*localVar)})
}

func (e *Emitter) popScope() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}

func (e *Emitter) topFrame() *scopeFrame {
	return e.scopes[len(e.scopes)-1]
}

func (e *Emitter) declare(name string, ptr value.Value, typ *atypes.Type) {
	e.topFrame().vars[name] = &localVar{ptr: ptr, typ: typ}
}

func (e *Emitter) lookup(name string) *localVar {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if lv, ok := e.scopes[i].vars[name]; ok {
			return lv
		}
	}
	panic(report.Raise(nil, "internal compiler error: unresolved name `%s` reached the emitter", name))
}

func (e *Emitter) recordFree(varName string) {
	f := e.topFrame()
	f.cleanups = append(f.cleanups, cleanupAction{isFree: true, varName: varName})
}

func (e *Emitter) recordDefer(expr ast.Expr) {
	f := e.topFrame()
	f.cleanups = append(f.cleanups, cleanupAction{expr: expr})
}

// emitCleanupsFrame replays one frame's defer/free list in LIFO order.
func (e *Emitter) emitCleanupsFrame(f *scopeFrame) {
	for i := len(f.cleanups) - 1; i >= 0; i-- {
		act := f.cleanups[i]
		if act.isFree {
			lv := e.lookup(act.varName)
			loaded := e.block.NewLoad(e.convType(lv.typ), lv.ptr)
			e.block.NewCall(e.funcs["free"], loaded)
		} else {
			e.emitExpr(act.expr)
		}
	}
}

// emitCleanupsTo replays every frame from the top of the stack down to and
// including index base, innermost frame first — the set of scopes a
// `return` (base 0) or a `break`/`continue` (base = the loop body's own
// frame index) unwinds through.
func (e *Emitter) emitCleanupsTo(base int) {
	for i := len(e.scopes) - 1; i >= base; i-- {
		e.emitCleanupsFrame(e.scopes[i])
	}
}

// appendBlock adds a new basic block to the function currently being
// generated. It does not change the insertion point.
func (e *Emitter) appendBlock() *ir.Block {
	return e.enclosingFunc.NewBlock(fmt.Sprintf("bb%d", len(e.enclosingFunc.Blocks)))
}
