package codegen

import (
	"aurora/internal/ast"
	atypes "aurora/internal/types"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

func (e *Emitter) emitExpr(expr ast.Expr) value.Value {
	switch ex := expr.(type) {
	case *ast.IntLit:
		return constant.NewInt(lltypes.I64, ex.Value)
	case *ast.BoolLit:
		return constant.NewBool(ex.Value)
	case *ast.Ident:
		return e.emitIdent(ex)
	case *ast.UnaryOp:
		return e.emitUnary(ex)
	case *ast.BinaryOp:
		return e.emitBinary(ex)
	case *ast.Assign:
		return e.emitAssign(ex)
	case *ast.Call:
		return e.emitCall(ex)
	case *ast.ArrayLit:
		return e.allocArrayLit(ex, e.typeOf(ex))
	case *ast.Index:
		return e.emitIndexLoad(ex)
	default:
		return nil
	}
}

// emitIdent lowers a variable reference. A scalar loads from its slot; an
// array yields the slot pointer directly — arrays are addresses under an
// opaque-pointer model, never loaded values.
func (e *Emitter) emitIdent(ex *ast.Ident) value.Value {
	lv := e.lookup(ex.Name)
	if lv.typ.Kind == atypes.Array {
		return lv.ptr
	}
	return e.block.NewLoad(e.convType(lv.typ), lv.ptr)
}

func (e *Emitter) emitUnary(ex *ast.UnaryOp) value.Value {
	v := e.emitExpr(ex.Operand)

	switch ex.Op {
	case "-":
		return e.block.NewSub(constant.NewInt(v.Type().(*lltypes.IntType), 0), v)
	case "!":
		if e.typeOf(ex.Operand).Kind == atypes.Bool {
			return e.block.NewXor(v, constant.NewBool(true))
		}
		allOnes := constant.NewInt(v.Type().(*lltypes.IntType), -1)
		return e.block.NewXor(v, allOnes)
	default:
		return v
	}
}

func (e *Emitter) emitBinary(ex *ast.BinaryOp) value.Value {
	switch ex.Op {
	case "&&":
		l := e.emitExpr(ex.Lhs)
		r := e.emitExpr(ex.Rhs)
		return e.block.NewAnd(l, r)
	case "||":
		l := e.emitExpr(ex.Lhs)
		r := e.emitExpr(ex.Rhs)
		return e.block.NewOr(l, r)
	}

	l := e.emitExpr(ex.Lhs)
	r := e.emitExpr(ex.Rhs)

	switch ex.Op {
	case "+":
		return e.block.NewAdd(l, r)
	case "-":
		return e.block.NewSub(l, r)
	case "*":
		return e.block.NewMul(l, r)
	case "/":
		return e.block.NewSDiv(l, r)
	case "%":
		return e.block.NewSRem(l, r)
	case "==":
		return e.block.NewICmp(enum.IPredEQ, l, r)
	case "!=":
		return e.block.NewICmp(enum.IPredNE, l, r)
	case "<":
		return e.block.NewICmp(enum.IPredSLT, l, r)
	case "<=":
		return e.block.NewICmp(enum.IPredSLE, l, r)
	case ">":
		return e.block.NewICmp(enum.IPredSGT, l, r)
	case ">=":
		return e.block.NewICmp(enum.IPredSGE, l, r)
	default:
		return l
	}
}

// emitAssign lowers `lhs = rhs`. lhs is always a simple variable or an
// indexed aggregate access — the checker has already rejected anything
// else.
func (e *Emitter) emitAssign(ex *ast.Assign) value.Value {
	v := e.emitExpr(ex.Rhs)

	switch lhs := ex.Lhs.(type) {
	case *ast.Ident:
		lv := e.lookup(lhs.Name)
		e.block.NewStore(v, lv.ptr)
	case *ast.Index:
		addr := e.emitIndexAddr(lhs)
		e.block.NewStore(v, addr)
	}

	return v
}

// emitCall lowers a function call. Every parameter is passed by value,
// array-typed ones included: emitExpr yields a slot pointer for an
// array-typed argument (arrays are addresses everywhere else), so that
// case is loaded here to match the by-value parameter slot the callee's
// prologue allocates.
func (e *Emitter) emitCall(ex *ast.Call) value.Value {
	fn := e.funcs[ex.Callee]
	args := make([]value.Value, len(ex.Args))
	for i, a := range ex.Args {
		v := e.emitExpr(a)
		if at := e.typeOf(a); at.Kind == atypes.Array {
			v = e.block.NewLoad(e.convType(at), v)
		}
		args[i] = v
	}
	return e.block.NewCall(fn, args...)
}

// emitIndexAddr computes the address of base[idx]: a two-index GEP if base
// is array-typed, or a load of the pointer followed by a one-index GEP if
// base is pointer-typed. GEP indices are truncated to 32 bits.
func (e *Emitter) emitIndexAddr(ix *ast.Index) value.Value {
	baseType := e.typeOf(ix.Base)
	idx := e.truncTo32(e.emitExpr(ix.Idx))

	if baseType.Kind == atypes.Array {
		baseAddr := e.emitExpr(ix.Base)
		return e.block.NewGetElementPtr(e.convType(baseType), baseAddr,
			constant.NewInt(lltypes.I32, 0), idx)
	}

	ptrVal := e.emitExpr(ix.Base)
	return e.block.NewGetElementPtr(e.convType(baseType.Elem), ptrVal, idx)
}

func (e *Emitter) emitIndexLoad(ix *ast.Index) value.Value {
	addr := e.emitIndexAddr(ix)
	elemType := e.typeOf(ix.Base).Elem
	return e.block.NewLoad(e.convType(elemType), addr)
}

func (e *Emitter) truncTo32(v value.Value) value.Value {
	if it, ok := v.Type().(*lltypes.IntType); ok && it.BitSize == 64 {
		return e.block.NewTrunc(v, lltypes.I32)
	}
	return v
}

// typeOf re-derives an expression's Aurora type by mirroring the semantic
// analyzer's inference rules. It exists so the emitter never needs a
// shared symbol table with sema: everything it needs to know about a name
// it learns from its own scope stack; everything else follows structurally
// from the expression shape.
func (e *Emitter) typeOf(expr ast.Expr) *atypes.Type {
	switch ex := expr.(type) {
	case *ast.IntLit:
		return atypes.I64Type()
	case *ast.BoolLit:
		return atypes.BoolType()
	case *ast.Ident:
		return e.lookup(ex.Name).typ
	case *ast.UnaryOp:
		return e.typeOf(ex.Operand)
	case *ast.BinaryOp:
		if arithOps[ex.Op] {
			return atypes.I64Type()
		}
		return atypes.BoolType()
	case *ast.Assign:
		return e.typeOf(ex.Lhs)
	case *ast.Call:
		return e.funcRet[ex.Callee]
	case *ast.ArrayLit:
		return atypes.ArrayOf(e.typeOf(ex.Elems[0]), len(ex.Elems))
	case *ast.Index:
		return e.typeOf(ex.Base).Elem
	default:
		return nil
	}
}

var arithOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
