package sema

import (
	"aurora/internal/ast"
	"aurora/internal/report"
	"aurora/internal/types"
)

var arithOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
var compareOps = map[string]bool{"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true}
var logicalOps = map[string]bool{"&&": true, "||": true}

// checkExpr infers and returns the type of e, recording it onto the node
// itself where the AST has a slot for it (Ident.ResolvedType).
func (c *Checker) checkExpr(e ast.Expr) *types.Type {
	switch ex := e.(type) {
	case *ast.IntLit:
		return types.I64Type()
	case *ast.BoolLit:
		return types.BoolType()
	case *ast.Ident:
		b := c.lookup(ex.Pos, ex.Name)
		ex.ResolvedType = b.typ
		return b.typ
	case *ast.UnaryOp:
		return c.checkUnary(ex)
	case *ast.BinaryOp:
		return c.checkBinary(ex)
	case *ast.Assign:
		return c.checkAssign(ex)
	case *ast.Call:
		return c.checkCall(ex)
	case *ast.ArrayLit:
		return c.checkArrayLit(ex)
	case *ast.Index:
		return c.checkIndex(ex)
	default:
		c.error(e.Span(), "unhandled expression kind")
		return nil
	}
}

func (c *Checker) requireNonVoid(span *report.Span, t *types.Type, what string) {
	if t.IsVoid() {
		c.error(span, "%s may not be void", what)
	}
}

func (c *Checker) checkUnary(ex *ast.UnaryOp) *types.Type {
	t := c.checkExpr(ex.Operand)
	c.requireNonVoid(ex.Pos, t, "unary operand")
	return t
}

func (c *Checker) checkBinary(ex *ast.BinaryOp) *types.Type {
	lt := c.checkExpr(ex.Lhs)
	rt := c.checkExpr(ex.Rhs)
	c.requireNonVoid(ex.Pos, lt, "left operand")
	c.requireNonVoid(ex.Pos, rt, "right operand")

	switch {
	case arithOps[ex.Op]:
		return types.I64Type()
	case compareOps[ex.Op], logicalOps[ex.Op]:
		return types.BoolType()
	default:
		c.error(ex.Pos, "unhandled binary operator `%s`", ex.Op)
		return nil
	}
}

// checkAssign validates `lhs = rhs`: lhs must be a simple variable or an
// indexed aggregate access, and rhs must be structurally equal to lhs's
// type and non-void.
func (c *Checker) checkAssign(ex *ast.Assign) *types.Type {
	switch ex.Lhs.(type) {
	case *ast.Ident, *ast.Index:
	default:
		c.error(ex.Pos, "assignment target must be a variable or index expression")
	}

	lt := c.checkExpr(ex.Lhs)
	rt := c.checkExpr(ex.Rhs)

	c.requireNonVoid(ex.Pos, rt, "assigned value")
	if !lt.Equal(rt) {
		c.error(ex.Pos, "type mismatch: cannot assign `%s` to `%s`", rt, lt)
	}

	return lt
}

func (c *Checker) checkCall(ex *ast.Call) *types.Type {
	sig, ok := c.funcs[ex.Callee]
	if !ok {
		c.error(ex.Pos, "undefined function: `%s`", ex.Callee)
	}

	if len(ex.Args) != len(sig.params) {
		c.error(ex.Pos, "`%s` expects %d argument(s) but got %d", ex.Callee, len(sig.params), len(ex.Args))
	}

	for i, arg := range ex.Args {
		at := c.checkExpr(arg)
		if !at.Equal(sig.params[i]) {
			c.error(arg.Span(), "argument %d to `%s`: expected `%s`, got `%s`", i+1, ex.Callee, sig.params[i], at)
		}
	}

	return sig.ret
}

func (c *Checker) checkArrayLit(ex *ast.ArrayLit) *types.Type {
	if len(ex.Elems) == 0 {
		c.error(ex.Pos, "array literal may not be empty")
	}

	elemType := c.checkExpr(ex.Elems[0])
	for _, elem := range ex.Elems[1:] {
		t := c.checkExpr(elem)
		if !t.Equal(elemType) {
			c.error(elem.Span(), "array elements must share a type: expected `%s`, got `%s`", elemType, t)
		}
	}

	return types.ArrayOf(elemType, len(ex.Elems))
}

func (c *Checker) checkIndex(ex *ast.Index) *types.Type {
	baseType := c.checkExpr(ex.Base)
	if baseType.Kind != types.Array && baseType.Kind != types.Ptr {
		c.error(ex.Pos, "cannot index into `%s`", baseType)
	}

	idxType := c.checkExpr(ex.Idx)
	if !idxType.IsInteger() {
		c.error(ex.Idx.Span(), "array/pointer index must be `i32` or `i64`, got `%s`", idxType)
	}

	return baseType.Elem
}
