// Package ast defines Aurora's abstract syntax tree: a tree of tagged-union
// expression and statement nodes exclusively owned by their parent, rooted
// at a Program. Each parent node owns its children outright;
// the tree is destroyed as a unit with no shared ownership and no cycles.
package ast

import (
	"aurora/internal/report"
	"aurora/internal/types"
)

// Expr is implemented by every expression node.
type Expr interface {
	Span() *report.Span
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Span() *report.Span
}

// -----------------------------------------------------------------------------
// Expressions

// IntLit is an integer literal.
type IntLit struct {
	Value int64
	Pos   *report.Span
}

func (e *IntLit) Span() *report.Span { return e.Pos }

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
	Pos   *report.Span
}

func (e *BoolLit) Span() *report.Span { return e.Pos }

// Ident is a variable reference by name.
type Ident struct {
	Name string
	Pos  *report.Span

	// ResolvedType is filled in by sema once the identifier's binding is
	// resolved; nil before that.
	ResolvedType *types.Type
}

func (e *Ident) Span() *report.Span { return e.Pos }

// UnaryOp applies a prefix unary operator (`-`, `!`) to Operand.
type UnaryOp struct {
	Op      string
	Operand Expr
	Pos     *report.Span
}

func (e *UnaryOp) Span() *report.Span { return e.Pos }

// BinaryOp applies a binary operator to Lhs and Rhs. Compound-assignment
// forms never reach this node: the parser desugars `x op= e` into
// `Assign{Lhs: x, Rhs: BinaryOp{op, x, e}}` before the AST leaves the
// parser.
type BinaryOp struct {
	Op       string
	Lhs, Rhs Expr
	Pos      *report.Span
}

func (e *BinaryOp) Span() *report.Span { return e.Pos }

// Assign is `lhs = rhs`; only a simple variable or an index expression is a
// legal Lhs.
type Assign struct {
	Lhs, Rhs Expr
	Pos      *report.Span
}

func (e *Assign) Span() *report.Span { return e.Pos }

// Call is a function call: the callee is referenced by name, never by an
// arbitrary expression (Aurora has no first-class functions).
type Call struct {
	Callee string
	Args   []Expr
	Pos    *report.Span
}

func (e *Call) Span() *report.Span { return e.Pos }

// ArrayLit is an ordered array literal `[e, e, ...]`.
type ArrayLit struct {
	Elems []Expr
	Pos   *report.Span
}

func (e *ArrayLit) Span() *report.Span { return e.Pos }

// Index is `base[idx]`: base must check to array<_,_> or ptr<_>.
type Index struct {
	Base  Expr
	Idx   Expr
	Pos   *report.Span
}

func (e *Index) Span() *report.Span { return e.Pos }

// -----------------------------------------------------------------------------
// Statements

// LetStmt is `let [unique<T>] name [: T] = expr;`.
type LetStmt struct {
	Name   string
	Annot  *types.Type // nil if the type was not annotated
	Init   Expr
	Unique bool
	Pos    *report.Span

	// ResolvedType is filled in by sema: the effective type of Name, after
	// annotation/inference resolution.
	ResolvedType *types.Type
}

func (s *LetStmt) Span() *report.Span { return s.Pos }

// ExprStmt is a bare expression used for its side effects.
type ExprStmt struct {
	X   Expr
	Pos *report.Span
}

func (s *ExprStmt) Span() *report.Span { return s.Pos }

// ReturnStmt is `return [expr];`.
type ReturnStmt struct {
	Value Expr // nil if no value was given
	Pos   *report.Span
}

func (s *ReturnStmt) Span() *report.Span { return s.Pos }

// IfStmt is `if (cond) { then } [else { else }]`. Else is nil if absent.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
	Pos  *report.Span
}

func (s *IfStmt) Span() *report.Span { return s.Pos }

// WhileStmt is `while (cond) { body }`.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	Pos  *report.Span
}

func (s *WhileStmt) Span() *report.Span { return s.Pos }

// DeferStmt is `defer expr;`.
type DeferStmt struct {
	X   Expr
	Pos *report.Span
}

func (s *DeferStmt) Span() *report.Span { return s.Pos }

// BreakStmt is `break;`.
type BreakStmt struct {
	Pos *report.Span
}

func (s *BreakStmt) Span() *report.Span { return s.Pos }

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Pos *report.Span
}

func (s *ContinueStmt) Span() *report.Span { return s.Pos }

// -----------------------------------------------------------------------------
// Top level

// Param is a single function parameter.
type Param struct {
	Name string
	Type *types.Type
}

// Func is a function definition.
type Func struct {
	Name       string
	Params     []Param
	ReturnType *types.Type
	Body       []Stmt
	Pos        *report.Span
}

// Program is the root of the AST: an ordered list of function definitions.
type Program struct {
	Funcs []*Func
}
