// Package sema implements Aurora's semantic analyzer: a two-pass walker
// that registers every function's signature (pre-seeded with the builtin
// table), then type-checks and annotates each function body against a
// lexical stack of name-to-binding scopes. Like the lexer and
// parser, the first error found anywhere aborts analysis: errors are raised
// with panic(report.Raise(...)) and recovered at Check's boundary.
package sema

import (
	"aurora/internal/ast"
	"aurora/internal/builtins"
	"aurora/internal/report"
	"aurora/internal/types"
)

// Checker walks a program, annotating its AST in place (Ident.ResolvedType,
// LetStmt.ResolvedType) and validating every statement and expression
// against the rules below. The scope stack it builds up is transient
// — it exists only for the duration of Check and is discarded once a
// function's body has been validated; the emitter later reconstructs its
// own local environment by walking the same (now-annotated) AST rather than
// sharing this one.
type Checker struct {
	funcs map[string]*signature

	scopes     []map[string]*binding
	loopDepth  int
	returnType *types.Type
}

// Check runs two-pass semantic analysis over prog: a signature pass
// followed by a body pass. It mutates prog's nodes in place and returns an
// error on the first
// violation found.
func Check(prog *ast.Program) (err error) {
	defer report.Catch(&err)

	c := &Checker{funcs: make(map[string]*signature)}
	c.registerBuiltins()
	c.signaturePass(prog)
	c.bodyPass(prog)

	return nil
}

func (c *Checker) registerBuiltins() {
	for _, b := range builtins.Table {
		c.funcs[b.Name] = &signature{params: b.Params, ret: b.Return}
	}
}

// signaturePass registers every user function's signature before any body
// is checked, so forward and mutual reference between functions works
//, and rejects void-typed parameters.
func (c *Checker) signaturePass(prog *ast.Program) {
	for _, fn := range prog.Funcs {
		if _, exists := c.funcs[fn.Name]; exists {
			c.error(fn.Pos, "function `%s` is already defined", fn.Name)
		}

		params := make([]*types.Type, len(fn.Params))
		for i, p := range fn.Params {
			if p.Type.IsVoid() {
				c.error(fn.Pos, "parameter `%s` of `%s` may not have type void", p.Name, fn.Name)
			}
			params[i] = p.Type
		}

		c.funcs[fn.Name] = &signature{params: params, ret: fn.ReturnType}
	}
}

// bodyPass type-checks every function body in its own fresh scope with its
// parameters bound.
func (c *Checker) bodyPass(prog *ast.Program) {
	for _, fn := range prog.Funcs {
		c.returnType = fn.ReturnType
		c.loopDepth = 0
		c.scopes = nil

		c.pushScope()
		for _, p := range fn.Params {
			c.declare(fn.Pos, p.Name, p.Type, false)
		}

		c.checkStmts(fn.Body)

		c.popScope()
	}
}

// -----------------------------------------------------------------------------
// Scope management

func (c *Checker) pushScope() {
	c.scopes = append(c.scopes, make(map[string]*binding))
}

func (c *Checker) popScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// declare binds name in the current (innermost) scope. Redeclaration in the
// same frame is an error; shadowing an outer frame's binding is allowed
//.
func (c *Checker) declare(span *report.Span, name string, typ *types.Type, unique bool) {
	top := c.scopes[len(c.scopes)-1]
	if _, exists := top[name]; exists {
		c.error(span, "`%s` is already declared in this scope", name)
	}
	top[name] = &binding{typ: typ, isUnique: unique}
}

// lookup searches scopes from innermost outward.
func (c *Checker) lookup(span *report.Span, name string) *binding {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if b, ok := c.scopes[i][name]; ok {
			return b
		}
	}
	c.error(span, "undefined variable: `%s`", name)
	return nil
}

func (c *Checker) error(span *report.Span, format string, args ...interface{}) {
	panic(report.Raise(span, format, args...))
}
