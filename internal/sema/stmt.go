package sema

import "aurora/internal/ast"

// checkStmts type-checks a statement list in the current scope, without
// pushing a new frame — used for a function's top-level body, where the
// frame was already pushed (and pre-populated with parameters) by the
// caller.
func (c *Checker) checkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

// checkBlock type-checks a nested block (an if/while body) in its own
// scope.
func (c *Checker) checkBlock(stmts []ast.Stmt) {
	c.pushScope()
	c.checkStmts(stmts)
	c.popScope()
}

func (c *Checker) checkStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.LetStmt:
		c.checkLet(st)
	case *ast.ExprStmt:
		c.checkExpr(st.X)
	case *ast.ReturnStmt:
		c.checkReturn(st)
	case *ast.IfStmt:
		c.checkIf(st)
	case *ast.WhileStmt:
		c.checkWhile(st)
	case *ast.DeferStmt:
		c.checkExpr(st.X)
	case *ast.BreakStmt:
		if c.loopDepth == 0 {
			c.error(st.Pos, "break statement outside of loop")
		}
	case *ast.ContinueStmt:
		if c.loopDepth == 0 {
			c.error(st.Pos, "continue statement outside of loop")
		}
	default:
		c.error(s.Span(), "unhandled statement kind")
	}
}

// checkLet resolves the effective type of a let binding — the annotation if
// present, matched against the initializer; the initializer's inferred type
// otherwise — rejects void, and declares the name in the current scope.
// `unique<T>` bindings are checked identically to a plain let: the cleanup
// obligation they impose is not tracked here but rederived by the emitter
// directly from LetStmt.Unique when it walks the same, now-annotated tree.
func (c *Checker) checkLet(st *ast.LetStmt) {
	initType := c.checkExpr(st.Init)

	resolved := initType
	if st.Annot != nil {
		if !st.Annot.Equal(initType) {
			c.error(st.Pos, "type mismatch: `%s` declared as `%s` but initializer has type `%s`", st.Name, st.Annot, initType)
		}
		resolved = st.Annot
	}

	if resolved.IsVoid() {
		c.error(st.Pos, "variable `%s` may not have type void", st.Name)
	}

	st.ResolvedType = resolved
	c.declare(st.Pos, st.Name, resolved, st.Unique)
}

func (c *Checker) checkReturn(st *ast.ReturnStmt) {
	if c.returnType.IsVoid() {
		if st.Value != nil {
			c.error(st.Pos, "function returning void must not return a value")
		}
		return
	}

	if st.Value == nil {
		c.error(st.Pos, "missing return value: function returns `%s`", c.returnType)
	}

	vt := c.checkExpr(st.Value)
	if !vt.Equal(c.returnType) {
		c.error(st.Pos, "type mismatch: function returns `%s` but this statement returns `%s`", c.returnType, vt)
	}
}

func (c *Checker) checkIf(st *ast.IfStmt) {
	cond := c.checkExpr(st.Cond)
	if cond.IsVoid() {
		c.error(st.Cond.Span(), "if condition may not be void")
	}

	c.checkBlock(st.Then)
	if st.Else != nil {
		c.checkBlock(st.Else)
	}
}

func (c *Checker) checkWhile(st *ast.WhileStmt) {
	cond := c.checkExpr(st.Cond)
	if cond.IsVoid() {
		c.error(st.Cond.Span(), "while condition may not be void")
	}

	c.loopDepth++
	c.checkBlock(st.Body)
	c.loopDepth--
}
