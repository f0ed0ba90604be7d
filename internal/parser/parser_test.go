package parser

import (
	"testing"

	"aurora/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := New(src).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return prog
}

func TestParseMinimalFunc(t *testing.T) {
	prog := mustParse(t, `fn main() -> void {}`)
	if len(prog.Funcs) != 1 {
		t.Fatalf("got %d funcs, want 1", len(prog.Funcs))
	}
	fn := prog.Funcs[0]
	if fn.Name != "main" {
		t.Errorf("name = %q, want main", fn.Name)
	}
	if len(fn.Params) != 0 {
		t.Errorf("got %d params, want 0", len(fn.Params))
	}
	if fn.ReturnType.String() != "void" {
		t.Errorf("return type = %s, want void", fn.ReturnType)
	}
}

func TestParseParamsAndArrayReturn(t *testing.T) {
	prog := mustParse(t, `fn f(a: i32, b: ptr<i64>) -> i32[4] { return a; }`)
	fn := prog.Funcs[0]
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if fn.Params[0].Type.String() != "i32" {
		t.Errorf("param 0 type = %s, want i32", fn.Params[0].Type)
	}
	if fn.Params[1].Type.String() != "ptr<i64>" {
		t.Errorf("param 1 type = %s, want ptr<i64>", fn.Params[1].Type)
	}
	if fn.ReturnType.String() != "array<i32, 4>" {
		t.Errorf("return type = %s, want array<i32, 4>", fn.ReturnType)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	prog := mustParse(t, `fn f() -> i32 { return 1 + 2 * 3; }`)
	ret := prog.Funcs[0].Body[0].(*ast.ReturnStmt)
	top := ret.Value.(*ast.BinaryOp)
	if top.Op != "+" {
		t.Fatalf("top operator = %s, want +", top.Op)
	}
	rhs := top.Rhs.(*ast.BinaryOp)
	if rhs.Op != "*" {
		t.Errorf("rhs operator = %s, want *", rhs.Op)
	}
}

func TestAssignmentRightAssociative(t *testing.T) {
	prog := mustParse(t, `fn f() -> i32 { a = b = c; return 0; }`)
	stmt := prog.Funcs[0].Body[0].(*ast.ExprStmt)
	outer := stmt.X.(*ast.Assign)
	if _, ok := outer.Lhs.(*ast.Ident); !ok {
		t.Fatalf("outer lhs is not an Ident: %T", outer.Lhs)
	}
	inner, ok := outer.Rhs.(*ast.Assign)
	if !ok {
		t.Fatalf("outer rhs is not an Assign (not right-associative): %T", outer.Rhs)
	}
	if inner.Lhs.(*ast.Ident).Name != "b" {
		t.Errorf("inner lhs = %v, want b", inner.Lhs)
	}
}

func TestCompoundAssignDesugars(t *testing.T) {
	prog := mustParse(t, `fn f() -> i32 { x += 1; return 0; }`)
	stmt := prog.Funcs[0].Body[0].(*ast.ExprStmt)
	assign := stmt.X.(*ast.Assign)
	if _, ok := assign.Lhs.(*ast.Ident); !ok {
		t.Fatalf("lhs is not an Ident: %T", assign.Lhs)
	}
	rhs, ok := assign.Rhs.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("rhs is not a BinaryOp: %T", assign.Rhs)
	}
	if rhs.Op != "+" {
		t.Errorf("desugared operator = %s, want +", rhs.Op)
	}
}

func TestCompoundAssignRejectsNonSimpleTarget(t *testing.T) {
	_, err := New(`fn f() -> i32 { a[0] += 1; return 0; }`).Parse()
	if err == nil {
		t.Fatal("expected a parse error for a compound-assign index target")
	}
}

func TestCallThenIndexPostfixChain(t *testing.T) {
	prog := mustParse(t, `fn f() -> i32 { return a()[0]; }`)
	ret := prog.Funcs[0].Body[0].(*ast.ReturnStmt)
	top, ok := ret.Value.(*ast.Index)
	if !ok {
		t.Fatalf("top of postfix chain = %T, want *ast.Index", ret.Value)
	}
	if _, ok := top.Base.(*ast.Call); !ok {
		t.Fatalf("index base = %T, want *ast.Call", top.Base)
	}
}

func TestIndexedCallTargetRejected(t *testing.T) {
	// A call's callee must be a bare function name; `a[0]()` first builds
	// an Index node for `a[0]` and then hands that to the call trailer,
	// which only accepts an Ident.
	_, err := New(`fn f() -> i32 { return a[0](); }`).Parse()
	if err == nil {
		t.Fatal("expected a parse error: call target must be a function name")
	}
}

func TestPtrToVoidRejected(t *testing.T) {
	_, err := New(`fn f(p: ptr<void>) -> void {}`).Parse()
	if err == nil {
		t.Fatal("expected a parse error: ptr<void> is not a valid type")
	}
}

func TestIfElseAndWhile(t *testing.T) {
	src := `fn f() -> i32 {
		if (true) { return 1; } else { return 2; }
		while (false) { break; }
		return 0;
	}`
	prog := mustParse(t, src)
	body := prog.Funcs[0].Body
	ifStmt, ok := body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("body[0] = %T, want *ast.IfStmt", body[0])
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Errorf("then/else lengths = %d/%d, want 1/1", len(ifStmt.Then), len(ifStmt.Else))
	}
	if _, ok := body[1].(*ast.WhileStmt); !ok {
		t.Fatalf("body[1] = %T, want *ast.WhileStmt", body[1])
	}
}

func TestLetWithUniqueAndAnnotation(t *testing.T) {
	prog := mustParse(t, `fn f() -> void {
		let unique<ptr<i64>> p: ptr<i64> = malloc(8);
	}`)
	let := prog.Funcs[0].Body[0].(*ast.LetStmt)
	if !let.Unique {
		t.Error("Unique = false, want true")
	}
	if let.Annot.String() != "ptr<i64>" {
		t.Errorf("annotation = %s, want ptr<i64>", let.Annot)
	}
}

func TestArrayLiteral(t *testing.T) {
	prog := mustParse(t, `fn f() -> void { let xs = [1, 2, 3]; }`)
	let := prog.Funcs[0].Body[0].(*ast.LetStmt)
	lit, ok := let.Init.(*ast.ArrayLit)
	if !ok {
		t.Fatalf("init = %T, want *ast.ArrayLit", let.Init)
	}
	if len(lit.Elems) != 3 {
		t.Errorf("got %d elements, want 3", len(lit.Elems))
	}
}

func TestSyntaxErrorReported(t *testing.T) {
	_, err := New(`fn f( -> i32 {}`).Parse()
	if err == nil {
		t.Fatal("expected a parse error for a malformed parameter list")
	}
}
