package sema

import (
	"testing"

	"aurora/internal/parser"
)

func checkSource(t *testing.T, src string) error {
	t.Helper()
	prog, err := parser.New(src).Parse()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return Check(prog)
}

func TestCheckAcceptsValidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "arithmetic and return",
			src:  `fn add(a: i64, b: i64) -> i64 { return a + b; }`,
		},
		{
			name: "mutual recursion via forward reference",
			src: `fn isEven(n: i64) -> bool { if (n == 0) { return true; } return isOdd(n - 1); }
			      fn isOdd(n: i64) -> bool { if (n == 0) { return false; } return isEven(n - 1); }`,
		},
		{
			name: "while loop with break and continue",
			src: `fn f() -> i64 {
				let x = 0;
				while (x < 10) {
					x += 1;
					if (x == 5) { continue; }
					if (x == 9) { break; }
				}
				return x;
			}`,
		},
		{
			name: "array literal and indexing",
			src: `fn f() -> i32 {
				let xs = [1, 2, 3];
				return xs[0];
			}`,
		},
		{
			name: "unique binding with defer",
			src: `fn f() -> void {
				let unique<ptr<i64>> p: ptr<i64> = malloc(8);
				defer free(p);
			}`,
		},
		{
			name: "shadowing across nested scopes",
			src: `fn f(x: i64) -> i64 {
				if (x > 0) {
					let x = 99;
					return x;
				}
				return x;
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkSource(t, tt.src); err != nil {
				t.Errorf("unexpected check error: %v", err)
			}
		})
	}
}

func TestCheckRejectsInvalidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "undefined variable",
			src:  `fn f() -> i32 { return y; }`,
		},
		{
			name: "undefined function",
			src:  `fn f() -> i32 { return g(1); }`,
		},
		{
			name: "duplicate function name",
			src:  `fn f() -> i32 { return 0; } fn f() -> i32 { return 1; }`,
		},
		{
			name: "redeclaration in same scope",
			src:  `fn f() -> i32 { let x = 1; let x = 2; return x; }`,
		},
		{
			name: "type mismatch on let annotation",
			src:  `fn f() -> i32 { let x: bool = 1; return 0; }`,
		},
		{
			name: "void parameter",
			src:  `fn f(x: void) -> i32 { return 0; }`,
		},
		{
			name: "void let binding",
			src:  `fn g() -> void { return; } fn f() -> i32 { let x = g(); return 0; }`,
		},
		{
			name: "wrong return type",
			src:  `fn f() -> bool { return 1; }`,
		},
		{
			name: "missing return value",
			src:  `fn f() -> i32 { return; }`,
		},
		{
			name: "value returned from void function",
			src:  `fn f() -> void { return 1; }`,
		},
		{
			name: "break outside loop",
			src:  `fn f() -> i32 { break; return 0; }`,
		},
		{
			name: "continue outside loop",
			src:  `fn f() -> i32 { continue; return 0; }`,
		},
		{
			name: "wrong argument count",
			src:  `fn g(a: i32) -> i32 { return a; } fn f() -> i32 { return g(1, 2); }`,
		},
		{
			name: "wrong argument type",
			src:  `fn g(a: i32) -> i32 { return a; } fn f() -> i32 { return g(true); }`,
		},
		{
			name: "indexing a non-aggregate",
			src:  `fn f() -> i32 { let x = 1; return x[0]; }`,
		},
		{
			name: "mismatched array element types",
			src:  `fn f() -> void { let xs = [1, true]; }`,
		},
		{
			name: "empty array literal",
			src:  `fn f() -> void { let xs = []; }`,
		},
		{
			name: "assignment type mismatch",
			src:  `fn f() -> void { let x = 1; x = true; }`,
		},
		{
			name: "if condition not boolean-bearing void",
			src:  `fn g() -> void { return; } fn f() -> void { if (g()) {} }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkSource(t, tt.src); err == nil {
				t.Error("expected a check error, got nil")
			}
		})
	}
}
