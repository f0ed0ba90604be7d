package types

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Type
		want bool
	}{
		{"same primitive", I32Type(), I32Type(), true},
		{"different primitive", I32Type(), I64Type(), false},
		{"equal pointers", PtrTo(I64Type()), PtrTo(I64Type()), true},
		{"pointers to different elements", PtrTo(I64Type()), PtrTo(BoolType()), false},
		{"equal arrays", ArrayOf(I32Type(), 4), ArrayOf(I32Type(), 4), true},
		{"arrays differing only in length", ArrayOf(I32Type(), 4), ArrayOf(I32Type(), 8), false},
		{"array vs pointer of same element", ArrayOf(I32Type(), 4), PtrTo(I32Type()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := PtrTo(ArrayOf(I32Type(), 3))
	clone := orig.Clone()

	if !orig.Equal(clone) {
		t.Fatalf("clone is not structurally equal to original")
	}

	clone.Elem.N = 99
	if orig.Elem.N == 99 {
		t.Error("mutating the clone's nested element mutated the original")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		typ  *Type
		want string
	}{
		{I32Type(), "i32"},
		{I64Type(), "i64"},
		{BoolType(), "bool"},
		{VoidType(), "void"},
		{PtrTo(I64Type()), "ptr<i64>"},
		{ArrayOf(BoolType(), 2), "array<bool, 2>"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsVoidAndIsInteger(t *testing.T) {
	if !VoidType().IsVoid() {
		t.Error("VoidType().IsVoid() = false")
	}
	if I32Type().IsVoid() {
		t.Error("I32Type().IsVoid() = true")
	}
	if !I32Type().IsInteger() || !I64Type().IsInteger() {
		t.Error("i32/i64 should report IsInteger() = true")
	}
	if BoolType().IsInteger() {
		t.Error("bool should report IsInteger() = false")
	}
}
