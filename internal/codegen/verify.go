package codegen

import (
	"aurora/internal/report"

	"github.com/llir/llvm/ir"
)

// verifyFunc is the emitter's last line of defense: every basic block in a
// finished function must end in exactly one terminator. llir/llvm's Block
// type structurally permits only a single Term field, so the one remaining
// failure mode is a block left with none — a dropped branch or return
// somewhere above, always a compiler bug rather than a source error.
func (e *Emitter) verifyFunc(fn *ir.Func) {
	for _, b := range fn.Blocks {
		if b.Term == nil {
			panic(report.Raise(nil, "internal compiler error: function `%s` has an unterminated basic block `%s`", fn.Name(), b.Name()))
		}
	}
}
