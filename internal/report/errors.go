package report

import "fmt"

// CompileError is a fatal error produced by any pipeline stage (lexer,
// parser, sema, or emitter). It is always raised with panic. Lexer and
// parser errors are recovered by Catch in parser.Parse, sema errors in
// sema.Check; codegen.Emit does not recover its internal errors. No stage
// attempts partial recovery once one of these has been raised.
type CompileError struct {
	Message string
	Span    *Span
}

func (e *CompileError) Error() string {
	return e.Message
}

// Raise builds a CompileError. Callers panic with the result immediately:
// `panic(report.Raise(span, "..."))`.
func Raise(span *Span, format string, args ...interface{}) *CompileError {
	return &CompileError{Message: fmt.Sprintf(format, args...), Span: span}
}

// Catch recovers a panicking CompileError and stores it through errp. Any
// other recovered value is re-panicked: it indicates a genuine compiler bug
// rather than an expected, source-induced failure, and should not be
// silently swallowed.
//
// Usage: `defer report.Catch(&err)` as the first deferred call in any
// exported stage entry point.
func Catch(errp *error) {
	if r := recover(); r != nil {
		if cerr, ok := r.(*CompileError); ok {
			*errp = cerr
			return
		}
		panic(r)
	}
}
