package report

// Span represents a half-open range of source text: the position of the
// first rune in the span and the position one past the last rune. Lines and
// columns are tracked 0-indexed internally and rendered 1-indexed.
type Span struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// Over returns a new span that covers both the start of a and the end of b.
func Over(a, b *Span) *Span {
	return &Span{
		StartLine: a.StartLine,
		StartCol:  a.StartCol,
		EndLine:   b.EndLine,
		EndCol:    b.EndCol,
	}
}
