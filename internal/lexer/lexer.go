// Package lexer tokenizes Aurora source text. It is a streaming tokenizer
// over an immutable in-memory buffer: it tracks (index, line, column)
// explicitly, skips whitespace and comments, and recognizes identifiers,
// keywords, integer literals, and punctuation/operators with longest-match
// preference.
package lexer

import (
	"strings"
	"unicode"

	"aurora/internal/report"
	"aurora/internal/token"
)

// Lexer tokenizes a single source buffer.
type Lexer struct {
	src                 []rune
	pos                 int
	line, col           int
	startLine, startCol int
}

// New creates a new Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// NextToken returns the next token in the input, or the EOF token once the
// input is exhausted. A lexer error is raised (panic(report.Raise(...))) on
// an unrecognized input character.
func (l *Lexer) NextToken() *token.Token {
	for {
		c, ok := l.peek()
		if !ok {
			l.mark()
			return l.makeToken(token.EOF, "")
		}

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f':
			l.eat()
		case c == '\n':
			l.eat()
		case c == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
		case c == '/' && l.peekAt(1) == '*':
			l.skipBlockComment()
		case isDigit(c):
			return l.lexInt()
		case isIdentStart(c):
			return l.lexIdentOrKeyword()
		default:
			return l.lexOperator()
		}
	}
}

// -----------------------------------------------------------------------------

func (l *Lexer) skipLineComment() {
	for {
		c, ok := l.peek()
		if !ok || c == '\n' {
			return
		}
		l.eat()
	}
}

func (l *Lexer) skipBlockComment() {
	l.eat() // '/'
	l.eat() // '*'
	for {
		c, ok := l.peek()
		if !ok {
			l.mark()
			panic(report.Raise(l.span(), "unterminated block comment"))
		}
		if c == '*' && l.peekAt(1) == '/' {
			l.eat()
			l.eat()
			return
		}
		l.eat()
	}
}

func (l *Lexer) lexInt() *token.Token {
	l.mark()
	var b strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !isDigit(c) {
			break
		}
		b.WriteRune(c)
		l.eat()
	}

	text := b.String()
	value, err := parseI64(text)
	if err != nil {
		panic(report.Raise(l.span(), "malformed integer literal: `%s`", text))
	}

	tok := l.makeToken(token.INTLIT, text)
	tok.IVal = value
	return tok
}

func (l *Lexer) lexIdentOrKeyword() *token.Token {
	l.mark()
	var b strings.Builder
	for {
		c, ok := l.peek()
		if !ok || !(isIdentStart(c) || isDigit(c)) {
			break
		}
		b.WriteRune(c)
		l.eat()
	}

	text := b.String()
	if kind, ok := token.Keywords[text]; ok {
		return l.makeToken(kind, text)
	}
	return l.makeToken(token.IDENT, text)
}

// symbolPatterns maps every recognized punctuation/operator spelling to its
// token kind. Longest match wins: lexOperator always tries the two-rune
// spelling before falling back to the one-rune spelling.
var symbolPatterns = map[string]token.Kind{
	"==": token.EQ, "!=": token.NEQ, "<=": token.LTEQ, ">=": token.GTEQ,
	"->": token.ARROW, "&&": token.AND, "||": token.OR,
	"+=": token.PLUS_ASSIGN, "-=": token.MINUS_ASSIGN, "*=": token.STAR_ASSIGN,
	"/=": token.SLASH_ASSIGN, "%=": token.PERCENT_ASSIGN,

	"+": token.PLUS, "-": token.MINUS, "*": token.STAR, "/": token.SLASH, "%": token.PERCENT,
	"<": token.LT, ">": token.GT, "!": token.NOT, "=": token.ASSIGN,
	"(": token.LPAREN, ")": token.RPAREN, "{": token.LBRACE, "}": token.RBRACE,
	"[": token.LBRACKET, "]": token.RBRACKET,
	":": token.COLON, ";": token.SEMI, ",": token.COMMA,
}

func (l *Lexer) lexOperator() *token.Token {
	l.mark()
	c, _ := l.peek()

	if two, ok := symbolPatterns[string(c)+string(l.peekAt(1))]; ok {
		l.eat()
		l.eat()
		return l.makeToken(two, "")
	}

	if one, ok := symbolPatterns[string(c)]; ok {
		l.eat()
		return l.makeToken(one, "")
	}

	l.eat()
	panic(report.Raise(l.span(), "unrecognized character: `%c`", c))
}

// -----------------------------------------------------------------------------

func (l *Lexer) mark() {
	l.startLine, l.startCol = l.line, l.col
}

func (l *Lexer) makeToken(kind token.Kind, value string) *token.Token {
	return &token.Token{Kind: kind, Value: value, Span: l.span()}
}

func (l *Lexer) span() *report.Span {
	return &report.Span{StartLine: l.startLine, StartCol: l.startCol, EndLine: l.line, EndCol: l.col}
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *Lexer) peekAt(offset int) rune {
	idx := l.pos + offset
	if idx >= len(l.src) {
		return 0
	}
	return l.src[idx]
}

func (l *Lexer) eat() {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 0
	} else if c == '\t' {
		l.col += 4
	} else {
		l.col++
	}
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func parseI64(s string) (int64, error) {
	var v int64
	for _, c := range s {
		v = v*10 + int64(c-'0')
	}
	return v, nil
}
