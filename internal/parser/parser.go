// Package parser implements Aurora's recursive-descent parser: a single
// token of lookahead and an explicit precedence ladder for expressions
//. Like the lexer and semantic analyzer, a syntax error is
// raised with panic(report.Raise(...)) and recovered at Parse's boundary —
// there is no partial recovery, matching the compiler's first-error-is-fatal
// policy.
package parser

import (
	"aurora/internal/ast"
	"aurora/internal/lexer"
	"aurora/internal/report"
	"aurora/internal/token"
	"aurora/internal/types"
)

// Parser holds the token cursor over a single source file.
type Parser struct {
	lex      *lexer.Lexer
	tok      *token.Token
	prevSpan *report.Span
}

// New creates a Parser over src.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// Parse parses a complete program: a sequence of function definitions until
// EOF. Any syntax error aborts parsing and is returned as
// err; prog is nil in that case.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer report.Catch(&err)

	p.advance()

	program := &ast.Program{}
	for p.tok.Kind != token.EOF {
		program.Funcs = append(program.Funcs, p.parseFunc())
	}

	return program, nil
}

// -----------------------------------------------------------------------------
// Token cursor helpers

func (p *Parser) advance() {
	if p.tok != nil {
		p.prevSpan = p.tok.Span
	}
	p.tok = p.lex.NextToken()
}

func (p *Parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// expect asserts the current token is of kind and advances past it,
// returning the consumed token. Any mismatch is a fatal parse error naming
// what was expected.
func (p *Parser) expect(kind token.Kind) *token.Token {
	if !p.at(kind) {
		p.fail("expected `%s` but found `%s`", kind, p.tok)
	}
	tok := p.tok
	p.advance()
	return tok
}

func (p *Parser) fail(format string, args ...interface{}) {
	panic(report.Raise(p.tok.Span, format, args...))
}

// -----------------------------------------------------------------------------
// Functions

// func = `fn` IDENT `(` [params] `)` `->` type `{` {stmt} `}`
func (p *Parser) parseFunc() *ast.Func {
	start := p.tok.Span
	p.expect(token.FN)
	name := p.expect(token.IDENT).Value

	p.expect(token.LPAREN)
	var params []ast.Param
	if !p.at(token.RPAREN) {
		for {
			pname := p.expect(token.IDENT).Value
			p.expect(token.COLON)
			ptype := p.parseType()
			params = append(params, ast.Param{Name: pname, Type: ptype})
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	p.expect(token.RPAREN)

	p.expect(token.ARROW)
	retType := p.parseType()

	body := p.parseBlock()

	return &ast.Func{
		Name:       name,
		Params:     params,
		ReturnType: retType,
		Body:       body,
		Pos:        report.Over(start, p.prevSpan),
	}
}

// -----------------------------------------------------------------------------
// Types

// type = base_type | `ptr` `<` type `>` ; followed optionally by `[` INTLIT `]`
// which converts the preceding parse into array<T,N>.
func (p *Parser) parseType() *types.Type {
	var base *types.Type

	switch p.tok.Kind {
	case token.I32:
		p.advance()
		base = types.I32Type()
	case token.I64:
		p.advance()
		base = types.I64Type()
	case token.BOOL:
		p.advance()
		base = types.BoolType()
	case token.VOID:
		p.advance()
		base = types.VoidType()
	case token.PTR:
		p.advance()
		p.expect(token.LT)
		elem := p.parseType()
		p.expect(token.GT)
		if elem.IsVoid() {
			p.fail("ptr<void> is not a valid type; pointers cannot point to void")
		}
		base = types.PtrTo(elem)
	default:
		p.fail("expected a type but found `%s`", p.tok)
		return nil
	}

	if p.at(token.LBRACKET) {
		p.advance()
		n := p.expect(token.INTLIT).IVal
		p.expect(token.RBRACKET)
		base = types.ArrayOf(base, int(n))
	}

	return base
}

// unique<T> is syntactic only: T is parsed but unused as the bound
// variable's effective type, which instead comes from the annotation or
// initializer as usual.
func (p *Parser) parseUniqueTypeTag() {
	p.expect(token.LT)
	p.parseType()
	p.expect(token.GT)
}
