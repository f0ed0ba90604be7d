package parser

import (
	"aurora/internal/ast"
	"aurora/internal/report"
	"aurora/internal/token"
)

// Precedence ladder (lowest to highest):
//   1. assignment (right-assoc)          parseExpr / parseAssign
//   2. logical-or                        parseLogicalOr
//   3. logical-and                       parseLogicalAnd
//   4. equality                          parseEquality
//   5. relational                        parseRelational
//   6. additive                          parseAdditive
//   7. multiplicative                    parseMultiplicative
//   8. unary prefix                      parseUnary
//   9. postfix (call, index)             parsePostfix
//  10. primary                           parsePrimary

// expr = assign_expr
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssign()
}

// assign_expr = logical_or [('=' | '+=' | '-=' | '*=' | '/=' | '%=') assign_expr]
//
// Assignment is right-associative: `a = b = c` parses as `a = (b = c)`.
// Compound assignment is desugared here, at parse time, into a plain
// assignment of a binary-op expression — the checker and emitter
// downstream only ever see `Assign{Lhs, BinaryOp{op, Lhs, Rhs}}`. This is
// permitted only when the LHS is a simple variable reference; any other
// LHS with a compound operator is a parse error, a deliberate
// conservative restriction.
var compoundOps = map[token.Kind]string{
	token.PLUS_ASSIGN:    "+",
	token.MINUS_ASSIGN:   "-",
	token.STAR_ASSIGN:    "*",
	token.SLASH_ASSIGN:   "/",
	token.PERCENT_ASSIGN: "%",
}

func (p *Parser) parseAssign() ast.Expr {
	lhs := p.parseLogicalOr()

	if p.at(token.ASSIGN) {
		p.advance()
		rhs := p.parseAssign()
		return &ast.Assign{Lhs: lhs, Rhs: rhs, Pos: report.Over(lhs.Span(), rhs.Span())}
	}

	if op, ok := compoundOps[p.tok.Kind]; ok {
		if _, simple := lhs.(*ast.Ident); !simple {
			p.fail("compound assignment target must be a simple variable")
		}
		opSpan := p.tok.Span
		p.advance()
		rhs := p.parseAssign()
		combined := &ast.BinaryOp{Op: op, Lhs: lhs, Rhs: rhs, Pos: report.Over(opSpan, rhs.Span())}
		return &ast.Assign{Lhs: lhs, Rhs: combined, Pos: report.Over(lhs.Span(), rhs.Span())}
	}

	return lhs
}

// logical_or = logical_and {'||' logical_and}
func (p *Parser) parseLogicalOr() ast.Expr {
	lhs := p.parseLogicalAnd()
	for p.at(token.OR) {
		p.advance()
		rhs := p.parseLogicalAnd()
		lhs = &ast.BinaryOp{Op: "||", Lhs: lhs, Rhs: rhs, Pos: report.Over(lhs.Span(), rhs.Span())}
	}
	return lhs
}

// logical_and = equality {'&&' equality}
func (p *Parser) parseLogicalAnd() ast.Expr {
	lhs := p.parseEquality()
	for p.at(token.AND) {
		p.advance()
		rhs := p.parseEquality()
		lhs = &ast.BinaryOp{Op: "&&", Lhs: lhs, Rhs: rhs, Pos: report.Over(lhs.Span(), rhs.Span())}
	}
	return lhs
}

// equality = relational {('==' | '!=') relational}
func (p *Parser) parseEquality() ast.Expr {
	lhs := p.parseRelational()
	for p.atAny(token.EQ, token.NEQ) {
		op := opText(p.tok.Kind)
		p.advance()
		rhs := p.parseRelational()
		lhs = &ast.BinaryOp{Op: op, Lhs: lhs, Rhs: rhs, Pos: report.Over(lhs.Span(), rhs.Span())}
	}
	return lhs
}

// relational = additive {('<' | '<=' | '>' | '>=') additive}
func (p *Parser) parseRelational() ast.Expr {
	lhs := p.parseAdditive()
	for p.atAny(token.LT, token.LTEQ, token.GT, token.GTEQ) {
		op := opText(p.tok.Kind)
		p.advance()
		rhs := p.parseAdditive()
		lhs = &ast.BinaryOp{Op: op, Lhs: lhs, Rhs: rhs, Pos: report.Over(lhs.Span(), rhs.Span())}
	}
	return lhs
}

// additive = multiplicative {('+' | '-') multiplicative}
func (p *Parser) parseAdditive() ast.Expr {
	lhs := p.parseMultiplicative()
	for p.atAny(token.PLUS, token.MINUS) {
		op := opText(p.tok.Kind)
		p.advance()
		rhs := p.parseMultiplicative()
		lhs = &ast.BinaryOp{Op: op, Lhs: lhs, Rhs: rhs, Pos: report.Over(lhs.Span(), rhs.Span())}
	}
	return lhs
}

// multiplicative = unary {('*' | '/' | '%') unary}
func (p *Parser) parseMultiplicative() ast.Expr {
	lhs := p.parseUnary()
	for p.atAny(token.STAR, token.SLASH, token.PERCENT) {
		op := opText(p.tok.Kind)
		p.advance()
		rhs := p.parseUnary()
		lhs = &ast.BinaryOp{Op: op, Lhs: lhs, Rhs: rhs, Pos: report.Over(lhs.Span(), rhs.Span())}
	}
	return lhs
}

// unary = ('-' | '!') unary | postfix
func (p *Parser) parseUnary() ast.Expr {
	if p.atAny(token.MINUS, token.NOT) {
		op := opText(p.tok.Kind)
		start := p.tok.Span
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryOp{Op: op, Operand: operand, Pos: report.Over(start, operand.Span())}
	}
	return p.parsePostfix()
}

// postfix = primary {call_trailer | index_trailer}
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for {
		switch {
		case p.at(token.LPAREN):
			expr = p.parseCallTrailer(expr)
		case p.at(token.LBRACKET):
			expr = p.parseIndexTrailer(expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallTrailer(callee ast.Expr) ast.Expr {
	ident, ok := callee.(*ast.Ident)
	if !ok {
		p.fail("call target must be a function name")
	}

	p.advance() // '('
	var args []ast.Expr
	if !p.at(token.RPAREN) {
		for {
			args = append(args, p.parseExpr())
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	end := p.expect(token.RPAREN)

	return &ast.Call{Callee: ident.Name, Args: args, Pos: report.Over(ident.Pos, end.Span)}
}

func (p *Parser) parseIndexTrailer(base ast.Expr) ast.Expr {
	p.advance() // '['
	idx := p.parseExpr()
	end := p.expect(token.RBRACKET)
	return &ast.Index{Base: base, Idx: idx, Pos: report.Over(base.Span(), end.Span)}
}

// primary = INTLIT | 'true' | 'false' | IDENT | '(' expr ')' | '[' expr {',' expr} ']'
func (p *Parser) parsePrimary() ast.Expr {
	start := p.tok

	switch p.tok.Kind {
	case token.INTLIT:
		p.advance()
		return &ast.IntLit{Value: start.IVal, Pos: start.Span}
	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Pos: start.Span}
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Pos: start.Span}
	case token.IDENT:
		p.advance()
		return &ast.Ident{Name: start.Value, Pos: start.Span}
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return inner
	case token.LBRACKET:
		return p.parseArrayLit()
	default:
		p.fail("expected an expression but found `%s`", p.tok)
		return nil
	}
}

// array_lit = '[' [expr {',' expr}] ']'
func (p *Parser) parseArrayLit() ast.Expr {
	start := p.tok.Span
	p.advance() // '['

	var elems []ast.Expr
	if !p.at(token.RBRACKET) {
		for {
			elems = append(elems, p.parseExpr())
			if p.at(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	end := p.expect(token.RBRACKET)

	return &ast.ArrayLit{Elems: elems, Pos: report.Over(start, end.Span)}
}

func opText(k token.Kind) string {
	switch k {
	case token.EQ:
		return "=="
	case token.NEQ:
		return "!="
	case token.LT:
		return "<"
	case token.LTEQ:
		return "<="
	case token.GT:
		return ">"
	case token.GTEQ:
		return ">="
	case token.PLUS:
		return "+"
	case token.MINUS:
		return "-"
	case token.STAR:
		return "*"
	case token.SLASH:
		return "/"
	case token.PERCENT:
		return "%"
	default:
		return k.String()
	}
}
