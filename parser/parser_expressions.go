/*
File    : ocrpi/parser/parser_expressions.go
*/
package parser

import (
	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/lexer"
)

// expression is the entry point for the full 16-level precedence
// ladder, lowest precedence first.
func (p *Parser) expression() ast.Node {
	return p.assignment()
}

// assignment (level 1, `=`, right-associative).
func (p *Parser) assignment() ast.Node {
	left := p.compoundAddSub()
	if p.match(lexer.EQUAL) {
		tok := p.previous()
		value := p.assignment()
		return &ast.Assign{Pos: p.pos(tok), Target: left, Value: value}
	}
	return left
}

// compoundAddSub (level 2, `+= -=`, right-associative).
func (p *Parser) compoundAddSub() ast.Node {
	left := p.compoundMulDiv()
	if p.checkAny(lexer.PLUS_EQUAL, lexer.MINUS_EQUAL) {
		op := p.advance()
		value := p.compoundAddSub()
		return &ast.CompoundAssign{Pos: p.pos(op), Op: op.Kind, Target: left, Value: value}
	}
	return left
}

// compoundMulDiv (level 3, `*= /=`, right-associative).
func (p *Parser) compoundMulDiv() ast.Node {
	left := p.compoundCaret()
	if p.checkAny(lexer.STAR_EQUAL, lexer.SLASH_EQUAL) {
		op := p.advance()
		value := p.compoundMulDiv()
		return &ast.CompoundAssign{Pos: p.pos(op), Op: op.Kind, Target: left, Value: value}
	}
	return left
}

// compoundCaret (level 4, `^=`, right-associative).
func (p *Parser) compoundCaret() ast.Node {
	left := p.logicOr()
	if p.check(lexer.CARET_EQUAL) {
		op := p.advance()
		value := p.compoundCaret()
		return &ast.CompoundAssign{Pos: p.pos(op), Op: op.Kind, Target: left, Value: value}
	}
	return left
}

// logicOr (level 5, `or`, left-associative).
func (p *Parser) logicOr() ast.Node {
	left := p.logicAnd()
	for p.check(lexer.OR) {
		op := p.advance()
		right := p.logicAnd()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Kind, Left: left, Right: right}
	}
	return left
}

// logicAnd (level 6, `and`).
func (p *Parser) logicAnd() ast.Node {
	left := p.equality()
	for p.check(lexer.AND) {
		op := p.advance()
		right := p.equality()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Kind, Left: left, Right: right}
	}
	return left
}

// equality (level 7, `== !=`).
func (p *Parser) equality() ast.Node {
	left := p.comparison()
	for p.checkAny(lexer.EQUAL_EQUAL, lexer.BANG_EQUAL) {
		op := p.advance()
		right := p.comparison()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Kind, Left: left, Right: right}
	}
	return left
}

// comparison (level 8, `< <= > >=`).
func (p *Parser) comparison() ast.Node {
	left := p.term()
	for p.checkAny(lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL) {
		op := p.advance()
		right := p.term()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Kind, Left: left, Right: right}
	}
	return left
}

// term (level 9, `+ -`).
func (p *Parser) term() ast.Node {
	left := p.factor()
	for p.checkAny(lexer.PLUS, lexer.MINUS) {
		op := p.advance()
		right := p.factor()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Kind, Left: left, Right: right}
	}
	return left
}

// factor (level 10, `* /`, plus the keyword operators `MOD`/`DIV` which
// sit at the same precedence as the other multiplicative operators).
func (p *Parser) factor() ast.Node {
	left := p.exponent()
	for p.checkAny(lexer.STAR, lexer.SLASH, lexer.MOD, lexer.DIV) {
		op := p.advance()
		right := p.exponent()
		left = &ast.Binary{Pos: p.pos(op), Op: op.Kind, Left: left, Right: right}
	}
	return left
}

// exponent (level 11, `^`, right-associative by convention).
func (p *Parser) exponent() ast.Node {
	left := p.unary()
	if p.check(lexer.CARET) {
		op := p.advance()
		right := p.exponent()
		return &ast.Binary{Pos: p.pos(op), Op: op.Kind, Left: left, Right: right}
	}
	return left
}

// unary (level 12, `not`, unary `-`, `new`; right-associative).
func (p *Parser) unary() ast.Node {
	if p.checkAny(lexer.NOT, lexer.MINUS) {
		op := p.advance()
		operand := p.unary()
		return &ast.Unary{Pos: p.pos(op), Op: op.Kind, X: operand}
	}
	if p.check(lexer.NEW) {
		return p.newExpr()
	}
	return p.callChain()
}

func (p *Parser) newExpr() ast.Node {
	tok := p.advance() // consume 'new'
	className := p.expectIdentText("Expected class name after 'new'")
	p.expect(lexer.LPAREN, "Expected '(' after class name")
	args := p.argumentList()
	p.expect(lexer.RPAREN, "Expected ')' after constructor arguments")
	return &ast.NewExpr{Pos: p.pos(tok), ClassName: className, Args: args}
}

// callChain (level 13): left-associative chain of call/subscript/member
// operations over a single base operand.
func (p *Parser) callChain() ast.Node {
	expr := p.super_()
	for {
		switch {
		case p.match(lexer.LPAREN):
			tok := p.previous()
			args := p.argumentList()
			p.expect(lexer.RPAREN, "Expected ')' after arguments")
			expr = &ast.Call{Pos: p.pos(tok), Callee: expr, Args: args}
		case p.match(lexer.LBRACKET):
			tok := p.previous()
			index := p.expression()
			p.expect(lexer.RBRACKET, "Expected ']' after index")
			expr = &ast.Index{Pos: p.pos(tok), Target: expr, Index: index}
		case p.match(lexer.DOT):
			tok := p.previous()
			name := p.expectIdentText("Expected member name after '.'")
			expr = &ast.Member{Pos: p.pos(tok), Target: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) argumentList() []ast.Node {
	var args []ast.Node
	if p.check(lexer.RPAREN) {
		return args
	}
	args = append(args, p.expression())
	for p.match(lexer.COMMA) {
		args = append(args, p.expression())
	}
	return args
}

// super_ (level 14, `super.<ident>`).
func (p *Parser) super_() ast.Node {
	if p.match(lexer.SUPER) {
		tok := p.previous()
		p.expect(lexer.DOT, "Expected '.' after 'super'")
		method := p.expectIdentText("Expected method name after 'super.'")
		return &ast.SuperExpr{Pos: p.pos(tok), Method: method}
	}
	return p.grouping()
}

// grouping (level 15, `( expr )`).
func (p *Parser) grouping() ast.Node {
	if p.match(lexer.LPAREN) {
		tok := p.previous()
		x := p.expression()
		p.expect(lexer.RPAREN, "Expected ')' after expression")
		return &ast.Grouping{Pos: p.pos(tok), X: x}
	}
	return p.primary()
}

// primary (level 16): identifiers, literals, self/nil/true/false.
func (p *Parser) primary() ast.Node {
	tok := p.peek()
	switch {
	case p.match(lexer.IDENTIFIER):
		return &ast.Identifier{Pos: p.pos(tok), Name: tok.Text}
	case p.match(lexer.INT_LIT):
		return &ast.IntLit{Pos: p.pos(tok), Value: parseInt(tok.Text)}
	case p.match(lexer.FLOAT_LIT):
		return &ast.FloatLit{Pos: p.pos(tok), Value: parseFloat(tok.Text)}
	case p.match(lexer.STRING_LIT):
		return &ast.StringLit{Pos: p.pos(tok), Value: stripQuotes(tok.Text)}
	case p.match(lexer.TRUE):
		return &ast.BoolLit{Pos: p.pos(tok), Value: true}
	case p.match(lexer.FALSE):
		return &ast.BoolLit{Pos: p.pos(tok), Value: false}
	case p.match(lexer.NIL):
		return &ast.NilLit{Pos: p.pos(tok)}
	case p.match(lexer.SELF):
		return &ast.SelfExpr{Pos: p.pos(tok)}
	default:
		p.fail(tok, "Unexpected token!")
		return nil
	}
}

func stripQuotes(text string) string {
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}
