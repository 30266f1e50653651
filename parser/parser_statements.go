/*
File    : ocrpi/parser/parser_statements.go
*/
package parser

import (
	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/lexer"
)

// statement dispatches on the leading token; anything unmatched is an
// expression statement.
func (p *Parser) statement() ast.Node {
	switch {
	case p.match(lexer.GLOBAL):
		return p.globalStmt()
	case p.match(lexer.FOR):
		return p.forStmt()
	case p.match(lexer.WHILE):
		return p.whileStmt()
	case p.match(lexer.DO):
		return p.doUntilStmt()
	case p.match(lexer.IF):
		return p.ifStmt()
	case p.match(lexer.SWITCH):
		return p.switchStmt()
	case p.match(lexer.ARRAY):
		return p.arrayStmt()
	case p.match(lexer.RETURN):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) exprStmt() ast.Node {
	tok := p.peek()
	x := p.expression()
	return &ast.ExprStmt{Pos: p.pos(tok), X: x}
}

func (p *Parser) returnStmt() ast.Node {
	tok := p.previous()
	value := p.expression()
	return &ast.ReturnStmt{Pos: p.pos(tok), Value: value}
}

func (p *Parser) globalStmt() ast.Node {
	tok := p.previous()
	name := p.expectIdentText("Expected variable name after 'global'")
	p.expect(lexer.EQUAL, "Expected '=' in global declaration")
	value := p.expression()
	return &ast.GlobalStmt{Pos: p.pos(tok), Name: name, Value: value}
}

// forStmt requires the trailing `next <name>` identifier to textually
// match the header iterator; a mismatch is recorded but does not abort
// parsing, since the block was already consumed cleanly.
func (p *Parser) forStmt() ast.Node {
	tok := p.previous()
	name := p.expectIdentText("Expected iterator name after 'for'")
	p.expect(lexer.EQUAL, "Expected '=' after iterator name")
	from := p.expression()
	p.expect(lexer.TO, "Expected 'to' in for header")
	to := p.expression()
	body := p.parseBlock(lexer.NEXT)
	p.expect(lexer.NEXT, "Expected 'next'")
	trailingTok := p.peek()
	trailing := p.expectIdentText("Expected iterator name after 'next'")
	if trailing != name {
		p.errorAt(trailingTok, "Differing iterator names!")
	}
	return &ast.ForStmt{Pos: p.pos(tok), Iter: name, From: from, To: to, Body: body}
}

func (p *Parser) whileStmt() ast.Node {
	tok := p.previous()
	cond := p.expression()
	body := p.parseBlock(lexer.ENDWHILE)
	p.expect(lexer.ENDWHILE, "Expected 'endwhile'")
	return &ast.WhileStmt{Pos: p.pos(tok), Cond: cond, Body: body}
}

// doUntilStmt: the OCR form is post-test *until*. It runs at least
// once and stops once Cond becomes truthy (i.e. it loops while Cond is
// false), not a post-test while.
func (p *Parser) doUntilStmt() ast.Node {
	tok := p.previous()
	body := p.parseBlock(lexer.UNTIL)
	p.expect(lexer.UNTIL, "Expected 'until'")
	cond := p.expression()
	return &ast.DoUntilStmt{Pos: p.pos(tok), Body: body, Cond: cond}
}

func (p *Parser) ifStmt() ast.Node {
	tok := p.previous()
	cond := p.expression()
	p.expect(lexer.THEN, "Expected 'then'")
	thenBody := p.parseBlock(lexer.ELSEIF, lexer.ELSE, lexer.ENDIF)

	var elseIfs []ast.ElseIf
	for p.match(lexer.ELSEIF) {
		c := p.expression()
		p.expect(lexer.THEN, "Expected 'then'")
		b := p.parseBlock(lexer.ELSEIF, lexer.ELSE, lexer.ENDIF)
		elseIfs = append(elseIfs, ast.ElseIf{Cond: c, Body: b})
	}

	var elseBody []ast.Node
	if p.match(lexer.ELSE) {
		elseBody = p.parseBlock(lexer.ENDIF)
	}

	p.expect(lexer.ENDIF, "Expected 'endif'")
	return &ast.IfStmt{Pos: p.pos(tok), Cond: cond, Then: thenBody, ElseIfs: elseIfs, Else: elseBody}
}

// switchStmt enforces that `default`, if present, is the last arm: once
// parsed, a following `case` is a recorded error rather than a silent
// reorder.
func (p *Parser) switchStmt() ast.Node {
	tok := p.previous()
	subject := p.expression()

	var cases []ast.SwitchCase
	for p.match(lexer.CASE) {
		val := p.expression()
		p.expect(lexer.COLON, "Expected ':' after case value")
		body := p.parseBlock(lexer.CASE, lexer.DEFAULT, lexer.ENDSWITCH)
		cases = append(cases, ast.SwitchCase{Value: val, Body: body})
	}

	var def []ast.Node
	if p.match(lexer.DEFAULT) {
		p.expect(lexer.COLON, "Expected ':' after default")
		def = p.parseBlock(lexer.ENDSWITCH, lexer.CASE)
		if p.check(lexer.CASE) {
			p.errorAt(p.peek(), "'default' must be the last case")
		}
	}

	p.expect(lexer.ENDSWITCH, "Expected 'endswitch'")
	return &ast.SwitchStmt{Pos: p.pos(tok), Subject: subject, Cases: cases, Default: def}
}

func (p *Parser) arrayStmt() ast.Node {
	tok := p.previous()
	name := p.expectIdentText("Expected array name")
	p.expect(lexer.LBRACKET, "Expected '[' after array name")
	dims := []ast.Node{p.expression()}
	for p.match(lexer.COMMA) {
		dims = append(dims, p.expression())
	}
	p.expect(lexer.RBRACKET, "Expected ']' after array dimensions")
	return &ast.ArrayStmt{Pos: p.pos(tok), Name: name, Dims: dims}
}
