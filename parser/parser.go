/*
File    : ocrpi/parser/parser.go
*/

// Package parser turns a lexer.Token stream into an ast.Program using
// classical recursive descent with panic-mode error recovery: a syntax
// error is recorded and the parser skips forward to the next top-level
// anchor keyword rather than aborting. The evaluator must not run if
// Errors is non-empty.
package parser

import (
	"fmt"

	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/lexer"
)

// ParseError is one recorded syntax error: the offending token (for its
// source position) and a short message.
type ParseError struct {
	Token   lexer.Token
	Message string
}

func (e ParseError) String() string {
	return fmt.Sprintf("[%d:%d] %s", e.Token.Line, e.Token.Column, e.Message)
}

// anchors is the token-kind set panic-mode recovery skips forward to:
// the start of any top-level construct, per spec.
var anchors = map[lexer.TokenKind]bool{
	lexer.GLOBAL: true, lexer.FOR: true, lexer.WHILE: true, lexer.DO: true,
	lexer.IF: true, lexer.SWITCH: true, lexer.ARRAY: true,
	lexer.FUNCTION: true, lexer.PROCEDURE: true, lexer.CLASS: true,
}

// parseError is panicked internally to unwind to the nearest
// declaration() recovery point; it never escapes the package.
type parseError struct{}

// Parser consumes a pre-scanned token slice (rather than pulling from
// the Lexer directly) so lookahead never needs to re-lex.
type Parser struct {
	tokens  []lexer.Token
	current int
	Errors  []ParseError
}

// New tokenizes source and returns a Parser ready to produce an
// ast.Program.
func New(source string) *Parser {
	return &Parser{tokens: lexer.Lex(source)}
}

// NewFromTokens builds a Parser over an already-lexed stream. The
// stream must end in an EOF token.
func NewFromTokens(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() lexer.Token     { return p.tokens[p.current] }
func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }
func (p *Parser) atEnd() bool           { return p.peek().Kind == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	if p.atEnd() {
		return kind == lexer.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkAny(kinds ...lexer.TokenKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) match(kind lexer.TokenKind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) errorAt(tok lexer.Token, msg string) {
	p.Errors = append(p.Errors, ParseError{Token: tok, Message: msg})
}

// fail records the error and unwinds to the enclosing declaration()'s
// recovery point.
func (p *Parser) fail(tok lexer.Token, msg string) {
	p.errorAt(tok, msg)
	panic(parseError{})
}

func (p *Parser) expect(kind lexer.TokenKind, msg string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.peek(), msg)
	return lexer.Token{}
}

func (p *Parser) expectIdentText(msg string) string {
	return p.expect(lexer.IDENTIFIER, msg).Text
}

func (p *Parser) pos(tok lexer.Token) ast.Pos {
	return ast.Pos{Line: tok.Line, Column: tok.Column}
}

// synchronize discards tokens until the next top-level anchor keyword
// or EOF, so the next declaration() call starts from clean ground.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if anchors[p.peek().Kind] {
			return
		}
		p.advance()
	}
}

// Parse runs the parser to completion and returns the resulting
// (possibly partial) Program. Check Errors afterward before evaluating.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.atEnd() {
		if item := p.declaration(); item != nil {
			prog.Items = append(prog.Items, item)
		}
	}
	return prog
}

// HasErrors reports whether any syntax error was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// declaration parses one top-level-or-block item: a class, function,
// procedure, or statement. A syntax error anywhere inside unwinds here
// via panic(parseError{}), after which synchronize() restores a
// consistent position for the next call.
func (p *Parser) declaration() (node ast.Node) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				node = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.CLASS):
		return p.classDecl()
	case p.match(lexer.FUNCTION):
		return p.funDecl()
	case p.match(lexer.PROCEDURE):
		return p.procDecl()
	default:
		return p.statement()
	}
}

// parseBlock parses declarations/statements until the next token is one
// of terminators (left unconsumed) or EOF.
func (p *Parser) parseBlock(terminators ...lexer.TokenKind) []ast.Node {
	var items []ast.Node
	for !p.atEnd() && !p.checkAny(terminators...) {
		if item := p.declaration(); item != nil {
			items = append(items, item)
		}
	}
	return items
}

func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if p.check(lexer.RPAREN) {
		return params
	}
	for {
		name := p.expectIdentText("Expected parameter name")
		byRef := false
		if p.match(lexer.COLON) {
			switch {
			case p.match(lexer.BYREF):
				byRef = true
			case p.match(lexer.BYVAL):
				byRef = false
			default:
				p.fail(p.peek(), "Expected byVal or byRef")
			}
		}
		params = append(params, ast.Param{Name: name, ByRef: byRef})
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return params
}

func (p *Parser) funDecl() ast.Node {
	tok := p.previous()
	name := p.expectIdentText("Expected function name")
	p.expect(lexer.LPAREN, "Expected '(' after function name")
	params := p.parseParams()
	p.expect(lexer.RPAREN, "Expected ')' after parameters")
	body := p.parseBlock(lexer.ENDFUNCTION)
	p.expect(lexer.ENDFUNCTION, "Expected 'endfunction'")
	return &ast.FunDecl{Pos: p.pos(tok), Name: name, Params: params, Body: body}
}

func (p *Parser) procDecl() ast.Node {
	tok := p.previous()
	name := p.expectIdentText("Expected procedure name")
	p.expect(lexer.LPAREN, "Expected '(' after procedure name")
	params := p.parseParams()
	p.expect(lexer.RPAREN, "Expected ')' after parameters")
	body := p.parseBlock(lexer.ENDPROCEDURE)
	p.expect(lexer.ENDPROCEDURE, "Expected 'endprocedure'")
	return &ast.ProcDecl{Pos: p.pos(tok), Name: name, Params: params, Body: body}
}

func (p *Parser) methodDecl(returns bool) *ast.MethodDecl {
	tok := p.previous()
	name := p.expectIdentText("Expected method name")
	p.expect(lexer.LPAREN, "Expected '(' after method name")
	params := p.parseParams()
	p.expect(lexer.RPAREN, "Expected ')' after parameters")
	endKind := lexer.ENDPROCEDURE
	endMsg := "Expected 'endprocedure'"
	if returns {
		endKind = lexer.ENDFUNCTION
		endMsg = "Expected 'endfunction'"
	}
	body := p.parseBlock(endKind)
	p.expect(endKind, endMsg)
	return &ast.MethodDecl{Pos: p.pos(tok), Name: name, Params: params, Body: body, Returns: returns}
}

func (p *Parser) classDecl() ast.Node {
	tok := p.previous()
	name := p.expectIdentText("Expected class name")
	superclass := ""
	if p.match(lexer.INHERITS) {
		superclass = p.expectIdentText("Expected superclass name after 'inherits'")
	}
	var methods []*ast.MethodDecl
	for !p.check(lexer.ENDCLASS) && !p.atEnd() {
		public := true
		if p.match(lexer.PUBLIC) {
			public = true
		} else if p.match(lexer.PRIVATE) {
			public = false
		}
		switch {
		case p.match(lexer.FUNCTION):
			m := p.methodDecl(true)
			m.Public = public
			methods = append(methods, m)
		case p.match(lexer.PROCEDURE):
			m := p.methodDecl(false)
			m.Public = public
			methods = append(methods, m)
		default:
			p.fail(p.peek(), "Expected method declaration in class body")
		}
	}
	p.expect(lexer.ENDCLASS, "Expected 'endclass'")
	return &ast.ClassDecl{Pos: p.pos(tok), Name: name, Superclass: superclass, Methods: methods}
}
