package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestLexOperators(t *testing.T) {
	toks := Lex(`= == != < <= > >= + - * / ^ += -= *= /= ^= : . , ( ) [ ]`)
	assert.Equal(t, []TokenKind{
		EQUAL, EQUAL_EQUAL, BANG_EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL,
		PLUS, MINUS, STAR, SLASH, CARET,
		PLUS_EQUAL, MINUS_EQUAL, STAR_EQUAL, SLASH_EQUAL, CARET_EQUAL,
		COLON, DOT, COMMA, LPAREN, RPAREN, LBRACKET, RBRACKET, EOF,
	}, kinds(toks))
}

func TestLexKeywordsAreCaseSensitive(t *testing.T) {
	toks := Lex(`AND and OR or NOT not`)
	assert.Equal(t, []TokenKind{AND, IDENTIFIER, OR, IDENTIFIER, NOT, IDENTIFIER, EOF}, kinds(toks))
}

func TestLexControlKeywords(t *testing.T) {
	toks := Lex(`if then elseif else endif while endwhile do until for to next switch case default endswitch`)
	assert.Equal(t, []TokenKind{
		IF, THEN, ELSEIF, ELSE, ENDIF, WHILE, ENDWHILE, DO, UNTIL,
		FOR, TO, NEXT, SWITCH, CASE, DEFAULT, ENDSWITCH, EOF,
	}, kinds(toks))
}

func TestLexFunctionAndProcedureKeywords(t *testing.T) {
	toks := Lex(`function endfunction procedure endprocedure return byVal byRef global array`)
	assert.Equal(t, []TokenKind{
		FUNCTION, ENDFUNCTION, PROCEDURE, ENDPROCEDURE, RETURN, BYVAL, BYREF, GLOBAL, ARRAY, EOF,
	}, kinds(toks))
}

func TestLexClassKeywords(t *testing.T) {
	toks := Lex(`class endclass inherits public private super self new`)
	assert.Equal(t, []TokenKind{
		CLASS, ENDCLASS, INHERITS, PUBLIC, PRIVATE, SUPER, SELF, NEW, EOF,
	}, kinds(toks))
}

func TestLexLiterals(t *testing.T) {
	toks := Lex(`42 3.14 "hello" true false nil x`)
	assert.Equal(t, []TokenKind{INT_LIT, FLOAT_LIT, STRING_LIT, TRUE, FALSE, NIL, IDENTIFIER, EOF}, kinds(toks))
	assert.Equal(t, "42", toks[0].Text)
	assert.Equal(t, "3.14", toks[1].Text)
	assert.Equal(t, `"hello"`, toks[2].Text)
}

func TestLexStringDoesNotInterpretEscapes(t *testing.T) {
	toks := Lex(`"a\nb"`)
	assert.Equal(t, STRING_LIT, toks[0].Kind)
	assert.Equal(t, `"a\nb"`, toks[0].Text)
}

func TestLexSkipsLineComments(t *testing.T) {
	toks := Lex("x = 1 // this is ignored\ny = 2")
	assert.Equal(t, []TokenKind{
		IDENTIFIER, EQUAL, INT_LIT, IDENTIFIER, EQUAL, INT_LIT, EOF,
	}, kinds(toks))
}

func TestLexTracksLineAndColumn(t *testing.T) {
	toks := Lex("x = 1\ny = 2")
	assert.Equal(t, 1, toks[0].Line)
	// y is on the second line
	var yTok Token
	for _, tok := range toks {
		if tok.Text == "y" {
			yTok = tok
		}
	}
	assert.Equal(t, 2, yTok.Line)
}

func TestLexEOFIsStableAcrossRepeatedCalls(t *testing.T) {
	lx := New("x")
	first := lx.Next()
	assert.Equal(t, IDENTIFIER, first.Kind)
	second := lx.Next()
	assert.Equal(t, EOF, second.Kind)
	third := lx.Next()
	assert.Equal(t, EOF, third.Kind)
}

func TestLexIdentifierWithDigitsAndUnderscore(t *testing.T) {
	toks := Lex(`my_var2 _leading`)
	assert.Equal(t, []TokenKind{IDENTIFIER, IDENTIFIER, EOF}, kinds(toks))
}
