/*
File    : ocrpi/lexer/token.go
*/

// Package lexer turns OCR-script source text into an ordered token
// sequence. It is a single, state-free pass: given the same source bytes
// it always produces the same tokens, and it never fails. Unrecognised
// input becomes a diagnostic at parse time, not here.
package lexer

import "fmt"

// TokenKind identifies the syntactic category of a Token. OCR-script's
// keywords use the exact casing from the OCR exam reference language
// (elseif, endif, byVal, byRef, AND, OR, NOT, MOD, DIV, ...); lexing is
// case sensitive throughout.
type TokenKind int

const (
	EOF TokenKind = iota
	INVALID

	// Single/double-char operators
	EQUAL         // =
	EQUAL_EQUAL   // ==
	BANG_EQUAL    // !=
	LESS          // <
	LESS_EQUAL    // <=
	GREATER       // >
	GREATER_EQUAL // >=
	PLUS          // +
	MINUS         // -
	STAR          // *
	SLASH         // /
	CARET         // ^
	PLUS_EQUAL    // +=
	MINUS_EQUAL   // -=
	STAR_EQUAL    // *=
	SLASH_EQUAL   // /=
	CARET_EQUAL   // ^=
	COLON         // :
	DOT           // .
	COMMA         // ,
	LPAREN        // (
	RPAREN        // )
	LBRACKET      // [
	RBRACKET      // ]

	// Keywords
	GLOBAL
	FOR
	TO
	NEXT
	WHILE
	ENDWHILE
	DO
	UNTIL
	IF
	THEN
	ELSEIF
	ELSE
	ENDIF
	SWITCH
	CASE
	DEFAULT
	ENDSWITCH
	AND
	OR
	NOT
	MOD
	DIV
	FUNCTION
	RETURN
	ENDFUNCTION
	PROCEDURE
	ENDPROCEDURE
	BYVAL
	BYREF
	CLASS
	ENDCLASS
	INHERITS
	PUBLIC
	PRIVATE
	SUPER
	SELF
	NEW
	ARRAY

	// Literals + identifiers
	STRING_LIT
	INT_LIT
	FLOAT_LIT
	NIL
	TRUE
	FALSE
	IDENTIFIER
)

var kindNames = map[TokenKind]string{
	EOF: "EOF", INVALID: "INVALID",
	EQUAL: "=", EQUAL_EQUAL: "==", BANG_EQUAL: "!=",
	LESS: "<", LESS_EQUAL: "<=", GREATER: ">", GREATER_EQUAL: ">=",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", CARET: "^",
	PLUS_EQUAL: "+=", MINUS_EQUAL: "-=", STAR_EQUAL: "*=", SLASH_EQUAL: "/=", CARET_EQUAL: "^=",
	COLON: ":", DOT: ".", COMMA: ",", LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	GLOBAL: "global", FOR: "for", TO: "to", NEXT: "next", WHILE: "while", ENDWHILE: "endwhile",
	DO: "do", UNTIL: "until", IF: "if", THEN: "then", ELSEIF: "elseif", ELSE: "else", ENDIF: "endif",
	SWITCH: "switch", CASE: "case", DEFAULT: "default", ENDSWITCH: "endswitch",
	AND: "AND", OR: "OR", NOT: "NOT", MOD: "MOD", DIV: "DIV",
	FUNCTION: "function", RETURN: "return", ENDFUNCTION: "endfunction",
	PROCEDURE: "procedure", ENDPROCEDURE: "endprocedure", BYVAL: "byVal", BYREF: "byRef",
	CLASS: "class", ENDCLASS: "endclass", INHERITS: "inherits",
	PUBLIC: "public", PRIVATE: "private", SUPER: "super", SELF: "self", NEW: "new", ARRAY: "array",
	STRING_LIT: "StringLit", INT_LIT: "IntLit", FLOAT_LIT: "FloatLit",
	NIL: "nil", TRUE: "true", FALSE: "false", IDENTIFIER: "Identifier",
}

// String renders the kind's canonical name, used in parse error messages.
func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// keywords maps exact source spelling to the keyword's TokenKind. Casing
// matters: "AND" is a keyword, "and" is a plain identifier.
var keywords = map[string]TokenKind{
	"global": GLOBAL, "for": FOR, "to": TO, "next": NEXT,
	"while": WHILE, "endwhile": ENDWHILE, "do": DO, "until": UNTIL,
	"if": IF, "then": THEN, "elseif": ELSEIF, "else": ELSE, "endif": ENDIF,
	"switch": SWITCH, "case": CASE, "default": DEFAULT, "endswitch": ENDSWITCH,
	"AND": AND, "OR": OR, "NOT": NOT, "MOD": MOD, "DIV": DIV,
	"function": FUNCTION, "return": RETURN, "endfunction": ENDFUNCTION,
	"procedure": PROCEDURE, "endprocedure": ENDPROCEDURE,
	"byVal": BYVAL, "byRef": BYREF,
	"class": CLASS, "endclass": ENDCLASS, "inherits": INHERITS,
	"public": PUBLIC, "private": PRIVATE, "super": SUPER, "self": SELF,
	"new": NEW, "array": ARRAY,
	"nil": NIL, "true": TRUE, "false": FALSE,
}

// Token is a single lexical unit: its kind, the exact source slice it
// came from, and its source position. The Text slice must stay valid for
// the AST's lifetime: the parser and evaluator re-read it for identifier
// names, literal values, and error messages, instead of copying eagerly.
type Token struct {
	Kind   TokenKind
	Text   string
	Line   int
	Column int
}

// lookupIdentifier classifies an already-scanned identifier run: either
// one of the fixed keywords above or a generic Identifier.
func lookupIdentifier(text string) TokenKind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return IDENTIFIER
}
