/*
File    : ocrpi/parser/parser_literals.go
*/
package parser

import "strconv"

// parseInt and parseFloat convert already-validated lexer output (the
// lexer only ever emits digit runs for IntLit/FloatLit) into Go numeric
// values. A conversion error here would mean the lexer's number scanner
// and this parser disagree about what counts as a digit run, which is a
// programming error, not a user-facing one.
func parseInt(text string) int64 {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		panic("lexer/parser disagreement on IntLit shape: " + text)
	}
	return v
}

func parseFloat(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic("lexer/parser disagreement on FloatLit shape: " + text)
	}
	return v
}
