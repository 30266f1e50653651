/*
File    : ocrpi/ast/ast.go
*/

// Package ast defines the node shapes the parser builds and the
// evaluator walks. A program is a flat ordered list of top-level Nodes
// (statements and declarations may be interleaved at the top level and
// inside any block); there is no separate "declaration vs statement"
// traversal split in the tree itself. The evaluator's Eval(Node)
// dispatches on the concrete type with a single type switch.
package ast

import "fmt"

// Pos is the source position a node was parsed from, used to stamp
// evaluator faults and to render parse errors.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is implemented by every AST type: expressions, statements, and
// declarations alike.
type Node interface {
	Position() Pos
}

// Param is one entry of a function/procedure's parameter list.
type Param struct {
	Name  string
	ByRef bool
}

// Program is the root of a parsed source file: its top-level items in
// source order.
type Program struct {
	Items []Node
}
