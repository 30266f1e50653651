/*
File    : ocrpi/ast/decl.go
*/
package ast

// FunDecl is `function Name(params) Body endfunction`. Every control
// path through Body must hit a ReturnStmt; the evaluator, not the
// parser, enforces that (falling off the end is a runtime fault).
type FunDecl struct {
	Pos
	Name   string
	Params []Param
	Body   []Node
}

// ProcDecl is the same shape as FunDecl without the return-on-every-path
// requirement; a procedure that never executes `return` implicitly
// yields Nil.
type ProcDecl struct {
	Pos
	Name   string
	Params []Param
	Body   []Node
}

// ClassDecl is `class Name (inherits Super)? Body endclass`. Parsed in
// full (methods, field markers) but evaluated only as far as recording
// the shape. Method dispatch, inheritance, and `new` construction
// beyond an empty instance are not implemented.
type ClassDecl struct {
	Pos
	Name       string
	Superclass string
	Methods    []*MethodDecl
}

// MethodDecl is one function/procedure inside a class body, tagged
// with its visibility and whether it's a function (Returns) or a
// procedure.
type MethodDecl struct {
	Pos
	Name    string
	Params  []Param
	Body    []Node
	Public  bool
	Returns bool
}

func (n *FunDecl) Position() Pos    { return n.Pos }
func (n *ProcDecl) Position() Pos   { return n.Pos }
func (n *ClassDecl) Position() Pos  { return n.Pos }
func (n *MethodDecl) Position() Pos { return n.Pos }
