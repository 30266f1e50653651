/*
File    : ocrpi/ast/expr.go
*/
package ast

import "github.com/jaddison06/ocrpi/lexer"

// Identifier is a bare name reference; the evaluator resolves it
// against the live scope chain, yielding a Ref to its slot.
type Identifier struct {
	Pos
	Name string
}

// IntLit, FloatLit, StringLit, BoolLit and NilLit are primary literal
// expressions.
type IntLit struct {
	Pos
	Value int64
}

type FloatLit struct {
	Pos
	Value float64
}

// StringLit.Value excludes the surrounding quotes; the evaluator builds
// a values.String from it, which is the place Owned (whether the
// runtime value's buffer is borrowed from source or freshly allocated)
// actually lives. See values.String's doc comment.
type StringLit struct {
	Pos
	Value string
}

type BoolLit struct {
	Pos
	Value bool
}

type NilLit struct {
	Pos
}

// SelfExpr and SuperExpr are the class-body-only primaries; the parser
// accepts them everywhere a primary is legal, and the evaluator faults
// if they're evaluated outside an instance method call (class semantics
// beyond parsing are not implemented, see values.Instance).
type SelfExpr struct {
	Pos
}

type SuperExpr struct {
	Pos
	Method string
}

// Grouping is a parenthesised expression, kept as its own node (rather
// than collapsed away) so source positions and precedence stay easy to
// reason about while parsing.
type Grouping struct {
	Pos
	X Node
}

// Unary covers `not x` and unary `-x`. The parser folds `new` into a
// dedicated NewExpr instead, so Unary only ever holds NOT or MINUS.
type Unary struct {
	Pos
	Op lexer.TokenKind
	X  Node
}

// Binary is every left/right operator below unary precedence:
// arithmetic, comparison, equality, and/or.
type Binary struct {
	Pos
	Op    lexer.TokenKind
	Left  Node
	Right Node
}

// Assign is `target = value`. Target must be an lvalue-shaped
// expression (Identifier, Index, or Member); the evaluator is what
// actually enforces that, by requiring the evaluated target to be a
// values.Ref.
type Assign struct {
	Pos
	Target Node
	Value  Node
}

// CompoundAssign is `target op= value` for op in {+,-,*,/,^}. It is
// kept distinct from a desugared Assign+Binary pair so the evaluator
// can implement it with a single re-entrant helper, matching how the
// language it's modelled on reuses the same assignment codepath for
// `for`-loop increments.
type CompoundAssign struct {
	Pos
	Op     lexer.TokenKind
	Target Node
	Value  Node
}

// Call is a function/procedure invocation: `callee(args...)`.
type Call struct {
	Pos
	Callee Node
	Args   []Node
}

// Index is array subscripting: `target[index]`.
type Index struct {
	Pos
	Target Node
	Index  Node
}

// Member is dotted field/method access: `target.name`.
type Member struct {
	Pos
	Target Node
	Name   string
}

// NewExpr is `new ClassName(args...)` instance construction.
type NewExpr struct {
	Pos
	ClassName string
	Args      []Node
}

func (n *Identifier) Position() Pos     { return n.Pos }
func (n *IntLit) Position() Pos         { return n.Pos }
func (n *FloatLit) Position() Pos       { return n.Pos }
func (n *StringLit) Position() Pos      { return n.Pos }
func (n *BoolLit) Position() Pos        { return n.Pos }
func (n *NilLit) Position() Pos         { return n.Pos }
func (n *SelfExpr) Position() Pos       { return n.Pos }
func (n *SuperExpr) Position() Pos      { return n.Pos }
func (n *Grouping) Position() Pos       { return n.Pos }
func (n *Unary) Position() Pos          { return n.Pos }
func (n *Binary) Position() Pos         { return n.Pos }
func (n *Assign) Position() Pos         { return n.Pos }
func (n *CompoundAssign) Position() Pos { return n.Pos }
func (n *Call) Position() Pos           { return n.Pos }
func (n *Index) Position() Pos          { return n.Pos }
func (n *Member) Position() Pos         { return n.Pos }
func (n *NewExpr) Position() Pos        { return n.Pos }
