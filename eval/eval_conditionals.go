/*
File    : ocrpi/eval/eval_conditionals.go
*/
package eval

import (
	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/faults"
	"github.com/jaddison06/ocrpi/values"
)

// evalIf runs the first truthy branch among Then/ElseIfs/Else, in the
// current scope. if/switch bodies never push a new frame, unlike
// function, procedure, and loop entry.
func (e *Evaluator) evalIf(n *ast.IfStmt) {
	truth, ok := values.Truthy(values.Deref(e.Eval(n.Cond)))
	if !ok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "if-condition must be boolean-like")
	}
	if truth {
		e.execBlock(n.Then)
		return
	}
	for _, clause := range n.ElseIfs {
		truth, ok := values.Truthy(values.Deref(e.Eval(clause.Cond)))
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "elseif-condition must be boolean-like")
		}
		if truth {
			e.execBlock(clause.Body)
			return
		}
	}
	e.execBlock(n.Else)
}

// evalSwitch equality-compares Subject against each case's value in
// source order, running the first match's body; falls to Default if
// nothing matches. No new scope is pushed.
func (e *Evaluator) evalSwitch(n *ast.SwitchStmt) {
	subject := values.Deref(e.Eval(n.Subject))
	for _, c := range n.Cases {
		caseVal := values.Deref(e.Eval(c.Value))
		if e.valuesEqual(&ast.Binary{Pos: n.Pos}, subject, caseVal) {
			e.execBlock(c.Body)
			return
		}
	}
	e.execBlock(n.Default)
}

// evalArrayStmt declares a fixed-size, Nil-filled array: every
// dimension expression is evaluated and the dimensions are multiplied
// together for the total element count, then bound as one flat
// *values.Array.
func (e *Evaluator) evalArrayStmt(n *ast.ArrayStmt) {
	size := int64(1)
	for _, dimExpr := range n.Dims {
		dimVal := values.Deref(e.Eval(dimExpr))
		dim, ok := dimVal.(values.Int)
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Array dimensions must be integers")
		}
		size *= dim.Value
	}
	elems := make([]values.Value, size)
	for i := range elems {
		elems[i] = values.Nil{}
	}
	e.scope.Bind(n.Name, &values.Array{Elements: elems})
}
