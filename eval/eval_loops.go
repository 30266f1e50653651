/*
File    : ocrpi/eval/eval_loops.go
*/
package eval

import (
	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/faults"
	"github.com/jaddison06/ocrpi/lexer"
	"github.com/jaddison06/ocrpi/values"
)

// evalFor runs `for Iter = From to To <Body> next Iter`. A single
// scope spans the whole loop (not one per iteration); the bound is
// exclusive, so `for i = 0 to 3` runs i = 0, 1, 2. The iterator
// increment reuses evalCompoundAssign via a synthetic `Iter += 1`,
// exactly like a user-written compound assignment would.
func (e *Evaluator) evalFor(n *ast.ForStmt) {
	fromVal := values.Deref(e.Eval(n.From))
	from, ok := fromVal.(values.Int)
	if !ok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "for-loop bounds must be integers")
	}

	caller := e.scope
	loopScope := values.NewScope(caller)
	e.scope = loopScope
	defer func() { e.scope = caller }()

	loopScope.Bind(n.Iter, values.Int{Value: from.Value})

	increment := &ast.CompoundAssign{
		Pos:    n.Pos,
		Op:     lexer.PLUS_EQUAL,
		Target: &ast.Identifier{Pos: n.Pos, Name: n.Iter},
		Value:  &ast.IntLit{Pos: n.Pos, Value: 1},
	}

	for {
		toVal := values.Deref(e.Eval(n.To))
		to, ok := toVal.(values.Int)
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "for-loop bounds must be integers")
		}
		iterRef, _ := loopScope.Lookup(n.Iter)
		cur := values.Deref(iterRef).(values.Int)
		if cur.Value >= to.Value {
			break
		}
		e.execBlock(n.Body)
		e.evalCompoundAssign(increment)
	}
}

// evalWhile runs `while Cond <Body> endwhile`, pre-test, with one
// scope spanning every iteration.
func (e *Evaluator) evalWhile(n *ast.WhileStmt) {
	caller := e.scope
	loopScope := values.NewScope(caller)
	e.scope = loopScope
	defer func() { e.scope = caller }()

	for {
		truth, ok := values.Truthy(values.Deref(e.Eval(n.Cond)))
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "while-loop condition must be boolean-like")
		}
		if !truth {
			break
		}
		e.execBlock(n.Body)
	}
}

// evalDoUntil runs `do <Body> until Cond`, post-test: Body always
// runs at least once, and the loop continues while Cond is false,
// stopping the first time it becomes true.
func (e *Evaluator) evalDoUntil(n *ast.DoUntilStmt) {
	caller := e.scope
	loopScope := values.NewScope(caller)
	e.scope = loopScope
	defer func() { e.scope = caller }()

	for {
		e.execBlock(n.Body)
		truth, ok := values.Truthy(values.Deref(e.Eval(n.Cond)))
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "do-until condition must be boolean-like")
		}
		if truth {
			break
		}
	}
}
