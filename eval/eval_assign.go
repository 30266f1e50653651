/*
File    : ocrpi/eval/eval_assign.go
*/
package eval

import (
	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/faults"
	"github.com/jaddison06/ocrpi/lexer"
	"github.com/jaddison06/ocrpi/values"
)

// evalAssign evaluates `target = value`. For an Identifier target that
// isn't bound yet, assignment creates it in the current scope. The
// UnknownVar fault Identifier-evaluation would otherwise raise is
// caught right here and turned into a fresh binding, the one place in
// the evaluator that distinguishes "read of an unknown name" (always
// fatal) from "assignment to a new name" (always legal).
func (e *Evaluator) evalAssign(n *ast.Assign) values.Value {
	val := values.Deref(e.Eval(n.Value))

	if ident, ok := n.Target.(*ast.Identifier); ok {
		var target values.Ref
		caught := faults.Catch(faults.UnknownVar, func() {
			target = e.Eval(ident).(values.Ref)
		})
		if caught != nil {
			e.scope.Bind(ident.Name, val)
			return val
		}
		values.AssignThroughRef(target, val)
		return val
	}

	target, ok := e.Eval(n.Target).(values.Ref)
	if !ok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Assignment target is not assignable")
	}
	values.AssignThroughRef(target, val)
	return val
}

// evalCompoundAssign desugars `target op= value` into an equivalent
// `target = target op value` and re-enters evalAssign, exactly
// mirroring how the for-loop's iterator increment reuses the same
// single-entry-point assignment codepath instead of duplicating it.
func (e *Evaluator) evalCompoundAssign(n *ast.CompoundAssign) values.Value {
	synthetic := &ast.Assign{
		Pos:    n.Pos,
		Target: n.Target,
		Value: &ast.Binary{
			Pos:   n.Pos,
			Op:    baseOp(n.Op),
			Left:  n.Target,
			Right: n.Value,
		},
	}
	return e.evalAssign(synthetic)
}

func baseOp(op lexer.TokenKind) lexer.TokenKind {
	switch op {
	case lexer.PLUS_EQUAL:
		return lexer.PLUS
	case lexer.MINUS_EQUAL:
		return lexer.MINUS
	case lexer.STAR_EQUAL:
		return lexer.STAR
	case lexer.SLASH_EQUAL:
		return lexer.SLASH
	case lexer.CARET_EQUAL:
		return lexer.CARET
	}
	panic("eval: unhandled compound-assignment operator")
}
