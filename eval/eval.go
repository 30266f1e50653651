/*
File    : ocrpi/eval/eval.go
*/

// Package eval is the tree-walking evaluator: it walks an *ast.Program
// and executes it directly against a values.Scope chain, with no
// intermediate bytecode or compilation step.
package eval

import (
	"fmt"
	"io"

	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/faults"
	"github.com/jaddison06/ocrpi/stdlib"
	"github.com/jaddison06/ocrpi/values"
)

// Evaluator holds the single mutable piece of interpreter state: the
// scope currently in effect. global never changes after New; scope
// tracks whichever frame the evaluator is currently executing in.
type Evaluator struct {
	global *values.Scope
	scope  *values.Scope
	Writer io.Writer
}

// New builds an Evaluator with the native library registered into a
// fresh global scope.
func New(w io.Writer) *Evaluator {
	global := values.NewScope(nil)
	stdlib.Register(global, w)
	return &Evaluator{global: global, scope: global, Writer: w}
}

// returnSignal unwinds the Go call stack up to the enclosing user
// function/procedure call, the way a `return` statement must skip
// past however many nested blocks, loops, and ifs sit between it and
// the call boundary.
type returnSignal struct {
	Value values.Value
}

// Globals returns the evaluator's global scope, used by the REPL's
// `.vars` command to list top-level bindings; nothing in evaluation
// itself needs a read-only view of the global frame.
func (e *Evaluator) Globals() *values.Scope {
	return e.global
}

// Run executes every top-level item of prog in order, in the global
// scope. Function, procedure, and class declarations register
// themselves as a side effect of being evaluated; top-level statements
// execute immediately, in source order, interleaved with whatever has
// been declared so far. The language this is modelled on has no
// separate "hoist declarations first" pass.
func (e *Evaluator) Run(prog *ast.Program) {
	for _, item := range prog.Items {
		e.Eval(item)
	}
}

func toFaultPos(p ast.Pos) faults.Pos {
	return faults.Pos{Line: p.Line, Column: p.Column}
}

// Eval dispatches on n's concrete type and returns its value. Most
// statement forms return values.Nil{}; only expressions and Eval'd
// lvalue targets return something a caller consumes.
func (e *Evaluator) Eval(n ast.Node) values.Value {
	switch node := n.(type) {

	// literals
	case *ast.IntLit:
		return values.Int{Value: node.Value}
	case *ast.FloatLit:
		return values.Float{Value: node.Value}
	case *ast.StringLit:
		return values.String{Value: node.Value, Owned: false}
	case *ast.BoolLit:
		return values.Bool{Value: node.Value}
	case *ast.NilLit:
		return values.Nil{}

	case *ast.Identifier:
		ref, ok := e.scope.Lookup(node.Name)
		if !ok {
			faults.RaiseCatchable(faults.Interpreter, faults.UnknownVar, toFaultPos(node.Pos), "Unknown variable '%s'", node.Name)
		}
		return ref

	case *ast.SelfExpr:
		ref, ok := e.scope.Lookup("self")
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(node.Pos), "'self' used outside a method")
		}
		return ref

	case *ast.SuperExpr:
		faults.Raise(faults.Interpreter, toFaultPos(node.Pos), "'super' method dispatch is not supported")
		return values.Nil{}

	case *ast.Grouping:
		return e.Eval(node.X)

	case *ast.Unary:
		return e.evalUnary(node)

	case *ast.Binary:
		return e.evalBinary(node)

	case *ast.Assign:
		return e.evalAssign(node)

	case *ast.CompoundAssign:
		return e.evalCompoundAssign(node)

	case *ast.Call:
		return e.evalCall(node)

	case *ast.Index:
		return e.evalIndex(node)

	case *ast.Member:
		return e.evalMember(node)

	case *ast.NewExpr:
		return e.evalNew(node)

	// statements
	case *ast.ExprStmt:
		e.Eval(node.X)
		return values.Nil{}

	case *ast.GlobalStmt:
		val := values.Deref(e.Eval(node.Value))
		e.scope.SetGlobal(node.Name, val)
		return values.Nil{}

	case *ast.ForStmt:
		e.evalFor(node)
		return values.Nil{}

	case *ast.WhileStmt:
		e.evalWhile(node)
		return values.Nil{}

	case *ast.DoUntilStmt:
		e.evalDoUntil(node)
		return values.Nil{}

	case *ast.IfStmt:
		e.evalIf(node)
		return values.Nil{}

	case *ast.SwitchStmt:
		e.evalSwitch(node)
		return values.Nil{}

	case *ast.ArrayStmt:
		e.evalArrayStmt(node)
		return values.Nil{}

	case *ast.ReturnStmt:
		var v values.Value = values.Nil{}
		if node.Value != nil {
			v = values.Deref(e.Eval(node.Value))
		}
		panic(returnSignal{Value: v})

	// declarations
	case *ast.FunDecl:
		e.global.Bind(node.Name, values.Func{Decl: node})
		return values.Nil{}

	case *ast.ProcDecl:
		e.global.Bind(node.Name, values.Proc{Decl: node})
		return values.Nil{}

	case *ast.ClassDecl:
		e.global.Bind(node.Name, &values.Class{Decl: node})
		return values.Nil{}

	default:
		panic(fmt.Sprintf("eval: unhandled node type %T", n))
	}
}

// execBlock runs a list of body items in the current scope. No new
// frame is pushed, matching how if/switch bodies share their
// enclosing scope rather than opening their own (only function,
// procedure, and loop entry push a new frame).
func (e *Evaluator) execBlock(items []ast.Node) {
	for _, item := range items {
		e.Eval(item)
	}
}

// deepCopy clones v for byVal passing and array-literal-ish semantics:
// everything but *Array is already value-typed in Go, so only Array
// needs an explicit recursive copy to avoid two byVal slots sharing a
// backing slice.
func deepCopy(v values.Value) values.Value {
	if arr, ok := v.(*values.Array); ok {
		elems := make([]values.Value, len(arr.Elements))
		for i, el := range arr.Elements {
			elems[i] = deepCopy(el)
		}
		return &values.Array{Elements: elems}
	}
	return v
}
