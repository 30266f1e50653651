/*
File    : ocrpi/eval/eval_calls.go
*/
package eval

import (
	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/faults"
	"github.com/jaddison06/ocrpi/values"
)

// evalCall dispatches a Call node on the dereffed callee's runtime
// kind. User functions/procedures open a new frame parented directly
// to the global scope (no closures); natives just get their already
// dereffed, byVal-copied arguments.
func (e *Evaluator) evalCall(n *ast.Call) values.Value {
	callee := values.Deref(e.Eval(n.Callee))

	switch fn := callee.(type) {
	case values.Func:
		return e.callUser(n, fn.Decl.Params, fn.Decl.Body, fn.Decl.Name, true)
	case values.Proc:
		return e.callUser(n, fn.Decl.Params, fn.Decl.Body, fn.Decl.Name, false)
	case values.NativeFunc:
		args := e.evalNativeArgs(n.Args)
		return fn.Fn(args)
	case values.NativeProc:
		args := e.evalNativeArgs(n.Args)
		fn.Fn(args)
		return values.Nil{}
	default:
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Value is not callable")
		return values.Nil{}
	}
}

func (e *Evaluator) evalNativeArgs(argExprs []ast.Node) []values.Value {
	args := make([]values.Value, len(argExprs))
	for i, a := range argExprs {
		args[i] = deepCopy(values.Deref(e.Eval(a)))
	}
	return args
}

// callUser binds arguments into a fresh frame parented to the global
// scope and executes body in it. The frame-restore defer is
// registered first so it always runs last, guaranteeing e.scope is
// restored to the caller's frame no matter what unwinds through it:
// a returnSignal, a Fault, or any other panic. The returnSignal-catching
// defer is registered second so it runs first: it must re-panic
// anything that isn't its own signal, so the frame-restore defer still
// gets to run before the panic keeps propagating.
func (e *Evaluator) callUser(n *ast.Call, params []ast.Param, body []ast.Node, name string, mustReturn bool) (result values.Value) {
	if len(n.Args) != len(params) {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Called %s with %d args instead of %d", name, len(n.Args), len(params))
	}

	frame := values.NewScope(e.global)
	e.bindArgs(frame, params, n.Args)

	caller := e.scope
	e.scope = frame
	defer func() { e.scope = caller }()

	result = values.Nil{}
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			result = sig.Value
		}()
		e.execBlock(body)
		if mustReturn {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Function %s did not reach a return statement", name)
		}
	}()
	return result
}

// bindArgs binds each argument into frame: byVal parameters get a
// dereffed, deep-copied value in a fresh slot; byRef parameters get
// the caller-side Ref itself, so writes inside the callee alias the
// caller's slot via values.AssignThroughRef.
func (e *Evaluator) bindArgs(frame *values.Scope, params []ast.Param, argExprs []ast.Node) {
	for i, param := range params {
		argVal := e.Eval(argExprs[i])
		if param.ByRef {
			ref, ok := argVal.(values.Ref)
			if !ok {
				faults.Raise(faults.Interpreter, toFaultPos(argExprs[i].Position()), "byRef argument must be an assignable name")
			}
			frame.Bind(param.Name, ref)
			continue
		}
		frame.Bind(param.Name, deepCopy(values.Deref(argVal)))
	}
}

func (e *Evaluator) evalIndex(n *ast.Index) values.Value {
	target := values.Deref(e.Eval(n.Target))
	arr, ok := target.(*values.Array)
	if !ok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Indexing requires an array")
	}
	idxVal := values.Deref(e.Eval(n.Index))
	idx, ok := idxVal.(values.Int)
	if !ok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Array index must be an integer")
	}
	return values.IndexRef{Arr: arr, Idx: int(idx.Value)}
}

func (e *Evaluator) evalMember(n *ast.Member) values.Value {
	target := values.Deref(e.Eval(n.Target))
	inst, ok := target.(*values.Instance)
	if !ok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Member access requires a class instance")
	}
	if ref, ok := inst.Fields.Lookup(n.Name); ok {
		return ref
	}
	return values.ScopeRef{Scope: inst.Fields, Name: n.Name}
}

// evalNew constructs an empty instance of ClassName. Field
// initialization and method dispatch beyond a flat field set are not
// implemented; constructing records only the class identity and a
// fresh, empty field scope.
func (e *Evaluator) evalNew(n *ast.NewExpr) values.Value {
	ref, ok := e.global.Lookup(n.ClassName)
	if !ok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Unknown class '%s'", n.ClassName)
	}
	class, ok := values.Deref(ref).(*values.Class)
	if !ok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "'%s' is not a class", n.ClassName)
	}
	return &values.Instance{Class: class, Fields: values.NewScope(nil)}
}
