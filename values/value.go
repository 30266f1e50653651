/*
File    : ocrpi/values/value.go
*/

// Package values holds the tagged runtime-value union the evaluator
// operates on, together with the lexical scope stack those values live
// in. The two are kept in one package because the Ref variant is
// nothing but a handle into a scope slot, so a value can't be understood
// apart from the scope it may point into.
package values

import "github.com/jaddison06/ocrpi/ast"

// Value is implemented by every runtime variant. Kind returns the name
// the native `typeof` builtin reports.
type Value interface {
	Kind() string
}

type Nil struct{}

func (Nil) Kind() string { return "Nil" }

type Bool struct{ Value bool }

func (Bool) Kind() string { return "Bool" }

type Int struct{ Value int64 }

func (Int) Kind() string { return "Int" }

type Float struct{ Value float64 }

func (Float) Kind() string { return "Float" }

// String carries Owned to record whether this value's buffer was
// allocated by the interpreter (concatenation, string(), etc.) as
// opposed to a slice still backed directly by token text.
type String struct {
	Value string
	Owned bool
}

func (String) Kind() string { return "String" }

// Array is a reference type: it's always handled through a pointer so
// that index assignment (`arr[i] = x`) and byRef array arguments share
// the same backing slice rather than silently operating on a copy.
type Array struct {
	Elements []Value
}

func (*Array) Kind() string { return "Array" }

// Func and Proc wrap the captured declaration only, no captured scope.
// A call's new frame always parents directly to the global scope, never
// to whatever scope was active when the declaration was evaluated; this
// is what rules out lexical closures.
type Func struct {
	Decl *ast.FunDecl
}

func (Func) Kind() string { return "Func" }

type Proc struct {
	Decl *ast.ProcDecl
}

func (Proc) Kind() string { return "Proc" }

// NativeFunc and NativeProc wrap a builtin implemented in Go. Args are
// already dereffed and copied by the time the callback runs.
type NativeFunc struct {
	Name string
	Fn   func(args []Value) Value
}

func (NativeFunc) Kind() string { return "NativeFunc" }

type NativeProc struct {
	Name string
	Fn   func(args []Value)
}

func (NativeProc) Kind() string { return "NativeProc" }

// Class and Instance are reserved: classes parse in full but method
// dispatch and inheritance beyond a flat field set are not implemented.
type Class struct {
	Decl *ast.ClassDecl
}

func (*Class) Kind() string { return "Class" }

// Instance keeps its fields in a parentless Scope rather than a bare
// map, so Member expressions can produce the exact same ScopeRef that
// Identifier expressions do: one lvalue mechanism instead of two.
type Instance struct {
	Class  *Class
	Fields *Scope
}

func (*Instance) Kind() string { return "Instance" }

// Ref is the lvalue-identity value: something that names a writable
// slot and can get/set it. ScopeRef (an identifier or a field access)
// and IndexRef (an array subscript) are the two slot shapes the
// language has; both satisfy this interface so assignment, deref, and
// byRef argument binding never need to know which kind they're holding.
type Ref interface {
	Value
	Get() Value
	Set(Value)
}

// ScopeRef points at a named slot in a specific Scope: the scope the
// name actually resolved in, which for a shadowed name is not
// necessarily the scope lookup started from.
type ScopeRef struct {
	Scope *Scope
	Name  string
}

func (ScopeRef) Kind() string { return "Ref" }

func (r ScopeRef) Get() Value {
	v, ok := r.Scope.getLocal(r.Name)
	if !ok {
		return Nil{}
	}
	return v
}

func (r ScopeRef) Set(v Value) {
	r.Scope.setLocal(r.Name, v)
}

// IndexRef points at one element of an Array by position. An
// out-of-range index reads as Nil and silently drops a write: arrays
// are fixed-shape dimension declarations (see ast.ArrayStmt), not
// growable collections, so there is no resize-on-write behavior to
// define.
type IndexRef struct {
	Arr *Array
	Idx int
}

func (IndexRef) Kind() string { return "Ref" }

func (r IndexRef) Get() Value {
	if r.Idx < 0 || r.Idx >= len(r.Arr.Elements) {
		return Nil{}
	}
	return r.Arr.Elements[r.Idx]
}

func (r IndexRef) Set(v Value) {
	if r.Idx < 0 || r.Idx >= len(r.Arr.Elements) {
		return
	}
	r.Arr.Elements[r.Idx] = v
}

// Deref repeatedly follows Ref values until a non-Ref value is reached.
// A Ref chain always terminates: the evaluator only ever produces a
// fresh Ref from an identifier/member/index lookup, never by copying an
// existing Ref verbatim into the slot it was itself read from.
func Deref(v Value) Value {
	for {
		ref, ok := v.(Ref)
		if !ok {
			return v
		}
		v = ref.Get()
	}
}

// AssignThroughRef writes value to the slot at the end of ref's Ref
// chain rather than into ref's own slot. This matters for byRef
// parameters: the parameter's slot holds a Ref to the caller's argument
// slot, and `param = value` inside the callee must update the caller's
// slot, not replace the parameter's local binding with a plain value
// (which would sever the aliasing for any later read of the parameter
// within the same call).
func AssignThroughRef(ref Ref, value Value) {
	for {
		cur := ref.Get()
		next, ok := cur.(Ref)
		if !ok {
			break
		}
		ref = next
	}
	ref.Set(value)
}
