/*
File    : ocrpi/faults/faults.go
*/

// Package faults is the interpreter's single error/fault type, shared
// by the parser and the evaluator. Every fault carries a subsystem tag
// (used as the process exit code's low byte) and an optional catchable
// reason; only UnknownVar is ever caught, by the assignment
// evaluator, everything else is fatal.
package faults

import "fmt"

// Subsystem identifies which stage raised a fault; its numeric value is
// also the CLI's exit code for that kind of failure.
type Subsystem int

const (
	Main Subsystem = iota + 1
	Parser
	Interpreter
	NativeLib
)

func (s Subsystem) String() string {
	switch s {
	case Main:
		return "main"
	case Parser:
		return "parser"
	case Interpreter:
		return "interpreter"
	case NativeLib:
		return "native library"
	default:
		return "unknown"
	}
}

// Reason is a catchable-fault discriminant, carried alongside Subsystem
// as a packed subsystem/reason pair. Only UnknownVar is ever declared
// catchable.
type Reason int

const (
	None Reason = iota
	UnknownVar
)

// Pos is the minimal source position a Fault needs to render a
// location, duplicated from ast.Pos's shape rather than imported so
// this package has no dependency on ast.
type Pos struct {
	Line   int
	Column int
}

// Fault is raised via panic(*Fault) and recovered either by the one
// UnknownVar catcher in eval, or left to propagate to the entry point:
// in file mode the CLI reports it and exits with int(Subsystem); the
// REPL reports it and keeps the session running.
type Fault struct {
	Subsystem Subsystem
	Reason    Reason
	Message   string
	Pos       Pos
	HasPos    bool
}

func (f *Fault) Error() string {
	if f.HasPos {
		return fmt.Sprintf("[%d:%d] %s", f.Pos.Line, f.Pos.Column, f.Message)
	}
	return f.Message
}

// Raise panics with a positioned Fault. Used throughout the evaluator
// and native library for fatal conditions.
func Raise(sub Subsystem, pos Pos, format string, args ...any) {
	panic(&Fault{Subsystem: sub, Reason: None, Message: fmt.Sprintf(format, args...), Pos: pos, HasPos: true})
}

// RaiseCatchable panics with a Fault tagged with a non-None Reason, the
// only kind a caller may choose to recover from.
func RaiseCatchable(sub Subsystem, reason Reason, pos Pos, format string, args ...any) {
	panic(&Fault{Subsystem: sub, Reason: reason, Message: fmt.Sprintf(format, args...), Pos: pos, HasPos: true})
}

// RaiseUnpositioned is for faults with no meaningful source location
// (e.g. a script file that can't be loaded before any parsing happens).
func RaiseUnpositioned(sub Subsystem, format string, args ...any) {
	panic(&Fault{Subsystem: sub, Reason: None, Message: fmt.Sprintf(format, args...)})
}

// Catch runs fn and, if it panics with a Fault whose Reason matches
// want, recovers and returns that fault. Any other panic (a different
// Fault reason, or a non-Fault value) re-propagates unchanged.
func Catch(want Reason, fn func()) (caught *Fault) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		flt, ok := r.(*Fault)
		if !ok || flt.Reason != want {
			panic(r)
		}
		caught = flt
	}()
	fn()
	return nil
}
