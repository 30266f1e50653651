/*
File    : ocrpi/stdlib/stdlib_test.go
*/
package stdlib

import (
	"bytes"
	"testing"

	"github.com/jaddison06/ocrpi/values"
)

func newGlobalScope(buf *bytes.Buffer) *values.Scope {
	scope := values.NewScope(nil)
	Register(scope, buf)
	return scope
}

func callNativeFunc(t *testing.T, scope *values.Scope, name string, args ...values.Value) values.Value {
	t.Helper()
	ref, ok := scope.Lookup(name)
	if !ok {
		t.Fatalf("native %q not registered", name)
	}
	fn, ok := values.Deref(ref).(values.NativeFunc)
	if !ok {
		t.Fatalf("%q is not a NativeFunc", name)
	}
	return fn.Fn(args)
}

func TestPrintConcatenatesArgumentsWithNoSeparator(t *testing.T) {
	var buf bytes.Buffer
	scope := newGlobalScope(&buf)
	ref, _ := scope.Lookup("print")
	proc := values.Deref(ref).(values.NativeProc)
	proc.Fn([]values.Value{values.String{Value: "a"}, values.Int{Value: 1}})
	if got, want := buf.String(), "a1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintWithZeroArgsStillEmitsNewline(t *testing.T) {
	var buf bytes.Buffer
	scope := newGlobalScope(&buf)
	ref, _ := scope.Lookup("print")
	proc := values.Deref(ref).(values.NativeProc)
	proc.Fn(nil)
	if got := buf.String(); got != "\n" {
		t.Errorf("got %q, want a bare newline", got)
	}
}

func TestTypeofReportsVariantNames(t *testing.T) {
	var buf bytes.Buffer
	scope := newGlobalScope(&buf)
	cases := []struct {
		arg  values.Value
		want string
	}{
		{values.Nil{}, "Nil"},
		{values.Bool{Value: true}, "Bool"},
		{values.Int{Value: 1}, "Int"},
		{values.Float{Value: 1.5}, "Float"},
		{values.String{Value: "s"}, "String"},
	}
	for _, c := range cases {
		got := callNativeFunc(t, scope, "typeof", c.arg).(values.String).Value
		if got != c.want {
			t.Errorf("typeof(%v) = %q, want %q", c.arg, got, c.want)
		}
	}
}

// TestBoolIsIdempotent checks spec's round-trip property:
// bool(bool(x)) == bool(x) for every x where bool(x) succeeds.
func TestBoolIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	scope := newGlobalScope(&buf)
	inputs := []values.Value{
		values.Nil{}, values.Bool{Value: true}, values.Bool{Value: false},
		values.Int{Value: 0}, values.Int{Value: 5}, values.Float{Value: 0},
		values.String{Value: ""}, values.String{Value: "x"},
		&values.Array{Elements: nil}, &values.Array{Elements: []values.Value{values.Int{Value: 1}}},
	}
	for _, in := range inputs {
		once := callNativeFunc(t, scope, "bool", in)
		twice := callNativeFunc(t, scope, "bool", once)
		if once.(values.Bool).Value != twice.(values.Bool).Value {
			t.Errorf("bool(bool(%v)) = %v, want %v", in, twice, once)
		}
	}
}

// TestIntStringRoundTrip checks spec's round-trip property:
// int(string(n)) == n for any Int n.
func TestIntStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	scope := newGlobalScope(&buf)
	for _, n := range []int64{0, 1, -1, 42, -1000} {
		rendered := callNativeFunc(t, scope, "string", values.Int{Value: n})
		back := callNativeFunc(t, scope, "int", rendered)
		if got := back.(values.Int).Value; got != n {
			t.Errorf("int(string(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestStringRendersArraysRecursively(t *testing.T) {
	var buf bytes.Buffer
	scope := newGlobalScope(&buf)
	arr := &values.Array{Elements: []values.Value{values.Int{Value: 1}, values.Int{Value: 2}}}
	got := callNativeFunc(t, scope, "string", arr).(values.String).Value
	if want := "[1, 2]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFloatConvertsFromStringIntAndNil(t *testing.T) {
	var buf bytes.Buffer
	scope := newGlobalScope(&buf)
	if got := callNativeFunc(t, scope, "float", values.String{Value: "3.5"}).(values.Float).Value; got != 3.5 {
		t.Errorf("float(\"3.5\") = %v, want 3.5", got)
	}
	if got := callNativeFunc(t, scope, "float", values.Int{Value: 2}).(values.Float).Value; got != 2.0 {
		t.Errorf("float(2) = %v, want 2.0", got)
	}
	if got := callNativeFunc(t, scope, "float", values.Nil{}).(values.Float).Value; got != 0.0 {
		t.Errorf("float(nil) = %v, want 0.0", got)
	}
}
