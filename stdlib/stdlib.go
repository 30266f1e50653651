/*
File    : ocrpi/stdlib/stdlib.go
*/

// Package stdlib registers OCR-script's native function/procedure
// library into a scope. The library is deliberately tiny: print,
// typeof, bool, string, float, int, the handful of bindings the
// language ships with rather than a general-purpose standard library.
package stdlib

import (
	"io"
	"strconv"
	"strings"

	"github.com/jaddison06/ocrpi/faults"
	"github.com/jaddison06/ocrpi/values"
)

// Register binds every native function/procedure directly into scope.
// w is where `print` writes; passing os.Stdout gives the CLI's normal
// behavior, a bytes.Buffer lets tests capture output.
func Register(scope *values.Scope, w io.Writer) {
	scope.Bind("print", values.NativeProc{Name: "print", Fn: printProc(w)})
	scope.Bind("typeof", values.NativeFunc{Name: "typeof", Fn: typeofFunc})
	scope.Bind("bool", values.NativeFunc{Name: "bool", Fn: boolFunc})
	scope.Bind("string", values.NativeFunc{Name: "string", Fn: stringFunc})
	scope.Bind("float", values.NativeFunc{Name: "float", Fn: floatFunc})
	scope.Bind("int", values.NativeFunc{Name: "int", Fn: intFunc})
}

// printProc stringifies and concatenates every argument with no
// separator, then writes a single trailing newline. Called with zero
// arguments it still emits a bare "\n".
func printProc(w io.Writer) func([]values.Value) {
	return func(args []values.Value) {
		var sb strings.Builder
		for _, a := range args {
			sb.WriteString(values.Stringify(a))
		}
		sb.WriteByte('\n')
		io.WriteString(w, sb.String())
	}
}

// requireArity faults with the rendered form of every argument actually
// passed, not just a bare count, matching the native library's habit of
// stringifying the offending values into its diagnostics.
func requireArity(name string, args []values.Value, want int) {
	if len(args) != want {
		rendered := make([]string, len(args))
		for i, a := range args {
			rendered[i] = values.Stringify(a)
		}
		faults.RaiseUnpositioned(faults.NativeLib, "Called %s with %d args (%s) instead of %d", name, len(args), strings.Join(rendered, ", "), want)
	}
}

func typeofFunc(args []values.Value) values.Value {
	requireArity("typeof", args, 1)
	return values.String{Value: args[0].Kind(), Owned: true}
}

func boolFunc(args []values.Value) values.Value {
	requireArity("bool", args, 1)
	truth, ok := values.Truthy(args[0])
	if !ok {
		faults.RaiseUnpositioned(faults.NativeLib, "bool() can't convert %s", values.Stringify(args[0]))
	}
	return values.Bool{Value: truth}
}

func stringFunc(args []values.Value) values.Value {
	requireArity("string", args, 1)
	return values.String{Value: values.Stringify(args[0]), Owned: true}
}

func floatFunc(args []values.Value) values.Value {
	requireArity("float", args, 1)
	f, ok := toFloat(args[0])
	if !ok {
		faults.RaiseUnpositioned(faults.NativeLib, "float() can't convert %s", values.Stringify(args[0]))
	}
	return values.Float{Value: f}
}

func intFunc(args []values.Value) values.Value {
	requireArity("int", args, 1)
	i, ok := toInt(args[0])
	if !ok {
		faults.RaiseUnpositioned(faults.NativeLib, "int() can't convert %s", values.Stringify(args[0]))
	}
	return values.Int{Value: i}
}

func toFloat(v values.Value) (float64, bool) {
	switch x := v.(type) {
	case values.Int:
		return float64(x.Value), true
	case values.Float:
		return x.Value, true
	case values.Nil:
		return 0, true
	case values.String:
		f, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func toInt(v values.Value) (int64, bool) {
	switch x := v.(type) {
	case values.Int:
		return x.Value, true
	case values.Float:
		return int64(x.Value), true
	case values.Nil:
		return 0, true
	case values.String:
		i, err := strconv.ParseInt(x.Value, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
