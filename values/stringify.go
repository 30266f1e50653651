/*
File    : ocrpi/values/stringify.go
*/
package values

import (
	"fmt"
	"strconv"
	"strings"
)

// Stringify renders v the way the native `print` and `string()` builtins
// do: numbers in decimal, nil/true/false lowercase, arrays recursively
// as `[a, b, c]`, and functions/classes as an angle-bracket placeholder
// rather than a fault (print/string must never fail on a callable, only
// equality/truthiness treat those as errors).
func Stringify(v Value) string {
	switch x := v.(type) {
	case Nil:
		return "nil"
	case Bool:
		if x.Value {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(x.Value, 10)
	case Float:
		return strconv.FormatFloat(x.Value, 'f', -1, 64)
	case String:
		return x.Value
	case *Array:
		parts := make([]string, len(x.Elements))
		for i, el := range x.Elements {
			parts[i] = Stringify(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Func:
		return fmt.Sprintf("<function %s>", x.Decl.Name)
	case Proc:
		return fmt.Sprintf("<procedure %s>", x.Decl.Name)
	case NativeFunc:
		return fmt.Sprintf("<native function %s>", x.Name)
	case NativeProc:
		return fmt.Sprintf("<native procedure %s>", x.Name)
	case *Class:
		return fmt.Sprintf("<class %s>", x.Decl.Name)
	case *Instance:
		return fmt.Sprintf("<instance of %s>", x.Class.Decl.Name)
	case Ref:
		return Stringify(Deref(v))
	default:
		return "<unknown>"
	}
}

// Truthy reports x's truthiness and whether x is a variant truthiness is
// even defined for. Functions, natives, classes, and instances return
// ok=false; the caller decides how to turn that into a fault (the
// evaluator and the stdlib `bool()` builtin raise it differently).
func Truthy(v Value) (truth bool, ok bool) {
	switch x := v.(type) {
	case Nil:
		return false, true
	case Bool:
		return x.Value, true
	case Int:
		return x.Value > 0, true
	case Float:
		return x.Value > 0, true
	case String:
		return x.Value != "", true
	case *Array:
		return len(x.Elements) > 0, true
	default:
		return false, false
	}
}
