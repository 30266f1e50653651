/*
File    : ocrpi/eval/eval_operators.go
*/
package eval

import (
	"github.com/jaddison06/ocrpi/ast"
	"github.com/jaddison06/ocrpi/faults"
	"github.com/jaddison06/ocrpi/lexer"
	"github.com/jaddison06/ocrpi/values"
)

func (e *Evaluator) evalUnary(n *ast.Unary) values.Value {
	switch n.Op {
	case lexer.NOT:
		truth, ok := values.Truthy(values.Deref(e.Eval(n.X)))
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "'not' requires a boolean-like operand")
		}
		return values.Bool{Value: !truth}
	case lexer.MINUS:
		v := values.Deref(e.Eval(n.X))
		switch x := v.(type) {
		case values.Int:
			return values.Int{Value: -x.Value}
		case values.Float:
			return values.Float{Value: -x.Value}
		default:
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Unary '-' requires a number")
		}
	}
	panic("eval: unhandled unary operator")
}

func (e *Evaluator) evalBinary(n *ast.Binary) values.Value {
	switch n.Op {
	case lexer.AND:
		l, ok := values.Truthy(values.Deref(e.Eval(n.Left)))
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "'AND' requires boolean-like operands")
		}
		if !l {
			return values.Bool{Value: false}
		}
		r, ok := values.Truthy(values.Deref(e.Eval(n.Right)))
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "'AND' requires boolean-like operands")
		}
		return values.Bool{Value: r}
	case lexer.OR:
		l, ok := values.Truthy(values.Deref(e.Eval(n.Left)))
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "'OR' requires boolean-like operands")
		}
		if l {
			return values.Bool{Value: true}
		}
		r, ok := values.Truthy(values.Deref(e.Eval(n.Right)))
		if !ok {
			faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "'OR' requires boolean-like operands")
		}
		return values.Bool{Value: r}
	}

	left := values.Deref(e.Eval(n.Left))
	right := values.Deref(e.Eval(n.Right))

	switch n.Op {
	case lexer.EQUAL_EQUAL:
		return values.Bool{Value: e.valuesEqual(n, left, right)}
	case lexer.BANG_EQUAL:
		return values.Bool{Value: !e.valuesEqual(n, left, right)}
	case lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL:
		return e.compare(n, left, right)
	case lexer.PLUS:
		return e.evalPlus(n, left, right)
	case lexer.MINUS:
		return e.arith(n, left, right, "-")
	case lexer.STAR:
		return e.arith(n, left, right, "*")
	case lexer.SLASH:
		return e.arith(n, left, right, "/")
	case lexer.CARET:
		return e.arith(n, left, right, "^")
	case lexer.MOD:
		return e.intOnly(n, left, right, "MOD")
	case lexer.DIV:
		return e.intOnly(n, left, right, "DIV")
	}
	panic("eval: unhandled binary operator")
}

func numericPair(v values.Value) (f float64, isFloat bool, ok bool) {
	switch x := v.(type) {
	case values.Int:
		return float64(x.Value), false, true
	case values.Float:
		return x.Value, true, true
	default:
		return 0, false, false
	}
}

// evalPlus overloads `+` across numbers, strings, and arrays: numeric
// addition with Int/Float promotion, string concatenation, and array
// concatenation into a freshly allocated *Array.
func (e *Evaluator) evalPlus(n *ast.Binary, left, right values.Value) values.Value {
	if ls, ok := left.(values.String); ok {
		if rs, ok := right.(values.String); ok {
			return values.String{Value: ls.Value + rs.Value, Owned: true}
		}
	}
	if la, ok := left.(*values.Array); ok {
		if ra, ok := right.(*values.Array); ok {
			elems := make([]values.Value, 0, len(la.Elements)+len(ra.Elements))
			elems = append(elems, la.Elements...)
			elems = append(elems, ra.Elements...)
			return &values.Array{Elements: elems}
		}
	}
	return e.arith(n, left, right, "+")
}

func (e *Evaluator) arith(n *ast.Binary, left, right values.Value, op string) values.Value {
	lf, lFloat, lok := numericPair(left)
	rf, rFloat, rok := numericPair(right)
	if !lok || !rok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "'%s' requires numeric operands", op)
	}
	if op == "/" && rf == 0 {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Division by zero")
	}
	if lFloat || rFloat {
		return values.Float{Value: applyArith(op, lf, rf)}
	}
	return values.Int{Value: int64(applyArith(op, lf, rf))}
}

func applyArith(op string, l, r float64) float64 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		return l / r
	case "^":
		result := 1.0
		for i := 0; i < int(r); i++ {
			result *= l
		}
		return result
	}
	panic("eval: unhandled arithmetic operator")
}

// intOnly implements MOD/DIV. The source spec describes only `+ - * /
// ^` explicitly and leaves MOD/DIV's operand types unstated; requiring
// both operands to be Int is this interpreter's resolution of that
// silence, kept consistent with MOD/DIV's keyword-based, factor-level
// grouping in the grammar.
func (e *Evaluator) intOnly(n *ast.Binary, left, right values.Value, op string) values.Value {
	li, lok := left.(values.Int)
	ri, rok := right.(values.Int)
	if !lok || !rok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "'%s' requires integer operands", op)
	}
	if ri.Value == 0 {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Division by zero")
	}
	if op == "MOD" {
		return values.Int{Value: li.Value % ri.Value}
	}
	return values.Int{Value: li.Value / ri.Value}
}

func (e *Evaluator) compare(n *ast.Binary, left, right values.Value) values.Value {
	lf, _, lok := numericPair(left)
	rf, _, rok := numericPair(right)
	if !lok || !rok {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Comparison requires numeric operands")
	}
	switch n.Op {
	case lexer.LESS:
		return values.Bool{Value: lf < rf}
	case lexer.LESS_EQUAL:
		return values.Bool{Value: lf <= rf}
	case lexer.GREATER:
		return values.Bool{Value: lf > rf}
	case lexer.GREATER_EQUAL:
		return values.Bool{Value: lf >= rf}
	}
	panic("eval: unhandled comparison operator")
}

// valuesEqual permits Int/Float cross-type comparison via numeric
// promotion but treats any other tag mismatch as simply false, while
// faulting on callable/class operands regardless of the other side:
// equality is never meaningful for those.
func (e *Evaluator) valuesEqual(n *ast.Binary, left, right values.Value) bool {
	if isUncomparable(left) || isUncomparable(right) {
		faults.Raise(faults.Interpreter, toFaultPos(n.Pos), "Values of this type cannot be compared for equality")
	}
	if lf, _, lok := numericPair(left); lok {
		if rf, _, rok := numericPair(right); rok {
			return lf == rf
		}
		return false
	}
	switch l := left.(type) {
	case values.Bool:
		r, ok := right.(values.Bool)
		return ok && l.Value == r.Value
	case values.String:
		r, ok := right.(values.String)
		return ok && l.Value == r.Value
	case values.Nil:
		_, ok := right.(values.Nil)
		return ok
	case *values.Array:
		r, ok := right.(*values.Array)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !e.valuesEqual(n, values.Deref(l.Elements[i]), values.Deref(r.Elements[i])) {
				return false
			}
		}
		return true
	}
	return false
}

func isUncomparable(v values.Value) bool {
	switch v.(type) {
	case values.Func, values.Proc, values.NativeFunc, values.NativeProc, *values.Class, *values.Instance:
		return true
	default:
		return false
	}
}
