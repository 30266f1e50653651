package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaddison06/ocrpi/ast"
)

func TestParseGlobalAndExprStmt(t *testing.T) {
	p := New(`global x = 3
print(x)`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, prog.Items, 2)

	g, ok := prog.Items[0].(*ast.GlobalStmt)
	require.True(t, ok)
	assert.Equal(t, "x", g.Name)
	lit, ok := g.Value.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(3), lit.Value)

	es, ok := prog.Items[1].(*ast.ExprStmt)
	require.True(t, ok)
	call, ok := es.X.(*ast.Call)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "print", callee.Name)
}

func TestParseFunctionDecl(t *testing.T) {
	p := New(`function add(a, b)
    return a + b
endfunction`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, prog.Items, 1)

	fn, ok := prog.Items[0].(*ast.FunDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.False(t, fn.Params[0].ByRef)
	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.Binary)
	require.True(t, ok)
	assert.NotNil(t, bin.Left)
	assert.NotNil(t, bin.Right)
}

func TestParseProcedureWithByRefParams(t *testing.T) {
	p := New(`procedure swap(a:byRef, b:byRef)
    t = a
    a = b
    b = t
endprocedure`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	proc, ok := prog.Items[0].(*ast.ProcDecl)
	require.True(t, ok)
	require.Len(t, proc.Params, 2)
	assert.True(t, proc.Params[0].ByRef)
	assert.True(t, proc.Params[1].ByRef)
	require.Len(t, proc.Body, 3)
}

func TestParseForLoopExclusiveRange(t *testing.T) {
	p := New(`for i = 0 to 3
    print(i)
next i`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	forStmt, ok := prog.Items[0].(*ast.ForStmt)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Iter)
	require.Len(t, forStmt.Body, 1)
}

func TestParseForLoopMismatchedIteratorIsRecordedButRecovers(t *testing.T) {
	p := New(`for i = 0 to 3
    print(i)
next j
print("after")`)
	prog := p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.Errors[0].Message, "Differing iterator names")
	// parsing continues past the mismatch: the next statement is still
	// captured.
	require.Len(t, prog.Items, 2)
}

func TestParseIfElseIfElse(t *testing.T) {
	p := New(`if x < 0 then
    print("neg")
elseif x == 0 then
    print("zero")
else
    print("pos")
endif`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	ifStmt, ok := prog.Items[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.ElseIfs, 1)
	require.Len(t, ifStmt.Else, 1)
}

func TestParseWhileAndDoUntil(t *testing.T) {
	p := New(`while x < 10
    x = x + 1
endwhile
do
    x = x - 1
until x == 0`)
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, prog.Items, 2)

	_, ok := prog.Items[0].(*ast.WhileStmt)
	assert.True(t, ok)
	_, ok = prog.Items[1].(*ast.DoUntilStmt)
	assert.True(t, ok)
}

func TestParseSwitchWithDefault(t *testing.T) {
	p := New(`switch x
case 1:
    print("one")
case 2:
    print("two")
default:
    print("other")
endswitch`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	sw, ok := prog.Items[0].(*ast.SwitchStmt)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	require.Len(t, sw.Default, 1)
}

func TestParseSwitchCaseAfterDefaultIsAnError(t *testing.T) {
	p := New(`switch x
default:
    print("other")
case 1:
    print("one")
endswitch`)
	p.Parse()
	require.True(t, p.HasErrors())
}

func TestParseArrayDimensions(t *testing.T) {
	p := New(`array scores[10, 20]`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	arr, ok := prog.Items[0].(*ast.ArrayStmt)
	require.True(t, ok)
	assert.Equal(t, "scores", arr.Name)
	require.Len(t, arr.Dims, 2)
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	p := New(`a = b = c`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	es := prog.Items[0].(*ast.ExprStmt)
	outer, ok := es.X.(*ast.Assign)
	require.True(t, ok)
	_, innerIsAssign := outer.Value.(*ast.Assign)
	assert.True(t, innerIsAssign, "a = b = c should parse as a = (b = c)")
}

func TestParseCompoundAssignment(t *testing.T) {
	p := New(`x += 1`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	es := prog.Items[0].(*ast.ExprStmt)
	ca, ok := es.X.(*ast.CompoundAssign)
	require.True(t, ok)
	assert.Equal(t, "+=", ca.Op.String())
}

func TestParseCallMemberIndexChain(t *testing.T) {
	p := New(`obj.field[0](1)`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	es := prog.Items[0].(*ast.ExprStmt)
	call, ok := es.X.(*ast.Call)
	require.True(t, ok)
	idx, ok := call.Callee.(*ast.Index)
	require.True(t, ok)
	member, ok := idx.Target.(*ast.Member)
	require.True(t, ok)
	assert.Equal(t, "field", member.Name)
}

func TestParseStringLiteralStripsQuotes(t *testing.T) {
	p := New(`"hello, world"`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	es := prog.Items[0].(*ast.ExprStmt)
	str, ok := es.X.(*ast.StringLit)
	require.True(t, ok)
	assert.Equal(t, "hello, world", str.Value)
}

func TestParseClassWithInheritsAndMethods(t *testing.T) {
	p := New(`class Dog inherits Animal
    public function speak()
        return "woof"
    endfunction
endclass`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	cls, ok := prog.Items[0].(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "Dog", cls.Name)
	assert.Equal(t, "Animal", cls.Superclass)
	require.Len(t, cls.Methods, 1)
	assert.True(t, cls.Methods[0].Returns)
	assert.True(t, cls.Methods[0].Public)
}

func TestParseUnexpectedTokenRecordsSingleErrorAndRecovers(t *testing.T) {
	p := New(`)))
function valid()
    return 1
endfunction`)
	prog := p.Parse()
	require.True(t, p.HasErrors())
	assert.Equal(t, 1, len(p.Errors))

	var foundFn bool
	for _, item := range prog.Items {
		if _, ok := item.(*ast.FunDecl); ok {
			foundFn = true
		}
	}
	assert.True(t, foundFn, "parser should recover and still parse the valid function")
}

func TestParseIsDeterministic(t *testing.T) {
	src := `global x = 1
function f(a)
    return a * 2
endfunction
print(f(x))`
	p1 := New(src)
	prog1 := p1.Parse()
	p2 := New(src)
	prog2 := p2.Parse()
	require.Equal(t, len(prog1.Items), len(prog2.Items))
	for i := range prog1.Items {
		assert.IsType(t, prog1.Items[i], prog2.Items[i])
	}
}
