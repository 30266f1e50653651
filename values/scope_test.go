package values

import "testing"

func TestSetGlobalBypassesNearestBinding(t *testing.T) {
	global := NewScope(nil)
	inner := NewScope(global)
	inner.Bind("z", Int{Value: 1}) // shadows any global z

	inner.SetGlobal("z", Int{Value: 99})

	gv, ok := global.getLocal("z")
	if !ok || gv.(Int).Value != 99 {
		t.Errorf("expected global z=99, got %v, %v", gv, ok)
	}
	iv, _ := inner.getLocal("z")
	if iv.(Int).Value != 1 {
		t.Errorf("expected inner shadow untouched, got %v", iv)
	}
}

func TestLookupWalksChainToOwningScope(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", Int{Value: 7})
	mid := NewScope(global)
	leaf := NewScope(mid)

	ref, ok := leaf.Lookup("x")
	if !ok {
		t.Fatalf("expected lookup to find x in global scope")
	}
	if ref.Scope != global {
		t.Errorf("expected Ref to point at the defining (global) scope")
	}
	if ref.Get().(Int).Value != 7 {
		t.Errorf("expected dereffed value 7, got %v", ref.Get())
	}
}

func TestLookupMissReturnsFalse(t *testing.T) {
	global := NewScope(nil)
	_, ok := global.Lookup("nope")
	if ok {
		t.Errorf("expected lookup miss for unbound name")
	}
}

func TestDerefFollowsRefChain(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", Int{Value: 42})
	frame := NewScope(global)
	xRef, _ := global.Lookup("x")
	frame.Bind("a", xRef) // byRef-style binding: a's slot holds a Ref

	aRef, _ := frame.Lookup("a")
	got := Deref(aRef)
	if i, ok := got.(Int); !ok || i.Value != 42 {
		t.Errorf("expected Deref to chase through to Int(42), got %v", got)
	}
}

func TestAssignThroughRefWritesToOriginalSlotForByRefAlias(t *testing.T) {
	global := NewScope(nil)
	global.Bind("x", Int{Value: 1})
	frame := NewScope(global)
	xRef, _ := global.Lookup("x")
	frame.Bind("a", xRef)

	aRef, _ := frame.Lookup("a")
	AssignThroughRef(aRef, Int{Value: 2})

	gv, _ := global.getLocal("x")
	if gv.(Int).Value != 2 {
		t.Errorf("expected global x updated to 2 via byRef alias, got %v", gv)
	}
}

func TestIndexRefReadWrite(t *testing.T) {
	arr := &Array{Elements: []Value{Int{Value: 1}, Int{Value: 2}, Int{Value: 3}}}
	ref := IndexRef{Arr: arr, Idx: 1}
	if ref.Get().(Int).Value != 2 {
		t.Errorf("expected element 1 to be 2, got %v", ref.Get())
	}
	ref.Set(Int{Value: 99})
	if arr.Elements[1].(Int).Value != 99 {
		t.Errorf("expected in-place write through IndexRef, got %v", arr.Elements[1])
	}
}

func TestIndexRefOutOfRangeIsSilentNilRead(t *testing.T) {
	arr := &Array{Elements: []Value{Int{Value: 1}}}
	ref := IndexRef{Arr: arr, Idx: 5}
	if _, ok := ref.Get().(Nil); !ok {
		t.Errorf("expected out-of-range read to yield Nil, got %v", ref.Get())
	}
}
