/*
File    : ocrpi/values/scope.go
*/
package values

// Scope is one frame of the lexical scope stack: a flat name→value map
// plus a parent pointer. The root of the evaluator's scope chain
// (Parent == nil) is the global scope, and every frame pushed onto that
// chain has a non-nil Parent. An Instance's field set is the one other
// parentless Scope.
type Scope struct {
	objects map[string]Value
	Parent  *Scope
}

// NewScope allocates an empty frame parented to parent. Passing nil
// creates the global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{objects: make(map[string]Value), Parent: parent}
}

// Global walks to the root of s's scope chain.
func (s *Scope) Global() *Scope {
	cur := s
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// getLocal reads a name bound directly in s, without consulting Parent.
func (s *Scope) getLocal(name string) (Value, bool) {
	v, ok := s.objects[name]
	return v, ok
}

// setLocal writes a name directly into s, without consulting Parent.
func (s *Scope) setLocal(name string, v Value) {
	s.objects[name] = v
}

// findObj walks from s toward the root and returns the nearest scope
// that has name bound directly, or nil if no scope in the chain does.
func (s *Scope) findObj(name string) *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		if _, ok := cur.objects[name]; ok {
			return cur
		}
	}
	return nil
}

// Lookup resolves name to a ScopeRef pointing at its defining scope,
// walking the chain from s toward the root. The second return value is
// false on a miss; the evaluator turns that into the catchable
// UnknownVar fault.
func (s *Scope) Lookup(name string) (ScopeRef, bool) {
	if owner := s.findObj(name); owner != nil {
		return ScopeRef{Scope: owner, Name: name}, true
	}
	return ScopeRef{}, false
}

// Bind creates or overwrites name directly in s, without consulting
// Parent. Used for parameter binding, for-loop iterator initialization,
// and function/procedure/class registration, where the binding must
// land in a specific frame regardless of whether an outer scope already
// has that name.
func (s *Scope) Bind(name string, v Value) {
	s.setLocal(name, v)
}

// SetGlobal writes name directly into the root of s's chain,
// unconditionally. This is what the `global` statement uses: `global x
// = 1` inside a function always creates-or-overwrites a binding in the
// global frame, even if a same-named local shadows it in the calling
// frame.
func (s *Scope) SetGlobal(name string, v Value) {
	s.Global().setLocal(name, v)
}

// Names returns every name bound directly in s (not its parents), in no
// particular order; used by the REPL's `.vars` command to list what's
// in scope. Iteration order over a Go map is not semantically
// observable anywhere else in the interpreter, so callers that want a
// stable display order sort the result themselves.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.objects))
	for name := range s.objects {
		names = append(names, name)
	}
	return names
}
