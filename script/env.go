package script

// Env is one lexical scope: a name to value mapping plus a link to the
// enclosing scope. Scopes are shared, not owned: closures and call frames
// referencing an Env keep it alive, and the garbage collector reclaims a
// chain once the last reference drops.
type Env struct {
	vars   map[string]Value
	parent *Env
}

// NewEnv creates a scope nested in parent. A nil parent makes a root scope.
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]Value), parent: parent}
}

// Define creates or overwrites a binding in this scope only. It never
// touches parent scopes; use it for let bindings and parameters.
func (e *Env) Define(name string, v Value) {
	e.vars[name] = v
}

// Assign updates the nearest existing binding for name, searching outward
// through the parent chain. It reports false when name is bound nowhere.
func (e *Env) Assign(name string, v Value) bool {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return true
		}
	}
	return false
}

// Lookup resolves name, searching outward through the parent chain.
func (e *Env) Lookup(name string) (Value, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return Nil, false
}
