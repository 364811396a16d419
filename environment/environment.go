/*
File   : lpm-go/environment/environment.go
Package: environment
*/

// Package environment implements the lexical scope chain LPM programs
// evaluate against: a mapping from name to runtime value, plus an optional
// outer environment. Lookup walks outward from the innermost scope;
// insertion always targets the innermost scope — bindings are
// introduce-only, there is no assignment operator beyond `variable`
// introduction (spec.md §9).
package environment

import "github.com/sebaez11/lpm-go/object"

// Environment is one link in the scope chain. A nil Outer marks the global
// scope.
type Environment struct {
	store map[string]object.Object
	Outer *Environment
}

// New creates a fresh global environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates a new scope nested inside outer. The evaluator uses it
// for function call frames only (blocks evaluate in the enclosing scope):
// each call gets a fresh Environment enclosed by the function's captured
// environment, which is what makes closures work (see object.Function.Env
// and the evaluator's extendFunctionEnv).
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), Outer: outer}
}

// Get looks up name in this scope, then walks outward through Outer scopes
// until it is found or the chain is exhausted.
func (e *Environment) Get(name string) (object.Object, bool) {
	val, ok := e.store[name]
	if !ok && e.Outer != nil {
		return e.Outer.Get(name)
	}
	return val, ok
}

// Set introduces or overwrites a binding in THIS scope only — it never
// reaches into an outer scope. Re-declaring a name in the same scope
// overwrites it; declaring a name already bound in an outer scope shadows
// that outer binding for the remainder of this scope's lifetime.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
