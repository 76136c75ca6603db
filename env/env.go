/*
File    : wisk/env/env.go

Package env implements Wisk's lexical environment: a chain of scopes
mapping names to runtime values. It is a direct narrowing of go-mix's
scope.Scope — dropped are Consts, LetVars, LetTypes, and Copy, none of
which the language has a use for (Wisk has one declaration form, var,
and no closures to capture a scope for — see spec.md §9).
*/
package env

import (
	"fmt"

	"github.com/wisklang/wisk/object"
)

// Environment is one scope in the chain: its own bindings plus an
// optional enclosing (parent) scope. A nil Outer marks the global scope.
type Environment struct {
	vars  map[string]object.Object
	Outer *Environment
}

// New creates an environment whose parent is outer (nil for globals).
func New(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Object), Outer: outer}
}

// Define binds name to value in this scope. Redeclaring a name already
// bound in this same scope is a runtime error — spec.md §8/§9 require
// idempotent redefinition to fail rather than silently overwrite, which
// is where env deliberately departs from the teacher's Bind (the
// teacher overwrites unconditionally).
func (e *Environment) Define(name string, value object.Object) error {
	if _, ok := e.vars[name]; ok {
		return fmt.Errorf("Variable '%s' already defined", name)
	}
	e.vars[name] = value
	return nil
}

// Get walks the scope chain outward looking for name.
func (e *Environment) Get(name string) (object.Object, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Outer != nil {
		return e.Outer.Get(name)
	}
	return nil, false
}

// Assign walks the scope chain outward and updates name's binding in
// whichever scope it was originally defined in. It reports an error if
// name is bound nowhere in the chain — assignment never implicitly
// declares.
func (e *Environment) Assign(name string, value object.Object) error {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = value
		return nil
	}
	if e.Outer != nil {
		return e.Outer.Assign(name, value)
	}
	return fmt.Errorf("undefined variable %q", name)
}
