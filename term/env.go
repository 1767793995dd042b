package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/quosi"
)

// Value is the result type of evaluation. Expression trees evaluate to
// atomic values, operators, or — under quoting evaluation — to
// expression trees again, so values are untyped from the engine's
// perspective.
type Value = interface{}

// Binding associates a name with a value inside one scope.
type Binding struct {
	name  string
	Value Value
}

// Name gets the binding's name.
func (b *Binding) Name() string {
	return b.name
}

// String is a debug Stringer for bindings.
func (b *Binding) String() string {
	return fmt.Sprintf("<binding '%s'>", b.name)
}

// === Environments ==========================================================

// Environment is a named scope with a binding table, linking back to a
// parent scope. Environments form a tree of scopes. An environment may
// be shared by many promises and quoted closures created in its scope;
// the engine itself only ever reads it after construction.
type Environment struct {
	Name     string
	Parent   *Environment
	bindings map[string]*Binding
}

// NewEnvironment creates a new environment with the given parent scope.
// A nil parent makes the environment a root scope.
func NewEnvironment(name string, parent *Environment) *Environment {
	return &Environment{
		Name:     name,
		Parent:   parent,
		bindings: make(map[string]*Binding),
	}
}

// Prettyfied Stringer.
func (env *Environment) String() string {
	return fmt.Sprintf("<env %s>", env.Name)
}

// Extend creates a child scope of this environment.
func (env *Environment) Extend(name string) *Environment {
	return NewEnvironment(name, env)
}

// Def defines a binding in this scope, overwriting a previous binding
// with this name, if any. Ancestor scopes are never touched.
func (env *Environment) Def(name string, v Value) *Binding {
	b := &Binding{name: name, Value: v}
	env.bindings[name] = b
	return b
}

// Defn defines an operator binding in this scope.
func (env *Environment) Defn(name string, f BuiltinFunc) *Binding {
	return env.Def(name, &builtin{name: name, call: f})
}

// FindBinding checks for a binding in this scope. With inherit set, the
// parent chain is walked; the first match wins. Returns nil if no scope
// defines the name.
func (env *Environment) FindBinding(name string, inherit bool) *Binding {
	for e := env; e != nil; e = e.Parent {
		if b, ok := e.bindings[name]; ok {
			return b
		}
		if !inherit {
			break
		}
	}
	return nil
}

// Lookup resolves a name against this environment chain. A miss is an
// UnboundSymbolError, propagated to the caller, never silently defaulted.
func (env *Environment) Lookup(name string) (Value, error) {
	b := env.FindBinding(name, true)
	if b == nil {
		return nil, &quosi.UnboundSymbolError{Name: name}
	}
	return b.Value, nil
}

// Size counts the bindings of this scope, excluding ancestors.
func (env *Environment) Size() int {
	return len(env.bindings)
}

// Each iterates over each binding of this scope, executing a mapper
// function. Ancestor scopes are not visited.
func (env *Environment) Each(mapper func(string, *Binding)) {
	for k, v := range env.bindings {
		mapper(k, v)
	}
}

// Dump lists the bindings of this scope in stable (sorted) name order.
// Intended for debugging.
func (env *Environment) Dump() string {
	names := treeset.NewWith(utils.StringComparator)
	for name := range env.bindings {
		names.Add(name)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s {\n", env))
	for _, name := range names.Values() {
		n := name.(string)
		b.WriteString(fmt.Sprintf("   %s = %v\n", n, env.bindings[n].Value))
	}
	b.WriteString("}")
	return b.String()
}
