// Released under an MIT license. See LICENSE.

// Package env provides mal's lexical environment type.
package env

import (
	"sort"

	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/scope"
	"github.com/feigaoxyz/mal/internal/common/struct/hash"
	"github.com/feigaoxyz/mal/internal/common/type/list"
	"github.com/feigaoxyz/mal/internal/common/validate"
)

// Rest is the parameter marker that binds the next parameter to every remaining argument.
const Rest = "&"

// T (env) maps names to values and links to an enclosing env.
type T struct {
	previous scope.I
	local    *hash.T
}

type env = T

// New creates a new env enclosed by previous, which may be nil.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		local:    hash.New(),
	}
}

// Bind creates a new env enclosed by previous with each name in params
// bound to the argument at the same position in args. If params contains
// Rest, the name after it is bound to a list of the remaining arguments.
func Bind(previous scope.I, params []string, args []cell.I) scope.I {
	required, variadic := len(params), false

	for i, p := range params {
		if p == Rest {
			required, variadic = i, true

			break
		}
	}

	if len(args) < required || (!variadic && len(args) > required) {
		expected := validate.Count(required, "argument", "s")
		if variadic {
			expected = "at least " + expected
		}

		panic(&condition.Arity{
			Name:     "function",
			Expected: expected,
			Passed:   len(args),
		})
	}

	e := New(previous)

	for i := 0; i < required; i++ {
		e.Set(params[i], args[i])
	}

	if variadic && required+1 < len(params) {
		e.Set(params[required+1], list.New(args[required:]...))
	}

	return e
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Get returns the value associated with the name k, searching enclosing
// scopes. If k is not defined anywhere, Get panics.
func (e *env) Get(k string) cell.I {
	v, ok := e.Lookup(k)
	if !ok {
		panic(&condition.UnboundSymbol{Name: k})
	}

	return v
}

// Lookup retrieves the value associated with the name k in the env e or
// the nearest enclosing scope that defines it.
func (e *env) Lookup(k string) (cell.I, bool) {
	if e == nil {
		return nil, false
	}

	v, ok := e.local.Get(k)
	if !ok && e.previous != nil {
		return e.previous.Lookup(k)
	}

	return v, ok
}

// Names returns the names visible from the env e.
func (e *env) Names() []string {
	seen := map[string]bool{}
	names := []string{}

	for _, k := range e.local.Keys() {
		seen[k] = true
		names = append(names, k)
	}

	if e.previous != nil {
		for _, k := range e.previous.Names() {
			if !seen[k] {
				names = append(names, k)
			}
		}
	}

	sort.Strings(names)

	return names
}

// Set associates the name k with the cell v in the env e and returns v.
// Enclosing scopes are never modified.
func (e *env) Set(k string, v cell.I) cell.I {
	e.local.Set(k, v)

	return v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a scope.
	_ = scope.I(&t)
}
