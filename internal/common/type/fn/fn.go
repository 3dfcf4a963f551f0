// Released under an MIT license. See LICENSE.

// Package fn provides mal's closure type.
package fn

import (
	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/scope"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
	"github.com/feigaoxyz/mal/internal/common/type/env"
)

const name = "function"

// Evaluator evaluates code in the scope s.
type Evaluator func(code cell.I, s scope.I) cell.I

// T (fn) pairs an unevaluated body with the scope it was created in.
type T struct {
	Body   cell.I   // Body of the function.
	Params []string // Parameter names. May contain env.Rest.
	Scope  scope.I  // Captured scope. Shared, not copied.

	eval Evaluator
}

type fn = T

// New creates a closure over the scope s.
func New(params []string, body cell.I, s scope.I, eval Evaluator) cell.I {
	return &fn{
		Body:   body,
		Params: params,
		Scope:  s,
		eval:   eval,
	}
}

// Bool returns the boolean value of the fn f. Every function is true.
func (f *fn) Bool() bool {
	return true
}

// Call evaluates the body of the fn f with params bound to args.
func (f *fn) Call(args ...cell.I) cell.I {
	return f.eval(f.Body, f.Frame(args))
}

// Equal returns true if c is the same fn as f.
func (f *fn) Equal(c cell.I) bool {
	return Is(c) && f == To(c)
}

// Frame creates the scope for a call to f: params bound to args,
// enclosed by the captured scope.
func (f *fn) Frame(args []cell.I) scope.I {
	return env.Bind(f.Scope, f.Params, args)
}

// Kind returns cell.Function.
func (f *fn) Kind() cell.Kind {
	return cell.Function
}

// Literal returns the literal representation of the fn f.
func (f *fn) Literal() string {
	return "#<function>"
}

// Name returns the name of the fn type.
func (f *fn) Name() string {
	return name
}

// String returns the text representation of the fn f.
func (f *fn) String() string {
	return f.Literal()
}

// Is returns true if c is a fn.
func Is(c cell.I) bool {
	_, ok := c.(*fn)

	return ok
}

// To returns a fn if c is a fn; Otherwise it panics.
func To(c cell.I) *fn {
	if t, ok := c.(*fn); ok {
		return t
	}

	panic(c.Name() + " is not a function")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t fn

	// The fn type is a cell.
	_ = cell.I(&t)

	// The fn type has a literal representation.
	_ = literal.I(&t)

	// The fn type is a stringer.
	_ = common.Stringer(&t)

	// The fn type has a truth value.
	_ = truth.I(&t)
}
