// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
	"github.com/feigaoxyz/mal/internal/common/type/env"
	"github.com/feigaoxyz/mal/internal/common/type/fn"
	"github.com/feigaoxyz/mal/internal/common/type/null"
	"github.com/feigaoxyz/mal/internal/common/type/sym"
	"github.com/feigaoxyz/mal/internal/common/validate"
)

// An operation implements a special form. It is passed the unevaluated
// arguments. When the boolean it returns is true, the registers have been
// updated and evaluation continues; otherwise the cell is the result.
type operation func(r *registers, args []cell.I) (cell.I, bool)

var operations map[string]operation //nolint:gochecknoglobals

//nolint:gochecknoinits
func init() {
	operations = map[string]operation{
		"def!":  define,
		"do":    do,
		"fn*":   closure,
		"if":    branch,
		"let*":  let,
		"quote": quote,
	}
}

func branch(r *registers, args []cell.I) (cell.I, bool) {
	validate.Range("if", args, 2, 3)

	switch {
	case truth.Value(Eval(args[0], r.scope)):
		r.code = args[1]
	case len(args) == 3:
		r.code = args[2]
	default:
		return null.Nil, false
	}

	return nil, true
}

func closure(r *registers, args []cell.I) (cell.I, bool) {
	validate.Fixed("fn*", args, 2)

	ps := elements("fn*", args[0])
	params := make([]string, len(ps))

	for i, p := range ps {
		params[i] = symbol("fn*", p)
	}

	return fn.New(params, args[1], r.scope, Eval), false
}

func define(r *registers, args []cell.I) (cell.I, bool) {
	validate.Fixed("def!", args, 2)

	k := symbol("def!", args[0])

	return r.scope.Set(k, Eval(args[1], r.scope)), false
}

func do(r *registers, args []cell.I) (cell.I, bool) {
	validate.AtLeast("do", args, 1)

	n := len(args) - 1
	for _, c := range args[:n] {
		Eval(c, r.scope)
	}

	r.code = args[n]

	return nil, true
}

func let(r *registers, args []cell.I) (cell.I, bool) {
	validate.Fixed("let*", args, 2)

	bindings := elements("let*", args[0])
	if len(bindings)%2 != 0 {
		panic(&condition.Arity{
			Name:     "let*",
			Expected: "an even number of binding elements",
			Passed:   len(bindings),
		})
	}

	s := env.New(r.scope)

	for i := 0; i < len(bindings); i += 2 {
		k := symbol("let*", bindings[i])
		s.Set(k, Eval(bindings[i+1], s))
	}

	r.code = args[1]
	r.scope = s

	return nil, true
}

func quote(_ *registers, args []cell.I) (cell.I, bool) {
	validate.Fixed("quote", args, 1)

	return args[0], false
}

// Helper functions.

func elements(form string, c cell.I) []cell.I {
	if s, ok := c.(interface{ Elements() []cell.I }); ok && cell.Sequential(c) {
		return s.Elements()
	}

	panic(condition.NewWrongType(form, "list or vector", c.Name()))
}

func symbol(form string, c cell.I) string {
	if !sym.Is(c) {
		panic(condition.NewWrongType(form, "symbol", c.Name()))
	}

	return sym.To(c).Text()
}
