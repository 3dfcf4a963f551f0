// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/scope"
	"github.com/feigaoxyz/mal/internal/common/type/builtin"
	"github.com/feigaoxyz/mal/internal/common/type/fn"
	"github.com/feigaoxyz/mal/internal/common/type/hashmap"
	"github.com/feigaoxyz/mal/internal/common/type/list"
	"github.com/feigaoxyz/mal/internal/common/type/sym"
	"github.com/feigaoxyz/mal/internal/common/type/vector"
)

const debug = false

// The registers type holds the state of the evaluator between iterations.
// A tail position replaces code and scope instead of recursing.
type registers struct {
	code  cell.I
	scope scope.I
}

// Eval evaluates c in the scope s.
// Errors are raised with panic. See condition.Recover.
func Eval(c cell.I, s scope.I) cell.I {
	r := &registers{code: c, scope: s}

	for {
		if debug {
			println("Code:", literal.String(r.code))
		}

		switch r.code.Kind() {
		case cell.Symbol:
			return r.scope.Get(sym.To(r.code).Text())
		case cell.Vector:
			return vector.New(each(vector.To(r.code).Elements(), r.scope)...)
		case cell.Hashmap:
			return values(hashmap.To(r.code).Elements(), r.scope)
		case cell.List:
		default:
			return r.code
		}

		l := list.To(r.code).Elements()
		if len(l) == 0 {
			return r.code
		}

		if sym.Is(l[0]) {
			if op, found := operations[sym.To(l[0]).Text()]; found {
				v, next := op(r, l[1:])
				if !next {
					return v
				}

				continue
			}
		}

		v := each(l, r.scope)

		switch f := v[0].(type) {
		case *fn.T:
			r.code = f.Body
			r.scope = f.Frame(v[1:])
		case *builtin.T:
			return f.Call(v[1:])
		default:
			panic(&condition.NotCallable{
				Kind: f.Name(),
				Text: literal.String(f),
			})
		}
	}
}

func each(cs []cell.I, s scope.I) []cell.I {
	v := make([]cell.I, len(cs))

	for i, c := range cs {
		v[i] = Eval(c, s)
	}

	return v
}

// Keys are kept as is. Only values are evaluated.
func values(kvs []cell.I, s scope.I) cell.I {
	v := make([]cell.I, len(kvs))

	for i := 0; i < len(kvs); i += 2 {
		v[i] = kvs[i]
		v[i+1] = Eval(kvs[i+1], s)
	}

	return hashmap.New(v...)
}
