// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/type/builtin"
	"github.com/feigaoxyz/mal/internal/common/type/fn"
	"github.com/feigaoxyz/mal/internal/common/type/list"
	"github.com/feigaoxyz/mal/internal/common/validate"
)

// The last argument is spliced into the arguments before it.
func apply(args []cell.I) cell.I {
	validate.AtLeast("apply", args, 2)

	n := len(args) - 1
	v := append(append([]cell.I{}, args[1:n]...), elements("apply", args[n])...)

	return call(args[0], v)
}

func mapf(args []cell.I) cell.I {
	validate.Fixed("map", args, 2)

	s := elements("map", args[1])
	v := make([]cell.I, len(s))

	for i, c := range s {
		v[i] = call(args[0], []cell.I{c})
	}

	return list.New(v...)
}

func call(f cell.I, args []cell.I) cell.I {
	switch f := f.(type) {
	case *fn.T:
		return f.Call(args...)
	case *builtin.T:
		return f.Call(args)
	}

	panic(&condition.NotCallable{
		Kind: f.Name(),
		Text: literal.String(f),
	})
}
