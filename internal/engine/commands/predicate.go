// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/type/boolean"
	"github.com/feigaoxyz/mal/internal/common/type/null"
	"github.com/feigaoxyz/mal/internal/common/validate"
)

func isFalse(args []cell.I) cell.I {
	return is("false?", args, func(c cell.I) bool {
		return c.Kind() == cell.Boolean && !c.Equal(boolean.True)
	})
}

func isFn(args []cell.I) cell.I {
	return kind("fn?", args, cell.Function, cell.Builtin)
}

func isHashmap(args []cell.I) cell.I {
	return kind("map?", args, cell.Hashmap)
}

func isKeyword(args []cell.I) cell.I {
	return kind("keyword?", args, cell.Keyword)
}

func isList(args []cell.I) cell.I {
	return kind("list?", args, cell.List)
}

func isNil(args []cell.I) cell.I {
	return is("nil?", args, null.Is)
}

func isNumber(args []cell.I) cell.I {
	return kind("number?", args, cell.Number)
}

func isString(args []cell.I) cell.I {
	return kind("string?", args, cell.String)
}

func isSymbol(args []cell.I) cell.I {
	return kind("symbol?", args, cell.Symbol)
}

func isTrue(args []cell.I) cell.I {
	return is("true?", args, func(c cell.I) bool {
		return c.Kind() == cell.Boolean && c.Equal(boolean.True)
	})
}

func isVector(args []cell.I) cell.I {
	return kind("vector?", args, cell.Vector)
}

// Helper functions.

func is(name string, args []cell.I, p func(cell.I) bool) cell.I {
	validate.Fixed(name, args, 1)

	return boolean.Bool(p(args[0]))
}

func kind(name string, args []cell.I, ks ...cell.Kind) cell.I {
	return is(name, args, func(c cell.I) bool {
		for _, k := range ks {
			if c.Kind() == k {
				return true
			}
		}

		return false
	})
}
