// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/rational"
	"github.com/feigaoxyz/mal/internal/common/type/boolean"
	"github.com/feigaoxyz/mal/internal/common/validate"
)

func eq(args []cell.I) cell.I {
	validate.AtLeast("=", args, 2)

	for _, a := range args[1:] {
		if !args[0].Equal(a) {
			return boolean.False
		}
	}

	return boolean.True
}

func ge(args []cell.I) cell.I {
	return compare(">=", args, func(c int) bool { return c >= 0 })
}

func gt(args []cell.I) cell.I {
	return compare(">", args, func(c int) bool { return c > 0 })
}

func le(args []cell.I) cell.I {
	return compare("<=", args, func(c int) bool { return c <= 0 })
}

func lt(args []cell.I) cell.I {
	return compare("<", args, func(c int) bool { return c < 0 })
}

// Every adjacent pair of numbers must satisfy ok.
func compare(name string, args []cell.I, ok func(int) bool) cell.I {
	validate.AtLeast(name, args, 2)

	prev := rational.Number(args[0])

	for _, a := range args[1:] {
		curr := rational.Number(a)

		if !ok(prev.Cmp(curr)) {
			return boolean.False
		}

		prev = curr
	}

	return boolean.True
}
