// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/adapted"

	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/type/boolean"
	"github.com/feigaoxyz/mal/internal/common/type/keyword"
	"github.com/feigaoxyz/mal/internal/common/type/null"
	"github.com/feigaoxyz/mal/internal/common/type/str"
	"github.com/feigaoxyz/mal/internal/common/type/sym"
	"github.com/feigaoxyz/mal/internal/common/validate"
	"github.com/feigaoxyz/mal/internal/printer"
	"github.com/feigaoxyz/mal/internal/reader"
)

func makeKeyword(args []cell.I) cell.I {
	validate.Fixed("keyword", args, 1)

	if keyword.Is(args[0]) {
		return args[0]
	}

	return keyword.New(text("keyword", args[0]))
}

func makeSymbol(args []cell.I) cell.I {
	validate.Fixed("symbol", args, 1)

	return sym.New(text("symbol", args[0]))
}

// The pattern is the first argument. Matching follows filepath.Match.
func match(args []cell.I) cell.I {
	validate.Fixed("match", args, 2)

	ok, err := adapted.Match(text("match", args[0]), text("match", args[1]))
	if err != nil {
		panic(err)
	}

	return boolean.Bool(ok)
}

func output(w io.Writer, readably bool) func([]cell.I) cell.I {
	return func(args []cell.I) cell.I {
		fmt.Fprintln(w, printer.Join(args, readably, " "))

		return null.Nil
	}
}

func prStr(args []cell.I) cell.I {
	return str.New(printer.Join(args, true, " "))
}

func readString(args []cell.I) cell.I {
	validate.Fixed("read-string", args, 1)

	c, err := reader.ReadStr(text("read-string", args[0]))
	if err != nil {
		panic(err)
	}

	if c == nil {
		return null.Nil
	}

	return c
}

func stringify(args []cell.I) cell.I {
	return str.New(printer.Join(args, false, ""))
}

// Helper functions.

func text(name string, c cell.I) string {
	if !str.Is(c) {
		panic(condition.NewWrongType(name, "string", c.Name()))
	}

	s, _ := common.Text(c)

	return s
}
