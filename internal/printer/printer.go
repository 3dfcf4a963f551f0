// Released under an MIT license. See LICENSE.

// Package printer renders cells as text.
package printer

import (
	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
)

// PrStr returns the text for c. When readably is true strings are quoted
// and escaped so that the result can be read back in.
func PrStr(c cell.I, readably bool) string {
	if readably {
		return literal.String(c)
	}

	return common.String(c)
}

// Join renders each cell in cs with PrStr and joins them with sep.
func Join(cs []cell.I, readably bool, sep string) string {
	s := ""

	for i, c := range cs {
		if i > 0 {
			s += sep
		}

		s += PrStr(c, readably)
	}

	return s
}
