// Released under an MIT license. See LICENSE.

// Package sequence provides the immutable run of cells underlying mal's
// list, vector, and hash-map types.
package sequence

import (
	"strings"

	"github.com/feigaoxyz/mal/internal/common/interface/cell"
)

// T (sequence) is an ordered, immutable run of cells.
type T struct {
	elements []cell.I
}

type sequence = T

// New creates a sequence holding a copy of elements.
func New(elements []cell.I) sequence {
	if len(elements) == 0 {
		return sequence{}
	}

	c := make([]cell.I, len(elements))
	copy(c, elements)

	return sequence{elements: c}
}

// Elements returns the cells in the sequence s. The slice must not be modified.
func (s *sequence) Elements() []cell.I {
	return s.elements
}

// Equal returns true if every cell in s is equal to the cell at the same position in o.
func (s *sequence) Equal(o *sequence) bool {
	if len(s.elements) != len(o.elements) {
		return false
	}

	for i, e := range s.elements {
		if !e.Equal(o.elements[i]) {
			return false
		}
	}

	return true
}

// Join renders each cell with text and joins them, space separated,
// between the delimiters open and close.
func (s *sequence) Join(open, close string, text func(cell.I) string) string {
	var b strings.Builder

	b.WriteString(open)

	for i, e := range s.elements {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(text(e))
	}

	b.WriteString(close)

	return b.String()
}
