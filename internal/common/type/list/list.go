// Released under an MIT license. See LICENSE.

// Package list provides mal's list type.
package list

import (
	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
	"github.com/feigaoxyz/mal/internal/common/struct/sequence"
)

const name = "list"

// T (list) is an immutable, parenthesis-delimited sequence of cells.
type T struct {
	sequence.T
}

type list = T

// Empty is the empty list.
var Empty = New() //nolint:gochecknoglobals

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return &list{sequence.New(elements)}
}

// Bool returns the boolean value of the list l. Every list, even an empty one, is true.
func (l *list) Bool() bool {
	return true
}

// Equal returns true if c is a list or vector with elements equal to l's.
func (l *list) Equal(c cell.I) bool {
	s, ok := c.(interface{ Sequence() *sequence.T })

	return ok && cell.Sequential(c) && l.T.Equal(s.Sequence())
}

// Kind returns cell.List.
func (l *list) Kind() cell.Kind {
	return cell.List
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	return l.Join("(", ")", literal.String)
}

// Name returns the name for a list type.
func (l *list) Name() string {
	return name
}

// Sequence returns the list l's underlying sequence.
func (l *list) Sequence() *sequence.T {
	return &l.T
}

// String returns the text representation of the list l.
func (l *list) String() string {
	return l.Join("(", ")", common.String)
}

// Functions specific to list.

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// To returns a list if c is a list; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a list context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a stringer.
	_ = common.Stringer(&t)

	// The list type has a truth value.
	_ = truth.I(&t)
}
