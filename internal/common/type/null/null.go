// Released under an MIT license. See LICENSE.

// Package null provides mal's nil value.
//
// The reader never produces this value directly. It reads nil as a symbol
// and the global scope binds that symbol to Nil. Comparisons against nil are
// by text: Nil is equal to the symbol nil.
package null

import (
	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
)

const name = "nil"

// T (null) is the type of the single nil value.
type T struct{}

type null = T

// Nil is the nil value.
var Nil cell.I = &null{} //nolint:gochecknoglobals

// Bool returns false. Nil is always false.
func (n *null) Bool() bool {
	return false
}

// Equal returns true if c is nil or the symbol nil.
func (n *null) Equal(c cell.I) bool {
	switch c.Kind() {
	case cell.Nil:
		return true
	case cell.Symbol:
		t, _ := common.Text(c)

		return t == name
	}

	return false
}

// Kind returns cell.Nil.
func (n *null) Kind() cell.Kind {
	return cell.Nil
}

// Literal returns the literal representation of nil.
func (n *null) Literal() string {
	return name
}

// Name returns the type name for nil.
func (n *null) Name() string {
	return name
}

// String returns the text of nil.
func (n *null) String() string {
	return name
}

// Is returns true if c is nil or the symbol nil.
func Is(c cell.I) bool {
	return Nil.Equal(c)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)

	// The null type is a stringer.
	_ = common.Stringer(&t)

	// The null type has a truth value.
	_ = truth.I(&t)
}
