// Released under an MIT license. See LICENSE.

// Package vector provides mal's vector type.
package vector

import (
	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
	"github.com/feigaoxyz/mal/internal/common/struct/sequence"
)

const name = "vector"

// T (vector) is an immutable, bracket-delimited sequence of cells.
// Vectors evaluate element-wise and are never applied.
type T struct {
	sequence.T
}

type vector = T

// New creates a new vector composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return &vector{sequence.New(elements)}
}

// Bool returns the boolean value of the vector v. Every vector is true.
func (v *vector) Bool() bool {
	return true
}

// Equal returns true if c is a vector or list with elements equal to v's.
func (v *vector) Equal(c cell.I) bool {
	s, ok := c.(interface{ Sequence() *sequence.T })

	return ok && cell.Sequential(c) && v.T.Equal(s.Sequence())
}

// Kind returns cell.Vector.
func (v *vector) Kind() cell.Kind {
	return cell.Vector
}

// Literal returns the literal representation of the vector v.
func (v *vector) Literal() string {
	return v.Join("[", "]", literal.String)
}

// Name returns the name for a vector type.
func (v *vector) Name() string {
	return name
}

// Sequence returns the vector v's underlying sequence.
func (v *vector) Sequence() *sequence.T {
	return &v.T
}

// String returns the text representation of the vector v.
func (v *vector) String() string {
	return v.Join("[", "]", common.String)
}

// Is returns true if c is a vector.
func Is(c cell.I) bool {
	_, ok := c.(*vector)

	return ok
}

// To returns a vector if c is a vector; Otherwise it panics.
func To(c cell.I) *vector {
	if t, ok := c.(*vector); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a vector context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vector

	// The vector type is a cell.
	_ = cell.I(&t)

	// The vector type has a literal representation.
	_ = literal.I(&t)

	// The vector type is a stringer.
	_ = common.Stringer(&t)

	// The vector type has a truth value.
	_ = truth.I(&t)
}
