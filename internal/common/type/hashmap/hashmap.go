// Released under an MIT license. See LICENSE.

// Package hashmap provides mal's hash-map type.
//
// A hash-map is stored flat, as alternating keys and values, in the order
// they were read. Callers must treat the elements pairwise.
package hashmap

import (
	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
	"github.com/feigaoxyz/mal/internal/common/struct/sequence"
)

const name = "hash-map"

// T (hashmap) is an immutable, brace-delimited run of key/value pairs.
type T struct {
	sequence.T
}

type hashmap = T

// New creates a new hash-map from alternating keys and values.
// An odd number of elements causes a panic.
func New(elements ...cell.I) cell.I {
	if len(elements)%2 != 0 {
		panic(&condition.Arity{
			Name:     name,
			Expected: "an even number of elements",
			Passed:   len(elements),
		})
	}

	return &hashmap{sequence.New(elements)}
}

// Bool returns the boolean value of the hash-map h. Every hash-map is true.
func (h *hashmap) Bool() bool {
	return true
}

// Equal returns true if c is a hash-map with the same pairs in the same order.
func (h *hashmap) Equal(c cell.I) bool {
	return Is(c) && h.T.Equal(&To(c).T)
}

// Get returns the value paired with the first key equal to k.
func (h *hashmap) Get(k cell.I) (cell.I, bool) {
	e := h.Elements()

	for i := 0; i < len(e); i += 2 {
		if e[i].Equal(k) {
			return e[i+1], true
		}
	}

	return nil, false
}

// Keys returns the keys of the hash-map h in order.
func (h *hashmap) Keys() []cell.I {
	return h.every(0)
}

// Kind returns cell.Hashmap.
func (h *hashmap) Kind() cell.Kind {
	return cell.Hashmap
}

// Literal returns the literal representation of the hash-map h.
func (h *hashmap) Literal() string {
	return h.Join("{", "}", literal.String)
}

// Name returns the name for a hash-map type.
func (h *hashmap) Name() string {
	return name
}

// String returns the text representation of the hash-map h.
func (h *hashmap) String() string {
	return h.Join("{", "}", common.String)
}

// Values returns the values of the hash-map h in order.
func (h *hashmap) Values() []cell.I {
	return h.every(1)
}

func (h *hashmap) every(offset int) []cell.I {
	e := h.Elements()
	r := make([]cell.I, 0, len(e)/2)

	for i := offset; i < len(e); i += 2 {
		r = append(r, e[i])
	}

	return r
}

// Is returns true if c is a hash-map.
func Is(c cell.I) bool {
	_, ok := c.(*hashmap)

	return ok
}

// To returns a hash-map if c is a hash-map; Otherwise it panics.
func To(c cell.I) *hashmap {
	if t, ok := c.(*hashmap); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a hash-map context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t hashmap

	// The hashmap type is a cell.
	_ = cell.I(&t)

	// The hashmap type has a literal representation.
	_ = literal.I(&t)

	// The hashmap type is a stringer.
	_ = common.Stringer(&t)

	// The hashmap type has a truth value.
	_ = truth.I(&t)
}
