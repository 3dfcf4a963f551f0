// Released under an MIT license. See LICENSE.

// Package keyword provides mal's keyword type.
package keyword

import (
	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
)

const (
	name = "keyword"

	// Marker is the prefix that distinguishes a keyword from a symbol in source text.
	Marker = ":"
)

// T (keyword) wraps the text of a keyword without its marker.
type T string

type keyword = T

// New creates a keyword with the text v. A leading marker is dropped.
func New(v string) cell.I {
	if len(v) > 0 && v[:1] == Marker {
		v = v[1:]
	}

	k := keyword(v)

	return &k
}

// Bool returns the boolean value of the keyword k. Every keyword is true.
func (k *keyword) Bool() bool {
	return true
}

// Equal returns true if c is a keyword, symbol, or string with the same text.
func (k *keyword) Equal(c cell.I) bool {
	switch c.Kind() {
	case cell.Keyword, cell.String, cell.Symbol:
		t, _ := common.Text(c)

		return string(*k) == t
	}

	return false
}

// Kind returns cell.Keyword.
func (k *keyword) Kind() cell.Kind {
	return cell.Keyword
}

// Literal returns the literal representation of the keyword k.
func (k *keyword) Literal() string {
	return Marker + string(*k)
}

// Name returns the type name for the keyword k.
func (k *keyword) Name() string {
	return name
}

// String returns the display text of the keyword k.
func (k *keyword) String() string {
	return k.Literal()
}

// Text returns the text of the keyword k without its marker.
func (k *keyword) Text() string {
	return string(*k)
}

// Is returns true if c is a keyword.
func Is(c cell.I) bool {
	_, ok := c.(*keyword)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t keyword

	// The keyword type is a cell.
	_ = cell.I(&t)

	// The keyword type has a literal representation.
	_ = literal.I(&t)

	// The keyword type is a stringer.
	_ = common.Stringer(&t)

	// The keyword type wraps text.
	_ = common.Texter(&t)

	// The keyword type has a truth value.
	_ = truth.I(&t)
}
