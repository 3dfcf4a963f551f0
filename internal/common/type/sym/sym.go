// Released under an MIT license. See LICENSE.

// Package sym provides mal's symbol cell type.
package sym

import (
	"sync"

	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
)

const (
	name  = "symbol"
	short = 8
)

// T (sym) wraps Go's string type. Short and common strings are interned.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Bool returns the boolean value of the sym s. Only the symbol nil is false.
func (s *sym) Bool() bool {
	return string(*s) != "nil"
}

// Equal returns true if c is a sym or keyword that wraps the same string.
// The symbol nil is also equal to the nil value.
func (s *sym) Equal(c cell.I) bool {
	switch c.Kind() {
	case cell.Symbol, cell.Keyword:
		t, _ := common.Text(c)

		return string(*s) == t
	case cell.Nil:
		return string(*s) == "nil"
	}

	return false
}

// Kind returns cell.Symbol.
func (s *sym) Kind() cell.Kind {
	return cell.Symbol
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Text returns the text of the sym s.
func (s *sym) Text() string {
	return string(*s)
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a symbol context")
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func symnew(v string) *sym {
	if len(v) > short {
		s := sym(v)

		return &s
	}

	cachel.RLock()
	p, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	s := sym(v)
	p = &s
	cache[v] = p

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)

	// The sym type wraps text.
	_ = common.Texter(&t)

	// The sym type has a truth value.
	_ = truth.I(&t)
}
