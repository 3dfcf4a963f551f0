// Released under an MIT license. See LICENSE.

// Package builtin provides mal's native function type.
package builtin

import (
	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
)

const name = "builtin"

// T (builtin) wraps a Go function of evaluated arguments.
type T struct {
	f     func([]cell.I) cell.I
	label string
}

type builtin = T

// New creates a builtin called label.
func New(label string, f func([]cell.I) cell.I) cell.I {
	return &builtin{f: f, label: label}
}

// Bool returns the boolean value of the builtin b. Every builtin is true.
func (b *builtin) Bool() bool {
	return true
}

// Call invokes the builtin b with args.
func (b *builtin) Call(args []cell.I) cell.I {
	return b.f(args)
}

// Equal returns true if c is the same builtin as b.
func (b *builtin) Equal(c cell.I) bool {
	t, ok := c.(*builtin)

	return ok && t == b
}

// Kind returns cell.Builtin.
func (b *builtin) Kind() cell.Kind {
	return cell.Builtin
}

// Literal returns the literal representation of the builtin b.
func (b *builtin) Literal() string {
	return "#<" + name + " " + b.label + ">"
}

// Name returns the name of the builtin type.
func (b *builtin) Name() string {
	return name
}

// String returns the text representation of the builtin b.
func (b *builtin) String() string {
	return b.Literal()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type has a literal representation.
	_ = literal.I(&t)

	// The builtin type is a stringer.
	_ = common.Stringer(&t)

	// The builtin type has a truth value.
	_ = truth.I(&t)
}
