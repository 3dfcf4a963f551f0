// Released under an MIT license. See LICENSE.

// Package num provides mal's arbitrary-precision integer type.
package num

import (
	"math/big"

	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/rational"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
)

const name = "number"

// T (num) wraps Go's big.Int type.
type T big.Int

type num = T

// Big wraps the *big.Int i as a num.
func Big(i *big.Int) cell.I {
	return (*num)(i)
}

// Int creates a num from the integer i.
func Int(i int64) cell.I {
	return Big(big.NewInt(i))
}

// Parse creates a num from s if s is a decimal integer with an optional sign.
func Parse(s string) (cell.I, bool) {
	if !Numeric(s) {
		return nil, false
	}

	v := &big.Int{}
	if _, ok := v.SetString(s, 10); !ok {
		return nil, false
	}

	return Big(v), true
}

// Numeric returns true if s is lexically a decimal integer with an optional sign.
func Numeric(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Bool returns the boolean value of the num n. Every number is true.
func (n *num) Bool() bool {
	return true
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Int().Cmp(To(c).Int()) == 0
}

// Int returns the value of the num n as a *big.Int.
func (n *num) Int() *big.Int {
	return (*big.Int)(n)
}

// Kind returns cell.Number.
func (n *num) Kind() cell.Kind {
	return cell.Number
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Int().String()
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a numeric context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a rational.
	_ = rational.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
