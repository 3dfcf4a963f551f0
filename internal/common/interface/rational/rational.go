// Released under an MIT license. See LICENSE.

// Package rational defines the interface for mal's numeric type.
package rational

import (
	"math/big"

	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
)

// I (rational) is anything that can be treated as a number in mal.
type I interface {
	Int() *big.Int
}

type rational = I

// Number returns the *big.Int value for a cell, if possible.
func Number(c cell.I) *big.Int {
	r, ok := c.(rational)
	if !ok {
		panic(condition.NewWrongType("", "number", c.Name()))
	}

	return r.Int()
}
