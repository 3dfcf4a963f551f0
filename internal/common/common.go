// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/feigaoxyz/mal/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// Texter is satisfied by the types that wrap a piece of text: strings,
// symbols, and keywords.
type Texter interface {
	Text() string
}

// String returns the string value for a cell, if possible.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		panic(c.Name() + " cannot be used in a string context")
	}

	return b.String()
}

// Text returns the wrapped text for a cell and true, if c wraps text.
func Text(c cell.I) (string, bool) {
	t, ok := c.(Texter)
	if !ok {
		return "", false
	}

	return t.Text(), true
}
