// Released under an MIT license. See LICENSE.

// Package scope defines the interface for mal's lexical environments.
package scope

import (
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
)

// I (scope) is one link in a chain of lexical environments.
type I interface {
	Enclosing() I

	// Get returns the value for k or panics if k is unbound.
	Get(k string) cell.I

	// Lookup searches this scope and then each enclosing scope for k.
	Lookup(k string) (cell.I, bool)

	// Names returns every name visible from this scope, sorted.
	Names() []string

	// Set binds k to v in this scope only and returns v.
	Set(k string, v cell.I) cell.I
}
