// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all mal types.
package cell

// I (cell) is the basic unit of storage in mal.
type I interface {
	Equal(c I) bool
	Kind() Kind
	Name() string
}

// Kind identifies one of the fixed set of mal value types.
type Kind int

// The complete set of kinds. A switch over Kind that covers these
// constants covers every mal value.
const (
	Number Kind = iota
	String
	Symbol
	Keyword
	Boolean
	Nil
	List
	Vector
	Hashmap
	Function
	Builtin
)

// String returns the kind's name. Useful for debugging.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case Symbol:
		return "symbol"
	case Keyword:
		return "keyword"
	case Boolean:
		return "boolean"
	case Nil:
		return "nil"
	case List:
		return "list"
	case Vector:
		return "vector"
	case Hashmap:
		return "hash-map"
	case Function:
		return "function"
	case Builtin:
		return "builtin"
	}

	return "unknown"
}

// Sequential returns true if c is a list or a vector.
func Sequential(c I) bool {
	k := c.Kind()

	return k == List || k == Vector
}
