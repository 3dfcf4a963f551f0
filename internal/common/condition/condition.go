// Released under an MIT license. See LICENSE.

// Package condition defines the errors mal reports while reading and evaluating.
//
// Inside the reader and the evaluator these errors are raised with panic.
// Public entry points defer Recover to turn them back into returned errors.
package condition

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEndOfInput is raised when the reader runs out of tokens while it
// still expects more of a form.
var ErrEndOfInput = errors.New("end of input")

// EndOfInput returns an ErrEndOfInput that names what was expected.
func EndOfInput(expected string) error {
	return fmt.Errorf("expected %s, got EOF: %w", expected, ErrEndOfInput)
}

// Arity is raised when a form or function is passed the wrong number of arguments.
type Arity struct {
	Name     string
	Expected string
	Passed   int
}

func (e *Arity) Error() string {
	return e.Name + ": expected " + e.Expected + ", passed " + strconv.Itoa(e.Passed)
}

// MalformedAtom is raised for a token that cannot be read as any atom.
type MalformedAtom struct {
	Source string
	Token  string
}

func (e *MalformedAtom) Error() string {
	return prefix(e.Source) + "malformed atom " + strconv.Quote(e.Token)
}

// NotCallable is raised when the head of an application is not a function.
type NotCallable struct {
	Kind string
	Text string
}

func (e *NotCallable) Error() string {
	return e.Text + " (" + e.Kind + ") cannot be applied"
}

// UnboundSymbol is raised when no scope in the chain defines a name.
type UnboundSymbol struct {
	Name string
}

func (e *UnboundSymbol) Error() string {
	return "'" + e.Name + "' not found"
}

// Unexpected is raised when the reader meets a token that cannot start a form.
type Unexpected struct {
	Source string
	Token  string
}

func (e *Unexpected) Error() string {
	return prefix(e.Source) + "unexpected '" + e.Token + "'"
}

// WrongType is raised when a value is used where another type is required.
// Form names the operation that rejected the value and may be empty.
type WrongType struct {
	Form     string
	Expected string
	Actual   string
}

// NewWrongType creates a WrongType condition.
func NewWrongType(form, expected, actual string) *WrongType {
	return &WrongType{Form: form, Expected: expected, Actual: actual}
}

func (e *WrongType) Error() string {
	s := "expected " + e.Expected + ", got " + e.Actual
	if e.Form == "" {
		return s
	}

	return e.Form + ": " + s
}

// Recover stores any panic value in err as an error.
// It must be deferred directly: defer condition.Recover(&err).
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	switch r := r.(type) {
	case error:
		*err = r
	case string:
		*err = errors.New(r)
	case fmt.Stringer:
		*err = errors.New(r.String())
	default:
		*err = fmt.Errorf("unexpected error: %v", r)
	}
}

func prefix(source string) string {
	if source == "" {
		return ""
	}

	return source + ": "
}
