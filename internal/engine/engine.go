// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed mal code.
package engine

import (
	"io"
	"os"

	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/scope"
	"github.com/feigaoxyz/mal/internal/common/type/boolean"
	"github.com/feigaoxyz/mal/internal/common/type/builtin"
	"github.com/feigaoxyz/mal/internal/common/type/env"
	"github.com/feigaoxyz/mal/internal/common/type/list"
	"github.com/feigaoxyz/mal/internal/common/type/null"
	"github.com/feigaoxyz/mal/internal/common/type/str"
	"github.com/feigaoxyz/mal/internal/common/validate"
	"github.com/feigaoxyz/mal/internal/engine/boot"
	"github.com/feigaoxyz/mal/internal/engine/commands"
	"github.com/feigaoxyz/mal/internal/printer"
	"github.com/feigaoxyz/mal/internal/reader"
)

// T (engine) is a facade in front of the machinery for evaluating mal code.
type T struct {
	args   []string
	global scope.I
	stdout io.Writer
}

// Option configures an engine.
type Option func(*T)

// Args binds *ARGV* to a list of the strings in argv.
func Args(argv []string) Option {
	return func(e *T) {
		e.args = argv
	}
}

// Output directs everything printed by mal code to w.
func Output(w io.Writer) Option {
	return func(e *T) {
		e.stdout = w
	}
}

// New creates a new T with a fresh global scope and runs the boot script.
func New(options ...Option) (*T, error) {
	e := &T{stdout: os.Stdout}

	for _, o := range options {
		o(e)
	}

	e.global = e.define()

	if _, err := e.Load("boot.mal", boot.Script()); err != nil {
		return nil, err
	}

	return e, nil
}

// Evaluate evaluates c in the global scope.
func (e *T) Evaluate(c cell.I) (v cell.I, err error) {
	defer condition.Recover(&err)

	return Eval(c, e.global), nil
}

// Load evaluates every form in text and returns the value of the last one.
// Label names the source in error messages.
func (e *T) Load(label, text string) (cell.I, error) {
	cs, err := reader.ReadAll(label, text)
	if err != nil {
		return nil, err
	}

	v := null.Nil

	for _, c := range cs {
		v, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Names returns every name bound in the global scope.
func (e *T) Names() []string {
	return e.global.Names()
}

// Rep reads the first form in line, evaluates it, and returns the
// readable text of the result. The boolean is false, and the error nil,
// when line holds no form.
func (e *T) Rep(line string) (string, bool, error) {
	c, err := reader.ReadStr(line)
	if err != nil {
		return "", true, err
	}

	if c == nil {
		return "", false, nil
	}

	v, err := e.Evaluate(c)
	if err != nil {
		return "", true, err
	}

	return printer.PrStr(v, true), true, nil
}

func (e *T) define() scope.I {
	s := env.New(nil)

	for k, f := range commands.Functions(e.stdout) {
		s.Set(k, builtin.New(k, f))
	}

	s.Set("eval", builtin.New("eval", func(args []cell.I) cell.I {
		validate.Fixed("eval", args, 1)

		return Eval(args[0], s)
	}))

	s.Set("true", boolean.True)
	s.Set("false", boolean.False)
	s.Set("nil", null.Nil)

	argv := make([]cell.I, len(e.args))
	for i, a := range e.args {
		argv[i] = str.New(a)
	}

	s.Set("*ARGV*", list.New(argv...))

	return s
}
