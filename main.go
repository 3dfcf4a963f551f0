// Released under an MIT license. See LICENSE.

/*
Mal is a small Lisp. It reads a form, evaluates it, and prints the result:

	user> (def! square (fn* (x) (* x x)))
	#<function>
	user> (square 12)
	144
	user> (let* (a 1 b (+ a 1)) [a b {:sum (+ a b)}])
	[1 2 {:sum 3}]

Run with no arguments for an interactive session, with -e to evaluate a
single expression, or with the path to a script. See mal -h for details.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/feigaoxyz/mal/internal/engine"
	"github.com/feigaoxyz/mal/internal/system/options"
	"github.com/feigaoxyz/mal/internal/ui"
)

func main() {
	options.Parse()

	e, err := engine.New(engine.Args(options.Args()))
	if err != nil {
		fatal(err)
	}

	switch {
	case options.Expression() != "":
		err = expression(e, options.Expression(), os.Stdout)
	case options.Script() != "":
		err = script(e, options.Script())
	case options.Interactive():
		err = ui.Interactive(e, os.Stdout, os.Stderr)
	default:
		ui.Run(e, ui.Lines(os.Stdin, os.Stdout), os.Stdout, os.Stderr)
	}

	if err != nil {
		fatal(err)
	}
}

func expression(e *engine.T, text string, w io.Writer) error {
	s, ok, err := e.Rep(text)
	if err != nil {
		return err
	}

	if ok {
		fmt.Fprintln(w, s)
	}

	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func script(e *engine.T, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	_, err = e.Load(path, string(b))

	return err
}
