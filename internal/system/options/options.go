// Released under an MIT license. See LICENSE.

// Package options parses mal's command-line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed in response to -v.
const Version = "mal 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	expression  string
	interactive bool
	script      string
	usage       = `mal

Usage:
  mal [-i] [-e EXPRESSION]
  mal [-i] SCRIPT [ARGUMENTS...]
  mal -h
  mal -v

Arguments:
  ARGUMENTS  Strings bound to *ARGV*.
  SCRIPT     Path to mal script.

Options:
  -e, --eval=EXPRESSION  Evaluate EXPRESSION and print the result.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print mal version.

If mal's stdin is a TTY, and mal was invoked with no SCRIPT or EXPRESSION,
line editing and history are enabled. Otherwise, lines are read as is.
`
)

// Args returns the arguments that follow SCRIPT.
func Args() []string {
	return args
}

// Expression returns the expression passed with -e, if any.
func Expression() string {
	return expression
}

// Interactive returns true if the REPL should use line editing.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. On bad usage, -h, or -v, Parse prints a message and exits.
func Parse() {
	fd := os.Stdin.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	err := parse(docopt.DefaultParser, os.Args[1:], tty)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	expression, _ = opts.String("--eval")
	script, _ = opts.String("SCRIPT")

	args, _ = opts["ARGUMENTS"].([]string)
	if args == nil {
		args = []string{}
	}

	interactive = tty && script == "" && expression == ""

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	return nil
}
