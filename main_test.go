package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/feigaoxyz/mal/internal/engine"
	"github.com/feigaoxyz/mal/internal/ui"
)

func TestExpression(t *testing.T) {
	e, err := engine.New()
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer

	if err = expression(e, "(+ 1 2)", &b); err != nil {
		t.Fatal(err)
	}

	if err = expression(e, "; nothing", &b); err != nil {
		t.Fatal(err)
	}

	if err = expression(e, "(undefined)", &b); err == nil {
		t.Fatal("Expected an error")
	}

	if got := b.String(); got != "3\n" {
		t.Fatalf("Expected 3; got %q", got)
	}
}

func TestInput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	e, err := engine.New(engine.Output(&stdout))
	if err != nil {
		t.Fatal(err)
	}

	input := `
(def! x 7)
(if (not x) :no :yes)
(undefined 1)
(def! f (fn* (a & more) (list a more)))
(f 1 2 3)
(prn "done")
`

	ui.Run(e, ui.Lines(strings.NewReader(input), &stdout), &stdout, &stderr)

	p := ui.Prompt
	want := p + p + "7\n" + p + ":yes\n" + p + p + "#<function>\n" +
		p + "(1 (2 3))\n" + p + "\"done\"\nnil\n" + p

	if got := stdout.String(); got != want {
		t.Fatalf("Expected %q; got %q", want, got)
	}

	if got := stderr.String(); got != "Error: 'undefined' not found\n" {
		t.Fatalf("Unexpected errors %q", got)
	}
}

func TestScripts(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"fib.mal", nil, "610\n354224848179261915075\n"},
		{"args.mal", []string{"a", "b"}, "0 a\n1 b\n"},
	}

	for _, tt := range tests {
		var b bytes.Buffer

		e, err := engine.New(engine.Args(tt.args), engine.Output(&b))
		if err != nil {
			t.Fatal(err)
		}

		if err = script(e, filepath.Join("examples", tt.name)); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}

		if got := b.String(); got != tt.want {
			t.Errorf("%s: expected %q; got %q", tt.name, tt.want, got)
		}
	}
}
