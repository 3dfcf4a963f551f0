package options

import (
	"reflect"
	"testing"

	"github.com/docopt/docopt-go"
)

func TestParse(t *testing.T) {
	tests := []struct {
		argv        []string
		tty         bool
		args        []string
		expression  string
		interactive bool
		script      string
	}{
		{[]string{}, true, []string{}, "", true, ""},
		{[]string{}, false, []string{}, "", false, ""},
		{[]string{"-i"}, true, []string{}, "", false, ""},
		{[]string{"-i"}, false, []string{}, "", true, ""},
		{[]string{"-e", "(+ 1 2)"}, true, []string{}, "(+ 1 2)", false, ""},
		{[]string{"--eval=(+ 1 2)"}, false, []string{}, "(+ 1 2)", false, ""},
		{[]string{"test.mal"}, true, []string{}, "", false, "test.mal"},
		{[]string{"test.mal", "a", "b"}, false, []string{"a", "b"}, "", false, "test.mal"},
	}

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	for _, tt := range tests {
		if err := parse(p, tt.argv, tt.tty); err != nil {
			t.Fatalf("%v: %v", tt.argv, err)
		}

		if !reflect.DeepEqual(Args(), tt.args) {
			t.Errorf("%v: expected args %q; got %q", tt.argv, tt.args, Args())
		}

		if Expression() != tt.expression {
			t.Errorf("%v: expected expression %q; got %q", tt.argv, tt.expression, Expression())
		}

		if Interactive() != tt.interactive {
			t.Errorf("%v: expected interactive %v; got %v", tt.argv, tt.interactive, Interactive())
		}

		if Script() != tt.script {
			t.Errorf("%v: expected script %q; got %q", tt.argv, tt.script, Script())
		}
	}
}

func TestBadUsage(t *testing.T) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	if err := parse(p, []string{"-x"}, false); err == nil {
		t.Fatal("Expected an error for an unknown option")
	}
}
