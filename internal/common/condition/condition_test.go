package condition

import (
	"errors"
	"testing"
)

func TestWrongType(t *testing.T) {
	tests := []struct {
		err  *WrongType
		want string
	}{
		{NewWrongType("", "number", "string"), "expected number, got string"},
		{NewWrongType("apply", "list or vector", "number"), "apply: expected list or vector, got number"},
		{NewWrongType("let*", "symbol", "keyword"), "let*: expected symbol, got keyword"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q; got %q", tt.want, got)
		}
	}
}

func TestRecover(t *testing.T) {
	raise := func(v interface{}) (err error) {
		defer Recover(&err)

		panic(v)
	}

	var wrong *WrongType
	if err := raise(NewWrongType("", "number", "nil")); !errors.As(err, &wrong) {
		t.Fatalf("expected wrong type; got %v", err)
	}

	if err := raise(EndOfInput("')'")); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("expected end of input; got %v", err)
	}

	if err := raise("plain"); err == nil || err.Error() != "plain" {
		t.Fatalf("expected plain; got %v", err)
	}
}
