package parser

import (
	"errors"
	"testing"

	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/engine/boot"
	"github.com/feigaoxyz/mal/internal/reader/lexer"
)

func parse(s string) (p string, err error) {
	defer condition.Recover(&err)

	l := lexer.New("test")

	l.Scan(s)

	r := New(l.Token)
	for r.More() {
		p += literal.String(r.Form()) + "\n"
	}

	return p, nil
}

func check(t *testing.T, s string) {
	p, err := parse(s)
	if err != nil {
		t.Fatalf("Parsing %q: %v", s, err)
	}

	r, err := parse(p)
	if err != nil {
		t.Fatalf("Reparsing %q: %v", p, err)
	}

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func expect(t *testing.T, s, want string) {
	got, err := parse(s)
	if err != nil {
		t.Fatalf("Parsing %q: %v", s, err)
	}

	if got != want {
		t.Fatalf("Parsing %q: expected %q; got %q", s, want, got)
	}
}

func TestBoot(t *testing.T) {
	check(t, boot.Script())
}

func TestCollections(t *testing.T) {
	expect(t, "( 1 , 2 ( 3 ) [4 [5]] {:a 1 \"b\" [2]} )",
		"(1 2 (3) [4 [5]] {:a 1 \"b\" [2]})\n")
}

func TestComments(t *testing.T) {
	expect(t, "; nothing here\n1 ; one\n; two\n3", "1\n3\n")
	expect(t, ";; only a comment", "")
}

func TestEmptyList(t *testing.T) {
	expect(t, "()", "()\n")
}

func TestNumbers(t *testing.T) {
	expect(t, "1 -2 +3 007 - +", "1\n-2\n3\n7\n-\n+\n")
	expect(t, "123456789012345678901234567890", "123456789012345678901234567890\n")
}

func TestReaderMacros(t *testing.T) {
	expect(t, "'a", "(quote a)\n")
	expect(t, "`(a ~b ~@c)", "(quasiquote (a (unquote b) (splice-unquote c)))\n")
	expect(t, "@a", "(deref a)\n")
	expect(t, "^{:a 1} [1]", "(with-meta [1] {:a 1})\n")
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"(def! f (fn* (a) (if a \"yes\" \"no\")))",
		"(let* [x 1 y (+ x 1)] (* x y))",
		"\"a\\\\b\\nc\\\"d\\\"\"",
		"(:kw sym 42 -1 nil true false)",
	} {
		check(t, s)
	}
}

func TestStrings(t *testing.T) {
	expect(t, `"abc"`, "\"abc\"\n")
	expect(t, `"with \"quotes\""`, "\"with \\\"quotes\\\"\"\n")
	expect(t, `"two\nlines"`, "\"two\\nlines\"\n")
	expect(t, `"back\\slash"`, "\"back\\\\slash\"\n")
	expect(t, `""`, "\"\"\n")
}

func TestEndOfInput(t *testing.T) {
	for _, s := range []string{"(", "(1 2", "[1", "{:a", "'", "(1 (2)"} {
		_, err := parse(s)
		if !errors.Is(err, condition.ErrEndOfInput) {
			t.Errorf("Parsing %q: expected end of input; got %v", s, err)
		}
	}
}

func TestMalformedAtom(t *testing.T) {
	for _, s := range []string{`"abc`, `"abc\"`, `(str "x`} {
		_, err := parse(s)

		var e *condition.MalformedAtom
		if !errors.As(err, &e) {
			t.Errorf("Parsing %q: expected malformed atom; got %v", s, err)
		}
	}
}

func TestOddHashmap(t *testing.T) {
	_, err := parse("{:a 1 :b}")

	var e *condition.Arity
	if !errors.As(err, &e) {
		t.Fatalf("Expected arity error; got %v", err)
	}
}

func TestUnexpected(t *testing.T) {
	for _, s := range []string{")", "(1 ]", "]", "}"} {
		_, err := parse(s)

		var e *condition.Unexpected
		if !errors.As(err, &e) {
			t.Errorf("Parsing %q: expected unexpected token; got %v", s, err)
		}
	}
}

func TestPeekAndNext(t *testing.T) {
	l := lexer.New("test")

	l.Scan("(a) b")

	p := New(l.Token)

	if v := p.Peek().Value(); v != "(" {
		t.Fatalf("Expected '('; got %q", v)
	}

	if v := p.Next().Value(); v != "(" {
		t.Fatalf("Expected '('; got %q", v)
	}

	if v := p.Peek().Value(); v != "a" {
		t.Fatalf("Expected 'a'; got %q", v)
	}

	var c cell.I = p.Form()
	if literal.String(c) != "a" {
		t.Fatalf("Expected a; got %s", literal.String(c))
	}

	p.Next()

	if literal.String(p.Form()) != "b" {
		t.Fatal("Expected b")
	}

	if p.More() {
		t.Fatal("Expected no more tokens")
	}
}
