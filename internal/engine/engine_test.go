package engine

import (
	"bytes"
	"errors"
	rt "runtime/debug"
	"testing"

	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/type/num"
)

type harness struct {
	engine *T
	output *bytes.Buffer
	t      *testing.T
}

func setup(t *testing.T, argv ...string) *harness {
	b := &bytes.Buffer{}

	e, err := New(Args(argv), Output(b))
	if err != nil {
		t.Fatalf("Booting engine: %v", err)
	}

	return &harness{engine: e, output: b, t: t}
}

func (h *harness) expect(line, want string) {
	h.t.Helper()

	got, ok, err := h.engine.Rep(line)

	switch {
	case err != nil:
		h.t.Fatalf("%s: unexpected error: %v", line, err)
	case !ok:
		h.t.Fatalf("%s: no form", line)
	case got != want:
		h.t.Fatalf("%s: expected %s; got %s", line, want, got)
	}
}

func (h *harness) fail(line string) error {
	h.t.Helper()

	_, _, err := h.engine.Rep(line)
	if err == nil {
		h.t.Fatalf("%s: expected an error", line)
	}

	return err
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.expect("(+ 1 2)", "3")
	h.expect("(* 2 (+ 3 4))", "14")
	h.expect("(- 10 4 3)", "3")
	h.expect("(/ 7 2)", "3")
	h.expect("(/ -7 2)", "-3")
	h.expect("(* 99999999999 99999999999)", "9999999999800000000001")
}

func TestBoot(t *testing.T) {
	h := setup(t)

	h.expect("(not false)", "true")
	h.expect("(not nil)", "true")
	h.expect("(not 0)", "false")
	h.expect("(not \"\")", "false")
}

func TestClosures(t *testing.T) {
	h := setup(t)

	h.expect("((fn* (a b) (+ a b)) 1 2)", "3")
	h.expect("(def! adder (fn* [x] (fn* [y] (+ x y))))", "#<function>")
	h.expect("(def! add5 (adder 5))", "#<function>")
	h.expect("(add5 10)", "15")
	h.expect("((adder 1) 2)", "3")
	h.expect("(fn? add5)", "true")
	h.expect("(fn? +)", "true")
	h.expect("+", "#<builtin +>")
}

func TestCollections(t *testing.T) {
	h := setup(t)

	h.expect("[1 (+ 1 1) [3]]", "[1 2 [3]]")
	h.expect("{:a (+ 1 2) \"b\" [(* 2 2)]}", "{:a 3 \"b\" [4]}")
	h.expect("(list 1 2 3)", "(1 2 3)")
	h.expect("()", "()")
	h.expect("(count (list 1 2 3))", "3")
	h.expect("(empty? [])", "true")
	h.expect("(= [1 2] (list 1 2))", "true")
	h.expect("(get {:a 1} :a)", "1")
}

func TestDef(t *testing.T) {
	h := setup(t)

	h.expect("(def! x 10)", "10")
	h.expect("x", "10")
	h.expect("(def! x (+ x 1))", "11")
	h.expect("x", "11")
}

func TestDo(t *testing.T) {
	h := setup(t)

	h.expect("(do (def! a 1) (def! b 2) (+ a b))", "3")
	h.expect("a", "1")

	var e *condition.Arity
	if err := h.fail("(do)"); !errors.As(err, &e) {
		t.Fatalf("Expected arity error; got %v", err)
	}
}

func TestErrorsAreRecoverable(t *testing.T) {
	h := setup(t)

	var unbound *condition.UnboundSymbol
	if err := h.fail("(abc 1 2)"); !errors.As(err, &unbound) || unbound.Name != "abc" {
		t.Fatalf("Expected 'abc' not found; got %v", err)
	}

	var callable *condition.NotCallable
	if err := h.fail("(1 2 3)"); !errors.As(err, &callable) {
		t.Fatalf("Expected not callable; got %v", err)
	}

	if err := h.fail("(+ 1"); !errors.Is(err, condition.ErrEndOfInput) {
		t.Fatalf("Expected end of input; got %v", err)
	}

	var malformed *condition.MalformedAtom
	if err := h.fail("\"abc"); !errors.As(err, &malformed) {
		t.Fatalf("Expected malformed atom; got %v", err)
	}

	var arity *condition.Arity
	if err := h.fail("((fn* (a) a))"); !errors.As(err, &arity) {
		t.Fatalf("Expected arity error; got %v", err)
	}

	var wrong *condition.WrongType
	if err := h.fail("(+ 1 \"2\")"); !errors.As(err, &wrong) {
		t.Fatalf("Expected wrong type; got %v", err)
	}

	if err := h.fail("(let* 5 1)"); err.Error() != "let*: expected list or vector, got number" {
		t.Fatalf("Unexpected message: %v", err)
	}

	h.fail("(/ 1 0)")

	h.expect("(+ 1 1)", "2")
}

func TestEval(t *testing.T) {
	h := setup(t)

	h.expect("(eval (list + 1 2))", "3")
	h.expect("(eval (read-string \"(* 6 7)\"))", "42")
	h.expect("(eval '(def! z 3))", "3")
	h.expect("z", "3")
}

func TestIf(t *testing.T) {
	h := setup(t)

	h.expect("(if true 1 2)", "1")
	h.expect("(if false 1 2)", "2")
	h.expect("(if nil 1 2)", "2")
	h.expect("(if 0 1 2)", "1")
	h.expect("(if \"\" 1 2)", "1")
	h.expect("(if () 1 2)", "1")
	h.expect("(if [] 1 2)", "1")
	h.expect("(if false 1)", "nil")
	h.expect("(if true 1)", "1")
}

func TestKeywords(t *testing.T) {
	h := setup(t)

	h.expect(":abc", ":abc")
	h.expect("(= :abc :abc)", "true")
	h.expect("(= :abc \"abc\")", "true")
	h.expect("(= :abc :abd)", "false")
	h.expect("(keyword \"x\")", ":x")
	h.expect("(keyword? :x)", "true")
}

func TestLetScoping(t *testing.T) {
	h := setup(t)

	h.expect("(let* (a 1 b (+ a 1)) (+ a b))", "3")
	h.expect("(let* [c 2] c)", "2")

	var e *condition.UnboundSymbol
	if err := h.fail("a"); !errors.As(err, &e) {
		t.Fatalf("Expected 'a' not found; got %v", err)
	}

	h.expect("(def! y 1)", "1")
	h.expect("(let* (y 2) (let* (y 3) y))", "3")
	h.expect("(let* (y 2) y)", "2")
	h.expect("y", "1")
	h.expect("((fn* (y) y) 4)", "4")
	h.expect("y", "1")
	h.expect("(let* (f (fn* () y)) (let* (y 5) (f)))", "1")
}

func TestLoad(t *testing.T) {
	h := setup(t)

	v, err := h.engine.Load("test", "(def! a 1)\n; comment\n(def! b (+ a 1))\nb\n")
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(num.Int(2)) {
		t.Fatalf("Expected 2; got %v", v)
	}

	if _, err = h.engine.Load("test", "(def! c 1) (undefined)"); err == nil {
		t.Fatal("Expected an error")
	}
}

func TestNoForm(t *testing.T) {
	h := setup(t)

	for _, line := range []string{"", "   ", ",,,", "; just a comment"} {
		_, ok, err := h.engine.Rep(line)
		if ok || err != nil {
			t.Fatalf("%q: expected no form; got %v, %v", line, ok, err)
		}
	}
}

func TestOutput(t *testing.T) {
	h := setup(t)

	h.expect("(prn \"a\" 1 :b)", "nil")
	h.expect("(println \"a\" 1 :b)", "nil")
	h.expect("(pr-str \"x\")", "\"\\\"x\\\"\"")
	h.expect("(str \"x\" 1 \"y\")", "\"x1y\"")

	want := "\"a\" 1 :b\na 1 :b\n"
	if got := h.output.String(); got != want {
		t.Fatalf("Expected %q; got %q", want, got)
	}
}

func TestArgv(t *testing.T) {
	h := setup(t, "one", "two")

	h.expect("*ARGV*", "(\"one\" \"two\")")

	h = setup(t)

	h.expect("*ARGV*", "()")
}

func TestQuote(t *testing.T) {
	h := setup(t)

	h.expect("(quote (1 b))", "(1 b)")
	h.expect("'abc", "abc")
	h.expect("(first '(x y))", "x")
}

func TestTailCalls(t *testing.T) {
	h := setup(t)

	// Recursion in any tail position would overflow this.
	defer rt.SetMaxStack(rt.SetMaxStack(256 << 10))

	h.expect("(def! sum (fn* (n acc) (if (= n 0) acc (sum (- n 1) (+ acc n)))))", "#<function>")
	h.expect("(sum 1000000 0)", "500000500000")

	h.expect("(def! count-down (fn* (n) (do (if (= n 0) :done (count-down (- n 1))))))", "#<function>")
	h.expect("(count-down 1000000)", ":done")

	h.expect("(def! loop (fn* (n) (let* (m (- n 1)) (if (> m 0) (loop m) m))))", "#<function>")
	h.expect("(loop 1000000)", "0")

	h.expect("(def! even? (fn* (n) (if (= n 0) true (odd? (- n 1)))))", "#<function>")
	h.expect("(def! odd? (fn* (n) (if (= n 0) false (even? (- n 1)))))", "#<function>")
	h.expect("(even? 1000000)", "true")
}

func TestVariadic(t *testing.T) {
	h := setup(t)

	h.expect("((fn* (a & more) more) 1 2 3)", "(2 3)")
	h.expect("((fn* (a & more) more) 1)", "()")
	h.expect("((fn* [& all] all))", "()")
	h.expect("((fn* (& all) (count all)) 1 2 3 4)", "4")

	var e *condition.Arity
	if err := h.fail("((fn* (a b & more) a) 1)"); !errors.As(err, &e) {
		t.Fatalf("Expected arity error; got %v", err)
	}
}
