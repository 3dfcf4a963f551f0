package printer

import (
	"testing"

	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/type/boolean"
	"github.com/feigaoxyz/mal/internal/common/type/builtin"
	"github.com/feigaoxyz/mal/internal/common/type/keyword"
	"github.com/feigaoxyz/mal/internal/common/type/list"
	"github.com/feigaoxyz/mal/internal/common/type/null"
	"github.com/feigaoxyz/mal/internal/common/type/num"
	"github.com/feigaoxyz/mal/internal/common/type/str"
	"github.com/feigaoxyz/mal/internal/common/type/vector"
	"github.com/feigaoxyz/mal/internal/reader"
)

func TestPrStr(t *testing.T) {
	tests := []struct {
		c        cell.I
		readably string
		display  string
	}{
		{num.Int(-42), "-42", "-42"},
		{str.New("a\"b\\c\nd"), `"a\"b\\c\nd"`, "a\"b\\c\nd"},
		{keyword.New("k"), ":k", ":k"},
		{boolean.True, "true", "true"},
		{boolean.False, "false", "false"},
		{null.Nil, "nil", "nil"},
		{list.New(), "()", "()"},
		{vector.New(num.Int(1), str.New("x")), `[1 "x"]`, "[1 x]"},
		{list.New(list.New(str.New(""))), `((""))`, "(())"},
		{builtin.New("+", nil), "#<builtin +>", "#<builtin +>"},
	}

	for _, tt := range tests {
		if got := PrStr(tt.c, true); got != tt.readably {
			t.Errorf("PrStr(%s, true) = %q, want %q", tt.readably, got, tt.readably)
		}

		if got := PrStr(tt.c, false); got != tt.display {
			t.Errorf("PrStr(%s, false) = %q, want %q", tt.readably, got, tt.display)
		}
	}
}

func TestJoin(t *testing.T) {
	cs := []cell.I{str.New("a"), num.Int(1), keyword.New("b")}

	if got := Join(cs, true, " "); got != `"a" 1 :b` {
		t.Errorf("Join readably = %q", got)
	}

	if got := Join(cs, false, ""); got != "a1:b" {
		t.Errorf("Join = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{
		"7",
		"-7",
		`"hello"`,
		`"say \"hi\""`,
		`"tab\\t"`,
		`"line\nbreak"`,
		"abc",
		":key",
		"()",
		"(1 (2 (3 \"x\")) sym)",
		"[1 [2] ()]",
		`{"a" 1 :b [2 3]}`,
	} {
		c, err := reader.ReadStr(text)
		if err != nil {
			t.Fatalf("ReadStr(%q): %v", text, err)
		}

		if got := PrStr(c, true); got != text {
			t.Errorf("PrStr(ReadStr(%q)) = %q", text, got)
		}
	}
}
