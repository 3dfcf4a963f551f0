// Released under an MIT license. See LICENSE.

// Package str provides mal's string type.
package str

import (
	"strings"

	"github.com/feigaoxyz/mal/internal/common"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/literal"
	"github.com/feigaoxyz/mal/internal/common/interface/truth"
)

const name = "string"

//nolint:gochecknoglobals
var (
	escaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, `"`, `\"`)
	unescapes = [][2]string{{`\"`, `"`}, {`\n`, "\n"}, {`\\`, `\`}}
)

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Bool returns the boolean value of the str s. Every string is true.
func (s *str) Bool() bool {
	return true
}

// Equal returns true if the cell c wraps the same string and false otherwise.
// A keyword with the same text is also equal.
func (s *str) Equal(c cell.I) bool {
	switch c.Kind() {
	case cell.String, cell.Keyword:
		t, _ := common.Text(c)

		return string(*s) == t
	}

	return false
}

// Kind returns cell.String.
func (s *str) Kind() cell.Kind {
	return cell.String
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return `"` + escaper.Replace(string(*s)) + `"`
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Text returns the text of the str s.
func (s *str) Text() string {
	return string(*s)
}

// Functions specific to str.

// Quoted returns true if token is a complete double-quoted run: it starts
// with a quote and ends with a quote that is not escaped.
func Quoted(token string) bool {
	n := len(token)
	if n < 2 || token[0] != '"' || token[n-1] != '"' {
		return false
	}

	backslashes := 0
	for i := n - 2; i > 0 && token[i] == '\\'; i-- {
		backslashes++
	}

	return backslashes%2 == 0
}

// Unquote strips the quotes from token and replaces the escape sequences
// \", \n, and \\, in that order.
func Unquote(token string) string {
	s := token[1 : len(token)-1]

	for _, u := range unescapes {
		s = strings.ReplaceAll(s, u[0], u[1])
	}

	return s
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a str if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if t, ok := c.(*str); ok {
		return t
	}

	panic(c.Name() + " cannot be used in a string context")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)

	// The str type wraps text.
	_ = common.Texter(&t)

	// The str type has a truth value.
	_ = truth.I(&t)
}
