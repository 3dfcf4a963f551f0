// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent reader for mal.
package parser

import (
	"strings"

	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/struct/token"
	"github.com/feigaoxyz/mal/internal/common/type/hashmap"
	"github.com/feigaoxyz/mal/internal/common/type/keyword"
	"github.com/feigaoxyz/mal/internal/common/type/list"
	"github.com/feigaoxyz/mal/internal/common/type/num"
	"github.com/feigaoxyz/mal/internal/common/type/str"
	"github.com/feigaoxyz/mal/internal/common/type/sym"
	"github.com/feigaoxyz/mal/internal/common/type/vector"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that reads tokens from item.
// The function item should return nil when there are no more tokens.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Form reads the next complete form.
// Malformed input causes a panic with one of the reader conditions.
func (p *T) Form() cell.I {
	t := p.Next()
	if !t.Is(token.Special) {
		return atom(t)
	}

	switch v := t.Value(); v {
	case "(":
		return list.New(p.sequence(")")...)
	case "[":
		return vector.New(p.sequence("]")...)
	case "{":
		return hashmap.New(p.sequence("}")...)
	case "^":
		meta := p.Form()

		return list.New(sym.New("with-meta"), p.Form(), meta)
	default:
		if name, ok := macros[v]; ok {
			return list.New(sym.New(name), p.Form())
		}
	}

	panic(&condition.Unexpected{
		Source: t.Source().String(),
		Token:  t.Value(),
	})
}

// More returns true if there are tokens, other than comments, left to read.
func (p *T) More() bool {
	return p.peek() != nil
}

// Next returns the current token and advances past it.
func (p *T) Next() *token.T {
	t := p.Peek()

	p.consume()

	return t
}

// Peek returns the current token without advancing.
// It panics with an end-of-input condition when there are no more tokens.
func (p *T) Peek() *token.T {
	t := p.peek()
	if t == nil {
		panic(condition.EndOfInput("a form"))
	}

	return t
}

//nolint:gochecknoglobals
var macros = map[string]string{
	"'":  "quote",
	"`":  "quasiquote",
	"~":  "unquote",
	"~@": "splice-unquote",
	"@":  "deref",
}

func (p *T) consume() {
	p.ahead = 0
	p.token = nil
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()
	for t.Is(token.Comment) {
		t = p.item()
	}

	if t != nil {
		p.ahead = 1
		p.token = t
	}

	return t
}

// Input that ends before the closing delimiter is an error rather than
// an implicitly closed sequence.
func (p *T) sequence(closing string) []cell.I {
	s := []cell.I{}

	for {
		t := p.peek()
		if t == nil {
			panic(condition.EndOfInput("'" + closing + "'"))
		}

		if t.Is(token.Special) && t.Value() == closing {
			p.consume()

			return s
		}

		s = append(s, p.Form())
	}
}

func atom(t *token.T) cell.I {
	s := t.Value()

	if n, ok := num.Parse(s); ok {
		return n
	}

	switch {
	case t.Is(token.String):
		if str.Quoted(s) {
			return str.New(str.Unquote(s))
		}
	case strings.HasPrefix(s, keyword.Marker):
		return keyword.New(s)
	case t.Is(token.Atom):
		return sym.New(s)
	}

	panic(&condition.MalformedAtom{
		Source: t.Source().String(),
		Token:  s,
	})
}
