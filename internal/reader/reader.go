// Released under an MIT license. See LICENSE.

// Package reader turns mal source text into cells.
package reader

import (
	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/reader/lexer"
	"github.com/feigaoxyz/mal/internal/reader/parser"
)

// ReadAll reads every form in text. Label names the source in error
// messages. On error, ReadAll returns the forms read before the error.
func ReadAll(label, text string) (cs []cell.I, err error) {
	defer condition.Recover(&err)

	p := parse(label, text)
	for p.More() {
		cs = append(cs, p.Form())
	}

	return cs, nil
}

// ReadStr reads the first form in text. Anything after that form is ignored.
// If text holds no forms, ReadStr returns a nil cell and a nil error.
func ReadStr(text string) (c cell.I, err error) {
	defer condition.Recover(&err)

	p := parse("", text)
	if !p.More() {
		return nil, nil
	}

	return p.Form(), nil
}

func parse(label, text string) *parser.T {
	l := lexer.New(label)

	l.Scan(text)

	return parser.New(l.Token)
}
