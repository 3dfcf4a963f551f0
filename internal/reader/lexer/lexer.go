// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for mal.
//
// The scanner adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/feigaoxyz/mal/internal/common/struct/loc"
	"github.com/feigaoxyz/mal/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	saved action   // Escaped action.
	state action   // Current action.

	cursor loc.T // Location of the current byte.
	source loc.T // Location of the current token's first byte.

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		cursor: loc.New(label),
		source: loc.New(label),
	}

	l.state = skipSeparators

	return l
}

// Tokenize returns the text of every token in text, comments included.
func Tokenize(text string) []string {
	l := New("")
	l.Scan(text)

	s := []string{}
	for t := l.Token(); t != nil; t = l.Token() {
		s = append(s, t.Value())
	}

	return s
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				l.state = skipSeparators
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	l.cursor.Advance(r)
	l.index += w
}

func (l *T) emit(c token.Class) {
	t := token.New(c, l.Text(), l.source)

	l.tokens <- t
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped

	return a
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 4)
}

func (l *T) next() rune {
	r, w := l.peek()
	if r != eof {
		l.accept(r, w)
	}

	return r
}

func (l *T) peek() (rune, int) {
	if l.index >= len(l.bytes) {
		return eof, 0
	}

	return utf8.DecodeRuneInString(l.bytes[l.index:])
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.source = l.cursor
	l.first = l.index
}

// T states.

func afterTilde(l *T) action {
	r, w := l.peek()
	if r == '@' {
		l.accept(r, w)
	}

	l.emit(token.Special)

	return skipSeparators
}

func escapeNextCharacter(l *T) action {
	l.next()

	return l.resume()
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.emit(token.Atom)
			return nil
		case terminates(r):
			l.emit(token.Atom)
			return skipSeparators
		}

		l.accept(r, w)
	}
}

func scanComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.emit(token.Comment)
			return nil
		case '\n':
			l.emit(token.Comment)
			return skipSeparators
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.String)
			return nil
		case '"':
			l.emit(token.String)
			return skipSeparators
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func skipSeparators(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case separates(r):
			l.accept(r, w)
			l.skip()
		default:
			return startToken
		}
	}
}

func startToken(l *T) action {
	switch l.next() {
	case '~':
		return afterTilde
	case '(', ')', '[', ']', '{', '}', '\'', '`', '^', '@':
		l.emit(token.Special)
		return skipSeparators
	case '"':
		return scanString
	case ';':
		return scanComment
	}

	return scanAtom
}

// Helper functions.

func separates(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// An atom may contain '~', '^', and '@'. They are only special at the
// start of a token.
func terminates(r rune) bool {
	return separates(r) || strings.ContainsRune("()[]{}'\"`;", r)
}
