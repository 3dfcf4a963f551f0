// Released under an MIT license. See LICENSE.

// Package ui provides a read-eval-print loop for mal.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/feigaoxyz/mal/internal/system/history"
)

// Prompt is displayed before each line of input.
const Prompt = "user> "

// Evaluator is the interface for things that want to process lines of mal code.
type Evaluator interface {
	Names() []string
	Rep(line string) (string, bool, error)
}

// Prompter displays a prompt and returns the line that follows.
// Both *liner.State and the prompter returned by Lines satisfy it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Interactive runs the loop with line editing, tab completion, and history.
func Interactive(e Evaluator, stdout, stderr io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Names(), line, pos)
	})

	path := history.Path()

	err := history.Load(path, cli.ReadHistory)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(stderr, "history:", err)
	}

	Run(e, cli, stdout, stderr)

	return history.Save(path, cli.WriteHistory)
}

// Lines returns a Prompter that reads lines from r and writes prompts to w.
func Lines(r io.Reader, w io.Writer) Prompter {
	return &lines{scanner: bufio.NewScanner(r), w: w}
}

// Run reads lines from p and evaluates them with e until p returns an error.
// Results are written to stdout. Errors are written to stderr and the loop continues.
func Run(e Evaluator, p Prompter, stdout, stderr io.Writer) {
	h, _ := p.(interface{ AppendHistory(string) })

	for {
		line, err := p.Prompt(Prompt)
		if err != nil {
			// io.EOF or liner.ErrPromptAborted.
			return
		}

		if h != nil && strings.TrimSpace(line) != "" {
			h.AppendHistory(line)
		}

		s, ok, err := e.Rep(line)

		switch {
		case err != nil:
			fmt.Fprintln(stderr, "Error:", err)
		case ok:
			fmt.Fprintln(stdout, s)
		}
	}
}

type lines struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func (l *lines) Prompt(prompt string) (string, error) {
	fmt.Fprint(l.w, prompt)

	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return l.scanner.Text(), nil
}

// Returns names that start with the word under the cursor. Like liner,
// pos counts runes, not bytes.
func complete(names []string, line string, pos int) (head string, cs []string, tail string) {
	r := []rune(line)
	head, tail = string(r[:pos]), string(r[pos:])

	start := strings.LastIndexAny(head, " \t\n,()[]{}'`~^@\"") + 1
	word := head[start:]

	if word == "" {
		return head, nil, tail
	}

	for _, n := range names {
		if strings.HasPrefix(n, word) {
			cs = append(cs, n)
		}
	}

	sort.Strings(cs)

	return head[:start], cs, tail
}
