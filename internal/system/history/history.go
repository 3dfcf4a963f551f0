// Released under an MIT license. See LICENSE.

// Package history reads and writes the REPL's history file.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const name = ".mal_history"

// Load passes the history file at path to read.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return locked(f, false, func() error {
		_, err := read(f)

		return err
	})
}

// Path returns the location of the history file in the user's home directory.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), name)
}

// Save replaces the contents of the history file at path with whatever write writes.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	err = locked(f, true, func() error {
		if err := f.Truncate(0); err != nil {
			return err
		}

		_, err := write(f)

		return err
	})
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
