// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to forms and functions.
package validate

import (
	"fmt"

	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
)

// AtLeast panics unless args holds min or more elements.
func AtLeast(name string, args []cell.I, min int) []cell.I {
	if len(args) < min {
		panic(&condition.Arity{
			Name:     name,
			Expected: "at least " + Count(min, "argument", "s"),
			Passed:   len(args),
		})
	}

	return args
}

// Fixed panics unless args holds exactly n elements.
func Fixed(name string, args []cell.I, n int) []cell.I {
	if len(args) != n {
		panic(&condition.Arity{
			Name:     name,
			Expected: Count(n, "argument", "s"),
			Passed:   len(args),
		})
	}

	return args
}

// Range panics unless args holds between min and max elements, inclusive.
func Range(name string, args []cell.I, min, max int) []cell.I {
	if len(args) < min || len(args) > max {
		panic(&condition.Arity{
			Name:     name,
			Expected: fmt.Sprintf("%d to %d arguments", min, max),
			Passed:   len(args),
		})
	}

	return args
}

// Count returns "n label" with the plural suffix p unless n is 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
