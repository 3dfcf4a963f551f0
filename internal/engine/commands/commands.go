// Released under an MIT license. See LICENSE.

// Package commands provides mal's built-in functions.
package commands

import (
	"io"

	"github.com/feigaoxyz/mal/internal/common/interface/cell"
)

// Functions returns the built-in functions. Anything printed is written to w.
func Functions(w io.Writer) map[string]func([]cell.I) cell.I {
	return map[string]func([]cell.I) cell.I{
		"*":           mul,
		"+":           add,
		"-":           sub,
		"/":           div,
		"<":           lt,
		"<=":          le,
		"=":           eq,
		">":           gt,
		">=":          ge,
		"apply":       apply,
		"concat":      concat,
		"cons":        cons,
		"count":       count,
		"empty?":      isEmpty,
		"false?":      isFalse,
		"first":       first,
		"fn?":         isFn,
		"get":         get,
		"hash-map":    makeHashmap,
		"keys":        keys,
		"keyword":     makeKeyword,
		"keyword?":    isKeyword,
		"list":        makeList,
		"list?":       isList,
		"map":         mapf,
		"map?":        isHashmap,
		"match":       match,
		"mod":         mod,
		"nil?":        isNil,
		"nth":         nth,
		"number?":     isNumber,
		"pr-str":      prStr,
		"println":     output(w, false),
		"prn":         output(w, true),
		"read-string": readString,
		"rest":        rest,
		"str":         stringify,
		"string?":     isString,
		"symbol":      makeSymbol,
		"symbol?":     isSymbol,
		"true?":       isTrue,
		"vals":        vals,
		"vector":      makeVector,
		"vector?":     isVector,
	}
}
