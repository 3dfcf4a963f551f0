// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/feigaoxyz/mal/internal/common/condition"
	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/rational"
	"github.com/feigaoxyz/mal/internal/common/type/boolean"
	"github.com/feigaoxyz/mal/internal/common/type/hashmap"
	"github.com/feigaoxyz/mal/internal/common/type/list"
	"github.com/feigaoxyz/mal/internal/common/type/null"
	"github.com/feigaoxyz/mal/internal/common/type/num"
	"github.com/feigaoxyz/mal/internal/common/type/vector"
	"github.com/feigaoxyz/mal/internal/common/validate"
)

func concat(args []cell.I) cell.I {
	joined := []cell.I{}

	for _, a := range args {
		joined = append(joined, elements("concat", a)...)
	}

	return list.New(joined...)
}

func cons(args []cell.I) cell.I {
	validate.Fixed("cons", args, 2)

	return list.New(append([]cell.I{args[0]}, elements("cons", args[1])...)...)
}

func count(args []cell.I) cell.I {
	validate.Fixed("count", args, 1)

	return num.Int(int64(len(elements("count", args[0]))))
}

func first(args []cell.I) cell.I {
	validate.Fixed("first", args, 1)

	v := elements("first", args[0])
	if len(v) == 0 {
		return null.Nil
	}

	return v[0]
}

func get(args []cell.I) cell.I {
	validate.Fixed("get", args, 2)

	if null.Is(args[0]) {
		return null.Nil
	}

	if v, ok := hashmap.To(args[0]).Get(args[1]); ok {
		return v
	}

	return null.Nil
}

func isEmpty(args []cell.I) cell.I {
	validate.Fixed("empty?", args, 1)

	return boolean.Bool(len(elements("empty?", args[0])) == 0)
}

func keys(args []cell.I) cell.I {
	validate.Fixed("keys", args, 1)

	return list.New(hashmap.To(args[0]).Keys()...)
}

func makeHashmap(args []cell.I) cell.I {
	return hashmap.New(args...)
}

func makeList(args []cell.I) cell.I {
	return list.New(args...)
}

func makeVector(args []cell.I) cell.I {
	return vector.New(args...)
}

func nth(args []cell.I) cell.I {
	validate.Fixed("nth", args, 2)

	v := elements("nth", args[0])
	i := rational.Number(args[1])

	if !i.IsInt64() || i.Sign() < 0 || i.Cmp(big.NewInt(int64(len(v)))) >= 0 {
		panic("nth: index " + i.String() + " out of range")
	}

	return v[i.Int64()]
}

func rest(args []cell.I) cell.I {
	validate.Fixed("rest", args, 1)

	v := elements("rest", args[0])
	if len(v) == 0 {
		return list.Empty
	}

	return list.New(v[1:]...)
}

func vals(args []cell.I) cell.I {
	validate.Fixed("vals", args, 1)

	return list.New(hashmap.To(args[0]).Values()...)
}

// Helper functions.

// Nil is treated as an empty sequence.
func elements(name string, c cell.I) []cell.I {
	if null.Is(c) {
		return nil
	}

	if s, ok := c.(interface{ Elements() []cell.I }); ok && cell.Sequential(c) {
		return s.Elements()
	}

	panic(condition.NewWrongType(name, "list or vector", c.Name()))
}
