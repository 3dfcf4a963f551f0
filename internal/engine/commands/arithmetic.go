// Released under an MIT license. See LICENSE.

package commands

import (
	"math/big"

	"github.com/feigaoxyz/mal/internal/common/interface/cell"
	"github.com/feigaoxyz/mal/internal/common/interface/rational"
	"github.com/feigaoxyz/mal/internal/common/type/num"
	"github.com/feigaoxyz/mal/internal/common/validate"
)

func add(args []cell.I) cell.I {
	sum := &big.Int{}

	for _, a := range args {
		sum.Add(sum, rational.Number(a))
	}

	return num.Big(sum)
}

// Division truncates toward zero.
func div(args []cell.I) cell.I {
	validate.AtLeast("/", args, 1)

	quotient := &big.Int{}
	quotient.Set(rational.Number(args[0]))

	for _, a := range args[1:] {
		divisor := rational.Number(a)
		if divisor.Sign() == 0 {
			panic("division by zero")
		}

		quotient.Quo(quotient, divisor)
	}

	return num.Big(quotient)
}

// The result has the sign of the divisor.
func mod(args []cell.I) cell.I {
	validate.Fixed("mod", args, 2)

	dividend := rational.Number(args[0])
	divisor := rational.Number(args[1])

	if divisor.Sign() == 0 {
		panic("division by zero")
	}

	remainder := &big.Int{}
	remainder.Mod(dividend, divisor)

	if divisor.Sign() < 0 && remainder.Sign() != 0 {
		remainder.Add(remainder, divisor)
	}

	return num.Big(remainder)
}

func mul(args []cell.I) cell.I {
	product := big.NewInt(1)

	for _, a := range args {
		product.Mul(product, rational.Number(a))
	}

	return num.Big(product)
}

func sub(args []cell.I) cell.I {
	validate.AtLeast("-", args, 1)

	difference := &big.Int{}
	difference.Set(rational.Number(args[0]))

	if len(args) == 1 {
		return num.Big(difference.Neg(difference))
	}

	for _, a := range args[1:] {
		difference.Sub(difference, rational.Number(a))
	}

	return num.Big(difference)
}
