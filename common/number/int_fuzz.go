package number

import (
	"math/big"

	"github.com/holiman/uint256"
)

// Fuzz cross-checks the signed operations against math/big. The first byte
// selects the operation, the next 64 bytes hold both operands as raw words.
func Fuzz(data []byte) int {
	if len(data) < 65 {
		return -1
	}
	var x, y uint256.Int
	x.SetBytes(data[1:33])
	y.SetBytes(data[33:65])
	a, b := FromBits(x), FromBits(y)

	switch data[0] % 5 {
	case 0:
		got, err := a.Add(b)
		return fuzzCheck(got, err, new(big.Int).Add(a.ToBig(), b.ToBig()))
	case 1:
		got, err := a.Sub(b)
		return fuzzCheck(got, err, new(big.Int).Sub(a.ToBig(), b.ToBig()))
	case 2:
		got, err := a.Mul(b)
		return fuzzCheck(got, err, new(big.Int).Mul(a.ToBig(), b.ToBig()))
	case 3:
		if b.IsZero() {
			if _, err := a.DivDown(b); err != ErrDivideByZero {
				panic("division by zero not reported")
			}
			return 0
		}
		got, err := a.DivDown(b)
		return fuzzCheck(got, err, new(big.Int).Quo(a.ToBig(), b.ToBig()))
	default:
		if b.IsZero() {
			return 0
		}
		got, err := a.Mod(b)
		return fuzzCheck(got, err, new(big.Int).Rem(a.ToBig(), b.ToBig()))
	}
}

func fuzzCheck(got Int, err error, want *big.Int) int {
	if new(big.Int).Abs(want).Cmp(tt255) >= 0 {
		if err != ErrOverflow {
			panic("overflow not reported")
		}
		return 0
	}
	if err != nil {
		panic("unexpected error: " + err.Error())
	}
	if got.ToBig().Cmp(want) != 0 {
		panic("content mismatch")
	}
	return 1
}
