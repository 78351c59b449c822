package math

import (
	"strconv"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

const (
	MaxUint8  = 1<<8 - 1
	MaxUint16 = 1<<16 - 1
	MaxUint32 = 1<<32 - 1
	MaxUint64 = 1<<64 - 1
)

var (
	ErrOverflow = errors.New("arithmetic overflow")

	ErrDivideByZero = errors.New("division by zero")
)

// U256 is the fixed-width unsigned word all signed arithmetic reduces to.
type U256 = uint256.Int

func ParseUint64(s string) (uint64, bool) {
	if s == "" {
		return 0, true
	}
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return v, err == nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	return v, err == nil
}

func SafeSub(x, y U256) (U256, bool) {
	var z U256
	_, underflow := z.SubOverflow(&x, &y)
	return z, underflow
}

func SafeAdd(x, y U256) (U256, bool) {
	var z U256
	_, overflow := z.AddOverflow(&x, &y)
	return z, overflow
}

func SafeMul(x, y U256) (U256, bool) {
	var z U256
	_, overflow := z.MulOverflow(&x, &y)
	return z, overflow
}

// Add returns x + y, failing instead of wrapping past 2^256-1.
func Add(x, y U256) (U256, error) {
	z, overflow := SafeAdd(x, y)
	if overflow {
		return U256{}, ErrOverflow
	}
	return z, nil
}

// Sub returns x - y, failing when y > x.
func Sub(x, y U256) (U256, error) {
	z, underflow := SafeSub(x, y)
	if underflow {
		return U256{}, ErrOverflow
	}
	return z, nil
}

func Mul(x, y U256) (U256, error) {
	z, overflow := SafeMul(x, y)
	if overflow {
		return U256{}, ErrOverflow
	}
	return z, nil
}

// DivDown returns x / y rounded toward zero.
func DivDown(x, y U256) (U256, error) {
	if y.IsZero() {
		return U256{}, ErrDivideByZero
	}
	var z U256
	z.Div(&x, &y)
	return z, nil
}

// DivUp returns x / y rounded away from zero. The quotient never wraps: a
// nonzero remainder implies y > 1 and therefore x / y < 2^256-1.
func DivUp(x, y U256) (U256, error) {
	if y.IsZero() {
		return U256{}, ErrDivideByZero
	}
	var q, r U256
	q.Div(&x, &y)
	r.Mod(&x, &y)
	if !r.IsZero() {
		q.AddUint64(&q, 1)
	}
	return q, nil
}

func Mod(x, y U256) (U256, error) {
	if y.IsZero() {
		return U256{}, ErrDivideByZero
	}
	var z U256
	z.Mod(&x, &y)
	return z, nil
}
