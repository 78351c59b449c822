package number

import (
	"math/big"
	"strings"

	"github.com/Aurorachain/go-i256/common/math"
	"github.com/holiman/uint256"
)

var (
	tt255   = new(big.Int).Lsh(big.NewInt(1), 255)
	tt256   = new(big.Int).Lsh(big.NewInt(1), 256)
	tt256m1 = new(big.Int).Sub(tt256, big.NewInt(1))
	minBig  = new(big.Int).Neg(tt255)
)

// ToUint256 returns x as an unsigned word, failing with ErrUnderflow when x is negative.
func (x Int) ToUint256() (uint256.Int, error) {
	if x.IsNegative() {
		return uint256.Int{}, ErrUnderflow
	}
	return x.bits, nil
}

func (x Int) ToUint64() (uint64, error) {
	v, err := x.ToUint256()
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, ErrOverflow
	}
	return v.Uint64(), nil
}

func (x Int) toUint(max uint64) (uint64, error) {
	v, err := x.ToUint64()
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, ErrOverflow
	}
	return v, nil
}

func (x Int) ToUint32() (uint32, error) {
	v, err := x.toUint(math.MaxUint32)
	return uint32(v), err
}

func (x Int) ToUint16() (uint16, error) {
	v, err := x.toUint(math.MaxUint16)
	return uint16(v), err
}

func (x Int) ToUint8() (uint8, error) {
	v, err := x.toUint(math.MaxUint8)
	return uint8(v), err
}

// truncated returns the low 64 bits of a non-negative x.
func (x Int) truncated() (uint64, error) {
	v, err := x.ToUint256()
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

// TruncateToUint64 keeps the low 64 bits. Like the strict accessors it is
// only defined for non-negative values.
func (x Int) TruncateToUint64() (uint64, error) {
	return x.truncated()
}

func (x Int) TruncateToUint32() (uint32, error) {
	v, err := x.truncated()
	return uint32(v), err
}

func (x Int) TruncateToUint16() (uint16, error) {
	v, err := x.truncated()
	return uint16(v), err
}

func (x Int) TruncateToUint8() (uint8, error) {
	v, err := x.truncated()
	return uint8(v), err
}

// ToBig returns the signed value of x.
func (x Int) ToBig() *big.Int {
	b := x.bits.ToBig()
	if b.Cmp(tt255) >= 0 {
		b.Sub(b, tt256)
	}
	return b
}

// FromBig encodes b, failing with ErrRange outside [-2^255, 2^255-1].
func FromBig(b *big.Int) (Int, error) {
	if b.Cmp(minBig) < 0 || b.Cmp(tt255) >= 0 {
		return Int{}, ErrRange
	}
	bits, overflow := uint256.FromBig(new(big.Int).And(b, tt256m1))
	if overflow {
		return Int{}, ErrRange
	}
	return Int{bits: *bits}, nil
}

// Parse accepts a signed decimal ("-42") or a 0x-prefixed raw word, which is
// reinterpreted as two's complement.
func Parse(s string) (Int, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		b, ok := new(big.Int).SetString(s[2:], 16)
		if !ok || b.Sign() < 0 || strings.HasPrefix(s[2:], "+") {
			return Int{}, ErrSyntax
		}
		bits, overflow := uint256.FromBig(b)
		if overflow {
			return Int{}, ErrRange
		}
		return FromBits(*bits), nil
	}
	if strings.HasPrefix(s, "+") {
		return Int{}, ErrSyntax
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, ErrSyntax
	}
	return FromBig(b)
}

func (x Int) String() string {
	return x.ToBig().String()
}

// Hex returns the raw two's complement word.
func (x Int) Hex() string {
	return x.bits.Hex()
}

func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int) UnmarshalText(input []byte) error {
	v, err := Parse(string(input))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
