// Package number implements a 256-bit two's complement signed integer on top
// of the unsigned word arithmetic in common/math.
//
// Constructors and arithmetic keep the stored word equal to the canonical two's
// complement encoding of the value they represent and fail rather than wrap.
// Shifts and bitwise operations act on the raw word and do not re-validate it.
package number

import (
	"github.com/Aurorachain/go-i256/common/math"
	"github.com/holiman/uint256"
)

type Ordering uint8

const (
	Equal Ordering = iota
	LessThan
	GreaterThan
)

func (o Ordering) String() string {
	switch o {
	case Equal:
		return "equal"
	case LessThan:
		return "less"
	case GreaterThan:
		return "greater"
	}
	return "invalid"
}

var (
	maxBits = uint256.Int{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0) >> 1}
	minBits = uint256.Int{0, 0, 0, 1 << 63}
	allOnes = uint256.Int{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
	oneBits = uint256.Int{1}
)

// Int is an immutable signed 256-bit value. The zero value is 0.
type Int struct {
	bits uint256.Int
}

func Zero() Int { return Int{} }
func One() Int { return Int{bits: oneBits} }

// Max returns 2^255 - 1.
func Max() Int { return Int{bits: maxBits} }

// Min returns -2^255. No arithmetic operation produces it; it is reachable
// only here, through FromBits or FromBig, and through shifts and bitwise ops.
func Min() Int { return Int{bits: minBits} }

// FromBits reinterprets a raw word as two's complement without any checks.
func FromBits(bits uint256.Int) Int { return Int{bits: bits} }

func FromUint8(v uint8) Int { return FromUint64(uint64(v)) }
func FromUint16(v uint16) Int { return FromUint64(uint64(v)) }
func FromUint32(v uint32) Int { return FromUint64(uint64(v)) }
func FromUint64(v uint64) Int { return Int{bits: uint256.Int{v}} }

// FromUint256 wraps v, failing with ErrRange when v would occupy the sign bit.
func FromUint256(v uint256.Int) (Int, error) {
	if v.Gt(&maxBits) {
		return Int{}, ErrRange
	}
	return Int{bits: v}, nil
}

func NegFromUint8(v uint8) Int { return negated(FromUint8(v).bits) }
func NegFromUint16(v uint16) Int { return negated(FromUint16(v).bits) }
func NegFromUint32(v uint32) Int { return negated(FromUint32(v).bits) }
func NegFromUint64(v uint64) Int { return negated(FromUint64(v).bits) }

// NegFromUint256 returns -v. The range check happens before negation, so
// 2^255 is rejected even though -2^255 is representable.
func NegFromUint256(v uint256.Int) (Int, error) {
	x, err := FromUint256(v)
	if err != nil {
		return Int{}, err
	}
	return negated(x.bits), nil
}

func twosComplement(bits uint256.Int) uint256.Int {
	var z uint256.Int
	z.Xor(&bits, &allOnes)
	z.Add(&z, &oneBits)
	return z
}

func negated(bits uint256.Int) Int {
	if bits.IsZero() {
		return Int{}
	}
	return Int{bits: twosComplement(bits)}
}

// fromMagnitude and negFromMagnitude re-encode the result of magnitude
// arithmetic, reporting anything beyond 2^255 - 1 as an overflow.
func fromMagnitude(m uint256.Int) (Int, error) {
	if m.Gt(&maxBits) {
		return Int{}, ErrOverflow
	}
	return Int{bits: m}, nil
}

func negFromMagnitude(m uint256.Int) (Int, error) {
	if m.Gt(&maxBits) {
		return Int{}, ErrOverflow
	}
	return negated(m), nil
}

func signedMagnitude(m uint256.Int, negative bool) (Int, error) {
	if negative {
		return negFromMagnitude(m)
	}
	return fromMagnitude(m)
}

func (x Int) Bits() uint256.Int { return x.bits }

func (x Int) IsNegative() bool { return x.bits.Gt(&maxBits) }

// IsPositive reports whether the sign bit is clear, which includes zero.
func (x Int) IsPositive() bool { return !x.bits.Gt(&maxBits) }

func (x Int) IsZero() bool { return x.bits.IsZero() }

func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.IsNegative():
		return -1
	}
	return 1
}

// Abs returns |x|. Min has no positive counterpart and is returned unchanged.
func (x Int) Abs() Int {
	if x.IsNegative() {
		return Int{bits: twosComplement(x.bits)}
	}
	return x
}

// Flip returns -x, with Min as a fixed point.
func (x Int) Flip() Int {
	if x.IsNegative() {
		return x.Abs()
	}
	return negated(x.bits)
}

// magnitude is |x| as an unsigned word. For Min it is 2^255.
func (x Int) magnitude() uint256.Int {
	return x.Abs().bits
}

func (x Int) Compare(y Int) Ordering {
	if x.bits.Eq(&y.bits) {
		return Equal
	}
	switch {
	case x.IsPositive() && y.IsPositive():
		if x.bits.Gt(&y.bits) {
			return GreaterThan
		}
		return LessThan
	case x.IsPositive():
		return GreaterThan
	case y.IsPositive():
		return LessThan
	}
	xm, ym := x.magnitude(), y.magnitude()
	if xm.Gt(&ym) {
		return LessThan
	}
	return GreaterThan
}

func (x Int) Eq(y Int) bool { return x.Compare(y) == Equal }
func (x Int) Lt(y Int) bool { return x.Compare(y) == LessThan }
func (x Int) Lte(y Int) bool { return x.Compare(y) != GreaterThan }
func (x Int) Gt(y Int) bool { return x.Compare(y) == GreaterThan }
func (x Int) Gte(y Int) bool { return x.Compare(y) != LessThan }

// diff returns p - q for magnitudes p and q, signed by the larger one.
func diff(p, q uint256.Int) (Int, error) {
	if p.Lt(&q) {
		m, err := math.Sub(q, p)
		if err != nil {
			return Int{}, err
		}
		return negFromMagnitude(m)
	}
	m, err := math.Sub(p, q)
	if err != nil {
		return Int{}, err
	}
	return fromMagnitude(m)
}

func (x Int) Add(y Int) (Int, error) {
	switch {
	case x.IsPositive() && y.IsPositive():
		m, err := math.Add(x.bits, y.bits)
		if err != nil {
			return Int{}, err
		}
		return fromMagnitude(m)
	case x.IsNegative() && y.IsNegative():
		m, err := math.Add(x.magnitude(), y.magnitude())
		if err != nil {
			return Int{}, err
		}
		return negFromMagnitude(m)
	case x.IsPositive():
		return diff(x.bits, y.magnitude())
	default:
		return diff(y.bits, x.magnitude())
	}
}

func (x Int) Sub(y Int) (Int, error) {
	switch {
	case x.IsPositive() && y.IsPositive():
		return diff(x.bits, y.bits)
	case x.IsPositive():
		m, err := math.Add(x.bits, y.magnitude())
		if err != nil {
			return Int{}, err
		}
		return fromMagnitude(m)
	case y.IsPositive():
		m, err := math.Add(x.magnitude(), y.bits)
		if err != nil {
			return Int{}, err
		}
		return negFromMagnitude(m)
	default:
		return diff(y.magnitude(), x.magnitude())
	}
}

func (x Int) Mul(y Int) (Int, error) {
	m, err := math.Mul(x.magnitude(), y.magnitude())
	if err != nil {
		return Int{}, err
	}
	return signedMagnitude(m, x.IsNegative() != y.IsNegative())
}

// DivDown divides rounding the magnitude toward zero.
func (x Int) DivDown(y Int) (Int, error) {
	m, err := math.DivDown(x.magnitude(), y.magnitude())
	if err != nil {
		return Int{}, err
	}
	return signedMagnitude(m, x.IsNegative() != y.IsNegative())
}

// DivUp divides rounding the magnitude away from zero.
func (x Int) DivUp(y Int) (Int, error) {
	m, err := math.DivUp(x.magnitude(), y.magnitude())
	if err != nil {
		return Int{}, err
	}
	return signedMagnitude(m, x.IsNegative() != y.IsNegative())
}

// Mod returns the truncated remainder, whose sign follows the dividend.
func (x Int) Mod(y Int) (Int, error) {
	m, err := math.Mod(x.magnitude(), y.magnitude())
	if err != nil {
		return Int{}, err
	}
	return signedMagnitude(m, x.IsNegative())
}

// Shr shifts right arithmetically, filling vacated high bits with the sign.
func (x Int) Shr(n uint8) Int {
	var z uint256.Int
	z.Rsh(&x.bits, uint(n))
	if x.IsNegative() && n > 0 {
		var fill uint256.Int
		fill.Lsh(&allOnes, 256-uint(n))
		z.Or(&z, &fill)
	}
	return Int{bits: z}
}

// Shl shifts the raw word left. Bits may move into or out of the sign bit.
func (x Int) Shl(n uint8) Int {
	var z uint256.Int
	z.Lsh(&x.bits, uint(n))
	return Int{bits: z}
}

func (x Int) Or(y Int) Int {
	var z uint256.Int
	z.Or(&x.bits, &y.bits)
	return Int{bits: z}
}

func (x Int) And(y Int) Int {
	var z uint256.Int
	z.And(&x.bits, &y.bits)
	return Int{bits: z}
}
