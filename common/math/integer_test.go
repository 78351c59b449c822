package math

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var maxU256 = U256{MaxUint64, MaxUint64, MaxUint64, MaxUint64}

func u(v uint64) U256 { return *uint256.NewInt(v) }

func TestOverflow(t *testing.T) {
	for i, test := range []struct {
		x, y     U256
		overflow bool
		op       func(U256, U256) (U256, bool)
	}{
		{u(1), maxU256, true, SafeAdd},
		{maxU256, u(0), false, SafeAdd},
		{u(0), u(1), true, SafeSub},
		{u(1), u(1), false, SafeSub},
		{maxU256, u(2), true, SafeMul},
		{maxU256, u(1), false, SafeMul},
		{u(0), maxU256, false, SafeMul},
	} {
		_, overflow := test.op(test.x, test.y)
		if test.overflow != overflow {
			t.Errorf("%d failed. Expected test to be %v, got %v", i, test.overflow, overflow)
		}
	}
}

func TestCheckedArithmetic(t *testing.T) {
	z, err := Add(u(40), u(2))
	require.NoError(t, err)
	assert.Equal(t, u(42), z)

	z, err = Sub(u(40), u(2))
	require.NoError(t, err)
	assert.Equal(t, u(38), z)

	z, err = Mul(u(40), u(2))
	require.NoError(t, err)
	assert.Equal(t, u(80), z)

	_, err = Add(maxU256, u(1))
	assert.Equal(t, ErrOverflow, err)
	_, err = Sub(u(1), u(2))
	assert.Equal(t, ErrOverflow, err)
	_, err = Mul(maxU256, maxU256)
	assert.Equal(t, ErrOverflow, err)
}

func TestRoundingDivision(t *testing.T) {
	for _, test := range []struct {
		x, y      U256
		down, up  U256
		remainder U256
	}{
		{u(7), u(2), u(3), u(4), u(1)},
		{u(8), u(2), u(4), u(4), u(0)},
		{u(0), u(5), u(0), u(0), u(0)},
		{u(1), u(5), u(0), u(1), u(1)},
		{maxU256, u(1), maxU256, maxU256, u(0)},
		{maxU256, maxU256, u(1), u(1), u(0)},
	} {
		down, err := DivDown(test.x, test.y)
		require.NoError(t, err)
		assert.Equal(t, test.down, down, "%v / %v", &test.x, &test.y)

		up, err := DivUp(test.x, test.y)
		require.NoError(t, err)
		assert.Equal(t, test.up, up, "%v / %v", &test.x, &test.y)

		rem, err := Mod(test.x, test.y)
		require.NoError(t, err)
		assert.Equal(t, test.remainder, rem, "%v %% %v", &test.x, &test.y)
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := DivDown(u(1), u(0))
	assert.Equal(t, ErrDivideByZero, err)
	_, err = DivUp(u(1), u(0))
	assert.Equal(t, ErrDivideByZero, err)
	_, err = Mod(u(0), u(0))
	assert.Equal(t, ErrDivideByZero, err)
}

func TestParseUint64(t *testing.T) {
	tests := []struct {
		input string
		num   uint64
		ok    bool
	}{
		{"", 0, true},
		{"0", 0, true},
		{"0x0", 0, true},
		{"12345678", 12345678, true},
		{"0x12345678", 0x12345678, true},
		{"0X12345678", 0x12345678, true},
		{"0123456789", 123456789, true},
		{"00000000FFFFFFFF", 0, false},
		{"18446744073709551615", MaxUint64, true},
		{"18446744073709551616", 0, false},
		{"-1", 0, false},
	}
	for _, test := range tests {
		num, ok := ParseUint64(test.input)
		if ok != test.ok {
			t.Errorf("ParseUint64(%q) -> ok = %t, want %t", test.input, ok, test.ok)
			continue
		}
		if ok && num != test.num {
			t.Errorf("ParseUint64(%q) -> %d, want %d", test.input, num, test.num)
		}
	}
}
