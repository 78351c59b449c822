package calc

import (
	"github.com/Aurorachain/go-i256/common/number"
)

type operation struct {
	arity int
	run   func(args []string) (interface{}, error)
}

var operations = map[string]operation{
	"add":     arithmetic(number.Int.Add),
	"sub":     arithmetic(number.Int.Sub),
	"mul":     arithmetic(number.Int.Mul),
	"divdown": arithmetic(number.Int.DivDown),
	"divup":   arithmetic(number.Int.DivUp),
	"mod":     arithmetic(number.Int.Mod),

	"and": bitwise(number.Int.And),
	"or":  bitwise(number.Int.Or),

	"eq":  predicate(number.Int.Eq),
	"lt":  predicate(number.Int.Lt),
	"lte": predicate(number.Int.Lte),
	"gt":  predicate(number.Int.Gt),
	"gte": predicate(number.Int.Gte),
	"cmp": {2, func(args []string) (interface{}, error) {
		xs, err := parseOperands(args)
		if err != nil {
			return nil, err
		}
		return xs[0].Compare(xs[1]), nil
	}},

	"abs":  unary(func(x number.Int) (interface{}, error) { return x.Abs(), nil }),
	"flip": unary(func(x number.Int) (interface{}, error) { return x.Flip(), nil }),

	"isneg":  unary(func(x number.Int) (interface{}, error) { return x.IsNegative(), nil }),
	"ispos":  unary(func(x number.Int) (interface{}, error) { return x.IsPositive(), nil }),
	"iszero": unary(func(x number.Int) (interface{}, error) { return x.IsZero(), nil }),

	"shl": shift(number.Int.Shl),
	"shr": shift(number.Int.Shr),

	"touint256": unary(func(x number.Int) (interface{}, error) { return x.ToUint256() }),
	"touint64":  unary(func(x number.Int) (interface{}, error) { return x.ToUint64() }),
	"touint32":  unary(func(x number.Int) (interface{}, error) { return x.ToUint32() }),
	"touint16":  unary(func(x number.Int) (interface{}, error) { return x.ToUint16() }),
	"touint8":   unary(func(x number.Int) (interface{}, error) { return x.ToUint8() }),

	"truncuint64": unary(func(x number.Int) (interface{}, error) { return x.TruncateToUint64() }),
	"truncuint32": unary(func(x number.Int) (interface{}, error) { return x.TruncateToUint32() }),
	"truncuint16": unary(func(x number.Int) (interface{}, error) { return x.TruncateToUint16() }),
	"truncuint8":  unary(func(x number.Int) (interface{}, error) { return x.TruncateToUint8() }),

	"from": {1, func(args []string) (interface{}, error) {
		v, err := parseUnsigned(args[0])
		if err != nil {
			return nil, err
		}
		return number.FromUint256(v)
	}},
	"neg": {1, func(args []string) (interface{}, error) {
		v, err := parseUnsigned(args[0])
		if err != nil {
			return nil, err
		}
		return number.NegFromUint256(v)
	}},
}

func arithmetic(fn func(a, b number.Int) (number.Int, error)) operation {
	return operation{2, func(args []string) (interface{}, error) {
		xs, err := parseOperands(args)
		if err != nil {
			return nil, err
		}
		return fn(xs[0], xs[1])
	}}
}

func bitwise(fn func(a, b number.Int) number.Int) operation {
	return operation{2, func(args []string) (interface{}, error) {
		xs, err := parseOperands(args)
		if err != nil {
			return nil, err
		}
		return fn(xs[0], xs[1]), nil
	}}
}

func predicate(fn func(a, b number.Int) bool) operation {
	return operation{2, func(args []string) (interface{}, error) {
		xs, err := parseOperands(args)
		if err != nil {
			return nil, err
		}
		return fn(xs[0], xs[1]), nil
	}}
}

func unary(fn func(x number.Int) (interface{}, error)) operation {
	return operation{1, func(args []string) (interface{}, error) {
		x, err := parseOperand(args[0])
		if err != nil {
			return nil, err
		}
		return fn(x)
	}}
}

func shift(fn func(x number.Int, n uint8) number.Int) operation {
	return operation{2, func(args []string) (interface{}, error) {
		x, err := parseOperand(args[0])
		if err != nil {
			return nil, err
		}
		n, err := parseShift(args[1])
		if err != nil {
			return nil, err
		}
		return fn(x, n), nil
	}}
}
