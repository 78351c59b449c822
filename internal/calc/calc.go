// Package calc evaluates textual signed 256-bit operations such as "divup -7 2".
package calc

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Aurorachain/go-i256/common/math"
	"github.com/Aurorachain/go-i256/common/number"
	"github.com/Aurorachain/go-i256/log"
	"github.com/Aurorachain/go-i256/metrics"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	FormatDec = "dec"
	FormatHex = "hex"
)

type Config struct {
	// Format selects how values are rendered: "dec" for signed decimal,
	// "hex" for the raw two's complement word.
	Format string
}

var DefaultConfig = Config{
	Format: FormatDec,
}

var (
	ErrUnknownOp = errors.New("unknown operation")

	ErrArity = errors.New("wrong number of operands")

	ErrShift = errors.New("shift count must be in [0, 255]")

	ErrFormat = errors.New("unknown output format")
)

type Evaluator struct {
	cfg Config
}

func New(cfg Config) (*Evaluator, error) {
	switch cfg.Format {
	case "":
		cfg.Format = FormatDec
	case FormatDec, FormatHex:
	default:
		return nil, errors.Wrapf(ErrFormat, "%q", cfg.Format)
	}
	return &Evaluator{cfg: cfg}, nil
}

func (e *Evaluator) Config() Config {
	return e.cfg
}

// Kind classifies an evaluation failure for reporting and metrics.
func Kind(err error) string {
	switch errors.Cause(err) {
	case nil:
		return ""
	case number.ErrRange:
		return "range"
	case number.ErrUnderflow:
		return "underflow"
	case number.ErrOverflow:
		return "overflow"
	case number.ErrDivideByZero:
		return "divzero"
	}
	return "syntax"
}

// EvalLine evaluates a whitespace separated "op operand..." line.
func (e *Evaluator) EvalLine(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", errors.Wrap(ErrArity, "empty input")
	}
	return e.Eval(strings.ToLower(fields[0]), fields[1:]...)
}

func (e *Evaluator) Eval(name string, args ...string) (string, error) {
	defer metrics.NewTimer("calc/eval").UpdateSince(time.Now())

	v, err := e.run(name, args)
	if err != nil {
		metrics.NewCounter("calc/failures/" + Kind(err)).Inc(1)
		log.LWarn("Operation failed", zap.String("op", name), zap.Strings("args", args), zap.Error(err))
		return "", err
	}
	out := e.render(v)
	log.LDebug("Operation evaluated", zap.String("op", name), zap.Strings("args", args), zap.String("result", out))
	return out, nil
}

func (e *Evaluator) run(name string, args []string) (interface{}, error) {
	op, ok := operations[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOp, "%q", name)
	}
	if len(args) != op.arity {
		return nil, errors.Wrapf(ErrArity, "%s takes %d, got %d", name, op.arity, len(args))
	}
	metrics.NewCounter("calc/ops/" + name).Inc(1)

	v, err := op.run(args)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", name, strings.Join(args, " "))
	}
	return v, nil
}

func (e *Evaluator) render(v interface{}) string {
	hex := e.cfg.Format == FormatHex
	switch v := v.(type) {
	case number.Int:
		if hex {
			return v.Hex()
		}
		return v.String()
	case uint256.Int:
		if hex {
			return v.Hex()
		}
		return v.ToBig().String()
	case uint64, uint32, uint16, uint8:
		if hex {
			return fmt.Sprintf("%#x", v)
		}
		return fmt.Sprintf("%d", v)
	case bool:
		return strconv.FormatBool(v)
	case number.Ordering:
		return v.String()
	}
	return fmt.Sprint(v)
}

// Ops returns the supported operation names in order.
func Ops() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseOperand(s string) (number.Int, error) {
	x, err := number.Parse(s)
	if err != nil {
		return number.Int{}, errors.Wrapf(err, "operand %q", s)
	}
	return x, nil
}

func parseOperands(args []string) ([]number.Int, error) {
	xs := make([]number.Int, len(args))
	for i, arg := range args {
		x, err := parseOperand(arg)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

func parseUnsigned(s string) (uint256.Int, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok || b.Sign() < 0 {
		return uint256.Int{}, errors.Wrapf(number.ErrSyntax, "unsigned operand %q", s)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return uint256.Int{}, errors.Wrapf(number.ErrSyntax, "unsigned operand %q exceeds 256 bits", s)
	}
	return *v, nil
}

func parseShift(s string) (uint8, error) {
	n, ok := math.ParseUint64(s)
	if !ok || s == "" || n > 255 {
		return 0, errors.Wrapf(ErrShift, "%q", s)
	}
	return uint8(n), nil
}
