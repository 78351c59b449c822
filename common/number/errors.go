package number

import (
	"github.com/Aurorachain/go-i256/common/math"
	"github.com/pkg/errors"
)

var (
	ErrRange = errors.New("unsigned value exceeds signed 256-bit range")

	ErrUnderflow = errors.New("negative value has no unsigned representation")

	ErrSyntax = errors.New("invalid signed 256-bit integer")

	ErrOverflow = math.ErrOverflow

	ErrDivideByZero = math.ErrDivideByZero
)
