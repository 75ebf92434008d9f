package types

import (
	"math"
	"strconv"
)

// Float is DI's IEEE-754 double value.
type Float float64

func NewFloat(f float64) Float { return Float(f) }

func (f Float) Type() TypeCode { return TYPE_FLOAT }

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f Float) Truthy() bool {
	return float64(f) != 0 && !math.IsNaN(float64(f))
}

func (f Float) Equal(other Value) bool {
	if o, ok := other.(Float); ok {
		return f == o
	}
	return false
}
