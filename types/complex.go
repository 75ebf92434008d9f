package types

import (
	"strconv"
	"strings"
)

// Complex is DI's (re, im) double-pair value. It only supports
// + - * / ** and equality, per the Value table in the specification.
type Complex complex128

func NewComplex(c complex128) Complex { return Complex(c) }

func (c Complex) Type() TypeCode { return TYPE_COMPLEX }

func (c Complex) String() string {
	re, im := real(complex128(c)), imag(complex128(c))
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(re, 'g', -1, 64))
	if im >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatFloat(im, 'g', -1, 64))
	b.WriteByte('j')
	return b.String()
}

func (c Complex) Truthy() bool {
	return real(complex128(c)) != 0 || imag(complex128(c)) != 0
}

func (c Complex) Equal(other Value) bool {
	if o, ok := other.(Complex); ok {
		return c == o
	}
	return false
}
