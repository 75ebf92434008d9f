package types

import "math/big"

// Int is DI's arbitrary-precision integer value.
type Int struct {
	V *big.Int
}

func NewInt(v int64) Int { return Int{V: big.NewInt(v)} }

// NewBigInt wraps an existing *big.Int. The caller must not mutate v afterward;
// DI values are treated as immutable once constructed.
func NewBigInt(v *big.Int) Int { return Int{V: v} }

func (i Int) Type() TypeCode { return TYPE_INT }
func (i Int) String() string { return i.V.String() }
func (i Int) Truthy() bool   { return i.V.Sign() != 0 }

func (i Int) Equal(other Value) bool {
	if o, ok := other.(Int); ok {
		return i.V.Cmp(o.V) == 0
	}
	return false
}

func (i Int) Int64() int64 { return i.V.Int64() }
