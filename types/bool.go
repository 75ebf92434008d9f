package types

// Bool is DI's boolean value. Arithmetic treats it as 0 or 1 (see Rank).
type Bool bool

func NewBool(b bool) Bool { return Bool(b) }

func (b Bool) Type() TypeCode { return TYPE_BOOL }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Truthy() bool { return bool(b) }

func (b Bool) Equal(other Value) bool {
	if o, ok := other.(Bool); ok {
		return b == o
	}
	return false
}
