package types

import "strconv"

// String is DI's code-point sequence value.
type String string

func NewString(s string) String { return String(s) }

func (s String) Type() TypeCode { return TYPE_STRING }
func (s String) String() string { return strconv.Quote(string(s)) }
func (s String) Truthy() bool   { return len(s) != 0 }

func (s String) Equal(other Value) bool {
	if o, ok := other.(String); ok {
		return s == o
	}
	return false
}

// Raw returns the unquoted Go string content.
func (s String) Raw() string { return string(s) }

// Runes returns the code points of s, the unit indexing and length operate on.
func (s String) Runes() []rune { return []rune(string(s)) }

// Len returns the number of code points.
func (s String) Len() int { return len(s.Runes()) }
