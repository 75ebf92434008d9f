package types

import "strings"

// listData is the shared backing store for a List value; List wraps a
// pointer to it so that aliasing (two bindings naming the same list)
// observes the same mutations, per the specification's reference
// semantics for containers.
type listData struct {
	elems []Value
}

type List struct {
	d *listData
}

func NewList(elems []Value) List {
	if elems == nil {
		elems = []Value{}
	}
	return List{d: &listData{elems: elems}}
}

func (l List) Type() TypeCode { return TYPE_LIST }

func (l List) String() string {
	parts := make([]string, len(l.d.elems))
	for i, e := range l.d.elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l List) Truthy() bool { return len(l.d.elems) != 0 }

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l.d.elems) != len(o.d.elems) {
		return false
	}
	for i := range l.d.elems {
		if !l.d.elems[i].Equal(o.d.elems[i]) {
			return false
		}
	}
	return true
}

func (l List) Len() int { return len(l.d.elems) }

func (l List) Elems() []Value { return l.d.elems }

func (l List) Get(i int) Value { return l.d.elems[i] }

func (l List) Set(i int, v Value) { l.d.elems[i] = v }

// Slice returns a new, independent List over elements [start, end).
func (l List) Slice(start, end int) List {
	out := make([]Value, end-start)
	copy(out, l.d.elems[start:end])
	return NewList(out)
}

// Append returns a new, independent List with extra elements appended.
func (l List) Append(extra ...Value) List {
	out := make([]Value, 0, len(l.d.elems)+len(extra))
	out = append(out, l.d.elems...)
	out = append(out, extra...)
	return NewList(out)
}
