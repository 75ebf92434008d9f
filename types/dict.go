package types

import "strings"

type dictData struct {
	order []string
	vals  map[string]Value
}

// Dict is DI's insertion-ordered mapping from identifier name to Value.
// It is the representation of both class instances and general keyed
// records. Like List it carries reference semantics via a shared
// pointer, so aliasing (including a field pointing back at its own
// instance) is observable and requires no special handling beyond what
// Go's garbage collector already provides.
type Dict struct {
	d *dictData
}

func NewDict() Dict {
	return Dict{d: &dictData{vals: make(map[string]Value)}}
}

// NewDictFromEnv builds a Dict preserving env's insertion order, used to
// materialize a ClassDecl call's resulting environment as an instance.
func NewDictFromEnv(env *Environment) Dict {
	d := NewDict()
	for _, name := range env.Keys() {
		v, _ := env.Get(name)
		d.Set(name, v)
	}
	return d
}

func (d Dict) Type() TypeCode { return TYPE_DICT }

func (d Dict) String() string {
	parts := make([]string, 0, len(d.d.order))
	for _, k := range d.d.order {
		parts = append(parts, k+": "+d.d.vals[k].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d Dict) Truthy() bool { return len(d.d.order) != 0 }

func (d Dict) Equal(other Value) bool {
	o, ok := other.(Dict)
	if !ok || len(d.d.order) != len(o.d.order) {
		return false
	}
	for _, k := range d.d.order {
		ov, ok := o.Get(k)
		if !ok || !d.d.vals[k].Equal(ov) {
			return false
		}
	}
	return true
}

func (d Dict) Get(key string) (Value, bool) {
	v, ok := d.d.vals[key]
	return v, ok
}

func (d Dict) Set(key string, v Value) {
	if _, exists := d.d.vals[key]; !exists {
		d.d.order = append(d.d.order, key)
	}
	d.d.vals[key] = v
}

func (d Dict) Keys() []string {
	out := make([]string, len(d.d.order))
	copy(out, d.d.order)
	return out
}

func (d Dict) Len() int { return len(d.d.order) }
