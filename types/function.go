package types

import "ditchy/parser"

// Function is the single callable Value variant covering both
// function(...) and class(...) declarations. IsClass distinguishes the
// two at call time: a function call evaluates its body and yields the
// body's final value, while a class call evaluates its body without
// scope-flush and yields the resulting environment as a Dict.
type Function struct {
	Params  []string
	Body    *parser.Scope
	Closure *Environment
	IsClass bool
}

func NewFunction(params []string, body *parser.Scope, closure *Environment, isClass bool) Function {
	return Function{Params: params, Body: body, Closure: closure, IsClass: isClass}
}

func (f Function) Type() TypeCode { return TYPE_FUNCTION }

func (f Function) String() string {
	if f.IsClass {
		return "class(...)"
	}
	return "function(...)"
}

func (f Function) Truthy() bool { return true }

// Equal is identity-based: two separately declared functions are never
// equal even if their parameter lists and bodies happen to match.
func (f Function) Equal(other Value) bool {
	o, ok := other.(Function)
	if !ok {
		return false
	}
	return f.Body == o.Body && f.Closure == o.Closure
}
