// Package interp exposes the public façade over the lexer, parser and
// evaluator: a persistent environment that successive source fragments
// can be executed or imported against.
package interp

import (
	"ditchy/eval"
	"ditchy/parser"
	"ditchy/trace"
	"ditchy/types"
)

// Interpreter holds one persistent Environment across calls, letting
// later fragments see bindings left behind by earlier ones.
type Interpreter struct {
	env *types.Environment
}

func New() *Interpreter {
	return &Interpreter{env: types.NewEnvironment()}
}

// Execute parses source and evaluates it against the persistent
// environment with scope-flush enabled at the top level: bindings
// introduced by source that are not already present are removed once
// execution completes, matching a single invocation's transient scope.
func (in *Interpreter) Execute(source string) (types.Value, error) {
	root, err := parser.ParseProgram(source)
	if err != nil {
		return nil, err
	}
	trace.Enter("execute")
	defer trace.Leave("execute")
	v, err := eval.EvalScope(root, in.env, true)
	if err != nil {
		trace.Error("execute", err)
		return nil, err
	}
	return v, nil
}

// Import parses source and evaluates it with scope-flush disabled, so
// every top-level binding it introduces persists in the environment —
// this is how DI composes multiple source files into one program.
func (in *Interpreter) Import(source string) error {
	root, err := parser.ParseProgram(source)
	if err != nil {
		return err
	}
	trace.Enter("import")
	defer trace.Leave("import")
	if _, err := eval.EvalScope(root, in.env, false); err != nil {
		trace.Error("import", err)
		return err
	}
	return nil
}

// Clear drops every binding, as if the interpreter had just been created.
func (in *Interpreter) Clear() {
	in.env = types.NewEnvironment()
}
