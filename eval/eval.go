// Package eval walks the AST produced by ditchy/parser against a
// ditchy/types.Environment, producing ditchy/types.Value results or a
// ditchy/dierr error.
package eval

import (
	"ditchy/dierr"
	"ditchy/parser"
	"ditchy/trace"
	"ditchy/types"
)

// Eval dispatches a single node to its evaluation rule.
func Eval(node parser.Node, env *types.Environment) (types.Value, error) {
	switch n := node.(type) {
	case *parser.IntLit:
		return types.NewBigInt(n.Val), nil
	case *parser.FloatLit:
		return types.NewFloat(n.Val), nil
	case *parser.BoolLit:
		return types.NewBool(n.Val), nil
	case *parser.NullLit:
		return types.NullValue, nil
	case *parser.StringLit:
		return types.NewString(n.Val), nil
	case *parser.Identifier:
		v, ok := env.Get(n.Name)
		if !ok {
			return nil, dierr.NewNameError(n.Pos.Line, n.Pos.Column, "name '"+n.Name+"' is not defined")
		}
		return v, nil
	case *parser.ListLit:
		return evalListLit(n, env)
	case *parser.EllipsisExpr:
		// A bare Ellipsis only has meaning as a ListLit element or
		// pattern-assignment target; evaluated standalone it degrades
		// to evaluating its inner expression.
		return Eval(n.Inner, env)
	case *parser.Scope:
		return EvalScope(n, env, true)
	case *parser.IfElse:
		return evalIfElse(n, env)
	case *parser.While:
		return evalWhile(n, env)
	case *parser.Assignment:
		return evalAssignment(n, env)
	case *parser.UnaryOp:
		return evalUnary(n, env)
	case *parser.NaryOp:
		return evalNaryOp(n, env)
	case *parser.Comparison:
		return evalComparison(n, env)
	case *parser.LeftPoly:
		return evalLeftPoly(n, env)
	case *parser.CallExpr:
		return evalCallExpr(n, env)
	case *parser.IndexExpr:
		return evalIndexExpr(n, env)
	case *parser.AttrExpr:
		return evalAttrExpr(n, env)
	case *parser.FunctionDecl:
		return types.NewFunction(n.Params, n.Body, env.Copy(), false), nil
	case *parser.ClassDecl:
		return types.NewFunction(n.Params, n.Body, env.Copy(), true), nil
	default:
		return nil, dierr.NewRuntimeSyntaxError(0, 0, "unhandled AST node")
	}
}

func evalListLit(n *parser.ListLit, env *types.Environment) (types.Value, error) {
	var elems []types.Value
	for _, el := range n.Elements {
		if splat, ok := el.(*parser.EllipsisExpr); ok {
			v, err := Eval(splat.Inner, env)
			if err != nil {
				return nil, err
			}
			l, ok := v.(types.List)
			if !ok {
				return nil, dierr.NewTypeError(splat.Pos.Line, splat.Pos.Column, "splat target is not a list")
			}
			elems = append(elems, l.Elems()...)
			continue
		}
		v, err := Eval(el, env)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return types.NewList(elems), nil
}

// EvalScope evaluates a Scope's instructions in order and returns the
// value of the last one (Null if empty). When flush is true, any
// binding introduced during the scope (not present at entry) is
// removed from env on exit; pre-existing bindings keep whatever value
// they hold at exit.
func EvalScope(s *parser.Scope, env *types.Environment, flush bool) (types.Value, error) {
	var snapshot map[string]bool
	if flush {
		keys := env.Keys()
		snapshot = make(map[string]bool, len(keys))
		for _, k := range keys {
			snapshot[k] = true
		}
	}

	var result types.Value = types.NullValue
	for _, instr := range s.Instructions {
		v, err := Eval(instr, env)
		if err != nil {
			return nil, err
		}
		result = v
	}

	if flush {
		for _, k := range env.Keys() {
			if !snapshot[k] {
				env.Delete(k)
			}
		}
	}
	return result, nil
}

func evalIfElse(n *parser.IfElse, env *types.Environment) (types.Value, error) {
	for i, cond := range n.Conditions {
		v, err := Eval(cond, env)
		if err != nil {
			return nil, err
		}
		if v.Truthy() {
			return EvalScope(n.Branches[i], env, true)
		}
	}
	if n.Else != nil {
		return EvalScope(n.Else, env, true)
	}
	return types.NullValue, nil
}

func evalWhile(n *parser.While, env *types.Environment) (types.Value, error) {
	var result types.Value = types.NullValue
	for {
		cond, err := Eval(n.Condition, env)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			return result, nil
		}
		result, err = EvalScope(n.Body, env, true)
		if err != nil {
			return nil, err
		}
	}
}

func evalCallExpr(n *parser.CallExpr, env *types.Environment) (types.Value, error) {
	callee, err := Eval(n.Callee, env)
	if err != nil {
		return nil, err
	}
	name := calleeName(n.Callee)
	for _, group := range n.ArgGroups {
		fn, ok := callee.(types.Function)
		if !ok {
			return nil, dierr.NewTypeError(n.Pos.Line, n.Pos.Column, "value is not callable")
		}
		args := make([]types.Value, len(group))
		for i, a := range group {
			v, err := Eval(a, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		callee, err = callFunction(fn, args, name, n.Pos)
		if err != nil {
			return nil, err
		}
	}
	return callee, nil
}

// calleeName extracts a human-readable name for tracing; calls through
// anything but a bare identifier are reported generically.
func calleeName(callee parser.Node) string {
	if id, ok := callee.(*parser.Identifier); ok {
		return id.Name
	}
	return "<anonymous>"
}

func callFunction(fn types.Function, args []types.Value, name string, pos parser.Position) (types.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, dierr.NewFunctionArgsCountError(pos.Line, pos.Column,
			"expected call with a different number of arguments")
	}
	trace.Call(name, args)
	callEnv := fn.Closure.Copy()
	for i, p := range fn.Params {
		callEnv.Set(p, args[i])
	}
	if fn.IsClass {
		if _, err := EvalScope(fn.Body, callEnv, false); err != nil {
			trace.Error(name, err)
			return nil, err
		}
		result := types.NewDictFromEnv(callEnv)
		trace.Return(name, result)
		return result, nil
	}
	result, err := EvalScope(fn.Body, callEnv, true)
	if err != nil {
		trace.Error(name, err)
		return nil, err
	}
	trace.Return(name, result)
	return result, nil
}

func evalIndexExpr(n *parser.IndexExpr, env *types.Environment) (types.Value, error) {
	cur, err := Eval(n.Primary, env)
	if err != nil {
		return nil, err
	}
	for _, group := range n.IndexGroups {
		for _, idxNode := range group {
			idx, err := Eval(idxNode, env)
			if err != nil {
				return nil, err
			}
			cur, err = indexGet(cur, idx, idxNode.Position())
			if err != nil {
				return nil, err
			}
		}
	}
	return cur, nil
}

func evalAttrExpr(n *parser.AttrExpr, env *types.Environment) (types.Value, error) {
	cur, err := Eval(n.Primary, env)
	if err != nil {
		return nil, err
	}
	for _, name := range n.Names {
		cur, err = attrGet(cur, name, n.Pos)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
