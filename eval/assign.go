package eval

import (
	"ditchy/dierr"
	"ditchy/parser"
	"ditchy/types"
)

// evalAssignment implements the right-to-left chain a := b := ... := v:
// the rightmost value expression is evaluated once, then folded leftward
// through each target in turn, each fold producing the accumulator for
// the next (per the specification, `a := b := c` sets b to c, then a to
// the result of that).
func evalAssignment(n *parser.Assignment, env *types.Environment) (types.Value, error) {
	acc, err := Eval(n.Value, env)
	if err != nil {
		return nil, err
	}
	for i := len(n.Targets) - 1; i >= 0; i-- {
		acc, err = performAssignment(n.Targets[i], acc, n.ReturnOld[i], env)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// performAssignment writes rhs into target and returns either rhs or,
// when returnOld is set, the value target held immediately beforehand.
func performAssignment(target parser.Node, rhs types.Value, returnOld bool, env *types.Environment) (types.Value, error) {
	switch t := target.(type) {
	case *parser.Identifier:
		old, existed := env.Get(t.Name)
		env.Set(t.Name, rhs)
		if returnOld {
			if !existed {
				return types.NullValue, nil
			}
			return old, nil
		}
		return rhs, nil

	case *parser.IndexExpr:
		flat := flattenIndexGroups(t.IndexGroups)
		container, err := Eval(t.Primary, env)
		if err != nil {
			return nil, err
		}
		for _, idxNode := range flat[:len(flat)-1] {
			idx, err := Eval(idxNode, env)
			if err != nil {
				return nil, err
			}
			container, err = indexGet(container, idx, idxNode.Position())
			if err != nil {
				return nil, err
			}
		}
		lastIdxNode := flat[len(flat)-1]
		lastIdx, err := Eval(lastIdxNode, env)
		if err != nil {
			return nil, err
		}
		old, err := indexSet(container, lastIdx, rhs, lastIdxNode.Position())
		if err != nil {
			return nil, err
		}
		if returnOld {
			return old, nil
		}
		return rhs, nil

	case *parser.AttrExpr:
		container, err := Eval(t.Primary, env)
		if err != nil {
			return nil, err
		}
		for _, name := range t.Names[:len(t.Names)-1] {
			container, err = attrGet(container, name, t.Pos)
			if err != nil {
				return nil, err
			}
		}
		old, err := attrSet(container, t.Names[len(t.Names)-1], rhs, t.Pos)
		if err != nil {
			return nil, err
		}
		if returnOld {
			return old, nil
		}
		return rhs, nil

	case *parser.ListLit:
		return performPatternAssignment(t, rhs, returnOld, env)

	default:
		return nil, dierr.NewRuntimeSyntaxError(target.Position().Line, target.Position().Column,
			"left-hand side is not assignable")
	}
}

func flattenIndexGroups(groups [][]parser.Node) []parser.Node {
	var out []parser.Node
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// iterableView is a uniform read/slice interface over the two RHS shapes a
// pattern assignment may destructure: List and String.
type iterableView struct {
	length int
	get    func(i int) types.Value
	slice  func(a, b int) types.Value
}

func asIterable(v types.Value) (iterableView, bool) {
	switch x := v.(type) {
	case types.List:
		return iterableView{
			length: x.Len(),
			get:    func(i int) types.Value { return x.Get(i) },
			slice:  func(a, b int) types.Value { return x.Slice(a, b) },
		}, true
	case types.String:
		runes := x.Runes()
		return iterableView{
			length: len(runes),
			get:    func(i int) types.Value { return types.NewString(string(runes[i])) },
			slice: func(a, b int) types.Value {
				return types.NewString(string(runes[a:b]))
			},
		}, true
	default:
		return iterableView{}, false
	}
}

// performPatternAssignment implements list-pattern destructuring with at
// most one splat position, per the specification's positional-slicing
// rule: elements before the splat map to the head of rhs, elements after
// it map to the tail, and the splat itself receives the remaining middle
// slice.
func performPatternAssignment(pattern *parser.ListLit, rhs types.Value, returnOld bool, env *types.Environment) (types.Value, error) {
	view, ok := asIterable(rhs)
	if !ok {
		return nil, dierr.NewRuntimeSyntaxError(pattern.Pos.Line, pattern.Pos.Column,
			"right-hand side of a pattern assignment must be a List or String")
	}

	splatIdx := -1
	for i, el := range pattern.Elements {
		if _, isSplat := el.(*parser.EllipsisExpr); isSplat {
			if splatIdx != -1 {
				return nil, dierr.NewRuntimeSyntaxError(pattern.Pos.Line, pattern.Pos.Column,
					"a pattern may contain at most one splat element")
			}
			splatIdx = i
		}
	}

	olds := make([]types.Value, len(pattern.Elements))

	assignOne := func(idx int, targetNode parser.Node, val types.Value) error {
		old, err := performAssignment(targetNode, val, returnOld, env)
		if err != nil {
			return err
		}
		olds[idx] = old
		return nil
	}

	if splatIdx == -1 {
		m := len(pattern.Elements)
		if view.length != m {
			return nil, dierr.NewRuntimeSyntaxError(pattern.Pos.Line, pattern.Pos.Column,
				"pattern length does not match right-hand side length")
		}
		for i, el := range pattern.Elements {
			if err := assignOne(i, el, view.get(i)); err != nil {
				return nil, err
			}
		}
	} else {
		m := len(pattern.Elements) - 1
		n := view.length
		if n < m {
			return nil, dierr.NewRuntimeSyntaxError(pattern.Pos.Line, pattern.Pos.Column,
				"right-hand side is too short for this pattern's splat")
		}
		p := splatIdx
		for i := 0; i < p; i++ {
			if err := assignOne(i, pattern.Elements[i], view.get(i)); err != nil {
				return nil, err
			}
		}
		tailLen := m - p
		splatTarget := pattern.Elements[p].(*parser.EllipsisExpr).Inner
		if err := assignOne(p, splatTarget, view.slice(p, n-tailLen)); err != nil {
			return nil, err
		}
		for i := p + 1; i < len(pattern.Elements); i++ {
			rhsIdx := n - tailLen + (i - p - 1)
			if err := assignOne(i, pattern.Elements[i], view.get(rhsIdx)); err != nil {
				return nil, err
			}
		}
	}

	if returnOld {
		return types.NewList(olds), nil
	}
	return rhs, nil
}
