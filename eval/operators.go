package eval

import (
	"math"
	"math/big"
	"strings"

	"ditchy/dierr"
	"ditchy/parser"
	"ditchy/types"
)

// --- numeric promotion helpers -------------------------------------------

// valueToBigInt reports whether v is Bool or Int, returning its integer
// value. Bool promotes to 0/1 per the specification's numeric ladder.
func valueToBigInt(v types.Value) (*big.Int, bool) {
	switch x := v.(type) {
	case types.Bool:
		if bool(x) {
			return big.NewInt(1), true
		}
		return big.NewInt(0), true
	case types.Int:
		return x.V, true
	default:
		return nil, false
	}
}

func valueToFloat(v types.Value) (float64, bool) {
	if n, ok := valueToBigInt(v); ok {
		f := new(big.Float).SetInt(n)
		out, _ := f.Float64()
		return out, true
	}
	if f, ok := v.(types.Float); ok {
		return float64(f), true
	}
	return 0, false
}

func valueToComplex(v types.Value) (complex128, bool) {
	if c, ok := v.(types.Complex); ok {
		return complex128(c), true
	}
	if f, ok := valueToFloat(v); ok {
		return complex(f, 0), true
	}
	return 0, false
}

func isComplexValue(v types.Value) bool {
	_, ok := v.(types.Complex)
	return ok
}

// --- unary -----------------------------------------------------------------

func evalUnary(n *parser.UnaryOp, env *types.Environment) (types.Value, error) {
	operand, err := Eval(n.Operand, env)
	if err != nil {
		return nil, err
	}
	return applyUnary(n.Op, operand, n.Pos)
}

// applyUnary implements 'not', '#', '-', '+' and '~' against an already
// evaluated operand. A List operand to '-'/'+'/'~' maps the operator
// over its elements, per the reference ListWrapper's __neg__/__pos__/
// __invert__ (original_source/src/wrappers.py); '#' and 'not' are not
// list-distributive, they apply to the list as a whole.
func applyUnary(op string, operand types.Value, pos parser.Position) (types.Value, error) {
	switch op {
	case "not":
		return types.NewBool(!operand.Truthy()), nil
	case "#":
		switch v := operand.(type) {
		case types.String:
			return types.NewInt(int64(v.Len())), nil
		case types.List:
			return types.NewInt(int64(v.Len())), nil
		default:
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "value has no length")
		}
	case "-", "+", "~":
		if l, ok := operand.(types.List); ok {
			out := make([]types.Value, l.Len())
			for i := 0; i < l.Len(); i++ {
				v, err := applyUnary(op, l.Get(i), pos)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return types.NewList(out), nil
		}
		return applyScalarUnary(op, operand, pos)
	default:
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "unknown unary operator "+op)
	}
}

func applyScalarUnary(op string, operand types.Value, pos parser.Position) (types.Value, error) {
	switch op {
	case "-":
		if n, ok := valueToBigInt(operand); ok {
			return types.NewBigInt(new(big.Int).Neg(n)), nil
		}
		if f, ok := operand.(types.Float); ok {
			return types.NewFloat(-float64(f)), nil
		}
		if c, ok := operand.(types.Complex); ok {
			return types.Complex(-complex128(c)), nil
		}
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "unary '-' requires a numeric value")
	case "+":
		if types.IsNumeric(operand) {
			return operand, nil
		}
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "unary '+' requires a numeric value")
	case "~":
		n, ok := valueToBigInt(operand)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "'~' requires an integer value")
		}
		return types.NewBigInt(new(big.Int).Not(n)), nil
	default:
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "unknown unary operator "+op)
	}
}

// --- n-ary operators: or, and, **, ^, &, | --------------------------------

func evalNaryOp(n *parser.NaryOp, env *types.Environment) (types.Value, error) {
	switch n.Op {
	case "or":
		var last types.Value
		for _, op := range n.Operands {
			v, err := Eval(op, env)
			if err != nil {
				return nil, err
			}
			if v.Truthy() {
				return v, nil
			}
			last = v
		}
		return last, nil
	case "and":
		var last types.Value
		for _, op := range n.Operands {
			v, err := Eval(op, env)
			if err != nil {
				return nil, err
			}
			if !v.Truthy() {
				return v, nil
			}
			last = v
		}
		return last, nil
	case "**":
		vals := make([]types.Value, len(n.Operands))
		for i, op := range n.Operands {
			v, err := Eval(op, env)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		acc := vals[len(vals)-1]
		for i := len(vals) - 2; i >= 0; i-- {
			var err error
			acc, err = evalPower(vals[i], acc, n.Pos)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	case "^", "&", "|":
		acc, err := Eval(n.Operands[0], env)
		if err != nil {
			return nil, err
		}
		for _, op := range n.Operands[1:] {
			rhs, err := Eval(op, env)
			if err != nil {
				return nil, err
			}
			acc, err = evalBitwise(n.Op, acc, rhs, n.Pos)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	default:
		return nil, dierr.NewTypeError(n.Pos.Line, n.Pos.Column, "unknown n-ary operator "+n.Op)
	}
}

// evalBitwise implements '^', '&' and '|'. A List operand requires the
// other operand to also be a List of the same length and maps the
// operator elementwise, per the reference ListWrapper's __and__/__or__/
// __xor__ (original_source/src/wrappers.py) — unlike '*', these do not
// broadcast a List against a scalar.
func evalBitwise(op string, a, b types.Value, pos parser.Position) (types.Value, error) {
	if al, ok := a.(types.List); ok {
		bl, ok := b.(types.List)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "'"+op+"' is not defined between List and that operand")
		}
		if al.Len() != bl.Len() {
			return nil, dierr.NewValueError(pos.Line, pos.Column, "lists have mismatched lengths")
		}
		out := make([]types.Value, al.Len())
		for i := 0; i < al.Len(); i++ {
			v, err := evalBitwise(op, al.Get(i), bl.Get(i), pos)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return types.NewList(out), nil
	}

	ai, aok := valueToBigInt(a)
	bi, bok := valueToBigInt(b)
	if !aok || !bok {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'"+op+"' requires integer operands")
	}
	result := new(big.Int)
	switch op {
	case "^":
		result.Xor(ai, bi)
	case "&":
		result.And(ai, bi)
	case "|":
		result.Or(ai, bi)
	}
	return types.NewBigInt(result), nil
}

// evalPower implements '**' for a single (base, exponent) pair, promoting
// to Complex when the base is negative and the exponent is a non-integer
// Float, mirroring the reference implementation's implicit behavior since
// DI has no complex literal syntax of its own.
func evalPower(base, exp types.Value, pos parser.Position) (types.Value, error) {
	if !types.IsNumeric(base) || !types.IsNumeric(exp) {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'**' requires numeric operands")
	}
	if isComplexValue(base) || isComplexValue(exp) {
		bc, _ := valueToComplex(base)
		ec, _ := valueToComplex(exp)
		return types.Complex(cmplx(bc, ec)), nil
	}
	bi, biok := valueToBigInt(base)
	ei, eiok := valueToBigInt(exp)
	if biok && eiok && ei.Sign() >= 0 {
		return types.NewBigInt(new(big.Int).Exp(bi, ei, nil)), nil
	}
	bf, _ := valueToFloat(base)
	ef, _ := valueToFloat(exp)
	if bf < 0 && ef != math.Trunc(ef) {
		bc, ec := complex(bf, 0), complex(ef, 0)
		return types.Complex(cmplx(bc, ec)), nil
	}
	return types.NewFloat(math.Pow(bf, ef)), nil
}

// --- comparison chain --------------------------------------------------

func evalComparison(n *parser.Comparison, env *types.Environment) (types.Value, error) {
	prev, err := Eval(n.Operands[0], env)
	if err != nil {
		return nil, err
	}
	for i, op := range n.Ops {
		next, err := Eval(n.Operands[i+1], env)
		if err != nil {
			return nil, err
		}
		ok, err := compareOp(op, prev, next, n.Pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			return types.NewBool(false), nil
		}
		prev = next
	}
	return types.NewBool(true), nil
}

func compareOp(op string, a, b types.Value, pos parser.Position) (bool, error) {
	switch op {
	case "==":
		return valuesEqual(a, b), nil
	case "!=":
		return !valuesEqual(a, b), nil
	}
	c, err := orderCompare(a, b, pos)
	if err != nil {
		return false, err
	}
	switch op {
	case "<":
		return c < 0, nil
	case "<=":
		return c <= 0, nil
	case ">":
		return c > 0, nil
	case ">=":
		return c >= 0, nil
	default:
		return false, dierr.NewTypeError(pos.Line, pos.Column, "unknown comparison operator "+op)
	}
}

func valuesEqual(a, b types.Value) bool {
	if types.IsNumeric(a) && types.IsNumeric(b) {
		if isComplexValue(a) || isComplexValue(b) {
			ac, _ := valueToComplex(a)
			bc, _ := valueToComplex(b)
			return ac == bc
		}
		af, _ := valueToFloat(a)
		bf, _ := valueToFloat(b)
		return af == bf
	}
	if la, ok := a.(types.List); ok {
		lb, ok := b.(types.List)
		if !ok || la.Len() != lb.Len() {
			return false
		}
		for i := 0; i < la.Len(); i++ {
			if !valuesEqual(la.Get(i), lb.Get(i)) {
				return false
			}
		}
		return true
	}
	return a.Equal(b)
}

func orderCompare(a, b types.Value, pos parser.Position) (int, error) {
	if types.IsNumeric(a) && types.IsNumeric(b) {
		if isComplexValue(a) || isComplexValue(b) {
			return 0, dierr.NewTypeError(pos.Line, pos.Column, "complex values are not ordered")
		}
		ai, aok := valueToBigInt(a)
		bi, bok := valueToBigInt(b)
		if aok && bok {
			return ai.Cmp(bi), nil
		}
		af, _ := valueToFloat(a)
		bf, _ := valueToFloat(b)
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if as, ok := a.(types.String); ok {
		bs, ok := b.(types.String)
		if !ok {
			return 0, dierr.NewTypeError(pos.Line, pos.Column, "cannot compare String with a different type")
		}
		return strings.Compare(as.Raw(), bs.Raw()), nil
	}
	if al, ok := a.(types.List); ok {
		bl, ok := b.(types.List)
		if !ok {
			return 0, dierr.NewTypeError(pos.Line, pos.Column, "cannot compare List with a different type")
		}
		for i := 0; i < al.Len() && i < bl.Len(); i++ {
			c, err := orderCompare(al.Get(i), bl.Get(i), pos)
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		return al.Len() - bl.Len(), nil
	}
	return 0, dierr.NewTypeError(pos.Line, pos.Column, "values are not ordered")
}

// --- left-folded polyadic arithmetic: + - * / // % @ << >> ---------------

func evalLeftPoly(n *parser.LeftPoly, env *types.Environment) (types.Value, error) {
	acc, err := Eval(n.Operands[0], env)
	if err != nil {
		return nil, err
	}
	for i, op := range n.Ops {
		rhs, err := Eval(n.Operands[i+1], env)
		if err != nil {
			return nil, err
		}
		acc, err = binaryArith(op, acc, rhs, n.Pos)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func binaryArith(op string, a, b types.Value, pos parser.Position) (types.Value, error) {
	// '@' is always matrix multiply, never elementwise, even between
	// two Lists — it must be checked before the List routing below.
	if op == "@" {
		return matMul(a, b, pos)
	}

	if al, ok := a.(types.List); ok {
		return listArith(op, al, b, pos)
	}
	if as, ok := a.(types.String); ok {
		return stringArith(op, as, b, pos)
	}

	if op == "<<" || op == ">>" {
		return shiftOp(op, a, b, pos)
	}

	if !types.IsNumeric(a) || !types.IsNumeric(b) {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'"+op+"' requires compatible operand types")
	}
	if isComplexValue(a) || isComplexValue(b) {
		ac, _ := valueToComplex(a)
		bc, _ := valueToComplex(b)
		return complexArith(op, ac, bc, pos)
	}
	ai, aok := valueToBigInt(a)
	bi, bok := valueToBigInt(b)
	if aok && bok && (op == "+" || op == "-" || op == "*" || op == "//" || op == "%") {
		return bigIntArith(op, ai, bi, pos)
	}
	af, _ := valueToFloat(a)
	bf, _ := valueToFloat(b)
	return floatArith(op, af, bf, pos)
}

func bigIntArith(op string, a, b *big.Int, pos parser.Position) (types.Value, error) {
	switch op {
	case "+":
		return types.NewBigInt(new(big.Int).Add(a, b)), nil
	case "-":
		return types.NewBigInt(new(big.Int).Sub(a, b)), nil
	case "*":
		return types.NewBigInt(new(big.Int).Mul(a, b)), nil
	case "/":
		if b.Sign() == 0 {
			return nil, dierr.NewZeroDivisionError(pos.Line, pos.Column, "division by zero")
		}
		af := new(big.Float).SetInt(a)
		bf := new(big.Float).SetInt(b)
		out, _ := new(big.Float).Quo(af, bf).Float64()
		return types.NewFloat(out), nil
	case "//":
		if b.Sign() == 0 {
			return nil, dierr.NewZeroDivisionError(pos.Line, pos.Column, "division by zero")
		}
		q := new(big.Int)
		m := new(big.Int)
		q.DivMod(a, b, m)
		return types.NewBigInt(q), nil
	case "%":
		if b.Sign() == 0 {
			return nil, dierr.NewZeroDivisionError(pos.Line, pos.Column, "modulo by zero")
		}
		q := new(big.Int)
		m := new(big.Int)
		q.DivMod(a, b, m)
		return types.NewBigInt(m), nil
	default:
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "unsupported integer operator "+op)
	}
}

func floatArith(op string, a, b float64, pos parser.Position) (types.Value, error) {
	switch op {
	case "+":
		return types.NewFloat(a + b), nil
	case "-":
		return types.NewFloat(a - b), nil
	case "*":
		return types.NewFloat(a * b), nil
	case "/":
		if b == 0 {
			return nil, dierr.NewZeroDivisionError(pos.Line, pos.Column, "division by zero")
		}
		return types.NewFloat(a / b), nil
	case "//":
		if b == 0 {
			return nil, dierr.NewZeroDivisionError(pos.Line, pos.Column, "division by zero")
		}
		return types.NewFloat(math.Floor(a / b)), nil
	case "%":
		if b == 0 {
			return nil, dierr.NewZeroDivisionError(pos.Line, pos.Column, "modulo by zero")
		}
		return types.NewFloat(math.Mod(a, b)), nil
	default:
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "unsupported float operator "+op)
	}
}

func complexArith(op string, a, b complex128, pos parser.Position) (types.Value, error) {
	switch op {
	case "+":
		return types.Complex(a + b), nil
	case "-":
		return types.Complex(a - b), nil
	case "*":
		return types.Complex(a * b), nil
	case "/":
		if b == 0 {
			return nil, dierr.NewZeroDivisionError(pos.Line, pos.Column, "division by zero")
		}
		return types.Complex(a / b), nil
	default:
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "complex values only support + - * / ** and equality")
	}
}

func cmplx(base, exp complex128) complex128 {
	// base^exp for complex values, via polar form: r^exp * e^(i*theta*exp).
	if base == 0 {
		return 0
	}
	r := math.Hypot(real(base), imag(base))
	theta := math.Atan2(imag(base), real(base))
	logr := math.Log(r)
	// (logr + i*theta) * exp
	lr := complex(logr, theta) * exp
	mag := math.Exp(real(lr))
	return complex(mag*math.Cos(imag(lr)), mag*math.Sin(imag(lr)))
}

func shiftOp(op string, a, b types.Value, pos parser.Position) (types.Value, error) {
	ai, aok := valueToBigInt(a)
	bi, bok := valueToBigInt(b)
	if !aok || !bok {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'"+op+"' requires integer operands")
	}
	n := uint(bi.Int64())
	result := new(big.Int)
	if op == "<<" {
		result.Lsh(ai, n)
	} else {
		result.Rsh(ai, n)
	}
	return types.NewBigInt(result), nil
}

func listArith(op string, a types.List, b types.Value, pos parser.Position) (types.Value, error) {
	if bl, ok := b.(types.List); ok {
		if a.Len() != bl.Len() {
			return nil, dierr.NewValueError(pos.Line, pos.Column, "lists have mismatched lengths")
		}
		out := make([]types.Value, a.Len())
		for i := 0; i < a.Len(); i++ {
			v, err := binaryArith(op, a.Get(i), bl.Get(i), pos)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return types.NewList(out), nil
	}
	if op == "*" {
		if _, ok := valueToBigInt(b); ok {
			out := make([]types.Value, a.Len())
			for i := 0; i < a.Len(); i++ {
				v, err := binaryArith(op, a.Get(i), b, pos)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return types.NewList(out), nil
		}
	}
	return nil, dierr.NewTypeError(pos.Line, pos.Column, "'"+op+"' is not defined between List and that operand")
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func stringArith(op string, a types.String, b types.Value, pos parser.Position) (types.Value, error) {
	switch op {
	case "+":
		bs, ok := b.(types.String)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "'+' requires two Strings")
		}
		return types.NewString(a.Raw() + bs.Raw()), nil
	case "*":
		n, ok := valueToBigInt(b)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "'*' requires a String and an Int")
		}
		return types.NewString(strings.Repeat(a.Raw(), max0(int(n.Int64())))), nil
	default:
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'"+op+"' is not defined for String")
	}
}

// matMul implements '@': both operands must be rectangular List-of-List
// with equal inner dimension.
func matMul(a, b types.Value, pos parser.Position) (types.Value, error) {
	al, ok := a.(types.List)
	if !ok {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'@' requires two matrices (List of List)")
	}
	bl, ok := b.(types.List)
	if !ok {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'@' requires two matrices (List of List)")
	}
	rows := al.Len()
	if rows == 0 {
		return nil, dierr.NewValueError(pos.Line, pos.Column, "'@' operand has no rows")
	}
	arow0, ok := al.Get(0).(types.List)
	if !ok {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'@' requires List of List")
	}
	inner := arow0.Len()
	brows := bl.Len()
	if brows != inner {
		return nil, dierr.NewValueError(pos.Line, pos.Column, "'@' operand inner dimensions do not match")
	}
	brow0, ok := bl.Get(0).(types.List)
	if !ok {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "'@' requires List of List")
	}
	cols := brow0.Len()

	out := make([]types.Value, rows)
	for i := 0; i < rows; i++ {
		arowVal, ok := al.Get(i).(types.List)
		if !ok || arowVal.Len() != inner {
			return nil, dierr.NewValueError(pos.Line, pos.Column, "'@' left operand is not rectangular")
		}
		outRow := make([]types.Value, cols)
		for j := 0; j < cols; j++ {
			var sum types.Value = types.NewInt(0)
			for k := 0; k < inner; k++ {
				browVal, ok := bl.Get(k).(types.List)
				if !ok || browVal.Len() != cols {
					return nil, dierr.NewValueError(pos.Line, pos.Column, "'@' right operand is not rectangular")
				}
				prod, err := binaryArith("*", arowVal.Get(k), browVal.Get(j), pos)
				if err != nil {
					return nil, err
				}
				sum, err = binaryArith("+", sum, prod, pos)
				if err != nil {
					return nil, err
				}
			}
			outRow[j] = sum
		}
		out[i] = types.NewList(outRow)
	}
	return types.NewList(out), nil
}

// --- indexing and member access -----------------------------------------

func normalizeIndex(i, length int) (int, bool) {
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

func indexGet(container, idx types.Value, pos parser.Position) (types.Value, error) {
	switch c := container.(type) {
	case types.List:
		n, ok := valueToBigInt(idx)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "list index must be an integer")
		}
		i, ok := normalizeIndex(int(n.Int64()), c.Len())
		if !ok {
			return nil, dierr.NewIndexError(pos.Line, pos.Column,
				"list index out of range, valid range is ["+itoa(-c.Len())+", "+itoa(c.Len()-1)+"]")
		}
		return c.Get(i), nil
	case types.String:
		n, ok := valueToBigInt(idx)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "string index must be an integer")
		}
		runes := c.Runes()
		i, ok := normalizeIndex(int(n.Int64()), len(runes))
		if !ok {
			return nil, dierr.NewIndexError(pos.Line, pos.Column,
				"string index out of range, valid range is ["+itoa(-len(runes))+", "+itoa(len(runes)-1)+"]")
		}
		return types.NewString(string(runes[i])), nil
	case types.Dict:
		s, ok := idx.(types.String)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "dict key must be a String")
		}
		v, ok := c.Get(s.Raw())
		if !ok {
			return nil, dierr.NewIndexError(pos.Line, pos.Column, "key '"+s.Raw()+"' is not present")
		}
		return v, nil
	default:
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "value is not indexable")
	}
}

func indexSet(container, idx, rhs types.Value, pos parser.Position) (types.Value, error) {
	switch c := container.(type) {
	case types.List:
		n, ok := valueToBigInt(idx)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "list index must be an integer")
		}
		i, ok := normalizeIndex(int(n.Int64()), c.Len())
		if !ok {
			return nil, dierr.NewIndexError(pos.Line, pos.Column, "list index out of range")
		}
		old := c.Get(i)
		c.Set(i, rhs)
		return old, nil
	case types.Dict:
		s, ok := idx.(types.String)
		if !ok {
			return nil, dierr.NewTypeError(pos.Line, pos.Column, "dict key must be a String")
		}
		old, existed := c.Get(s.Raw())
		if !existed {
			old = types.NullValue
		}
		c.Set(s.Raw(), rhs)
		return old, nil
	default:
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "value does not support index assignment")
	}
}

func attrGet(container types.Value, name string, pos parser.Position) (types.Value, error) {
	d, ok := container.(types.Dict)
	if !ok {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "value has no attribute '"+name+"'")
	}
	v, ok := d.Get(name)
	if !ok {
		return nil, dierr.NewIndexError(pos.Line, pos.Column, "attribute '"+name+"' is not present")
	}
	return v, nil
}

func attrSet(container types.Value, name string, rhs types.Value, pos parser.Position) (types.Value, error) {
	d, ok := container.(types.Dict)
	if !ok {
		return nil, dierr.NewTypeError(pos.Line, pos.Column, "cannot assign attribute '"+name+"' on a non-Dict value")
	}
	old, existed := d.Get(name)
	if !existed {
		old = types.NullValue
	}
	d.Set(name, rhs)
	return old, nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
