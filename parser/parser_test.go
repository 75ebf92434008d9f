package parser

import "testing"

func mustParse(t *testing.T, src string) *Scope {
	t.Helper()
	scope, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("ParseProgram(%q) error = %v", src, err)
	}
	return scope
}

func TestParseArithmeticPrecedence(t *testing.T) {
	scope := mustParse(t, "2 + 2 * 2")
	if len(scope.Instructions) != 1 {
		t.Fatalf("want 1 instruction, got %d", len(scope.Instructions))
	}
	poly, ok := scope.Instructions[0].(*LeftPoly)
	if !ok {
		t.Fatalf("top node = %T, want *LeftPoly", scope.Instructions[0])
	}
	if len(poly.Ops) != 1 || poly.Ops[0] != "+" {
		t.Fatalf("ops = %v, want [+]", poly.Ops)
	}
	if _, ok := poly.Operands[1].(*LeftPoly); !ok {
		t.Fatalf("right operand = %T, want nested *LeftPoly for 2*2", poly.Operands[1])
	}
}

func TestParseAssignmentChainRightAssoc(t *testing.T) {
	scope := mustParse(t, "a := b := v")
	assign, ok := scope.Instructions[0].(*Assignment)
	if !ok {
		t.Fatalf("top node = %T, want *Assignment", scope.Instructions[0])
	}
	if len(assign.Targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(assign.Targets))
	}
	if _, ok := assign.Value.(*Identifier); !ok {
		t.Fatalf("value = %T, want *Identifier", assign.Value)
	}
}

func TestParseAssignOldFlag(t *testing.T) {
	scope := mustParse(t, "x := v; y := (x =: u)")
	if len(scope.Instructions) != 2 {
		t.Fatalf("want 2 instructions, got %d", len(scope.Instructions))
	}
	outer, ok := scope.Instructions[1].(*Assignment)
	if !ok {
		t.Fatalf("second instruction = %T, want *Assignment", scope.Instructions[1])
	}
	inner, ok := outer.Value.(*Assignment)
	if !ok {
		t.Fatalf("y's value = %T, want nested *Assignment for (x =: u)", outer.Value)
	}
	if len(inner.ReturnOld) != 1 || !inner.ReturnOld[0] {
		t.Fatalf("inner.ReturnOld = %v, want [true]", inner.ReturnOld)
	}
}

func TestParseBitAndEmitsCorrectSymbol(t *testing.T) {
	scope := mustParse(t, "a & b")
	nary, ok := scope.Instructions[0].(*NaryOp)
	if !ok {
		t.Fatalf("top node = %T, want *NaryOp", scope.Instructions[0])
	}
	if nary.Op != "&" {
		t.Fatalf("Op = %q, want %q", nary.Op, "&")
	}
}

func TestParseChainedComparison(t *testing.T) {
	scope := mustParse(t, "a < b <= c")
	cmp, ok := scope.Instructions[0].(*Comparison)
	if !ok {
		t.Fatalf("top node = %T, want *Comparison", scope.Instructions[0])
	}
	wantOps := []string{"<", "<="}
	if len(cmp.Ops) != len(wantOps) {
		t.Fatalf("ops = %v, want %v", cmp.Ops, wantOps)
	}
	for i, op := range wantOps {
		if cmp.Ops[i] != op {
			t.Errorf("ops[%d] = %q, want %q", i, cmp.Ops[i], op)
		}
	}
}

func TestParseListPatternWithSplat(t *testing.T) {
	scope := mustParse(t, "[a, ...b, c] := rhs")
	assign := scope.Instructions[0].(*Assignment)
	pattern, ok := assign.Targets[0].(*ListLit)
	if !ok {
		t.Fatalf("target = %T, want *ListLit", assign.Targets[0])
	}
	if len(pattern.Elements) != 3 {
		t.Fatalf("elements = %d, want 3", len(pattern.Elements))
	}
	if _, ok := pattern.Elements[1].(*EllipsisExpr); !ok {
		t.Fatalf("elements[1] = %T, want *EllipsisExpr", pattern.Elements[1])
	}
}

func TestParseChainedCallsAndIndexing(t *testing.T) {
	scope := mustParse(t, "f(a)(b)[i]")
	idx, ok := scope.Instructions[0].(*IndexExpr)
	if !ok {
		t.Fatalf("top node = %T, want *IndexExpr", scope.Instructions[0])
	}
	if len(idx.IndexGroups) != 1 {
		t.Fatalf("index groups = %d, want 1", len(idx.IndexGroups))
	}
	call, ok := idx.Primary.(*CallExpr)
	if !ok {
		t.Fatalf("primary = %T, want *CallExpr", idx.Primary)
	}
	if len(call.ArgGroups) != 2 {
		t.Fatalf("call groups = %d, want 2", len(call.ArgGroups))
	}
}

func TestParseFunctionAndClassDecl(t *testing.T) {
	scope := mustParse(t, "fib := function(n) n")
	assign := scope.Instructions[0].(*Assignment)
	fn, ok := assign.Value.(*FunctionDecl)
	if !ok {
		t.Fatalf("value = %T, want *FunctionDecl", assign.Value)
	}
	if len(fn.Params) != 1 || fn.Params[0] != "n" {
		t.Fatalf("params = %v, want [n]", fn.Params)
	}

	scope = mustParse(t, "Person := class (name, age) { year := 2024 }")
	assign = scope.Instructions[0].(*Assignment)
	if _, ok := assign.Value.(*ClassDecl); !ok {
		t.Fatalf("value = %T, want *ClassDecl", assign.Value)
	}
}

func TestParseIfElifElse(t *testing.T) {
	scope := mustParse(t, "if (a) 1 elif (b) 2 else 3")
	ifelse, ok := scope.Instructions[0].(*IfElse)
	if !ok {
		t.Fatalf("top node = %T, want *IfElse", scope.Instructions[0])
	}
	if len(ifelse.Conditions) != 2 || len(ifelse.Branches) != 2 {
		t.Fatalf("conditions/branches = %d/%d, want 2/2", len(ifelse.Conditions), len(ifelse.Branches))
	}
	if ifelse.Else == nil {
		t.Fatal("else branch = nil, want non-nil")
	}
}

func TestParseErrorOnUnexpectedToken(t *testing.T) {
	_, err := ParseProgram(")")
	if err == nil {
		t.Fatal("expected a syntax error, got nil")
	}
}

func TestParseErrorOnUnterminatedScope(t *testing.T) {
	_, err := ParseProgram("{ 1 + 1")
	if err == nil {
		t.Fatal("expected a syntax error for an unterminated scope, got nil")
	}
}
