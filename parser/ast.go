package parser

import "math/big"

// Node is the base interface for all AST nodes. Every node carries its
// source position; nodes never carry types.Value directly (that would
// pull the value domain into the syntax tree) — literal nodes instead
// carry the raw decoded literal and are converted during evaluation.
type Node interface {
	Position() Position
}

// IntLit is an integer literal, already parsed to arbitrary precision.
type IntLit struct {
	Pos Position
	Val *big.Int
}

func (n *IntLit) Position() Position { return n.Pos }

// FloatLit is a floating point literal.
type FloatLit struct {
	Pos Position
	Val float64
}

func (n *FloatLit) Position() Position { return n.Pos }

// BoolLit is a true/false literal.
type BoolLit struct {
	Pos Position
	Val bool
}

func (n *BoolLit) Position() Position { return n.Pos }

// NullLit is the null literal.
type NullLit struct {
	Pos Position
}

func (n *NullLit) Position() Position { return n.Pos }

// StringLit is a string literal with escapes already decoded.
type StringLit struct {
	Pos Position
	Val string
}

func (n *StringLit) Position() Position { return n.Pos }

// Identifier is a variable reference.
type Identifier struct {
	Pos  Position
	Name string
}

func (n *Identifier) Position() Position { return n.Pos }

// ListLit is a list literal. Elements may include *EllipsisExpr nodes,
// which are flattened (their inner list spliced in place) at evaluation.
type ListLit struct {
	Pos      Position
	Elements []Node
}

func (n *ListLit) Position() Position { return n.Pos }

// EllipsisExpr is the '...' splat marker: legal only as a ListLit element
// or inside a list-pattern assignment target.
type EllipsisExpr struct {
	Pos   Position
	Inner Node
}

func (n *EllipsisExpr) Position() Position { return n.Pos }

// Scope is a block. On exit, names introduced during it are removed from
// the environment unless scope-flush is disabled for this evaluation
// (see the evaluator's Flush parameter).
type Scope struct {
	Pos          Position
	Instructions []Node
}

func (n *Scope) Position() Position { return n.Pos }

// IfElse evaluates conditions in order, entering the first truthy branch,
// or Else if none matched and it is present.
type IfElse struct {
	Pos        Position
	Conditions []Node
	Branches   []*Scope
	Else       *Scope
}

func (n *IfElse) Position() Position { return n.Pos }

// While repeatedly evaluates Body while Condition is truthy.
type While struct {
	Pos       Position
	Condition Node
	Body      *Scope
}

func (n *While) Position() Position { return n.Pos }

// Assignment is a right-associative chain of targets ending in a value
// expression: t1 := t2 := ... := Value. ReturnOld[i] records whether
// target i's operator was the reserved '=:' swap form.
type Assignment struct {
	Pos       Position
	Targets   []Node
	ReturnOld []bool
	Value     Node
}

func (n *Assignment) Position() Position { return n.Pos }

// NaryOp covers the left/right associative n-ary operators that do not
// need richer structure than a flat operand list: 'or', 'and', '**'
// (right fold), '^', '&', '|' (left fold).
type NaryOp struct {
	Pos      Position
	Op       string
	Operands []Node
}

func (n *NaryOp) Position() Position { return n.Pos }

// Comparison is a chained comparison a OP b OP c ...; truthy iff every
// adjacent pair holds, short-circuiting on the first failure.
type Comparison struct {
	Pos      Position
	Ops      []string
	Operands []Node
}

func (n *Comparison) Position() Position { return n.Pos }

// LeftPoly is a left-folded chain of the polyadic arithmetic operators
// '+ - * / // % @ << >>'.
type LeftPoly struct {
	Pos      Position
	Ops      []string
	Operands []Node
}

func (n *LeftPoly) Position() Position { return n.Pos }

// UnaryOp covers '+ - ~ not #' (# is length).
type UnaryOp struct {
	Pos     Position
	Op      string
	Operand Node
}

func (n *UnaryOp) Position() Position { return n.Pos }

// CallExpr is a chained function call: callee(args)(more args)...
type CallExpr struct {
	Pos       Position
	Callee    Node
	ArgGroups [][]Node
}

func (n *CallExpr) Position() Position { return n.Pos }

// IndexExpr is a chained subscript: primary[i][j]...
type IndexExpr struct {
	Pos         Position
	Primary     Node
	IndexGroups [][]Node
}

func (n *IndexExpr) Position() Position { return n.Pos }

// AttrExpr is a chained member access: primary.a.b...
type AttrExpr struct {
	Pos     Position
	Primary Node
	Names   []string
}

func (n *AttrExpr) Position() Position { return n.Pos }

// FunctionDecl declares a first-class function value.
type FunctionDecl struct {
	Pos    Position
	Params []string
	Body   *Scope
}

func (n *FunctionDecl) Position() Position { return n.Pos }

// ClassDecl declares a record factory. Structurally identical to
// FunctionDecl; the evaluator gives it different call semantics
// (scope-flush disabled, result wrapped as a Dict instance).
type ClassDecl struct {
	Pos    Position
	Params []string
	Body   *Scope
}

func (n *ClassDecl) Position() Position { return n.Pos }
