// Package mathexpr defines the parsed arithmetic expression tree consumed by
// the accessibility renderer and carried inside math-expression answers.
//
// Trees are produced upstream by the expression parser. A nil Expression
// anywhere in a tree, or a node whose operator is the zero value, marks an
// unset variant; consumers must fail closed on such trees.
package mathexpr

// Expression is a node in a parsed expression tree. The set of node types
// is closed: Constant, Variable, BinaryOp, UnaryOp, FunctionCall and Group.
type Expression interface {
	isExpression()
}

// Constant is a real-valued literal such as 2 or 0.75.
type Constant struct {
	Value float64
}

// Variable is a named unknown such as x.
type Variable struct {
	Name string
}

// BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	Operator BinaryOperator
	Left     Expression
	Right    Expression

	// Implicit is set by the parser when a multiplication was written by
	// adjacency ("2x") rather than with an explicit operator.
	Implicit bool
}

// UnaryOp applies a prefix sign to a single operand.
type UnaryOp struct {
	Operator UnaryOperator
	Operand  Expression
}

// FunctionCall applies a named function to one argument.
type FunctionCall struct {
	Function Function
	Argument Expression
}

// Group is a parenthesized sub-expression.
type Group struct {
	Inner Expression
}

func (Constant) isExpression()     {}
func (Variable) isExpression()     {}
func (BinaryOp) isExpression()     {}
func (UnaryOp) isExpression()      {}
func (FunctionCall) isExpression() {}
func (Group) isExpression()        {}

// Equation relates two expressions with "=".
type Equation struct {
	Left  Expression
	Right Expression
}

// IsSingleTerm reports whether e reads as one indivisible term: a constant,
// a variable, a function call, or a group wrapping a single term.
func IsSingleTerm(e Expression) bool {
	switch n := e.(type) {
	case Constant, Variable, FunctionCall:
		return true
	case Group:
		return IsSingleTerm(n.Inner)
	default:
		return false
	}
}
