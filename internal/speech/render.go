package speech

import (
	"github.com/abhisek/mathiz-eval/internal/mathexpr"
	"github.com/abhisek/mathiz-eval/internal/numfmt"
)

type renderer struct {
	fractions bool
}

func (r renderer) expression(e mathexpr.Expression) (string, bool) {
	switch n := e.(type) {
	case mathexpr.Constant:
		return numfmt.Real(n.Value), true
	case mathexpr.Variable:
		return variable(n.Name), true
	case mathexpr.BinaryOp:
		return r.binary(n)
	case mathexpr.UnaryOp:
		return r.unary(n)
	case mathexpr.FunctionCall:
		return r.function(n)
	case mathexpr.Group:
		inner, ok := r.expression(n.Inner)
		if !ok {
			return "", false
		}
		if mathexpr.IsSingleTerm(n.Inner) {
			return inner, true
		}
		return "open parenthesis " + inner + " close parenthesis", true
	default:
		return "", false
	}
}

func variable(name string) string {
	switch name {
	case "z":
		return "zed"
	case "Z":
		return "Zed"
	default:
		return name
	}
}

func (r renderer) binary(n mathexpr.BinaryOp) (string, bool) {
	lhs, ok := r.expression(n.Left)
	if !ok {
		return "", false
	}
	rhs, ok := r.expression(n.Right)
	if !ok {
		return "", false
	}

	switch n.Operator {
	case mathexpr.Add:
		return lhs + " plus " + rhs, true
	case mathexpr.Subtract:
		return lhs + " minus " + rhs, true
	case mathexpr.Multiply:
		if isImplicitTerm(n) {
			return lhs + " " + rhs, true
		}
		return lhs + " times " + rhs, true
	case mathexpr.Divide:
		return r.division(n, lhs, rhs), true
	case mathexpr.Exponentiate:
		return lhs + " raised to the power of " + rhs, true
	default:
		return "", false
	}
}

// isImplicitTerm matches polynomial terms like 2x or 2x^4 that are read
// without "times".
func isImplicitTerm(n mathexpr.BinaryOp) bool {
	if !n.Implicit {
		return false
	}
	if _, ok := n.Left.(mathexpr.Constant); !ok {
		return false
	}
	switch right := n.Right.(type) {
	case mathexpr.Variable:
		return true
	case mathexpr.BinaryOp:
		return right.Operator == mathexpr.Exponentiate
	default:
		return false
	}
}

func (r renderer) division(n mathexpr.BinaryOp, lhs, rhs string) string {
	if !r.fractions {
		return lhs + " divided by " + rhs
	}
	num, numOK := wholeNumber(n.Left)
	den, denOK := wholeNumber(n.Right)
	if numOK && denOK {
		if name, ok := fractionName(num, den); ok {
			return name
		}
		return lhs + " over " + rhs
	}
	return "the fraction with numerator " + lhs + " and denominator " + rhs
}

func wholeNumber(e mathexpr.Expression) (int64, bool) {
	c, ok := e.(mathexpr.Constant)
	if !ok {
		return 0, false
	}
	n, ok := numfmt.AsInteger(c.Value)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

func (r renderer) unary(n mathexpr.UnaryOp) (string, bool) {
	operand, ok := r.expression(n.Operand)
	if !ok {
		return "", false
	}
	switch n.Operator {
	case mathexpr.Negate:
		return "negative " + operand, true
	case mathexpr.Positive:
		return "positive " + operand, true
	default:
		return "", false
	}
}

func (r renderer) function(n mathexpr.FunctionCall) (string, bool) {
	arg, ok := r.expression(n.Argument)
	if !ok {
		return "", false
	}
	switch n.Function {
	case mathexpr.SquareRoot:
		if mathexpr.IsSingleTerm(n.Argument) {
			return "square root of " + arg, true
		}
		return "start square root " + arg + " end square root", true
	default:
		return "", false
	}
}
