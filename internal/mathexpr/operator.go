package mathexpr

// BinaryOperator identifies the infix operator of a BinaryOp.
// The zero value is unset.
type BinaryOperator int

const (
	BinaryOperatorUnset BinaryOperator = iota
	Add
	Subtract
	Multiply
	Divide
	Exponentiate
)

var binaryOperatorNames = map[BinaryOperator]string{
	Add:          "add",
	Subtract:     "subtract",
	Multiply:     "multiply",
	Divide:       "divide",
	Exponentiate: "exponentiate",
}

func (o BinaryOperator) String() string {
	if name, ok := binaryOperatorNames[o]; ok {
		return name
	}
	return "unset"
}

// ParseBinaryOperator maps a wire name to its operator. Unknown names map to
// BinaryOperatorUnset.
func ParseBinaryOperator(name string) BinaryOperator {
	for op, n := range binaryOperatorNames {
		if n == name {
			return op
		}
	}
	return BinaryOperatorUnset
}

// UnaryOperator identifies the prefix operator of a UnaryOp.
// The zero value is unset.
type UnaryOperator int

const (
	UnaryOperatorUnset UnaryOperator = iota
	Negate
	Positive
)

var unaryOperatorNames = map[UnaryOperator]string{
	Negate:   "negate",
	Positive: "positive",
}

func (o UnaryOperator) String() string {
	if name, ok := unaryOperatorNames[o]; ok {
		return name
	}
	return "unset"
}

// ParseUnaryOperator maps a wire name to its operator. Unknown names map to
// UnaryOperatorUnset.
func ParseUnaryOperator(name string) UnaryOperator {
	for op, n := range unaryOperatorNames {
		if n == name {
			return op
		}
	}
	return UnaryOperatorUnset
}

// Function identifies the function applied by a FunctionCall.
// The zero value is unset.
type Function int

const (
	FunctionUnset Function = iota
	SquareRoot
)

func (f Function) String() string {
	if f == SquareRoot {
		return "sqrt"
	}
	return "unset"
}

// ParseFunction maps a wire name to its function. Unknown names map to
// FunctionUnset.
func ParseFunction(name string) Function {
	if name == "sqrt" {
		return SquareRoot
	}
	return FunctionUnset
}
