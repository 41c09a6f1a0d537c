// Package classifier binds named rules to typed predicates. Rule
// constructors validate that the required inputs are present and that the
// answer and inputs hold the expected value kinds, so each rule only
// supplies its comparison.
package classifier

import "github.com/abhisek/mathiz-eval/internal/value"

// Answer is the parameter name reported when the answer itself has the
// wrong kind.
const Answer = "answer"

// Rule is a named predicate over a learner answer and author inputs.
// Implementations are immutable and safe for concurrent use.
type Rule interface {
	Name() string

	// Matches reports whether answer satisfies the rule. A non-nil error
	// means the request was malformed; the verdict is then meaningless.
	Matches(answer value.Value, inputs value.Inputs) (bool, error)
}

// SingleInput builds a rule whose answer and single input share one kind.
func SingleInput[T any](name, input string, kind value.Payload[T], match func(answer, input T) bool) Rule {
	return MultiTypeSingleInput(name, input, kind, kind, match)
}

// MultiTypeSingleInput builds a rule whose answer and input have different
// kinds.
func MultiTypeSingleInput[A, I any](
	name, input string,
	answerKind value.Payload[A],
	inputKind value.Payload[I],
	match func(answer A, input I) bool,
) Rule {
	return &singleInputRule[A, I]{
		name:       name,
		input:      input,
		answerKind: answerKind,
		inputKind:  inputKind,
		match:      match,
	}
}

// DoubleInput builds a rule whose answer and both inputs share one kind.
func DoubleInput[T any](name, first, second string, kind value.Payload[T], match func(answer, first, second T) bool) Rule {
	return MultiTypeDoubleInput(name, first, second, kind, kind, match)
}

// MultiTypeDoubleInput builds a two-input rule whose inputs share a kind
// that differs from the answer's.
func MultiTypeDoubleInput[A, I any](
	name, first, second string,
	answerKind value.Payload[A],
	inputKind value.Payload[I],
	match func(answer A, first, second I) bool,
) Rule {
	return &doubleInputRule[A, I]{
		name:       name,
		first:      first,
		second:     second,
		answerKind: answerKind,
		inputKind:  inputKind,
		match:      match,
	}
}

type singleInputRule[A, I any] struct {
	name       string
	input      string
	answerKind value.Payload[A]
	inputKind  value.Payload[I]
	match      func(A, I) bool
}

func (r *singleInputRule[A, I]) Name() string { return r.name }

func (r *singleInputRule[A, I]) Matches(answer value.Value, inputs value.Inputs) (bool, error) {
	raw, err := lookup(r.name, inputs, r.input)
	if err != nil {
		return false, err
	}
	a, err := unwrap(r.name, Answer, r.answerKind, answer)
	if err != nil {
		return false, err
	}
	in, err := unwrap(r.name, r.input, r.inputKind, raw)
	if err != nil {
		return false, err
	}
	return r.match(a, in), nil
}

type doubleInputRule[A, I any] struct {
	name       string
	first      string
	second     string
	answerKind value.Payload[A]
	inputKind  value.Payload[I]
	match      func(A, I, I) bool
}

func (r *doubleInputRule[A, I]) Name() string { return r.name }

func (r *doubleInputRule[A, I]) Matches(answer value.Value, inputs value.Inputs) (bool, error) {
	rawFirst, err := lookup(r.name, inputs, r.first)
	if err != nil {
		return false, err
	}
	rawSecond, err := lookup(r.name, inputs, r.second)
	if err != nil {
		return false, err
	}
	a, err := unwrap(r.name, Answer, r.answerKind, answer)
	if err != nil {
		return false, err
	}
	first, err := unwrap(r.name, r.first, r.inputKind, rawFirst)
	if err != nil {
		return false, err
	}
	second, err := unwrap(r.name, r.second, r.inputKind, rawSecond)
	if err != nil {
		return false, err
	}
	return r.match(a, first, second), nil
}

func lookup(rule string, inputs value.Inputs, name string) (value.Value, error) {
	v, ok := inputs[name]
	if !ok {
		return nil, &MissingInputError{Rule: rule, Input: name, Present: inputs.Names()}
	}
	return v, nil
}

func unwrap[T any](rule, param string, kind value.Payload[T], v value.Value) (T, error) {
	payload, ok := kind.Unwrap(v)
	if !ok {
		var zero T
		return zero, &TypeMismatchError{
			Rule:      rule,
			Parameter: param,
			Expected:  kind.Kind(),
			Actual:    value.KindOf(v),
		}
	}
	return payload, nil
}
