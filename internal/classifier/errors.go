package classifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/mathiz-eval/internal/value"
)

var (
	// ErrMalformedRequest matches every error caused by inputs that do not
	// fit the rule's declared parameters.
	ErrMalformedRequest = errors.New("malformed classification request")

	// ErrNotRegistered matches lookups of interactions or rules that were
	// never registered.
	ErrNotRegistered = errors.New("not registered")
)

// MissingInputError means a rule's required input was absent.
type MissingInputError struct {
	Rule    string
	Input   string
	Present []string // sorted names that were supplied
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("rule %q: missing input %q (present: [%s])",
		e.Rule, e.Input, strings.Join(e.Present, ", "))
}

func (e *MissingInputError) Is(target error) bool { return target == ErrMalformedRequest }

// TypeMismatchError means the answer or an input held the wrong variant.
type TypeMismatchError struct {
	Rule      string
	Parameter string // "answer" or the input name
	Expected  value.Kind
	Actual    value.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("rule %q: %s has kind %s, expected %s",
		e.Rule, e.Parameter, e.Actual, e.Expected)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrMalformedRequest }

// UnknownInteractionError means no rules are registered for an interaction.
type UnknownInteractionError struct {
	Interaction string
}

func (e *UnknownInteractionError) Error() string {
	return fmt.Sprintf("unknown interaction %q", e.Interaction)
}

func (e *UnknownInteractionError) Is(target error) bool { return target == ErrNotRegistered }

// UnknownRuleError means the interaction has no rule with that name. This
// points at broken lesson content rather than bad learner input.
type UnknownRuleError struct {
	Interaction string
	Rule        string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("interaction %q has no rule %q", e.Interaction, e.Rule)
}

func (e *UnknownRuleError) Is(target error) bool { return target == ErrNotRegistered }
