// Package interaction holds the concrete answer rules for each interaction
// type and the registry that exposes them by name.
package interaction

import (
	"fmt"
	"sync"

	"github.com/abhisek/mathiz-eval/internal/classifier"
)

// Interaction IDs as they appear in lesson content.
const (
	TextInput            = "TextInput"
	NumericInput         = "NumericInput"
	ItemSelectionInput   = "ItemSelectionInput"
	RatioExpressionInput = "RatioExpressionInput"
	MultipleChoiceInput  = "MultipleChoiceInput"
)

// Registry returns the process-wide registry of every built-in rule. It is
// built on first use and never modified afterwards.
var Registry = sync.OnceValue(func() *classifier.Registry {
	reg := classifier.NewRegistry()
	must(reg.Register(TextInput, TextInputRules()...))
	must(reg.Register(NumericInput, NumericInputRules()...))
	must(reg.Register(ItemSelectionInput, ItemSelectionInputRules()...))
	must(reg.Register(RatioExpressionInput, RatioExpressionInputRules()...))
	must(reg.Register(MultipleChoiceInput, MultipleChoiceInputRules()...))
	return reg
})

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("interaction: %v", err))
	}
}
