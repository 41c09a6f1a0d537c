package classifier

import (
	"fmt"
	"sort"

	"github.com/abhisek/mathiz-eval/internal/value"
)

// Registry maps interaction IDs to their named rules. Build it once at
// startup with Register; after that it is read-only and safe to share.
type Registry struct {
	interactions map[string]map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{interactions: make(map[string]map[string]Rule)}
}

// Register adds rules under interaction. Registering a rule name twice for
// the same interaction is an error.
func (r *Registry) Register(interaction string, rules ...Rule) error {
	byName, ok := r.interactions[interaction]
	if !ok {
		byName = make(map[string]Rule, len(rules))
		r.interactions[interaction] = byName
	}
	for _, rule := range rules {
		if _, dup := byName[rule.Name()]; dup {
			return fmt.Errorf("interaction %q: duplicate rule %q", interaction, rule.Name())
		}
		byName[rule.Name()] = rule
	}
	return nil
}

// Lookup returns the rule registered as interaction/name.
func (r *Registry) Lookup(interaction, name string) (Rule, error) {
	byName, ok := r.interactions[interaction]
	if !ok {
		return nil, &UnknownInteractionError{Interaction: interaction}
	}
	rule, ok := byName[name]
	if !ok {
		return nil, &UnknownRuleError{Interaction: interaction, Rule: name}
	}
	return rule, nil
}

// Classify resolves the rule and evaluates it against answer and inputs.
func (r *Registry) Classify(interaction, rule string, answer value.Value, inputs value.Inputs) (bool, error) {
	rl, err := r.Lookup(interaction, rule)
	if err != nil {
		return false, err
	}
	return rl.Matches(answer, inputs)
}

// Interactions returns the registered interaction IDs, sorted.
func (r *Registry) Interactions() []string {
	ids := make([]string, 0, len(r.interactions))
	for id := range r.interactions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Rules returns the rule names registered for interaction, sorted.
func (r *Registry) Rules(interaction string) ([]string, error) {
	byName, ok := r.interactions[interaction]
	if !ok {
		return nil, &UnknownInteractionError{Interaction: interaction}
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
