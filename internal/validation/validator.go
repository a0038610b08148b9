// Package validation is a declarative field-rule checker: each field
// lists named rules, every failing rule contributes one templated
// message, and the caller gets the full per-field error map back.
package validation

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Rule is one named check with optional parameters, e.g.
// {Name: "minLength", Params: []any{6}}.
type Rule struct {
	Name    string
	Params  []any
	Message string // overrides the default template when set
}

// Predicate reports whether value passes. form carries the whole form
// for cross-field rules such as "match".
type Predicate func(value any, params []any, form map[string]any) bool

type Result struct {
	IsValid bool
	Errors  map[string][]string
}

// Validator holds the rule registry and default message templates.
type Validator struct {
	rules    map[string]Predicate
	messages map[string]string
}

func New() *Validator {
	v := &Validator{
		rules:    map[string]Predicate{},
		messages: map[string]string{},
	}
	v.registerBuiltins()
	return v
}

// Register adds or replaces a rule and its default message template.
func (v *Validator) Register(name string, p Predicate, message string) {
	v.rules[name] = p
	v.messages[name] = message
}

// Validate runs every listed rule per field.
func (v *Validator) Validate(form map[string]any, rulesByField map[string][]Rule) Result {
	res := Result{IsValid: true, Errors: map[string][]string{}}

	for field, rules := range rulesByField {
		value := form[field]

		for _, rule := range rules {
			pred, ok := v.rules[rule.Name]
			if !ok {
				log.Warn().Str("rule", rule.Name).Str("field", field).
					Msg("validation: unknown rule ignored")
				continue
			}

			if pred(value, rule.Params, form) {
				continue
			}

			res.IsValid = false
			res.Errors[field] = append(res.Errors[field], v.message(rule, field))
		}
	}

	return res
}

// ValidateField is the single-field variant.
func (v *Validator) ValidateField(value any, rules []Rule) []string {
	res := v.Validate(
		map[string]any{"value": value},
		map[string][]Rule{"value": rules},
	)
	return res.Errors["value"]
}

func (v *Validator) message(rule Rule, field string) string {
	tpl := rule.Message
	if tpl == "" {
		tpl = v.messages[rule.Name]
	}
	if tpl == "" {
		tpl = "{field} is invalid"
	}
	return substitute(tpl, rule.Params, field)
}

// substitute fills positional ({0}, {1}, …) and named placeholders so
// templates can read naturally ("must be at least {min} characters").
// With a single parameter every named alias points at it; with two,
// {min} and {max} take them in order.
func substitute(tpl string, params []any, field string) string {
	out := strings.ReplaceAll(tpl, "{field}", field)

	for i, p := range params {
		out = strings.ReplaceAll(out, fmt.Sprintf("{%d}", i), fmt.Sprintf("%v", p))
	}

	switch {
	case len(params) >= 2:
		out = strings.ReplaceAll(out, "{min}", fmt.Sprintf("%v", params[0]))
		out = strings.ReplaceAll(out, "{max}", fmt.Sprintf("%v", params[1]))
	case len(params) == 1:
		first := fmt.Sprintf("%v", params[0])
		for _, alias := range []string{"{min}", "{max}", "{other}", "{pattern}"} {
			out = strings.ReplaceAll(out, alias, first)
		}
	}

	return out
}
