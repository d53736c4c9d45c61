package api

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Constraint kinds understood by the aggregator. The kind name is part of the
// client-visible violation format, so these values are wire-stable.
const (
	KindNotBlank = "NotBlank"
	KindLength   = "Length"
)

// FieldConstraint binds one constraint kind to one payload field value.
// Request types declare their constraint tables with the NotBlank and Length
// helpers; the aggregator evaluates every entry, never stopping at the first
// failure.
type FieldConstraint struct {
	Field string
	Value string
	Kind  string
	Min   int
	Max   int
}

// NotBlank declares that the field must contain at least one
// non-whitespace character.
func NotBlank(field, value string) FieldConstraint {
	return FieldConstraint{Field: field, Value: value, Kind: KindNotBlank}
}

// Length declares that the field's length in runes must lie within
// [min, max]. An empty value fails this constraint as well as NotBlank; both
// violations are reported.
func Length(field, value string, min, max int) FieldConstraint {
	return FieldConstraint{Field: field, Value: value, Kind: KindLength, Min: min, Max: max}
}

// Violation is a single failed constraint on a payload field.
type Violation struct {
	Field   string
	Kind    string
	Message string
}

// String renders the violation in the client-visible
// "field-Kind-message" format.
func (v Violation) String() string {
	return v.Field + "-" + v.Kind + "-" + v.Message
}

// ValidationError aggregates every constraint violation found in a payload.
// Its message is deterministic: violations are sorted by field name, then by
// constraint kind, and joined with newlines.
type ValidationError struct {
	Violations []Violation
}

// Error implements the error interface.
// The rendered message is one line per violation, sorted and trimmed.
func (e *ValidationError) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = v.String()
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Validate evaluates every constraint against its field value and collects
// all violations; it never short-circuits on the first failing field or the
// first failing constraint on a field. Returns nil when the payload passes,
// or a *ValidationError carrying the sorted violation set.
func Validate(constraints ...FieldConstraint) error {
	var violations []Violation
	for _, c := range constraints {
		if v, ok := check(c); !ok {
			violations = append(violations, v)
		}
	}
	if len(violations) == 0 {
		return nil
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].Field != violations[j].Field {
			return violations[i].Field < violations[j].Field
		}
		return violations[i].Kind < violations[j].Kind
	})

	return &ValidationError{Violations: violations}
}

// check evaluates a single constraint. Returns the violation and false when
// the constraint fails.
func check(c FieldConstraint) (Violation, bool) {
	switch c.Kind {
	case KindNotBlank:
		if strings.TrimSpace(c.Value) == "" {
			return Violation{
				Field:   c.Field,
				Kind:    c.Kind,
				Message: "may not be empty",
			}, false
		}
	case KindLength:
		if n := utf8.RuneCountInString(c.Value); n < c.Min || n > c.Max {
			return Violation{
				Field:   c.Field,
				Kind:    c.Kind,
				Message: fmt.Sprintf("length must be between %d and %d", c.Min, c.Max),
			}, false
		}
	}
	return Violation{}, true
}
