// Package validation collects field-level input violations for the
// service layer and reports them as a single error.
package validation

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// ErrInvalid matches every *Error via errors.Is
var ErrInvalid = errors.New("invalid input")

// Violations maps a field name to the error describing what is wrong with it
type Violations map[string]error

// Empty reports whether no violation was recorded
func (v Violations) Empty() bool { return len(v) == 0 }

// Required records err for field when value is blank
func (v Violations) Required(field, value string, err error) {
	if strings.TrimSpace(value) == "" {
		v[field] = err
	}
}

// PositiveFloat records err for field unless val is a finite number above zero
func (v Violations) PositiveFloat(field string, val float64, err error) {
	if !(val > 0) || math.IsInf(val, 1) {
		v[field] = err
	}
}

// Err returns nil when there are no violations, otherwise an *Error
func (v Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return &Error{Violations: v}
}

// Error is returned by services when one or more fields fail validation.
// It unwraps to each field's sentinel error, so callers can test for a
// specific problem with errors.Is.
type Error struct {
	Violations Violations
}

// Fields returns the offending field names in sorted order
func (e *Error) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for field := range e.Violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, field := range e.Fields() {
		msgs = append(msgs, e.Violations[field].Error())
	}
	return ErrInvalid.Error() + ": " + strings.Join(msgs, "; ")
}

// Is makes errors.Is(err, ErrInvalid) true for any *Error
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Unwrap exposes the per-field errors in field order
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, len(e.Violations))
	for _, field := range e.Fields() {
		errs = append(errs, e.Violations[field])
	}
	return errs
}
