package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Base errors. Every failure surfaced by the store, registry, or aggregator
// wraps one of these so callers can branch with errors.Is.
var (
	// BadParameterError marks malformed caller input.
	BadParameterError = errors.New("bad parameter")

	// NotFoundError marks an unknown taxonomy id or test case.
	NotFoundError = errors.New("not found")

	// ValidationError marks a record that violates an append invariant.
	ValidationError = errors.New("record validation failed")

	// EmptyInputError marks an aggregation over zero records when the
	// caller required at least one.
	EmptyInputError = errors.New("no records to aggregate")
)

// FieldValidationError maps a field name to the invariant it violated.
type FieldValidationError map[string]string

func (e FieldValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return strings.Join(parts, "; ")
}

// AsValidationError wraps field-level violations around ValidationError.
// Returns nil when no violations were collected.
func AsValidationError(fields FieldValidationError) error {
	if len(fields) == 0 {
		return nil
	}
	return errors.Wrap(ValidationError, fields.Error())
}
