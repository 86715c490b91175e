package containerfile

import (
	"fmt"
	"strings"
)

// Error describes a single validation failure. Field is a dot/bracket
// access path from the document root to the offending leaf (for
// example "stages[0].instructions[2].src[1]"), Message is a
// human-readable description of the required form, and Value is the
// rejected input.
type Error struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors is an ordered, non-empty collection of validation failures.
// Constructors and aggregators accumulate every problem they find into
// one Errors value rather than stopping at the first.
type Errors []*Error

// Error implements the error interface with a multi-line report.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for _, err := range e {
		sb.WriteString("  ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// PrefixErrors returns a copy of errs with every field path rewritten
// under prefix, so a child's errors read as an access path from the
// parent ("instructions[2].image"). An empty child field becomes just
// the prefix. The input slice is not modified.
func PrefixErrors(prefix string, errs Errors) Errors {
	if len(errs) == 0 {
		return nil
	}

	out := make(Errors, 0, len(errs))
	for _, err := range errs {
		field := prefix
		if err.Field != "" {
			field = prefix + "." + err.Field
		}
		out = append(out, &Error{
			Field:   field,
			Message: err.Message,
			Value:   err.Value,
		})
	}
	return out
}
