package containerfile

import (
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"
)

// Port is a validated network port number. Obtain one via ValidatePort.
type Port uint16

// PortRange is a validated inclusive port range with Start <= End.
// Obtain one via ValidatePortRange; a degenerate single-port range
// (Start == End) is valid.
type PortRange struct {
	start Port
	end   Port
}

// Start returns the lower bound of the range.
func (r PortRange) Start() Port { return r.start }

// End returns the upper bound of the range.
func (r PortRange) End() Port { return r.end }

// ImageName is a validated container image reference. Obtain one via
// ValidateImageName.
type ImageName string

// Path is a validated (non-empty) filesystem path inside a build
// context or image. Obtain one via ValidatePath.
type Path string

// ValidatePort checks that value is a valid port number in [0, 65535].
// The field name is used in any reported error path.
func ValidatePort(value int, field string) (Port, Errors) {
	if value < 0 || value > 65535 {
		return 0, Errors{{
			Field:   field,
			Message: "must be an integer between 0 and 65535",
			Value:   value,
		}}
	}
	return Port(value), nil
}

// ValidatePortRange checks both bounds independently via ValidatePort,
// accumulating an error for each invalid bound, and only when both are
// individually valid checks the start <= end invariant.
func ValidatePortRange(start, end int, field string) (PortRange, Errors) {
	var errs Errors

	s, serrs := ValidatePort(start, field+".start")
	errs = append(errs, serrs...)
	e, eerrs := ValidatePort(end, field+".end")
	errs = append(errs, eerrs...)

	// The ordering check is meaningless unless both bounds are valid.
	if len(errs) == 0 && s > e {
		errs = append(errs, &Error{
			Field:   field,
			Message: fmt.Sprintf("start port %d must not be greater than end port %d", start, end),
			Value:   []int{start, end},
		})
	}

	if len(errs) > 0 {
		return PortRange{}, errs
	}
	return PortRange{start: s, end: e}, nil
}

// ValidateImageName checks that value is a well-formed image reference:
// an optional registry host, a lowercase repository path, and an
// optional :tag and/or @digest.
func ValidateImageName(value string, field string) (ImageName, Errors) {
	if value == "" {
		return "", Errors{{
			Field:   field,
			Message: "must not be empty",
			Value:   value,
		}}
	}
	if _, err := name.ParseReference(value); err != nil {
		return "", Errors{{
			Field:   field,
			Message: "must be a valid image reference ([registry/]repository[:tag][@digest], lowercase repository)",
			Value:   value,
		}}
	}
	return ImageName(value), nil
}

// ValidatePath checks that value is a non-empty path string. The check
// is purely syntactic; no filesystem is consulted.
func ValidatePath(value string, field string) (Path, Errors) {
	if value == "" {
		return "", Errors{{
			Field:   field,
			Message: "must not be empty",
			Value:   value,
		}}
	}
	return Path(value), nil
}

// validateNonEmptyString checks that value is non-empty.
func validateNonEmptyString(value string, field string) (string, Errors) {
	if value == "" {
		return "", Errors{{
			Field:   field,
			Message: "must not be empty",
			Value:   value,
		}}
	}
	return value, nil
}

// validateStringArray checks that values is non-empty and that every
// element is a non-empty string, accumulating one error per bad
// element with the element index in the field path.
func validateStringArray(values []string, field string) ([]string, Errors) {
	if len(values) == 0 {
		return nil, Errors{{
			Field:   field,
			Message: "must contain at least one element",
			Value:   values,
		}}
	}

	var errs Errors
	for i, v := range values {
		if v == "" {
			errs = append(errs, &Error{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: "must not be empty",
				Value:   v,
			})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	out := make([]string, len(values))
	copy(out, values)
	return out, nil
}
