package containerfile

import "fmt"

// Stage is a named, ordered, non-empty group of instructions in a
// multi-stage build. The name is bookkeeping for the caller; the alias
// used by --from references is the As option on the stage's FROM
// instruction, which this package does not reconcile with the stage
// name.
type Stage struct {
	name         string
	instructions []Instruction
}

// Name returns the stage name.
func (s *Stage) Name() string { return s.name }

// Instructions returns the stage's instructions in order. The returned
// slice is a copy.
func (s *Stage) Instructions() []Instruction {
	out := make([]Instruction, len(s.instructions))
	copy(out, s.instructions)
	return out
}

// NewStage combines a name and an ordered list of constructor results
// into a stage. All problems are accumulated: an invalid name and
// every failed result are reported together, each failed result's
// errors prefixed with its position ("instructions[2].image").
func NewStage(stageName string, results ...Result[Instruction]) Result[*Stage] {
	var errs Errors

	n, nerrs := validateNonEmptyString(stageName, "name")
	errs = append(errs, nerrs...)

	if len(results) == 0 {
		errs = append(errs, &Error{
			Field:   "instructions",
			Message: "must contain at least one instruction",
			Value:   nil,
		})
	}

	instructions := make([]Instruction, 0, len(results))
	for i, r := range results {
		if r.Failed() {
			errs = append(errs, PrefixErrors(fmt.Sprintf("instructions[%d]", i), r.Errs())...)
			continue
		}
		instructions = append(instructions, r.Value())
	}

	if len(errs) > 0 {
		return fail[*Stage](errs)
	}
	return ok(&Stage{name: n, instructions: instructions})
}
