package containerfile

import "fmt"

// File is a complete, validated Containerfile document: either a flat
// list of instructions or a list of stages, never both. Which shape a
// File holds is fixed by the aggregator that built it (New or
// NewMultiStage).
type File struct {
	instructions []Instruction
	stages       []*Stage
}

// MultiStage reports whether the document holds stages rather than a
// flat instruction list.
func (f *File) MultiStage() bool { return f.stages != nil }

// Instructions returns the document's instructions in order, or nil
// for a multi-stage document. The returned slice is a copy.
func (f *File) Instructions() []Instruction {
	if f.instructions == nil {
		return nil
	}
	out := make([]Instruction, len(f.instructions))
	copy(out, f.instructions)
	return out
}

// Stages returns the document's stages in order, or nil for a
// single-stage document. The returned slice is a copy.
func (f *File) Stages() []*Stage {
	if f.stages == nil {
		return nil
	}
	out := make([]*Stage, len(f.stages))
	copy(out, f.stages)
	return out
}

// New combines an ordered list of instruction results into a
// single-stage document, accumulating every failed result's errors
// with index-prefixed field paths.
func New(results ...Result[Instruction]) Result[*File] {
	var errs Errors

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
		return fail[*File](errs)
	}
	return ok(&File{instructions: instructions})
}

// NewMultiStage combines an ordered list of stage results into a
// multi-stage document, accumulating every failed result's errors with
// index-prefixed field paths ("stages[1].instructions[0].image").
func NewMultiStage(results ...Result[*Stage]) Result[*File] {
	var errs Errors

	if len(results) == 0 {
		errs = append(errs, &Error{
			Field:   "stages",
			Message: "must contain at least one stage",
			Value:   nil,
		})
	}

	stages := make([]*Stage, 0, len(results))
	for i, r := range results {
		if r.Failed() {
			errs = append(errs, PrefixErrors(fmt.Sprintf("stages[%d]", i), r.Errs())...)
			continue
		}
		stages = append(stages, r.Value())
	}

	if len(errs) > 0 {
		return fail[*File](errs)
	}
	return ok(&File{stages: stages})
}
