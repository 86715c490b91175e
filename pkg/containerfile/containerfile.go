// Package containerfile builds and renders container build-definition
// files (Dockerfile/Containerfile syntax).
//
// Callers assemble a document from typed instructions via the package's
// constructors (From, Run, Copy, ...), optionally grouped into named
// multi-stage build stages with NewStage, then aggregated with New or
// NewMultiStage and serialized with Render. Every constructor validates
// its inputs and reports all problems it finds in one pass; an
// Instruction, Stage or File value that exists is always fully valid.
//
// The package performs no I/O and holds no state: every function is
// deterministic and safe for concurrent use.
package containerfile

// Kind identifies the directive an instruction renders as.
type Kind string

// Supported directive kinds.
const (
	KindFrom       Kind = "FROM"
	KindRun        Kind = "RUN"
	KindCopy       Kind = "COPY"
	KindAdd        Kind = "ADD"
	KindWorkdir    Kind = "WORKDIR"
	KindEnv        Kind = "ENV"
	KindExpose     Kind = "EXPOSE"
	KindCmd        Kind = "CMD"
	KindEntrypoint Kind = "ENTRYPOINT"
	KindArg        Kind = "ARG"
	KindLabel      Kind = "LABEL"
)

// Instruction is one directive line in a Containerfile. Values are
// created exclusively by this package's constructors and are immutable;
// an Instruction that exists always satisfies its directive's
// validation rules.
type Instruction interface {
	// Kind returns the directive this instruction renders as.
	Kind() Kind

	isInstruction()
}

// Result is the outcome of a constructor or aggregator call: either a
// valid value or the full set of validation errors found. Exactly one
// of the two is present.
type Result[T any] struct {
	value T
	errs  Errors
}

// ok wraps a successfully constructed value.
func ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// fail wraps a non-empty error list.
func fail[T any](errs Errors) Result[T] {
	return Result[T]{errs: errs}
}

// Failure wraps validation errors detected outside this package in a
// failed Result, so callers with their own pre-validation (spec-file
// front ends, generators) can feed the aggregators one uniform result
// stream. It cannot produce a successful Result; an empty errs is
// normalized to a single generic error.
func Failure[T any](errs Errors) Result[T] {
	if len(errs) == 0 {
		errs = Errors{{Message: "invalid input"}}
	}
	return Result[T]{errs: errs}
}

// Value returns the constructed value. It is the zero value when the
// result failed; check Failed or Errs first.
func (r Result[T]) Value() T {
	return r.value
}

// Errs returns every validation error found, or nil on success.
func (r Result[T]) Errs() Errors {
	return r.errs
}

// Failed reports whether the call produced validation errors.
func (r Result[T]) Failed() bool {
	return len(r.errs) > 0
}
