package buildspec

import (
	"fmt"

	"github.com/craftfile/cli/pkg/containerfile"
)

// Compile turns a parsed document into a validated Containerfile. All
// semantic validation happens in the containerfile constructors; every
// error across every instruction and stage is accumulated into one
// result with full access paths ("stages[1].instructions[0].image").
func Compile(doc *Document) containerfile.Result[*containerfile.File] {
	if len(doc.Stages) > 0 {
		stages := make([]containerfile.Result[*containerfile.Stage], 0, len(doc.Stages))
		for _, s := range doc.Stages {
			stages = append(stages, compileStage(s))
		}
		return containerfile.NewMultiStage(stages...)
	}
	return containerfile.New(compileInstructions(doc.Instructions)...)
}

func compileStage(s StageSpec) containerfile.Result[*containerfile.Stage] {
	return containerfile.NewStage(s.Name, compileInstructions(s.Instructions)...)
}

func compileInstructions(specs []InstructionSpec) []containerfile.Result[containerfile.Instruction] {
	results := make([]containerfile.Result[containerfile.Instruction], 0, len(specs))
	for _, s := range specs {
		results = append(results, compileInstruction(s))
	}
	return results
}

// compileInstruction maps one spec entry onto its constructor. The
// schema pass has already pinned the kind to the supported set; the
// default arm guards direct Go callers that skip Parse.
func compileInstruction(s InstructionSpec) containerfile.Result[containerfile.Instruction] {
	switch containerfile.Kind(s.Kind) {
	case containerfile.KindFrom:
		return containerfile.From(s.Image, &containerfile.FromOpts{
			As:       s.As,
			Platform: s.Platform,
		})

	case containerfile.KindRun:
		if s.Command.List {
			return containerfile.RunExec(s.Command.Values...)
		}
		return containerfile.Run(scalar(s.Command))

	case containerfile.KindCopy:
		return containerfile.Copy(s.Src.Values, s.Dest, &containerfile.CopyOpts{
			From:  s.From,
			Chown: s.Chown,
			Chmod: s.Chmod,
		})

	case containerfile.KindAdd:
		return containerfile.Add(s.Src.Values, s.Dest, &containerfile.AddOpts{
			Chown: s.Chown,
			Chmod: s.Chmod,
		})

	case containerfile.KindWorkdir:
		return containerfile.Workdir(s.Path)

	case containerfile.KindEnv:
		return containerfile.Env(s.Key, s.Value)

	case containerfile.KindExpose:
		opts := &containerfile.ExposeOpts{Protocol: s.Protocol}
		if s.EndPort != nil {
			return containerfile.ExposeRange(s.Port, *s.EndPort, opts)
		}
		return containerfile.Expose(s.Port, opts)

	case containerfile.KindCmd:
		if s.Command.List {
			return containerfile.CmdExec(s.Command.Values...)
		}
		return containerfile.Cmd(scalar(s.Command))

	case containerfile.KindEntrypoint:
		if s.Command.List {
			return containerfile.EntrypointExec(s.Command.Values...)
		}
		return containerfile.Entrypoint(scalar(s.Command))

	case containerfile.KindArg:
		if s.Default != nil {
			return containerfile.ArgDefault(s.Name, *s.Default)
		}
		return containerfile.Arg(s.Name)

	case containerfile.KindLabel:
		return containerfile.Label(s.Key, s.Value)
	}

	return containerfile.Failure[containerfile.Instruction](containerfile.Errors{{
		Field:   "kind",
		Message: fmt.Sprintf("unsupported instruction kind %q", s.Kind),
		Value:   s.Kind,
	}})
}

// scalar returns the shell-form string of a command value, or "" when
// the field was absent so the constructor reports it as empty.
func scalar(s StringOrList) string {
	if len(s.Values) == 0 {
		return ""
	}
	return s.Values[0]
}
