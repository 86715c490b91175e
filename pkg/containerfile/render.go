package containerfile

import (
	"fmt"
	"strconv"
	"strings"
)

// Render serializes a validated document to its canonical text: one
// instruction per line, stages separated by a blank line, no trailing
// newline. Render is total and deterministic; the same document always
// yields the identical string.
func Render(f *File) string {
	if f.stages != nil {
		blocks := make([]string, 0, len(f.stages))
		for _, s := range f.stages {
			blocks = append(blocks, renderInstructions(s.instructions))
		}
		return strings.Join(blocks, "\n\n")
	}
	return renderInstructions(f.instructions)
}

func renderInstructions(instructions []Instruction) string {
	lines := make([]string, 0, len(instructions))
	for _, ins := range instructions {
		lines = append(lines, renderInstruction(ins))
	}
	return strings.Join(lines, "\n")
}

// renderInstruction dispatches on the instruction kind. The type
// switch is exhaustive over the package's sealed variant set.
func renderInstruction(ins Instruction) string {
	switch v := ins.(type) {
	case fromInstruction:
		return renderFrom(v)
	case runInstruction:
		return renderCommand("RUN", v.command)
	case copyInstruction:
		return renderCopy(v)
	case addInstruction:
		return renderAdd(v)
	case workdirInstruction:
		return "WORKDIR " + string(v.path)
	case envInstruction:
		return fmt.Sprintf("ENV %s=%s", v.key, v.value)
	case exposeInstruction:
		return renderExpose(v)
	case cmdInstruction:
		return renderCommand("CMD", v.command)
	case entrypointInstruction:
		return renderCommand("ENTRYPOINT", v.command)
	case argInstruction:
		return renderArg(v)
	case labelInstruction:
		return fmt.Sprintf("LABEL %s=%q", v.key, v.value)
	}
	panic(fmt.Sprintf("containerfile: unknown instruction kind %q", ins.Kind()))
}

func renderFrom(v fromInstruction) string {
	var sb strings.Builder
	sb.WriteString("FROM")
	if v.platform != "" {
		sb.WriteString(" --platform=")
		sb.WriteString(v.platform)
	}
	sb.WriteString(" ")
	sb.WriteString(string(v.image))
	if v.as != "" {
		sb.WriteString(" AS ")
		sb.WriteString(v.as)
	}
	return sb.String()
}

// renderCommand emits the form the instruction actually holds: the
// shell string verbatim, or the exec vector as a quoted array.
func renderCommand(directive string, c command) string {
	if c.isExec() {
		return directive + " " + renderExecForm(c.exec)
	}
	return directive + " " + c.shell
}

func renderExecForm(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, strconv.Quote(a))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// renderCopy emits option flags in the fixed order from, chown, chmod
// regardless of how the options were supplied.
func renderCopy(v copyInstruction) string {
	var sb strings.Builder
	sb.WriteString("COPY")
	if v.from != "" {
		sb.WriteString(" --from=")
		sb.WriteString(v.from)
	}
	writeChownChmod(&sb, v.chown, v.chmod)
	sb.WriteString(" ")
	sb.WriteString(strings.Join(v.src, " "))
	sb.WriteString(" ")
	sb.WriteString(string(v.dest))
	return sb.String()
}

func renderAdd(v addInstruction) string {
	var sb strings.Builder
	sb.WriteString("ADD")
	writeChownChmod(&sb, v.chown, v.chmod)
	sb.WriteString(" ")
	sb.WriteString(strings.Join(v.src, " "))
	sb.WriteString(" ")
	sb.WriteString(string(v.dest))
	return sb.String()
}

func writeChownChmod(sb *strings.Builder, chown, chmod string) {
	if chown != "" {
		sb.WriteString(" --chown=")
		sb.WriteString(chown)
	}
	if chmod != "" {
		sb.WriteString(" --chmod=")
		sb.WriteString(chmod)
	}
}

// renderExpose omits the protocol suffix for "tcp", the implicit
// default, even when it was supplied explicitly.
func renderExpose(v exposeInstruction) string {
	var sb strings.Builder
	sb.WriteString("EXPOSE ")
	sb.WriteString(strconv.Itoa(int(v.port)))
	if v.endPort != nil {
		sb.WriteString("-")
		sb.WriteString(strconv.Itoa(int(*v.endPort)))
	}
	if v.protocol != "" && v.protocol != ProtocolTCP {
		sb.WriteString("/")
		sb.WriteString(v.protocol)
	}
	return sb.String()
}

func renderArg(v argInstruction) string {
	if v.defaultValue == nil {
		return "ARG " + v.name
	}
	return fmt.Sprintf("ARG %s=%s", v.name, *v.defaultValue)
}
