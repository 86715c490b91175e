package containerfile

// Protocols accepted by Expose and ExposeRange.
const (
	ProtocolTCP  = "tcp"
	ProtocolUDP  = "udp"
	ProtocolSCTP = "sctp"
)

// command holds the payload of RUN, CMD and ENTRYPOINT: either a
// shell-form string or an exec-form argument vector, never both.
type command struct {
	shell string
	exec  []string
}

func (c command) isExec() bool { return c.exec != nil }

type fromInstruction struct {
	image    ImageName
	as       string
	platform string
}

type runInstruction struct {
	command command
}

type copyInstruction struct {
	src   []string
	dest  Path
	from  string
	chown string
	chmod string
}

type addInstruction struct {
	src   []string
	dest  Path
	chown string
	chmod string
}

type workdirInstruction struct {
	path Path
}

type envInstruction struct {
	key   string
	value string
}

type exposeInstruction struct {
	port     Port
	endPort  *Port
	protocol string
}

type cmdInstruction struct {
	command command
}

type entrypointInstruction struct {
	command command
}

type argInstruction struct {
	name         string
	defaultValue *string
}

type labelInstruction struct {
	key   string
	value string
}

func (fromInstruction) Kind() Kind       { return KindFrom }
func (runInstruction) Kind() Kind        { return KindRun }
func (copyInstruction) Kind() Kind       { return KindCopy }
func (addInstruction) Kind() Kind        { return KindAdd }
func (workdirInstruction) Kind() Kind    { return KindWorkdir }
func (envInstruction) Kind() Kind        { return KindEnv }
func (exposeInstruction) Kind() Kind     { return KindExpose }
func (cmdInstruction) Kind() Kind        { return KindCmd }
func (entrypointInstruction) Kind() Kind { return KindEntrypoint }
func (argInstruction) Kind() Kind        { return KindArg }
func (labelInstruction) Kind() Kind      { return KindLabel }

func (fromInstruction) isInstruction()       {}
func (runInstruction) isInstruction()        {}
func (copyInstruction) isInstruction()       {}
func (addInstruction) isInstruction()        {}
func (workdirInstruction) isInstruction()    {}
func (envInstruction) isInstruction()        {}
func (exposeInstruction) isInstruction()     {}
func (cmdInstruction) isInstruction()        {}
func (entrypointInstruction) isInstruction() {}
func (argInstruction) isInstruction()        {}
func (labelInstruction) isInstruction()      {}

// FromOpts are the optional fields of a FROM instruction. An empty
// string means the option is not supplied.
type FromOpts struct {
	// As names the build stage for later --from references.
	As string

	// Platform selects the target platform (for example "linux/amd64").
	Platform string
}

// From constructs a FROM instruction. opts may be nil.
func From(image string, opts *FromOpts) Result[Instruction] {
	var errs Errors

	img, ierrs := ValidateImageName(image, "image")
	errs = append(errs, ierrs...)

	if opts == nil {
		opts = &FromOpts{}
	}
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](fromInstruction{
		image:    img,
		as:       opts.As,
		platform: opts.Platform,
	})
}

// Run constructs a shell-form RUN instruction. The command string is
// opaque text interpreted by a shell at build time; it is validated
// only for non-emptiness.
func Run(cmd string) Result[Instruction] {
	c, errs := shellCommand(cmd)
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](runInstruction{command: c})
}

// RunExec constructs an exec-form RUN instruction from an explicit
// argument vector.
func RunExec(args ...string) Result[Instruction] {
	c, errs := execCommand(args)
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](runInstruction{command: c})
}

// CopyOpts are the optional fields of a COPY instruction. An empty
// string means the option is not supplied.
type CopyOpts struct {
	// From names the build stage or image to copy from.
	From string

	// Chown sets ownership of the copied files.
	Chown string

	// Chmod sets permissions of the copied files.
	Chmod string
}

// Copy constructs a COPY instruction. Every src element and dest must
// be non-empty paths; each bad src element is reported with its index.
// opts may be nil.
func Copy(src []string, dest string, opts *CopyOpts) Result[Instruction] {
	var errs Errors

	srcs, serrs := validatePaths(src, "src")
	errs = append(errs, serrs...)

	d, derrs := ValidatePath(dest, "dest")
	errs = append(errs, derrs...)

	if opts == nil {
		opts = &CopyOpts{}
	}
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](copyInstruction{
		src:   srcs,
		dest:  d,
		from:  opts.From,
		chown: opts.Chown,
		chmod: opts.Chmod,
	})
}

// AddOpts are the optional fields of an ADD instruction. An empty
// string means the option is not supplied.
type AddOpts struct {
	// Chown sets ownership of the added files.
	Chown string

	// Chmod sets permissions of the added files.
	Chmod string
}

// Add constructs an ADD instruction. opts may be nil.
func Add(src []string, dest string, opts *AddOpts) Result[Instruction] {
	var errs Errors

	srcs, serrs := validatePaths(src, "src")
	errs = append(errs, serrs...)

	d, derrs := ValidatePath(dest, "dest")
	errs = append(errs, derrs...)

	if opts == nil {
		opts = &AddOpts{}
	}
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](addInstruction{
		src:   srcs,
		dest:  d,
		chown: opts.Chown,
		chmod: opts.Chmod,
	})
}

// Workdir constructs a WORKDIR instruction.
func Workdir(path string) Result[Instruction] {
	p, errs := ValidatePath(path, "path")
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](workdirInstruction{path: p})
}

// Env constructs an ENV instruction. The key must be non-empty; the
// value may be empty ("ENV KEY=" is valid).
func Env(key, value string) Result[Instruction] {
	k, errs := validateNonEmptyString(key, "key")
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](envInstruction{key: k, value: value})
}

// ExposeOpts are the optional fields of an EXPOSE instruction. An
// empty Protocol means the default ("tcp").
type ExposeOpts struct {
	// Protocol is "tcp", "udp" or "sctp".
	Protocol string
}

// Expose constructs an EXPOSE instruction for a single port. opts may
// be nil.
func Expose(port int, opts *ExposeOpts) Result[Instruction] {
	var errs Errors

	p, perrs := ValidatePort(port, "port")
	errs = append(errs, perrs...)

	proto, prerrs := validateProtocol(opts)
	errs = append(errs, prerrs...)

	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](exposeInstruction{port: p, protocol: proto})
}

// ExposeRange constructs an EXPOSE instruction for an inclusive port
// range. opts may be nil.
func ExposeRange(start, end int, opts *ExposeOpts) Result[Instruction] {
	var errs Errors

	r, rerrs := ValidatePortRange(start, end, "port")
	errs = append(errs, rerrs...)

	proto, prerrs := validateProtocol(opts)
	errs = append(errs, prerrs...)

	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	endPort := r.End()
	return ok[Instruction](exposeInstruction{
		port:     r.Start(),
		endPort:  &endPort,
		protocol: proto,
	})
}

// Cmd constructs a shell-form CMD instruction.
func Cmd(cmd string) Result[Instruction] {
	c, errs := shellCommand(cmd)
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](cmdInstruction{command: c})
}

// CmdExec constructs an exec-form CMD instruction.
func CmdExec(args ...string) Result[Instruction] {
	c, errs := execCommand(args)
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](cmdInstruction{command: c})
}

// Entrypoint constructs a shell-form ENTRYPOINT instruction.
func Entrypoint(cmd string) Result[Instruction] {
	c, errs := shellCommand(cmd)
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](entrypointInstruction{command: c})
}

// EntrypointExec constructs an exec-form ENTRYPOINT instruction.
func EntrypointExec(args ...string) Result[Instruction] {
	c, errs := execCommand(args)
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](entrypointInstruction{command: c})
}

// Arg constructs an ARG instruction with no default value.
func Arg(argName string) Result[Instruction] {
	n, errs := validateNonEmptyString(argName, "name")
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](argInstruction{name: n})
}

// ArgDefault constructs an ARG instruction with a default value. The
// default may be empty ("ARG NAME=" is valid).
func ArgDefault(argName, defaultValue string) Result[Instruction] {
	n, errs := validateNonEmptyString(argName, "name")
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](argInstruction{name: n, defaultValue: &defaultValue})
}

// Label constructs a LABEL instruction. The key must be non-empty; the
// value may be empty.
func Label(key, value string) Result[Instruction] {
	k, errs := validateNonEmptyString(key, "key")
	if len(errs) > 0 {
		return fail[Instruction](errs)
	}
	return ok[Instruction](labelInstruction{key: k, value: value})
}

// shellCommand validates a shell-form command payload.
func shellCommand(cmd string) (command, Errors) {
	c, errs := validateNonEmptyString(cmd, "command")
	if len(errs) > 0 {
		return command{}, errs
	}
	return command{shell: c}, nil
}

// execCommand validates an exec-form command payload.
func execCommand(args []string) (command, Errors) {
	out, errs := validateStringArray(args, "command")
	if len(errs) > 0 {
		return command{}, errs
	}
	return command{exec: out}, nil
}

// validatePaths validates a src path list: non-empty, every element a
// non-empty path, one error per bad element with its index.
func validatePaths(values []string, field string) ([]string, Errors) {
	return validateStringArray(values, field)
}

// validateProtocol checks the EXPOSE protocol option against the
// closed set of supported protocols.
func validateProtocol(opts *ExposeOpts) (string, Errors) {
	if opts == nil || opts.Protocol == "" {
		return "", nil
	}
	switch opts.Protocol {
	case ProtocolTCP, ProtocolUDP, ProtocolSCTP:
		return opts.Protocol, nil
	}
	return "", Errors{{
		Field:   "protocol",
		Message: `must be one of "tcp", "udp" or "sctp"`,
		Value:   opts.Protocol,
	}}
}
