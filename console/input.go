package console

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
)

var argumentNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MustGet is used with a lookup like [Input.Flag] to panic if the value is not defined.
// The developer usually knows whether a lookup will fail, so this function makes it easier to chain calls.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Input holds the raw command line tokens along with the flags, arguments, and commands that interpret them.
//
// Definitions must be added before [Input.Parse] is called.
// Flags added while a command is registering its input are attributed to that command for help output.
type Input struct {
	name        string
	description string
	args        []string
	fs          *flag.FlagSet
	flags       map[string]*Flag
	aliases     map[string]*Flag
	order       []*Flag
	arguments   []*Argument
	commands    commandRegistry
	owner       string
	active      string
	extra       []string
	parsed      bool
	parseErr    error
}

// NewInput creates an [Input] for the given raw arguments, which should not include the program name.
func NewInput(args []string) *Input {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetInterspersed(true)
	return &Input{
		args:     slices.Clone(args),
		fs:       fs,
		flags:    map[string]*Flag{},
		aliases:  map[string]*Flag{},
		commands: commandRegistry{},
	}
}

// SetName sets the application name used in help output.
func (in *Input) SetName(name string) *Input {
	in.name = name
	return in
}

func (in *Input) Name() string {
	return in.name
}

// SetDescription sets the application description used in help output.
func (in *Input) SetDescription(description string) *Input {
	in.description = description
	return in
}

func (in *Input) Description() string {
	return in.description
}

// AddFlag registers a [Flag].
// A [ConfigError] is returned if the flag's name or alias is already used, or if the flag is invalid.
func (in *Input) AddFlag(f *Flag) error {
	if f == nil {
		return newConfigError("%w: nil flag", ErrInvalidName)
	}
	if in.parsed {
		return newConfigError("%w: cannot add flag '%s'", ErrAlreadyParsed, f.name)
	}
	if err := f.validate(); err != nil {
		return err
	}
	if _, ok := in.flags[f.name]; ok {
		return newConfigError("%w: '--%s'", ErrDuplicateFlag, f.name)
	}
	if len(f.alias) > 0 {
		if other, ok := in.aliases[f.alias]; ok {
			return newConfigError("%w: alias '-%s' of '--%s' is already used by '--%s'", ErrDuplicateFlag, f.alias, f.name, other.name)
		}
	}
	f.owner = in.owner
	f.bind(in.fs)
	in.flags[f.name] = f
	if len(f.alias) > 0 {
		in.aliases[f.alias] = f
	}
	in.order = append(in.order, f)
	return nil
}

// AddArgument registers an [Argument] at the next position.
// Required arguments may not follow optional ones.
func (in *Input) AddArgument(a *Argument) error {
	if a == nil {
		return newConfigError("%w: nil argument", ErrInvalidName)
	}
	if in.parsed {
		return newConfigError("%w: cannot add argument '%s'", ErrAlreadyParsed, a.name)
	}
	if !argumentNamePattern.MatchString(a.name) {
		return newConfigError("%w: argument name '%s'", ErrInvalidName, a.name)
	}
	for _, existing := range in.arguments {
		if existing.name == a.name {
			return newConfigError("%w: '%s'", ErrDuplicateArgument, a.name)
		}
	}
	if a.required && len(in.arguments) > 0 && !in.arguments[len(in.arguments)-1].required {
		return newConfigError("%w: '%s' follows '%s'", ErrArgumentOrder, a.name, in.arguments[len(in.arguments)-1].name)
	}
	a.position = len(in.arguments)
	in.arguments = append(in.arguments, a)
	return nil
}

// AddCommand registers a command by name.
// The factory will only be called if the command is selected by the command line.
func (in *Input) AddCommand(name, description string, factory CommandFactory) error {
	if in.parsed {
		return newConfigError("%w: cannot add command '%s'", ErrAlreadyParsed, name)
	}
	return in.commands.add(name, description, factory)
}

// Commands returns information about all registered commands, sorted by name.
func (in *Input) Commands() []CommandInfo {
	return in.commands.sorted()
}

func (in *Input) command(name string) (CommandInfo, bool) {
	entry, ok := in.commands[name]
	if !ok {
		return CommandInfo{}, false
	}
	return entry.CommandInfo, true
}

// ActiveCommand scans the raw arguments for the first token that isn't a flag and matches a registered command name.
// This doesn't parse or change the [Input], so it may be called any number of times.
func (in *Input) ActiveCommand() (string, bool) {
	_, name, ok := in.scanCommand()
	return name, ok
}

func (in *Input) scanCommand() (int, string, bool) {
	for i, arg := range in.args {
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if _, ok := in.commands[arg]; ok {
			return i, arg, true
		}
	}
	return -1, "", false
}

// beginCommand attributes flags added from now on to the named command.
func (in *Input) beginCommand(name string) {
	in.owner = name
}

// Parse interprets the raw arguments with the registered definitions.
// Only the first call does any work, later calls return the same result.
//
// Unknown or malformed flags and missing required arguments are reported as a [ParseError].
func (in *Input) Parse() error {
	if in.parsed {
		return in.parseErr
	}
	in.parsed = true
	in.parseErr = in.parse()
	return in.parseErr
}

func (in *Input) parse() error {
	args := in.args
	idx, name, ok := in.scanCommand()
	if ok {
		in.active = name
		args = slices.Delete(slices.Clone(args), idx, idx+1)
	}
	if err := in.checkTokens(args); err != nil {
		return err
	}
	if err := in.fs.Parse(args); err != nil {
		return newParseError("", "%w", err)
	}
	positional := in.fs.Args()
	if !ok {
		// Global mode has no argument slots.
		in.extra = positional
		return nil
	}
	for _, arg := range in.arguments {
		if len(positional) == 0 {
			break
		}
		arg.value, arg.set = positional[0], true
		positional = positional[1:]
	}
	in.extra = positional
	for _, arg := range in.arguments {
		if arg.required && !arg.set {
			return newParseError(arg.name, "%w: '%s'", ErrMissingArgument, arg.name)
		}
	}
	return nil
}

// Parsed reports whether [Input.Parse] has been called.
func (in *Input) Parsed() bool {
	return in.parsed
}

// Command returns the name of the command selected during [Input.Parse].
func (in *Input) Command() (string, bool) {
	return in.active, len(in.active) > 0
}

// Flag looks up a [Flag] by name or alias.
func (in *Input) Flag(name string) (*Flag, error) {
	f, ok := in.flags[name]
	if !ok {
		f, ok = in.aliases[name]
	}
	if !ok {
		return nil, fmt.Errorf("flag '%s' %w", name, ErrUndefined)
	}
	return f, nil
}

// Flags returns all registered flags in registration order.
func (in *Input) Flags() []*Flag {
	return slices.Clone(in.order)
}

// Argument looks up an [Argument] by name.
func (in *Input) Argument(name string) (*Argument, error) {
	for _, arg := range in.arguments {
		if arg.name == name {
			return arg, nil
		}
	}
	return nil, fmt.Errorf("argument '%s' %w", name, ErrUndefined)
}

// Arguments returns all registered arguments in position order.
func (in *Input) Arguments() []*Argument {
	return slices.Clone(in.arguments)
}

// Args returns positional tokens that weren't assigned to an [Argument].
func (in *Input) Args() []string {
	return slices.Clone(in.extra)
}

// repeatableUsage presents a stackable flag in usage output without a value name, since it never consumes one.
type repeatableUsage struct {
	flag.Value
}

func (repeatableUsage) Type() string {
	return ""
}

func (repeatableUsage) String() string {
	return ""
}

// flagUsages formats global flags, plus the named command's flags if command is not empty.
func (in *Input) flagUsages(command string) string {
	visible := flag.NewFlagSet(in.name, flag.ContinueOnError)
	for _, f := range in.order {
		if len(f.owner) > 0 && f.owner != command {
			continue
		}
		if !f.stackable {
			visible.AddFlag(f.pf)
			continue
		}
		display := *f.pf
		display.Value = repeatableUsage{f.pf.Value}
		display.NoOptDefVal = ""
		display.Usage = strings.TrimSpace(f.description + " (repeatable)")
		visible.AddFlag(&display)
	}
	return visible.FlagUsages()
}
