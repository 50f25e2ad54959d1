package console

import (
	"regexp"
	"slices"
	"strings"
)

var commandNamePattern = regexp.MustCompile(`^[^\s-][^\s]*$`)

// Command is a unit of behavior selected by name from the command line.
//
// RegisterInput is called once, before parsing, to declare the flags and arguments the command needs.
// Run is called once after parsing succeeds and verbosity has been resolved.
// Values are read from the [Input] that was passed to RegisterInput.
type Command interface {
	RegisterInput(in *Input) error
	Run(in *Input, out *Output) error
}

// CommandFactory constructs a [Command].
// A factory is only called for the command selected by the command line, so unused commands are never constructed.
type CommandFactory func() Command

// CommandFuncs is a [Command] made of plain functions, useful for small commands.
// Either function may be nil.
type CommandFuncs struct {
	Register func(in *Input) error
	Exec     func(in *Input, out *Output) error
}

func (c CommandFuncs) RegisterInput(in *Input) error {
	if c.Register == nil {
		return nil
	}
	return c.Register(in)
}

func (c CommandFuncs) Run(in *Input, out *Output) error {
	if c.Exec == nil {
		return nil
	}
	return c.Exec(in, out)
}

// CommandInfo describes a registered command without constructing it.
type CommandInfo struct {
	Name        string
	Description string
}

type commandEntry struct {
	CommandInfo
	factory CommandFactory
}

type commandRegistry map[string]*commandEntry

func (r commandRegistry) add(name, description string, factory CommandFactory) error {
	if !commandNamePattern.MatchString(name) {
		return newConfigError("%w: command name '%s' must not be empty, start with '-', or contain spaces", ErrInvalidName, name)
	}
	if factory == nil {
		return newConfigError("%w: command '%s' has no factory", ErrInvalidName, name)
	}
	if _, ok := r[name]; ok {
		return newConfigError("%w: '%s'", ErrDuplicateCommand, name)
	}
	r[name] = &commandEntry{
		CommandInfo: CommandInfo{Name: name, Description: description},
		factory:     factory,
	}
	return nil
}

// sorted returns the registered commands ordered by name.
func (r commandRegistry) sorted() []CommandInfo {
	infos := make([]CommandInfo, 0, len(r))
	for _, entry := range r {
		infos = append(infos, entry.CommandInfo)
	}
	slices.SortFunc(infos, func(a, b CommandInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos
}
