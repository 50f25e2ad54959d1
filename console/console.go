package console

import (
	"errors"
	"log/slog"
	"os"
)

const (
	FlagHelp    = "help"
	FlagQuiet   = "quiet"
	FlagVerbose = "verbose"

	StyleInfo    = "info"
	StyleWarning = "warning"
	StyleError   = "error"
)

// Console resolves the command selected by the command line, applies global flags, and runs it.
// When no command is selected, the application help screen is rendered instead.
//
// A Console is meant for a single invocation and is not safe for concurrent use.
type Console struct {
	input        *Input
	output       *Output
	errs         errorCollector
	preRun       []PreRun
	bootstrapped bool
}

// New creates a [Console] from the given [Config].
// Zero values in the config fall back to an empty argument list and STDERR.
func New(cfg Config) *Console {
	in := NewInput(cfg.Args).SetName(cfg.Name).SetDescription(cfg.Description)
	out := NewOutput()
	if cfg.Writer != nil {
		out.Redirect(cfg.Writer)
	}
	out.noColor = cfg.NoColor
	out.forceColor = cfg.ForceColor
	return &Console{input: in, output: out}
}

// Default creates a [Console] with [DefaultConfig], using the given name and description in help output.
func Default(name, description string) *Console {
	cfg := DefaultConfig()
	if len(name) > 0 {
		cfg.Name = name
	}
	cfg.Description = description
	return New(cfg)
}

func (c *Console) Input() *Input {
	return c.input
}

func (c *Console) Output() *Output {
	return c.output
}

// AddCommand registers a command with the [Input].
// Registration errors are collected and returned from [Console.Run].
func (c *Console) AddCommand(name, description string, factory CommandFactory) *Console {
	c.errs.add(c.input.AddCommand(name, description, factory))
	return c
}

// AddFlag registers an application-wide [Flag] with the [Input].
// Registration errors are collected and returned from [Console.Run].
func (c *Console) AddFlag(f *Flag) *Console {
	c.errs.add(c.input.AddFlag(f))
	return c
}

func (c *Console) bootstrap() error {
	if c.bootstrapped {
		return c.errs.result()
	}
	c.bootstrapped = true
	c.errs.add(c.input.AddFlag(NewFlag(FlagHelp, "Display this help screen.").Alias('h')))
	c.errs.add(c.input.AddFlag(NewFlag(FlagQuiet, "Suppress all output.").Alias('q')))
	c.errs.add(c.input.AddFlag(NewFlag(FlagVerbose, "Set the verbosity of the application's output.").
		Alias('v').
		SetStackable(true)))

	c.output.SetStyle(StyleInfo, NewStyle("green"))
	c.output.SetStyle(StyleWarning, NewStyle("yellow"))
	c.output.SetStyle(StyleError, NewStyle("red"))
	return c.errs.result()
}

// Run bootstraps global flags and styles, then dispatches to the selected command or renders help.
//
// Configuration and parse errors are returned before any command runs, and a parse error is also reported with help output.
// Errors returned from a command are returned as-is.
func (c *Console) Run() error {
	if err := c.bootstrap(); err != nil {
		return err
	}
	name, ok := c.input.ActiveCommand()
	if !ok {
		if err := c.input.Parse(); err != nil {
			c.reportParseError(err, "")
			return err
		}
		c.RenderHelpScreen("")
		return nil
	}
	return c.runCommand(name)
}

func (c *Console) runCommand(name string) error {
	entry := c.input.commands[name]
	cmd := entry.factory()
	if cmd == nil {
		return newConfigError("%w: factory for command '%s' returned nil", ErrInvalidName, name)
	}
	c.input.beginCommand(name)
	if err := cmd.RegisterInput(c.input); err != nil {
		if !errors.Is(err, &ConfigError{}) {
			err = &ConfigError{wrapped: err}
		}
		return err
	}
	err := c.input.Parse()
	help := MustGet(c.input.Flag(FlagHelp)).Bool()
	// Flag values are assigned before arguments are checked, so help is still honored without them.
	if err != nil && !(help && errors.Is(err, ErrMissingArgument)) {
		c.reportParseError(err, name)
		return err
	}

	if help {
		c.RenderHelpScreen(name)
		return nil
	}
	if quiet := MustGet(c.input.Flag(FlagQuiet)); quiet.Exists() {
		c.output.SetVerbosity(VerbosityQuiet)
	} else {
		c.output.SetVerbosity(MustGet(c.input.Flag(FlagVerbose)).CountOr(VerbosityNormal))
	}

	if err := c.runPreRun(name); err != nil {
		return err
	}
	c.Logger().Debug("Running command", slog.String("command", name), slog.Int("verbosity", c.output.Verbosity()))
	return cmd.Run(c.input, c.output)
}

// RenderHelpScreen writes help for the named command, or for the application if name is empty.
func (c *Console) RenderHelpScreen(name string) {
	c.output.Print(NewHelpScreen(c.input).SetCommand(name).Render())
}

func (c *Console) reportParseError(err error, command string) {
	c.output.Outf("<%s>%s</%s>\n", StyleError, err.Error(), StyleError)
	c.RenderHelpScreen(command)
}

// Logger returns a [slog.Logger] writing through the console's [Output].
func (c *Console) Logger() *slog.Logger {
	return c.output.Logger()
}

// Exit runs the [Console] and exits the process with the status from [ExitCode].
func (c *Console) Exit() {
	err := c.Run()
	if err != nil && !errors.Is(err, &ParseError{}) {
		c.output.Outf("<%s>%s</%s>", StyleError, err.Error(), StyleError)
	}
	os.Exit(ExitCode(err))
}
