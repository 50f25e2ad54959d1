/*
Package console provides a small framework for CLI applications with named commands, global flags, and styled output.

The policies for how this operates are straightforward.

  - User-visible output goes to STDERR by default. This is handled by a configurable [Output].
  - Global flags --help (-h), --quiet (-q), and --verbose (-v) are always available.
  - Flags may be interspersed with positional arguments, and "--" ends flag parsing.
  - A command is only constructed if the command line selects it, so registration stays cheap.

# Invocation

Invoking an application always follows this form:

	APP_NAME [COMMAND] [FLAGS...] [ARGS...]

The first token that isn't a flag and matches a registered command name selects the command.
If no command is selected, then the application help screen is rendered, and nothing else runs.

# Commands

A [Command] declares its own flags and arguments in RegisterInput, which is called before parsing.
Once parsing succeeds, --help renders the command's help instead of running it, --quiet sets verbosity to 0, and otherwise the number of --verbose occurrences sets the verbosity (1 by default).
Only then is Run called.

# Output

[Output] expands markers like <info>done</info> using registered styles.
The "info", "warning", and "error" styles are registered by default, and markers for styles that aren't registered are written as-is.
Escape sequences are only written when the output is a terminal, unless overridden with [Config] or [Output.SetRenderer].

Messages may be written at a higher level with [Output.OutAt], and [Output.Logger] maps log levels to verbosity levels.
*/
package console
