package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	VerbosityQuiet  = 0 // VerbosityQuiet suppresses all output.
	VerbosityNormal = 1 // VerbosityNormal is the default level, and the level of messages written without an explicit level.
)

// Output writes user-facing text, expanding <style> markers and suppressing messages above the current verbosity.
//
// By default output goes to STDERR, and styles are only rendered as escape sequences when writing to a terminal.
type Output struct {
	out        io.Writer
	verbosity  int
	styles     map[string]StyleDefinition
	renderer   Renderer
	noColor    bool
	forceColor bool
}

func NewOutput() *Output {
	return &Output{
		out:       os.Stderr,
		verbosity: VerbosityNormal,
		styles:    map[string]StyleDefinition{},
	}
}

// Redirect sends output to a different writer.
func (o *Output) Redirect(writer io.Writer) {
	o.out = writer
}

// SetRenderer overrides automatic renderer selection. Passing nil restores it.
func (o *Output) SetRenderer(renderer Renderer) {
	o.renderer = renderer
}

// SetVerbosity sets the level that messages are checked against. Negative values are treated as quiet.
// There's no upper bound, higher values allow progressively more detail.
func (o *Output) SetVerbosity(verbosity int) {
	if verbosity < VerbosityQuiet {
		verbosity = VerbosityQuiet
	}
	o.verbosity = verbosity
}

func (o *Output) Verbosity() int {
	return o.verbosity
}

// SetStyle registers or replaces the named style used for <name>...</name> markers.
func (o *Output) SetStyle(name string, style StyleDefinition) {
	o.styles[name] = style
}

// Style returns the named style, if registered.
func (o *Output) Style(name string) (StyleDefinition, bool) {
	style, ok := o.styles[name]
	return style, ok
}

func (o *Output) activeRenderer() Renderer {
	switch {
	case o.renderer != nil:
		return o.renderer
	case o.noColor:
		return PlainRenderer{}
	case o.forceColor:
		return ANSIRenderer{}
	}
	if f, ok := o.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ANSIRenderer{}
	}
	return PlainRenderer{}
}

// Format expands style markers in text using the current renderer.
// Markers for styles that aren't registered are left in the text.
func (o *Output) Format(text string) string {
	renderer := o.activeRenderer()
	segments := ParseMarkup(text, func(name string) bool {
		_, ok := o.styles[name]
		return ok
	})
	var buf strings.Builder
	for _, seg := range segments {
		if len(seg.Style) == 0 {
			buf.WriteString(seg.Text)
			continue
		}
		buf.WriteString(renderer.Render(seg.Text, o.styles[seg.Style]))
	}
	return buf.String()
}

// Enabled reports whether a message at the given level would be written.
func (o *Output) Enabled(level int) bool {
	return o.verbosity >= level && o.verbosity > VerbosityQuiet
}

func (o *Output) write(level int, text string) {
	if !o.Enabled(level) {
		return
	}
	_, _ = io.WriteString(o.out, o.Format(text))
}

// Out writes text followed by a new line at [VerbosityNormal].
func (o *Output) Out(text string) {
	o.OutAt(VerbosityNormal, text)
}

// OutAt writes text followed by a new line, if the current verbosity is at least level.
func (o *Output) OutAt(level int, text string) {
	o.write(level, text+"\n")
}

// Outf formats and writes a line at [VerbosityNormal].
func (o *Output) Outf(format string, args ...any) {
	o.OutAt(VerbosityNormal, fmt.Sprintf(format, args...))
}

func (o *Output) Print(msg ...any) {
	o.write(VerbosityNormal, fmt.Sprint(msg...))
}

func (o *Output) Printf(format string, args ...any) {
	o.write(VerbosityNormal, fmt.Sprintf(format, args...))
}

func (o *Output) Println(msg ...any) {
	o.write(VerbosityNormal, fmt.Sprintln(msg...))
}

// Logger returns a [slog.Logger] that writes through this [Output].
// See [Output.LogHandler] for how levels map to verbosity.
func (o *Output) Logger() *slog.Logger {
	return slog.New(o.LogHandler())
}
