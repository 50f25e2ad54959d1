package console

import (
	"fmt"
	"strings"
)

// HelpScreen renders usage information for an [Input], optionally focused on a single command.
// Rendering has no side effects, the caller decides where the text goes.
type HelpScreen struct {
	input   *Input
	command string
}

func NewHelpScreen(in *Input) *HelpScreen {
	return &HelpScreen{input: in}
}

// SetCommand focuses the [HelpScreen] on the named command.
// Names that aren't registered render the application help instead.
func (h *HelpScreen) SetCommand(name string) *HelpScreen {
	h.command = name
	return h
}

// Render returns the help text.
func (h *HelpScreen) Render() string {
	if info, ok := h.input.command(h.command); ok {
		return h.renderCommand(info)
	}
	return h.renderApplication()
}

func (h *HelpScreen) renderApplication() string {
	var buf strings.Builder
	in := h.input
	if len(in.description) > 0 {
		buf.WriteString(in.description + "\n\n")
	}
	commands := in.Commands()
	buf.WriteString("USAGE:\n")
	if len(commands) > 0 {
		buf.WriteString(fmt.Sprintf("  %s COMMAND [FLAGS] [ARGS]\n", in.name))
	} else {
		buf.WriteString(fmt.Sprintf("  %s [FLAGS]\n", in.name))
	}
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(in.flagUsages(""))
	if len(commands) > 0 {
		rows := make([][2]string, len(commands))
		for i, cmd := range commands {
			rows[i] = [2]string{cmd.Name, cmd.Description}
		}
		buf.WriteString("\nCOMMANDS\n")
		buf.WriteString(columns(rows))
	}
	return buf.String()
}

func (h *HelpScreen) renderCommand(info CommandInfo) string {
	var buf strings.Builder
	in := h.input
	if len(info.Description) > 0 {
		buf.WriteString(info.Description + "\n\n")
	}
	usage := []string{in.name, info.Name, "[FLAGS]"}
	for _, arg := range in.arguments {
		usage = append(usage, arg.usage())
	}
	buf.WriteString("USAGE:\n  " + strings.TrimSpace(strings.Join(usage, " ")) + "\n")
	if len(in.arguments) > 0 {
		rows := make([][2]string, len(in.arguments))
		for i, arg := range in.arguments {
			marker := "(optional)"
			if arg.required {
				marker = "(required)"
			}
			rows[i] = [2]string{arg.name, strings.TrimSpace(arg.description + " " + marker)}
		}
		buf.WriteString("\nARGUMENTS\n")
		buf.WriteString(columns(rows))
	}
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(in.flagUsages(info.Name))
	return buf.String()
}

// columns aligns name and description pairs, one per line.
func columns(rows [][2]string) string {
	var (
		buf    strings.Builder
		maxLen int
	)
	for _, row := range rows {
		if l := len(row[0]); l > maxLen {
			maxLen = l
		}
	}
	fmtStr := fmt.Sprintf("  %%-%ds   %%s\n", maxLen)
	for _, row := range rows {
		buf.WriteString(fmt.Sprintf(fmtStr, row[0], row[1]))
	}
	return buf.String()
}
