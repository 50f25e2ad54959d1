package console

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bracketRenderer struct{}

func (bracketRenderer) Render(text string, style StyleDefinition) string {
	return "[" + style.Foreground + ":" + text + "]"
}

func testOutput() (*Output, *bytes.Buffer) {
	var buf bytes.Buffer
	out := NewOutput()
	out.Redirect(&buf)
	return out, &buf
}

func TestOutput_Verbosity(t *testing.T) {
	out, buf := testOutput()
	assert.Equal(t, VerbosityNormal, out.Verbosity())

	out.Out("normal")
	out.OutAt(2, "detail")
	assert.Equal(t, "normal\n", buf.String())

	buf.Reset()
	out.SetVerbosity(2)
	out.Out("normal")
	out.OutAt(2, "detail")
	out.OutAt(3, "trace")
	assert.Equal(t, "normal\ndetail\n", buf.String())

	buf.Reset()
	out.SetVerbosity(VerbosityQuiet)
	out.Out("normal")
	out.OutAt(0, "even level zero")
	out.Print("print")
	assert.Empty(t, buf.String(), "Quiet should suppress everything")

	out.SetVerbosity(-5)
	assert.Equal(t, VerbosityQuiet, out.Verbosity())
	out.SetVerbosity(42)
	assert.Equal(t, 42, out.Verbosity(), "There's no upper bound")
}

func TestOutput_VerbosityCheckedPerWrite(t *testing.T) {
	out, buf := testOutput()
	out.SetVerbosity(VerbosityQuiet)
	out.Out("hidden")
	out.SetVerbosity(VerbosityNormal)
	out.Out("shown")
	assert.Equal(t, "shown\n", buf.String())
}

func TestOutput_Printing(t *testing.T) {
	out, buf := testOutput()
	out.Print("a", "b")
	out.Printf(" %d", 1)
	out.Println()
	out.Outf("%s=%d", "x", 2)
	assert.Equal(t, "ab 1\nx=2\n", buf.String())
}

func TestOutput_Styles(t *testing.T) {
	out, buf := testOutput()
	out.SetRenderer(bracketRenderer{})
	out.SetStyle("info", NewStyle("green"))
	out.Out("<info>ok</info> <nope>raw</nope>")
	assert.Equal(t, "[green:ok] <nope>raw</nope>\n", buf.String())

	buf.Reset()
	out.SetStyle("info", NewStyle("blue"))
	out.Out("<info>ok</info>")
	assert.Equal(t, "[blue:ok]\n", buf.String(), "Styles should be overwritten")

	style, ok := out.Style("info")
	assert.True(t, ok)
	assert.Equal(t, "blue", style.Foreground)
	_, ok = out.Style("nope")
	assert.False(t, ok)
}

func TestOutput_RendererSelection(t *testing.T) {
	out, buf := testOutput()
	out.SetStyle("info", NewStyle("green"))
	out.Out("<info>ok</info>")
	assert.Equal(t, "ok\n", buf.String(), "Non-terminal writers should get plain text")

	out.forceColor = true
	assert.Equal(t, ANSIRenderer{}, out.activeRenderer())
	out.noColor = true
	assert.Equal(t, PlainRenderer{}, out.activeRenderer(), "NoColor takes precedence over ForceColor")
	out.SetRenderer(bracketRenderer{})
	assert.Equal(t, bracketRenderer{}, out.activeRenderer(), "An explicit renderer takes precedence")
}

func TestOutput_Logger(t *testing.T) {
	out, buf := testOutput()
	out.SetRenderer(bracketRenderer{})
	out.SetStyle("error", NewStyle("red"))
	out.SetStyle("warning", NewStyle("yellow"))
	out.SetStyle("info", NewStyle("green"))
	log := out.Logger()

	log.Error("Failed", "code", 3)
	log.Info("Hidden at normal verbosity")
	assert.Equal(t, "[red:ERROR] Failed code=3\n", buf.String())

	buf.Reset()
	out.SetVerbosity(2)
	log.With("cmd", "serve").WithGroup("req").Info("Started", "port", 80)
	log.Debug("Hidden below verbosity 3")
	assert.Equal(t, "[green:INFO] Started cmd=serve req.port=80\n", buf.String())

	buf.Reset()
	out.SetVerbosity(3)
	log.Debug("Trace", slog.Group("g", slog.String("k", "v")))
	log.Warn("Careful")
	assert.Equal(t, "[green:DEBUG] Trace g.k=v\n[yellow:WARN] Careful\n", buf.String())

	buf.Reset()
	out.SetVerbosity(VerbosityQuiet)
	log.Error("Nothing")
	assert.Empty(t, buf.String())
}
