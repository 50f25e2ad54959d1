package console

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	markupPattern = regexp.MustCompile(`<(/?)([a-zA-Z][a-zA-Z0-9_-]*)>`)

	foregroundColors = map[string]color.Attribute{
		"black":   color.FgBlack,
		"red":     color.FgRed,
		"green":   color.FgGreen,
		"yellow":  color.FgYellow,
		"blue":    color.FgBlue,
		"magenta": color.FgMagenta,
		"cyan":    color.FgCyan,
		"white":   color.FgWhite,
		"gray":    color.FgHiBlack,
	}
	backgroundColors = map[string]color.Attribute{
		"black":   color.BgBlack,
		"red":     color.BgRed,
		"green":   color.BgGreen,
		"yellow":  color.BgYellow,
		"blue":    color.BgBlue,
		"magenta": color.BgMagenta,
		"cyan":    color.BgCyan,
		"white":   color.BgWhite,
		"gray":    color.BgHiBlack,
	}
	effects = map[string]color.Attribute{
		"bold":      color.Bold,
		"faint":     color.Faint,
		"italic":    color.Italic,
		"underline": color.Underline,
		"blink":     color.BlinkSlow,
		"reverse":   color.ReverseVideo,
		"conceal":   color.Concealed,
	}
)

// StyleDefinition describes how text wrapped in a style marker should be presented.
// Color and effect names that aren't recognized are ignored when rendering.
type StyleDefinition struct {
	Foreground string
	Background string
	Effects    []string
}

// NewStyle creates a [StyleDefinition] with a foreground color and optional effects like "bold" or "underline".
func NewStyle(foreground string, effects ...string) StyleDefinition {
	return StyleDefinition{Foreground: foreground, Effects: effects}
}

func (s StyleDefinition) attributes() []color.Attribute {
	var attrs []color.Attribute
	if attr, ok := foregroundColors[strings.ToLower(s.Foreground)]; ok {
		attrs = append(attrs, attr)
	}
	if attr, ok := backgroundColors[strings.ToLower(s.Background)]; ok {
		attrs = append(attrs, attr)
	}
	for _, name := range s.Effects {
		if attr, ok := effects[strings.ToLower(name)]; ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// Segment is a run of text with the name of the innermost style applied to it.
// Style is empty for unstyled text.
type Segment struct {
	Text  string
	Style string
}

type markupTag struct {
	start, end int
	name       string
	closing    bool
	matched    bool
}

// ParseMarkup splits text with embedded <name>...</name> markers into segments.
// Only markers for which known returns true are interpreted, and they may be nested.
// Unknown, unclosed, or mismatched markers are left in the text as-is.
func ParseMarkup(text string, known func(name string) bool) []Segment {
	var tags []markupTag
	for _, loc := range markupPattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[loc[4]:loc[5]]
		if known != nil && !known(name) {
			continue
		}
		tags = append(tags, markupTag{start: loc[0], end: loc[1], name: name, closing: loc[3] > loc[2]})
	}

	var open []int
	for i := range tags {
		if !tags[i].closing {
			open = append(open, i)
			continue
		}
		if len(open) > 0 && tags[open[len(open)-1]].name == tags[i].name {
			tags[open[len(open)-1]].matched = true
			tags[i].matched = true
			open = open[:len(open)-1]
		}
	}

	var (
		segments []Segment
		styles   []string
		pos      int
	)
	emit := func(end int) {
		if end <= pos {
			return
		}
		var style string
		if len(styles) > 0 {
			style = styles[len(styles)-1]
		}
		segments = append(segments, Segment{Text: text[pos:end], Style: style})
	}
	for _, tag := range tags {
		if !tag.matched {
			continue
		}
		emit(tag.start)
		pos = tag.end
		if tag.closing {
			styles = styles[:len(styles)-1]
		} else {
			styles = append(styles, tag.name)
		}
	}
	emit(len(text))
	return segments
}

// Renderer turns styled text into its presentation for a particular target.
type Renderer interface {
	Render(text string, style StyleDefinition) string
}

var (
	_ Renderer = ANSIRenderer{}
	_ Renderer = PlainRenderer{}
)

// ANSIRenderer wraps text in terminal escape sequences.
type ANSIRenderer struct{}

func (ANSIRenderer) Render(text string, style StyleDefinition) string {
	attrs := style.attributes()
	if len(attrs) == 0 {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// PlainRenderer drops styling, which is appropriate for pipes and files.
type PlainRenderer struct{}

func (PlainRenderer) Render(text string, _ StyleDefinition) string {
	return text
}
