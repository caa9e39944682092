package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/five82/lcat/internal/logcat"
)

const (
	tagWidth     = 10
	levelWidth   = 3
	defaultWidth = 80
)

// levelStyles is the static level column coloring, one fixed pair for the
// whole run. Letters sit on a colored block so severity reads at a glance.
var levelStyles = map[logcat.Level]lipgloss.Style{
	logcat.Verbose: lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(lipgloss.Color("0")),
	logcat.Debug:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4")),
	logcat.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
	logcat.Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
	logcat.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1")),
}

// Renderer formats records into colorized terminal lines: tag column,
// level block, wrapped message.
type Renderer struct {
	colors *TagColors
	wrap   bool
	width  func() int
}

// New returns a Renderer that wraps messages to the live terminal width.
func New() *Renderer {
	return &Renderer{
		colors: NewTagColors(),
		wrap:   true,
		width:  TerminalWidth,
	}
}

// SetWrap toggles message wrapping.
func (r *Renderer) SetWrap(on bool) { r.wrap = on }

// SetWidthFunc overrides the terminal width query. Tests use a fixed
// width; the query runs fresh for every record so live resizes take
// effect between lines.
func (r *Renderer) SetWidthFunc(fn func() int) { r.width = fn }

// Format renders one accepted record as a single self-contained line
// (possibly with embedded wrapped continuations). Every colored segment
// resets styling after its content.
func (r *Renderer) Format(rec logcat.Record) string {
	// Truncate and pad by runes, not bytes, so multibyte tags stay valid.
	tag := rec.Tag
	if runes := []rune(tag); len(runes) > tagWidth {
		// Keep the trailing characters; the suffix is the specific part
		// of a dotted or prefixed tag.
		tag = string(runes[len(runes)-tagWidth:])
	} else {
		tag = strings.Repeat(" ", tagWidth-len(runes)) + tag
	}
	tagCol := r.colors.For(rec.Tag).Render(tag)

	levelCol := levelStyles[rec.Level].Render(center(rec.Level.Letter(), levelWidth))

	msg := rec.Message
	if r.wrap {
		indent := tagWidth + 1 + levelWidth + 1
		if w := r.width(); w-indent > 0 {
			msg = Wrap(msg, indent, w)
		}
	}

	return tagCol + " " + levelCol + " " + msg
}

// TerminalWidth reports the current stdout width, falling back to a fixed
// default when no terminal is attached.
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
