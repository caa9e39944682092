package render

import "github.com/charmbracelet/lipgloss"

// palette is the fixed tag color rotation: the seven ANSI colors other
// than black, in terminal order. The order never changes between runs so
// the same tag sequence colors the same way every time.
var palette = [...]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
	lipgloss.NewStyle().Foreground(lipgloss.Color("7")), // white
}

// TagColors assigns each distinct tag a stable palette color. The first
// observation of a tag derives its color from the tag's byte content;
// later observations return the cached pick. Entries are never evicted or
// reassigned. Not goroutine-safe; the single-threaded driver is the only
// writer.
type TagColors struct {
	assigned map[string]int
}

// NewTagColors returns an empty assignment table.
func NewTagColors() *TagColors {
	return &TagColors{assigned: make(map[string]int)}
}

// For returns the style for tag, assigning one on first sight.
func (c *TagColors) For(tag string) lipgloss.Style {
	idx, ok := c.assigned[tag]
	if !ok {
		idx = paletteIndex(tag)
		c.assigned[tag] = idx
	}
	return palette[idx]
}

// paletteIndex hashes the tag's bytes onto the palette. Pure, so two tags
// with the same byte sum residue share a color.
func paletteIndex(tag string) int {
	sum := 0
	for i := 0; i < len(tag); i++ {
		sum += int(tag[i])
	}
	return sum % len(palette)
}
