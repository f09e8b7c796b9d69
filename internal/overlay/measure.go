package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Measurer reports how many lines a description body needs at a fixed width.
type Measurer interface {
	MeasureHeight(body string, width int) int
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func(body string, width int) int

func (f MeasurerFunc) MeasureHeight(body string, width int) int { return f(body, width) }

// WrapMeasurer measures by word wrapping the body the same way the panel
// draws it.
type WrapMeasurer struct{}

func (WrapMeasurer) MeasureHeight(body string, width int) int {
	return len(wrapBody(body, width))
}

func wrapBody(body string, width int) []string {
	if body == "" {
		return nil
	}
	return strings.Split(ansi.Wrap(body, max(1, width), ""), "\n")
}

// TruncateLabel caps a row label at MaxRowLength grapheme clusters.
func TruncateLabel(s string) string {
	if uniseg.GraphemeClusterCount(s) <= MaxRowLength {
		return s
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n := 0; n < MaxRowLength && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return b.String()
}

// fitLabel truncates a label for a line of width cells.
func fitLabel(s string, width int) string {
	s = TruncateLabel(s)
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
