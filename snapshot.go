package main

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// snapshotMsg signals that a snapshot was written.
type snapshotMsg struct {
	path string
	err  error
}

func (m model) snapshot() (tea.Model, tea.Cmd) {
	text := m.snapshotText(time.Now())
	return m, func() tea.Msg {
		f, err := os.CreateTemp("", "overlaykit-snapshot-*.txt")
		if err != nil {
			return snapshotMsg{err: err}
		}
		path := f.Name()
		_, err = f.WriteString(text)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		return snapshotMsg{path: path, err: err}
	}
}

// snapshotText renders the screen to plain text, preceded by the layout and
// the state of every host's overlay.
func (m model) snapshotText(now time.Time) string {
	// Re-render to a fresh canvas so we get the exact current state
	canvas := uv.NewScreenBuffer(m.width, m.height)
	l := m.generateLayout()
	m.renderPanes(canvas, l)

	var b strings.Builder
	b.WriteString("=== overlaykit snapshot ===\n")
	fmt.Fprintf(&b, "Time: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Terminal: %dx%d\n", m.width, m.height)
	fmt.Fprintf(&b, "Profile: %s\n", m.activeProfile().Summary())
	fmt.Fprintf(&b, "Cursor: %s %d,%d\n", m.currentHost().ID(), m.cursor.X, m.cursor.Y)
	if m.pendingChord != "" {
		fmt.Fprintf(&b, "Pending chord: %q\n", m.pendingChord)
	}

	b.WriteString("\nLayout:\n")
	writeRect(&b, "left", l.left)
	writeRect(&b, "right", l.right)
	writeRect(&b, "log", l.log)
	writeRect(&b, "bottom", l.bottom)

	b.WriteString("\nOverlays:\n")
	for _, h := range m.hosts {
		c := m.overlays.Controller(h.ID())
		fmt.Fprintf(&b, "  %-6s %s", h.ID(), hostState(c))
		if c != nil && c.Overlay() != nil {
			o := c.Overlay()
			f := o.Frame()
			fmt.Fprintf(&b, " %s progress %.2f frame (%d,%d)-(%d,%d) rows %d highlighted %d",
				o.Placement(), c.Progress(), f.Min.X, f.Min.Y, f.Max.X, f.Max.Y,
				len(o.Rows()), c.Highlighted())
		}
		b.WriteByte('\n')
	}

	b.WriteString("\n=== Screen (plain text) ===\n")
	b.WriteString(canvas.String())
	b.WriteByte('\n')
	return b.String()
}

func writeRect(b *strings.Builder, name string, r image.Rectangle) {
	fmt.Fprintf(b, "  %-7s (%d,%d)-(%d,%d) %dx%d\n", name+":", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, r.Dx(), r.Dy())
}
