package main

import (
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/golangsnmp/overlaykit/internal/overlay"
)

var (
	borderGrey   = lipgloss.NewStyle().Foreground(palette.Subtle)
	borderYellow = lipgloss.NewStyle().Foreground(palette.Yellow)
)

const (
	gridStepX = 4
	gridStepY = 2
)

func (m model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.View{
			Content:   "Loading...",
			AltScreen: true,
			MouseMode: tea.MouseModeAllMotion,
		}
	}

	canvas := uv.NewScreenBuffer(m.width, m.height)
	l := m.cachedLayout

	// Full-screen dialogs
	switch m.dialog.kind {
	case dialogHelp:
		m.dialog.drawCentered(canvas, l.area, m.renderFullHelp())
		return m.view(canvas)
	case dialogProfiles:
		m.dialog.drawCentered(canvas, l.area, m.renderProfileList())
		return m.view(canvas)
	}

	// Main pane content and overlays (shared with snapshot)
	m.renderPanes(canvas, l)

	// Chord hint popup
	if m.pendingChord != "" {
		for _, group := range chordGroups() {
			if group.prefix == m.pendingChord {
				box := styles.Dialog.Box.Render(renderChordHint(group))
				w := lipgloss.Width(box)
				h := lipgloss.Height(box)
				// Position bottom-center, above the hint bar
				rect := clampRect((l.area.Dx()-w)/2, l.bottom.Min.Y-h, w, h, l.area)
				uv.NewStyledString(box).Draw(canvas, rect)
				break
			}
		}
	}

	if m.tooltip.visible && !m.overlays.Active() {
		m.tooltip.draw(canvas, l.area)
	}

	return m.view(canvas)
}

func (m model) view(canvas uv.ScreenBuffer) tea.View {
	return tea.View{
		Content:   canvas.Render(),
		AltScreen: true,
		MouseMode: tea.MouseModeAllMotion,
	}
}

// renderPanes draws the header, borders, host panes, event log, overlays
// and bottom bar onto the canvas. Shared by View() and snapshot().
func (m model) renderPanes(canvas uv.ScreenBuffer, l appLayout) {
	uv.NewStyledString(m.renderHeader(l.header.Dx())).Draw(canvas, l.header)

	m.drawBorders(canvas, l)

	for i, h := range m.hosts {
		var cursor *image.Point
		if i == m.activeHost {
			cursor = &m.cursor
		}
		uv.NewStyledString(renderHostPane(h, cursor)).Draw(canvas, h.rect)
	}

	uv.NewStyledString(renderPane(l.log, m.events.view())).Draw(canvas, l.log)

	// Panels go above every pane but below the bottom bar.
	m.overlays.Draw(canvas)

	uv.NewStyledString(m.renderBottom()).Draw(canvas, l.bottom)
}

// renderHostPane draws a dotted grid with the pane name on the first row and
// the keyboard cursor, if any.
func renderHostPane(h *hostPane, cursor *image.Point) string {
	w, ht := h.rect.Dx(), h.rect.Dy()
	if w <= 0 || ht <= 0 {
		return ""
	}

	titleStyle := styles.Host.Title
	if cursor != nil {
		titleStyle = styles.Host.TitleActive
	}

	var b strings.Builder
	for y := range ht {
		if y > 0 {
			b.WriteByte('\n')
		}
		if y == 0 {
			title := fmt.Sprintf(" %s %dx%d", h.ID(), w, ht)
			b.WriteString(padRight(titleStyle.Render(title), w))
			continue
		}
		cx := -1
		if cursor != nil && cursor.Y == y {
			cx = cursor.X
		}
		b.WriteString(gridLine(y, w, cx))
	}
	return b.String()
}

// gridLine renders one row of the dot grid with the cursor at column cx,
// or no cursor when cx is negative.
func gridLine(y, width, cx int) string {
	row := func(from, to int) string {
		var s strings.Builder
		for x := from; x < to; x++ {
			if y%gridStepY == 0 && x%gridStepX == 0 {
				s.WriteString(GridDot)
			} else {
				s.WriteByte(' ')
			}
		}
		return styles.Host.Grid.Render(s.String())
	}
	if cx < 0 || cx >= width {
		return row(0, width)
	}
	return row(0, cx) + styles.Host.Cursor.Render(CursorMark) + row(cx+1, width)
}

func (m model) renderHeader(width int) string {
	brand := styles.Header.Brand.Render("overlaykit")
	diag := styles.Header.Diagonal.Render(" " + strings.Repeat(DiagFill, 3) + " ")
	prof := styles.Label.Render("profile ") + styles.Value.Render(m.activeProfile().Name)

	leftPart := " " + brand + diag + prof
	right := styles.Label.Render(m.overlaySummary())

	gap := max(1, width-lipgloss.Width(leftPart)-lipgloss.Width(right)-2)
	line := leftPart + strings.Repeat(" ", gap) + right + " "
	return styles.Header.Bar.Width(width).Render(line)
}

// overlaySummary reports the lifecycle state of each host, e.g.
// "left presented menu  right idle".
func (m model) overlaySummary() string {
	parts := make([]string, 0, len(m.hosts))
	for _, h := range m.hosts {
		parts = append(parts, h.ID()+" "+hostState(m.overlays.Controller(h.ID())))
	}
	return strings.Join(parts, "  ")
}

func hostState(c *overlay.Controller) string {
	if c == nil || c.Overlay() == nil {
		return overlay.Idle.String()
	}
	return c.State().String() + " " + c.Overlay().Format().String()
}

// renderBottom builds the rule bar, status and key hints.
func (m model) renderBottom() string {
	var lines []string
	if m.ruleBar.active {
		lines = append(lines, m.ruleBar.view())
	}
	if m.status.current != nil {
		lines = append(lines, m.status.view())
	} else {
		lines = append(lines, m.help.View(m.keys))
	}
	lines = append(lines, m.renderMouseHints())
	return strings.Join(lines, "\n")
}

func (m model) renderMouseHints() string {
	ks := styles.Value.Bold(true)
	ds := styles.Label
	sep := styles.Help.Sep.Render(" │ ")

	h := func(key, desc string) string {
		return ks.Render(key) + " " + ds.Render(desc)
	}
	return h("right click", "menu") + sep +
		h("middle click", "description") + sep +
		h("edge click", "side menu") + sep +
		h("wheel", "scroll log")
}

// renderPane wraps content in the standard pane style sized to the given rect.
func renderPane(rect image.Rectangle, content string) string {
	return styles.Pane.
		Width(rect.Dx()).
		Height(rect.Dy()).
		Render(content)
}

// drawBorders renders thin box-drawing borders around each pane section.
// The border is grey by default and yellow around the pane with the
// keyboard cursor.
func (m model) drawBorders(canvas uv.ScreenBuffer, l appLayout) {
	topY := l.left.Min.Y - 1 // row above content
	botY := l.log.Max.Y      // row below content
	sepY := l.logSep.Min.Y   // row between hosts and log
	leftX := l.left.Min.X - 1
	rightX := l.right.Max.X
	midX := l.sep.Min.X

	// Guard against degenerate layouts
	if botY <= sepY || sepY <= topY || midX <= leftX+1 || rightX <= midX+1 {
		return
	}

	leftStyle, rightStyle := borderGrey, borderGrey
	if m.activeHost == 0 {
		leftStyle = borderYellow
	} else {
		rightStyle = borderYellow
	}

	// Top border: ┌───┬───┐
	topLine := leftStyle.Render("┌"+strings.Repeat("─", midX-leftX-1)) +
		borderYellow.Render("┬") +
		rightStyle.Render(strings.Repeat("─", rightX-midX-1)+"┐")
	uv.NewStyledString(topLine).Draw(canvas, image.Rect(leftX, topY, rightX+1, topY+1))

	// Separator above the log: ├───┴───┤
	sepLine := leftStyle.Render("├"+strings.Repeat("─", midX-leftX-1)) +
		borderYellow.Render("┴") +
		rightStyle.Render(strings.Repeat("─", rightX-midX-1)+"┤")
	uv.NewStyledString(sepLine).Draw(canvas, image.Rect(leftX, sepY, rightX+1, sepY+1))

	// Bottom border: └───────┘
	botLine := borderGrey.Render("└" + strings.Repeat("─", rightX-leftX-1) + "┘")
	uv.NewStyledString(botLine).Draw(canvas, image.Rect(leftX, botY, rightX+1, botY+1))

	drawVerticalBorder(canvas, leftX, topY+1, sepY, leftStyle)
	drawVerticalBorder(canvas, midX, topY+1, sepY, borderYellow)
	drawVerticalBorder(canvas, rightX, topY+1, sepY, rightStyle)
	drawVerticalBorder(canvas, leftX, sepY+1, botY, borderGrey)
	drawVerticalBorder(canvas, rightX, sepY+1, botY, borderGrey)
}

// drawVerticalBorder draws │ characters in a column from startY (inclusive) to endY (exclusive).
func drawVerticalBorder(canvas uv.ScreenBuffer, x, startY, endY int, style lipgloss.Style) {
	h := endY - startY
	if h <= 0 {
		return
	}
	var b strings.Builder
	ch := style.Render("│")
	for i := range h {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ch)
	}
	uv.NewStyledString(b.String()).Draw(canvas, image.Rect(x, startY, x+1, endY))
}

// renderFullHelp builds the help dialog: key bindings, chords, mouse and
// the condition reference.
func (m model) renderFullHelp() string {
	hdr := styles.Header.Info
	ks := styles.Value.Bold(true)
	ds := styles.Label

	h := func(key, desc string) string {
		return "  " + ks.Render(key) + "  " + ds.Render(desc)
	}

	var b strings.Builder
	b.WriteString(hdr.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")

	for _, group := range chordGroups() {
		b.WriteString(hdr.Render(group.label + " (" + group.prefix + " ...)"))
		b.WriteString("\n")
		for _, a := range group.actions {
			b.WriteString(h(group.prefix+" "+a.key, a.label))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(hdr.Render("Open panel"))
	b.WriteString("\n")
	b.WriteString(h("j/k, ↑↓", "move highlight"))
	b.WriteString("\n")
	b.WriteString(h("enter", "select"))
	b.WriteString("\n")
	b.WriteString(h("esc", "dismiss"))
	b.WriteString("\n\n")

	b.WriteString(renderRuleHelp())
	return b.String()
}
