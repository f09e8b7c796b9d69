package main

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/golangsnmp/overlaykit/internal/overlay"
)

const tooltipDelay = 300 * time.Millisecond

type showTooltipMsg struct {
	seq uint64 // matches tooltipModel.seq to discard stale timer firings
}

// tooltipModel previews where an overlay would open from the hovered cell.
type tooltipModel struct {
	host    *hostPane
	at      image.Point // screen cell under the mouse
	visible bool
	pending bool   // waiting for delay timer
	seq     uint64 // incremented on each startDelay call
}

func (t *tooltipModel) hide() {
	t.visible = false
	t.pending = false
	t.host = nil
}

func (t *tooltipModel) startDelay(h *hostPane, at image.Point) tea.Cmd {
	t.host = h
	t.at = at
	t.visible = false
	t.pending = true
	t.seq++
	seq := t.seq
	return tea.Tick(tooltipDelay, func(time.Time) tea.Msg {
		return showTooltipMsg{seq: seq}
	})
}

func (t *tooltipModel) show(seq uint64) {
	if t.pending && t.host != nil && t.seq == seq {
		t.visible = true
		t.pending = false
	}
}

func (t *tooltipModel) draw(canvas uv.ScreenBuffer, area image.Rectangle) {
	if !t.visible || t.host == nil {
		return
	}
	content := t.buildContent()
	if content == "" {
		return
	}

	content = padContentBg(content, palette.BgLighter)
	box := styles.Tooltip.Box.Render(content)
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)

	// Position near the mouse, clamped to screen
	rect := clampRect(t.at.X+2, t.at.Y, w, h, area)
	uv.NewStyledString(box).Draw(canvas, rect)
}

func (t *tooltipModel) buildContent() string {
	h := t.host
	bg := palette.BgLighter
	local := h.local(t.at)
	p := overlay.Resolve(t.at, h.Bounds())

	var b strings.Builder
	dot := styles.Host.Cursor.Background(bg).Render(IconPending)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	b.WriteString(dot + space + styles.Value.Background(bg).Render(fmt.Sprintf("%s %d,%d", h.ID(), local.X, local.Y)))
	b.WriteByte('\n')
	b.WriteString(styles.Tooltip.Label.Background(bg).Render("opens ") +
		styles.Tooltip.Value.Background(bg).Render(p.String()))
	return b.String()
}
