package main

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/golangsnmp/overlaykit/internal/overlay"
)

// sideMenuEdge is how many columns at the outer edge of a pane open the
// side menu on a left click.
const sideMenuEdge = 2

const wheelStep = 3

func (m model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.overlays.Update(msg); handled {
		m.tooltip.hide()
		return m, cmd
	}
	if m.overlays.Active() {
		// suppress hints while a panel is up
		m.tooltip.hide()
		return m, nil
	}

	pt := image.Pt(msg.X, msg.Y)
	h := m.hostAt(pt)
	if h == nil {
		m.tooltip.hide()
		return m, nil
	}
	if m.tooltip.host == h && m.tooltip.at == pt {
		return m, nil
	}
	cmd := m.tooltip.startDelay(h, pt)
	return m, cmd
}

func (m model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	cmd, handled := m.overlays.Update(msg)
	sel := m.handleSelections()
	if handled {
		return m, tea.Batch(cmd, sel)
	}

	pt := image.Pt(msg.X, msg.Y)
	h := m.hostAt(pt)
	if h == nil {
		return m, tea.Batch(cmd, sel)
	}
	m.focusPoint(h, pt)

	var open tea.Cmd
	switch {
	case msg.Button == tea.MouseRight:
		open = m.presentAt(h, overlay.MenuOverlay, pt)
	case msg.Button == tea.MouseMiddle:
		open = m.presentAt(h, overlay.DescriptionOverlay, pt)
	case msg.Button == tea.MouseLeft && onOuterEdge(h, pt):
		open = m.presentAt(h, overlay.SideMenu, pt)
	}
	return m, tea.Batch(cmd, sel, open)
}

// onOuterEdge reports whether pt is on the few columns of h nearest its
// left or right side.
func onOuterEdge(h *hostPane, pt image.Point) bool {
	r := h.Bounds()
	return pt.X < r.Min.X+sideMenuEdge || pt.X >= r.Max.X-sideMenuEdge
}

func (m model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if !image.Pt(msg.X, msg.Y).In(m.cachedLayout.log) {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		m.events.lv.ScrollBy(-wheelStep)
	case tea.MouseWheelDown:
		m.events.lv.ScrollBy(wheelStep)
	}
	return m, nil
}
