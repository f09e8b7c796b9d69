package main

import (
	tea "charm.land/bubbletea/v2"
	"github.com/golangsnmp/overlaykit/internal/overlay"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil

	case overlay.FrameMsg:
		cmd, _ := m.overlays.Update(msg)
		sel := m.handleSelections()
		return m, tea.Batch(cmd, sel)

	case tea.MouseClickMsg:
		m.pendingChord = ""
		if m.dialog.isOpen() {
			m.dialog.toggle(m.dialog.kind)
			return m, nil
		}
		m.tooltip.hide()
		return m.handleMouseClick(msg)

	case tea.MouseWheelMsg:
		m.pendingChord = ""
		if m.dialog.isOpen() {
			return m, nil
		}
		return m.handleMouseWheel(msg)

	case tea.MouseMotionMsg:
		if m.dialog.isOpen() {
			return m, nil
		}
		return m.handleMouseMotion(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case statusMsg:
		cmd := m.status.set(msg)
		return m, cmd

	case clearStatusMsg:
		m.status.clear(msg.seq)
		return m, nil

	case showTooltipMsg:
		m.tooltip.show(msg.seq)
		return m, nil

	case snapshotMsg:
		if msg.err != nil {
			return m, setStatus(statusError, "Snapshot failed: "+msg.err.Error())
		}
		return m, setStatus(statusSuccess, "Snapshot: "+msg.path)
	}

	// cursor blink and other input internals
	if m.ruleBar.active {
		var cmd tea.Cmd
		m.ruleBar.input, cmd = m.ruleBar.input.Update(msg)
		return m, cmd
	}
	return m, nil
}
