package main

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/golangsnmp/overlaykit/internal/overlay"
)

func (m model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.dialog.isOpen() {
		return m.handleDialogKey(msg)
	}
	if m.ruleBar.active {
		return m.handleRuleBarKey(msg)
	}

	// An active overlay takes every key.
	if cmd, handled := m.overlays.Update(msg); handled {
		sel := m.handleSelections()
		return m, tea.Batch(cmd, sel)
	}

	if m.pendingChord != "" {
		prefix := m.pendingChord
		m.pendingChord = ""
		return m.resolveChord(prefix, msg.String())
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.dialog.toggle(dialogHelp)
	case key.Matches(msg, m.keys.Profiles):
		m.dialog.toggle(dialogProfiles)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.SwitchHost):
		m.activeHost = (m.activeHost + 1) % len(m.hosts)
		m.moveCursor(0, 0)
	case key.Matches(msg, m.keys.ChordOpen):
		m.pendingChord = msg.String()
	case key.Matches(msg, m.keys.NextProfile):
		cmd := m.nextProfile()
		return m, cmd
	case key.Matches(msg, m.keys.Rule):
		m.ruleBar.activate()
		m.ruleBar.evaluate(m.cursorVars())
		m.updateLayout()
		cmd := m.ruleBar.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Copy):
		if m.lastLabel == "" {
			return m, setStatus(statusWarn, "Nothing selected yet")
		}
		return m, copyText(m.lastLabel)
	case key.Matches(msg, m.keys.DismissAll):
		return m, m.overlays.DismissAll()
	case key.Matches(msg, m.keys.ClearLog):
		m.events.clear()
	case key.Matches(msg, m.keys.Snapshot):
		return m.snapshot()
	}
	if m.ruleBar.input.Value() != "" {
		m.ruleBar.evaluate(m.cursorVars())
	}
	return m, nil
}

// resolveChord dispatches a chord second-key press.
func (m model) resolveChord(prefix, k string) (tea.Model, tea.Cmd) {
	a, ok := findChord(prefix, k)
	if !ok {
		// Unrecognized second key, swallow it
		return m, nil
	}
	cmd := m.presentAt(m.currentHost(), a.format, m.cursorPoint())
	return m, cmd
}

func (m model) handleRuleBarKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.ruleBar.deactivate()
		m.updateLayout()
		return m, nil
	case "tab":
		m.ruleBar.tabComplete()
		m.ruleBar.evaluate(m.cursorVars())
		return m, nil
	}
	m.ruleBar.tc.reset()
	var cmd tea.Cmd
	m.ruleBar.input, cmd = m.ruleBar.input.Update(msg)
	m.ruleBar.evaluate(m.cursorVars())
	return m, cmd
}

func (m model) handleDialogKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.dialog.kind = dialogNone
		return m, nil
	}
	if m.dialog.kind != dialogProfiles {
		return m, nil
	}
	switch msg.String() {
	case "p", "j", "down":
		cmd := m.nextProfile()
		return m, cmd
	case "s":
		return m, m.saveProfiles()
	}
	return m, nil
}

// cursorVars returns the condition variables for a menu at the keyboard
// cursor.
func (m *model) cursorVars() map[string]any {
	return activation(m.currentHost(), overlay.MenuOverlay, m.cursorPoint())
}

// saveProfiles writes the profiles with the current one marked active.
func (m *model) saveProfiles() tea.Cmd {
	store := m.profiles
	store.Active = m.activeProfile().Name
	return func() tea.Msg {
		if err := store.Save(); err != nil {
			return statusMsg{typ: statusError, text: "Save failed: " + err.Error()}
		}
		return statusMsg{typ: statusSuccess, text: fmt.Sprintf("Saved %d profiles to %s", len(store.Profiles), store.Path())}
	}
}
