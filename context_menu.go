package main

import (
	"errors"
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/golangsnmp/overlaykit/internal/overlay"
	"github.com/muesli/termenv"
)

// Side menu rows the demo acts on. Anything else is just reported.
const (
	actionQuit     = "Quit demo"
	actionProfiles = "Profiles"
	actionInspect  = "Inspect cell"
	actionEventLog = "Event log"
	actionCopy     = "Copy"
)

// presentAt opens an overlay of format on h, anchored at the screen point
// touch, with content from the active profile.
func (m *model) presentAt(h *hostPane, format overlay.Format, touch image.Point) tea.Cmd {
	p := m.activeProfile()
	a := p.Appearance()
	d := overlay.Weak(h)

	var (
		cmd  tea.Cmd
		err  error
		errs []error
	)
	switch format {
	case overlay.DescriptionOverlay:
		cmd, err = m.overlays.PresentContextualDescription(h, d, touch,
			p.Description.Header, p.Description.Body, a)
	case overlay.SideMenu:
		var rows []string
		rows, errs = m.rules.visible(p.SideMenu, activation(h, format, touch))
		cmd, err = m.overlays.PresentSideMenu(h, d, touch, rows, a)
	default:
		var rows []string
		rows, errs = m.rules.visible(p.Menu, activation(h, format, touch))
		cmd, err = m.overlays.PresentContextualMenu(h, d, touch, rows, a)
	}
	return m.afterPresent(h, format, cmd, err, errs)
}

// inspectCell shows a description of the cell a menu was opened on.
func (m *model) inspectCell(h *hostPane, touch image.Point) tea.Cmd {
	b := h.Bounds()
	local := h.local(touch)
	body := fmt.Sprintf("Pane %s is %dx%d. A panel anchored at column %d row %d opens %s.",
		h.ID(), b.Dx(), b.Dy(), local.X, local.Y, overlay.Resolve(touch, b))
	header := fmt.Sprintf("Cell %d,%d", local.X, local.Y)
	cmd, err := m.overlays.PresentContextualDescription(h, overlay.Weak(h), touch,
		header, body, m.activeProfile().Appearance())
	return m.afterPresent(h, overlay.DescriptionOverlay, cmd, err, nil)
}

func (m *model) afterPresent(h *hostPane, format overlay.Format, cmd tea.Cmd, err error, ruleErrs []error) tea.Cmd {
	for _, e := range ruleErrs {
		m.events.addf(h.ID(), eventError, "rule: %v", e)
	}
	if err != nil {
		m.events.addf(h.ID(), eventError, "%s: %v", format, err)
		if errors.Is(err, overlay.ErrEmptyContent) {
			return setStatus(statusWarn, "Nothing to show here")
		}
		return setStatus(statusError, err.Error())
	}
	m.events.addf(h.ID(), eventInfo, "%s requested", format)
	if len(ruleErrs) > 0 {
		return tea.Batch(cmd, setStatus(statusWarn, fmt.Sprintf("%d item conditions failed", len(ruleErrs))))
	}
	return cmd
}

// handleSelections acts on rows picked since the last update.
func (m *model) handleSelections() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range m.events.drain() {
		m.lastLabel = s.label
		switch s.label {
		case actionQuit:
			cmds = append(cmds, tea.Quit)
		case actionProfiles:
			cmds = append(cmds, m.nextProfile())
		case actionInspect:
			cmds = append(cmds, m.inspectCell(s.host, s.touch))
		case actionEventLog:
			m.events.lv.GoBottom()
			cmds = append(cmds, setStatus(statusInfo, "Event log scrolled to the end"))
		case actionCopy:
			at := s.host.local(s.touch)
			cmds = append(cmds, copyText(fmt.Sprintf("%s:%d,%d", s.host.ID(), at.X, at.Y)))
		default:
			cmds = append(cmds, setStatus(statusInfo, "Selected "+s.label))
		}
	}
	return tea.Batch(cmds...)
}

// copyText copies arbitrary text to the clipboard and returns a status message.
func copyText(text string) tea.Cmd {
	return func() tea.Msg {
		termenv.Copy(text)
		_ = clipboard.WriteAll(text)
		return statusMsg{typ: statusSuccess, text: "Copied: " + text}
	}
}
