package overlay

import (
	"image"
	"slices"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Manager keeps one Controller per host id, which guarantees that a host
// never shows two overlays at once.
type Manager struct {
	opts        []Option
	controllers map[string]*Controller
	order       []string // registration order, used for drawing and input
	recent      []string // hosts by last successful presentation, newest last
}

// NewManager returns an empty registry. opts apply to every controller it
// creates.
func NewManager(opts ...Option) *Manager {
	return &Manager{
		opts:        opts,
		controllers: make(map[string]*Controller),
	}
}

// Controller returns the controller registered for hostID, or nil.
func (m *Manager) Controller(hostID string) *Controller {
	return m.controllers[hostID]
}

func (m *Manager) controllerFor(host Host) *Controller {
	id := host.ID()
	if c, ok := m.controllers[id]; ok {
		c.host = host
		return c
	}
	c := NewController(host, m.opts...)
	m.controllers[id] = c
	m.order = append(m.order, id)
	return c
}

// PresentContextualMenu shows rows as a menu anchored at touch.
func (m *Manager) PresentContextualMenu(host Host, d DelegateRef, touch image.Point,
	rows []string, a Appearance) (tea.Cmd, error) {
	return m.Present(host, Request{
		Format:     MenuOverlay,
		Delegate:   d,
		Touch:      touch,
		Content:    Content{Rows: rows},
		Appearance: a,
	})
}

// PresentContextualDescription shows a header and body callout anchored at
// touch.
func (m *Manager) PresentContextualDescription(host Host, d DelegateRef, touch image.Point,
	header, body string, a Appearance) (tea.Cmd, error) {
	return m.Present(host, Request{
		Format:     DescriptionOverlay,
		Delegate:   d,
		Touch:      touch,
		Content:    Content{Header: header, Body: body},
		Appearance: a,
	})
}

// PresentSideMenu shows rows in a menu docked to the host edge nearer touch.
func (m *Manager) PresentSideMenu(host Host, d DelegateRef, touch image.Point,
	rows []string, a Appearance) (tea.Cmd, error) {
	return m.Present(host, Request{
		Format:     SideMenu,
		Delegate:   d,
		Touch:      touch,
		Content:    Content{Rows: rows},
		Appearance: a,
	})
}

// Present runs req on the controller for host. A failed request leaves any
// overlay already shown on host untouched.
func (m *Manager) Present(host Host, req Request) (tea.Cmd, error) {
	cmd, err := m.controllerFor(host).Present(req)
	if err != nil {
		return nil, err
	}
	m.recent = append(slices.DeleteFunc(m.recent, func(id string) bool {
		return id == host.ID()
	}), host.ID())
	return cmd, nil
}

// Dismiss starts dismissing the overlay on hostID, if any.
func (m *Manager) Dismiss(hostID string) tea.Cmd {
	if c, ok := m.controllers[hostID]; ok {
		return c.Dismiss()
	}
	return nil
}

// DismissAll dismisses every active overlay.
func (m *Manager) DismissAll() tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.order {
		cmds = append(cmds, m.controllers[id].Dismiss())
	}
	return tea.Batch(cmds...)
}

// Active reports whether any host has an overlay alive.
func (m *Manager) Active() bool {
	for _, c := range m.controllers {
		if c.state.active() {
			return true
		}
	}
	return false
}

// Update routes frame messages to their host, key presses to the most
// recently presented live overlay, and mouse input to every active
// controller. handled is true when any controller consumed the message.
func (m *Manager) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case FrameMsg:
		c, ok := m.controllers[msg.Host]
		if !ok {
			return nil, false
		}
		return c.Update(msg)
	case tea.KeyPressMsg:
		if c := m.focused(); c != nil {
			return c.Update(msg)
		}
		return nil, false
	}

	var cmds []tea.Cmd
	handled := false
	for _, id := range m.order {
		c := m.controllers[id]
		if !c.state.active() {
			continue
		}
		cmd, h := c.Update(msg)
		cmds = append(cmds, cmd)
		handled = handled || h
	}
	return tea.Batch(cmds...), handled
}

// focused returns the active controller presented last, or nil.
func (m *Manager) focused() *Controller {
	for _, id := range slices.Backward(m.recent) {
		if c := m.controllers[id]; c.state.active() {
			return c
		}
	}
	return nil
}

// Draw paints every active overlay onto scr.
func (m *Manager) Draw(scr uv.Screen) {
	for _, id := range m.order {
		m.controllers[id].Draw(scr)
	}
}
