package main

import (
	"image"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/golangsnmp/overlaykit/internal/overlay"
	"github.com/golangsnmp/overlaykit/internal/profile"
)

// appLayout holds computed rectangle regions for each pane.
type appLayout struct {
	area   image.Rectangle // full screen
	header image.Rectangle // top header bar (1 row)
	left   image.Rectangle // left host pane
	sep    image.Rectangle // vertical border column between the panes
	right  image.Rectangle // right host pane
	logSep image.Rectangle // horizontal border row above the event log
	log    image.Rectangle // event log
	bottom image.Rectangle // status, rule bar and key hints
}

// appConfig holds CLI-provided configuration.
type appConfig struct {
	profile       string        // profile to start with, overrides the file
	frameInterval time.Duration // delay between animation frames
	now           func() time.Time
}

type model struct {
	width        int
	height       int
	cachedLayout appLayout

	hosts      [2]*hostPane
	activeHost int
	cursor     image.Point // pane relative keyboard cursor

	overlays *overlay.Manager
	events   *eventLog
	rules    *ruleSet
	ruleBar  ruleBarModel

	profiles   *profile.Store
	profileIdx int

	dialog       dialogModel
	status       statusModel
	tooltip      tooltipModel
	pendingChord string // active chord prefix or empty
	keys         keyMap
	help         help.Model
	logger       *slog.Logger

	lastLabel   string // last selected row, for copying
	initWarning string
}

func newApp(cfg appConfig, profiles *profile.Store, logger *slog.Logger) (model, error) {
	rules, err := newRuleSet()
	if err != nil {
		return model{}, err
	}
	events := newEventLog(logger)
	if cfg.now != nil {
		events.now = cfg.now
	}

	opts := []overlay.Option{overlay.WithLogger(logger), overlay.WithClock(cfg.now)}
	if cfg.frameInterval > 0 {
		opts = append(opts, overlay.WithFrameInterval(cfg.frameInterval))
	}

	m := model{
		hosts:    [2]*hostPane{newHostPane("left", events), newHostPane("right", events)},
		overlays: overlay.NewManager(opts...),
		events:   events,
		rules:    rules,
		ruleBar:  newRuleBar(rules),
		profiles: profiles,
		keys:     defaultKeyMap(),
		help:     help.New(),
		logger:   logger,
	}

	name := profiles.Active
	if cfg.profile != "" {
		name = cfg.profile
	}
	if name != "" {
		for i, n := range profiles.Names() {
			if n == name {
				m.profileIdx = i
			}
		}
	}
	m.checkRules()
	return m, nil
}

func (m model) Init() tea.Cmd {
	m.events.addf("", eventInfo, "profile %s", m.activeProfile().Name)
	if m.initWarning != "" {
		return setStatus(statusWarn, m.initWarning)
	}
	return nil
}

func (m *model) activeProfile() profile.Profile {
	if m.profileIdx < len(m.profiles.Profiles) {
		return m.profiles.Profiles[m.profileIdx]
	}
	return profile.DefaultProfiles()[0]
}

// nextProfile switches to the next profile. Overlays already on screen keep
// the appearance they were presented with.
func (m *model) nextProfile() tea.Cmd {
	if len(m.profiles.Profiles) == 0 {
		return nil
	}
	m.profileIdx = (m.profileIdx + 1) % len(m.profiles.Profiles)
	p := m.activeProfile()
	m.events.addf("", eventInfo, "profile %s", p.Name)
	m.checkRules()
	return setStatus(statusInfo, "Profile: "+p.Summary())
}

// checkRules logs item conditions of the active profile that do not compile.
func (m *model) checkRules() {
	p := m.activeProfile()
	for _, items := range [][]profile.Item{p.Menu, p.SideMenu} {
		for _, it := range items {
			if err := m.rules.check(it.When); err != nil {
				m.events.addf("", eventError, "%s: %q: %v", p.Name, it.Label, err)
			}
		}
	}
}

func (m *model) currentHost() *hostPane {
	return m.hosts[m.activeHost]
}

// cursorPoint returns the keyboard cursor in screen coordinates.
func (m *model) cursorPoint() image.Point {
	return m.currentHost().rect.Min.Add(m.cursor)
}

// hostAt returns the host pane containing pt, or nil.
func (m *model) hostAt(pt image.Point) *hostPane {
	for _, h := range m.hosts {
		if h.contains(pt) {
			return h
		}
	}
	return nil
}

// moveCursor moves the keyboard cursor by (dx, dy) inside the current pane.
func (m *model) moveCursor(dx, dy int) {
	r := m.currentHost().rect
	m.cursor.X = max(0, min(m.cursor.X+dx, r.Dx()-1))
	m.cursor.Y = max(0, min(m.cursor.Y+dy, r.Dy()-1))
}

// focusPoint moves the keyboard cursor to the screen point pt.
func (m *model) focusPoint(h *hostPane, pt image.Point) {
	for i, hh := range m.hosts {
		if hh == h {
			m.activeHost = i
		}
	}
	m.cursor = h.local(pt)
}
