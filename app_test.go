package main

import (
	"image"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/golangsnmp/overlaykit/internal/overlay"
	"github.com/golangsnmp/overlaykit/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The overlay clock runs an hour behind the frames, so every animation
// completes on its first frame.
func newTestApp(t *testing.T) model {
	t.Helper()
	store := profile.NewStoreAt(filepath.Join(t.TempDir(), "profiles.yaml"))
	require.NoError(t, store.Load())

	past := time.Now().Add(-time.Hour)
	cfg := appConfig{
		frameInterval: time.Millisecond,
		now:           func() time.Time { return past },
	}
	m, err := newApp(cfg, store, testLogger())
	require.NoError(t, err)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(model)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

// runFrames executes cmd, feeding animation frames back into m until none
// are left. Other messages are returned without being processed.
func runFrames(t *testing.T, m model, cmd tea.Cmd) (model, []tea.Msg) {
	t.Helper()
	var other []tea.Msg
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0 && i < 50; i++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case overlay.FrameMsg:
			var next tea.Cmd
			m, next = update(t, m, msg)
			queue = append(queue, next)
		default:
			other = append(other, msg)
		}
	}
	return m, other
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func rightClick(pt image.Point) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: pt.X, Y: pt.Y, Button: tea.MouseRight}
}

func TestLayoutPlacesHosts(t *testing.T) {
	m := newTestApp(t)
	left, right := m.hosts[0].Bounds(), m.hosts[1].Bounds()

	assert.False(t, left.Empty())
	assert.False(t, right.Empty())
	assert.True(t, left.Max.X <= right.Min.X, "left pane is left of right pane")
	assert.Equal(t, left.Min.Y, right.Min.Y)
	assert.True(t, m.cachedLayout.log.Min.Y > left.Max.Y)
	assert.True(t, m.cachedLayout.bottom.Min.Y >= m.cachedLayout.log.Max.Y)
}

func TestRightClickPresentsMenu(t *testing.T) {
	m := newTestApp(t)
	pt := center(m.hosts[0].Bounds())

	m, cmd := update(t, m, rightClick(pt))
	require.NotNil(t, cmd)

	c := m.overlays.Controller("left")
	require.NotNil(t, c)
	assert.Equal(t, overlay.Presenting, c.State())
	assert.Nil(t, m.overlays.Controller("right"))

	m, _ = runFrames(t, m, cmd)
	assert.Equal(t, overlay.Presented, c.State())

	rows := c.Overlay().Rows()
	assert.Contains(t, rows, "Copy")
	assert.Contains(t, rows, "Inspect cell")
	assert.NotContains(t, rows, "Remove", "only on the right pane")
	assert.NotEmpty(t, m.events.entries)
}

func TestKeyboardSelectionReported(t *testing.T) {
	m := newTestApp(t)
	m, cmd := update(t, m, rightClick(center(m.hosts[1].Bounds())))
	m, _ = runFrames(t, m, cmd)

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	m, msgs := runFrames(t, m, cmd)
	assert.Equal(t, "Paste", m.lastLabel)
	assert.Contains(t, msgs, statusMsg{typ: statusInfo, text: "Selected Paste"})
	assert.Equal(t, overlay.Idle, m.overlays.Controller("right").State())
}

func TestSideMenuOnOuterEdge(t *testing.T) {
	m := newTestApp(t)
	b := m.hosts[0].Bounds()
	pt := image.Pt(b.Min.X, center(b).Y)

	m, cmd := update(t, m, tea.MouseClickMsg{X: pt.X, Y: pt.Y, Button: tea.MouseLeft})
	m, _ = runFrames(t, m, cmd)

	c := m.overlays.Controller("left")
	require.NotNil(t, c)
	assert.Equal(t, overlay.SideMenu, c.Overlay().Format())
	assert.Contains(t, c.Overlay().Rows(), actionQuit)
}

func TestPlainLeftClickMovesCursor(t *testing.T) {
	m := newTestApp(t)
	b := m.hosts[1].Bounds()
	pt := center(b)

	m, cmd := update(t, m, tea.MouseClickMsg{X: pt.X, Y: pt.Y, Button: tea.MouseLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.activeHost)
	assert.Equal(t, pt, m.cursorPoint())
	assert.False(t, m.overlays.Active())
}

func TestClickOutsideDismissesAndFallsThrough(t *testing.T) {
	m := newTestApp(t)
	left := m.hosts[0].Bounds()
	m, cmd := update(t, m, rightClick(center(left)))
	m, _ = runFrames(t, m, cmd)

	// A right click on the other pane leaves this menu alone.
	m, cmd = update(t, m, rightClick(center(m.hosts[1].Bounds())))
	m, _ = runFrames(t, m, cmd)
	assert.Equal(t, overlay.Presented, m.overlays.Controller("left").State())
	assert.Equal(t, overlay.Presented, m.overlays.Controller("right").State())
	assert.Contains(t, m.overlays.Controller("right").Overlay().Rows(), "Remove")

	// Off the panel but on its pane, the click closes the menu and still
	// reaches the pane, which opens a new one there.
	corner := left.Min.Add(image.Pt(1, 1))
	m, cmd = update(t, m, rightClick(corner))
	m, _ = runFrames(t, m, cmd)
	c := m.overlays.Controller("left")
	assert.Equal(t, overlay.Presented, c.State())
	assert.Equal(t, corner, c.Overlay().Touch())
	assert.Equal(t, overlay.Presented, m.overlays.Controller("right").State())
}

func TestChordOpensAtCursor(t *testing.T) {
	m := newTestApp(t)
	m, _ = update(t, m, tea.KeyPressMsg{Code: 'o', Text: "o"})
	assert.Equal(t, "o", m.pendingChord)

	m, cmd := update(t, m, tea.KeyPressMsg{Code: 'd', Text: "d"})
	assert.Empty(t, m.pendingChord)
	m, _ = runFrames(t, m, cmd)

	c := m.overlays.Controller("left")
	require.NotNil(t, c)
	assert.Equal(t, overlay.DescriptionOverlay, c.Overlay().Format())
	assert.Equal(t, m.cursorPoint(), c.Overlay().Touch())

	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m, _ = runFrames(t, m, cmd)
	assert.Equal(t, overlay.Idle, c.State())
}

func TestInspectCellPresentsDescription(t *testing.T) {
	m := newTestApp(t)
	m, cmd := update(t, m, rightClick(center(m.hosts[0].Bounds())))
	m, _ = runFrames(t, m, cmd)

	c := m.overlays.Controller("left")
	idx := -1
	for i, r := range c.Overlay().Rows() {
		if r == actionInspect {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	for range idx + 1 {
		m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = runFrames(t, m, cmd)

	require.NotNil(t, c.Overlay())
	assert.Equal(t, overlay.DescriptionOverlay, c.Overlay().Format())
	assert.Contains(t, c.Overlay().Header(), "Cell")
}

func TestNextProfile(t *testing.T) {
	m := newTestApp(t)
	first := m.activeProfile().Name

	m, cmd := update(t, m, tea.KeyPressMsg{Code: 'p', Text: "p"})
	require.NotNil(t, cmd)
	assert.NotEqual(t, first, m.activeProfile().Name)

	for range len(m.profiles.Profiles) - 1 {
		m, _ = update(t, m, tea.KeyPressMsg{Code: 'p', Text: "p"})
	}
	assert.Equal(t, first, m.activeProfile().Name)
}

func TestDismissAll(t *testing.T) {
	m := newTestApp(t)
	m, cmd := update(t, m, rightClick(center(m.hosts[0].Bounds())))
	m, _ = runFrames(t, m, cmd)
	require.True(t, m.overlays.Active())

	// keys go to the open panel first
	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m, _ = runFrames(t, m, cmd)
	require.False(t, m.overlays.Active())

	m, cmd = update(t, m, rightClick(center(m.hosts[1].Bounds())))
	m, _ = runFrames(t, m, cmd)
	cmd = m.overlays.DismissAll()
	m, _ = runFrames(t, m, cmd)
	assert.False(t, m.overlays.Active())
}

func TestOnOuterEdge(t *testing.T) {
	h := &hostPane{name: "left", rect: image.Rect(10, 5, 50, 25)}
	assert.True(t, onOuterEdge(h, image.Pt(10, 8)))
	assert.True(t, onOuterEdge(h, image.Pt(11, 8)))
	assert.False(t, onOuterEdge(h, image.Pt(12, 8)))
	assert.False(t, onOuterEdge(h, image.Pt(47, 8)))
	assert.True(t, onOuterEdge(h, image.Pt(48, 8)))
	assert.True(t, onOuterEdge(h, image.Pt(49, 8)))
}

func TestCursorStaysInPane(t *testing.T) {
	m := newTestApp(t)
	for range 500 {
		m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
		m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.True(t, m.cursorPoint().In(m.currentHost().Bounds()))

	m, _ = update(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, 1, m.activeHost)
	assert.True(t, m.cursorPoint().In(m.currentHost().Bounds()))
}

func TestViewAndSnapshot(t *testing.T) {
	m := newTestApp(t)
	m, cmd := update(t, m, rightClick(center(m.hosts[0].Bounds())))
	m, _ = runFrames(t, m, cmd)

	v := m.View()
	assert.True(t, v.AltScreen)
	assert.NotEmpty(t, v.Content)

	text := m.snapshotText(time.Now())
	assert.Contains(t, text, "=== overlaykit snapshot ===")
	assert.Contains(t, text, "left   presented menu")
	assert.Contains(t, text, "right  idle")
	assert.Contains(t, text, "Copy")
}
