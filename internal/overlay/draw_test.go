package overlay

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawMenu(t *testing.T) {
	c, clk := newTestController(t)
	_, err := c.Present(menuRequest(DelegateRef{}, 2))
	require.NoError(t, err)

	buf := uv.NewScreenBuffer(80, 40)
	c.Draw(buf)
	assert.NotContains(t, buf.Line(6).String(), "Copy", "nothing visible before the first frame")

	settle(c, clk)
	buf = uv.NewScreenBuffer(80, 40)
	c.Draw(buf)

	assert.Contains(t, buf.Line(6).String(), "Copy")
	assert.Contains(t, buf.Line(9).String(), "Paste")
	assert.Equal(t, arrowUpGlyph, buf.CellAt(10, 5).Content)
	assert.Equal(t, "╰", buf.CellAt(10, 10).Content)
	assert.Equal(t, "├", buf.CellAt(10, 8).Content)
	assert.NotNil(t, buf.CellAt(70, 35).Style.Bg, "scrim")
}

func TestDrawIdleDoesNothing(t *testing.T) {
	c, _ := newTestController(t)
	buf := uv.NewScreenBuffer(20, 5)
	c.Draw(buf)
	assert.Empty(t, strings.TrimSpace(buf.String()))
	assert.Nil(t, buf.CellAt(3, 3).Style.Bg)
}

func TestDrawDescriptionWraps(t *testing.T) {
	c, clk := newTestController(t)
	req := menuRequest(DelegateRef{}, 0)
	req.Format = DescriptionOverlay
	req.Content = Content{Header: "Title", Body: "alpha beta gamma delta epsilon zeta eta theta"}
	_, err := c.Present(req)
	require.NoError(t, err)
	settle(c, clk)

	buf := uv.NewScreenBuffer(80, 40)
	c.Draw(buf)
	assert.Contains(t, buf.Line(6).String(), "Title")

	var body strings.Builder
	for y := c.Overlay().Layout().Rows[1].Min.Y; y < c.Overlay().Frame().Max.Y; y++ {
		body.WriteString(buf.Line(y).String())
	}
	assert.Contains(t, body.String(), "alpha")
	assert.Contains(t, body.String(), "theta")
}

func TestSideMenuSlides(t *testing.T) {
	c, clk := newTestController(t)
	req := menuRequest(DelegateRef{}, 2)
	req.Format = SideMenu
	req.Touch = image.Pt(1, 20)
	_, err := c.Present(req)
	require.NoError(t, err)

	step(c, clk, SideMenuAnimationDuration/4)
	l, visible := c.visibleLayout(c.Progress())
	assert.Less(t, l.Frame.Min.X, 0, "still sliding in from the left edge")
	assert.Equal(t, l.Frame, visible)

	settle(c, clk)
	l, _ = c.visibleLayout(c.Progress())
	assert.Equal(t, c.Overlay().Frame(), l.Frame)
}

func TestBlend(t *testing.T) {
	black := color.Color(color.Black)
	white := lipgloss.Color("#FFFFFF")
	assert.Equal(t, white, blend(black, white, 1))
	assert.Equal(t, black, blend(black, white, 0))
	assert.Equal(t, black, blend(black, nil, 0.5))

	r, g, b, _ := blend(black, white, 0.5).RGBA()
	for _, v := range []uint32{r, g, b} {
		assert.Greater(t, v, uint32(0))
		assert.Less(t, v, uint32(0xffff))
	}
	assert.InDelta(t, r, b, 2)
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", TruncateLabel("short"))

	long := strings.Repeat("é", MaxRowLength+10)
	got := TruncateLabel(long)
	assert.Equal(t, strings.Repeat("é", MaxRowLength), got)

	flags := strings.Repeat("🇳🇱", MaxRowLength+1)
	assert.Equal(t, strings.Repeat("🇳🇱", MaxRowLength), TruncateLabel(flags))
}

func TestFitLabel(t *testing.T) {
	assert.Equal(t, "Copy", fitLabel("Copy", 10))
	got := fitLabel("A rather long menu label", 10)
	assert.Equal(t, "A rather …", got)
}

func TestWrapMeasurer(t *testing.T) {
	var m WrapMeasurer
	assert.Equal(t, 1, m.MeasureHeight("one two", 20))
	assert.Equal(t, 3, m.MeasureHeight("one two three", 5))
	assert.Equal(t, 2, m.MeasureHeight("first\nsecond", 20))
	assert.Equal(t, 0, m.MeasureHeight("", 20))
}

func TestAnimationProgress(t *testing.T) {
	start := time.Unix(0, 0)
	a := newAnimation(MenuOverlay, 0, 1, start)
	p, done := a.progressAt(start)
	assert.Equal(t, 0.0, p)
	assert.False(t, done)

	p, done = a.progressAt(start.Add(OverlayAnimationDuration))
	assert.Equal(t, 1.0, p)
	assert.True(t, done)

	p, done = newAnimation(MenuOverlay, 0.3, 0.3, start).progressAt(start)
	assert.Equal(t, 0.3, p)
	assert.True(t, done)
}
