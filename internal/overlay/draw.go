package overlay

import (
	"image"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	arrowUpGlyph   = "▲" // up triangle
	arrowDownGlyph = "▼" // down triangle
	partitionGlyph = "─" // light horizontal
)

// clipScreen drops writes outside clip.
type clipScreen struct {
	uv.Screen
	clip image.Rectangle
}

func (s clipScreen) SetCell(x, y int, c *uv.Cell) {
	if image.Pt(x, y).In(s.clip) {
		s.Screen.SetCell(x, y, c)
	}
}

// panelColors are the appearance colours after fading.
type panelColors struct {
	panel, text, accent color.Color
}

// Draw paints the scrim and the panel at the current animation progress.
// Nothing is drawn while idle.
func (c *Controller) Draw(scr uv.Screen) {
	if !c.state.active() {
		return
	}
	bounds := c.host.Bounds().Intersect(scr.Bounds())
	if bounds.Empty() {
		return
	}
	p := math.Max(0, math.Min(1, c.progress))
	a := c.inst.appearance

	drawScrim(scr, bounds, a.TintColor, TintAlpha*p)

	l, visible := c.visibleLayout(p)
	visible = visible.Intersect(bounds)
	if visible.Empty() {
		return
	}

	fade := p
	if c.inst.format.docked() {
		fade = 1
	}
	base := color.Color(color.Black)
	cols := panelColors{
		panel:  blend(base, a.PanelColor, fade),
		text:   blend(base, a.TextColor, fade),
		accent: blend(base, a.TintColor, fade),
	}
	drawPanel(clipScreen{Screen: scr, clip: visible}, c.inst, l, cols, c.cursor)
}

// visibleLayout returns the layout to draw at progress p and the part of the
// screen it may occupy. Side menus slide in from their docked edge; anchored
// panels grow out of the corner nearest the touch point.
func (c *Controller) visibleLayout(p float64) (Layout, image.Rectangle) {
	l := c.inst.layout
	f := l.Frame
	pl := c.inst.placement

	if c.inst.format.docked() {
		hidden := int(math.Round(float64(f.Dx()) * (1 - p)))
		d := image.Pt(hidden, 0)
		if pl.Horizontal == RightOfCenter {
			d.X = -hidden
		}
		l = l.translate(d)
		return l, l.Frame
	}

	w := int(math.Ceil(float64(f.Dx()) * p))
	h := int(math.Ceil(float64(f.Dy()) * p))
	x := f.Min.X
	if pl.Horizontal == LeftOfCenter {
		x = f.Max.X - w
	}
	y := f.Min.Y
	if pl.Vertical == AboveEquator {
		y = f.Max.Y - h
	}
	return l, image.Rect(x, y, x+w, y+h)
}

// drawScrim tints every cell of area towards tint by alpha.
func drawScrim(scr uv.Screen, area image.Rectangle, tint color.Color, alpha float64) {
	if alpha <= 0 || tint == nil {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			nc := *cell
			bg := nc.Style.Bg
			if bg == nil {
				bg = color.Black
			}
			nc.Style.Bg = blend(bg, tint, alpha)
			if nc.Style.Fg != nil {
				nc.Style.Fg = blend(nc.Style.Fg, nc.Style.Bg, alpha/2)
			}
			scr.SetCell(x, y, &nc)
		}
	}
}

func drawPanel(scr uv.Screen, o *Overlay, l Layout, cols panelColors, cursor int) {
	a := o.appearance
	f := l.Frame
	fill := uv.Style{Bg: cols.panel}
	edge := uv.Style{Fg: cols.accent, Bg: cols.panel}

	for y := f.Min.Y; y < f.Max.Y; y++ {
		for x := f.Min.X; x < f.Max.X; x++ {
			setCell(scr, x, y, " ", fill)
		}
	}

	b, bordered := a.border()
	if bordered {
		drawBorder(scr, f, b, edge)
	}

	hline := partitionGlyph
	if bordered {
		hline = b.Top
	}
	for _, part := range l.Partitions {
		for y := part.Min.Y; y < part.Max.Y && y < f.Max.Y; y++ {
			for x := part.Min.X; x < part.Max.X; x++ {
				setCell(scr, x, y, hline, edge)
			}
			if bordered {
				setCell(scr, part.Min.X, y, b.MiddleLeft, edge)
				setCell(scr, part.Max.X-1, y, b.MiddleRight, edge)
			}
		}
	}

	inner := 0
	if bordered {
		inner = 1
	}
	tw := a.textWidth()
	textX := f.Min.X + inner + 1
	normal := lipgloss.NewStyle().Foreground(cols.text).Background(cols.panel)

	if o.format == DescriptionOverlay {
		drawDescription(scr, o, l, textX, tw, normal)
	} else {
		highlight := lipgloss.NewStyle().Foreground(cols.panel).Background(cols.accent)
		for i, row := range l.Rows {
			y := row.Min.Y + a.ContentHeight/2
			if y >= f.Max.Y {
				break
			}
			label := fitLabel(o.content.Rows[i], tw)
			if i == cursor {
				drawText(scr, f.Min.X+inner, y, f.Dx()-2*inner, " "+label, highlight)
				continue
			}
			drawText(scr, textX, y, tw, label, normal)
		}
	}

	if l.Arrow.Direction != ArrowNone {
		glyph := arrowUpGlyph
		if l.Arrow.Direction == ArrowDown {
			glyph = arrowDownGlyph
		}
		for x := l.Arrow.Rect.Min.X; x < l.Arrow.Rect.Max.X; x++ {
			setCell(scr, x, l.Arrow.Rect.Min.Y, glyph, edge)
		}
	}
}

func drawDescription(scr uv.Screen, o *Overlay, l Layout, x, width int, normal lipgloss.Style) {
	a := o.appearance
	bottom := l.Frame.Max.Y
	if _, ok := a.border(); ok {
		bottom--
	}
	i := 0
	if o.content.Header != "" {
		y := l.Rows[0].Min.Y + a.ContentHeight/2
		if y < bottom {
			drawText(scr, x, y, width, fitLabel(o.content.Header, width), normal.Bold(true))
		}
		i++
	}
	if o.content.Body == "" || i >= len(l.Rows) {
		return
	}
	y := l.Rows[i].Min.Y + 1
	for _, line := range wrapBody(o.content.Body, width) {
		if y >= bottom {
			break
		}
		drawText(scr, x, y, width, line, normal)
		y++
	}
}

func drawBorder(scr uv.Screen, f image.Rectangle, b lipgloss.Border, st uv.Style) {
	if f.Dx() < 2 || f.Dy() < 2 {
		return
	}
	top, bot := f.Min.Y, f.Max.Y-1
	left, right := f.Min.X, f.Max.X-1
	for x := left + 1; x < right; x++ {
		setCell(scr, x, top, b.Top, st)
		setCell(scr, x, bot, b.Bottom, st)
	}
	for y := top + 1; y < bot; y++ {
		setCell(scr, left, y, b.Left, st)
		setCell(scr, right, y, b.Right, st)
	}
	setCell(scr, left, top, b.TopLeft, st)
	setCell(scr, right, top, b.TopRight, st)
	setCell(scr, left, bot, b.BottomLeft, st)
	setCell(scr, right, bot, b.BottomRight, st)
}

// drawText writes s padded to width so the panel background shows through.
func drawText(scr uv.Screen, x, y, width int, s string, st lipgloss.Style) {
	if width <= 0 {
		return
	}
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	} else if w > width {
		s = ansi.Truncate(s, width, "")
	}
	uv.NewStyledString(st.Render(s)).Draw(scr, image.Rect(x, y, x+width, y+1))
}

func setCell(scr uv.Screen, x, y int, glyph string, st uv.Style) {
	scr.SetCell(x, y, &uv.Cell{Content: glyph, Style: st, Width: 1})
}

// blend mixes from towards to by t in Lab space.
func blend(from, to color.Color, t float64) color.Color {
	switch {
	case to == nil:
		return from
	case from == nil || t >= 1:
		return to
	case t <= 0:
		return from
	}
	a, okA := colorful.MakeColor(from)
	b, okB := colorful.MakeColor(to)
	if !okA || !okB {
		if t < 0.5 {
			return from
		}
		return to
	}
	return a.BlendLab(b, t).Clamped()
}
