package overlay

import (
	"fmt"
	"image"
)

// ArrowDirection is the way the anchor arrow points.
type ArrowDirection int

const (
	ArrowNone ArrowDirection = iota
	ArrowUp
	ArrowDown
)

// Arrow is the indicator drawn on the panel edge nearest the touch point.
type Arrow struct {
	Rect      image.Rectangle
	Direction ArrowDirection
}

// Layout is the geometry of one overlay panel in host coordinates.
type Layout struct {
	Frame      image.Rectangle
	Arrow      Arrow
	Partitions []image.Rectangle // divider lines between rows
	Rows       []image.Rectangle // hit rectangles, one per row
}

// Content is what a panel shows: either Rows, or a Header and Body pair for
// descriptions.
type Content struct {
	Rows   []string
	Header string
	Body   string
}

func (c Content) empty(f Format) bool {
	if f == DescriptionOverlay {
		return c.Header == "" && c.Body == ""
	}
	return len(c.Rows) == 0
}

// textWidth is the number of cells available for text inside a panel after
// the border and one cell of padding on either side.
func (a Appearance) textWidth() int {
	inset := 1
	if _, ok := a.border(); ok {
		inset = 2
	}
	return max(1, a.PanelWidth-2*inset)
}

// ComputeLayout places a panel of the given format for a touch point inside
// bounds. It fails with ErrEmptyContent before doing anything else when there
// is nothing to show. Labels are not measured or truncated here: every menu
// row reserves exactly ContentHeight cells.
func ComputeLayout(f Format, p Placement, touch image.Point, bounds image.Rectangle,
	c Content, a Appearance, m Measurer) (Layout, error) {
	if c.empty(f) {
		return Layout{}, fmt.Errorf("%s: %w", f, ErrEmptyContent)
	}
	if err := a.Validate(); err != nil {
		return Layout{}, err
	}

	heights := rowHeights(f, c, a, m)
	total := 0
	for _, h := range heights {
		total += h
	}

	var frame image.Rectangle
	if f.docked() {
		frame = dockedFrame(p, bounds, a.PanelWidth)
	} else {
		frame = anchoredFrame(p, touch, bounds, a.PanelWidth, total)
	}

	l := Layout{Frame: frame}
	y := frame.Min.Y
	for i, h := range heights {
		if i > 0 {
			// zero thickness still yields one empty divider per gap
			l.Partitions = append(l.Partitions,
				image.Rect(frame.Min.X, y, frame.Max.X, y+a.PartitionLineThickness))
		}
		l.Rows = append(l.Rows, image.Rect(frame.Min.X, y, frame.Max.X, y+h))
		y += h
	}

	if !f.docked() && a.ArrowWidth > 0 {
		l.Arrow = arrowFor(p, touch, frame, a.ArrowWidth)
	}
	return l, nil
}

func rowHeights(f Format, c Content, a Appearance, m Measurer) []int {
	if f != DescriptionOverlay {
		hs := make([]int, len(c.Rows))
		for i := range hs {
			hs[i] = a.ContentHeight
		}
		return hs
	}
	var hs []int
	if c.Header != "" {
		hs = append(hs, a.ContentHeight)
	}
	if c.Body != "" {
		if m == nil {
			m = WrapMeasurer{}
		}
		// one line above for the divider or top border, one below for the
		// bottom border
		hs = append(hs, max(1, m.MeasureHeight(c.Body, a.textWidth()))+2)
	}
	return hs
}

// anchoredFrame grows a panel away from the touch point in the resolved
// directions, then slides it back inside bounds.
func anchoredFrame(p Placement, touch image.Point, bounds image.Rectangle, width, height int) image.Rectangle {
	w := min(width, bounds.Dx())
	h := min(height, bounds.Dy())

	x := touch.X
	if p.Horizontal == LeftOfCenter {
		x = touch.X - w
	}
	y := touch.Y
	if p.Vertical == AboveEquator {
		y = touch.Y - h
	}

	x = max(min(x, bounds.Max.X-w), bounds.Min.X)
	y = max(min(y, bounds.Max.Y-h), bounds.Min.Y)
	return image.Rect(x, y, x+w, y+h)
}

// dockedFrame pins a side menu to the host edge nearer the touch point and
// spans the full host height. The vertical placement is not used.
func dockedFrame(p Placement, bounds image.Rectangle, width int) image.Rectangle {
	w := min(width, bounds.Dx())
	x := bounds.Min.X
	if p.Horizontal == LeftOfCenter {
		x = bounds.Max.X - w
	}
	return image.Rect(x, bounds.Min.Y, x+w, bounds.Max.Y)
}

func arrowFor(p Placement, touch image.Point, frame image.Rectangle, width int) Arrow {
	w := min(width, frame.Dx())
	x := touch.X - w/2
	x = max(min(x, frame.Max.X-w), frame.Min.X)

	if p.Vertical == BelowEquator {
		return Arrow{Rect: image.Rect(x, frame.Min.Y, x+w, frame.Min.Y+1), Direction: ArrowUp}
	}
	return Arrow{Rect: image.Rect(x, frame.Max.Y-1, x+w, frame.Max.Y), Direction: ArrowDown}
}

// visibleRows counts the leading rows that are at least partly inside the
// frame. Rows past it were cut when the panel was taller than the host.
func (l Layout) visibleRows() int {
	n := 0
	for _, r := range l.Rows {
		if r.Intersect(l.Frame).Empty() {
			break
		}
		n++
	}
	return n
}

// rowAt returns the index of the row containing pt, or -1 when pt is outside
// the panel, on a divider or on the arrow.
func (l Layout) rowAt(pt image.Point) int {
	if !pt.In(l.Frame) || pt.In(l.Arrow.Rect) {
		return -1
	}
	for _, part := range l.Partitions {
		if pt.In(part) {
			return -1
		}
	}
	for i, r := range l.Rows {
		if pt.In(r.Intersect(l.Frame)) {
			return i
		}
	}
	return -1
}
