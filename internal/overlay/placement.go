package overlay

import "image"

// VerticalPosition says which way a panel opens from the anchor.
type VerticalPosition int

const (
	// AboveEquator panels open upward; the touch was in the lower half.
	AboveEquator VerticalPosition = iota
	// BelowEquator panels open downward; the touch was in the upper half.
	BelowEquator
)

func (v VerticalPosition) String() string {
	if v == AboveEquator {
		return "above"
	}
	return "below"
}

// HorizontalPosition says which way a panel grows from the anchor.
type HorizontalPosition int

const (
	// LeftOfCenter panels grow leftward; the touch was in the right half.
	LeftOfCenter HorizontalPosition = iota
	// RightOfCenter panels grow rightward; the touch was in the left half.
	RightOfCenter
)

func (h HorizontalPosition) String() string {
	if h == LeftOfCenter {
		return "left"
	}
	return "right"
}

// Placement is the quadrant decision for one presentation. It is computed
// once and never recomputed, even if the host is resized.
type Placement struct {
	Vertical   VerticalPosition
	Horizontal HorizontalPosition
}

func (p Placement) String() string {
	return p.Vertical.String() + "/" + p.Horizontal.String()
}

// Resolve picks the growth directions that keep a panel anchored at touch on
// screen. Touches exactly on the vertical centre open below; touches exactly
// on the horizontal centre grow leftward.
func Resolve(touch image.Point, bounds image.Rectangle) Placement {
	var p Placement
	if 2*(touch.Y-bounds.Min.Y) > bounds.Dy() {
		p.Vertical = AboveEquator
	} else {
		p.Vertical = BelowEquator
	}
	if 2*(touch.X-bounds.Min.X) < bounds.Dx() {
		p.Horizontal = RightOfCenter
	} else {
		p.Horizontal = LeftOfCenter
	}
	return p
}

// ClampTouch moves a touch point outside bounds onto the nearest cell inside
// it. The second result reports whether the point had to be moved.
func ClampTouch(touch image.Point, bounds image.Rectangle) (image.Point, bool) {
	if bounds.Empty() || touch.In(bounds) {
		return touch, false
	}
	p := touch
	p.X = min(max(p.X, bounds.Min.X), bounds.Max.X-1)
	p.Y = min(max(p.Y, bounds.Min.Y), bounds.Max.Y-1)
	return p, true
}
