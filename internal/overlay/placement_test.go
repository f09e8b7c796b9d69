package overlay

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveQuadrants(t *testing.T) {
	bounds := image.Rect(0, 0, 320, 480)
	tests := []struct {
		name  string
		touch image.Point
		want  Placement
	}{
		{"top left", image.Pt(10, 10), Placement{BelowEquator, RightOfCenter}},
		{"top right", image.Pt(310, 10), Placement{BelowEquator, LeftOfCenter}},
		{"bottom left", image.Pt(10, 470), Placement{AboveEquator, RightOfCenter}},
		{"bottom right", image.Pt(300, 450), Placement{AboveEquator, LeftOfCenter}},
		{"exact centre", image.Pt(160, 240), Placement{BelowEquator, LeftOfCenter}},
		{"just below centre", image.Pt(159, 241), Placement{AboveEquator, RightOfCenter}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.touch, bounds))
		})
	}
}

func TestResolveHalves(t *testing.T) {
	for _, bounds := range []image.Rectangle{
		image.Rect(0, 0, 80, 24),
		image.Rect(40, 3, 81, 28),
	} {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				p := Resolve(image.Pt(x, y), bounds)
				upper := 2*(y-bounds.Min.Y) <= bounds.Dy()
				left := 2*(x-bounds.Min.X) < bounds.Dx()

				if upper {
					assert.Equal(t, BelowEquator, p.Vertical, "(%d,%d) in %v", x, y, bounds)
				} else {
					assert.Equal(t, AboveEquator, p.Vertical, "(%d,%d) in %v", x, y, bounds)
				}
				if left {
					assert.Equal(t, RightOfCenter, p.Horizontal, "(%d,%d) in %v", x, y, bounds)
				} else {
					assert.Equal(t, LeftOfCenter, p.Horizontal, "(%d,%d) in %v", x, y, bounds)
				}
			}
		}
	}
}

func TestClampTouch(t *testing.T) {
	bounds := image.Rect(10, 5, 50, 25)

	p, moved := ClampTouch(image.Pt(20, 10), bounds)
	assert.False(t, moved)
	assert.Equal(t, image.Pt(20, 10), p)

	p, moved = ClampTouch(image.Pt(-3, 100), bounds)
	assert.True(t, moved)
	assert.Equal(t, image.Pt(10, 24), p)

	p, moved = ClampTouch(image.Pt(50, 4), bounds)
	assert.True(t, moved)
	assert.Equal(t, image.Pt(49, 5), p)
}

func TestPlacementString(t *testing.T) {
	assert.Equal(t, "above/left", Placement{AboveEquator, LeftOfCenter}.String())
	assert.Equal(t, "below/right", Placement{BelowEquator, RightOfCenter}.String())
}

func TestFormatRoundTrip(t *testing.T) {
	for _, f := range []Format{SideMenu, MenuOverlay, DescriptionOverlay} {
		got, ok := ParseFormat(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := ParseFormat("popover")
	assert.False(t, ok)
}
