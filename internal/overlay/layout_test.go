package overlay

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("row %d", i)
	}
	return out
}

func TestMenuHeightAndPartitions(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 200)
	a := DefaultAppearance()
	a.ContentHeight = 4
	touch := image.Pt(5, 5)

	for n := 1; n <= 12; n++ {
		l, err := ComputeLayout(MenuOverlay, Resolve(touch, bounds), touch, bounds,
			Content{Rows: rows(n)}, a, nil)
		require.NoError(t, err)
		assert.Equal(t, n*a.ContentHeight, l.Frame.Dy(), "rows=%d", n)
		assert.Len(t, l.Partitions, n-1, "rows=%d", n)
		require.Len(t, l.Rows, n)
		for i, part := range l.Partitions {
			assert.Equal(t, l.Frame.Min.Y+(i+1)*a.ContentHeight, part.Min.Y)
			assert.Equal(t, a.PartitionLineThickness, part.Dy())
			assert.Equal(t, l.Frame.Dx(), part.Dx())
		}
	}
}

func TestZeroThicknessPartitionsAreEmpty(t *testing.T) {
	bounds := image.Rect(0, 0, 80, 40)
	a := DefaultAppearance()
	a.PartitionLineThickness = 0
	l, err := ComputeLayout(MenuOverlay, Placement{BelowEquator, RightOfCenter}, image.Pt(1, 1),
		bounds, Content{Rows: rows(3)}, a, nil)
	require.NoError(t, err)
	require.Len(t, l.Partitions, 2)
	for _, p := range l.Partitions {
		assert.True(t, p.Empty())
	}
	assert.Equal(t, 3*a.ContentHeight, l.Frame.Dy())
	assert.Equal(t, 1, l.rowAt(image.Pt(5, 1+a.ContentHeight)), "no divider to hit")
}

func TestEmptyContent(t *testing.T) {
	bounds := image.Rect(0, 0, 80, 40)
	for _, f := range []Format{SideMenu, MenuOverlay, DescriptionOverlay} {
		_, err := ComputeLayout(f, Placement{}, image.Pt(1, 1), bounds, Content{}, DefaultAppearance(), nil)
		assert.ErrorIs(t, err, ErrEmptyContent, f.String())
	}
}

func TestInvalidAppearance(t *testing.T) {
	a := DefaultAppearance()
	a.PanelWidth = 0
	_, err := ComputeLayout(MenuOverlay, Placement{}, image.Pt(1, 1), image.Rect(0, 0, 80, 40),
		Content{Rows: rows(1)}, a, nil)
	assert.ErrorIs(t, err, ErrInvalidAppearance)

	a = DefaultAppearance()
	a.ArrowWidth = -1
	assert.ErrorIs(t, a.Validate(), ErrInvalidAppearance)
}

func TestAnchoredFrameClampedToHost(t *testing.T) {
	bounds := image.Rect(0, 0, 320, 480)
	touch := image.Pt(300, 450)
	a := DefaultAppearance()
	a.PanelWidth = 150
	a.ContentHeight = 40

	p := Resolve(touch, bounds)
	require.Equal(t, Placement{AboveEquator, LeftOfCenter}, p)

	l, err := ComputeLayout(MenuOverlay, p, touch, bounds, Content{Rows: rows(2)}, a, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(150, 370, 300, 450), l.Frame)
	assert.LessOrEqual(t, l.Frame.Max.X, bounds.Dx())

	// forcing the literal rightward growth still keeps the panel inside
	l, err = ComputeLayout(MenuOverlay, Placement{AboveEquator, RightOfCenter}, touch, bounds,
		Content{Rows: rows(2)}, a, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(170, 370), l.Frame.Min)
	assert.Equal(t, image.Pt(150, 80), l.Frame.Size())
	assert.LessOrEqual(t, l.Frame.Max.X, bounds.Dx())
}

func TestFrameAlwaysInsideHost(t *testing.T) {
	bounds := image.Rect(5, 2, 65, 22)
	a := DefaultAppearance()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 3 {
		for x := bounds.Min.X; x < bounds.Max.X; x += 4 {
			touch := image.Pt(x, y)
			for _, n := range []int{1, 3, 9} {
				l, err := ComputeLayout(MenuOverlay, Resolve(touch, bounds), touch, bounds,
					Content{Rows: rows(n)}, a, nil)
				require.NoError(t, err)
				assert.True(t, l.Frame.In(bounds), "touch %v rows %d frame %v", touch, n, l.Frame)
				assert.True(t, l.Arrow.Rect.In(l.Frame), "arrow %v frame %v", l.Arrow.Rect, l.Frame)
			}
		}
	}
}

func TestArrow(t *testing.T) {
	bounds := image.Rect(0, 0, 80, 40)
	a := DefaultAppearance()
	a.ArrowWidth = 3

	touch := image.Pt(10, 5)
	l, err := ComputeLayout(MenuOverlay, Resolve(touch, bounds), touch, bounds, Content{Rows: rows(2)}, a, nil)
	require.NoError(t, err)
	assert.Equal(t, ArrowUp, l.Arrow.Direction)
	assert.Equal(t, image.Rect(10, 5, 13, 6), l.Arrow.Rect)

	touch = image.Pt(70, 35)
	l, err = ComputeLayout(MenuOverlay, Resolve(touch, bounds), touch, bounds, Content{Rows: rows(2)}, a, nil)
	require.NoError(t, err)
	assert.Equal(t, ArrowDown, l.Arrow.Direction)
	assert.Equal(t, l.Frame.Max.Y-1, l.Arrow.Rect.Min.Y)
	assert.Equal(t, l.Frame.Max.X-3, l.Arrow.Rect.Min.X)

	a.ArrowWidth = 0
	l, err = ComputeLayout(MenuOverlay, Resolve(touch, bounds), touch, bounds, Content{Rows: rows(2)}, a, nil)
	require.NoError(t, err)
	assert.Equal(t, ArrowNone, l.Arrow.Direction)
}

func TestSideMenuDocked(t *testing.T) {
	bounds := image.Rect(10, 2, 90, 30)
	a := DefaultAppearance()

	touch := image.Pt(12, 29)
	l, err := ComputeLayout(SideMenu, Resolve(touch, bounds), touch, bounds, Content{Rows: rows(3)}, a, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(10, 2, 10+a.PanelWidth, 30), l.Frame)
	assert.Equal(t, ArrowNone, l.Arrow.Direction)
	assert.Equal(t, 2, l.Rows[0].Min.Y)

	touch = image.Pt(85, 3)
	l, err = ComputeLayout(SideMenu, Resolve(touch, bounds), touch, bounds, Content{Rows: rows(3)}, a, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(90-a.PanelWidth, 2, 90, 30), l.Frame)
}

func TestDescriptionLayout(t *testing.T) {
	bounds := image.Rect(0, 0, 80, 40)
	a := DefaultAppearance()
	var gotWidth int
	m := MeasurerFunc(func(body string, width int) int {
		gotWidth = width
		return 4
	})

	l, err := ComputeLayout(DescriptionOverlay, Placement{BelowEquator, RightOfCenter}, image.Pt(2, 2),
		bounds, Content{Header: "Title", Body: "some text"}, a, m)
	require.NoError(t, err)
	assert.Equal(t, a.textWidth(), gotWidth)
	require.Len(t, l.Rows, 2)
	assert.Len(t, l.Partitions, 1)
	assert.Equal(t, a.ContentHeight, l.Rows[0].Dy())
	assert.Equal(t, 6, l.Rows[1].Dy())
	assert.Equal(t, a.ContentHeight+6, l.Frame.Dy())

	l, err = ComputeLayout(DescriptionOverlay, Placement{BelowEquator, RightOfCenter}, image.Pt(2, 2),
		bounds, Content{Header: "Title only"}, a, m)
	require.NoError(t, err)
	assert.Len(t, l.Rows, 1)
	assert.Empty(t, l.Partitions)
}

func TestTallPanelCutToHost(t *testing.T) {
	bounds := image.Rect(0, 0, 40, 10)
	touch := image.Pt(3, 2)
	l, err := ComputeLayout(MenuOverlay, Resolve(touch, bounds), touch, bounds,
		Content{Rows: rows(8)}, DefaultAppearance(), nil)
	require.NoError(t, err)
	assert.Equal(t, bounds.Min.Y, l.Frame.Min.Y)
	assert.Equal(t, 10, l.Frame.Dy())
	assert.Len(t, l.Rows, 8)
	assert.Equal(t, 4, l.visibleRows(), "rows 0-2 fit and row 3 is cut")
}

func TestRowAt(t *testing.T) {
	bounds := image.Rect(0, 0, 80, 40)
	touch := image.Pt(10, 5)
	l, err := ComputeLayout(MenuOverlay, Resolve(touch, bounds), touch, bounds,
		Content{Rows: rows(3)}, DefaultAppearance(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, l.rowAt(image.Pt(15, 6)))
	assert.Equal(t, 1, l.rowAt(image.Pt(15, 9)))
	assert.Equal(t, 2, l.rowAt(image.Pt(15, 13)))
	assert.Equal(t, -1, l.rowAt(image.Pt(15, 8)), "partition")
	assert.Equal(t, -1, l.rowAt(image.Pt(10, 5)), "arrow")
	assert.Equal(t, -1, l.rowAt(image.Pt(5, 5)), "outside")
}
