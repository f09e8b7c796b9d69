package overlay

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// MaxRowLength is the number of grapheme clusters a row label may show
// before the drawing code truncates it.
const MaxRowLength = 128

// TintAlpha is the scrim opacity once an overlay is fully presented.
const TintAlpha = 0.5

// Appearance bundles the visual parameters of one presentation. Sizes are in
// terminal cells.
type Appearance struct {
	PanelColor color.Color
	TextColor  color.Color
	TintColor  color.Color // scrim and row highlight

	PanelWidth    int
	ContentHeight int // rows per menu entry

	CornerRadius           int // > 0 draws rounded corners
	BorderWidth            int // 0 none, 1 normal, >= 2 thick
	PartitionLineThickness int // divider rows between entries
	ArrowWidth             int // 0 disables the arrow
}

// DefaultAppearance returns the stock look used when the caller has no theme.
func DefaultAppearance() Appearance {
	return Appearance{
		PanelColor:             lipgloss.Color("#2D2C35"),
		TextColor:              lipgloss.Color("#DFDBDD"),
		TintColor:              lipgloss.Color("#6B50FF"),
		PanelWidth:             24,
		ContentHeight:          3,
		CornerRadius:           1,
		BorderWidth:            1,
		PartitionLineThickness: 1,
		ArrowWidth:             1,
	}
}

// Validate reports sizes that can not produce a hit-testable panel.
func (a Appearance) Validate() error {
	switch {
	case a.PanelWidth <= 0:
		return fmt.Errorf("%w: panel width %d", ErrInvalidAppearance, a.PanelWidth)
	case a.ContentHeight <= 0:
		return fmt.Errorf("%w: content height %d", ErrInvalidAppearance, a.ContentHeight)
	case a.CornerRadius < 0, a.BorderWidth < 0, a.PartitionLineThickness < 0, a.ArrowWidth < 0:
		return fmt.Errorf("%w: negative size", ErrInvalidAppearance)
	}
	return nil
}

// border returns the glyph set for the configured border and corner radius.
// ok is false when no border should be drawn.
func (a Appearance) border() (b lipgloss.Border, ok bool) {
	switch {
	case a.BorderWidth <= 0:
		return lipgloss.Border{}, false
	case a.BorderWidth >= 2:
		return lipgloss.ThickBorder(), true
	case a.CornerRadius > 0:
		return lipgloss.RoundedBorder(), true
	default:
		return lipgloss.NormalBorder(), true
	}
}
