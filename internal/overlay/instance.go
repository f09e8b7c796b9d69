package overlay

import (
	"image"
	"slices"
)

// Overlay is the handle of one presented panel. It is handed to delegates
// and stays valid for reading after dismissal, but the controller forgets it
// once the exit animation completes.
type Overlay struct {
	id         uint64
	host       string
	format     Format
	placement  Placement
	touch      image.Point
	content    Content
	layout     Layout
	appearance Appearance
}

func (o *Overlay) ID() uint64             { return o.id }
func (o *Overlay) HostID() string         { return o.host }
func (o *Overlay) Format() Format         { return o.format }
func (o *Overlay) Placement() Placement   { return o.placement }
func (o *Overlay) Touch() image.Point     { return o.touch }
func (o *Overlay) Frame() image.Rectangle { return o.layout.Frame }
func (o *Overlay) Appearance() Appearance { return o.appearance }
func (o *Overlay) Header() string         { return o.content.Header }
func (o *Overlay) Body() string           { return o.content.Body }
func (o *Overlay) Rows() []string         { return slices.Clone(o.content.Rows) }
func (o *Overlay) Layout() Layout         { return o.layout.clone() }

// Row returns the label at index, or "" when index is out of range.
func (o *Overlay) Row(index int) string {
	if index < 0 || index >= len(o.content.Rows) {
		return ""
	}
	return o.content.Rows[index]
}

// selectable reports whether the panel's rows report selections.
func (o *Overlay) selectable() bool { return o.format != DescriptionOverlay }

func (l Layout) clone() Layout {
	l.Partitions = slices.Clone(l.Partitions)
	l.Rows = slices.Clone(l.Rows)
	return l
}

// translate shifts every rectangle of the layout by d.
func (l Layout) translate(d image.Point) Layout {
	if d == (image.Point{}) {
		return l
	}
	out := Layout{
		Frame: l.Frame.Add(d),
		Arrow: Arrow{Rect: l.Arrow.Rect.Add(d), Direction: l.Arrow.Direction},
	}
	for _, r := range l.Partitions {
		out.Partitions = append(out.Partitions, r.Add(d))
	}
	for _, r := range l.Rows {
		out.Rows = append(out.Rows, r.Add(d))
	}
	return out
}
