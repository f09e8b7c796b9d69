package main

import (
	"image"

	"github.com/golangsnmp/overlaykit/internal/overlay"
)

// hostPane is one of the demo panes overlays are presented in. It is also
// the delegate for its own overlays, so callbacks know which pane they
// came from.
type hostPane struct {
	name string
	rect image.Rectangle
	log  *eventLog
}

func newHostPane(name string, log *eventLog) *hostPane {
	return &hostPane{name: name, log: log}
}

func (h *hostPane) ID() string              { return h.name }
func (h *hostPane) Bounds() image.Rectangle { return h.rect }

// local converts a screen point to pane-relative coordinates.
func (h *hostPane) local(pt image.Point) image.Point {
	return pt.Sub(h.rect.Min)
}

func (h *hostPane) contains(pt image.Point) bool {
	return pt.In(h.rect)
}

func (h *hostPane) ItemSelected(o *overlay.Overlay, index int) {
	label := o.Row(index)
	h.log.addf(h.name, eventSelect, "%s row %d %q", o.Format(), index, label)
	h.log.pending = append(h.log.pending, selection{
		host:   h,
		format: o.Format(),
		touch:  o.Touch(),
		index:  index,
		label:  label,
	})
}

func (h *hostPane) DidFinishPresenting(o *overlay.Overlay, f overlay.Format) {
	fr := o.Frame()
	h.log.addf(h.name, eventPresent, "%s shown %s at %d,%d %dx%d",
		f, o.Placement(), fr.Min.X, fr.Min.Y, fr.Dx(), fr.Dy())
}

func (h *hostPane) DidDismiss(f overlay.Format) {
	h.log.addf(h.name, eventDismiss, "%s dismissed", f)
}
