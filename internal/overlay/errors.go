package overlay

import "errors"

var (
	// ErrEmptyContent is returned when a presentation has no rows to show.
	ErrEmptyContent = errors.New("overlay: no content")

	// ErrInvalidTouchPoint marks a touch point outside the host bounds. It
	// is logged, never returned: the point is clamped to the nearest edge.
	ErrInvalidTouchPoint = errors.New("overlay: touch point outside host")

	// ErrReentrantPresentation marks a presentation requested while another
	// overlay was alive on the same host. The old one is torn down first.
	ErrReentrantPresentation = errors.New("overlay: presentation while active")

	// ErrInvalidAppearance is returned for appearance sizes that can not be laid out.
	ErrInvalidAppearance = errors.New("overlay: invalid appearance")
)
