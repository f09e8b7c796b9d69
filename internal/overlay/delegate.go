package overlay

import "weak"

// Delegate receives the lifecycle and selection events of an overlay.
type Delegate interface {
	ItemSelected(o *Overlay, index int)
	DidFinishPresenting(o *Overlay, f Format)
	DidDismiss(f Format)
}

// DelegateRef is a non-owning handle to a Delegate. Calls through a zero
// DelegateRef, or one whose delegate has been garbage collected, are skipped.
type DelegateRef struct {
	get func() Delegate
}

// Weak references a pointer delegate without keeping it alive.
func Weak[T any, P interface {
	*T
	Delegate
}](d P) DelegateRef {
	if d == nil {
		return DelegateRef{}
	}
	wp := weak.Make((*T)(d))
	return DelegateRef{get: func() Delegate {
		v := wp.Value()
		if v == nil {
			return nil
		}
		return P(v)
	}}
}

// Strong wraps a delegate that the caller does not need to release, such as
// a value type or a long-lived singleton.
func Strong(d Delegate) DelegateRef {
	if d == nil {
		return DelegateRef{}
	}
	return DelegateRef{get: func() Delegate { return d }}
}

func (r DelegateRef) resolve() Delegate {
	if r.get == nil {
		return nil
	}
	return r.get()
}

func (r DelegateRef) itemSelected(o *Overlay, index int) {
	if d := r.resolve(); d != nil {
		d.ItemSelected(o, index)
	}
}

func (r DelegateRef) didFinishPresenting(o *Overlay, f Format) {
	if d := r.resolve(); d != nil {
		d.DidFinishPresenting(o, f)
	}
}

func (r DelegateRef) didDismiss(f Format) {
	if d := r.resolve(); d != nil {
		d.DidDismiss(f)
	}
}
