package overlay

// State is the lifecycle state of a Controller.
type State int

const (
	Idle State = iota
	Presenting
	Presented
	Dismissing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Presenting:
		return "presenting"
	case Presented:
		return "presented"
	case Dismissing:
		return "dismissing"
	default:
		return "unknown"
	}
}

// active reports whether an overlay instance is alive.
func (s State) active() bool { return s != Idle }

// animating reports whether a frame message can move the state forward.
func (s State) animating() bool { return s == Presenting || s == Dismissing }
