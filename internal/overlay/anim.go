package overlay

import (
	"math"
	"time"
)

// Fixed animation timings. The side menu slide is the faster of the two.
const (
	SideMenuAnimationDuration = 250 * time.Millisecond
	OverlayAnimationDuration  = 500 * time.Millisecond

	DefaultFrameInterval = 16 * time.Millisecond
)

// FrameMsg advances the animation of the overlay on Host. Frames whose Seq
// does not match the controller's current animation are stale and dropped.
type FrameMsg struct {
	Host string
	Seq  uint64
	At   time.Time
}

// animation interpolates presentation progress (0 hidden, 1 shown) between
// from and to.
type animation struct {
	from, to float64
	start    time.Time
	duration time.Duration
}

func animationDuration(f Format) time.Duration {
	if f == SideMenu {
		return SideMenuAnimationDuration
	}
	return OverlayAnimationDuration
}

// newAnimation scales the format's full duration by the distance left to
// travel, so a reversed animation takes only as long as the part it undoes.
func newAnimation(f Format, from, to float64, start time.Time) animation {
	d := time.Duration(float64(animationDuration(f)) * math.Abs(to-from))
	return animation{from: from, to: to, start: start, duration: d}
}

func (a animation) progressAt(t time.Time) (p float64, done bool) {
	if a.duration <= 0 {
		return a.to, true
	}
	frac := float64(t.Sub(a.start)) / float64(a.duration)
	if frac >= 1 {
		return a.to, true
	}
	if frac < 0 {
		frac = 0
	}
	return a.from + (a.to-a.from)*easeOutCubic(frac), false
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
