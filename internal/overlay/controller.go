package overlay

import (
	"image"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Host is the view an overlay is presented in.
type Host interface {
	ID() string
	Bounds() image.Rectangle
}

// StaticHost is a Host with fixed bounds.
type StaticHost struct {
	Name string
	Rect image.Rectangle
}

func (h StaticHost) ID() string              { return h.Name }
func (h StaticHost) Bounds() image.Rectangle { return h.Rect }

// Request describes one presentation.
type Request struct {
	Format     Format
	Delegate   DelegateRef
	Touch      image.Point
	Content    Content
	Appearance Appearance
}

// Option configures a Controller or Manager.
type Option func(*Controller)

// WithLogger sets the logger used for lifecycle and input-policy events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now as the source of animation start times.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithFrameInterval sets the delay between animation frames.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.frameInterval = d
		}
	}
}

// WithMeasurer sets the text measurer used for description bodies.
func WithMeasurer(m Measurer) Option {
	return func(c *Controller) {
		if m != nil {
			c.measurer = m
		}
	}
}

// Controller presents at most one overlay on a single host and runs its
// Idle → Presenting → Presented → Dismissing → Idle lifecycle. It is driven
// entirely from the bubbletea update loop and never blocks.
type Controller struct {
	host          Host
	logger        *slog.Logger
	now           func() time.Time
	frameInterval time.Duration
	measurer      Measurer

	state    State
	inst     *Overlay
	delegate DelegateRef
	anim     animation
	progress float64 // 0 hidden, 1 fully shown
	seq      uint64  // token of the latest scheduled frame; older frames are dropped
	armed    bool    // scrim tap handler installed
	cursor   int     // highlighted row, -1 for none
	nextID   uint64
}

// NewController returns an idle controller for host.
func NewController(host Host, opts ...Option) *Controller {
	c := &Controller{
		host:          host,
		logger:        slog.New(slog.DiscardHandler),
		now:           time.Now,
		frameInterval: DefaultFrameInterval,
		measurer:      WrapMeasurer{},
		cursor:        -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State { return c.state }

// Overlay returns the live overlay, or nil when idle.
func (c *Controller) Overlay() *Overlay { return c.inst }

// Progress returns the presentation progress between 0 and 1.
func (c *Controller) Progress() float64 { return c.progress }

// Highlighted returns the row under the keyboard or pointer highlight, or -1.
func (c *Controller) Highlighted() int { return c.cursor }

// Present validates and lays out req, then starts the entrance animation.
// Validation errors are returned before anything changes and no delegate
// method is called. A presentation while another overlay is alive tears the
// old one down first.
func (c *Controller) Present(req Request) (tea.Cmd, error) {
	bounds := c.host.Bounds()
	touch, clamped := ClampTouch(req.Touch, bounds)
	if clamped {
		c.logger.Warn("clamped touch point", "host", c.host.ID(),
			"touch", req.Touch, "clamped", touch, "err", ErrInvalidTouchPoint)
	}

	placement := Resolve(touch, bounds)
	layout, err := ComputeLayout(req.Format, placement, touch, bounds, req.Content, req.Appearance, c.measurer)
	if err != nil {
		return nil, err
	}

	// DidDismiss may present again, so repeat until the host is clear
	for c.state.active() {
		c.logger.Debug("replacing active overlay", "host", c.host.ID(),
			"state", c.state, "err", ErrReentrantPresentation)
		c.forceDismiss()
	}

	c.nextID++
	content := req.Content
	content.Rows = append([]string(nil), req.Content.Rows...)
	c.inst = &Overlay{
		id:         c.nextID,
		host:       c.host.ID(),
		format:     req.Format,
		placement:  placement,
		touch:      touch,
		content:    content,
		layout:     layout,
		appearance: req.Appearance,
	}
	c.delegate = req.Delegate
	c.state = Presenting
	c.progress = 0
	c.armed = false
	c.cursor = -1

	c.logger.Debug("presenting overlay", "host", c.host.ID(), "format", req.Format,
		"placement", placement, "frame", layout.Frame)
	return c.animateTo(1), nil
}

// Dismiss starts the exit animation. During the entrance animation the
// entrance is cancelled and the exit starts from the current progress.
// Dismissing an idle or already dismissing controller does nothing.
func (c *Controller) Dismiss() tea.Cmd {
	switch c.state {
	case Presenting, Presented:
		c.state = Dismissing
		c.armed = false
		c.cursor = -1
		return c.animateTo(0)
	default:
		return nil
	}
}

// Update advances animations and handles input. handled reports whether the
// message was consumed by the overlay and should not reach the host.
func (c *Controller) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.Host != c.host.ID() {
			return nil, false
		}
		return c.advance(msg), true
	case tea.MouseClickMsg:
		return c.handleClick(tea.Mouse(msg))
	case tea.MouseMotionMsg:
		return c.handleMotion(tea.Mouse(msg))
	case tea.KeyPressMsg:
		return c.handleKey(msg)
	}
	return nil, false
}

func (c *Controller) animateTo(target float64) tea.Cmd {
	c.anim = newAnimation(c.inst.format, c.progress, target, c.now())
	return c.tick()
}

func (c *Controller) tick() tea.Cmd {
	c.seq++
	host, seq := c.host.ID(), c.seq
	return tea.Tick(c.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Host: host, Seq: seq, At: t}
	})
}

func (c *Controller) advance(msg FrameMsg) tea.Cmd {
	if msg.Seq != c.seq || !c.state.animating() {
		return nil
	}
	p, done := c.anim.progressAt(msg.At)
	c.progress = p
	if !done {
		return c.tick()
	}
	if c.state == Presenting {
		c.finishPresenting()
	} else {
		c.finishDismissing()
	}
	// a delegate may have started another animation from its callback
	if c.state.animating() {
		return c.tick()
	}
	return nil
}

func (c *Controller) finishPresenting() {
	c.state = Presented
	c.progress = 1
	c.armed = true
	c.logger.Debug("overlay presented", "host", c.host.ID(), "format", c.inst.format)
	c.delegate.didFinishPresenting(c.inst, c.inst.format)
}

func (c *Controller) finishDismissing() {
	format, delegate := c.inst.format, c.delegate
	c.teardown()
	c.logger.Debug("overlay dismissed", "host", c.host.ID(), "format", format)
	delegate.didDismiss(format)
}

// forceDismiss completes dismissal immediately, without an exit animation.
func (c *Controller) forceDismiss() {
	c.seq++
	c.finishDismissing()
}

func (c *Controller) teardown() {
	c.inst = nil
	c.delegate = DelegateRef{}
	c.state = Idle
	c.progress = 0
	c.armed = false
	c.cursor = -1
}

func (c *Controller) selectRow(index int) tea.Cmd {
	inst := c.inst
	c.logger.Debug("row selected", "host", c.host.ID(), "index", index, "label", inst.Row(index))
	c.delegate.itemSelected(inst, index)
	if c.inst != inst || c.state != Presented {
		// the delegate presented or dismissed from the callback
		if c.state.animating() {
			return c.tick()
		}
		return nil
	}
	return c.Dismiss()
}

func (c *Controller) handleClick(m tea.Mouse) (tea.Cmd, bool) {
	if !c.state.active() {
		return nil, false
	}
	pt := image.Pt(m.X, m.Y)
	if !pt.In(c.host.Bounds()) {
		// the scrim covers this host only
		return nil, false
	}
	if !c.armed {
		// animating: the scrim blocks the host but no tap is recognised yet
		return nil, true
	}
	if !pt.In(c.inst.layout.Frame) {
		return c.Dismiss(), false
	}
	if m.Button != tea.MouseLeft {
		return nil, true
	}
	if !c.inst.selectable() {
		return c.Dismiss(), true
	}
	if i := c.inst.layout.rowAt(pt); i >= 0 {
		return c.selectRow(i), true
	}
	return nil, true
}

func (c *Controller) handleMotion(m tea.Mouse) (tea.Cmd, bool) {
	if !c.armed || !c.inst.selectable() {
		return nil, false
	}
	pt := image.Pt(m.X, m.Y)
	if !pt.In(c.inst.layout.Frame) {
		return nil, false
	}
	if i := c.inst.layout.rowAt(pt); i >= 0 {
		c.cursor = i
	}
	return nil, true
}

func (c *Controller) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if !c.state.active() {
		return nil, false
	}
	if !c.armed {
		if msg.String() == "esc" {
			return c.Dismiss(), true
		}
		return nil, true
	}
	n := c.inst.layout.visibleRows()
	switch msg.String() {
	case "j", "down":
		if c.inst.selectable() && n > 0 {
			c.cursor = min(c.cursor+1, n-1)
		}
	case "k", "up":
		if c.inst.selectable() && n > 0 {
			c.cursor = max(c.cursor-1, 0)
		}
	case "enter":
		if c.inst.selectable() && c.cursor >= 0 && c.cursor < n {
			return c.selectRow(c.cursor), true
		}
		return c.Dismiss(), true
	default:
		// esc and any other key close the overlay
		return c.Dismiss(), true
	}
	return nil, true
}
