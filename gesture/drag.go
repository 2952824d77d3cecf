// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements a drag and settle engine for a container
of draggable regions.

A Drag accepts low level pointer Events from its host, decides
whether a region is captured by the gesture, confines the captured
region to the container while it is dragged and, once the pointer
lifts, slides the region to its rest position one frame at a time.

The host owns the regions. Drag refers to them by their event.Tag and
asks the host for their current bounds whenever it needs them; it
moves a region only by asking the host to move it.

Drag is not safe for concurrent use. Pointer events and frame ticks
must be delivered from the same goroutine, usually the UI loop.
*/
package gesture

import (
	"fmt"
	"log"
	"math"
	"time"

	"golang.org/x/exp/slices"

	"draghelper.org/f32"
	"draghelper.org/internal/settle"
	"draghelper.org/io/event"
	"draghelper.org/io/pointer"
	"draghelper.org/unit"
)

// Host is the container a Drag works for.
type Host interface {
	// Inset returns the container's left and top padding. A dragged
	// region never moves above or left of it.
	Inset() f32.Point
	// Bounds returns the current bounds of a region, in the same
	// coordinate space as pointer positions. It reports false if the
	// host no longer has the region.
	Bounds(tag event.Tag) (f32.Rectangle, bool)
	// Move asks the host to place the top left corner of a region
	// at pos.
	Move(tag event.Tag, pos f32.Point)
	// Invalidate asks the host for a new frame, in which it must call
	// Tick.
	Invalidate()
}

// Drag tracks a single pointer through capture, drag and settle.
type Drag struct {
	host    Host
	regions []event.Tag
	handle  event.Tag
	limit   float32
	// limits holds the per region overrides of limit.
	limits  map[event.Tag]float32
	enabled bool
	slop    unit.Dp
	metric  unit.Metric
	rest    RestFunc
	clock   func() time.Time
	logger  *log.Logger

	// rng is the drag range, recomputed on every Resize.
	rng f32.Point

	phase      Phase
	hasPointer bool
	pid        pointer.ID
	down       f32.Point
	last       f32.Point

	captured event.Tag
	// origin is the captured region's position at capture and
	// grab the pointer position at capture.
	origin f32.Point
	grab   f32.Point
	pos    f32.Point

	anim   settle.Animation
	target SettleTarget
}

// Config configures a Drag.
type Config struct {
	Mode Mode
	// Regions lists the region tags. In Single mode it must have
	// exactly one element. In Multi mode the first region is the drag
	// handle and the rest are passive.
	Regions []event.Tag
	// DragLimit is passed to Rest; zero means DefaultDragLimit.
	DragLimit float32
	// Limits overrides DragLimit for individual regions.
	Limits   map[event.Tag]float32
	Disabled bool
	// TouchSlop is how far a pointer must travel before a press
	// outside the drag handle is decided. Zero means DefaultTouchSlop.
	TouchSlop unit.Dp
	Metric    unit.Metric
	// Rest picks the settle destination on release. Nil means
	// ReturnToOrigin.
	Rest RestFunc
	// Clock defaults to time.Now.
	Clock  func() time.Time
	Logger *log.Logger
}

// SettleTarget is the destination of a settle.
type SettleTarget struct {
	Tag      event.Tag
	Position f32.Point
}

// Mode selects which regions of a container can be dragged.
type Mode uint8

// Phase is the phase of a Drag.
type Phase uint8

const (
	// Multi hosts a drag handle, the first region, and passive
	// siblings that are only hit tested.
	Multi Mode = iota
	// Single hosts exactly one region, the drag handle.
	Single
)

const (
	// Idle is the phase without a gesture.
	Idle Phase = iota
	// Tracking is reported while a pointer is down and no region
	// has been captured.
	Tracking
	// Dragging is reported while a captured region follows the
	// pointer.
	Dragging
	// Settling is reported while a released region slides to its
	// rest position.
	Settling
)

const (
	// DefaultDragLimit is the drag limit of a Config without one.
	DefaultDragLimit = 0.5
	// DefaultTouchSlop is the touch slop of a Config without one.
	DefaultTouchSlop = unit.Dp(8)
)

// New returns a Drag for host. It returns an error wrapping ErrConfig
// if cfg is invalid.
func New(host Host, cfg Config) (*Drag, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: nil host", ErrConfig)
	}
	if err := validateRegions(cfg.Mode, cfg.Regions); err != nil {
		return nil, err
	}
	d := &Drag{
		host:    host,
		regions: slices.Clone(cfg.Regions),
		handle:  cfg.Regions[0],
		limit:   DefaultDragLimit,
		enabled: !cfg.Disabled,
		slop:    cfg.TouchSlop,
		metric:  cfg.Metric,
		rest:    cfg.Rest,
		clock:   cfg.Clock,
		logger:  cfg.Logger,
		pid:     pointer.None,
	}
	if cfg.DragLimit != 0 {
		if err := d.SetDragLimit(cfg.DragLimit); err != nil {
			return nil, err
		}
	}
	for tag, limit := range cfg.Limits {
		if err := d.SetRegionLimit(tag, limit); err != nil {
			return nil, err
		}
	}
	if d.slop == 0 {
		d.slop = DefaultTouchSlop
	}
	if d.rest == nil {
		d.rest = ReturnToOrigin
	}
	if d.clock == nil {
		d.clock = time.Now
	}
	return d, nil
}

func validateRegions(mode Mode, regions []event.Tag) error {
	switch {
	case len(regions) == 0:
		return ErrNoRegions
	case mode == Single && len(regions) != 1:
		return fmt.Errorf("%w (got %d)", ErrRegionCount, len(regions))
	}
	for i, tag := range regions {
		if tag == nil {
			return fmt.Errorf("%w at index %d", ErrNilRegion, i)
		}
		if slices.Index(regions[:i], tag) >= 0 {
			return fmt.Errorf("%w at index %d", ErrDuplicateRegion, i)
		}
	}
	return nil
}

// SetDragLimit sets the drag limit. It returns ErrDragLimit and
// leaves the limit unchanged unless 0 < limit < 1.
func (d *Drag) SetDragLimit(limit float32) error {
	if !validLimit(limit) {
		return fmt.Errorf("%w (got %v)", ErrDragLimit, limit)
	}
	d.limit = limit
	return nil
}

func validLimit(limit float32) bool {
	return limit > 0 && limit < 1
}

// DragLimit returns the drag limit.
func (d *Drag) DragLimit() float32 {
	return d.limit
}

// SetRegionLimit overrides the drag limit for the region tag. It
// returns ErrDragLimit unless 0 < limit < 1, and an error wrapping
// ErrConfig if tag is not one of the regions.
func (d *Drag) SetRegionLimit(tag event.Tag, limit float32) error {
	if slices.Index(d.regions, tag) < 0 {
		return fmt.Errorf("%w: limit for unknown region %v", ErrConfig, tag)
	}
	if !validLimit(limit) {
		return fmt.Errorf("%w (got %v for region %v)", ErrDragLimit, limit, tag)
	}
	if d.limits == nil {
		d.limits = make(map[event.Tag]float32)
	}
	d.limits[tag] = limit
	return nil
}

// RegionLimit returns the drag limit that applies to the region tag.
func (d *Drag) RegionLimit(tag event.Tag) float32 {
	if l, ok := d.limits[tag]; ok {
		return l
	}
	return d.limit
}

// SetEnabled enables or disables interception.
func (d *Drag) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// Enabled reports whether d intercepts events.
func (d *Drag) Enabled() bool {
	return d.enabled
}

// Resize recomputes the drag range from the container size. It may be
// called at any time, including in the middle of a drag.
func (d *Drag) Resize(width, height float32) {
	d.rng = f32.Point{
		X: DragRange(nonNegative(width)),
		Y: DragRange(nonNegative(height)),
	}
}

// Range returns the horizontal and vertical drag range.
func (d *Drag) Range() f32.Point {
	return d.rng
}

// Phase reports the phase of the engine.
func (d *Drag) Phase() Phase {
	return d.phase
}

// ActivePointer returns the id of the tracked pointer, or pointer.None.
func (d *Drag) ActivePointer() pointer.ID {
	if !d.hasPointer {
		return pointer.None
	}
	return d.pid
}

// Captured returns the tag of the dragged region, or nil.
func (d *Drag) Captured() event.Tag {
	return d.captured
}

// DragRegion returns the tag of the only region that can be captured.
func (d *Drag) DragRegion() event.Tag {
	return d.handle
}

// Regions returns the region tags in registration order.
func (d *Drag) Regions() []event.Tag {
	return slices.Clone(d.regions)
}

// Target returns the destination of the current settle.
func (d *Drag) Target() (SettleTarget, bool) {
	return d.target, d.phase == Settling
}

// Intercept reports whether d wants the pointer stream before the
// container's children see it. Once it returns true, the host must
// route the rest of the gesture to Event only.
//
// A Cancel, or a Release of the active pointer, abandons any drag in
// progress and is never intercepted, so a gesture d no longer owns
// still ends where it started. Releases of other pointers are ignored.
func (d *Drag) Intercept(e pointer.Event) bool {
	if d.host == nil || !d.enabled {
		return false
	}
	switch e.Kind {
	case pointer.Release:
		if d.hasPointer && e.ActionID() != d.pid {
			// Another pointer lifted; the gesture goes on.
			break
		}
		d.cancel()
		return false
	case pointer.Cancel:
		d.cancel()
		return false
	case pointer.Press:
		if e.ActionID() == pointer.None {
			d.logf("intercept at %v: %v", e.Time, ErrInvalidPointer)
			return false
		}
		d.press(e)
	case pointer.Move:
		if d.phase == Tracking && d.owns(e) {
			d.last = e.Position
			d.decide(e.Time)
		}
	}
	return d.phase == Dragging
}

// Event processes a pointer event and reports whether it landed on
// one of the regions. Events are ignored until a press has
// established an active pointer.
func (d *Drag) Event(e pointer.Event) bool {
	if d.host == nil {
		return false
	}
	if e.Kind == pointer.Press {
		if e.ActionID() == pointer.None {
			d.logf("event at %v: %v", e.Time, ErrInvalidPointer)
		} else {
			d.press(e)
		}
	}
	if !d.hasPointer {
		return false
	}
	d.process(e)
	return d.hitAny(e.Position)
}

func (d *Drag) process(e pointer.Event) {
	switch e.Kind {
	case pointer.Move:
		if !d.owns(e) {
			return
		}
		d.last = e.Position
		switch d.phase {
		case Tracking:
			d.decide(e.Time)
		case Dragging:
			d.dragTo(e.Position)
		}
	case pointer.Release:
		if e.ActionID() != d.pid {
			return
		}
		d.last = e.Position
		d.release()
	case pointer.Cancel:
		d.cancel()
	}
}

// press starts a gesture. A press while another pointer is active is
// ignored, which also makes delivering the same press to both
// Intercept and Event harmless.
func (d *Drag) press(e pointer.Event) {
	if d.hasPointer {
		return
	}
	if d.phase == Settling {
		d.anim.Stop()
		d.target = SettleTarget{}
	}
	d.hasPointer = true
	d.pid = e.ActionID()
	d.down, d.last = e.Position, e.Position
	d.phase = Tracking
	if tag, ok := d.regionUnder(e.Position); ok && tag == d.handle {
		d.capture(tag)
	}
}

// decide makes the capture decision for a press that did not land on
// the drag handle, once the pointer has left the touch slop.
func (d *Drag) decide(t time.Duration) {
	if !d.pastSlop(d.last.Sub(d.down)) {
		return
	}
	tag, ok := d.regionUnder(d.last)
	if ok && d.capture(tag) {
		return
	}
	d.logf("capture rejected at %v after %v", d.last, t)
	d.reset()
}

func (d *Drag) pastSlop(delta f32.Point) bool {
	slop := float32(d.metric.Dp(d.slop))
	return (d.rng.X > 0 && abs(delta.X) > slop) ||
		(d.rng.Y > 0 && abs(delta.Y) > slop)
}

// capture makes tag the dragged region if it is the drag handle.
func (d *Drag) capture(tag event.Tag) bool {
	if tag != d.handle {
		return false
	}
	r, ok := d.bounds(tag)
	if !ok {
		return false
	}
	d.captured = tag
	d.origin = r.Min
	d.pos = r.Min
	d.grab = d.last
	d.phase = Dragging
	return true
}

func (d *Drag) dragTo(p f32.Point) {
	r, ok := d.bounds(d.captured)
	if !ok {
		d.reset()
		return
	}
	candidate := d.origin.Add(p.Sub(d.grab))
	d.pos = ClampPoint(candidate, d.host.Inset(), d.rng, r.Size())
	d.host.Move(d.captured, d.pos)
}

func (d *Drag) release() {
	if d.phase != Dragging {
		d.reset()
		return
	}
	r, ok := d.bounds(d.captured)
	if !ok {
		d.reset()
		return
	}
	tag := d.captured
	dest := d.rest(Release{
		Tag:      tag,
		Position: r.Min,
		Origin:   d.origin,
		Size:     r.Size(),
		Range:    d.rng,
		Inset:    d.host.Inset(),
		Limit:    d.RegionLimit(tag),
	})
	d.endPointer()
	if !d.SettleTo(tag, dest) {
		d.phase = Idle
	}
}

// cancel abandons the pointer. A drag in progress ends without
// settling; a settle in progress continues.
func (d *Drag) cancel() {
	switch d.phase {
	case Tracking, Dragging:
		d.reset()
	default:
		d.endPointer()
	}
}

func (d *Drag) endPointer() {
	d.hasPointer = false
	d.pid = pointer.None
	d.captured = nil
}

func (d *Drag) reset() {
	d.endPointer()
	d.anim.Stop()
	d.target = SettleTarget{}
	d.phase = Idle
}

// SettleTo starts sliding the region to pos and reports whether the
// settle was accepted. It is rejected by an uninitialized Drag, for
// regions the host doesn't have and for regions already at pos.
// An accepted settle ends any drag in progress and asks the host for a
// frame.
func (d *Drag) SettleTo(tag event.Tag, pos f32.Point) bool {
	if d.host == nil {
		return false
	}
	r, ok := d.bounds(tag)
	if !ok || r.Min == pos {
		return false
	}
	d.endPointer()
	d.anim.Start(d.clock(), r.Min, pos, settle.Duration(pos.Sub(r.Min), d.rng))
	d.target = SettleTarget{Tag: tag, Position: pos}
	d.phase = Settling
	d.host.Invalidate()
	return true
}

// Tick advances a settle by one frame and reports whether more frames
// are needed. While it returns true, d has asked the host for another
// frame.
func (d *Drag) Tick() bool {
	if d.phase != Settling {
		return false
	}
	tag := d.target.Tag
	pos, active := d.anim.Tick(d.clock())
	if _, ok := d.bounds(tag); !ok {
		d.reset()
		return false
	}
	d.host.Move(tag, pos)
	if !active {
		d.target = SettleTarget{}
		d.phase = Idle
		return false
	}
	d.host.Invalidate()
	return true
}

// Abort stops any gesture or settle where it is.
func (d *Drag) Abort() {
	d.reset()
}

// owns reports whether the active pointer is part of e.
func (d *Drag) owns(e pointer.Event) bool {
	return d.hasPointer && slices.Index(e.PointerIDs, d.pid) >= 0
}

// regionUnder returns the topmost region containing p. Later regions
// are on top of earlier ones.
func (d *Drag) regionUnder(p f32.Point) (event.Tag, bool) {
	for i := len(d.regions) - 1; i >= 0; i-- {
		tag := d.regions[i]
		if r, ok := d.bounds(tag); ok && Hit(p, r) {
			return tag, true
		}
	}
	return nil, false
}

// hitAny reports whether any region contains p.
func (d *Drag) hitAny(p f32.Point) bool {
	for _, tag := range d.regions {
		if r, ok := d.bounds(tag); ok && Hit(p, r) {
			return true
		}
	}
	return false
}

func (d *Drag) bounds(tag event.Tag) (f32.Rectangle, bool) {
	r, ok := d.host.Bounds(tag)
	if !ok {
		d.logf("%v: %v", ErrMissingRegion, tag)
	}
	return r, ok
}

func (d *Drag) logf(format string, args ...interface{}) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case Tracking:
		return "Tracking"
	case Dragging:
		return "Dragging"
	case Settling:
		return "Settling"
	default:
		panic("invalid Phase")
	}
}

func (m Mode) String() string {
	switch m {
	case Multi:
		return "Multi"
	case Single:
		return "Single"
	default:
		panic("invalid Mode")
	}
}

func nonNegative(v float32) float32 {
	if v < 0 || v != v {
		return 0
	}
	return v
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
