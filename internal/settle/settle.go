// SPDX-License-Identifier: Unlicense OR MIT

// Package settle animates a region from where it was released to
// its rest position over a fixed duration.
package settle

import (
	"math"
	"time"

	"draghelper.org/f32"
)

// Animation slides a point from one position to another.
type Animation struct {
	t0       time.Time
	duration time.Duration
	from, to f32.Point
	active   bool
}

const (
	baseDuration = 256 * time.Millisecond
	maxDuration  = 600 * time.Millisecond
)

// Start the animation at now. A zero or negative duration
// completes on the first Tick.
func (a *Animation) Start(now time.Time, from, to f32.Point, duration time.Duration) {
	*a = Animation{
		t0:       now,
		duration: duration,
		from:     from,
		to:       to,
		active:   true,
	}
}

// Active reports whether the animation has frames left.
func (a *Animation) Active() bool {
	return a.active
}

// Stop the animation where it is.
func (a *Animation) Stop() {
	a.active = false
}

// Tick computes the position at now. The second result is false
// once the destination is reached; the position returned with it is
// exactly the destination.
func (a *Animation) Tick(now time.Time) (f32.Point, bool) {
	if !a.active {
		return a.to, false
	}
	elapsed := now.Sub(a.t0)
	if elapsed >= a.duration {
		a.active = false
		return a.to, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	f := interpolate(float32(elapsed) / float32(a.duration))
	return a.from.Add(a.to.Sub(a.from).Mul(f)), true
}

// interpolate is a quintic ease out: fast at first, slowing into
// the destination.
func interpolate(t float32) float32 {
	t -= 1
	return t*t*t*t*t + 1
}

// Duration computes how long a settle across delta should take given
// the drag range of each axis. Each axis takes longer the larger its
// share of the range, up to a fixed maximum, and the axes are weighted
// by how much of the distance they cover.
func Duration(delta, rng f32.Point) time.Duration {
	dx, dy := abs(delta.X), abs(delta.Y)
	sum := dx + dy
	if sum == 0 {
		return 0
	}
	xd := axisDuration(dx, rng.X)
	yd := axisDuration(dy, rng.Y)
	return time.Duration(float32(xd)*(dx/sum) + float32(yd)*(dy/sum))
}

func axisDuration(d, rng float32) time.Duration {
	if d == 0 {
		return 0
	}
	if rng <= 0 {
		return maxDuration
	}
	dur := time.Duration((d/rng + 1) * float32(baseDuration))
	if dur > maxDuration {
		dur = maxDuration
	}
	return dur
}

func abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
