// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"draghelper.org/f32"
	"draghelper.org/io/event"
)

// Release describes a region at the moment its pointer lifts.
type Release struct {
	Tag event.Tag
	// Position is the region's top left corner.
	Position f32.Point
	// Origin is where the region was when it was captured.
	Origin f32.Point
	Size   f32.Point
	// Range is the drag range of the container.
	Range f32.Point
	// Inset is the container padding.
	Inset f32.Point
	// Limit is the configured drag limit.
	Limit float32
}

// A RestFunc decides where a released region settles.
type RestFunc func(r Release) f32.Point

// ReturnToOrigin settles a region back where it was captured.
func ReturnToOrigin(r Release) f32.Point {
	return r.Origin
}

// SnapVertical collapses a region to the bottom of the container once
// it is released past Limit of the vertical range, and opens it to the
// top inset otherwise. The horizontal position is kept.
func SnapVertical(r Release) f32.Point {
	return f32.Point{
		X: r.Position.X,
		Y: snap(r.Position.Y, r.Inset.Y, r.Range.Y, r.Size.Y, r.Limit),
	}
}

// SnapHorizontal is like SnapVertical for the horizontal axis.
func SnapHorizontal(r Release) f32.Point {
	return f32.Point{
		X: snap(r.Position.X, r.Inset.X, r.Range.X, r.Size.X, r.Limit),
		Y: r.Position.Y,
	}
}

func snap(pos, inset, rng, size, limit float32) float32 {
	if pos > rng*limit {
		return Clamp(rng-size, inset, rng, size)
	}
	return inset
}
