// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"golang.org/x/exp/constraints"

	"draghelper.org/f32"
)

// Number is a pixel coordinate, integral or not.
type Number interface {
	constraints.Integer | constraints.Float
}

// DragRange returns the drag range of an axis whose container extent
// is extent. The range is the extent itself; it is recomputed from the
// container on every resize.
func DragRange[T Number](extent T) T {
	return extent
}

// Clamp confines candidate to [minBound, containerExtent-regionExtent],
// computed as min(max(candidate, minBound), containerExtent-regionExtent).
//
// A region that does not fit, either because it is larger than the
// container or because the inset leaves no room for it, saturates to
// minBound whatever the candidate. It stays pinned at the container's
// inset edge.
func Clamp[T Number](candidate, minBound, containerExtent, regionExtent T) T {
	upper := containerExtent - regionExtent
	if regionExtent > containerExtent || upper < minBound {
		return minBound
	}
	v := candidate
	if v < minBound {
		v = minBound
	}
	if v > upper {
		v = upper
	}
	return v
}

// ClampPoint clamps both axes of candidate independently, using inset
// as the lower bounds, rng as the container extents and size as the
// region extents.
func ClampPoint(candidate, inset, rng, size f32.Point) f32.Point {
	return f32.Point{
		X: Clamp(candidate.X, inset.X, rng.X, size.X),
		Y: Clamp(candidate.Y, inset.Y, rng.Y, size.Y),
	}
}

// Hit reports whether p lies in r, inclusive of r.Min and exclusive
// of r.Max. p and r must be in the same coordinate space.
func Hit(p f32.Point, r f32.Rectangle) bool {
	return r.Contains(p)
}
