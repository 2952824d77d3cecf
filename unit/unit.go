// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Distances the drag engine reasons about
before any pixel is touched, such as the touch slop, are given in dp.

Pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays.
*/
package unit

import "math"

// Metric converts dp to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
}

// Dp represents device independent pixels. 1 dp will
// have the same apparent size across platforms and
// display resolutions.
type Dp float32

// Dp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(c.PxPerDp)) * float64(v)))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
