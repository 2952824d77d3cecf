// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Tag is the stable identifier for a region. Tags are compared
// by identity, so a region's tag is typically a pointer to the
// region's state, &r. Tags must be comparable.
type Tag interface{}
