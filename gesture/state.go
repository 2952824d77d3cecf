// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// SavedState is the part of a Drag that survives its host being
// recreated. Pointer and phase are not saved; a restored Drag is
// Idle.
type SavedState struct {
	HorizontalDragRange float32 `toml:"horizontal_drag_range"`
	VerticalDragRange   float32 `toml:"vertical_drag_range"`
	DragLimit           float32 `toml:"drag_limit"`
}

// Save returns the state to restore d from.
func (d *Drag) Save() SavedState {
	return SavedState{
		HorizontalDragRange: d.rng.X,
		VerticalDragRange:   d.rng.Y,
		DragLimit:           d.limit,
	}
}

// Restore resets d to Idle and applies s. It returns an error wrapping
// ErrDragLimit, and changes nothing, if s holds an invalid limit.
func (d *Drag) Restore(s SavedState) error {
	if err := d.SetDragLimit(s.DragLimit); err != nil {
		return err
	}
	d.reset()
	d.Resize(s.HorizontalDragRange, s.VerticalDragRange)
	return nil
}

// WriteState encodes s as TOML.
func WriteState(w io.Writer, s SavedState) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("gesture: encode state: %w", err)
	}
	return nil
}

// ReadState decodes a SavedState written by WriteState. Keys it
// doesn't know are an error.
func ReadState(r io.Reader) (SavedState, error) {
	var s SavedState
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return SavedState{}, fmt.Errorf("gesture: decode state: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return SavedState{}, fmt.Errorf("gesture: decode state: unknown key %q", undecoded[0].String())
	}
	return s, nil
}
