// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"draghelper.org/f32"
	"draghelper.org/io/event"
)

// A box is a region of the terminal container.
type box struct {
	label  string
	handle bool
	rect   f32.Rectangle
}

// host is the terminal container. Coordinates are cells, with the
// origin in the top left corner of the terminal.
type host struct {
	inset f32.Point
	boxes []*box
	// pending is set when the engine asks for a frame.
	pending bool
}

func (h *host) Inset() f32.Point {
	return h.inset
}

func (h *host) Bounds(tag event.Tag) (f32.Rectangle, bool) {
	b := h.find(tag)
	if b == nil {
		return f32.Rectangle{}, false
	}
	return b.rect, true
}

func (h *host) Move(tag event.Tag, pos f32.Point) {
	if b := h.find(tag); b != nil {
		b.rect = b.rect.At(pos)
	}
}

func (h *host) Invalidate() {
	h.pending = true
}

func (h *host) find(tag event.Tag) *box {
	b, ok := tag.(*box)
	if !ok {
		return nil
	}
	for _, hb := range h.boxes {
		if hb == b {
			return b
		}
	}
	return nil
}

func (h *host) tags() []event.Tag {
	tags := make([]event.Tag, len(h.boxes))
	for i, b := range h.boxes {
		tags[i] = b
	}
	return tags
}
