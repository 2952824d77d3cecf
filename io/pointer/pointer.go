// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer describes the raw pointer events a host delivers
to a drag engine.

An Event carries the pointer ids of every pointer that is down,
indexed the way platforms report them, and the ActionIndex of the
pointer the event is about. Use PointerIDAt(ActionIndex) to learn
which pointer pressed or lifted.
*/
package pointer

import (
	"strconv"
	"strings"
	"time"

	"draghelper.org/f32"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// ActionIndex is the index into PointerIDs of the pointer
	// that changed state.
	ActionIndex int
	// PointerIDs lists the ids of the pointers in the event. The
	// id of a pointer stays the same from Press to Release or
	// Cancel.
	PointerIDs []ID
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Position is the coordinates of the event in the
	// coordinate space of the receiving container.
	Position f32.Point
}

// ID identifies a pointer.
type ID int32

// Kind of an Event.
type Kind uint8

// None is the id of no pointer.
const None ID = -1

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
)

// PointerIDAt returns the id of the pointer at index i, or None
// if the event has no pointer at that index.
func (e Event) PointerIDAt(i int) ID {
	if i < 0 || i >= len(e.PointerIDs) {
		return None
	}
	return e.PointerIDs[i]
}

// ActionID returns the id of the pointer the event is about.
func (e Event) ActionID() ID {
	return e.PointerIDAt(e.ActionIndex)
}

// Terminal reports whether e ends a gesture.
func (e Event) Terminal() bool {
	return e.Kind == Release || e.Kind == Cancel
}

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	default:
		panic("unknown Type")
	}
}

func (id ID) String() string {
	if id == None {
		return "None"
	}
	return "#" + strconv.Itoa(int(id))
}
