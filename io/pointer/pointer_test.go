// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	for _, tc := range []struct {
		typ Kind
		res string
	}{
		{Cancel, "Cancel"},
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Press | Release, "Press|Release"},
		{Press | Release | Move, "Press|Release|Move"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.typ.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestPointerIDAt(t *testing.T) {
	e := Event{
		Kind:        Press,
		ActionIndex: 1,
		PointerIDs:  []ID{7, 3},
	}
	if got, want := e.ActionID(), ID(3); got != want {
		t.Errorf("ActionID = %v, want %v", got, want)
	}
	// The action index is not a pointer id.
	if got := e.PointerIDAt(e.ActionIndex); got == ID(e.ActionIndex) {
		t.Errorf("PointerIDAt returned the index %d", e.ActionIndex)
	}
	for _, i := range []int{-1, 2, 10} {
		if got := e.PointerIDAt(i); got != None {
			t.Errorf("PointerIDAt(%d) = %v, want None", i, got)
		}
	}
	var empty Event
	if got := empty.ActionID(); got != None {
		t.Errorf("ActionID of event without pointers = %v, want None", got)
	}
}

func TestTerminal(t *testing.T) {
	for k, want := range map[Kind]bool{Press: false, Move: false, Release: true, Cancel: true} {
		if got := (Event{Kind: k}).Terminal(); got != want {
			t.Errorf("%v.Terminal() = %v, want %v", k, got, want)
		}
	}
}
