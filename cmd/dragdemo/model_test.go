// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"draghelper.org/f32"
	"draghelper.org/gesture"
	"draghelper.org/internal/config"
	"draghelper.org/io/pointer"
)

func testConfig() config.Config {
	return config.Config{Drag: config.DragConfig{
		Limit:   0.5,
		Enabled: true,
		Mode:    "multi",
		Rest:    "origin",
	}}
}

func newTestModel(t *testing.T, cfg config.Config) *model {
	t.Helper()
	m, err := newModel(cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	return m
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestModelDragAndSettle(t *testing.T) {
	m := newTestModel(t, testConfig())
	if got, want := m.drag.Range(), f32.Pt(80, 24); got != want {
		t.Fatalf("range %v, want %v", got, want)
	}
	handle := m.host.boxes[0]

	m.Update(mouse(tea.MouseActionPress, 3, 3))
	if got := m.drag.Phase(); got != gesture.Dragging {
		t.Fatalf("phase after press on the handle = %v", got)
	}
	m.Update(mouse(tea.MouseActionMotion, 200, 3))
	if got, want := handle.rect.Min, f32.Pt(66, 1); got != want {
		t.Fatalf("handle at %v, want %v", got, want)
	}
	_, cmd := m.Update(mouse(tea.MouseActionRelease, 200, 3))
	if got := m.drag.Phase(); got != gesture.Settling {
		t.Fatalf("phase after release = %v", got)
	}
	if cmd == nil {
		t.Fatal("no frame scheduled for the settle")
	}

	for i := 0; m.drag.Phase() == gesture.Settling; i++ {
		if i > 200 {
			t.Fatal("settle did not finish")
		}
		m.Update(frameMsg{})
		time.Sleep(frameInterval)
	}
	if got, want := handle.rect.Min, f32.Pt(1, 1); got != want {
		t.Errorf("handle settled at %v, want %v", got, want)
	}
}

func TestModelPassiveBoxes(t *testing.T) {
	m := newTestModel(t, testConfig())
	if len(m.host.boxes) != 3 {
		t.Fatalf("%d boxes in multi mode, want 3", len(m.host.boxes))
	}
	note := m.host.boxes[1]
	start := note.rect
	m.Update(mouse(tea.MouseActionPress, 22, 3))
	m.Update(mouse(tea.MouseActionMotion, 40, 10))
	m.Update(mouse(tea.MouseActionRelease, 40, 10))
	if note.rect != start {
		t.Errorf("passive box moved to %v", note.rect)
	}
	if got := m.drag.Phase(); got != gesture.Idle {
		t.Errorf("phase = %v, want Idle", got)
	}
}

func TestModelSingleMode(t *testing.T) {
	cfg := testConfig()
	cfg.Drag.Mode = "single"
	m := newTestModel(t, cfg)
	if len(m.host.boxes) != 1 {
		t.Errorf("%d boxes in single mode, want 1", len(m.host.boxes))
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, testConfig())
	v := m.View()
	for _, want := range []string{"drag me", "note", "Idle", "┏"} {
		if !strings.Contains(v, want) {
			t.Errorf("view lacks %q", want)
		}
	}
}

func TestModelStatePersistence(t *testing.T) {
	cfg := testConfig()
	cfg.Drag.Limit = 0.3
	cfg.State.Path = filepath.Join(t.TempDir(), "drag.state")

	m := newTestModel(t, cfg)
	if err := m.save(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.State.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "drag_limit") {
		t.Errorf("state file lacks the drag limit:\n%s", data)
	}

	cfg.Drag.Limit = 0.5
	restored, err := newModel(cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	if got := restored.drag.DragLimit(); got != 0.3 {
		t.Errorf("restored limit %v, want 0.3", got)
	}
	if got, want := restored.drag.Range(), f32.Pt(80, 24); got != want {
		t.Errorf("restored range %v, want %v", got, want)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, testConfig())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce a QuitMsg")
	}
}

func TestPointerEventButtons(t *testing.T) {
	for _, tc := range []struct {
		name string
		msg  tea.MouseMsg
		kind pointer.Kind
		ok   bool
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, pointer.Press, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, pointer.Release, true},
		{"unknown button release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, pointer.Release, true},
		{"right release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonRight}, 0, false},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, X: 4, Y: 2}, pointer.Move, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := pointerEvent(tc.msg)
			if ok != tc.ok {
				t.Fatalf("pointerEvent ok = %v, want %v", ok, tc.ok)
			}
			if ok && e.Kind != tc.kind {
				t.Errorf("kind = %v, want %v", e.Kind, tc.kind)
			}
		})
	}
}

func TestModelRightReleaseKeepsDrag(t *testing.T) {
	m := newTestModel(t, testConfig())
	m.Update(mouse(tea.MouseActionPress, 3, 3))
	m.Update(tea.MouseMsg{X: 10, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight})
	if got := m.drag.Phase(); got != gesture.Dragging {
		t.Fatalf("right button release ended the drag: %v", got)
	}
	m.Update(mouse(tea.MouseActionMotion, 13, 3))
	if got, want := m.host.boxes[0].rect.Min, f32.Pt(11, 1); got != want {
		t.Errorf("handle at %v, want %v", got, want)
	}
}
