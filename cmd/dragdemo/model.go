// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"draghelper.org/f32"
	"draghelper.org/gesture"
	"draghelper.org/internal/config"
	"draghelper.org/io/pointer"
)

const frameInterval = 16 * time.Millisecond

type frameMsg time.Time

type model struct {
	host      *host
	drag      *gesture.Drag
	width     int
	height    int
	statePath string
	logger    *log.Logger
	// start is the base of pointer event times.
	start time.Time
	// intercepting is set once the engine has taken over the
	// current gesture.
	intercepting bool
}

func newModel(cfg config.Config, logger *log.Logger) (*model, error) {
	gc, err := cfg.Drag.Gesture(nil)
	if err != nil {
		return nil, err
	}
	h := &host{inset: f32.Pt(1, 1)}
	h.boxes = append(h.boxes, &box{label: "drag me", handle: true, rect: f32.Rect(1, 1, 15, 6)})
	if gc.Mode == gesture.Multi {
		h.boxes = append(h.boxes,
			&box{label: "note", rect: f32.Rect(20, 2, 32, 6)},
			&box{label: "note", rect: f32.Rect(36, 8, 48, 12)},
		)
	}
	gc.Regions = h.tags()
	gc.Logger = logger
	d, err := gesture.New(h, gc)
	if err != nil {
		return nil, err
	}
	m := &model{
		host:      h,
		drag:      d,
		statePath: cfg.State.Path,
		logger:    logger,
		start:     time.Now(),
	}
	if err := m.restore(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height-1
		m.drag.Resize(float32(m.width), float32(m.height))
	case tea.MouseMsg:
		if e, ok := pointerEvent(msg); ok {
			e.Time = time.Since(m.start)
			m.dispatch(e)
		}
	case frameMsg:
		m.drag.Tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "e":
			m.drag.SetEnabled(!m.drag.Enabled())
		case " ":
			m.drag.SettleTo(m.drag.DragRegion(), m.host.inset)
		}
	}
	return m, m.frame()
}

// dispatch routes e the way a view group does: the engine may
// intercept the gesture, after which it alone receives the events.
func (m *model) dispatch(e pointer.Event) {
	if e.Kind == pointer.Press {
		m.intercepting = false
	}
	if !m.intercepting {
		m.intercepting = m.drag.Intercept(e)
	}
	m.drag.Event(e)
	if e.Terminal() {
		m.intercepting = false
	}
}

// frame schedules the frame the engine asked for, if any.
func (m *model) frame() tea.Cmd {
	if !m.host.pending {
		return nil
	}
	m.host.pending = false
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func pointerEvent(msg tea.MouseMsg) (pointer.Event, bool) {
	e := pointer.Event{
		PointerIDs: []pointer.ID{0},
		Position:   f32.Pt(float32(msg.X), float32(msg.Y)),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return e, false
		}
		e.Kind = pointer.Press
	case tea.MouseActionMotion:
		e.Kind = pointer.Move
	case tea.MouseActionRelease:
		// Terminals that don't report the released button send
		// MouseButtonNone.
		if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
			return e, false
		}
		e.Kind = pointer.Release
	default:
		return e, false
	}
	return e, true
}

func (m *model) restore() error {
	if m.statePath == "" {
		return nil
	}
	f, err := os.Open(m.statePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer f.Close()
	s, err := gesture.ReadState(f)
	if err != nil {
		return err
	}
	if err := m.drag.Restore(s); err != nil {
		return fmt.Errorf("restore state: %w", err)
	}
	m.logger.Printf("restored %+v from %s", s, m.statePath)
	return nil
}

func (m *model) save() error {
	if m.statePath == "" {
		return nil
	}
	f, err := os.Create(m.statePath)
	if err != nil {
		return fmt.Errorf("create state: %w", err)
	}
	if err := gesture.WriteState(f, m.drag.Save()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
