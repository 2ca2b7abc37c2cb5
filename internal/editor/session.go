// Package editor wires the scene, the history stack and the tool state into
// a session, and runs the pointer-driven interaction state machine. All
// scene mutation funnels through here; the renderer only reads.
package editor

import (
	"log/slog"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/geom"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/history"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/scene"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/transform"
)

// Tool is the active editing tool.
type Tool string

const (
	ToolFreehand Tool = "freehand"
	ToolCircle   Tool = "circle"
	ToolRect     Tool = "rect"
	ToolArrow    Tool = "arrow"
	ToolSelect   Tool = "select"
	ToolErase    Tool = "erase"
)

// Phase of a normalized pointer event.
type Phase int

const (
	PhaseDown Phase = iota
	PhaseMove
	PhaseUp
)

// Event is one normalized pointer event in surface-local coordinates, the
// same regardless of originating device.
type Event struct {
	Pos   geom.Point
	Phase Phase
}

type gestureState int

const (
	stateIdle gestureState = iota
	stateDrawing
	stateMoving
	stateResizing
)

// HandleHitSize is the side of the square tested around each resize handle.
const HandleHitSize = 10.0

// Session is the per-editor mutable state: active tool, stroke settings,
// the scene and its history. It is single-threaded; every call must come
// from the UI event thread.
type Session struct {
	scn  *scene.Scene
	hist *history.Stack

	tool  Tool
	color string
	width float64

	state  gestureState
	active *scene.Object
	anchor geom.Point
	last   geom.Point
	handle int
	dirty  bool

	log      *slog.Logger
	onChange func()
}

// NewSession creates a session over an empty scene, with the empty scene as
// the sole history entry so a full undo walk always ends at empty.
func NewSession(log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		scn:    scene.New(),
		hist:   history.New(),
		tool:   ToolFreehand,
		color:  "#000000",
		width:  3,
		handle: -1,
		log:    log,
	}
	s.hist.Commit(s.scn.Snapshot())
	return s
}

// SetOnChange registers the hook invoked after every visible change,
// including in-place mutations during an active gesture.
func (s *Session) SetOnChange(fn func()) { s.onChange = fn }

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Session) Objects() []*scene.Object { return s.scn.Objects() }
func (s *Session) Tool() Tool               { return s.tool }
func (s *Session) StrokeColor() string      { return s.color }
func (s *Session) StrokeWidth() float64     { return s.width }
func (s *Session) CanUndo() bool            { return s.hist.CanUndo() }
func (s *Session) CanRedo() bool            { return s.hist.CanRedo() }

// SelectTool switches the active tool; unknown tool names are ignored.
// Leaving the select tool drops the current selection so no stale outline
// lingers under a drawing tool.
func (s *Session) SelectTool(t Tool) {
	switch t {
	case ToolFreehand, ToolCircle, ToolRect, ToolArrow, ToolSelect, ToolErase:
	default:
		s.log.Warn("unknown tool ignored", "tool", string(t))
		return
	}
	if s.tool == t {
		return
	}
	s.tool = t
	if t != ToolSelect && s.scn.Select(nil) {
		s.notify()
	}
}

func (s *Session) SetStrokeColor(c string) { s.color = c }

func (s *Session) SetStrokeWidth(w float64) { s.width = scene.ClampWidth(w) }

// HandlePointer feeds one pointer event through the state machine.
func (s *Session) HandlePointer(ev Event) {
	switch ev.Phase {
	case PhaseDown:
		s.pointerDown(ev.Pos)
	case PhaseMove:
		s.pointerMove(ev.Pos)
	case PhaseUp:
		s.pointerUp()
	}
}

func (s *Session) pointerDown(pos geom.Point) {
	// A down event mid-gesture finalizes the outstanding gesture first.
	if s.state != stateIdle {
		s.pointerUp()
	}

	switch s.tool {
	case ToolSelect:
		s.selectDown(pos)
	case ToolErase:
		s.openObject(scene.KindEraser, pos)
	case ToolFreehand:
		s.openObject(scene.KindFreehand, pos)
	case ToolCircle:
		s.openObject(scene.KindCircle, pos)
	case ToolRect:
		s.openObject(scene.KindRect, pos)
	case ToolArrow:
		s.openObject(scene.KindArrow, pos)
	}
}

func (s *Session) selectDown(pos geom.Point) {
	if sel := s.scn.Selected(); sel != nil {
		if h := geom.HandleAt(sel.Bounds, pos, HandleHitSize); h >= 0 {
			s.state = stateResizing
			s.active = sel
			s.handle = h
			s.last = pos
			return
		}
	}
	if hit := s.scn.HitTest(pos); hit != nil {
		if s.scn.Select(hit) {
			s.notify()
		}
		s.state = stateMoving
		s.active = hit
		s.last = pos
		return
	}
	if s.scn.Select(nil) {
		s.notify()
	}
}

func (s *Session) openObject(kind scene.Kind, pos geom.Point) {
	o := scene.NewObject(kind, s.color, s.width, pos)
	s.scn.Append(o)
	s.state = stateDrawing
	s.active = o
	s.anchor = pos
	s.dirty = true
	s.notify()
}

func (s *Session) pointerMove(pos geom.Point) {
	switch s.state {
	case stateDrawing:
		if s.active.IsStroke() {
			s.active.Points = append(s.active.Points, pos)
		} else {
			s.active.Points = []geom.Point{s.anchor, pos}
		}
		s.active.RecomputeBounds()
		s.dirty = true
		s.notify()
	case stateMoving:
		dx, dy := pos.X-s.last.X, pos.Y-s.last.Y
		if dx != 0 || dy != 0 {
			transform.Move(s.active, dx, dy)
			s.dirty = true
			s.notify()
		}
		s.last = pos
	case stateResizing:
		dx, dy := pos.X-s.last.X, pos.Y-s.last.Y
		if dx != 0 || dy != 0 {
			transform.Resize(s.active, s.handle, dx, dy)
			s.dirty = true
			s.notify()
		}
		s.last = pos
	}
}

func (s *Session) pointerUp() {
	if s.state == stateIdle {
		return
	}
	if s.dirty {
		s.hist.Commit(s.scn.Snapshot())
		s.log.Debug("gesture committed",
			"objects", s.scn.Len(), "history", s.hist.Len())
	}
	s.state = stateIdle
	s.active = nil
	s.handle = -1
	s.dirty = false
	s.notify()
}

// Undo restores the previous snapshot; a no-op at the start of history.
func (s *Session) Undo() {
	if snap, ok := s.hist.Undo(); ok {
		s.scn.Restore(snap)
		s.notify()
	}
}

// Redo restores the next snapshot; a no-op at the end of history.
func (s *Session) Redo() {
	if snap, ok := s.hist.Redo(); ok {
		s.scn.Restore(snap)
		s.notify()
	}
}

// DeleteSelected removes the selected object and commits.
func (s *Session) DeleteSelected() {
	if s.scn.RemoveSelected() {
		s.hist.Commit(s.scn.Snapshot())
		s.notify()
	}
}

// ClearAll empties the scene and commits exactly one snapshot. Clearing an
// already empty scene commits nothing.
func (s *Session) ClearAll() {
	if s.scn.Clear() {
		s.hist.Commit(s.scn.Snapshot())
		s.notify()
	}
}

// EncodeScene serializes the scene for saving.
func (s *Session) EncodeScene() ([]byte, error) {
	return s.scn.Encode()
}

// LoadScene replaces the scene with the serialized objects in data and
// resets history to that single state.
func (s *Session) LoadScene(data []byte) error {
	if err := s.scn.Decode(data); err != nil {
		return err
	}
	s.state = stateIdle
	s.active = nil
	s.handle = -1
	s.dirty = false
	s.hist.Reset(s.scn.Snapshot())
	s.notify()
	return nil
}
