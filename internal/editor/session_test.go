package editor

import (
	"bytes"
	"testing"

	"github.com/ayaanhaider-dev/enarcui-artboard/internal/geom"
	"github.com/ayaanhaider-dev/enarcui-artboard/internal/scene"
)

func pt(x, y float64) geom.Point { return geom.Point{X: x, Y: y} }

func drag(s *Session, pts ...geom.Point) {
	s.HandlePointer(Event{Pos: pts[0], Phase: PhaseDown})
	for _, p := range pts[1:] {
		s.HandlePointer(Event{Pos: p, Phase: PhaseMove})
	}
	s.HandlePointer(Event{Phase: PhaseUp})
}

func TestFreehandGesture(t *testing.T) {
	s := NewSession(nil)
	drag(s, pt(0, 0), pt(10, 5), pt(20, 10))

	objs := s.Objects()
	if len(objs) != 1 {
		t.Fatalf("scene has %d objects, want 1", len(objs))
	}
	o := objs[0]
	if o.Kind != scene.KindFreehand {
		t.Errorf("kind = %s, want freehand", o.Kind)
	}
	if len(o.Points) != 3 {
		t.Errorf("freehand stored %d points, want every sampled point (3)", len(o.Points))
	}
}

func TestTwoPointGestureReplacesEnd(t *testing.T) {
	s := NewSession(nil)
	s.SelectTool(ToolRect)
	drag(s, pt(10, 10), pt(30, 30), pt(50, 50))

	o := s.Objects()[0]
	if len(o.Points) != 2 {
		t.Fatalf("rect stored %d points, want [anchor, end]", len(o.Points))
	}
	if o.Points[0] != pt(10, 10) || o.Points[1] != pt(50, 50) {
		t.Errorf("points = %+v, want anchor kept and end replaced", o.Points)
	}
	if o.Bounds != (geom.Rect{X: 10, Y: 10, W: 40, H: 40}) {
		t.Errorf("bounds = %+v, want recomputed after every move", o.Bounds)
	}
}

func TestEraseToolDrawsEraserObject(t *testing.T) {
	s := NewSession(nil)
	s.SelectTool(ToolErase)
	drag(s, pt(0, 0), pt(10, 10))

	objs := s.Objects()
	if len(objs) != 1 || objs[0].Kind != scene.KindEraser {
		t.Fatalf("erase tool should append an eraser-stroke object, got %+v", objs)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := NewSession(nil)
	// Three non-overlapping draw gestures.
	drag(s, pt(0, 0), pt(10, 10))
	s.SelectTool(ToolRect)
	drag(s, pt(100, 100), pt(140, 140))
	s.SelectTool(ToolCircle)
	drag(s, pt(300, 300), pt(320, 300))

	final, err := s.EncodeScene()
	if err != nil {
		t.Fatalf("EncodeScene() error: %v", err)
	}

	for i := 0; i < 3; i++ {
		s.Undo()
	}
	if n := len(s.Objects()); n != 0 {
		t.Fatalf("after 3 undos scene has %d objects, want 0", n)
	}
	s.Undo() // out of range: no-op
	if n := len(s.Objects()); n != 0 {
		t.Fatalf("undo at start mutated the scene (%d objects)", n)
	}

	for i := 0; i < 3; i++ {
		s.Redo()
	}
	restored, err := s.EncodeScene()
	if err != nil {
		t.Fatalf("EncodeScene() error: %v", err)
	}
	if !bytes.Equal(final, restored) {
		t.Errorf("redo walk did not restore the scene bit-for-bit:\n%s\nvs\n%s", final, restored)
	}
	s.Redo() // out of range: no-op
}

func TestDrawAfterUndoDiscardsRedo(t *testing.T) {
	s := NewSession(nil)
	drag(s, pt(0, 0), pt(10, 10))
	drag(s, pt(50, 50), pt(60, 60))

	s.Undo()
	if !s.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	drag(s, pt(200, 200), pt(210, 210))
	if s.CanRedo() {
		t.Error("a mutating gesture after undo must discard redo states")
	}
}

func TestClickWithoutDragCommitsNothing(t *testing.T) {
	s := NewSession(nil)
	drag(s, pt(0, 0), pt(40, 40))
	s.SelectTool(ToolSelect)

	// Pure click-select: selection changes, but no snapshot is committed.
	drag(s, pt(20, 20))
	if !s.CanUndo() {
		t.Fatal("draw commit missing")
	}
	s.Undo()
	if n := len(s.Objects()); n != 0 {
		t.Errorf("one undo should reach the empty scene, got %d objects; a click must not commit", n)
	}
}

func TestMoveGesture(t *testing.T) {
	s := NewSession(nil)
	s.SelectTool(ToolRect)
	drag(s, pt(10, 10), pt(50, 50))

	s.SelectTool(ToolSelect)
	drag(s, pt(30, 30), pt(40, 35), pt(55, 40))

	o := s.Objects()[0]
	if o.Points[0] != pt(35, 20) || o.Points[1] != pt(75, 60) {
		t.Errorf("moved points = %+v, want translated by (25,10)", o.Points)
	}
	if o.Bounds != (geom.Rect{X: 35, Y: 20, W: 40, H: 40}) {
		t.Errorf("moved bounds = %+v", o.Bounds)
	}
	// The move committed: one undo restores the original position.
	s.Undo()
	if got := s.Objects()[0].Points[0]; got != pt(10, 10) {
		t.Errorf("undo after move: points[0] = %+v, want (10,10)", got)
	}
}

func TestResizeGestureViaHandle(t *testing.T) {
	s := NewSession(nil)
	s.SelectTool(ToolRect)
	drag(s, pt(10, 10), pt(50, 50))
	s.SelectTool(ToolSelect)
	drag(s, pt(30, 30)) // select it

	// Grab the bottom-right handle at (50,50) and drag to (70,80).
	drag(s, pt(50, 50), pt(70, 80))

	o := s.Objects()[0]
	if o.Bounds != (geom.Rect{X: 10, Y: 10, W: 60, H: 70}) {
		t.Errorf("resized bounds = %+v, want {10 10 60 70}", o.Bounds)
	}
	if o.Points[1] != pt(70, 80) {
		t.Errorf("resized corner = %+v, want (70,80)", o.Points[1])
	}
}

func TestExclusiveSelectionAcrossGestures(t *testing.T) {
	s := NewSession(nil)
	s.SelectTool(ToolRect)
	drag(s, pt(0, 0), pt(20, 20))
	drag(s, pt(100, 100), pt(120, 120))

	s.SelectTool(ToolSelect)
	drag(s, pt(10, 10))
	drag(s, pt(110, 110))

	selected := 0
	for _, o := range s.Objects() {
		if o.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("%d objects selected, want exactly 1", selected)
	}
	if !s.Objects()[1].Selected {
		t.Error("the later hit should hold the selection")
	}

	// Missing everything deselects.
	drag(s, pt(500, 500))
	if s.Objects()[0].Selected || s.Objects()[1].Selected {
		t.Error("a miss should deselect all")
	}
}

func TestClearAllCommitsOnce(t *testing.T) {
	s := NewSession(nil)
	drag(s, pt(0, 0), pt(10, 10))
	drag(s, pt(20, 20), pt(30, 30))

	s.ClearAll()
	if n := len(s.Objects()); n != 0 {
		t.Fatalf("scene has %d objects after ClearAll, want 0", n)
	}
	// Exactly one snapshot: a single undo restores both objects.
	s.Undo()
	if n := len(s.Objects()); n != 2 {
		t.Errorf("one undo after ClearAll restored %d objects, want 2", n)
	}

	// ClearAll on an empty scene is a no-op commit-wise.
	s2 := NewSession(nil)
	s2.ClearAll()
	if s2.CanUndo() {
		t.Error("ClearAll on empty scene must not commit")
	}
}

func TestDeleteSelected(t *testing.T) {
	s := NewSession(nil)
	s.SelectTool(ToolRect)
	drag(s, pt(0, 0), pt(20, 20))
	s.SelectTool(ToolSelect)
	drag(s, pt(10, 10))

	s.DeleteSelected()
	if n := len(s.Objects()); n != 0 {
		t.Fatalf("DeleteSelected left %d objects", n)
	}
	s.DeleteSelected() // nothing selected: no-op
	s.Undo()
	if n := len(s.Objects()); n != 1 {
		t.Errorf("undo after delete restored %d objects, want 1", n)
	}
}

func TestMidGestureDownFinalizesPrevious(t *testing.T) {
	s := NewSession(nil)
	s.HandlePointer(Event{Pos: pt(0, 0), Phase: PhaseDown})
	s.HandlePointer(Event{Pos: pt(10, 10), Phase: PhaseMove})
	// Second down without an up: the first gesture is committed implicitly.
	s.HandlePointer(Event{Pos: pt(100, 100), Phase: PhaseDown})
	s.HandlePointer(Event{Phase: PhaseUp})

	if n := len(s.Objects()); n != 2 {
		t.Fatalf("scene has %d objects, want 2", n)
	}
	s.Undo()
	if n := len(s.Objects()); n != 1 {
		t.Errorf("undo removed %d objects, want the gestures committed separately", 2-n)
	}
}

func TestLoadSceneResetsHistory(t *testing.T) {
	src := NewSession(nil)
	drag(src, pt(0, 0), pt(10, 10))
	data, err := src.EncodeScene()
	if err != nil {
		t.Fatalf("EncodeScene() error: %v", err)
	}

	s := NewSession(nil)
	drag(s, pt(50, 50), pt(60, 60))
	if err := s.LoadScene(data); err != nil {
		t.Fatalf("LoadScene() error: %v", err)
	}
	if n := len(s.Objects()); n != 1 {
		t.Fatalf("loaded scene has %d objects, want 1", n)
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("loading a scene must reset history to a single snapshot")
	}
}

func TestStrokeWidthClamped(t *testing.T) {
	s := NewSession(nil)
	s.SetStrokeWidth(0)
	if s.StrokeWidth() != scene.MinStrokeWidth {
		t.Errorf("width = %v, want clamped to %v", s.StrokeWidth(), scene.MinStrokeWidth)
	}
	s.SetStrokeWidth(500)
	if s.StrokeWidth() != scene.MaxStrokeWidth {
		t.Errorf("width = %v, want clamped to %v", s.StrokeWidth(), scene.MaxStrokeWidth)
	}
}

func TestOnChangeFiresDuringGesture(t *testing.T) {
	s := NewSession(nil)
	calls := 0
	s.SetOnChange(func() { calls++ })

	drag(s, pt(0, 0), pt(5, 5), pt(10, 10))
	// Down, two in-place moves, up: the reactive redraw discipline depends
	// on the hook firing for mutations that do not replace the scene.
	if calls < 4 {
		t.Errorf("onChange fired %d times, want at least once per mutating event", calls)
	}
}
