// Package history implements the linear undo/redo stack: an append-only
// sequence of deep scene snapshots with a cursor. Committing while undone
// discards everything past the cursor; branching is not supported.
package history

import "github.com/ayaanhaider-dev/enarcui-artboard/internal/scene"

type Stack struct {
	snaps  [][]*scene.Object
	cursor int
}

func New() *Stack {
	return &Stack{cursor: -1}
}

func (h *Stack) Len() int    { return len(h.snaps) }
func (h *Stack) Cursor() int { return h.cursor }

func (h *Stack) CanUndo() bool { return h.cursor > 0 }
func (h *Stack) CanRedo() bool { return h.cursor < len(h.snaps)-1 }

// Commit truncates any redo tail, appends snap and moves the cursor onto
// it. The caller passes an already-cloned snapshot; the stack never aliases
// the live scene.
func (h *Stack) Commit(snap []*scene.Object) {
	h.snaps = append(h.snaps[:h.cursor+1], snap)
	h.cursor = len(h.snaps) - 1
}

// Undo steps the cursor back and returns the snapshot to restore. The
// second result is false at the beginning of history (no-op).
func (h *Stack) Undo() ([]*scene.Object, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	return h.snaps[h.cursor], true
}

// Redo steps the cursor forward and returns the snapshot to restore. The
// second result is false at the end of history (no-op).
func (h *Stack) Redo() ([]*scene.Object, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	return h.snaps[h.cursor], true
}

// Reset drops all history and installs snap as the sole entry. Used when a
// serialized scene is loaded.
func (h *Stack) Reset(snap []*scene.Object) {
	h.snaps = [][]*scene.Object{snap}
	h.cursor = 0
}
