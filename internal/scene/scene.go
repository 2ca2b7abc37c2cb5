package scene

import "github.com/ayaanhaider-dev/enarcui-artboard/internal/geom"

// Scene is the ordered collection of placed objects. Only the interaction
// layer mutates it; the renderer reads it.
type Scene struct {
	objs []*Object
}

func New() *Scene {
	return &Scene{}
}

// Objects returns the live object slice in z-order. Callers must not
// reorder or mutate it.
func (s *Scene) Objects() []*Object { return s.objs }

func (s *Scene) Len() int { return len(s.objs) }

func (s *Scene) Append(o *Object) {
	s.objs = append(s.objs, o)
}

// HitTest returns the topmost object containing p, or nil on a miss.
func (s *Scene) HitTest(p geom.Point) *Object {
	for i := len(s.objs) - 1; i >= 0; i-- {
		if s.objs[i].Hit(p) {
			return s.objs[i]
		}
	}
	return nil
}

// Selected returns the selected object, or nil.
func (s *Scene) Selected() *Object {
	for _, o := range s.objs {
		if o.Selected {
			return o
		}
	}
	return nil
}

// Select marks target as the only selected object. A nil target deselects
// everything. Reports whether any selection flag changed.
func (s *Scene) Select(target *Object) bool {
	changed := false
	for _, o := range s.objs {
		want := o == target && target != nil
		if o.Selected != want {
			o.Selected = want
			changed = true
		}
	}
	return changed
}

// RemoveSelected deletes the selected object, if any.
func (s *Scene) RemoveSelected() bool {
	for i, o := range s.objs {
		if o.Selected {
			s.objs = append(s.objs[:i], s.objs[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the scene. Reports whether it held anything.
func (s *Scene) Clear() bool {
	if len(s.objs) == 0 {
		return false
	}
	s.objs = nil
	return true
}

// Snapshot returns a deep copy of the object sequence, suitable for the
// history stack: later scene mutation never reaches a snapshot.
func (s *Scene) Snapshot() []*Object {
	snap := make([]*Object, len(s.objs))
	for i, o := range s.objs {
		snap[i] = o.Clone()
	}
	return snap
}

// Restore replaces the scene contents with a deep copy of snap, so the
// snapshot itself stays immutable across repeated undo/redo.
func (s *Scene) Restore(snap []*Object) {
	s.objs = make([]*Object, len(snap))
	for i, o := range snap {
		s.objs[i] = o.Clone()
	}
}
