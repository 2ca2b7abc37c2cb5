package scene

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Encode serializes the scene as a JSON array of object records, in z-order.
// Derived state (bounds, selection) is not part of the wire format.
func (s *Scene) Encode() ([]byte, error) {
	return json.MarshalIndent(s.objs, "", "  ")
}

// Decode replaces the scene contents with the objects in data. Bounds are
// re-derived and every object loads deselected. Records with an unknown
// kind or a missing ID are repaired or rejected rather than trusted.
func (s *Scene) Decode(data []byte) error {
	var objs []*Object
	if err := json.Unmarshal(data, &objs); err != nil {
		return fmt.Errorf("decode scene: %w", err)
	}
	for i, o := range objs {
		if o == nil {
			return fmt.Errorf("decode scene: null object at index %d", i)
		}
		switch o.Kind {
		case KindFreehand, KindCircle, KindRect, KindArrow, KindEraser:
		default:
			return fmt.Errorf("decode scene: unknown kind %q at index %d", o.Kind, i)
		}
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		o.StrokeWidth = ClampWidth(o.StrokeWidth)
		o.Selected = false
		o.RecomputeBounds()
	}
	s.objs = objs
	return nil
}
