package shell

import (
	"github.com/AntonStoeckl/drone-assembly-go/core"
)

// FrameOption is one selectable frame.
type FrameOption struct {
	Frame *core.Frame

	// Selected is true for the frame of the current assembly.
	Selected bool

	// OverBudget is true when the frame alone costs more than the max price.
	OverBudget bool
}

// PartOption is one part that fits the current frame.
type PartOption struct {
	Part core.CatalogItem

	// Blocked is the reason the part cannot be installed anywhere right now, nil if it can.
	Blocked error

	// OverBudget is true when installing the part would push the price above the max price.
	OverBudget bool
}

// Available reports whether the UI should offer the part for dragging.
func (o PartOption) Available() bool {
	return o.Blocked == nil && !o.OverBudget
}

// FrameOptions lists every catalog frame with its selection flags.
func (s *Store) FrameOptions() []FrameOption {
	limit := s.maxPrice.Get()
	currentID := s.current().FrameID()

	frames := s.catalog.Frames()
	options := make([]FrameOption, 0, len(frames))
	for _, frame := range frames {
		options = append(options, FrameOption{
			Frame:      frame,
			Selected:   frame.ID == currentID,
			OverBudget: limit.Exceeded(frame.Price),
		})
	}

	return options
}

// PartOptions lists every part fitting the current frame, in catalog order.
// With no frame selected there are no options.
func (s *Store) PartOptions() []PartOption {
	current := s.current()
	if current.IsEmpty() {
		return nil
	}

	limit := s.maxPrice.Get()
	total := current.TotalPrice()

	var options []PartOption
	for _, part := range s.catalog.Parts() {
		if !part.FitsFrame(current.CatalogItem) {
			continue
		}

		options = append(options, PartOption{
			Part:       part,
			Blocked:    core.CheckInstallable(current, part),
			OverBudget: limit.Exceeded(total + part.Price),
		})
	}

	return options
}

// Bill returns the grouped bill of materials of the current assembly.
func (s *Store) Bill() core.Bill {
	return core.BillOf(s.current())
}

// FreePoints lists the connection points the dragged or given category could be dropped on.
func (s *Store) FreePoints(category core.Category) []core.ConnectionPoint {
	return s.current().FreePoints(category)
}

// ResolveNearestPoint maps a drop coordinate in rendered-pixel space to the nearest free connection point
// of the current frame accepting the category.
func (s *Store) ResolveNearestPoint(
	category core.Category,
	drop core.Point,
	rendered core.Size,
	natural core.Size,
) (core.ConnectionPoint, bool) {

	return core.ResolveNearestPoint(s.current(), category, drop, rendered, natural)
}
