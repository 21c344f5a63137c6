package shell

import (
	"fmt"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

// StartDrag publishes the part with the given id as the current drag item.
func (s *Store) StartDrag(partID core.ItemIDInt) error {
	part, found := s.catalog.Part(partID)
	if !found {
		return fmt.Errorf("start drag: %w: id %d", core.ErrItemNotFound, partID)
	}

	s.dragItem.Set(&part)

	return nil
}

// StopDrag publishes that nothing is dragged anymore.
func (s *Store) StopDrag() {
	if s.dragItem.Get() == nil {
		return
	}

	s.dragItem.Set(nil)
}

// Drop installs the part on the free connection point nearest to the drop coordinate and ends the drag.
// Dropping where no eligible point exists returns an error wrapping core.ErrNoFreeConnectionPoint.
func (s *Store) Drop(partID core.ItemIDInt, drop core.Point, rendered core.Size, natural core.Size) error {
	defer s.StopDrag()

	part, found := s.catalog.Part(partID)
	if !found {
		return fmt.Errorf("drop: %w: id %d", core.ErrItemNotFound, partID)
	}

	point, found := s.ResolveNearestPoint(part.Category, drop, rendered, natural)
	if !found {
		return fmt.Errorf("drop: %w: category %s", core.ErrNoFreeConnectionPoint, part.Category)
	}

	return s.InstallPart(part.ID, point.ID)
}
