package core

import (
	"errors"
	"fmt"
)

// ConnectionPoint is a frame-defined slot accepting exactly one component of a fixed category.
//
// X and Y are positions in the coordinate space of the frame's reference image.
type ConnectionPoint struct {
	ID        PointIDInt
	Accepts   Category
	X         float64
	Y         float64
	Size      float64
	ZIndex    int
	Installed *CatalogItem
}

// IsOccupied reports whether a part is installed.
func (p ConnectionPoint) IsOccupied() bool {
	return p.Installed != nil
}

// Copy returns an independent clone, including a clone of the installed part.
func (p ConnectionPoint) Copy() ConnectionPoint {
	clone := p
	if p.Installed != nil {
		installed := p.Installed.Copy()
		clone.Installed = &installed
	}

	return clone
}

// Install puts a copy of part onto the point. The part's category must equal the accepted category.
func (p *ConnectionPoint) Install(part CatalogItem) error {
	if part.Category != p.Accepts {
		return errors.Join(
			ErrCategoryMismatch,
			fmt.Errorf("point %d accepts %s, got %s", p.ID, p.Accepts, part.Category),
		)
	}

	installed := part.Copy()
	p.Installed = &installed

	return nil
}

// Clear removes the installed part.
func (p *ConnectionPoint) Clear() {
	p.Installed = nil
}
