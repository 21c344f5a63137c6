package core

import (
	"errors"
	"fmt"
)

// Catalog is the fixed, ordered set of frames and parts loaded once at startup.
//
// It is read-only after construction: every lookup returns a deep copy, so callers
// can never change the templates. A Catalog is safe to share.
type Catalog struct {
	frames     []Frame
	parts      []CatalogItem
	frameIndex map[ItemIDInt]int
	partIndex  map[ItemIDInt]int
}

// NewCatalog validates the catalog invariants and builds the lookup indexes.
//
// It returns ErrDuplicateItemID, ErrDuplicatePointID or ErrInvalidCatalogItem (joined with details)
// when the input violates an invariant.
func NewCatalog(frames []Frame, parts []CatalogItem) (*Catalog, error) {
	c := &Catalog{
		frames:     make([]Frame, 0, len(frames)),
		parts:      make([]CatalogItem, 0, len(parts)),
		frameIndex: make(map[ItemIDInt]int, len(frames)),
		partIndex:  make(map[ItemIDInt]int, len(parts)),
	}

	seen := make(map[ItemIDInt]struct{}, len(frames)+len(parts))
	claim := func(id ItemIDInt) error {
		if _, exists := seen[id]; exists {
			return errors.Join(ErrDuplicateItemID, fmt.Errorf("id %d", id))
		}
		seen[id] = struct{}{}

		return nil
	}

	for _, frame := range frames {
		if err := validateFrame(frame); err != nil {
			return nil, err
		}

		if err := claim(frame.ID); err != nil {
			return nil, err
		}

		c.frameIndex[frame.ID] = len(c.frames)
		c.frames = append(c.frames, *frame.Copy())
	}

	for _, part := range parts {
		if err := validateItem(part); err != nil {
			return nil, err
		}

		if !part.Category.IsPart() {
			return nil, invalidItem(part, "category %s cannot be installed", part.Category)
		}

		if err := claim(part.ID); err != nil {
			return nil, err
		}

		c.partIndex[part.ID] = len(c.parts)
		c.parts = append(c.parts, part.Copy())
	}

	return c, nil
}

func validateItem(item CatalogItem) error {
	switch {
	case item.ID <= 0:
		return invalidItem(item, "id must be positive")
	case !item.Category.IsValid():
		return invalidItem(item, "invalid category %d", int(item.Category))
	case item.Price < 0:
		return invalidItem(item, "price must not be negative")
	case len(item.CompatibleSizes) == 0:
		return invalidItem(item, "compatible sizes must not be empty")
	}

	return nil
}

func validateFrame(frame Frame) error {
	if err := validateItem(frame.CatalogItem); err != nil {
		return err
	}

	if !frame.IsFrame() {
		return invalidItem(frame.CatalogItem, "category must be frame, got %s", frame.Category)
	}

	points := make(map[PointIDInt]struct{}, len(frame.ConnectionPoints))
	for _, point := range frame.ConnectionPoints {
		if point.ID <= 0 {
			return invalidItem(frame.CatalogItem, "connection point id must be positive, got %d", point.ID)
		}

		if !point.Accepts.IsPart() {
			return invalidItem(frame.CatalogItem, "connection point %d accepts %s", point.ID, point.Accepts)
		}

		if point.Installed != nil && point.Installed.Category != point.Accepts {
			return invalidItem(frame.CatalogItem, "connection point %d holds a %s", point.ID, point.Installed.Category)
		}

		if _, exists := points[point.ID]; exists {
			return errors.Join(ErrDuplicatePointID, fmt.Errorf("frame %d, point %d", frame.ID, point.ID))
		}
		points[point.ID] = struct{}{}
	}

	return nil
}

func invalidItem(item CatalogItem, format string, args ...any) error {
	return errors.Join(ErrInvalidCatalogItem, fmt.Errorf("item %d (%s): "+format, append([]any{item.ID, item.Name}, args...)...))
}

// Frame returns a fresh copy of the frame template with the given id.
func (c *Catalog) Frame(id ItemIDInt) (*Frame, bool) {
	idx, found := c.frameIndex[id]
	if !found {
		return nil, false
	}

	return c.frames[idx].Copy(), true
}

// Part returns a copy of the part with the given id.
func (c *Catalog) Part(id ItemIDInt) (CatalogItem, bool) {
	idx, found := c.partIndex[id]
	if !found {
		return CatalogItem{}, false
	}

	return c.parts[idx].Copy(), true
}

// Item returns a copy of any catalog item, frame or part, with the given id.
func (c *Catalog) Item(id ItemIDInt) (CatalogItem, bool) {
	if idx, found := c.frameIndex[id]; found {
		return c.frames[idx].CatalogItem.Copy(), true
	}

	return c.Part(id)
}

// Frames returns fresh copies of all frame templates in catalog order.
func (c *Catalog) Frames() []*Frame {
	frames := make([]*Frame, len(c.frames))
	for i := range c.frames {
		frames[i] = c.frames[i].Copy()
	}

	return frames
}

// Parts returns copies of all parts in catalog order.
func (c *Catalog) Parts() []CatalogItem {
	parts := make([]CatalogItem, len(c.parts))
	for i, part := range c.parts {
		parts[i] = part.Copy()
	}

	return parts
}

// PartsCompatibleWith returns copies of all parts compatible with the frame size, in catalog order.
func (c *Catalog) PartsCompatibleWith(frameSize FrameSizeInt) []CatalogItem {
	var parts []CatalogItem
	for _, part := range c.parts {
		if part.IsCompatibleWith(frameSize) {
			parts = append(parts, part.Copy())
		}
	}

	return parts
}
