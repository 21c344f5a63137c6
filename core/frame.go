package core

import (
	"sort"
)

// Frame is a CatalogItem with an ordered collection of connection points.
//
// A Frame value is the root of one assembly: it carries whatever is installed at its points.
// A nil *Frame is the empty assembly (no frame selected). The nil-safe read methods below treat it as such.
//
// Snapshots published by the shell must never be mutated; derive a new one with Copy.
type Frame struct {
	CatalogItem
	ConnectionPoints []ConnectionPoint
}

// Progress is the install progress of an assembly.
type Progress struct {
	Installed int
	Total     int
}

// Remaining returns the number of free connection points.
func (p Progress) Remaining() int {
	return p.Total - p.Installed
}

// IsComplete reports whether every connection point is occupied.
func (p Progress) IsComplete() bool {
	return p.Total > 0 && p.Installed == p.Total
}

// Copy returns a fully independent deep clone of the frame, every connection point and every installed part.
func (f *Frame) Copy() *Frame {
	if f == nil {
		return nil
	}

	clone := &Frame{
		CatalogItem:      f.CatalogItem.Copy(),
		ConnectionPoints: make([]ConnectionPoint, len(f.ConnectionPoints)),
	}

	for i, point := range f.ConnectionPoints {
		clone.ConnectionPoints[i] = point.Copy()
	}

	return clone
}

// Point returns the connection point with the given id.
// The returned pointer refers into f, so only use it on a frame obtained from Copy.
func (f *Frame) Point(id PointIDInt) (*ConnectionPoint, bool) {
	if f == nil {
		return nil, false
	}

	for i := range f.ConnectionPoints {
		if f.ConnectionPoints[i].ID == id {
			return &f.ConnectionPoints[i], true
		}
	}

	return nil, false
}

// PointHolding returns the first connection point holding the part with the given id.
// The returned pointer refers into f, so only use it on a frame obtained from Copy.
func (f *Frame) PointHolding(partID ItemIDInt) (*ConnectionPoint, bool) {
	if f == nil {
		return nil, false
	}

	for i := range f.ConnectionPoints {
		if installed := f.ConnectionPoints[i].Installed; installed != nil && installed.ID == partID {
			return &f.ConnectionPoints[i], true
		}
	}

	return nil, false
}

// InstalledParts returns copies of all installed parts in connection point order.
func (f *Frame) InstalledParts() []CatalogItem {
	if f == nil {
		return nil
	}

	parts := make([]CatalogItem, 0, len(f.ConnectionPoints))
	for _, point := range f.ConnectionPoints {
		if point.Installed != nil {
			parts = append(parts, point.Installed.Copy())
		}
	}

	return parts
}

// FreePoints returns copies of all unoccupied connection points accepting the category.
func (f *Frame) FreePoints(category Category) []ConnectionPoint {
	if f == nil {
		return nil
	}

	var free []ConnectionPoint
	for _, point := range f.ConnectionPoints {
		if point.Accepts == category && !point.IsOccupied() {
			free = append(free, point.Copy())
		}
	}

	return free
}

// RenderOrder returns copies of the connection points sorted by stacking order.
// Points with equal z-index keep their frame order.
func (f *Frame) RenderOrder() []ConnectionPoint {
	if f == nil {
		return nil
	}

	points := make([]ConnectionPoint, len(f.ConnectionPoints))
	for i, point := range f.ConnectionPoints {
		points[i] = point.Copy()
	}

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].ZIndex < points[b].ZIndex
	})

	return points
}

// TotalPrice returns the frame price plus the sum of installed parts' prices. The empty assembly costs 0.
func (f *Frame) TotalPrice() PriceFloat64 {
	if f == nil {
		return 0
	}

	total := f.Price
	for _, point := range f.ConnectionPoints {
		if point.Installed != nil {
			total += point.Installed.Price
		}
	}

	return total
}

// Progress returns how many connection points are occupied out of the total.
func (f *Frame) Progress() Progress {
	if f == nil {
		return Progress{}
	}

	installed := 0
	for _, point := range f.ConnectionPoints {
		if point.IsOccupied() {
			installed++
		}
	}

	return Progress{Installed: installed, Total: len(f.ConnectionPoints)}
}

// IsEmpty reports whether no frame is selected.
func (f *Frame) IsEmpty() bool {
	return f == nil
}

// FrameID returns the frame's id, 0 for the empty assembly.
func (f *Frame) FrameID() ItemIDInt {
	if f == nil {
		return 0
	}

	return f.ID
}
