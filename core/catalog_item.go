package core

import (
	"slices"
)

// CatalogItem is an immutable template describing one purchasable component or frame.
//
// Values handed out by the Catalog are copies, so changing one never affects the catalog.
type CatalogItem struct {
	ID              ItemIDInt
	Category        Category
	Name            string
	Price           PriceFloat64
	CompatibleSizes []FrameSizeInt
	Image           string
}

// IsFrame reports whether the item is a frame.
func (i CatalogItem) IsFrame() bool {
	return i.Category == CategoryFrame
}

// IsCompatibleWith reports whether frameSize is a member of the item's compatible sizes.
func (i CatalogItem) IsCompatibleWith(frameSize FrameSizeInt) bool {
	return slices.Contains(i.CompatibleSizes, frameSize)
}

// FitsFrame reports whether the item is compatible with at least one size of the frame.
func (i CatalogItem) FitsFrame(frame CatalogItem) bool {
	for _, size := range frame.CompatibleSizes {
		if i.IsCompatibleWith(size) {
			return true
		}
	}

	return false
}

// Copy returns an independent clone of the item.
func (i CatalogItem) Copy() CatalogItem {
	clone := i
	clone.CompatibleSizes = slices.Clone(i.CompatibleSizes)

	return clone
}
