package core

import (
	"errors"
	"time"
)

// Catalog and assembly identifiers and amounts are plain aliases; the helpers below carry their rules.

// ItemIDInt represents a catalog item identifier, unique across the whole catalog.
type ItemIDInt = int

// PointIDInt represents a connection point identifier, unique within its frame.
// Zero is reserved for "no position", which marks the frame row in exports and imports.
type PointIDInt = int

// FrameSizeInt represents a frame size in inches.
type FrameSizeInt = int

// PriceFloat64 represents a non-negative price.
type PriceFloat64 = float64

// OccurredAtTS represents when an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt converts a time to OccurredAtTS with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}

var (
	// ErrItemNotFound is returned when a catalog item id is unknown.
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrFrameNotFound is returned when a frame id is unknown.
	ErrFrameNotFound = errors.New("frame not found")

	// ErrConnectionPointNotFound is returned when a connection point id is unknown on the frame.
	ErrConnectionPointNotFound = errors.New("connection point not found")

	// ErrCategoryMismatch is returned when a part's category differs from the category a connection point accepts.
	ErrCategoryMismatch = errors.New("category does not match connection point")

	// ErrIncompatibleFrameSize is returned when a part does not fit any size of the selected frame.
	ErrIncompatibleFrameSize = errors.New("part is not compatible with the frame size")

	// ErrConnectionPointOccupied is returned when a part is installed on a connection point that already holds one.
	ErrConnectionPointOccupied = errors.New("connection point is already occupied")

	// ErrNoFreeConnectionPoint is returned when the frame has no free connection point for a category.
	ErrNoFreeConnectionPoint = errors.New("no free connection point for category")

	// ErrNoFrameSelected is returned when an operation needs a frame but the assembly is empty.
	ErrNoFrameSelected = errors.New("no frame selected")

	// ErrMalformedImport is returned when an import payload cannot be applied as a whole.
	ErrMalformedImport = errors.New("malformed import")

	// ErrDuplicateItemID is returned when two catalog items share an id.
	ErrDuplicateItemID = errors.New("duplicate catalog item id")

	// ErrDuplicatePointID is returned when two connection points of the same frame share an id.
	ErrDuplicatePointID = errors.New("duplicate connection point id")

	// ErrInvalidCatalogItem is returned when a catalog item violates a catalog invariant.
	ErrInvalidCatalogItem = errors.New("invalid catalog item")

	// ErrUnknownCategory is returned when a category tag cannot be parsed.
	ErrUnknownCategory = errors.New("unknown category")
)
