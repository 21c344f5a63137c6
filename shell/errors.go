package shell

import "errors"

var (
	// ErrNilCatalog is returned when a Store is created without a catalog.
	ErrNilCatalog = errors.New("catalog must not be nil")

	// ErrNilClock is returned when a nil clock is configured.
	ErrNilClock = errors.New("clock must not be nil")

	// ErrNegativeMaxPrice is returned when a negative max price is configured.
	ErrNegativeMaxPrice = errors.New("max price must not be negative")
)
