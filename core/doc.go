// Package core contains the domain model for assembling a drone from a frame and a catalog
// of compatible components.
//
// This package implements the pure parts of the assembly engine:
//   - Catalog items, frames and their connection points as copy-on-write values
//   - The compatibility rule table (frame sizes, motor homogeneity, single instance per category)
//   - The advisory price limit
//   - Geometry resolution of a drop coordinate to the nearest free connection point
//   - Derived values (current price, install progress, bill of materials)
//   - Decision results and domain events produced by the Decide functions of the features
//
// Nothing in here performs I/O or keeps mutable state between calls. Every change to an assembly
// is expressed as a new, independent deep copy of a Frame.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
