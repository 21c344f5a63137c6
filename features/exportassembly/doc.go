// Package exportassembly implements the Export Assembly use case as a pure projection.
//
// Project turns an assembly snapshot into a flat row set: the frame first, with no position,
// then one row per occupied connection point in frame order. The row values come from the
// snapshot, which only ever holds catalog copies, so the export always reflects the catalog.
//
// The encodings of the row set live in the shell's codec package.
package exportassembly
