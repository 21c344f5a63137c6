// Package importassembly implements the Import Assembly use case.
//
// An import is a list of entries pairing a catalog item id with a connection point id.
// Exactly one entry has no position (PositionID 0); it names the frame. Every other entry
// installs its part on the connection point with that id of a fresh copy of the frame.
//
// Imports are all-or-nothing: if any entry cannot be applied, the current assembly stays as it is.
// Names and prices are never taken from the payload; every id is resolved against the catalog.
package importassembly
