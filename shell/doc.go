// Package shell provides the Assembly Store for assembling a drone from a catalog.
//
// This package implements the "imperative shell" around the functional core. The Store owns the
// only mutable state of a session: the current assembly, the undo/redo history, the advisory max
// price, the part being dragged, and an append-only journal of the domain events of the session.
// Every change runs the pure Decide function of a feature, records the resulting event, and then
// publishes the next snapshot through reactive cells together with the values derived from it
// (current price, install progress, can-undo/can-redo, over-budget).
//
// Publication carries an explicit Origin. Only user-originated snapshots are recorded in the
// history; snapshots restored by Undo and Redo are published without being recorded again.
//
// The Store is synchronous and not safe for concurrent use, matching the single-threaded model of the core.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'application' layer.
package shell
