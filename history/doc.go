// Package history implements a linear undo/redo log over successive snapshots.
//
// The log always contains at least its initial entry. A cursor points at the current entry;
// Record discards everything after the cursor before appending, so once a new change is recorded
// after an Undo the redo path is gone.
package history
