// Package selectframe implements the Select Frame use case.
//
// Selecting a frame starts a new assembly: the frame template is looked up in the catalog and
// a fresh copy without installed parts becomes the next snapshot, replacing whatever was
// assembled before. This package holds only the Command and the pure Decide function;
// the shell's Store runs the decision and publishes its result.
package selectframe
