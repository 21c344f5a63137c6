// Package fixtures contains a small drone catalog for testing.
//
// The catalog mirrors the embedded default catalog of the config package: two frames
// (Mark 4 7" and Mark 4 v2 10") with nine connection points each and fourteen parts.
// Constants name every item and connection point so tests read like the business rules they check.
//
// This is testing infrastructure - not production domain code.
package fixtures
