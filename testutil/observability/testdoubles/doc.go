// Package testdoubles provides test doubles (spies) for the observability interfaces of the shell.
//
// This package contains spy implementations for the dependency-free observability
// interfaces used by the Store:
//   - LoggerSpy: captures leveled logging calls with their attributes
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//
// These test doubles enable testing of observability instrumentation
// without requiring actual telemetry backends.
package testdoubles
