// Package oteladapters provides OpenTelemetry implementations of the shell's Logger and
// MetricsCollector interfaces, so a Store can report into an existing OTel pipeline
// without implementing the interfaces itself.
//
// Usage:
//
//	logger := oteladapters.NewSlogBridgeLogger("drone-assembly")
//	metrics := oteladapters.NewMetricsCollector(otel.Meter("drone-assembly"))
//
//	store, err := shell.NewStore(catalog, shell.WithLogger(logger), shell.WithMetrics(metrics))
package oteladapters
