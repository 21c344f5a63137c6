package shell

import (
	"math"
	"time"
)

// Logger interface for operational logging of the Store. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting Store performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

const (
	// CommandDurationMetric tracks command execution duration (OpenTelemetry-compatible).
	CommandDurationMetric = "assembly_command_duration_seconds"
	// CommandCallsMetric tracks total command calls.
	CommandCallsMetric = "assembly_command_calls_total"
	// CurrentPriceMetric tracks the price of the current assembly.
	CurrentPriceMetric = "assembly_current_price"
	// HistoryEntriesMetric tracks the number of history entries.
	HistoryEntriesMetric = "assembly_history_entries"

	// StatusSuccess indicates a committed change.
	StatusSuccess = "success"
	// StatusError indicates a rejected transition.
	StatusError = "error"
	// StatusIdempotent indicates no state change was needed.
	StatusIdempotent = "idempotent"

	// LogAttrCommandType identifies the command type in logs and metric labels.
	LogAttrCommandType = "command_type"
	// LogAttrStatus indicates the command processing status.
	LogAttrStatus = "status"
)

const (
	commandTypeUndo = "Undo"
	commandTypeRedo = "Redo"

	logMsgCommandStarted   = "assembly command started"
	logMsgCommandCommitted = "assembly command committed"
	logMsgCommandRejected  = "assembly command rejected"
	logMsgCommandNoop      = "assembly command had no effect"
	logMsgHistoryRestored  = "assembly restored from history"
	logMsgMaxPriceChanged  = "max price changed"

	logAttrEventType  = "event_type"
	logAttrFrameID    = "frame_id"
	logAttrPrice      = "price"
	logAttrMaxPrice   = "max_price"
	logAttrError      = "error"
	logAttrDurationMS = "duration_ms"
	logAttrRevision   = "revision"
)

func (s *Store) logDebug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Store) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Store) logWarn(msg string, err error, args ...any) {
	if s.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		s.logger.Warn(msg, allArgs...)
	}
}

// recordCommandMetrics records duration and call count of a command if the metrics collector is configured.
func (s *Store) recordCommandMetrics(commandType, status string, duration time.Duration) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}

	s.metricsCollector.RecordDuration(CommandDurationMetric, duration, labels)
	s.metricsCollector.IncrementCounter(CommandCallsMetric, labels)
}

// recordStateMetrics records the gauges derived from the current snapshot if the metrics collector is configured.
func (s *Store) recordStateMetrics(price float64, historyEntries int) {
	if s.metricsCollector == nil {
		return
	}

	s.metricsCollector.RecordValue(CurrentPriceMetric, price, nil)
	s.metricsCollector.RecordValue(HistoryEntriesMetric, float64(historyEntries), nil)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
