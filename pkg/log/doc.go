// Package log provides structured event logging for the safe.
//
// This package defines the Logger interface and Event types for capturing
// lock-state transitions, unlock decisions, code changes and storage faults.
// It is separate from operational logging (slog) - event capture provides
// a complete machine-readable audit trail for debugging and analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg := safe.DefaultConfig()
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//	store, _ := safe.New(storage, cfg)
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/safebox/device.elog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # Event Types
//
//   - State: lock flag transitions (StateChangeEvent)
//   - Access: unlock decisions with their reason (AccessEvent)
//   - Code: unlock code reprogramming (CodeEvent)
//   - Error: storage faults (ErrorEventData)
//
// Unlock attempts are recorded by outcome, reason and length only. The
// attempted code and the stored code never appear in an event.
//
// # File Format
//
// Log files use CBOR encoding with .elog extension. The safe-log CLI tool
// provides viewing, filtering, and export capabilities.
package log
