// Package logging builds the slog loggers used across unitshift.
//
// Console output is a compact single-line format on stderr so command
// output on stdout stays machine-readable. When a log directory is
// configured, every record is also mirrored as JSON into unitshift.log.
// Helpers enforce the event_type and error_hint fields on warnings and
// errors, and carry a per-invocation request ID through context.
package logging
