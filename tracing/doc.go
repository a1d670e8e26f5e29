// Package tracing integrates OpenTelemetry with the runtime: every action call
// is recorded as a span named after the action. Applications that never call
// Init get no-op spans.
package tracing
