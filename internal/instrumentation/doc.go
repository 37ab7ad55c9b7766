// Package instrumentation provides OpenTelemetry metrics for the assistant:
// conversation turns, model requests, and tool invocations. Instruments are
// created on the global meter provider and are no-ops unless a provider is
// configured.
package instrumentation
