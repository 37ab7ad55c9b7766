package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrTool   = "tool"
	attrResult = "result"
)

// Result attribute values.
const (
	resultSuccess = "success"
	resultError   = "error"
)

// Metrics records assistant observability metrics. A nil *Metrics is valid
// and records nothing, so callers never have to branch on whether metrics
// are enabled.
type Metrics struct {
	conversationTurnsTotal metric.Int64Counter
	modelRequestsTotal     metric.Int64Counter
	modelRequestDuration   metric.Float64Histogram
	toolInvocationsTotal   metric.Int64Counter
}

// NewMetrics creates a Metrics instance on the global meter provider. Without
// a configured provider the instruments are no-ops, which is the right
// default for a CLI.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/pmalik/teamdinner")
	m := &Metrics{}

	var err error
	m.conversationTurnsTotal, err = meter.Int64Counter(
		"conversation_turns_total",
		metric.WithDescription("Total number of user turns processed"),
		metric.WithUnit("{turn}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation_turns_total counter: %w", err)
	}

	m.modelRequestsTotal, err = meter.Int64Counter(
		"model_requests_total",
		metric.WithDescription("Total number of language model requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create model_requests_total counter: %w", err)
	}

	m.modelRequestDuration, err = meter.Float64Histogram(
		"model_request_duration_seconds",
		metric.WithDescription("Language model request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create model_request_duration_seconds histogram: %w", err)
	}

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total number of tool invocations by tool and result"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool_invocations_total counter: %w", err)
	}

	return m, nil
}

// RecordConversationTurn counts one processed user turn.
func (m *Metrics) RecordConversationTurn(ctx context.Context) {
	if m == nil {
		return
	}
	m.conversationTurnsTotal.Add(ctx, 1)
}

// RecordModelRequest counts one model request and its duration.
func (m *Metrics) RecordModelRequest(ctx context.Context, success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(attrResult, resultValue(success)))
	m.modelRequestsTotal.Add(ctx, 1, attrs)
	m.modelRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordToolInvocation counts one tool invocation by tool name and result.
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool string, success bool) {
	if m == nil {
		return
	}
	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrTool, tool),
		attribute.String(attrResult, resultValue(success)),
	))
}

func resultValue(success bool) string {
	if success {
		return resultSuccess
	}
	return resultError
}
