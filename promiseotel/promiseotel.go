// Package promiseotel records Retry lifecycle events with OpenTelemetry.
//
// Each retry adds an event to the span carried by ctx and increments the
// promise.retry.retries counter. The final outcome increments
// promise.retry.outcomes with a result attribute of "success" or "failure";
// failures are also recorded on the span.
package promiseotel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/bjaus/promise"
)

const (
	meterName = "github.com/bjaus/promise"

	metricRetries  = "promise.retry.retries"
	metricOutcomes = "promise.retry.outcomes"

	eventRetry = "promise.retry"

	attrAttempt  = "promise.retry.attempt"
	attrAttempts = "promise.retry.attempts"
	attrDelayMs  = "promise.retry.delay_ms"
	attrResult   = "promise.retry.result"
	attrError    = "error.message"

	resultSuccess = "success"
	resultFailure = "failure"
)

// Instrumentation holds the metric instruments shared by every Retry it observes.
type Instrumentation struct {
	retries  metric.Int64Counter
	outcomes metric.Int64Counter
}

// New creates instruments from provider. A nil provider uses the global one.
func New(provider metric.MeterProvider) (*Instrumentation, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(meterName)

	retries, err := meter.Int64Counter(metricRetries,
		metric.WithDescription("Number of retries scheduled by Retry"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		return nil, err
	}
	outcomes, err := meter.Int64Counter(metricOutcomes,
		metric.WithDescription("Number of Retry calls that settled, by result"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}
	return &Instrumentation{retries: retries, outcomes: outcomes}, nil
}

// Option returns the hooks that feed i.
func (i *Instrumentation) Option() promise.Option {
	return promise.Join(
		promise.OnRetry(i.onRetry),
		promise.OnSuccess(i.onSuccess),
		promise.OnExhausted(i.onExhausted),
	)
}

func (i *Instrumentation) onRetry(ctx context.Context, attempt int, err error, delay time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Int(attrAttempt, attempt),
		attribute.Int64(attrDelayMs, delay.Milliseconds()),
	}
	if err != nil {
		attrs = append(attrs, attribute.String(attrError, err.Error()))
	}
	trace.SpanFromContext(ctx).AddEvent(eventRetry, trace.WithAttributes(attrs...))
	i.retries.Add(ctx, 1)
}

func (i *Instrumentation) onSuccess(ctx context.Context, attempts int) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int(attrAttempts, attempts))
	i.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String(attrResult, resultSuccess)))
}

func (i *Instrumentation) onExhausted(ctx context.Context, attempts int, err error) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.Int(attrAttempts, attempts))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	i.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String(attrResult, resultFailure)))
}
