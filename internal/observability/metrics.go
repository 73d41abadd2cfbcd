package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const metricNamespace = "github.com/Bonythomasv/bonythomas-resume/internal/observability"

// RenderMetrics records page render latency and counts. Instruments that fail to register
// are skipped rather than failing startup.
type RenderMetrics struct {
	latency        metric.Float64Histogram
	latencyEnabled bool
	renders        metric.Int64Counter
	rendersEnabled bool
}

// NewRenderMetrics registers the render instruments on meter, or on the global meter provider when nil.
func NewRenderMetrics(meter metric.Meter, logger *zap.Logger) *RenderMetrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	if meter == nil {
		meter = otel.GetMeterProvider().Meter(metricNamespace)
	}

	latency, latencyErr := meter.Float64Histogram(
		"resume.render.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("Latency in milliseconds for full page renders"),
	)
	if latencyErr != nil {
		logger.Warn("observability: unable to register render latency metric", zap.Error(latencyErr))
	}

	renders, rendersErr := meter.Int64Counter(
		"resume.render.count",
		metric.WithDescription("Count of page renders by page and status"),
	)
	if rendersErr != nil {
		logger.Warn("observability: unable to register render count metric", zap.Error(rendersErr))
	}

	return &RenderMetrics{
		latency:        latency,
		latencyEnabled: latencyErr == nil,
		renders:        renders,
		rendersEnabled: rendersErr == nil,
	}
}

// Record notes one render of page that finished with status after d.
func (m *RenderMetrics) Record(ctx context.Context, page string, status int, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("page", page),
		attribute.Int("status", status),
	)
	if m.latencyEnabled {
		m.latency.Record(ctx, float64(d)/float64(time.Millisecond), attrs)
	}
	if m.rendersEnabled {
		m.renders.Add(ctx, 1, attrs)
	}
}
