package observability

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/Bonythomasv/bonythomas-resume/internal/requestctx"
)

var tracer = otel.Tracer("github.com/Bonythomasv/bonythomas-resume/internal/observability")

// Propagator is the W3C trace context propagator used for inbound and outbound headers.
var Propagator propagation.TextMapPropagator = propagation.TraceContext{}

// Tracer exposes the package tracer so handlers can open child spans.
func Tracer() trace.Tracer {
	return tracer
}

// TraceMiddleware extracts a W3C traceparent header, starts a server span, and stores trace metadata on the request context.
func TraceMiddleware(next http.Handler) http.Handler {
	if next == nil {
		next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := Propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

		ctx, span := tracer.Start(ctx, spanNameFromRequest(r), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		span.SetAttributes(standardSpanAttributes(r)...)

		spanCtx := span.SpanContext()
		info := requestctx.TraceInfo{Sampled: spanCtx.IsSampled()}
		if spanCtx.HasTraceID() {
			info.TraceID = spanCtx.TraceID().String()
		}
		if spanCtx.HasSpanID() {
			info.SpanID = spanCtx.SpanID().String()
		}
		ctx = requestctx.WithTrace(ctx, info)

		Propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func spanNameFromRequest(r *http.Request) string {
	if r == nil {
		return "unknown"
	}
	path := "/"
	if r.URL != nil && r.URL.Path != "" {
		path = r.URL.Path
	}
	return fmt.Sprintf("%s %s", r.Method, path)
}

func standardSpanAttributes(r *http.Request) []attribute.KeyValue {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", r.Method),
		attribute.String("url.scheme", scheme),
	}
	if r.URL != nil {
		if path := r.URL.Path; path != "" {
			attrs = append(attrs, attribute.String("url.path", path))
		}
	}
	if host := r.Host; host != "" {
		attrs = append(attrs, attribute.String("server.address", host))
	}
	if ua := r.UserAgent(); ua != "" {
		attrs = append(attrs, attribute.String("user_agent.original", ua))
	}
	return attrs
}
