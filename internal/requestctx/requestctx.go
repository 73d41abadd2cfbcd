// Package requestctx carries per-request state for the resume site: the scoped
// logger, trace identifiers, and the page a request ended up rendering.
package requestctx

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type key int

const (
	loggerKey key = iota
	traceKey
	pageKey
)

// TraceInfo holds the identifiers of the server span for the current request.
type TraceInfo struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// PageInfo records which page a request rendered and the canonical URL it was
// rendered with. Middleware installs an empty one; handlers fill it in.
// A nil *PageInfo is valid and ignores writes.
type PageInfo struct {
	mu        sync.Mutex
	name      string
	canonical string
}

// Set records the rendered page.
func (p *PageInfo) Set(name, canonicalURL string) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.name, p.canonical = name, canonicalURL
	p.mu.Unlock()
}

// Get returns the rendered page name and canonical URL, empty until Set is called.
func (p *PageInfo) Get() (name, canonicalURL string) {
	if p == nil {
		return "", ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name, p.canonical
}

// Fields returns zap fields for the rendered page, or nil when nothing was rendered.
func (p *PageInfo) Fields() []zap.Field {
	name, canonical := p.Get()
	if name == "" {
		return nil
	}
	return []zap.Field{zap.String("page", name), zap.String("canonical_url", canonical)}
}

// WithPage installs an empty PageInfo unless ctx already carries one, and returns it.
func WithPage(ctx context.Context) (context.Context, *PageInfo) {
	if ctx == nil {
		ctx = context.Background()
	}
	if p := Page(ctx); p != nil {
		return ctx, p
	}
	p := &PageInfo{}
	return context.WithValue(ctx, pageKey, p), p
}

// Page returns the PageInfo installed by WithPage, or nil.
func Page(ctx context.Context) *PageInfo {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(pageKey).(*PageInfo)
	return p
}

// WithLogger stores logger on ctx. A nil logger leaves ctx unchanged.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFrom reports the logger stored on ctx, if any.
func LoggerFrom(ctx context.Context) (*zap.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(loggerKey).(*zap.Logger)
	return logger, ok && logger != nil
}

// Logger returns the logger stored on ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if logger, ok := LoggerFrom(ctx); ok {
		return logger
	}
	return zap.NewNop()
}

// WithTrace stores the server span identifiers on ctx.
func WithTrace(ctx context.Context, info TraceInfo) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, traceKey, info)
}

// Trace returns the identifiers stored by WithTrace.
func Trace(ctx context.Context) (TraceInfo, bool) {
	if ctx == nil {
		return TraceInfo{}, false
	}
	info, ok := ctx.Value(traceKey).(TraceInfo)
	return info, ok
}

// TraceID is Trace(ctx).TraceID, empty when absent.
func TraceID(ctx context.Context) string {
	info, _ := Trace(ctx)
	return info.TraceID
}
