package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Bonythomasv/bonythomas-resume/internal/requestctx"
)

func TestNewLoggerLevels(t *testing.T) {
	logger, err := NewLogger(LoggerOptions{Level: "debug"})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(LoggerOptions{Level: "bogus"})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = NewLogger(LoggerOptions{Level: " WARN "})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLoggerDevConsole(t *testing.T) {
	logger, err := NewLogger(LoggerOptions{Dev: true, SiteURL: "https://bonythomas-resume.vercel.app"})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestRequestLoggerMiddlewareLogsCompletion(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(InjectLoggerMiddleware(logger))
	router.Use(RequestLoggerMiddleware)
	router.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\n"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/robots.txt", fields["route"])
	require.EqualValues(t, http.StatusOK, fields["status"])
	require.EqualValues(t, len("User-agent: *\n"), fields["bytes"])
	require.NotEmpty(t, fields["request_id"])
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestRequestLoggerMiddlewareLogsRenderedPage(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	handler := InjectLoggerMiddleware(zap.New(core))(RequestLoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestctx.Page(r.Context()).Set("home", "https://bonythomas-resume.vercel.app/?t=1")
		w.WriteHeader(http.StatusOK)
	})))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "home", fields["page"])
	require.Equal(t, "https://bonythomas-resume.vercel.app/?t=1", fields["canonical_url"])
}

func TestRecoveryMiddlewareUsesFallbackWithoutContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()
	RecoveryMiddleware(zap.New(core))(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	rec = httptest.NewRecorder()
	RecoveryMiddleware(nil)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestLoggerMiddlewareWarnsOnClientErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	handler := InjectLoggerMiddleware(zap.New(core))(RequestLoggerMiddleware(http.NotFoundHandler()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestRecoveryMiddlewareReturns500(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := InjectLoggerMiddleware(logger)(RequestLoggerMiddleware(RecoveryMiddleware(logger)(panicking)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 1)
	require.Equal(t, zapcore.ErrorLevel, completed[0].Level)
}

func TestTraceMiddlewareHonoursTraceparent(t *testing.T) {
	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"

	var got requestctx.TraceInfo
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, ok := requestctx.Trace(r.Context())
		require.True(t, ok)
		got = info
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, traceID, got.TraceID)
	require.True(t, got.Sampled)
	require.Contains(t, rec.Header().Get("traceparent"), traceID)
}

func TestTraceMiddlewareWithoutHeader(t *testing.T) {
	called := false
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := requestctx.Trace(r.Context())
		require.True(t, ok)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.True(t, called)
}

func TestRenderMetricsRecordWithNoopMeter(t *testing.T) {
	m := NewRenderMetrics(noop.NewMeterProvider().Meter("test"), nil)
	require.True(t, m.latencyEnabled)
	require.True(t, m.rendersEnabled)
	m.Record(context.Background(), "home", http.StatusOK, 3*time.Millisecond)

	var nilMetrics *RenderMetrics
	nilMetrics.Record(context.Background(), "home", http.StatusOK, time.Millisecond)
}
