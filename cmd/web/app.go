package main

import (
    "context"
    "fmt"
    "io/fs"
    "net/http"
    "net/url"
    "os"
    "strings"
    "time"

    "github.com/a-h/templ"
    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"
    "go.opentelemetry.io/otel/attribute"
    "go.uber.org/zap"

    "github.com/Bonythomasv/bonythomas-resume/internal/config"
    "github.com/Bonythomasv/bonythomas-resume/internal/format"
    handlersPkg "github.com/Bonythomasv/bonythomas-resume/internal/handlers"
    mw "github.com/Bonythomasv/bonythomas-resume/internal/middleware"
    "github.com/Bonythomasv/bonythomas-resume/internal/observability"
    "github.com/Bonythomasv/bonythomas-resume/internal/requestctx"
    "github.com/Bonythomasv/bonythomas-resume/internal/resume"
    "github.com/Bonythomasv/bonythomas-resume/internal/seo"
    "github.com/Bonythomasv/bonythomas-resume/internal/views"
    "github.com/Bonythomasv/bonythomas-resume/public"
)

// devTemplatesDir is re-read on every request when dev mode is on and the directory exists.
const devTemplatesDir = "internal/views/templates"

// app holds everything a request needs. Fields are read-only once newApp returns.
type app struct {
    cfg     config.Config
    logger  *zap.Logger
    resume  *resume.Resume
    builder *seo.Builder
    pages   *views.Pages
    assets  fs.FS
    metrics renderRecorder
    now     func() time.Time
}

// renderRecorder receives one observation per rendered page.
type renderRecorder interface {
    Record(ctx context.Context, page string, status int, d time.Duration)
}

func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
    if logger == nil {
        logger = zap.NewNop()
    }
    a := &app{
        cfg:     cfg,
        logger:  logger,
        metrics: observability.NewRenderMetrics(nil, logger),
        now:     time.Now,
    }

    res, err := loadResume(cfg.Data)
    if err != nil {
        return nil, err
    }
    a.resume = res

    opts := seo.Options{
        SiteURL:       cfg.Site.URL,
        CacheBust:     cfg.Site.CacheBust,
        TwitterHandle: cfg.Site.TwitterHandle,
        Locale:        cfg.Site.Locale,
        FacebookAppID: cfg.Site.FacebookAppID,
        Keywords:      res.Keywords,
        Now:           func() time.Time { return a.now() },
    }
    if cfg.Site.SocialImage {
        alt := cfg.Site.SocialImageAlt
        if alt == "" {
            alt = res.Name
        }
        opts.SocialImage = &seo.Image{URL: cfg.Site.SocialImageURL, Alt: alt}
    }
    a.builder, err = seo.NewBuilder(res.Identity(), opts)
    if err != nil {
        return nil, fmt.Errorf("metadata: %w", err)
    }

    var templates fs.FS
    if cfg.Dev {
        if info, err := os.Stat(devTemplatesDir); err == nil && info.IsDir() {
            templates = os.DirFS(devTemplatesDir)
        }
    }
    a.pages, err = views.NewPages(templates, cfg.Dev)
    if err != nil {
        return nil, err
    }

    a.assets, err = public.AssetsFS()
    if err != nil {
        return nil, fmt.Errorf("assets: %w", err)
    }
    return a, nil
}

func loadResume(cfg config.DataConfig) (*resume.Resume, error) {
    if strings.TrimSpace(cfg.File) == "" {
        return resume.Default()
    }
    return resume.Load(cfg.File)
}

func (a *app) routes() http.Handler {
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    // If deployed behind a trusted reverse proxy/load balancer, RealIP will use
    // X-Forwarded-For to determine the client IP.
    r.Use(middleware.RealIP)
    r.Use(observability.TraceMiddleware)
    r.Use(observability.InjectLoggerMiddleware(a.logger))
    r.Use(observability.RequestLoggerMiddleware)
    r.Use(observability.RecoveryMiddleware(a.logger))
    r.Use(middleware.Compress(5))
    r.Use(middleware.Timeout(30 * time.Second))

    r.With(mw.NoStore()).Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "text/plain; charset=utf-8")
        w.WriteHeader(http.StatusOK)
        _, _ = w.Write([]byte("ok"))
    })

    r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(a.assets)))

    r.Group(func(r chi.Router) {
        r.Use(mw.SecureHeaders)
        r.Use(mw.Revalidate(a.pageCacheSeconds()))
        r.Get("/", a.homeHandler)
        r.Get("/robots.txt", a.robotsHandler)
        r.Get("/sitemap.xml", a.sitemapHandler)
    })

    r.NotFound(a.notFoundHandler)
    r.MethodNotAllowed(mw.MethodNotAllowed)
    return r
}

// pageCacheSeconds keeps cache-busted pages out of shared caches.
func (a *app) pageCacheSeconds() int {
    if a.cfg.Site.CacheBust || a.cfg.Dev {
        return 0
    }
    return 300
}

// homeComponent builds fresh metadata and the full resume document, and records
// the page on ctx for the request log.
func (a *app) homeComponent(ctx context.Context) templ.Component {
    meta, viewport := a.builder.Build()
    requestctx.Page(ctx).Set("home", meta.CanonicalURL)
    data := handlersPkg.BuildHomeData(a.resume, meta, a.now())
    jsonLD := seo.StructuredData(meta, a.resume.About, a.absoluteURL(a.resume.AvatarURL), a.resume.SocialURLs())
    return views.Document(meta.Language, views.Head(meta, viewport, jsonLD), a.pages.Page("home", data))
}

func (a *app) notFoundComponent(ctx context.Context) templ.Component {
    meta, viewport := a.builder.Build()
    requestctx.Page(ctx).Set("notfound", meta.CanonicalURL)
    data := handlersPkg.BuildNotFoundData(meta)
    meta.Title.Default = data.Title
    return views.Document(data.Lang, views.Head(meta, viewport, nil), a.pages.Page("notfound", data))
}

// homeHandler renders the resume page.
func (a *app) homeHandler(w http.ResponseWriter, r *http.Request) {
    ctx, span := observability.Tracer().Start(r.Context(), "render home")
    defer span.End()
    span.SetAttributes(attribute.String("resume.name", a.resume.Name))

    r = r.WithContext(ctx)
    a.render(w, r, "home", a.homeComponent(ctx), http.StatusOK)
}

func (a *app) notFoundHandler(w http.ResponseWriter, r *http.Request) {
    if mw.WantsJSON(r) || strings.HasPrefix(r.URL.Path, "/assets/") {
        mw.Error(w, r, http.StatusNotFound)
        return
    }
    a.render(w, r, "notfound", a.notFoundComponent(r.Context()), http.StatusNotFound)
}

// render writes c with the given status and records the status actually sent,
// which is 500 when the document fails before any byte is written.
func (a *app) render(w http.ResponseWriter, r *http.Request, page string, c templ.Component, status int) {
    ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
    start := time.Now()
    templ.Handler(c, templ.WithStatus(status)).ServeHTTP(ww, r)
    sent := ww.Status()
    if sent == 0 {
        sent = http.StatusOK
    }
    a.metrics.Record(r.Context(), page, sent, time.Since(start))
}

func (a *app) robotsHandler(w http.ResponseWriter, r *http.Request) {
    meta, _ := a.builder.Build()
    w.Header().Set("Content-Type", "text/plain; charset=utf-8")
    _, _ = w.Write([]byte(seo.RobotsTxt(meta)))
}

func (a *app) sitemapHandler(w http.ResponseWriter, r *http.Request) {
    meta, _ := a.builder.Build()
    body, err := seo.Sitemap(meta, a.lastModified())
    if err != nil {
        requestctx.Logger(r.Context()).Error("sitemap render failed", zap.Error(err))
        mw.Error(w, r, http.StatusInternalServerError)
        return
    }
    w.Header().Set("Content-Type", "application/xml; charset=utf-8")
    _, _ = w.Write(body)
}

// lastModified is the most recent date in the resume, or today when none parse.
func (a *app) lastModified() time.Time {
    var dates []string
    for _, w := range a.resume.Work {
        dates = append(dates, w.Start, w.End)
    }
    for _, e := range a.resume.Education {
        dates = append(dates, e.Start, e.End)
    }
    latest := format.LastModified(dates...)
    now := a.now()
    if latest.IsZero() || latest.After(now) {
        return now
    }
    return latest
}

// absoluteURL resolves ref against the site address. Empty refs stay empty.
func (a *app) absoluteURL(ref string) string {
    ref = strings.TrimSpace(ref)
    if ref == "" {
        return ""
    }
    base, err := url.Parse(a.builder.SiteURL())
    if err != nil {
        return ref
    }
    u, err := base.Parse(ref)
    if err != nil {
        return ref
    }
    return u.String()
}
