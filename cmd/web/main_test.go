package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Bonythomasv/bonythomas-resume/internal/config"
	"github.com/Bonythomasv/bonythomas-resume/internal/seo"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestApp builds the app from an explicit env map so the host environment never leaks in.
func newTestApp(t *testing.T, env map[string]string) *app {
	t.Helper()
	cfg, err := config.Load(config.WithEnvMap(env), config.WithoutSystemEnv(), config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	a, err := newApp(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	a.now = func() time.Time { return testNow }
	return a
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parse(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestHealthzOK(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	rec := get(t, srv, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Fatalf("expected body 'ok', got %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Fatalf("unexpected Cache-Control: %s", got)
	}
}

func TestHomeRendersResumeAndMetadata(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	rec := get(t, srv, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	doc := parse(t, rec.Body.String())

	if got := doc.Find("title").Text(); got != "Bony Thomas - Data Engineer" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := doc.Find("h1").First().Text(); got != "Bony Thomas" {
		t.Fatalf("unexpected heading %q", got)
	}
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	if canonical != "https://bonythomas-resume.vercel.app/" {
		t.Fatalf("expected static canonical, got %q", canonical)
	}
	card, _ := doc.Find(`meta[name="twitter:card"]`).Attr("content")
	if card != "summary" {
		t.Fatalf("expected summary card without social image, got %q", card)
	}
	keywords, _ := doc.Find(`meta[name="keywords"]`).Attr("content")
	if !strings.HasPrefix(keywords, "resume,cv,portfolio,Bony Thomas") {
		t.Fatalf("unexpected keywords %q", keywords)
	}
	if n := doc.Find(`script[type="application/ld+json"]`).Length(); n != 2 {
		t.Fatalf("expected 2 json-ld blocks, got %d", n)
	}
	if n := doc.Find(`#work article`).Length(); n != 2 {
		t.Fatalf("expected 2 work entries, got %d", n)
	}
	if doc.Find(`#about strong`).Length() == 0 {
		t.Fatalf("expected markdown summary to render emphasis")
	}
	if n := doc.Find(`body > script[defer]`).Length(); n != 2 {
		t.Fatalf("expected analytics and speed insights scripts, got %d", n)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff header, got %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "s-maxage=300") {
		t.Fatalf("unexpected Cache-Control %q", got)
	}
}

func TestHomeWithSocialImageAndCacheBust(t *testing.T) {
	srv := newTestApp(t, map[string]string{
		"RESUME_WEB_SOCIAL_IMAGE":         "true",
		"RESUME_WEB_CANONICAL_CACHE_BUST": "true",
	}).routes()
	doc := parse(t, get(t, srv, "/").Body.String())

	card, _ := doc.Find(`meta[name="twitter:card"]`).Attr("content")
	if card != "summary_large_image" {
		t.Fatalf("expected large image card, got %q", card)
	}
	image, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	if image != "https://bonythomas-resume.vercel.app/assets/og-image.png" {
		t.Fatalf("unexpected og:image %q", image)
	}
	canonical, _ := doc.Find(`link[rel="canonical"]`).Attr("href")
	if canonical != "https://bonythomas-resume.vercel.app/?t=1772366400000" {
		t.Fatalf("unexpected cache-busted canonical %q", canonical)
	}
}

func TestRobotsAndSitemap(t *testing.T) {
	srv := newTestApp(t, nil).routes()

	rec := get(t, srv, "/robots.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sitemap: https://bonythomas-resume.vercel.app/sitemap.xml") {
		t.Fatalf("robots.txt missing sitemap: %s", rec.Body.String())
	}

	rec = get(t, srv, "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<loc>https://bonythomas-resume.vercel.app/</loc>") {
		t.Fatalf("sitemap missing loc: %s", body)
	}
	if !strings.Contains(body, "<lastmod>2021-04-01</lastmod>") {
		t.Fatalf("sitemap lastmod should follow the newest resume date: %s", body)
	}
}

func TestAssetsServedWithCacheHeaders(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	rec := get(t, srv, "/assets/site.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("ETag") == "" {
		t.Fatalf("expected ETag on asset response")
	}
	if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "max-age=604800") {
		t.Fatalf("unexpected Cache-Control %q", got)
	}
}

func TestNotFoundRendersPage(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	rec := get(t, srv, "/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	doc := parse(t, rec.Body.String())
	if got := doc.Find("title").Text(); got != "Page not found | Bony Thomas" {
		t.Fatalf("unexpected 404 title %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	req.Header.Set("Accept", "application/json")
	jsonRec := httptest.NewRecorder()
	srv.ServeHTTP(jsonRec, req)
	if jsonRec.Code != http.StatusNotFound || !strings.Contains(jsonRec.Body.String(), `"error"`) {
		t.Fatalf("expected JSON 404, got %d %s", jsonRec.Code, jsonRec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestApp(t, nil).routes()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestNewAppFailsWithoutIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	if err := os.WriteFile(path, []byte("about: nobody\n"), 0o600); err != nil {
		t.Fatalf("write resume: %v", err)
	}
	cfg, err := config.Load(config.WithEnvMap(map[string]string{"RESUME_WEB_DATA_FILE": path}), config.WithoutSystemEnv(), config.WithEnvFile(""))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	_, err = newApp(cfg, nil)
	if err == nil {
		t.Fatalf("expected startup to fail without a name")
	}
	if !errors.Is(err, seo.ErrConfigurationMissing) {
		t.Fatalf("expected ErrConfigurationMissing, got %v", err)
	}
}

func TestExportSite(t *testing.T) {
	a := newTestApp(t, nil)
	dir := t.TempDir()
	if err := exportSite(context.Background(), a, dir); err != nil {
		t.Fatalf("exportSite: %v", err)
	}
	for _, name := range []string{"index.html", "404.html", "robots.txt", "sitemap.xml", "assets/site.css", "assets/og-image.png"} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err != nil {
			t.Fatalf("expected %s to be exported: %v", name, err)
		}
	}
	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "<title>Bony Thomas - Data Engineer</title>") {
		t.Fatalf("exported index missing title")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Setenv("RESUME_WEB_SITE_URL", "not-a-url")
	var stderr strings.Builder
	err := run(context.Background(), []string{"-env-file", "", "-export", t.TempDir()}, &stderr)
	if err == nil {
		t.Fatalf("expected config validation error")
	}
}
