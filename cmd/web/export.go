package main

import (
    "bytes"
    "context"
    "fmt"
    "io"
    "io/fs"
    "os"
    "path/filepath"

    "github.com/a-h/templ"
    "go.uber.org/zap"

    "github.com/Bonythomasv/bonythomas-resume/internal/requestctx"
    "github.com/Bonythomasv/bonythomas-resume/internal/seo"
)

// exportPage is one rendered route of the static export.
type exportPage struct {
    name      string
    component templ.Component
}

// exportSite renders every route into dir so the site can be served by any static host.
// Pages are rendered in memory first; a render failure aborts before any file is written.
func exportSite(ctx context.Context, a *app, dir string) error {
    ctx = requestctx.WithLogger(ctx, a.logger)
    pages := []exportPage{
        {"index.html", a.homeComponent(ctx)},
        {"404.html", a.notFoundComponent(ctx)},
    }
    if err := writePages(ctx, dir, pages); err != nil {
        return err
    }

    meta, _ := a.builder.Build()
    if err := writeFile(dir, "robots.txt", []byte(seo.RobotsTxt(meta))); err != nil {
        return err
    }
    sitemap, err := seo.Sitemap(meta, a.lastModified())
    if err != nil {
        return fmt.Errorf("export: sitemap: %w", err)
    }
    if err := writeFile(dir, "sitemap.xml", sitemap); err != nil {
        return err
    }

    copied := 0
    err = fs.WalkDir(a.assets, ".", func(path string, d fs.DirEntry, err error) error {
        if err != nil {
            return err
        }
        if d.IsDir() {
            return nil
        }
        if err := copyAsset(a.assets, path, filepath.Join(dir, "assets", filepath.FromSlash(path))); err != nil {
            return err
        }
        copied++
        return nil
    })
    if err != nil {
        return fmt.Errorf("export: assets: %w", err)
    }
    requestctx.Logger(ctx).Debug("assets exported", zap.Int("files", copied))
    return nil
}

// writePages renders all pages, then creates dir and writes them.
func writePages(ctx context.Context, dir string, pages []exportPage) error {
    rendered := make([][]byte, len(pages))
    for i, p := range pages {
        var buf bytes.Buffer
        if err := p.component.Render(ctx, &buf); err != nil {
            return fmt.Errorf("export: render %s: %w", p.name, err)
        }
        rendered[i] = buf.Bytes()
    }

    if err := os.MkdirAll(dir, 0o755); err != nil {
        return fmt.Errorf("export: %w", err)
    }
    for i, p := range pages {
        if err := writeFile(dir, p.name, rendered[i]); err != nil {
            return err
        }
    }
    return nil
}

func writeFile(dir, name string, data []byte) error {
    if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
        return fmt.Errorf("export: write %s: %w", name, err)
    }
    return nil
}

func copyAsset(fsys fs.FS, src, dst string) error {
    if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
        return err
    }
    in, err := fsys.Open(src)
    if err != nil {
        return err
    }
    defer in.Close()
    out, err := os.Create(dst)
    if err != nil {
        return err
    }
    if _, err := io.Copy(out, in); err != nil {
        out.Close()
        return err
    }
    return out.Close()
}
