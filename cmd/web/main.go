package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "net/http"
    "os"
    "os/signal"
    "syscall"

    "go.uber.org/zap"
    "golang.org/x/sync/errgroup"

    "github.com/Bonythomasv/bonythomas-resume/internal/config"
    "github.com/Bonythomasv/bonythomas-resume/internal/observability"
)

func main() {
    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
        fmt.Fprintf(os.Stderr, "web: %v\n", err)
        os.Exit(1)
    }
}

// run wires configuration, logging, and the HTTP server. With -export it writes the
// rendered site to a directory instead of serving it.
func run(ctx context.Context, args []string, stderr io.Writer) error {
    flags := flag.NewFlagSet("web", flag.ContinueOnError)
    flags.SetOutput(stderr)
    var (
        addr      string
        exportDir string
        envFile   string
    )
    flags.StringVar(&addr, "addr", "", "HTTP listen address (defaults to :$RESUME_WEB_PORT, :$PORT, or :8080)")
    flags.StringVar(&exportDir, "export", "", "write the rendered site to this directory and exit")
    flags.StringVar(&envFile, "env-file", ".env", "optional dotenv file with local overrides")
    if err := flags.Parse(args); err != nil {
        return err
    }

    cfg, err := config.Load(config.WithEnvFile(envFile))
    if err != nil {
        return err
    }
    if addr == "" {
        addr = cfg.Server.Addr()
    }

    logger, err := observability.NewLogger(observability.LoggerOptions{
        Level:   cfg.Log.Level,
        Dev:     cfg.Dev,
        SiteURL: cfg.Site.URL,
    })
    if err != nil {
        return fmt.Errorf("init logger: %w", err)
    }
    defer func() { _ = logger.Sync() }()

    a, err := newApp(cfg, logger)
    if err != nil {
        logger.Error("startup failed", zap.Error(err))
        return err
    }

    if exportDir != "" {
        if err := exportSite(ctx, a, exportDir); err != nil {
            logger.Error("export failed", zap.String("dir", exportDir), zap.Error(err))
            return err
        }
        logger.Info("site exported", zap.String("dir", exportDir))
        return nil
    }

    srv := &http.Server{
        Addr:              addr,
        Handler:           a.routes(),
        ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
        ReadTimeout:       cfg.Server.ReadTimeout,
        WriteTimeout:      cfg.Server.WriteTimeout,
        IdleTimeout:       cfg.Server.IdleTimeout,
    }

    g, gctx := errgroup.WithContext(ctx)
    g.Go(func() error {
        logger.Info("web listening",
            zap.String("addr", addr),
            zap.Bool("dev", cfg.Dev),
            zap.String("site_url", a.builder.SiteURL()),
        )
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            return fmt.Errorf("listen: %w", err)
        }
        return nil
    })
    g.Go(func() error {
        <-gctx.Done()
        logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
        shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
        defer cancel()
        if err := srv.Shutdown(shutdownCtx); err != nil {
            return fmt.Errorf("shutdown: %w", err)
        }
        return nil
    })
    return g.Wait()
}
