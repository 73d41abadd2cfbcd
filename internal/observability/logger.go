package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ServiceName tags every log line written by the site.
const ServiceName = "resume-web"

// LoggerOptions configures the process logger.
type LoggerOptions struct {
	// Level is debug, info, warn, or error. Anything else means info.
	Level string
	// Dev switches to a colored console encoder for local work.
	Dev bool
	// SiteURL is attached to every entry so logs from several deployments stay apart.
	SiteURL string
}

// NewLogger builds the site logger. Production output is JSON on stdout with
// severity/timestamp/message keys; dev output is human-readable console lines.
func NewLogger(opts LoggerOptions) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if name := strings.ToLower(strings.TrimSpace(opts.Level)); name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			level.SetLevel(zapcore.InfoLevel)
		}
	}

	fields := map[string]any{"service": ServiceName}
	if opts.SiteURL != "" {
		fields["site_url"] = opts.SiteURL
	}

	cfg := zap.Config{
		Level:             level,
		Encoding:          "json",
		EncoderConfig:     jsonEncoderConfig(),
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
		InitialFields:     fields,
	}
	if opts.Dev {
		cfg.Encoding = "console"
		cfg.Development = true
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:    "message",
		TimeKey:       "timestamp",
		LevelKey:      "severity",
		CallerKey:     "caller",
		StacktraceKey: "stacktrace",
		EncodeTime:    zapcore.RFC3339NanoTimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(l.String()))
		},
	}
}
