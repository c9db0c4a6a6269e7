package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"participant-registration/config"

	sentryslog "github.com/getsentry/sentry-go/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	instance *slog.Logger
	once     sync.Once
)

// fanout 把一条日志交给所有启用了该级别的 handler
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// output release 且配置了文件路径时写入轮转文件，否则写 stdout
func output(cfg *config.Config) io.Writer {
	if cfg.Mode == config.ModeRelease && cfg.Log.FilePath != "" {
		return &lumberjack.Logger{
			Filename:   cfg.Log.FilePath,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		}
	}
	return os.Stdout
}

func newHandler(cfg *config.Config) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: cfg.Mode == config.ModeRelease,
		Level:     getLogLevel(cfg.Log.Level),
	}

	var base slog.Handler
	if cfg.Mode == config.ModeRelease {
		base = slog.NewJSONHandler(output(cfg), opts)
	} else {
		base = slog.NewTextHandler(output(cfg), opts)
	}
	if cfg.Sentry.Dsn == "" {
		return base
	}

	// Error 作为事件上报，Warn 以上作为 Sentry 日志
	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
		AddSource:  cfg.Mode == config.ModeRelease,
	}.NewSentryHandler(context.Background())
	return fanout{base, sentryHandler}
}

func Get() *slog.Logger {
	once.Do(func() {
		cfg := config.Get()
		instance = slog.New(newHandler(cfg)).With(
			"app_name", "participant-registration",
			"env", string(cfg.Mode),
		)
	})
	return instance
}

// New 带 module 字段的 Logger
func New(module string) *slog.Logger {
	return Get().With("module", module)
}

type requestInfo interface {
	ClientIP() string
	GetHeader(string) string
	FullPath() string
	Param(string) string
}

// WithContext 附加客户端 IP、路由和报名 id，便于在 Sentry 日志里定位是哪条报名
func WithContext(base *slog.Logger, c requestInfo) *slog.Logger {
	l := base.With("client_ip", c.ClientIP())
	if route := c.FullPath(); route != "" {
		l = l.With("route", route)
	}
	if id := c.Param("id"); id != "" {
		l = l.With("participant_id", id)
	}
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		l = l.With("x_forwarded_for", forwardedFor)
	}
	return l
}

func getLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return l
}
