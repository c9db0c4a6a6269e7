package tracing

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"participant-registration/config"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
)

// RedisSentryHook 追踪下拉列表缓存的读写，GET 额外记录是否命中
type RedisSentryHook struct {
	slowThreshold time.Duration
}

func NewRedisSentryHook() *RedisSentryHook {
	ms := config.Get().Sentry.Tracing.RedisSlowThresholdMs
	return &RedisSentryHook{slowThreshold: time.Duration(ms) * time.Millisecond}
}

func (h *RedisSentryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *RedisSentryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		parent := sentry.SpanFromContext(ctx)
		if parent == nil {
			return next(ctx, cmd)
		}

		name := strings.ToLower(cmd.Name())
		span := parent.StartChild("cache." + name)
		span.Description = strings.ToUpper(name)
		span.SetData("db.system", "redis")
		// 缓存键是固定的几个，不会造成高基数
		if key, ok := commandKey(cmd); ok {
			span.Description += " " + key
			span.SetData("cache.key", key)
		}

		start := time.Now()
		err := next(span.Context(), cmd)

		if name == "get" {
			span.SetData("cache.hit", err == nil)
		}
		h.finish(span, start, err)
		return err
	}
}

func (h *RedisSentryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		parent := sentry.SpanFromContext(ctx)
		if parent == nil {
			return next(ctx, cmds)
		}

		span := parent.StartChild("cache.pipeline")
		span.Description = "PIPELINE"
		span.SetData("db.system", "redis")
		span.SetData("redis.pipeline_length", len(cmds))

		start := time.Now()
		err := next(span.Context(), cmds)
		h.finish(span, start, err)
		return err
	}
}

func (h *RedisSentryHook) finish(span *sentry.Span, start time.Time, err error) {
	if h.slowThreshold > 0 && time.Since(start) < h.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}
	// 未命中是正常结果
	if err != nil && !errors.Is(err, redis.Nil) {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("redis.error", err.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}

func commandKey(cmd redis.Cmder) (string, bool) {
	args := cmd.Args()
	if len(args) < 2 {
		return "", false
	}
	key, ok := args[1].(string)
	return key, ok
}
