package redis

import (
	"context"
	"net"
	"time"

	"participant-registration/config"
	"participant-registration/internal/global/sentry/tracing"
	"participant-registration/tools"

	"github.com/redis/go-redis/v9"
)

// Client 未配置 Redis 时为 nil
var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	if cfg.Host == "" {
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if tracing.IsEnabled() {
		Client.AddHook(tracing.NewRedisSentryHook())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tools.PanicOnErr(Client.Ping(ctx).Err())
}
