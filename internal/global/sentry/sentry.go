package sentry

import (
	"errors"
	"fmt"
	"time"

	"participant-registration/config"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

const release = "participant-registration@1.0.0"

// CodedError 带错误码的错误，只有 5xx 需要上报
type CodedError interface {
	error
	GetCode() int32
}

// Init 未配置 DSN 时不启用
func Init() error {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return nil
	}

	tracesSampleRate := cfg.Sentry.SampleRate
	if tracesSampleRate <= 0 {
		tracesSampleRate = 1.0
	}
	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = string(cfg.Mode)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      environment,
		Release:          release,
		SampleRate:       1.0, // 错误事件全部上报
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
		EnableLogs:       true,
		BeforeSend:       scrubRequest,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	return nil
}

// scrubRequest 报名表单里是姓名、地址和邮箱，不随事件上报
func scrubRequest(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event.Request != nil {
		event.Request.Data = ""
		event.Request.Cookies = ""
		event.Request.QueryString = ""
	}
	return event
}

// Middleware 未配置 DSN 时返回空中间件
func Middleware() gin.HandlerFunc {
	if config.Get().Sentry.Dsn == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return sentrygin.New(sentrygin.Options{
		// handler 的 panic 先被内层的 middleware.Recovery 转成错误页，
		// 只有 Recovery 外层中间件的 panic 会到这里，上报后继续抛出
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// CaptureException 上报错误页上的 5xx，带上路由和报名 id
func CaptureException(c *gin.Context, err error) {
	if config.Get().Sentry.Dsn == "" || !shouldReport(err) {
		return
	}
	hub := sentrygin.GetHubFromContext(c)
	if hub == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(c.Request)
		scope.SetTag("method", c.Request.Method)
		scope.SetTag("route", c.FullPath())
		if id := c.Param("id"); id != "" {
			scope.SetTag("participant_id", id)
		}
		hub.CaptureException(err)
	})
}

func shouldReport(err error) bool {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.GetCode() >= 500 && coded.GetCode() < 600
	}
	return true
}

// Flush 退出前等待事件发送完
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
