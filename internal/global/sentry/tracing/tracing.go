// Package tracing 提供 Sentry 性能追踪的集成
// 包含 GORM 和 Redis 的追踪实现
package tracing

import (
	"participant-registration/config"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// StartSpan 在当前请求的 transaction 下创建子 span，调用方负责 Finish()
// 没有父 span 时返回 no-op span
//
//	span := tracing.StartSpan(c, "participant.export", "导出报名表")
//	defer span.Finish()
func StartSpan(c *gin.Context, operation, description string) *sentry.Span {
	if c == nil || c.Request == nil {
		return &sentry.Span{}
	}
	parentSpan := sentry.SpanFromContext(c.Request.Context())
	if parentSpan == nil {
		return &sentry.Span{}
	}

	span := parentSpan.StartChild(operation)
	span.Description = description
	return span
}
