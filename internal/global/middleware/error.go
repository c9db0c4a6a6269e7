package middleware

import (
	"log/slog"

	"participant-registration/config"
	"participant-registration/internal/global/response"
	"participant-registration/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// ErrorPage 统一处理 response.Fail 挂到 c.Errors 上的错误：记录日志、上报 5xx、渲染 error 页
func ErrorPage(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := response.AsError(c.Errors.Last().Err)

		if err.Status() >= 500 {
			log.Error("请求处理失败", "path", c.Request.URL.Path, "code", err.Code, "error", err.Origin)
			sentry.CaptureException(c, err)
		} else {
			log.Warn("请求处理失败", "path", c.Request.URL.Path, "code", err.Code, "msg", err.Message)
		}

		if c.Writer.Written() {
			return
		}
		data := gin.H{
			"title":   err.Message,
			"message": err.Message,
			"status":  err.Status(),
		}
		if config.Get().Mode == config.ModeDebug {
			data["origin"] = err.Origin
		}
		c.HTML(err.Status(), "error.html", data)
	}
}
