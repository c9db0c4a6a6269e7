package middleware

import (
	"participant-registration/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Recovery 需要注册在 ErrorPage 之后，panic 转成的错误由 ErrorPage 渲染
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer response.Recovery(c)
		c.Next()
	}
}
