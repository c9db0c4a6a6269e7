package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseBody JSON 接口的统一返回体
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data ...any) {
	body := ResponseBody{Code: 200, Msg: "success"}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 把错误交给 middleware.ErrorPage 统一渲染，并终止后续 handler
func Fail(c *gin.Context, err *Error) {
	_ = c.Error(err)
	c.Set(ErrorContextKey, err)
	c.Abort()
}

// HTML 渲染页面，data 中补充 title
func HTML(c *gin.Context, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	c.HTML(http.StatusOK, name, data)
}

// Redirect 表单提交成功后跳转
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// AsError 把任意错误归一为 *Error，未知错误按 ErrServerInternal 处理
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrServerInternal.WithOrigin(err)
}

// Recovery 捕获 handler 中的 panic，转为 500 错误页
func Recovery(c *gin.Context) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", r)
	}
	Fail(c, ErrServerInternal.WithOrigin(err))
}
