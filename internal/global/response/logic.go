package response

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey gin.Context 中保存 *Error 的键
const ErrorContextKey = "error"

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Error 错误码即错误页的 HTTP 状态码
// Message 展示给用户，Origin 只在 debug 模式的错误页上出现
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin"`
	cause   error
}

func newError(code int32, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode sentry 据此判断是否上报
func (e *Error) GetCode() int32 {
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 原始错误的堆栈，供 Sentry 提取
func (e *Error) StackTrace() pkgerrors.StackTrace {
	var st stackTracer
	if e.cause != nil && errors.As(e.cause, &st) {
		return st.StackTrace()
	}
	return nil
}

// Is 错误码相同即视为同一种错误
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && e.Code == t.Code
}

// Status 错误码不在 4xx/5xx 范围内时按 500 处理
func (e *Error) Status() int {
	if e.Code < 400 || e.Code > 599 {
		return 500
	}
	return int(e.Code)
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// WithOrigin 附加原始错误，没有堆栈的补上调用处的堆栈
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	var st stackTracer
	if !errors.As(err, &st) {
		err = pkgerrors.WithStack(err)
	}
	c := e.clone()
	c.cause = err
	c.Origin = fmt.Sprintf("%+v", err)
	return c
}

// WithTips 在提示后追加说明，release 模式下同样可见
func (e *Error) WithTips(details ...string) *Error {
	c := e.clone()
	c.Message = e.Message + ": " + strings.Join(details, " ")
	return c
}
