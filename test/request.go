package test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"participant-registration/internal/global/logger"
	"participant-registration/internal/global/middleware"
	"participant-registration/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// NewRouter 与线上相同的模板、错误页和 panic 恢复，register 注册被测路由
func NewRouter(t *testing.T, register func(r *gin.RouterGroup)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	require.NoError(t, web.Load(r))
	r.Use(middleware.ErrorPage(logger.New("Test")))
	r.Use(middleware.Recovery())
	register(r.Group("/"))
	return r
}

func Get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// PostForm 以 application/x-www-form-urlencoded 提交表单
func PostForm(t *testing.T, h http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(w, req)
	return w
}
