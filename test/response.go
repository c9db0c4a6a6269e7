package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"participant-registration/internal/global/response"

	"github.com/stretchr/testify/require"
)

// Redirected 断言 302 跳转并返回 Location
func Redirected(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	return w.Header().Get("Location")
}

// ErrorPage 断言渲染了错误页，状态码与错误码一致
func ErrorPage(t *testing.T, expected *response.Error, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, expected.Status(), w.Code)
	require.Contains(t, w.Body.String(), `class="status"`)
}

func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder) (body response.ResponseBody) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return
}

func NoError(t *testing.T, body response.ResponseBody) {
	t.Helper()
	require.Equal(t, int32(200), body.Code)
}
