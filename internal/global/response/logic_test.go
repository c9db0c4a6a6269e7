package response

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	require.Equal(t, 400, ErrInvalidRequest.Status())
	require.Equal(t, 404, ErrNotFound.Status())
	require.Equal(t, 500, ErrDatabase.Status())
	require.Equal(t, 500, newError(200, "ok").Status())
	require.Equal(t, 500, newError(10001, "biz").Status())
}

func TestWithOriginKeepsChain(t *testing.T) {
	cause := errors.New("connection reset")
	err := ErrDatabase.WithOrigin(cause)

	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, ErrDatabase)
	require.NotErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Origin, "connection reset")
	require.NotNil(t, err.StackTrace())
	// 原错误码对象不被修改
	require.Empty(t, ErrDatabase.Origin)
	require.Same(t, ErrDatabase, ErrDatabase.WithOrigin(nil))
}

func TestWithTips(t *testing.T) {
	cause := errors.New("missing")
	err := ErrInvalidRequest.WithOrigin(cause).WithTips("High school", "required")
	require.Equal(t, "Invalid request: High school required", err.Message)
	require.Equal(t, int32(400), err.GetCode())
	require.ErrorIs(t, err, cause)
	require.Equal(t, "Invalid request", ErrInvalidRequest.Message)
}

func TestAsError(t *testing.T) {
	require.Same(t, ErrNotFound, AsError(ErrNotFound))

	e := AsError(errors.New("plain"))
	require.Equal(t, ErrServerInternal.Code, e.Code)
	require.Contains(t, e.Origin, "plain")
}
