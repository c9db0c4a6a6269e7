package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, getLogLevel("debug"))
	require.Equal(t, slog.LevelWarn, getLogLevel("WARN"))
	require.Equal(t, slog.LevelError, getLogLevel(" error "))
	require.Equal(t, slog.LevelInfo, getLogLevel(""))
	require.Equal(t, slog.LevelInfo, getLogLevel("verbose"))
}

type failing struct{ slog.Handler }

func (failing) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestFanout(t *testing.T) {
	var info, warn bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	l := slog.New(h).With("module", "Participant")

	l.Info("新建报名")
	require.Contains(t, info.String(), "module=Participant")
	require.Empty(t, warn.String())

	l.Warn("绑定报名表单失败")
	require.Contains(t, warn.String(), "绑定报名表单失败")
	require.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestFanoutKeepsWritingWhenOneSinkFails(t *testing.T) {
	var out bytes.Buffer
	text := slog.NewTextHandler(&out, nil)
	h := fanout{failing{text}, text}

	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "msg", 0))
	require.Error(t, err)
	require.Contains(t, out.String(), "msg")
}

type fakeRequest map[string]string

func (r fakeRequest) ClientIP() string          { return r["ip"] }
func (r fakeRequest) GetHeader(k string) string { return r[k] }
func (r fakeRequest) FullPath() string          { return r["route"] }
func (r fakeRequest) Param(k string) string     { return r[k] }

func TestWithContext(t *testing.T) {
	var out bytes.Buffer
	base := slog.New(slog.NewTextHandler(&out, nil))

	WithContext(base, fakeRequest{
		"ip":    "10.0.0.1",
		"route": "/index/participant/:id",
		"id":    "p-1",
	}).Info("查询")

	s := out.String()
	require.Contains(t, s, "client_ip=10.0.0.1")
	require.Contains(t, s, "route=/index/participant/:id")
	require.Contains(t, s, "participant_id=p-1")
	require.NotContains(t, s, "x_forwarded_for")
}
