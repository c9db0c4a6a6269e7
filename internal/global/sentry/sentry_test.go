package sentry

import (
	"errors"
	"testing"

	"participant-registration/internal/global/response"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
)

func TestShouldReport(t *testing.T) {
	require.True(t, shouldReport(response.ErrDatabase.WithOrigin(errors.New("gone away"))))
	require.True(t, shouldReport(errors.New("plain")))
	require.False(t, shouldReport(response.ErrNotFound))
	require.False(t, shouldReport(response.ErrInvalidRequest.WithTips("High school")))
}

func TestScrubRequest(t *testing.T) {
	event := &sentry.Event{Request: &sentry.Request{
		URL:         "http://localhost/users/participant/create",
		Method:      "POST",
		Data:        "firstName=Jane&email=j%40x.com",
		QueryString: "a=b",
		Cookies:     "session=1",
	}}
	got := scrubRequest(event, nil)
	require.Empty(t, got.Request.Data)
	require.Empty(t, got.Request.QueryString)
	require.Empty(t, got.Request.Cookies)
	require.Equal(t, "POST", got.Request.Method)

	require.NotNil(t, scrubRequest(&sentry.Event{}, nil))
}
