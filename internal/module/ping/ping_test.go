package ping

import (
	"net/http"
	"testing"

	"participant-registration/test"

	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	test.SetupDB(t)
	m := &ModulePing{}
	m.Init()
	r := test.NewRouter(t, m.InitRouter)

	w := test.Get(t, r, "/ping")
	require.Equal(t, http.StatusOK, w.Code)
	body := test.DecodeJSON(t, w)
	test.NoError(t, body)
	require.Equal(t, map[string]any{"message": "pong", "version": version}, body.Data)
}
