package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestClient_Hit(t *testing.T) {
	var got hitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/hit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, newTestLogger(t))
	c.Hit(context.Background(), "/events/e1", "10.0.0.1")

	assert.Equal(t, appName, got.App)
	assert.Equal(t, "/events/e1", got.URI)
	assert.Equal(t, "10.0.0.1", got.IP)
	assert.NotEmpty(t, got.Timestamp)
}

func TestClient_Views(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("unique"))
		require.Equal(t, []string{"/events/e1", "/events/e2"}, r.URL.Query()["uris"])

		json.NewEncoder(w).Encode([]viewStat{
			{App: appName, URI: "/events/e1", Hits: 12},
			{App: appName, URI: "/events/e2", Hits: 3},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second, newTestLogger(t))
	views, err := c.Views(context.Background(), []string{"e1", "e2"})

	require.NoError(t, err)
	assert.Equal(t, int64(12), views["e1"])
	assert.Equal(t, int64(3), views["e2"])
}

func TestClient_Disabled(t *testing.T) {
	c := New("", time.Second, newTestLogger(t))

	c.Hit(context.Background(), "/events/e1", "10.0.0.1") // no-op

	views, err := c.Views(context.Background(), []string{"e1"})
	require.NoError(t, err)
	assert.Empty(t, views)
}
