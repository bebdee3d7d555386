package main

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/expense-api/internal/config"
	"github.com/baharkarakas/expense-api/internal/worker"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "default is memory", cfg: config.Config{}},
		{name: "memory", cfg: config.Config{StoreDriver: "memory"}},
		{name: "sqlite", cfg: config.Config{StoreDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "e.db")}},
		{name: "unknown", cfg: config.Config{StoreDriver: "mongo"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos, err := openStore(ctx, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer repos.Close()

			users, err := repos.Users.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	_, err := newRedis(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}

func TestShutdownKeepsPoolWhenRequestsInFlight(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
	})}
	go func() { _ = srv.Serve(ln) }()
	defer srv.Close()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			resp.Body.Close()
		}
	}()
	<-entered

	wp := worker.NewPool(1)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, shutdown(ctx, srv, wp), context.DeadlineExceeded)

	// the pool must still accept work after a timed-out shutdown
	assert.NoError(t, wp.Run(func() error { return nil }))

	close(release)
	wp.Stop()
}

func TestShutdownStopsPoolWhenIdle(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &http.Server{Handler: http.NotFoundHandler()}
	go func() { _ = srv.Serve(ln) }()

	wp := worker.NewPool(1)
	require.NoError(t, shutdown(context.Background(), srv, wp))
	assert.Panics(t, func() { wp.Submit(func() {}) })
}
