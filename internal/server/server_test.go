// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-blog/internal/config"
	"github.com/MKhiriev/starwars-blog/internal/handler"
	myHTTP "github.com/MKhiriev/starwars-blog/internal/handler/http"
	"github.com/MKhiriev/starwars-blog/internal/logger"
	"github.com/MKhiriev/starwars-blog/internal/service"
)

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}
}

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":3000"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}

	s, err := NewServer(newTestHandlers(), cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server).httpServer.server
	assert.Equal(t, "127.0.0.1:0", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.WriteTimeout)
}

func TestRun_ServesUntilContextCancelled(t *testing.T) {
	addr := freeAddress(t)
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/no-such-route")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: busy.Addr().String(), RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.(*server).run(context.Background()))
}
