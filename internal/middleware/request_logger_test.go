// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogs swaps the default logger for one writing into the returned
// buffer and restores it when the test finishes.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return &buf
}

func TestRequestLoggerMiddleware(t *testing.T) {
	t.Run("logs request and response with captured status", func(t *testing.T) {
		buf := captureLogs(t)

		handler := RequestLoggerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/webhook/hirewire-de", nil))

		logged := buf.String()
		require.NotEmpty(t, logged)
		assert.Contains(t, logged, "HTTP request")
		assert.Contains(t, logged, "HTTP response")
		assert.Contains(t, logged, `"status":418`)
	})

	t.Run("suppresses health check endpoints", func(t *testing.T) {
		buf := captureLogs(t)

		handler := RequestLoggerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for _, path := range []string{"/livez", "/readyz"} {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, recorder.Code)
		}

		assert.Empty(t, buf.String())
	})
}
