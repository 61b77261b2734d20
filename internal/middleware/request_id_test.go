// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/scheduling-webhook-service/pkg/constants"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates a request id when missing", func(t *testing.T) {
		var seen string
		handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, ok := r.Context().Value(constants.RequestIDContextID).(string)
			require.True(t, ok)
			seen = requestID
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/webhook/hirewire-de", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(constants.RequestIDHeader))
	})

	t.Run("keeps the caller's request id", func(t *testing.T) {
		handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID, _ := r.Context().Value(constants.RequestIDContextID).(string)
			assert.Equal(t, "caller-id", requestID)
		}))

		req := httptest.NewRequest(http.MethodPost, "/webhook/hirewire-de", nil)
		req.Header.Set(constants.RequestIDHeader, "caller-id")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "caller-id", recorder.Header().Get(constants.RequestIDHeader))
	})
}
