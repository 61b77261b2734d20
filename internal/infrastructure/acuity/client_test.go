// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package acuity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Config{
		Accounts: map[string]Credentials{
			"hirewire-de": {UserID: "user-1", APIKey: "key-1"},
		},
		BaseURL: serverURL,
	})
}

func TestGetAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes appointment with forms", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/appointments/12345", r.URL.Path)
			username, password, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "user-1", username)
			assert.Equal(t, "key-1", password)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": 12345,
				"datetime": "2026-02-10T14:30:00+01:00",
				"timezone": "Europe/Berlin",
				"calendar": "Recruiter Calls",
				"duration": "30",
				"firstName": "Mara",
				"lastName": "Weber",
				"email": "mara@example.com",
				"phone": "+4915112345678",
				"forms": [
					{
						"name": "CandidateID",
						"values": [
							{"name": "JobId", "value": "job-1"},
							{"name": "CandidateId", "value": "talent-1"}
						]
					}
				]
			}`))
		}))
		defer server.Close()

		appointment, err := newTestClient(server.URL).GetAppointment(ctx, "hirewire-de", 12345)
		require.NoError(t, err)
		assert.Equal(t, int64(12345), appointment.ID)
		assert.Equal(t, "Mara", appointment.FirstName)

		jobUID, err := appointment.JobUID()
		require.NoError(t, err)
		assert.Equal(t, "job-1", jobUID)
		assert.Equal(t, "talent-1", appointment.TalentUID())
	})

	t.Run("unknown account name", func(t *testing.T) {
		appointment, err := newTestClient("http://localhost").GetAppointment(ctx, "unknown-account", 12345)
		assert.Nil(t, appointment)
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeValidation, errs.GetErrorType(err))
	})

	t.Run("not found response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status_code": 404, "error": "not_found", "message": "Appointment not found"}`))
		}))
		defer server.Close()

		appointment, err := newTestClient(server.URL).GetAppointment(ctx, "hirewire-de", 99)
		assert.Nil(t, appointment)
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeNotFound, errs.GetErrorType(err))
	})

	t.Run("server error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message": "something broke", "error": "server_error"}`))
		}))
		defer server.Close()

		appointment, err := newTestClient(server.URL).GetAppointment(ctx, "hirewire-de", 12345)
		assert.Nil(t, appointment)
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeInternal, errs.GetErrorType(err))
		assert.Contains(t, err.Error(), "something broke")
	})
}
