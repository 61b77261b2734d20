// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/scheduling-webhook-service/internal/domain"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
	"github.com/hirewire/scheduling-webhook-service/pkg/constants"
)

func TestRegisterCandidate(t *testing.T) {
	ctx := context.Background()

	t.Run("posts registration payload", func(t *testing.T) {
		var received domain.CandidatePortalRegistration
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/candidates", r.URL.Path)
			assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "key-1"})
		err := client.RegisterCandidate(ctx, domain.CandidatePortalRegistration{
			JobUID:            "job-1",
			JobTitle:          "Warehouse Picker",
			LocalID:           "talent-1",
			Email:             "mara@example.com",
			PreferredLanguage: "de",
			Step:              constants.StepCallScheduled,
		})
		require.NoError(t, err)
		assert.Equal(t, "job-1", received.JobUID)
		assert.Equal(t, constants.StepCallScheduled, received.Step)
	})

	t.Run("error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, APIKey: "key-1"})
		err := client.RegisterCandidate(ctx, domain.CandidatePortalRegistration{JobUID: "job-1"})
		require.Error(t, err)
		assert.Equal(t, errs.ErrorTypeInternal, errs.GetErrorType(err))
	})
}

func TestEnablePersonalityCheck(t *testing.T) {
	ctx := context.Background()

	var received personalityCheckRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/personality-checks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "key-1"})
	job := &models.Job{UID: "job-1", OwnerID: "owner-1", CompanyID: "company-1"}
	require.NoError(t, client.EnablePersonalityCheck(ctx, job, "talent-1"))
	assert.Equal(t, "job-1", received.JobUID)
	assert.Equal(t, "talent-1", received.TalentUID)
	assert.Equal(t, "owner-1", received.OwnerID)
}
