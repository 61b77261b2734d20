// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/mocks"
	"github.com/hirewire/scheduling-webhook-service/internal/service"
)

func newTestHandler() (*WebhookHandler, *mocks.MockAppointmentFetcher, *mocks.MockErrorReporter) {
	fetcher := &mocks.MockAppointmentFetcher{}
	reporter := &mocks.MockErrorReporter{}
	svc := service.NewWebhookService(
		fetcher,
		&mocks.MockJobRepository{},
		&mocks.MockTalentRepository{},
		&mocks.MockContactRepository{},
		&mocks.MockApplicationRepository{},
		&mocks.MockAnalyticsRepository{},
		&mocks.MockTicketClient{},
		&mocks.MockCandidatePortal{},
		&mocks.MockAnalyticsTracker{},
		reporter,
		service.ServiceConfig{Namespace: "qa", ProductionNamespace: "production"},
	)
	return NewWebhookHandler(svc, reporter), fetcher, reporter
}

func postWebhook(handler *WebhookHandler, accountName string, form url.Values) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Post("/webhook/{account_name}", handler.HandleWebhook)

	req := httptest.NewRequest(http.MethodPost, "/webhook/"+accountName, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandleWebhook(t *testing.T) {
	t.Run("acknowledges unhandled actions without side effects", func(t *testing.T) {
		handler, fetcher, _ := newTestHandler()

		recorder := postWebhook(handler, "hirewire-de", url.Values{
			"id":     {"12345"},
			"action": {"appointment.changed"},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{}`, recorder.Body.String())
		fetcher.AssertNotCalled(t, "GetAppointment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("passes account name and appointment id to the service", func(t *testing.T) {
		handler, fetcher, reporter := newTestHandler()

		fetcher.On("GetAppointment", mock.Anything, "hirewire-de", int64(12345)).
			Return(nil, errs.NewNotFoundError("appointment not found"))
		reporter.On("CaptureError", mock.Anything, mock.Anything).Return()

		recorder := postWebhook(handler, "hirewire-de", url.Values{
			"id":     {"12345"},
			"action": {"appointment.scheduled"},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		fetcher.AssertExpectations(t)
	})

	t.Run("processing errors are reported but still acknowledged", func(t *testing.T) {
		handler, fetcher, reporter := newTestHandler()

		fetcher.On("GetAppointment", mock.Anything, "hirewire-de", int64(12345)).
			Return(nil, errs.NewUnavailableError("failed to reach Acuity API"))
		reporter.On("CaptureError", mock.Anything, mock.Anything).Return()

		recorder := postWebhook(handler, "hirewire-de", url.Values{
			"id":     {"12345"},
			"action": {"appointment.scheduled"},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{}`, recorder.Body.String())
		reporter.AssertExpectations(t)
	})

	t.Run("invalid appointment id is reported and acknowledged", func(t *testing.T) {
		handler, fetcher, reporter := newTestHandler()
		reporter.On("CaptureError", mock.Anything, mock.Anything).Return()

		recorder := postWebhook(handler, "hirewire-de", url.Values{
			"id":     {"not-a-number"},
			"action": {"appointment.scheduled"},
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{}`, recorder.Body.String())
		fetcher.AssertNotCalled(t, "GetAppointment", mock.Anything, mock.Anything, mock.Anything)
		reporter.AssertExpectations(t)
	})

	t.Run("missing action is reported and acknowledged", func(t *testing.T) {
		handler, _, reporter := newTestHandler()
		reporter.On("CaptureError", mock.Anything, mock.Anything).Return()

		recorder := postWebhook(handler, "hirewire-de", url.Values{
			"id": {"12345"},
		})

		require.Equal(t, http.StatusOK, recorder.Code)
		reporter.AssertExpectations(t)
	})
}
