// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

// Package handlers contains the HTTP handlers of the webhook service.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hirewire/scheduling-webhook-service/internal/domain"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
	"github.com/hirewire/scheduling-webhook-service/internal/logging"
	"github.com/hirewire/scheduling-webhook-service/internal/service"
)

// WebhookHandler handles appointment webhook deliveries from the calendaring
// service.
type WebhookHandler struct {
	webhookService *service.WebhookService
	errorReporter  domain.ErrorReporter
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookService *service.WebhookService, errorReporter domain.ErrorReporter) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		errorReporter:  errorReporter,
	}
}

// HandleWebhook receives one form-encoded webhook delivery. The calendaring
// service retries deliveries that do not get a 2xx back, so every outcome is
// acknowledged with 200 and an empty JSON object; processing errors are
// logged and reported instead of surfaced.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := h.parsePayload(r)
	if err != nil {
		slog.ErrorContext(ctx, "invalid webhook payload", logging.ErrKey, err)
		h.errorReporter.CaptureError(ctx, err)
		writeEmptyJSON(ctx, w)
		return
	}

	slog.DebugContext(ctx, "received appointment webhook",
		"appointment_id", payload.ID,
		"action", payload.Action,
		"account_name", payload.AccountName,
	)

	if err := h.webhookService.ProcessWebhook(ctx, payload); err != nil {
		slog.ErrorContext(ctx, "error processing webhook", logging.ErrKey, err)
		h.errorReporter.CaptureError(ctx, err)
	}

	writeEmptyJSON(ctx, w)
}

// parsePayload decodes the form-encoded webhook body.
func (h *WebhookHandler) parsePayload(r *http.Request) (*models.WebhookPayload, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errs.NewValidationError("failed to parse webhook form body", err)
	}

	appointmentID, err := strconv.ParseInt(r.PostFormValue("id"), 10, 64)
	if err != nil {
		return nil, errs.NewValidationError("webhook field 'id' is not a valid appointment id", err)
	}

	action := r.PostFormValue("action")
	if action == "" {
		return nil, errs.NewValidationError("webhook field 'action' is required")
	}

	return &models.WebhookPayload{
		ID:          appointmentID,
		Action:      action,
		AccountName: chi.URLParam(r, "account_name"),
	}, nil
}

// writeEmptyJSON acknowledges a webhook delivery with 200 and {}.
func writeEmptyJSON(ctx context.Context, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{}); err != nil {
		slog.ErrorContext(ctx, "failed to write webhook response", logging.ErrKey, err)
	}
}
