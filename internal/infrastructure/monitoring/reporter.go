// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

// Package monitoring reports recovered errors and anomalies to Sentry.
package monitoring

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/hirewire/scheduling-webhook-service/internal/domain"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/internal/logging"
)

// FlushTimeout bounds how long shutdown waits for buffered events.
const FlushTimeout = 2 * time.Second

// SentryReporter forwards messages and errors to Sentry. Capture calls never
// fail the caller; a misconfigured DSN degrades to log-only reporting.
type SentryReporter struct{}

// Ensure that SentryReporter implements the error reporter port
var _ domain.ErrorReporter = (*SentryReporter)(nil)

// NewSentryReporter initializes the global Sentry client. An empty DSN
// disables transport but keeps the reporter usable.
func NewSentryReporter(dsn, environment string) (*SentryReporter, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return nil, errs.NewInternalError("failed to initialize Sentry", err)
	}
	return &SentryReporter{}, nil
}

// CaptureMessage reports a free-text anomaly.
func (r *SentryReporter) CaptureMessage(ctx context.Context, message string) {
	slog.WarnContext(ctx, "reporting anomaly", "message", message)
	sentry.CaptureMessage(message)
}

// CaptureError reports a recovered error.
func (r *SentryReporter) CaptureError(ctx context.Context, err error) {
	slog.ErrorContext(ctx, "reporting recovered error", logging.ErrKey, err)
	sentry.CaptureException(err)
}

// Flush drains buffered events. Call during graceful shutdown.
func (r *SentryReporter) Flush() {
	sentry.Flush(FlushTimeout)
}
