// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

// Package segment emits analytics tracking calls for pipeline events.
package segment

import (
	"context"
	"log/slog"

	analytics "gopkg.in/segmentio/analytics-go.v3"

	"github.com/hirewire/scheduling-webhook-service/internal/domain"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
	"github.com/hirewire/scheduling-webhook-service/internal/logging"
)

// EventScheduledCall is the event name emitted for every processed
// appointment action.
const EventScheduledCall = "Scheduled Call"

// Tracker wraps the analytics client behind the tracker port.
type Tracker struct {
	client analytics.Client
}

// Ensure that Tracker implements the analytics tracker port
var _ domain.AnalyticsTracker = (*Tracker)(nil)

// NewTracker creates a tracker that enqueues events on the given analytics
// client. The client batches and flushes in the background.
func NewTracker(client analytics.Client) *Tracker {
	return &Tracker{client: client}
}

// NewTrackerWithWriteKey creates a tracker with a default analytics client.
func NewTrackerWithWriteKey(writeKey string) (*Tracker, error) {
	client, err := analytics.NewWithConfig(writeKey, analytics.Config{})
	if err != nil {
		return nil, errs.NewInternalError("failed to create analytics client", err)
	}
	return NewTracker(client), nil
}

// TrackScheduledCall reports an appointment action for a candidate on a job.
func (t *Tracker) TrackScheduledCall(ctx context.Context, job *models.Job, talentUID string, action models.Action, appointmentDate string) error {
	err := t.client.Enqueue(analytics.Track{
		UserId: talentUID,
		Event:  EventScheduledCall,
		Properties: analytics.NewProperties().
			Set("job_id", job.UID).
			Set("job_title", job.OpeningTitle).
			Set("company_id", job.CompanyID).
			Set("owner_id", job.OwnerID).
			Set("action", action.String()).
			Set("appointment_date", appointmentDate),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to enqueue analytics event",
			"talent_uid", talentUID,
			"job_uid", job.UID,
			"action", action,
			logging.ErrKey, err)
		return errs.NewInternalError("failed to enqueue analytics event", err)
	}

	slog.DebugContext(ctx, "analytics event enqueued",
		"event", EventScheduledCall,
		"talent_uid", talentUID,
		"job_uid", job.UID,
		"action", action,
	)
	return nil
}

// Close flushes pending events. Call during graceful shutdown.
func (t *Tracker) Close() error {
	return t.client.Close()
}
