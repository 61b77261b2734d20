// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// NatsAnalyticsRepository is the NATS KV store repository for write-once
// analytics events.
type NatsAnalyticsRepository struct {
	*NatsBaseRepository[models.AnalyticsEvent]
}

// NewNatsAnalyticsRepository creates a new NATS KV store repository for analytics events.
func NewNatsAnalyticsRepository(events INatsKeyValue) *NatsAnalyticsRepository {
	return &NatsAnalyticsRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.AnalyticsEvent](events, "analytics event"),
	}
}

// CreateEvent persists a new analytics event under its UID.
func (r *NatsAnalyticsRepository) CreateEvent(ctx context.Context, event *models.AnalyticsEvent) error {
	return r.Create(ctx, event.UID, event)
}
