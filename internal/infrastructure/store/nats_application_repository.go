// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// NatsApplicationRepository is the NATS KV store repository for in-progress
// application records.
type NatsApplicationRepository struct {
	*NatsBaseRepository[models.Application]
}

// NewNatsApplicationRepository creates a new NATS KV store repository for applications.
func NewNatsApplicationRepository(applications INatsKeyValue) *NatsApplicationRepository {
	return &NatsApplicationRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Application](applications, "application"),
	}
}

func applicationKey(talentUID, jobUID string) string {
	return fmt.Sprintf("%s/%s", talentUID, jobUID)
}

// DeleteApplication removes the talent's in-progress application for a job.
// Returns a not-found error when no application exists.
func (r *NatsApplicationRepository) DeleteApplication(ctx context.Context, talentUID, jobUID string) error {
	return r.DeleteWithoutRevision(ctx, applicationKey(talentUID, jobUID))
}
