// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// JobRepository defines the interface for job lookups. Jobs are owned by the
// pipeline service; this service never creates or mutates them.
type JobRepository interface {
	GetJob(ctx context.Context, jobUID string) (*models.Job, error)
	// JobExistsInNamespace probes another environment's store for the job.
	// Used by the unknown-job policy to detect cross-environment webhook leakage.
	JobExistsInNamespace(ctx context.Context, namespace, jobUID string) (bool, error)
}

// TalentRepository defines the interface for candidate storage operations.
type TalentRepository interface {
	GetTalent(ctx context.Context, talentUID string) (*models.Talent, error)
	GetTalentWithRevision(ctx context.Context, talentUID string) (*models.Talent, uint64, error)
	UpdateTalent(ctx context.Context, talent *models.Talent, revision uint64) error
}

// ContactRepository defines the interface for job-scoped contact records.
type ContactRepository interface {
	GetContact(ctx context.Context, jobUID, talentUID string) (*models.Contact, error)
	GetContactWithRevision(ctx context.Context, jobUID, talentUID string) (*models.Contact, uint64, error)
	UpdateContact(ctx context.Context, contact *models.Contact, revision uint64) error
}

// ApplicationRepository defines the interface for in-progress application records.
type ApplicationRepository interface {
	DeleteApplication(ctx context.Context, talentUID, jobUID string) error
}

// AnalyticsRepository defines the interface for write-once analytics events.
type AnalyticsRepository interface {
	CreateEvent(ctx context.Context, event *models.AnalyticsEvent) error
}
