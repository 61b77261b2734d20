// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// NatsContactRepository is the NATS KV store repository for contact records.
// Contacts are keyed by job and talent UID since they join the two entities.
type NatsContactRepository struct {
	*NatsBaseRepository[models.Contact]
}

// NewNatsContactRepository creates a new NATS KV store repository for contacts.
func NewNatsContactRepository(contacts INatsKeyValue) *NatsContactRepository {
	return &NatsContactRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Contact](contacts, "contact"),
	}
}

func contactKey(jobUID, talentUID string) string {
	return fmt.Sprintf("%s/%s", jobUID, talentUID)
}

// GetContact retrieves the job's contact record for a talent.
func (r *NatsContactRepository) GetContact(ctx context.Context, jobUID, talentUID string) (*models.Contact, error) {
	return r.Get(ctx, contactKey(jobUID, talentUID))
}

// GetContactWithRevision retrieves a contact record with its KV revision.
func (r *NatsContactRepository) GetContactWithRevision(ctx context.Context, jobUID, talentUID string) (*models.Contact, uint64, error) {
	return r.GetWithRevision(ctx, contactKey(jobUID, talentUID))
}

// UpdateContact persists a contact record with optimistic concurrency control.
func (r *NatsContactRepository) UpdateContact(ctx context.Context, contact *models.Contact, revision uint64) error {
	return r.Update(ctx, contactKey(contact.JobUID, contact.TalentUID), contact, revision)
}
