// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// NatsTalentRepository is the NATS KV store repository for talent records.
type NatsTalentRepository struct {
	*NatsBaseRepository[models.Talent]
}

// NewNatsTalentRepository creates a new NATS KV store repository for talent records.
func NewNatsTalentRepository(talent INatsKeyValue) *NatsTalentRepository {
	return &NatsTalentRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Talent](talent, "talent"),
	}
}

// GetTalent retrieves a talent record by its UID.
func (r *NatsTalentRepository) GetTalent(ctx context.Context, talentUID string) (*models.Talent, error) {
	return r.Get(ctx, talentUID)
}

// GetTalentWithRevision retrieves a talent record with its KV revision.
func (r *NatsTalentRepository) GetTalentWithRevision(ctx context.Context, talentUID string) (*models.Talent, uint64, error) {
	return r.GetWithRevision(ctx, talentUID)
}

// UpdateTalent persists an enriched talent record with optimistic concurrency control.
func (r *NatsTalentRepository) UpdateTalent(ctx context.Context, talent *models.Talent, revision uint64) error {
	return r.Update(ctx, talent.UID, talent, revision)
}
