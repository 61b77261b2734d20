// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// NatsJobRepository is the NATS KV store repository for jobs. It reads the
// current namespace's bucket and can probe the buckets of other namespaces
// for the cross-environment unknown-job policy.
type NatsJobRepository struct {
	*NatsBaseRepository[models.Job]
	otherNamespaces map[string]*NatsBaseRepository[models.Job]
}

// NewNatsJobRepository creates a new NATS KV store repository for jobs.
// otherNamespaces maps a namespace name to that namespace's jobs bucket.
func NewNatsJobRepository(jobs INatsKeyValue, otherNamespaces map[string]INatsKeyValue) *NatsJobRepository {
	others := make(map[string]*NatsBaseRepository[models.Job], len(otherNamespaces))
	for namespace, kv := range otherNamespaces {
		others[namespace] = NewNatsBaseRepository[models.Job](kv, "job")
	}
	return &NatsJobRepository{
		NatsBaseRepository: NewNatsBaseRepository[models.Job](jobs, "job"),
		otherNamespaces:    others,
	}
}

// GetJob retrieves a job from the current namespace.
func (r *NatsJobRepository) GetJob(ctx context.Context, jobUID string) (*models.Job, error) {
	return r.Get(ctx, jobUID)
}

// JobExistsInNamespace probes another environment's jobs bucket.
func (r *NatsJobRepository) JobExistsInNamespace(ctx context.Context, namespace, jobUID string) (bool, error) {
	repo, ok := r.otherNamespaces[namespace]
	if !ok {
		return false, errs.NewValidationError(fmt.Sprintf("unknown namespace %q", namespace))
	}
	return repo.Exists(ctx, jobUID)
}
