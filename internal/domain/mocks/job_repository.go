// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// MockJobRepository implements JobRepository for testing
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) GetJob(ctx context.Context, jobUID string) (*models.Job, error) {
	args := m.Called(ctx, jobUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) JobExistsInNamespace(ctx context.Context, namespace, jobUID string) (bool, error) {
	args := m.Called(ctx, namespace, jobUID)
	return args.Bool(0), args.Error(1)
}
