// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// MockContactRepository implements ContactRepository for testing
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) GetContact(ctx context.Context, jobUID, talentUID string) (*models.Contact, error) {
	args := m.Called(ctx, jobUID, talentUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockContactRepository) GetContactWithRevision(ctx context.Context, jobUID, talentUID string) (*models.Contact, uint64, error) {
	args := m.Called(ctx, jobUID, talentUID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.Contact), args.Get(1).(uint64), args.Error(2)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact *models.Contact, revision uint64) error {
	args := m.Called(ctx, contact, revision)
	return args.Error(0)
}
