// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// MockTalentRepository implements TalentRepository for testing
type MockTalentRepository struct {
	mock.Mock
}

func (m *MockTalentRepository) GetTalent(ctx context.Context, talentUID string) (*models.Talent, error) {
	args := m.Called(ctx, talentUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Talent), args.Error(1)
}

func (m *MockTalentRepository) GetTalentWithRevision(ctx context.Context, talentUID string) (*models.Talent, uint64, error) {
	args := m.Called(ctx, talentUID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(uint64), args.Error(2)
	}
	return args.Get(0).(*models.Talent), args.Get(1).(uint64), args.Error(2)
}

func (m *MockTalentRepository) UpdateTalent(ctx context.Context, talent *models.Talent, revision uint64) error {
	args := m.Called(ctx, talent, revision)
	return args.Error(0)
}
