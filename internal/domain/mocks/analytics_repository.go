// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// MockAnalyticsRepository implements AnalyticsRepository for testing
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) CreateEvent(ctx context.Context, event *models.AnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
