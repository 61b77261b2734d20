// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// MockAnalyticsTracker implements AnalyticsTracker for testing
type MockAnalyticsTracker struct {
	mock.Mock
}

func (m *MockAnalyticsTracker) TrackScheduledCall(ctx context.Context, job *models.Job, talentUID string, action models.Action, appointmentDate string) error {
	args := m.Called(ctx, job, talentUID, action, appointmentDate)
	return args.Error(0)
}
