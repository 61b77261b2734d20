// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// MockAppointmentFetcher implements AppointmentFetcher for testing
type MockAppointmentFetcher struct {
	mock.Mock
}

func (m *MockAppointmentFetcher) GetAppointment(ctx context.Context, accountName string, appointmentID int64) (*models.Appointment, error) {
	args := m.Called(ctx, accountName, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}
