// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/scheduling-webhook-service/internal/domain"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// MockCandidatePortal implements CandidatePortal for testing
type MockCandidatePortal struct {
	mock.Mock
}

func (m *MockCandidatePortal) RegisterCandidate(ctx context.Context, registration domain.CandidatePortalRegistration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockCandidatePortal) EnablePersonalityCheck(ctx context.Context, job *models.Job, talentUID string) error {
	args := m.Called(ctx, job, talentUID)
	return args.Error(0)
}
