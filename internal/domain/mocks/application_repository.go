// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockApplicationRepository implements ApplicationRepository for testing
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) DeleteApplication(ctx context.Context, talentUID, jobUID string) error {
	args := m.Called(ctx, talentUID, jobUID)
	return args.Error(0)
}
