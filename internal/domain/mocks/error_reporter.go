// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockErrorReporter implements ErrorReporter for testing
type MockErrorReporter struct {
	mock.Mock
}

func (m *MockErrorReporter) CaptureMessage(ctx context.Context, message string) {
	m.Called(ctx, message)
}

func (m *MockErrorReporter) CaptureError(ctx context.Context, err error) {
	m.Called(ctx, err)
}
