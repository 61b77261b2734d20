// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// MockTicketClient implements TicketClient for testing
type MockTicketClient struct {
	mock.Mock
}

func (m *MockTicketClient) GetTicket(ctx context.Context, ticketID int64) (*models.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *MockTicketClient) UpdateTicket(ctx context.Context, ticket *models.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketClient) ResolveTicket(ctx context.Context, ticket *models.Ticket, language, reason string) error {
	args := m.Called(ctx, ticket, language, reason)
	return args.Error(0)
}
