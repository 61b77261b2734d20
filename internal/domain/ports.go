// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"context"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
)

// AppointmentFetcher fetches full appointment records from the calendaring
// service. Credentials are resolved per account name.
type AppointmentFetcher interface {
	GetAppointment(ctx context.Context, accountName string, appointmentID int64) (*models.Appointment, error)
}

// TicketClient is the narrow surface of the support-ticket system used by
// this service: read a ticket, persist in-memory mutations with one update
// call, and resolve a ticket with an optional reason.
type TicketClient interface {
	GetTicket(ctx context.Context, ticketID int64) (*models.Ticket, error)
	UpdateTicket(ctx context.Context, ticket *models.Ticket) error
	ResolveTicket(ctx context.Context, ticket *models.Ticket, language, reason string) error
}

// CandidatePortalRegistration is the flat field set sent to the candidate
// portal when a call is scheduled.
type CandidatePortalRegistration struct {
	JobUID            string `json:"job_id"`
	JobTitle          string `json:"job_title"`
	OwnerID           string `json:"owner_id"`
	CompanyID         string `json:"company_id"`
	Email             string `json:"email"`
	LocalID           string `json:"local_id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	PreferredLanguage string `json:"preferred_language"`
	JobApproach       string `json:"job_approach"`
	Step              string `json:"step"`
}

// CandidatePortal registers candidates in the external onboarding portal and
// toggles their personality assessment.
type CandidatePortal interface {
	RegisterCandidate(ctx context.Context, registration CandidatePortalRegistration) error
	EnablePersonalityCheck(ctx context.Context, job *models.Job, talentUID string) error
}

// AnalyticsTracker emits event-tracking calls to the analytics pipeline.
type AnalyticsTracker interface {
	TrackScheduledCall(ctx context.Context, job *models.Job, talentUID string, action models.Action, appointmentDate string) error
}

// ErrorReporter captures free-text messages and errors for the monitoring
// collaborator. Implementations must never fail the request.
type ErrorReporter interface {
	CaptureMessage(ctx context.Context, message string)
	CaptureError(ctx context.Context, err error)
}
