// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

// Package service contains the webhook processing orchestration.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirewire/scheduling-webhook-service/internal/domain"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/internal/domain/models"
	"github.com/hirewire/scheduling-webhook-service/internal/logging"
	"github.com/hirewire/scheduling-webhook-service/pkg/constants"
	"github.com/hirewire/scheduling-webhook-service/pkg/utils"
)

// ServiceConfig holds the environment namespace configuration the unknown-job
// policy depends on.
type ServiceConfig struct {
	// Namespace this instance runs in
	Namespace string
	// ProductionNamespace is the namespace of the production environment
	ProductionNamespace string
	// QANamespace and DevNamespace are probed for cross-environment webhooks
	QANamespace string
	DevNamespace string
}

// WebhookService reconciles appointment webhook deliveries with the hiring
// pipeline: talent enrichment, portal registration, contact bookkeeping,
// ticket annotation, and analytics.
type WebhookService struct {
	AppointmentFetcher    domain.AppointmentFetcher
	JobRepository         domain.JobRepository
	TalentRepository      domain.TalentRepository
	ContactRepository     domain.ContactRepository
	ApplicationRepository domain.ApplicationRepository
	AnalyticsRepository   domain.AnalyticsRepository
	TicketClient          domain.TicketClient
	CandidatePortal       domain.CandidatePortal
	AnalyticsTracker      domain.AnalyticsTracker
	ErrorReporter         domain.ErrorReporter
	Config                ServiceConfig
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(
	appointmentFetcher domain.AppointmentFetcher,
	jobRepository domain.JobRepository,
	talentRepository domain.TalentRepository,
	contactRepository domain.ContactRepository,
	applicationRepository domain.ApplicationRepository,
	analyticsRepository domain.AnalyticsRepository,
	ticketClient domain.TicketClient,
	candidatePortal domain.CandidatePortal,
	analyticsTracker domain.AnalyticsTracker,
	errorReporter domain.ErrorReporter,
	config ServiceConfig,
) *WebhookService {
	return &WebhookService{
		AppointmentFetcher:    appointmentFetcher,
		JobRepository:         jobRepository,
		TalentRepository:      talentRepository,
		ContactRepository:     contactRepository,
		ApplicationRepository: applicationRepository,
		AnalyticsRepository:   analyticsRepository,
		TicketClient:          ticketClient,
		CandidatePortal:       candidatePortal,
		AnalyticsTracker:      analyticsTracker,
		ErrorReporter:         errorReporter,
		Config:                config,
	}
}

// ServiceReady checks if the service is ready for use.
func (s *WebhookService) ServiceReady() bool {
	return s.AppointmentFetcher != nil &&
		s.JobRepository != nil &&
		s.TalentRepository != nil &&
		s.ContactRepository != nil &&
		s.ApplicationRepository != nil &&
		s.AnalyticsRepository != nil &&
		s.TicketClient != nil &&
		s.CandidatePortal != nil &&
		s.AnalyticsTracker != nil &&
		s.ErrorReporter != nil
}

// ProcessWebhook handles one appointment webhook delivery. A nil return means
// the delivery was either fully processed or dropped by policy; a non-nil
// error means processing stopped and the error should be reported, but the
// delivery is still acknowledged to the calendaring service.
func (s *WebhookService) ProcessWebhook(ctx context.Context, payload *models.WebhookPayload) error {
	if !s.ServiceReady() {
		slog.ErrorContext(ctx, "service not initialized", logging.PriorityCritical())
		return errs.NewUnavailableError("webhook service is not available")
	}

	action := models.NormalizeAction(payload.Action)
	if !action.IsProcessed() {
		slog.DebugContext(ctx, "ignoring unhandled action", "action", payload.Action)
		return nil
	}

	ctx = logging.AppendCtx(ctx, slog.Int64("appointment_id", payload.ID))
	ctx = logging.AppendCtx(ctx, slog.String("action", action.String()))
	ctx = logging.AppendCtx(ctx, slog.String("account_name", payload.AccountName))

	appointment, err := s.AppointmentFetcher.GetAppointment(ctx, payload.AccountName, payload.ID)
	if err != nil {
		return err
	}

	jobUID, err := appointment.JobUID()
	if err != nil {
		return err
	}
	talentUID := appointment.TalentUID()

	ctx = logging.AppendCtx(ctx, slog.String("job_uid", jobUID))
	ctx = logging.AppendCtx(ctx, slog.String("talent_uid", talentUID))

	job, proceed, err := s.lookupJob(ctx, action, jobUID, appointment)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if action == models.ActionScheduled {
		if err := s.processScheduled(ctx, job, talentUID, appointment); err != nil {
			return err
		}
	}

	// Best-effort bookkeeping: a failed contact update or ticket annotation
	// must not prevent the analytics tracking below.
	if err := s.recordAppointmentOnContact(ctx, action, job.UID, talentUID, appointment); err != nil {
		s.ErrorReporter.CaptureError(ctx, err)
	}
	if err := s.annotateTicket(ctx, action, job, talentUID, appointment); err != nil {
		s.ErrorReporter.CaptureError(ctx, err)
	}

	appointmentDate, err := appointment.FormattedDate()
	if err != nil {
		return err
	}

	return s.AnalyticsTracker.TrackScheduledCall(ctx, job, talentUID, action, appointmentDate)
}

// lookupJob loads the job and applies the unknown-job policy. The second
// return value reports whether processing should continue.
func (s *WebhookService) lookupJob(ctx context.Context, action models.Action, jobUID string, appointment *models.Appointment) (*models.Job, bool, error) {
	job, err := s.JobRepository.GetJob(ctx, jobUID)
	if err == nil {
		return job, true, nil
	}
	if errs.GetErrorType(err) != errs.ErrorTypeNotFound {
		return nil, false, err
	}

	// Unknown jobs in non-production environments are routine: most webhook
	// deliveries belong to production jobs.
	if s.Config.Namespace != s.Config.ProductionNamespace {
		slog.DebugContext(ctx, "unknown job outside production, dropping delivery")
		return nil, false, nil
	}

	// In production, a job living in the QA or dev environment means the
	// webhook leaked across environments. Take no action for those.
	for _, namespace := range []string{s.Config.QANamespace, s.Config.DevNamespace} {
		exists, err := s.JobRepository.JobExistsInNamespace(ctx, namespace, jobUID)
		if err != nil {
			return nil, false, err
		}
		if exists {
			slog.InfoContext(ctx, "job belongs to another environment, dropping delivery",
				"job_namespace", namespace)
			return nil, false, nil
		}
	}

	lines := []string{
		"Unknown job id in appointment API response",
		fmt.Sprintf("Action: %s", action),
		"Forms text:\n",
		appointment.FormsText,
	}
	s.ErrorReporter.CaptureMessage(ctx, strings.Join(lines, "\n"))
	return nil, false, nil
}

// processScheduled runs the extra pipeline steps that only apply when a call
// is first scheduled: talent enrichment, portal registration, the analytics
// record, the personality check, and cleanup of the incomplete application.
func (s *WebhookService) processScheduled(ctx context.Context, job *models.Job, talentUID string, appointment *models.Appointment) error {
	if err := s.enrichTalent(ctx, talentUID, appointment); err != nil {
		s.ErrorReporter.CaptureError(ctx, err)
	}

	talent, err := s.TalentRepository.GetTalent(ctx, talentUID)
	if err != nil {
		return err
	}

	language := utils.CoalesceString(talent.PreferredLanguage, job.LangCode)
	registration := domain.CandidatePortalRegistration{
		JobUID:            job.UID,
		JobTitle:          job.OpeningTitle,
		OwnerID:           job.OwnerID,
		CompanyID:         job.CompanyID,
		Email:             talent.Email,
		LocalID:           talent.UID,
		FirstName:         talent.GivenName,
		LastName:          talent.FamilyName,
		PreferredLanguage: language,
		JobApproach:       job.Approach,
		Step:              constants.StepCallScheduled,
	}
	if err := s.CandidatePortal.RegisterCandidate(ctx, registration); err != nil {
		return err
	}

	event := &models.AnalyticsEvent{
		UID:       uuid.New().String(),
		TalentUID: talentUID,
		JobUID:    job.UID,
		Action:    models.AnalyticsActionScheduleCall,
		Namespace: s.Config.Namespace,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.AnalyticsRepository.CreateEvent(ctx, event); err != nil {
		return err
	}

	if job.PersonalityCheckDue(constants.StepCallScheduled) {
		if err := s.CandidatePortal.EnablePersonalityCheck(ctx, job, talentUID); err != nil {
			slog.ErrorContext(ctx, "error enabling personality check", logging.ErrKey, err)
		}
	}

	if err := s.ApplicationRepository.DeleteApplication(ctx, talentUID, job.UID); err != nil {
		if errs.GetErrorType(err) != errs.ErrorTypeNotFound {
			slog.ErrorContext(ctx, "error deleting incomplete application", logging.ErrKey, err)
		}
	}

	return nil
}

// enrichTalent copies contact details from the appointment onto the talent
// record: the email only when the record has none, phone numbers only when
// new. An unchanged record is not written back.
func (s *WebhookService) enrichTalent(ctx context.Context, talentUID string, appointment *models.Appointment) error {
	if talentUID == "" {
		slog.WarnContext(ctx, "talent id is unknown, skipping talent enrichment")
		return nil
	}
	if appointment.Email == "" && appointment.Phone == "" {
		return nil
	}

	talent, revision, err := s.TalentRepository.GetTalentWithRevision(ctx, talentUID)
	if err != nil {
		if errs.GetErrorType(err) == errs.ErrorTypeNotFound {
			slog.WarnContext(ctx, "talent not found, skipping talent enrichment")
			return nil
		}
		return err
	}

	dirty := false
	if talent.Email == "" && appointment.Email != "" {
		talent.Email = appointment.Email
		dirty = true
	}
	if appointment.Phone != "" && talent.AddMobile(appointment.Phone) {
		dirty = true
	}
	if !dirty {
		return nil
	}

	if err := s.TalentRepository.UpdateTalent(ctx, talent, revision); err != nil {
		return err
	}

	slog.DebugContext(ctx, "talent enriched from appointment",
		"email", appointment.Email,
		"phone", appointment.Phone,
	)
	return nil
}

// recordAppointmentOnContact upserts the appointment snapshot onto the job's
// contact record for the talent. Redelivered webhooks and reschedules update
// the existing snapshot in place.
func (s *WebhookService) recordAppointmentOnContact(ctx context.Context, action models.Action, jobUID, talentUID string, appointment *models.Appointment) error {
	if talentUID == "" {
		slog.WarnContext(ctx, "talent id is unknown, skipping contact update")
		return nil
	}

	contact, revision, err := s.ContactRepository.GetContactWithRevision(ctx, jobUID, talentUID)
	if err != nil {
		if errs.GetErrorType(err) == errs.ErrorTypeNotFound {
			slog.WarnContext(ctx, "contact not found, skipping contact update")
			return nil
		}
		return err
	}

	contact.RecordAppointment(models.AppointmentRecord{
		AppointmentID: appointment.ID,
		Action:        action.String(),
		Datetime:      appointment.Datetime,
		Timezone:      appointment.Timezone,
		Calendar:      appointment.Calendar,
		Duration:      appointment.Duration,
		RecordedAt:    time.Now().UTC(),
	})
	contact.UpdatedAt = utils.TimePtr(time.Now().UTC())

	return s.ContactRepository.UpdateContact(ctx, contact, revision)
}

// annotateTicket appends an internal comment describing the appointment event
// to the candidate's support ticket and applies the status and tag
// transitions for the action.
func (s *WebhookService) annotateTicket(ctx context.Context, action models.Action, job *models.Job, talentUID string, appointment *models.Appointment) error {
	if talentUID == "" {
		slog.WarnContext(ctx, "talent id is unknown, skipping ticket annotation")
		return nil
	}

	contact, err := s.ContactRepository.GetContact(ctx, job.UID, talentUID)
	if err != nil {
		if errs.GetErrorType(err) == errs.ErrorTypeNotFound {
			slog.WarnContext(ctx, "contact not found, skipping ticket annotation")
			return nil
		}
		return err
	}

	comment, err := buildTicketComment(action, job, appointment)
	if err != nil {
		return err
	}

	ticket, err := s.TicketClient.GetTicket(ctx, contact.TicketID)
	if err != nil {
		return err
	}
	ticket.Comment = &models.Comment{Body: comment, Public: false}

	// A solved ticket reopens only when a previously not-interested candidate
	// schedules a new call.
	if ticket.Status == constants.TicketStatusOpen ||
		(ticket.Status == constants.TicketStatusSolved &&
			action == models.ActionScheduled &&
			contact.Status == constants.ContactStatusNotInterested) {
		ticket.Status = constants.TicketStatusPending
	}

	if action == models.ActionCanceled {
		ticket.RemoveTag(constants.TagCallScheduled)
		ticket.AddTag(constants.TagCallCanceled)

		reason := ticket.CustomFieldValue(constants.CustomFieldCandidateNotInterested)
		if job.IsClosed() {
			reason = constants.ResolveReasonJobClosed
		}
		if err := s.TicketClient.ResolveTicket(ctx, ticket, job.PreferredLanguage, reason); err != nil {
			return err
		}
	} else {
		ticket.AddTag(constants.TagCallScheduled)
		ticket.RemoveTag(constants.TagCallCanceled)
	}

	return s.TicketClient.UpdateTicket(ctx, ticket)
}

// buildTicketComment renders the internal ticket comment for an appointment
// event.
func buildTicketComment(action models.Action, job *models.Job, appointment *models.Appointment) (string, error) {
	appointmentDate, err := appointment.FormattedDate()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch action {
	case models.ActionScheduled:
		fmt.Fprintf(&b, "%s %s scheduled an appointment for `%s` (%s) with `%s`.",
			appointment.FirstName, appointment.LastName, appointmentDate, appointment.Timezone, appointment.Calendar)
	case models.ActionRescheduled:
		fmt.Fprintf(&b, "%s %s rescheduled the previous appointment with `%s`. The new date is `%s` (%s).",
			appointment.FirstName, appointment.LastName, appointment.Calendar, appointmentDate, appointment.Timezone)
	case models.ActionCanceled:
		if job.IsClosed() {
			b.WriteString("Job closed\n")
		}
		fmt.Fprintf(&b, "%s %s canceled the appointment at `%s` (%s) with `%s`.",
			appointment.FirstName, appointment.LastName, appointmentDate, appointment.Timezone, appointment.Calendar)
	default:
		return "", errs.NewValidationError(fmt.Sprintf("unhandled action %q", action))
	}

	fmt.Fprintf(&b, "\nDuration of the meeting: %s minutes. \n", appointment.Duration)
	if appointment.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", appointment.Email)
	}
	if appointment.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", appointment.Phone)
	}

	return b.String(), nil
}
