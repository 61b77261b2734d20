// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package constants

// Webhook action kinds after the "appointment." prefix has been stripped.
const (
	ActionScheduled   = "scheduled"
	ActionRescheduled = "rescheduled"
	ActionCanceled    = "canceled"
)

// ActionPrefix is the event-type prefix the calendaring service puts in
// front of the action kind in webhook deliveries.
const ActionPrefix = "appointment."

// Job status values.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Support ticket status values.
const (
	TicketStatusOpen    = "open"
	TicketStatusPending = "pending"
	TicketStatusSolved  = "solved"
)

// Support ticket tags managed by this service.
const (
	TagCallScheduled = "call_scheduled"
	TagCallCanceled  = "call_canceled"
)

// ContactStatusNotInterested is the pipeline status of a contact that
// previously declined; a newly scheduled call re-engages them.
const ContactStatusNotInterested = "not_interested"

// StepCallScheduled is the onboarding step marker sent to the candidate
// portal and matched against the job's personality check trigger.
const StepCallScheduled = "call_scheduled"

// ResolveReasonJobClosed overrides the candidate-supplied resolve reason
// whenever the job has been closed.
const ResolveReasonJobClosed = "job_closed"

// CustomFieldCandidateNotInterested is the ticket custom field holding the
// "candidate not interested" reason.
const CustomFieldCandidateNotInterested int64 = 360011266214

// AppointmentDateFormat is the layout used for appointment dates in ticket
// comments and analytics properties.
const AppointmentDateFormat = "January 02, 2006 15:04"
