// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import "time"

// Contact is the join record between a Job and a Talent: it tracks the
// candidate's status within that job's pipeline and links to the support
// ticket opened for them.
type Contact struct {
	JobUID       string              `json:"job_uid"`
	TalentUID    string              `json:"talent_uid"`
	TicketID     int64               `json:"ticket_id"`
	Status       string              `json:"status,omitempty"`
	Appointments []AppointmentRecord `json:"appointments,omitempty"`
	CreatedAt    *time.Time          `json:"created_at,omitempty"`
	UpdatedAt    *time.Time          `json:"updated_at,omitempty"`
}

// AppointmentRecord is the snapshot of a calendaring appointment stored on a
// contact. One record exists per appointment id regardless of how many
// webhook deliveries were seen for it.
type AppointmentRecord struct {
	AppointmentID int64     `json:"appointment_id"`
	Action        string    `json:"action"`
	Datetime      string    `json:"datetime"`
	Timezone      string    `json:"timezone,omitempty"`
	Calendar      string    `json:"calendar,omitempty"`
	Duration      string    `json:"duration,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// RecordAppointment upserts an appointment snapshot onto the contact, keyed
// by appointment id. Re-delivered webhooks overwrite the existing record
// instead of appending a duplicate.
func (c *Contact) RecordAppointment(record AppointmentRecord) {
	for i, existing := range c.Appointments {
		if existing.AppointmentID == record.AppointmentID {
			c.Appointments[i] = record
			return
		}
	}
	c.Appointments = append(c.Appointments, record)
}
