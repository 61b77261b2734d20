// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRecordAppointment(t *testing.T) {
	contact := &Contact{JobUID: "job-1", TalentUID: "talent-1"}

	contact.RecordAppointment(AppointmentRecord{
		AppointmentID: 12345,
		Action:        "scheduled",
		Datetime:      "2026-02-10T14:30:00+01:00",
		RecordedAt:    time.Now().UTC(),
	})
	require.Len(t, contact.Appointments, 1)

	// a reschedule of the same appointment replaces the record
	contact.RecordAppointment(AppointmentRecord{
		AppointmentID: 12345,
		Action:        "rescheduled",
		Datetime:      "2026-02-12T10:00:00+01:00",
		RecordedAt:    time.Now().UTC(),
	})
	require.Len(t, contact.Appointments, 1)
	assert.Equal(t, "rescheduled", contact.Appointments[0].Action)
	assert.Equal(t, "2026-02-12T10:00:00+01:00", contact.Appointments[0].Datetime)

	// a different appointment id appends
	contact.RecordAppointment(AppointmentRecord{
		AppointmentID: 67890,
		Action:        "scheduled",
		RecordedAt:    time.Now().UTC(),
	})
	assert.Len(t, contact.Appointments, 2)
}
