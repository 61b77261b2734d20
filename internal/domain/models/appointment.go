// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"time"

	"github.com/hirewire/scheduling-webhook-service/internal/domain/errs"
	"github.com/hirewire/scheduling-webhook-service/pkg/constants"
)

// Form field names inside the calendaring service's intake form response.
const (
	candidateFormName  = "CandidateID"
	candidateFieldName = "CandidateId"
	jobFieldName       = "JobId"
)

// Appointment is the full appointment record fetched from the calendaring
// service's API for a single webhook delivery.
type Appointment struct {
	ID        int64  `json:"id"`
	Datetime  string `json:"datetime"`
	Timezone  string `json:"timezone"`
	Calendar  string `json:"calendar"`
	Duration  string `json:"duration"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FormsText string `json:"formsText"`
	Forms     []Form `json:"forms"`
}

// Form is one intake form attached to an appointment.
type Form struct {
	Name   string      `json:"name"`
	Values []FormValue `json:"values"`
}

// FormValue is a single field of an intake form.
type FormValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// candidateFormValues returns the values of the "CandidateID" form, which is
// the intake form carrying the pipeline identifiers.
func (a *Appointment) candidateFormValues() ([]FormValue, error) {
	for _, form := range a.Forms {
		if form.Name == candidateFormName {
			return form.Values, nil
		}
	}
	return nil, errs.NewValidationError(
		fmt.Sprintf("appointment %d has no %q form", a.ID, candidateFormName))
}

// JobUID extracts the job identifier from the candidate form. Exactly one
// JobId value must be present; anything else is a hard error.
func (a *Appointment) JobUID() (string, error) {
	values, err := a.candidateFormValues()
	if err != nil {
		return "", err
	}

	var jobIDs []string
	for _, v := range values {
		if v.Name == jobFieldName {
			jobIDs = append(jobIDs, v.Value)
		}
	}
	if len(jobIDs) != 1 {
		return "", errs.NewValidationError(
			fmt.Sprintf("expected exactly one %s value in appointment %d, got %d",
				jobFieldName, a.ID, len(jobIDs)))
	}

	return jobIDs[0], nil
}

// TalentUID extracts the candidate identifier from the candidate form. The
// field is optional: zero or multiple values both mean the talent id is
// unknown, which is a parse anomaly rather than an error.
func (a *Appointment) TalentUID() string {
	values, err := a.candidateFormValues()
	if err != nil {
		return ""
	}

	var talentIDs []string
	for _, v := range values {
		if v.Name == candidateFieldName {
			talentIDs = append(talentIDs, v.Value)
		}
	}
	if len(talentIDs) != 1 {
		return ""
	}

	return talentIDs[0]
}

// FormattedDate renders the appointment datetime in the human-readable format
// used in ticket comments and analytics properties.
func (a *Appointment) FormattedDate() (string, error) {
	t, err := time.Parse(time.RFC3339, a.Datetime)
	if err != nil {
		return "", errs.NewValidationError(
			fmt.Sprintf("invalid appointment datetime %q", a.Datetime), err)
	}
	return t.Format(constants.AppointmentDateFormat), nil
}
