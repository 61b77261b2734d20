// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"time"

	"github.com/hirewire/scheduling-webhook-service/pkg/constants"
)

// Job is the key-value store representation of a hiring-pipeline job.
// This service only reads jobs; they are owned by the pipeline service.
type Job struct {
	UID                     string     `json:"uid"`
	OwnerID                 string     `json:"owner_id"`
	CompanyID               string     `json:"company_id"`
	OpeningTitle            string     `json:"opening_title"`
	Approach                string     `json:"approach,omitempty"`
	LangCode                string     `json:"lang_code,omitempty"`
	PreferredLanguage       string     `json:"preferred_language,omitempty"`
	PersonalityCheck        bool       `json:"personality_check"`
	PersonalityCheckTrigger string     `json:"personality_check_trigger,omitempty"`
	Status                  string     `json:"status"`
	CreatedAt               *time.Time `json:"created_at,omitempty"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}

// IsClosed reports whether the job has been closed.
func (j *Job) IsClosed() bool {
	return j.Status == constants.JobStatusClosed
}

// PersonalityCheckDue reports whether the personality check should be enabled
// for the given onboarding step: the job must have the check enabled, and
// either no trigger is configured or the trigger matches the step.
func (j *Job) PersonalityCheckDue(step string) bool {
	if !j.PersonalityCheck {
		return false
	}
	return j.PersonalityCheckTrigger == "" || j.PersonalityCheckTrigger == step
}
