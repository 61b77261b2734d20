// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import "time"

// Application is an in-progress application a candidate has open for a job.
// It is deleted once a call is scheduled, signaling the candidate has moved
// past the "applying" stage.
type Application struct {
	TalentUID string     `json:"talent_uid"`
	JobUID    string     `json:"job_uid"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
