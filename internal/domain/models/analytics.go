// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import "time"

// Analytics event actions recorded by this service.
const (
	AnalyticsActionScheduleCall = "schedule_call"
)

// AnalyticsEvent is a write-once record of a pipeline action, parented under
// the talent and scoped to the environment namespace it was recorded in.
type AnalyticsEvent struct {
	UID       string    `json:"uid"`
	TalentUID string    `json:"talent_uid"`
	JobUID    string    `json:"job_uid"`
	Action    string    `json:"action"`
	Namespace string    `json:"namespace"`
	CreatedAt time.Time `json:"created_at"`
}
