// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"strings"

	"github.com/hirewire/scheduling-webhook-service/pkg/constants"
)

// WebhookPayload is the form-encoded body the calendaring service delivers
// for every appointment event.
type WebhookPayload struct {
	ID          int64  `json:"id"`
	Action      string `json:"action"`
	AccountName string `json:"account_name"`
}

// Action is an appointment event kind after prefix normalization.
type Action string

const (
	ActionScheduled   Action = constants.ActionScheduled
	ActionRescheduled Action = constants.ActionRescheduled
	ActionCanceled    Action = constants.ActionCanceled
)

// NormalizeAction strips the "appointment." event-type prefix from a raw
// webhook action string and returns the bare action kind.
func NormalizeAction(raw string) Action {
	return Action(strings.TrimPrefix(raw, constants.ActionPrefix))
}

// IsProcessed reports whether the action is one of the three kinds this
// service handles. Anything else is an immediate no-op.
func (a Action) IsProcessed() bool {
	switch a {
	case ActionScheduled, ActionRescheduled, ActionCanceled:
		return true
	}
	return false
}

func (a Action) String() string {
	return string(a)
}
