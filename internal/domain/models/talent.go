// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"slices"
	"time"
)

// Talent is the key-value store representation of a candidate.
// Records are enriched in place, never overwritten: the email is set only
// when absent and phone numbers are appended only when new.
type Talent struct {
	UID               string     `json:"uid"`
	GivenName         string     `json:"given_name,omitempty"`
	FamilyName        string     `json:"family_name,omitempty"`
	Email             string     `json:"email,omitempty"`
	Mobile            []string   `json:"mobile,omitempty"`
	PreferredLanguage string     `json:"preferred_language,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// AddMobile appends a phone number to the talent's mobile set. It reports
// whether the set changed; duplicates are ignored.
func (t *Talent) AddMobile(phone string) bool {
	if phone == "" || slices.Contains(t.Mobile, phone) {
		return false
	}
	t.Mobile = append(t.Mobile, phone)
	return true
}

// HasMobile reports whether the talent already carries the given phone number.
func (t *Talent) HasMobile(phone string) bool {
	return slices.Contains(t.Mobile, phone)
}
