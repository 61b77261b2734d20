// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import "slices"

// Ticket is the support-ticket system's representation of a candidate's
// ticket. It is fetched, mutated in memory, and persisted back with a single
// update call; nothing is stored locally.
type Ticket struct {
	ID           int64         `json:"id"`
	Status       string        `json:"status"`
	Tags         []string      `json:"tags"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
	Comment      *Comment      `json:"comment,omitempty"`
}

// CustomField is a single custom field value on a ticket.
type CustomField struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// Comment is an outbound ticket comment. Comments appended by this service
// are internal, never visible to the candidate.
type Comment struct {
	Body   string `json:"body"`
	Public bool   `json:"public"`
}

// AddTag appends a tag unless it is already present.
func (t *Ticket) AddTag(tag string) {
	if !slices.Contains(t.Tags, tag) {
		t.Tags = append(t.Tags, tag)
	}
}

// RemoveTag removes a tag if present.
func (t *Ticket) RemoveTag(tag string) {
	t.Tags = slices.DeleteFunc(t.Tags, func(s string) bool { return s == tag })
}

// HasTag reports whether the ticket carries the given tag.
func (t *Ticket) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// CustomFieldValue returns the value of the custom field with the given id,
// or the empty string when the field is absent.
func (t *Ticket) CustomFieldValue(id int64) string {
	for _, f := range t.CustomFields {
		if f.ID == id {
			return f.Value
		}
	}
	return ""
}
