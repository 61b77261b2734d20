// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, ActionScheduled, NormalizeAction("appointment.scheduled"))
	assert.Equal(t, ActionRescheduled, NormalizeAction("appointment.rescheduled"))
	assert.Equal(t, ActionCanceled, NormalizeAction("appointment.canceled"))
	assert.Equal(t, ActionCanceled, NormalizeAction("canceled"), "bare action passes through")
	assert.Equal(t, Action("changed"), NormalizeAction("appointment.changed"))
}

func TestActionIsProcessed(t *testing.T) {
	assert.True(t, ActionScheduled.IsProcessed())
	assert.True(t, ActionRescheduled.IsProcessed())
	assert.True(t, ActionCanceled.IsProcessed())
	assert.False(t, Action("changed").IsProcessed())
	assert.False(t, Action("").IsProcessed())
}
