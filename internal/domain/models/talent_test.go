// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTalentAddMobile(t *testing.T) {
	talent := &Talent{UID: "talent-1"}

	assert.True(t, talent.AddMobile("+4915112345678"))
	assert.False(t, talent.AddMobile("+4915112345678"), "duplicate number must be ignored")
	assert.False(t, talent.AddMobile(""), "empty number must be ignored")
	assert.True(t, talent.AddMobile("+4915187654321"))

	assert.Equal(t, []string{"+4915112345678", "+4915187654321"}, talent.Mobile)
	assert.True(t, talent.HasMobile("+4915112345678"))
	assert.False(t, talent.HasMobile("+4900000000000"))
}
