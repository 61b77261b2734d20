// Copyright The Hirewire Authors.
// SPDX-License-Identifier: MIT

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceString(t *testing.T) {
	assert.Equal(t, "de", CoalesceString("de", "en"))
	assert.Equal(t, "en", CoalesceString("", "en"))
	assert.Equal(t, "", CoalesceString("", ""))
	assert.Equal(t, "", CoalesceString())
}
