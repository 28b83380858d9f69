// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/peek509/src/mcp-server"
)

func TestVersionInit(t *testing.T) {
	assert.NotEmpty(t, version, "version should not be empty after init")

	if version != mcpserver.GetVersion() {
		// Set by ldflags, which is also valid
		t.Logf("version set by ldflags: %s (package version: %s)", version, mcpserver.GetVersion())
	}
}
