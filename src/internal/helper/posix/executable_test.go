// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Relative Path", args: []string{"./peek509"}, expected: "peek509"},
		{name: "Just Filename", args: []string{"peek509"}, expected: "peek509"},
		{name: "Absolute Path", args: []string{"/usr/local/bin/peek509"}, expected: "peek509"},
		{name: "Windows Path", args: []string{`C:\Program Files\peek509\peek509.exe`}, expected: "peek509"},
		{name: "Other Extension Kept", args: []string{"/opt/peek509.bin"}, expected: "peek509.bin"},
		{name: "Empty Args", args: []string{}, expected: "fallback"},
		{name: "Empty First Arg", args: []string{""}, expected: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			os.Args = tt.args
			defer func() { os.Args = origArgs }()

			assert.Equal(t, tt.expected, ExecutableName("fallback"))
		})
	}
}
