// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutableName returns the name the program was invoked as, without
// directory or ".exe" suffix, or fallback when os.Args carries no name.
//
//   - Linux/macOS: "peek509" from "/usr/local/bin/peek509"
//   - Windows: "peek509" from "C:\bin\peek509.exe"
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallback
	}
	return baseName(os.Args[0])
}

// baseName strips any directory, using either separator so that Windows
// paths resolve on Unix too.
func baseName(path string) string {
	name := filepath.Base(path)

	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			name = parts[len(parts)-1]
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
