// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package templates

import "embed"

//go:embed *.md
var embeddedFS embed.FS

// Template file names.
const (
	Instructions       = "instructions.md"
	CertificateFormats = "certificate-formats.md"
	CertificateReview  = "certificate-review.md"
)

// EmbedFS defines the interface for accessing embedded template files.
// Implementations must be safe for concurrent use.
type EmbedFS interface {
	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)
}

// embedFS wraps [embed.FS] to implement EmbedFS interface.
type embedFS struct{ fs embed.FS }

// ReadFile reads the named file and returns the contents.
func (e *embedFS) ReadFile(name string) ([]byte, error) { return e.fs.ReadFile(name) }

// MagicEmbed is the embedded filesystem used for accessing template files.
//
// Example usage for reading the server instructions template:
//
//	templateBytes, err := templates.MagicEmbed.ReadFile(templates.Instructions)
//	if err != nil {
//		return "", fmt.Errorf("failed to load instructions template: %w", err)
//	}
var MagicEmbed EmbedFS = &embedFS{fs: embeddedFS}
