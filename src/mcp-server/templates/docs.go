// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
// It holds the markdown sources for the server instructions, the input format
// documentation and the certificate review prompt.
//
// The package exposes the files through the [EmbedFS] interface,
// with [MagicEmbed] serving as the default implementation.
//
// Example usage:
//
//	import "github.com/H0llyW00dzZ/peek509/src/mcp-server/templates"
//
//	// Read input format documentation
//	content, err := templates.MagicEmbed.ReadFile("certificate-formats.md")
//	if err != nil {
//		return fmt.Errorf("failed to read certificate formats: %w", err)
//	}
package templates
