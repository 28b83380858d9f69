// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	x509render "github.com/H0llyW00dzZ/peek509/src/internal/x509/render"
)

// Tool names.
const (
	toolDecodeCertificate  = "decode_certificate"
	toolConvertCertificate = "convert_certificate"
)

// certificateParamDescription tells clients that single-line input is
// opened as a path on the server's local filesystem.
const certificateParamDescription = "PEM text, base64-encoded DER, or a path to a PEM or DER file. " +
	"Single-line input naming an existing file is read from the server's local filesystem, up to the configured input size limit"

// createTools creates and returns all MCP tool definitions with their handlers.
//
// The function defines the following tools:
//   - decode_certificate: Decodes certificates into a text, table, JSON or YAML report
//   - convert_certificate: Re-encodes certificate input as PEM or base64 DER
func createTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool(toolDecodeCertificate,
				mcp.WithDescription("Decode an X.509 certificate and show its fields, extensions and any decoding warnings"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateParamDescription),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'text', 'table', 'json' or 'yaml' (default: from server config)"),
					mcp.Enum(formatNames()...),
				),
				mcp.WithBoolean("all",
					mcp.Description("Decode every certificate in a PEM bundle (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithBoolean("show_pem",
					mcp.Description("Append the PEM encoding to text and table output (default: from server config)"),
				),
				mcp.WithNumber("signature_preview",
					mcp.Description(fmt.Sprintf("Signature bytes shown at each end in text and table output, 0 for all (default: %d)", x509render.DefaultSignaturePreview)),
					mcp.Min(0),
				),
			),
			Handler: handleDecodeCertificate,
			Role:    "decoder",
		},
		{
			Tool: mcp.NewTool(toolConvertCertificate,
				mcp.WithDescription("Convert certificate input to PEM or base64-encoded DER without decoding its contents"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description(certificateParamDescription),
				),
				mcp.WithString("format",
					mcp.Description("Output encoding: 'pem' or 'der' (default: pem)"),
					mcp.Enum(encodingPEM, encodingDER),
					mcp.DefaultString(encodingPEM),
				),
				mcp.WithBoolean("all",
					mcp.Description("Convert every certificate in a PEM bundle (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleConvertCertificate,
			Role:    "converter",
		},
	}
}

// formatNames returns the canonical output format names.
func formatNames() []string {
	names := make([]string, 0, len(x509render.Formats))
	for _, format := range x509render.Formats {
		names = append(names, string(format))
	}
	return names
}
