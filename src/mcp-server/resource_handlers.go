// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/peek509/src/config"
	x509render "github.com/H0llyW00dzZ/peek509/src/internal/x509/render"
	"github.com/H0llyW00dzZ/peek509/src/mcp-server/templates"
)

// handleConfigResource returns a configuration file holding the defaults,
// suitable as a starting point for PEEK509_CONFIG_FILE.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest, deps *ServerDependencies) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(config.Default(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigTemplate,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleVersionResource returns the server version and capabilities.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest, deps *ServerDependencies) ([]mcp.ResourceContents, error) {
	tools := make([]string, 0, len(deps.Tools))
	for _, tool := range deps.Tools {
		tools = append(tools, tool.Tool.Name)
	}

	versionInfo := map[string]any{
		"name":             serverName,
		"version":          deps.Version,
		"type":             "MCP Server",
		"tools":            tools,
		"supportedFormats": formatNames(),
		"defaultFormat":    deps.Config.Output.Format,
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleCertificateFormatsResource returns the input format documentation.
func handleCertificateFormatsResource(ctx context.Context, request mcp.ReadResourceRequest, deps *ServerDependencies) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile(templates.CertificateFormats)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate formats template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriCertificateFormats,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}

// handleCertificateSchemaResource returns the JSON Schema of json output.
func handleCertificateSchemaResource(ctx context.Context, request mcp.ReadResourceRequest, deps *ServerDependencies) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriCertificateSchema,
			MIMEType: "application/schema+json",
			Text:     string(x509render.Schema),
		},
	}, nil
}
