// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"strings"
	"text/template"

	x509ext "github.com/H0llyW00dzZ/peek509/src/internal/x509/extension"
	"github.com/H0llyW00dzZ/peek509/src/mcp-server/templates"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools      []toolInfo
	Formats    []string
	SchemaURI  string
	Extensions string
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the instructions template for the given tools.
//
// Returns:
//   - string: The instruction text sent to clients during initialization
//   - error: If the embedded file cannot be read or template parsing fails
func loadInstructions(tools []ToolDefinition) (string, error) {
	infos := make([]toolInfo, 0, len(tools))
	for _, tool := range tools {
		infos = append(infos, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
	}

	var extensions []string
	for _, kind := range x509ext.Supported() {
		extensions = append(extensions, kind.DisplayName())
	}

	data := instructionData{
		Tools:      infos,
		Formats:    formatNames(),
		SchemaURI:  uriCertificateSchema,
		Extensions: strings.Join(extensions, ", "),
	}

	return executeTemplate(templates.Instructions, data)
}

// executeTemplate renders the named embedded template with data.
func executeTemplate(name string, data any) (string, error) {
	templateBytes, err := templates.MagicEmbed.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
