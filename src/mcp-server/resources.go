// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs.
const (
	uriConfigTemplate     = "config://template"
	uriVersion            = "info://version"
	uriCertificateFormats = "docs://certificate-formats"
	uriCertificateSchema  = "schema://certificate"
)

// createResources creates and returns all MCP resource definitions.
//
// Resources include a configuration template, version information, input
// format documentation and the JSON Schema of the json output format.
func createResources() []ResourceDefinition {
	return []ResourceDefinition{
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("Configuration file with every setting at its default"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(uriVersion, "Version Information",
				mcp.WithResourceDescription("Server version, tools and supported output formats"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(uriCertificateFormats, "Certificate Input Formats",
				mcp.WithResourceDescription("Accepted certificate encodings and input limits"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleCertificateFormatsResource,
		},
		{
			Resource: mcp.NewResource(uriCertificateSchema, "Certificate JSON Schema",
				mcp.WithResourceDescription("JSON Schema of one certificate in json output"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleCertificateSchemaResource,
		},
	}
}
