// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/peek509/src/config"
	x509certs "github.com/H0llyW00dzZ/peek509/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/peek509/src/logger"
	"github.com/H0llyW00dzZ/peek509/src/version"
)

// serverName is the implementation name reported to [MCP] clients.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
const serverName = "peek509"

// CertificateDecoder defines the interface for turning certificate input into
// DER bytes. [x509certs.Decoder] is the default implementation.
//
// Methods:
//   - Decode: Extracts the first certificate from PEM, DER or base64 input
//   - DecodeMultiple: Extracts every certificate from a PEM bundle
//   - EncodePEM: Wraps DER bytes in a CERTIFICATE PEM block
//   - EncodeMultiplePEM: Concatenates PEM blocks for several certificates
type CertificateDecoder interface {
	Decode(data []byte) ([]byte, error)
	DecodeMultiple(data []byte) ([][]byte, error)
	EncodePEM(der []byte) []byte
	EncodeMultiplePEM(ders [][]byte) []byte
}

// ToolHandler processes a tool call with access to the server dependencies.
//
// Failures caused by the caller's input are returned as a tool error result
// with a nil error, so the client can show them to the model.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error)

// ResourceHandler processes a resource read with access to the server dependencies.
type ResourceHandler func(ctx context.Context, request mcp.ReadResourceRequest, deps *ServerDependencies) ([]mcp.ResourceContents, error)

// PromptHandler processes a prompt request with access to the server dependencies.
type PromptHandler func(ctx context.Context, request mcp.GetPromptRequest, deps *ServerDependencies) (*mcp.GetPromptResult, error)

// ToolDefinition pairs an MCP tool specification with its implementation.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: A short identifier used by the instructions template
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ResourceDefinition pairs an MCP resource with its implementation.
type ResourceDefinition struct {
	Resource mcp.Resource
	Handler  ResourceHandler
}

// PromptDefinition pairs an MCP prompt with its implementation.
type PromptDefinition struct {
	Prompt  mcp.Prompt
	Handler PromptHandler
}

// ServerDependencies holds all dependencies needed to create the MCP server.
//
// Fields:
//   - Config: Output and input settings shared with the CLI
//   - Logger: Destination for decode warnings and diagnostics
//   - Version: Server version reported to clients
//   - Decoder: Certificate input decoder
//   - Tools: Tool definitions to register
//   - Resources: Resource definitions to register
//   - Prompts: Prompt definitions to register
//   - Instructions: Text sent to clients during initialization
type ServerDependencies struct {
	Config       *config.Config
	Logger       logger.Logger
	Version      string
	Decoder      CertificateDecoder
	Tools        []ToolDefinition
	Resources    []ResourceDefinition
	Prompts      []PromptDefinition
	Instructions string
}

// ServerBuilder helps construct the MCP server with proper dependencies.
//
// Example usage:
//
//	s, err := NewServerBuilder().
//		WithConfig(cfg).
//		WithVersion("1.0.0").
//		WithDefaultTools().
//		Build()
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with no dependencies set.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithLogger sets the logger used by handlers.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithVersion sets the server version.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithDecoder sets the certificate input decoder.
func (b *ServerBuilder) WithDecoder(decoder CertificateDecoder) *ServerBuilder {
	b.deps.Decoder = decoder
	return b
}

// WithTools adds tool definitions to the server.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithResources adds resource definitions to the server.
func (b *ServerBuilder) WithResources(resources ...ResourceDefinition) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds prompt definitions to the server.
func (b *ServerBuilder) WithPrompts(prompts ...PromptDefinition) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the instructions sent to clients during initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithDefaultTools adds the built-in tools, resources and prompts.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, createTools()...)
	b.deps.Resources = append(b.deps.Resources, createResources()...)
	b.deps.Prompts = append(b.deps.Prompts, createPrompts()...)
	return b
}

// Build creates the MCP server.
//
// Unset dependencies fall back to defaults: [config.Default], a silent JSON
// logger, [version.Version] and [x509certs.New]. Build fails when two tools,
// resources or prompts share a name.
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	deps := b.dependencies()

	tools, err := deps.serverTools()
	if err != nil {
		return nil, err
	}
	resources, err := deps.serverResources()
	if err != nil {
		return nil, err
	}
	prompts, err := deps.serverPrompts()
	if err != nil {
		return nil, err
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	}
	if deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(deps.Instructions))
	}

	s := server.NewMCPServer(serverName, deps.Version, opts...)
	s.AddTools(tools...)
	s.AddResources(resources...)
	s.AddPrompts(prompts...)

	return s, nil
}

// dependencies returns a copy of the builder's dependencies with defaults
// filled in.
func (b *ServerBuilder) dependencies() *ServerDependencies {
	deps := b.deps
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewJSONLogger(nil, true)
	}
	if deps.Version == "" {
		deps.Version = version.Version
	}
	if deps.Decoder == nil {
		deps.Decoder = x509certs.New()
	}
	return &deps
}

// serverTools binds each tool handler to deps.
func (deps *ServerDependencies) serverTools() ([]server.ServerTool, error) {
	seen := make(map[string]bool, len(deps.Tools))
	tools := make([]server.ServerTool, 0, len(deps.Tools))

	for _, def := range deps.Tools {
		if seen[def.Tool.Name] {
			return nil, fmt.Errorf("mcpserver: duplicate tool %q", def.Tool.Name)
		}
		seen[def.Tool.Name] = true

		handler := def.Handler
		tools = append(tools, server.ServerTool{
			Tool: def.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(ctx, request, deps)
			},
		})
	}
	return tools, nil
}

// serverResources binds each resource handler to deps.
func (deps *ServerDependencies) serverResources() ([]server.ServerResource, error) {
	seen := make(map[string]bool, len(deps.Resources))
	resources := make([]server.ServerResource, 0, len(deps.Resources))

	for _, def := range deps.Resources {
		if seen[def.Resource.URI] {
			return nil, fmt.Errorf("mcpserver: duplicate resource %q", def.Resource.URI)
		}
		seen[def.Resource.URI] = true

		handler := def.Handler
		resources = append(resources, server.ServerResource{
			Resource: def.Resource,
			Handler: func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				return handler(ctx, request, deps)
			},
		})
	}
	return resources, nil
}

// serverPrompts binds each prompt handler to deps.
func (deps *ServerDependencies) serverPrompts() ([]server.ServerPrompt, error) {
	seen := make(map[string]bool, len(deps.Prompts))
	prompts := make([]server.ServerPrompt, 0, len(deps.Prompts))

	for _, def := range deps.Prompts {
		if seen[def.Prompt.Name] {
			return nil, fmt.Errorf("mcpserver: duplicate prompt %q", def.Prompt.Name)
		}
		seen[def.Prompt.Name] = true

		handler := def.Handler
		prompts = append(prompts, server.ServerPrompt{
			Prompt: def.Prompt,
			Handler: func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
				return handler(ctx, request, deps)
			},
		})
	}
	return prompts, nil
}
