// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// promptCertificateReview is the name of the certificate review prompt.
const promptCertificateReview = "certificate-review"

// createPrompts creates and returns all MCP prompt definitions with their handlers.
func createPrompts() []PromptDefinition {
	return []PromptDefinition{
		{
			Prompt: mcp.NewPrompt(promptCertificateReview,
				mcp.WithPromptDescription("Review a decoded certificate and explain its decoding warnings"),
				mcp.WithArgument("certificate",
					mcp.ArgumentDescription(certificateParamDescription),
					mcp.RequiredArgument(),
				),
				mcp.WithArgument("focus",
					mcp.ArgumentDescription("Optional aspect to concentrate on, e.g. 'key usage' or 'validity'"),
				),
			),
			Handler: handleCertificateReviewPrompt,
		},
	}
}
