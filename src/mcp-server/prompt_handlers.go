// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	x509render "github.com/H0llyW00dzZ/peek509/src/internal/x509/render"
	"github.com/H0llyW00dzZ/peek509/src/mcp-server/templates"
)

// errMissingCertificate indicates a prompt request without a certificate argument.
var errMissingCertificate = errors.New("mcpserver: certificate argument required")

// reviewTemplateData holds the data used to populate the review prompt template.
type reviewTemplateData struct {
	Focus  string
	Report string
}

// handleCertificateReviewPrompt decodes the certificate argument and embeds
// its text report in a review request.
//
// Unlike tool handlers, decoding failures are returned as errors because a
// prompt has no error result.
func handleCertificateReviewPrompt(ctx context.Context, request mcp.GetPromptRequest, deps *ServerDependencies) (*mcp.GetPromptResult, error) {
	input := request.Params.Arguments["certificate"]
	if input == "" {
		return nil, errMissingCertificate
	}

	certs, err := decodeCertificates(ctx, deps, input, false)
	if err != nil {
		return nil, fmt.Errorf("mcpserver: decoding certificate: %w", err)
	}

	report, err := renderReport(certs, x509render.FormatText, deps.Config.RenderOptions())
	if err != nil {
		return nil, fmt.Errorf("mcpserver: rendering report: %w", err)
	}

	content, err := executeTemplate(templates.CertificateReview, reviewTemplateData{
		Focus:  request.Params.Arguments["focus"],
		Report: report,
	})
	if err != nil {
		return nil, err
	}

	return mcp.NewGetPromptResult(
		"Certificate Review",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(content)),
		},
	), nil
}
