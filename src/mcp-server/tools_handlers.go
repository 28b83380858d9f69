// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/peek509/src/internal/helper/gc"
	x509model "github.com/H0llyW00dzZ/peek509/src/internal/x509/model"
	x509render "github.com/H0llyW00dzZ/peek509/src/internal/x509/render"
)

// Output encodings of convert_certificate.
const (
	encodingPEM = "pem"
	encodingDER = "der"
)

// ErrNoCertificates indicates input that held no certificate at all.
var ErrNoCertificates = errors.New("mcpserver: no certificates found in input")

// handleDecodeCertificate decodes the certificate input and renders a report.
//
// Parameters:
//   - ctx: Context checked between certificates of a bundle
//   - request: MCP tool call request containing certificate input and output options
//   - deps: Server dependencies providing config, decoder and logger
//
// Returns:
//   - The rendered report, or a tool error result when the input cannot be decoded
//   - An error only if rendering itself fails
//
// Per-field problems do not fail the call. They appear as warnings inside the
// report and are also logged.
func handleDecodeCertificate(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	format, err := x509render.ParseFormat(request.GetString("format", deps.Config.Output.Format))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid format: %v", err)), nil
	}

	opts := deps.Config.RenderOptions()
	opts.ShowPEM = request.GetBool("show_pem", opts.ShowPEM)
	opts.SignaturePreview = request.GetInt("signature_preview", opts.SignaturePreview)
	if opts.SignaturePreview < 0 {
		return mcp.NewToolResultError("invalid signature_preview: must not be negative"), nil
	}

	certs, err := decodeCertificates(ctx, deps, input, request.GetBool("all", false))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
	}

	report, err := renderReport(certs, format, opts)
	if err != nil {
		return nil, fmt.Errorf("mcpserver: rendering %s report: %w", format, err)
	}

	deps.Logger.Printf("decoded %d certificate(s) as %s", len(certs), format)
	return mcp.NewToolResultText(report), nil
}

// handleConvertCertificate re-encodes certificate input without parsing the
// certificate structure.
func handleConvertCertificate(ctx context.Context, request mcp.CallToolRequest, deps *ServerDependencies) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	encoding := strings.ToLower(request.GetString("format", encodingPEM))
	if encoding != encodingPEM && encoding != encodingDER {
		return mcp.NewToolResultError(fmt.Sprintf("invalid format %q: must be 'pem' or 'der'", encoding)), nil
	}

	ders, err := readDER(deps, input, request.GetBool("all", false))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	if encoding == encodingPEM {
		return mcp.NewToolResultText(string(deps.Decoder.EncodeMultiplePEM(ders))), nil
	}

	encoded := make([]string, 0, len(ders))
	for _, der := range ders {
		encoded = append(encoded, base64.StdEncoding.EncodeToString(der))
	}
	return mcp.NewToolResultText(strings.Join(encoded, "\n")), nil
}

// decodeCertificates reads the input and decodes the first certificate, or
// every certificate when all is set. Warnings are logged per certificate.
func decodeCertificates(ctx context.Context, deps *ServerDependencies, input string, all bool) ([]*x509model.Certificate, error) {
	ders, err := readDER(deps, input, all)
	if err != nil {
		return nil, err
	}

	certs := make([]*x509model.Certificate, 0, len(ders))
	for i, der := range ders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cert, err := x509model.Decode(der)
		if err != nil {
			return nil, fmt.Errorf("certificate %d: %w", i+1, err)
		}
		for _, warning := range cert.Warnings {
			deps.Logger.Warnf("certificate %d: %s", i+1, warning)
		}
		certs = append(certs, cert)
	}
	return certs, nil
}

// readDER resolves the input to DER bytes, one entry per certificate.
func readDER(deps *ServerDependencies, input string, all bool) ([][]byte, error) {
	data, err := readInput(input, deps.Config.Input.MaxBytes)
	if err != nil {
		return nil, err
	}

	if all {
		ders, err := deps.Decoder.DecodeMultiple(data)
		if err != nil {
			return nil, err
		}
		if len(ders) == 0 {
			return nil, ErrNoCertificates
		}
		return ders, nil
	}

	der, err := deps.Decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	return [][]byte{der}, nil
}

// readInput returns the contents of the file named by input when it exists,
// and input itself otherwise. Either way at most limit bytes are accepted.
func readInput(input string, limit int64) ([]byte, error) {
	var r io.Reader = strings.NewReader(input)

	if !strings.Contains(input, "\n") {
		if f, err := os.Open(input); err == nil {
			defer f.Close()
			r = f
		}
	}

	return gc.ReadLimited(r, limit)
}

// renderReport renders one certificate with [x509render.Render] and several
// with [x509render.RenderAll].
func renderReport(certs []*x509model.Certificate, format x509render.Format, opts x509render.Options) (string, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	var err error
	if len(certs) == 1 {
		err = x509render.Render(buf, certs[0], format, opts)
	} else {
		err = x509render.RenderAll(buf, certs, format, opts)
	}
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
