// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for [X509] certificate decoding.
// It exposes the decoder as tools over the stdio transport so that an AI
// client can inspect certificates the same way the peek509 CLI does.
//
// Tools:
//   - decode_certificate: Render a certificate as text, table, JSON or YAML
//   - convert_certificate: Re-encode certificate input as PEM or base64 DER
//
// Resources:
//   - config://template: Configuration file holding the defaults
//   - info://version: Server version and supported formats
//   - docs://certificate-formats: Accepted input encodings
//   - schema://certificate: JSON Schema of json output
//
// Prompts:
//   - certificate-review: Review a decoded certificate and its warnings
//
// The server is assembled with [ServerBuilder] and shares its configuration
// with the CLI through the config package.
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
