// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads peek509 settings shared by the CLI and the MCP server.
//
// Settings are resolved in this order:
//  1. Built-in defaults
//  2. A JSON or YAML file given explicitly or through PEEK509_CONFIG_FILE
//  3. Environment overrides (PEEK509_FORMAT)
//
// The file format is chosen from the extension: .yaml and .yml are parsed as
// YAML, anything else as JSON.
//
// Example YAML configuration:
//
//	output:
//	  format: text
//	  signaturePreview: 16
//	  showPEM: false
//	input:
//	  maxBytes: 1048576
package config
