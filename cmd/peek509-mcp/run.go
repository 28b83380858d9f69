// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// peek509-mcp serves the peek509 certificate decoder over the Model Context
// Protocol on stdin and stdout.
//
// # Usage
//
//	peek509-mcp
//
// # Environment
//
//	PEEK509_CONFIG_FILE  Configuration file (JSON or YAML)
//	PEEK509_FORMAT       Default output format of decode_certificate
//	PEEK509_MCP_VERBOSE  Write JSON logs to stderr when non-empty
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/peek509/src/mcp-server"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

func main() {
	if err := mcpserver.Run(version); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
