// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/peek509/src/config"
	x509certs "github.com/H0llyW00dzZ/peek509/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/peek509/src/logger"
	"github.com/H0llyW00dzZ/peek509/src/version"
)

// EnvVerbose enables JSON logging to stderr when set to a non-empty value.
// Logging is silent otherwise.
const EnvVerbose = "PEEK509_MCP_VERBOSE"

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server on stdin and stdout.
//
// Server Lifecycle:
//  1. Load configuration from PEEK509_CONFIG_FILE
//  2. Render the server instructions
//  3. Set up signal handling for graceful shutdown
//  4. Build MCP server using the ServerBuilder pattern
//  5. Serve stdio until the client disconnects or a signal arrives
//
// A signal-based shutdown returns an error wrapping [context.Canceled].
func Run(version string) error {
	appVersion = version

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.NewJSONLogger(os.Stderr, os.Getenv(EnvVerbose) == "")
	return serve(ctx, cfg, log, version, os.Stdin, os.Stdout)
}

// serve builds the server and runs the stdio transport over in and out.
func serve(ctx context.Context, cfg *config.Config, log logger.Logger, version string, in io.Reader, out io.Writer) error {
	tools := createTools()

	instructions, err := loadInstructions(tools)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithLogger(log).
		WithVersion(version).
		WithDecoder(x509certs.New()).
		WithTools(tools...).
		WithResources(createResources()...).
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, in, out)
	}()

	log.Printf("%s %s listening on stdio", serverName, version)

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
