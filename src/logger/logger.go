// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging operations.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Warnf formats and prints a warning, such as a degraded certificate field.
	Warnf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// It writes to stderr so that rendered certificates on stdout stay clean.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf prints a message prefixed with "Warning: ".
func (c *CLILogger) Warnf(format string, v ...any) {
	c.logger.Print("Warning: " + fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line, backed by logrus.
// It is meant for [MCP] server mode, where stdout carries the protocol and
// logs must either be silenced or sent to a separate destination.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type JSONLogger struct {
	backend *logrus.Logger
	silent  bool
}

// NewJSONLogger creates a new structured logger writing to writer.
// A nil writer discards output. When silent is true nothing is written at all,
// which keeps the [MCP] stdio protocol clean.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}

	l := logrus.New()
	l.SetOutput(writer)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})

	return &JSONLogger{backend: l, silent: silent}
}

// Printf logs an info-level message.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.backend.Infof(format, v...)
}

// Println logs an info-level message with operands joined as by fmt.Sprintln.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.backend.Infoln(v...)
}

// Warnf logs a warning-level message.
func (j *JSONLogger) Warnf(format string, v ...any) {
	if j.silent {
		return
	}
	j.backend.Warnf(format, v...)
}

// SetOutput sets the output destination. A nil writer discards output.
func (j *JSONLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	j.backend.SetOutput(w)
}
