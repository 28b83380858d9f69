// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for peek509.
// It implements a Cobra-based CLI that reads a certificate from a file or
// standard input, decodes it into the structured certificate model and renders
// it as text, markdown tables, JSON or YAML. Settings come from the config
// package and can be overridden by flags. Model warnings are reported through
// the logger package in addition to appearing in the rendered output.
package cli
