// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509render presents a decoded [x509model.Certificate].
//
// Four formats are available:
//   - [FormatText]: a human-readable report with name tables, a truncated
//     signature preview, one block per extension and inline warnings
//   - [FormatTable]: markdown tables rendered with tablewriter
//   - [FormatJSON]: indented JSON
//   - [FormatYAML]: YAML
//
// The structured formats carry every field of the model, including
// per-extension warnings and raw fallbacks. All renderers only read the
// certificate and are safe for concurrent use.
//
// [x509model.Certificate]: https://pkg.go.dev/github.com/H0llyW00dzZ/peek509/src/internal/x509/model#Certificate
package x509render
