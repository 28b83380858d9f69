// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	x509model "github.com/H0llyW00dzZ/peek509/src/internal/x509/model"
)

var (
	// ErrUnknownFormat is returned by [ParseFormat] for an unrecognized name.
	ErrUnknownFormat = errors.New("x509render: unknown format")

	// ErrNilCertificate is returned when there is nothing to render.
	ErrNilCertificate = errors.New("x509render: nil certificate")
)

// Format selects an output representation.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat resolves a case-insensitive format name. "yml" and "md" are
// accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt":
		return FormatText, nil
	case "table", "markdown", "md":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DefaultSignaturePreview is the number of signature bytes shown at each end
// of the text preview.
const DefaultSignaturePreview = 16

// Options tunes the text and table renderers.
type Options struct {
	// SignaturePreview is the number of bytes shown at the start and end of
	// the signature. Zero or less shows the whole signature.
	SignaturePreview int

	// ShowPEM appends the PEM encoding of the certificate after the report.
	ShowPEM bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{SignaturePreview: DefaultSignaturePreview}
}

// Render writes cert to w in the given format.
func Render(w io.Writer, cert *x509model.Certificate, format Format, opts Options) error {
	if cert == nil {
		return ErrNilCertificate
	}

	switch format {
	case FormatText:
		return Text(w, cert, opts)
	case FormatTable:
		return Table(w, cert, opts)
	case FormatJSON:
		return JSON(w, cert)
	case FormatYAML:
		return YAML(w, cert)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// RenderAll writes several certificates to w as one document: a JSON array,
// a YAML stream with one document per certificate, or text and table reports
// separated by a blank line.
func RenderAll(w io.Writer, certs []*x509model.Certificate, format Format, opts Options) error {
	for _, cert := range certs {
		if cert == nil {
			return ErrNilCertificate
		}
	}

	switch format {
	case FormatJSON:
		return encodeJSON(w, certs)
	case FormatYAML:
		return encodeYAML(w, certs...)
	case FormatText, FormatTable:
		for i, cert := range certs {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := Render(w, cert, format, opts); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
