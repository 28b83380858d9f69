// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	x509model "github.com/H0llyW00dzZ/peek509/src/internal/x509/model"
)

// JSON writes cert to w as indented JSON followed by a newline.
func JSON(w io.Writer, cert *x509model.Certificate) error {
	return encodeJSON(w, cert)
}

// YAML writes cert to w as a YAML document.
func YAML(w io.Writer, cert *x509model.Certificate) error {
	return encodeYAML(w, cert)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("x509render: json: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, certs ...*x509model.Certificate) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, cert := range certs {
		if err := enc.Encode(cert); err != nil {
			return fmt.Errorf("x509render: yaml: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("x509render: yaml: %w", err)
	}
	return nil
}
