// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/peek509/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/peek509/src/internal/x509/certs"
	x509ext "github.com/H0llyW00dzZ/peek509/src/internal/x509/extension"
	x509model "github.com/H0llyW00dzZ/peek509/src/internal/x509/model"
)

// Table writes cert to w as a markdown document made of tables: a summary,
// the subject and issuer attributes, and the extensions with their decoded
// values and warnings.
func Table(w io.Writer, cert *x509model.Certificate, opts Options) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString("## Certificate\n\n")
	summary := [][]string{
		{"Version", strconv.Itoa(cert.Version + 1)},
		{"Serial Number", cert.SerialNumber},
		{"Serial (hex)", cert.SerialHex},
		{"Signature Algorithm", labelled(cert.SignatureAlgorithm, cert.SignatureAlgorithmOID)},
		{"Not Before", cert.NotBefore.String()},
		{"Not After", cert.NotAfter.String()},
		{"Public Key", keySummary(cert.PublicKey)},
		{"Signature", SignaturePreview(cert.Signature, opts.SignaturePreview)},
		{"SHA-256 Fingerprint", cert.Fingerprint},
	}
	if err := markdownTable(buf, []string{"Field", "Value"}, summary); err != nil {
		return err
	}

	for _, section := range []struct {
		title string
		name  x509model.Name
	}{
		{"Subject", cert.Subject},
		{"Issuer", cert.Issuer},
	} {
		fmt.Fprintf(buf, "\n### %s\n\n", section.title)
		rows := make([][]string, 0, len(section.name))
		for _, attr := range section.name {
			rows = append(rows, []string{attr.Name, attr.OID, attr.Value})
		}
		if err := markdownTable(buf, []string{"Attribute", "OID", "Value"}, rows); err != nil {
			return err
		}
	}

	if len(cert.Extensions) > 0 {
		buf.WriteString("\n### Extensions\n\n")
		rows := make([][]string, 0, len(cert.Extensions))
		for _, ext := range cert.Extensions {
			rows = append(rows, []string{
				ext.Name,
				ext.OID,
				strconv.FormatBool(ext.Critical),
				ext.Kind.String(),
				extensionSummary(ext.Fields, ext.Raw.String()),
				strings.Join(ext.Warnings, "; "),
			})
		}
		header := []string{"Name", "OID", "Critical", "Type", "Value", "Warnings"}
		if err := markdownTable(buf, header, rows); err != nil {
			return err
		}
	}

	if len(cert.Warnings) > 0 {
		buf.WriteString("\n### Warnings\n\n")
		for _, warning := range cert.Warnings {
			fmt.Fprintf(buf, "- %s\n", warning)
		}
	}

	if opts.ShowPEM && len(cert.Raw) > 0 {
		buf.WriteString("\n```\n")
		buf.Write(x509certs.New().EncodePEM(cert.Raw))
		buf.WriteString("```\n")
	}

	_, err := buf.WriteTo(w)
	return err
}

func markdownTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("x509render: table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("x509render: table: %w", err)
	}
	return nil
}

func keySummary(key x509model.PublicKey) string {
	switch key.Kind {
	case x509model.KeyRSA:
		return fmt.Sprintf("RSA %d-bit, e=%d", key.RSA.Bits, key.RSA.Exponent)
	case x509model.KeyECDSA:
		return "ECDSA " + labelled(key.ECDSA.CurveName, key.ECDSA.CurveOID)
	default:
		return labelled(key.Algorithm, key.AlgorithmOID)
	}
}

// extensionSummary flattens decoded fields into one cell. Extensions without
// fields show their raw hex instead.
func extensionSummary(fields x509ext.Fields, raw string) string {
	if len(fields) == 0 {
		return raw
	}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field.Name+"="+FormatValue(field.Value))
	}
	return strings.Join(parts, "; ")
}
