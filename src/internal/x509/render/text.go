// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/H0llyW00dzZ/peek509/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/peek509/src/internal/x509/certs"
	x509ext "github.com/H0llyW00dzZ/peek509/src/internal/x509/extension"
	x509model "github.com/H0llyW00dzZ/peek509/src/internal/x509/model"
)

// Text writes a human-readable report of cert to w.
//
// Subject and issuer are shown as tables. Each extension gets its own block
// whose layout depends on its kind, and every warning is printed inline as a
// "Warning: " line next to the part it concerns.
func Text(w io.Writer, cert *x509model.Certificate, opts Options) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	fmt.Fprintln(buf, "Certificate:")
	fmt.Fprintf(buf, "  Version: %d (0x%x)\n", cert.Version+1, cert.Version)
	fmt.Fprintf(buf, "  Serial Number: %s\n", cert.SerialNumber)
	if cert.SerialHex != "" {
		fmt.Fprintf(buf, "                 %s\n", cert.SerialHex)
	}
	fmt.Fprintf(buf, "  Signature Algorithm: %s\n", labelled(cert.SignatureAlgorithm, cert.SignatureAlgorithmOID))

	fmt.Fprintln(buf, "  Issuer:")
	if err := nameTable(buf, cert.Issuer); err != nil {
		return err
	}

	fmt.Fprintln(buf, "  Validity:")
	fmt.Fprintf(buf, "    Not Before: %s\n", cert.NotBefore)
	fmt.Fprintf(buf, "    Not After:  %s\n", cert.NotAfter)

	fmt.Fprintln(buf, "  Subject:")
	if err := nameTable(buf, cert.Subject); err != nil {
		return err
	}

	writePublicKey(buf, cert.PublicKey)

	fmt.Fprintf(buf, "  Extensions: %d\n", len(cert.Extensions))
	for _, ext := range cert.Extensions {
		writeExtension(buf, ext)
	}

	fmt.Fprintf(buf, "  Signature: %s\n", SignaturePreview(cert.Signature, opts.SignaturePreview))
	fmt.Fprintf(buf, "  SHA-256 Fingerprint: %s\n", cert.Fingerprint)

	if len(cert.Warnings) > 0 {
		fmt.Fprintln(buf, "Warnings:")
		for _, warning := range cert.Warnings {
			fmt.Fprintf(buf, "  Warning: %s\n", warning)
		}
	}

	if opts.ShowPEM && len(cert.Raw) > 0 {
		buf.WriteByte('\n')
		buf.Write(x509certs.New().EncodePEM(cert.Raw))
	}

	_, err := buf.WriteTo(w)
	return err
}

// nameTable renders a distinguished name as a table of attributes.
func nameTable(w io.Writer, name x509model.Name) error {
	if len(name) == 0 {
		_, err := io.WriteString(w, "    (empty)\n")
		return err
	}

	table := tablewriter.NewTable(w)
	table.Header([]string{"Attribute", "OID", "Value"})

	rows := make([][]string, 0, len(name))
	for _, attr := range name {
		rows = append(rows, []string{attr.Name, attr.OID, attr.Value})
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("x509render: name table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("x509render: name table: %w", err)
	}
	return nil
}

func writePublicKey(w io.Writer, key x509model.PublicKey) {
	fmt.Fprintln(w, "  Public Key:")
	fmt.Fprintf(w, "    Algorithm: %s\n", labelled(key.Algorithm, key.AlgorithmOID))

	switch key.Kind {
	case x509model.KeyRSA:
		fmt.Fprintf(w, "    Type: RSA %d-bit\n", key.RSA.Bits)
		fmt.Fprintf(w, "    Exponent: %d\n", key.RSA.Exponent)
		fmt.Fprintf(w, "    Modulus: %s\n", key.RSA.ModulusHex)
	case x509model.KeyECDSA:
		fmt.Fprintln(w, "    Type: ECDSA")
		fmt.Fprintf(w, "    Curve: %s\n", labelled(key.ECDSA.CurveName, key.ECDSA.CurveOID))
		fmt.Fprintf(w, "    Point: %s\n", key.ECDSA.PointHex)
	default:
		fmt.Fprintln(w, "    Type: Unknown")
	}
}

func writeExtension(w io.Writer, ext x509ext.Extension) {
	critical := ""
	if ext.Critical {
		critical = " critical"
	}
	fmt.Fprintf(w, "    %s (%s)%s\n", ext.Name, ext.OID, critical)

	switch ext.Kind {
	case x509ext.KindKeyUsage:
		var set []string
		for _, field := range ext.Fields {
			if on, _ := field.Value.(bool); on {
				set = append(set, field.Name)
			}
		}
		if len(ext.Fields) > 0 {
			fmt.Fprintf(w, "      Usage: %s\n", joinOrNone(set))
		}
	case x509ext.KindExtendedKeyUsage:
		fmt.Fprintf(w, "      Purposes: %s\n", joinOrNone(ext.Fields.Names()))
	default:
		for _, field := range ext.Fields {
			fmt.Fprintf(w, "      %s: %s\n", field.Name, FormatValue(field.Value))
		}
	}

	for _, warning := range ext.Warnings {
		fmt.Fprintf(w, "      Warning: %s\n", warning)
	}
	if len(ext.Raw) > 0 {
		fmt.Fprintf(w, "      Raw: %s\n", ext.Raw)
	}
}

// FormatValue renders an extension field value as a single line.
func FormatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case bool:
		if v {
			return "true"
		}
		return "false"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// SignaturePreview shortens a colon-separated hex signature to its first and
// last n bytes. A signature of at most 2n bytes, or n <= 0, is returned whole
// with its byte count.
func SignaturePreview(sig string, n int) string {
	if sig == "" {
		return "(empty)"
	}

	octets := strings.Split(sig, ":")
	if n <= 0 || len(octets) <= 2*n {
		return fmt.Sprintf("%s (%d bytes)", sig, len(octets))
	}

	return fmt.Sprintf("%s ... %s (%d bytes)",
		strings.Join(octets[:n], ":"),
		strings.Join(octets[len(octets)-n:], ":"),
		len(octets),
	)
}

// labelled formats a registry name with its dotted OID.
func labelled(name, dotted string) string {
	switch {
	case dotted == "":
		return name
	case name == "" || name == dotted:
		return dotted
	default:
		return name + " (" + dotted + ")"
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
