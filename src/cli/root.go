// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/peek509/src/config"
	"github.com/H0llyW00dzZ/peek509/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/peek509/src/internal/helper/posix"
	x509certs "github.com/H0llyW00dzZ/peek509/src/internal/x509/certs"
	x509model "github.com/H0llyW00dzZ/peek509/src/internal/x509/model"
	x509render "github.com/H0llyW00dzZ/peek509/src/internal/x509/render"
	"github.com/H0llyW00dzZ/peek509/src/logger"
)

// ErrNoCertificates indicates input that held no certificate at all.
var ErrNoCertificates = errors.New("cli: no certificates found in input")

// stdinName is the argument that selects standard input.
const stdinName = "-"

// options holds the parsed command-line flags.
type options struct {
	format           string
	outputFile       string
	configFile       string
	showPEM          bool
	all              bool
	signaturePreview int
}

// Execute runs the root command with the process arguments. Cancelling ctx
// stops processing between certificates.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log).ExecuteContext(ctx)
}

// NewCommand builds the peek509 root command, named after the running
// executable.
func NewCommand(version string, log logger.Logger) *cobra.Command {
	opts := &options{}
	name := posix.ExecutableName("peek509")

	cmd := &cobra.Command{
		Use:   name + " [FILE]",
		Short: "Decode and display X.509 certificates",
		Long: `peek509 decodes an X.509 certificate from PEM, DER or base64 input and
shows its fields and extensions. Malformed fields are reported as warnings
instead of aborting the decode.

With no FILE, or when FILE is -, the certificate is read from standard input.`,
		Example: fmt.Sprintf(`  %[1]s cert.pem
  %[1]s -f json cert.der
  %[1]s --all --format table chain.pem
  openssl s_client -connect example.com:443 </dev/null | %[1]s`, name),
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "", "output format: text, table, json or yaml (default from config, else text)")
	flags.StringVarP(&opts.outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	flags.StringVarP(&opts.configFile, "config", "c", "", "configuration file (JSON or YAML, default: $"+config.EnvConfigFile+")")
	flags.BoolVar(&opts.showPEM, "show-pem", false, "append the PEM encoding to text and table output")
	flags.BoolVarP(&opts.all, "all", "a", false, "decode every certificate in a PEM bundle")
	flags.IntVar(&opts.signaturePreview, "signature-preview", x509render.DefaultSignaturePreview, "signature bytes shown at each end, 0 for all")

	return cmd
}

// run reads the input, decodes each certificate and renders the result.
func run(cmd *cobra.Command, args []string, opts *options, log logger.Logger) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return err
	}

	input, err := readInput(cmd, args, cfg.Input.MaxBytes)
	if err != nil {
		return err
	}

	decoder := x509certs.New()
	var ders [][]byte
	if opts.all {
		ders, err = decoder.DecodeMultiple(input)
	} else {
		var der []byte
		der, err = decoder.Decode(input)
		ders = [][]byte{der}
	}
	if err != nil {
		return fmt.Errorf("cli: reading certificate: %w", err)
	}
	if len(ders) == 0 {
		return ErrNoCertificates
	}

	certs := make([]*x509model.Certificate, 0, len(ders))
	for i, der := range ders {
		if err := ctx.Err(); err != nil {
			return err
		}

		cert, err := x509model.Decode(der)
		if err != nil {
			return fmt.Errorf("cli: certificate %d: %w", i+1, err)
		}
		for _, warning := range cert.Warnings {
			log.Warnf("certificate %d: %s", i+1, warning)
		}
		certs = append(certs, cert)
	}

	return writeOutput(cmd, opts.outputFile, func(w io.Writer) error {
		if len(certs) == 1 {
			return x509render.Render(w, certs[0], cfg.Format(), cfg.RenderOptions())
		}
		return x509render.RenderAll(w, certs, cfg.Format(), cfg.RenderOptions())
	})
}

// applyFlags lets explicitly set flags override the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *options) error {
	flags := cmd.Flags()

	if flags.Changed("format") {
		if err := cfg.SetFormat(opts.format); err != nil {
			return err
		}
	}
	if flags.Changed("show-pem") {
		cfg.Output.ShowPEM = opts.showPEM
	}
	if flags.Changed("signature-preview") {
		cfg.Output.SignaturePreview = opts.signaturePreview
	}
	return nil
}

// readInput reads the certificate from the named file or from stdin, bounded
// by limit bytes.
func readInput(cmd *cobra.Command, args []string, limit int64) ([]byte, error) {
	var r io.Reader = cmd.InOrStdin()

	if len(args) == 1 && args[0] != stdinName {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("cli: reading input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := gc.ReadLimited(r, limit)
	if err != nil {
		return nil, fmt.Errorf("cli: reading input: %w", err)
	}
	return data, nil
}

// writeOutput renders into a pooled buffer and writes it to the output file
// or the command's stdout. Nothing is written when rendering fails.
func writeOutput(cmd *cobra.Command, outputFile string, render func(w io.Writer) error) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if err := render(buf); err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("cli: writing output file: %w", err)
		}
		return nil
	}

	_, err := buf.WriteTo(cmd.OutOrStdout())
	return err
}
