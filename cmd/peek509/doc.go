// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// peek509 is a command-line tool for decoding and inspecting X.509
// certificates without a trust store or network access.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/peek509/cmd/peek509@latest
//
// # Usage
//
//	peek509 [FILE] [FLAGS]
//
// With no FILE, or when FILE is -, the certificate is read from stdin.
//
// # Flags
//
//	-f, --format            Output format: text, table, json or yaml (default: text)
//	-o, --output            Destination file (default: stdout)
//	-c, --config            Configuration file (JSON or YAML)
//	-a, --all               Decode every certificate in a PEM bundle
//	    --show-pem          Append the PEM encoding to text and table output
//	    --signature-preview Signature bytes shown at each end (0 for all)
//
// # Environment
//
//	PEEK509_CONFIG_FILE  Configuration file used when --config is not given
//	PEEK509_FORMAT       Output format overriding the configuration file
//
// # Examples
//
// Inspect a certificate:
//
//	peek509 cert.pem
//
// Produce JSON from a DER file:
//
//	peek509 -f json cert.der > cert.json
//
// Decode a whole bundle as a markdown table:
//
//	peek509 --all --format table chain.pem
//
// Fetch and inspect a live certificate with OpenSSL:
//
//	openssl s_client -connect example.com:443 </dev/null 2>/dev/null | peek509
//
// Warnings about malformed fields are written to stderr; the decoded output on
// stdout is still produced.
package main
