// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/peek509/src/internal/x509/certs"
)

// Test certificate from www.google.com (valid until February 16, 2026)
const testCertPEM = `
-----BEGIN CERTIFICATE-----
MIIEVzCCAz+gAwIBAgIRAIsnDh7AqstVCQTDZO49FUQwDQYJKoZIhvcNAQELBQAw
OzELMAkGA1UEBhMCVVMxHjAcBgNVBAoTFUdvb2dsZSBUcnVzdCBTZXJ2aWNlczEM
MAoGA1UEAxMDV1IyMB4XDTI1MTEyNDA4NDEwNVoXDTI2MDIxNjA4NDEwNFowGTEX
MBUGA1UEAxMOd3d3Lmdvb2dsZS5jb20wWTATBgcqhkjOPQIBBggqhkjOPQMBBwNC
AASpOrUKgQJxuBGxizx+kmyx5RrD4jQmo8qLKSuwJqGHq32bVzWZGD67H9R4OZrU
dvyPaKf5c8xcR0dfErljBgc9o4ICQTCCAj0wDgYDVR0PAQH/BAQDAgeAMBMGA1Ud
JQQMMAoGCCsGAQUFBwMBMAwGA1UdEwEB/wQCMAAwHQYDVR0OBBYEFB/jnLpRtZ7i
zZrj5pmoPbY4QlomMB8GA1UdIwQYMBaAFN4bHu15FdQ+NyTDIbvsNDltQrIwMFgG
CCsGAQUFBwEBBEwwSjAhBggrBgEFBQcwAYYVaHR0cDovL28ucGtpLmdvb2cvd3Iy
MCUGCCsGAQUFBzAChhlodHRwOi8vaS5wa2kuZ29vZy93cjIuY3J0MBkGA1UdEQQS
MBCCDnd3dy5nb29nbGUuY29tMBMGA1UdIAQMMAowCAYGZ4EMAQIBMDYGA1UdHwQv
MC0wK6ApoCeGJWh0dHA6Ly9jLnBraS5nb29nL3dyMi9HU3lUMU40UEJyZy5jcmww
ggEEBgorBgEEAdZ5AgQCBIH1BIHyAPAAdwCWl2S/VViXrfdDh2g3CEJ36fA61fak
8zZuRqQ/D8qpxgAAAZq1PQh6AAAEAwBIMEYCIQDkvhCgZXnoybm66RiqqWXZN6qE
VzPoPHn/kyXZ7Y55yAIhALTMfGlCgnC9W0iu+cR9qCmOwsEr5k6Bl7Ub2w7GCUIu
AHUASZybad4dfOz8Nt7Nh2SmuFuvCoeAGdFVUvvp6ynd+MMAAAGatT0IWAAABAMA
RjBEAiBQITcviDubQYQiIxBwjcgmkl4CH1x4RzykXJrp8cCLKwIgFpdUBEBwTjCw
wTjI3H2paYucltfUre6q/vBei3HhNqcwDQYJKoZIhvcNAQELBQADggEBAE+UAURG
T3JZxq6fjAK5Espfe49Wb0mz1kCTwNY56sbYP/Fa+Kb7kVluDIFbMN2rspADwKBu
FR7QVda3zEIu4Hj1DUmD7ecmVYCxLQ241OYdice4AfJTwDVJVymdQPFoLBP27dWK
3izwcfkPSgXIT8nHcEvDvXljn7n+n3XXuzh1Y1vFnFUa5E69JQFXXDuu/a7LiEXx
uB5j0Xga7DgFyHHHnz7zSiFr37NBb0/CH/31fkgaQPj7Fr5dyCMzMg1rQe1FGOM6
fXT8WHASUpqRebQfDy2TPE7sjve2NenS36NeiiVZXhBo5MHvGCBY3W8OYljK4zeU
uugY3q/5At03UHw=
-----END CERTIFICATE-----
`

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	encryptedPEM = `
-----BEGIN CERTIFICATE-----
Proc-Type: 4,ENCRYPTED
DEK-Info: AES-128-CBC,00112233445566778899AABBCCDDEEFF

MAA=
-----END CERTIFICATE-----
`

	brokenArmor = "-----BEGIN CERTIFICATE-----\ninvalid-base64\n-----END CERTIFICATE-----"
)

// testCertDER returns the DER bytes of testCertPEM.
func testCertDER(t *testing.T) []byte {
	t.Helper()

	block, _ := pem.Decode([]byte(testCertPEM))
	require.NotNil(t, block, "failed to parse certificate PEM")
	return block.Bytes
}

// testCertBase64 returns the body of testCertPEM without its armor lines.
func testCertBase64() string {
	var lines []string
	for line := range strings.SplitSeq(strings.TrimSpace(testCertPEM), "\n") {
		if strings.HasPrefix(line, "-----") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func TestCertificateOperations(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, decoder *x509certs.Decoder, der []byte)
	}{
		{
			name: "Decode PEM",
			testFunc: func(t *testing.T, decoder *x509certs.Decoder, der []byte) {
				got, err := decoder.Decode([]byte(testCertPEM))
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, der, got, "expected the DER payload of the PEM block")
			},
		},
		{
			name: "Decode DER Passthrough",
			testFunc: func(t *testing.T, decoder *x509certs.Decoder, der []byte) {
				got, err := decoder.Decode(der)
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, der, got, "expected DER to pass through unchanged")

				got[0] = 0xff
				assert.Equal(t, byte(0x30), der[0], "decoded bytes must not alias the input")
			},
		},
		{
			name: "Decode Base64 Body",
			testFunc: func(t *testing.T, decoder *x509certs.Decoder, der []byte) {
				got, err := decoder.Decode([]byte(testCertBase64()))
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, der, got, "expected base64 body to decode to DER")
			},
		},
		{
			name: "Decode-Encode-Decode Round Trip",
			testFunc: func(t *testing.T, decoder *x509certs.Decoder, der []byte) {
				encoded := decoder.EncodePEM(der)
				assert.NotEmpty(t, encoded, "EncodePEM() returned empty result")

				got, err := decoder.Decode(encoded)
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, der, got, "round trip changed the DER bytes")
			},
		},
		{
			name: "Output Is Parsable By crypto/x509",
			testFunc: func(t *testing.T, decoder *x509certs.Decoder, _ []byte) {
				got, err := decoder.Decode([]byte(testCertPEM))
				require.NoError(t, err, "Decode() error")

				cert, err := x509.ParseCertificate(got)
				require.NoError(t, err, "ParseCertificate() error")

				assert.Equal(t, "www.google.com", cert.Subject.CommonName, "expected CommonName www.google.com")
			},
		},
	}

	decoder := x509certs.New()
	der := testCertDER(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, decoder, der)
		})
	}
}

func TestDecodeCertificate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected error
	}{
		{
			name:     "Invalid PEM Block Type",
			input:    []byte(invalidPEM),
			expected: x509certs.ErrInvalidBlockType,
		},
		{
			name:     "Encrypted PEM",
			input:    []byte(encryptedPEM),
			expected: x509certs.ErrEncryptedPEM,
		},
		{
			name:     "Broken PEM Armor",
			input:    []byte(brokenArmor),
			expected: x509certs.ErrInvalidPEMBlock,
		},
		{
			name:     "Plain Text",
			input:    []byte("not a certificate"),
			expected: x509certs.ErrUnrecognizedInput,
		},
		{
			name:     "Base64 Of Non-DER",
			input:    []byte("aGVsbG8gd29ybGQ="),
			expected: x509certs.ErrUnrecognizedInput,
		},
		{
			name:     "Empty Input",
			input:    nil,
			expected: x509certs.ErrUnrecognizedInput,
		},
		{
			name:     "Whitespace Only",
			input:    []byte(" \n\t "),
			expected: x509certs.ErrUnrecognizedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoder := x509certs.New()
			_, err := decoder.Decode(tt.input)
			assert.ErrorIs(t, err, tt.expected, "expected specific error")
		})
	}
}

func TestCertificate_IsPEM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{
			name:     "Valid PEM",
			input:    []byte(testCertPEM),
			expected: true,
		},
		{
			name:     "Invalid PEM",
			input:    []byte("not a pem block"),
			expected: false,
		},
		{
			name:     "Empty Input",
			input:    []byte(""),
			expected: false,
		},
		{
			name:     "PEM-like but invalid base64",
			input:    []byte(brokenArmor),
			expected: false, // pem.Decode fails on invalid base64
		},
		{
			name:     "DER format (binary)",
			input:    []byte{0x30, 0x82, 0x01, 0x23}, // DER sequence
			expected: false,
		},
	}

	decoder := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := decoder.IsPEM(tt.input)
			assert.Equal(t, tt.expected, result, "IsPEM() result incorrect")
		})
	}
}

func TestCertificate_EncodeMultiplePEM(t *testing.T) {
	decoder := x509certs.New()
	der := testCertDER(t)

	tests := []struct {
		name         string
		certs        [][]byte
		expectBlocks int
	}{
		{
			name:         "Single Certificate",
			certs:        [][]byte{der},
			expectBlocks: 1,
		},
		{
			name:         "Multiple Certificates",
			certs:        [][]byte{der, der},
			expectBlocks: 2,
		},
		{
			name:         "Empty List",
			certs:        [][]byte{},
			expectBlocks: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := decoder.EncodeMultiplePEM(tt.certs)

			if tt.expectBlocks == 0 {
				assert.Empty(t, encoded, "expected empty result")
				return
			}

			blockCount := 0
			rest := encoded
			for len(rest) > 0 {
				block, remainder := pem.Decode(rest)
				if block == nil {
					break
				}
				blockCount++
				rest = remainder
			}

			assert.Equal(t, tt.expectBlocks, blockCount, "expected correct number of PEM blocks")
		})
	}
}

func TestCertificate_DecodeMultiple(t *testing.T) {
	decoder := x509certs.New()
	der := testCertDER(t)

	tests := []struct {
		name        string
		input       []byte
		expectCount int
		expectError error
	}{
		{
			name:        "Single PEM Certificate",
			input:       []byte(testCertPEM),
			expectCount: 1,
		},
		{
			name:        "Multiple PEM Certificates",
			input:       decoder.EncodeMultiplePEM([][]byte{der, der}),
			expectCount: 2,
		},
		{
			name:        "DER Format",
			input:       der,
			expectCount: 1,
		},
		{
			name:        "Base64 Format",
			input:       []byte(testCertBase64()),
			expectCount: 1,
		},
		{
			name:        "Invalid PEM Type",
			input:       []byte(invalidPEM),
			expectError: x509certs.ErrInvalidBlockType,
		},
		{
			name:        "Encrypted Block After Valid One",
			input:       append([]byte(testCertPEM), encryptedPEM...),
			expectError: x509certs.ErrEncryptedPEM,
		},
		{
			name:        "Unrecognized Input",
			input:       []byte("definitely not a certificate"),
			expectError: x509certs.ErrUnrecognizedInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, err := decoder.DecodeMultiple(tt.input)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError, "expected specific error")
				return
			}

			require.NoError(t, err, "unexpected error")

			assert.Len(t, certs, tt.expectCount, "expected correct number of certificates")
			for _, got := range certs {
				assert.Equal(t, der, got, "expected every entry to be the test certificate")
			}
		})
	}
}

func TestCertificate_EncodePEM(t *testing.T) {
	decoder := x509certs.New()
	der := testCertDER(t)

	encoded := decoder.EncodePEM(der)
	assert.NotEmpty(t, encoded, "EncodePEM() returned empty result")

	decodedBlock, _ := pem.Decode(encoded)
	require.NotNil(t, decodedBlock, "failed to decode encoded PEM")

	assert.Equal(t, "CERTIFICATE", decodedBlock.Type, "expected block type CERTIFICATE")
	assert.Equal(t, der, decodedBlock.Bytes, "expected PEM body to carry the DER bytes")
}
