// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model_test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/peek509/src/internal/der"
	x509ext "github.com/H0llyW00dzZ/peek509/src/internal/x509/extension"
	x509model "github.com/H0llyW00dzZ/peek509/src/internal/x509/model"
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

func googleDER(t testing.TB) []byte {
	t.Helper()
	block, _ := pem.Decode([]byte(strings.TrimSpace(testCertPEM)))
	require.NotNil(t, block, "test certificate must be valid PEM")
	return block.Bytes
}

func fieldValue(t *testing.T, ext *x509ext.Extension, name string) any {
	t.Helper()
	v, ok := ext.Fields.Get(name)
	require.True(t, ok, "missing field %q in %s", name, ext.Name)
	return v
}

func TestDecode_GoogleCertificate(t *testing.T) {
	data := googleDER(t)
	cert, err := x509model.Decode(data)
	require.NoError(t, err, "Decode() error")

	tests := []struct {
		name     string
		testFunc func(t *testing.T, cert *x509model.Certificate)
	}{
		{
			name: "Header Fields",
			testFunc: func(t *testing.T, cert *x509model.Certificate) {
				assert.Equal(t, 2, cert.Version)
				assert.Equal(t, "184965477381793090646509801846301594948", cert.SerialNumber)
				assert.Equal(t, "8b:27:0e:1e:c0:aa:cb:55:09:04:c3:64:ee:3d:15:44", cert.SerialHex)
				assert.Equal(t, "1.2.840.113549.1.1.11", cert.SignatureAlgorithmOID)
				assert.Equal(t, "sha256WithRSAEncryption", cert.SignatureAlgorithm)
				assert.Empty(t, cert.Warnings)
			},
		},
		{
			name: "Names Keep Encoding Order",
			testFunc: func(t *testing.T, cert *x509model.Certificate) {
				assert.Equal(t, x509model.Name{
					{OID: "2.5.4.6", Name: "Country (C)", Value: "US"},
					{OID: "2.5.4.10", Name: "Organization (O)", Value: "Google Trust Services"},
					{OID: "2.5.4.3", Name: "Common Name (CN)", Value: "WR2"},
				}, cert.Issuer)
				assert.Equal(t, "Common Name (CN)=www.google.com", cert.Subject.String())
			},
		},
		{
			name: "Validity",
			testFunc: func(t *testing.T, cert *x509model.Certificate) {
				assert.True(t, cert.NotBefore.Time.Equal(time.Date(2025, 11, 24, 8, 41, 5, 0, time.UTC)))
				assert.True(t, cert.NotAfter.Time.Equal(time.Date(2026, 2, 16, 8, 41, 4, 0, time.UTC)))
				assert.Equal(t, "2026-02-16T08:41:04Z", cert.NotAfter.String())
			},
		},
		{
			name: "EC Public Key",
			testFunc: func(t *testing.T, cert *x509model.Certificate) {
				require.Equal(t, x509model.KeyECDSA, cert.PublicKey.Kind)
				assert.Nil(t, cert.PublicKey.RSA)
				require.NotNil(t, cert.PublicKey.ECDSA)
				assert.Equal(t, "1.2.840.10045.3.1.7", cert.PublicKey.ECDSA.CurveOID)
				assert.Equal(t, "prime256v1", cert.PublicKey.ECDSA.CurveName)
				assert.True(t, strings.HasPrefix(cert.PublicKey.ECDSA.PointHex, "04:a9:3a:b5:0a"), "unexpected point %s", cert.PublicKey.ECDSA.PointHex)
				assert.Len(t, cert.PublicKey.ECDSA.PointHex, 65*3-1)
			},
		},
		{
			name: "Fingerprint And Signature",
			testFunc: func(t *testing.T, cert *x509model.Certificate) {
				assert.Equal(t, "cf9bd95920bbb82f429e94cd4f3feb8561415d9e2417fee28505e46230a3e121", cert.Fingerprint)
				sum := sha256.Sum256(data)
				assert.Equal(t, hex.EncodeToString(sum[:]), cert.Fingerprint)
				assert.True(t, strings.HasPrefix(cert.Signature, "4f:94:01:44"), "unexpected signature %s", cert.Signature)
				assert.Len(t, cert.Signature, 256*3-1)
				assert.Equal(t, data, cert.Raw)
			},
		},
		{
			name: "Extensions In Order",
			testFunc: func(t *testing.T, cert *x509model.Certificate) {
				kinds := make([]x509ext.Kind, len(cert.Extensions))
				for i, ext := range cert.Extensions {
					kinds[i] = ext.Kind
				}
				assert.Equal(t, []x509ext.Kind{
					x509ext.KindKeyUsage,
					x509ext.KindExtendedKeyUsage,
					x509ext.KindBasicConstraints,
					x509ext.KindSubjectKeyIdentifier,
					x509ext.KindAuthorityKeyIdentifier,
					x509ext.KindUnsupported,
					x509ext.KindSubjectAltName,
					x509ext.KindUnsupported,
					x509ext.KindUnsupported,
					x509ext.KindUnsupported,
				}, kinds)

				assert.Equal(t, "authorityInfoAccess", cert.Extensions[5].Name)
				assert.Equal(t, "ctPrecertificateSCTs", cert.Extensions[9].Name)
				assert.NotEmpty(t, cert.Extensions[9].Raw)
			},
		},
		{
			name: "Decoded Extensions",
			testFunc: func(t *testing.T, cert *x509model.Certificate) {
				ku, ok := cert.Extension(x509ext.KindKeyUsage)
				require.True(t, ok)
				assert.True(t, ku.Critical)
				assert.Equal(t, true, fieldValue(t, ku, "digitalSignature"))
				assert.Equal(t, false, fieldValue(t, ku, "keyCertSign"))

				eku, ok := cert.Extension(x509ext.KindExtendedKeyUsage)
				require.True(t, ok)
				assert.Equal(t, []string{"TLS Web Server Authentication"}, eku.Fields.Names())

				bc, ok := cert.Extension(x509ext.KindBasicConstraints)
				require.True(t, ok)
				assert.True(t, bc.Critical)
				assert.Equal(t, x509ext.Fields{{Name: "isCA", Value: false}}, bc.Fields)

				ski, ok := cert.Extension(x509ext.KindSubjectKeyIdentifier)
				require.True(t, ok)
				assert.Equal(t, "1f:e3:9c:ba:51:b5:9e:e2:cd:9a:e3:e6:99:a8:3d:b6:38:42:5a:26", fieldValue(t, ski, "identifier"))

				aki, ok := cert.Extension(x509ext.KindAuthorityKeyIdentifier)
				require.True(t, ok)
				assert.Equal(t, "de:1b:1e:ed:79:15:d4:3e:37:24:c3:21:bb:ec:34:39:6d:42:b2:30", fieldValue(t, aki, "keyIdentifier"))

				san, ok := cert.Extension(x509ext.KindSubjectAltName)
				require.True(t, ok)
				assert.Equal(t, []string{"www.google.com"}, fieldValue(t, san, "dns"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, cert)
		})
	}
}

func TestBuild_StructuralMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		field string
	}{
		{
			name:  "Not A Sequence",
			input: []byte{0x05, 0x00},
			field: "certificate",
		},
		{
			name:  "Two Elements",
			input: []byte{0x30, 0x04, 0x30, 0x00, 0x30, 0x00},
			field: "certificate",
		},
		{
			name:  "Four Elements",
			input: []byte{0x30, 0x09, 0x30, 0x00, 0x30, 0x00, 0x03, 0x01, 0x00, 0x05, 0x00},
			field: "certificate",
		},
		{
			name:  "TBS Not A Sequence",
			input: []byte{0x30, 0x08, 0x02, 0x01, 0x01, 0x30, 0x00, 0x03, 0x01, 0x00},
			field: "tbsCertificate",
		},
		{
			name:  "Signature Algorithm Not A Sequence",
			input: []byte{0x30, 0x07, 0x30, 0x00, 0x05, 0x00, 0x03, 0x01, 0x00},
			field: "signatureAlgorithm",
		},
		{
			name:  "Signature Not A Bit String",
			input: []byte{0x30, 0x07, 0x30, 0x00, 0x30, 0x00, 0x04, 0x01, 0x00},
			field: "signatureValue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert, err := x509model.Decode(tt.input)
			assert.Nil(t, cert, "no partial model on structural failure")
			require.Error(t, err)
			assert.True(t, errors.Is(err, x509model.ErrStructuralMismatch), "expected ErrStructuralMismatch, got %v", err)

			var buildErr *x509model.BuildError
			require.True(t, errors.As(err, &buildErr))
			assert.Equal(t, tt.field, buildErr.Field)
		})
	}
}

func TestBuild_NilRoot(t *testing.T) {
	_, err := x509model.Build(nil, nil)
	assert.ErrorIs(t, err, x509model.ErrStructuralMismatch)
}

func TestDecode_InvalidDER(t *testing.T) {
	data := googleDER(t)

	cert, err := x509model.Decode(data[:len(data)-10])
	assert.Nil(t, cert)
	assert.True(t, errors.Is(err, der.ErrLengthOverflow), "expected DER error, got %v", err)

	cert, err = x509model.Decode(nil)
	assert.Nil(t, cert)
	assert.True(t, errors.Is(err, der.ErrEmpty), "expected ErrEmpty, got %v", err)
}

func TestDecode_Deterministic(t *testing.T) {
	data := googleDER(t)

	first, err := x509model.Decode(data)
	require.NoError(t, err)
	second, err := x509model.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecode_Concurrent(t *testing.T) {
	data := googleDER(t)
	want, err := x509model.Decode(data)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				got, err := x509model.Decode(data)
				if assert.NoError(t, err) {
					assert.Equal(t, want, got)
				}
			}
		}()
	}
	wg.Wait()
}

func FuzzDecode(f *testing.F) {
	block, _ := pem.Decode([]byte(strings.TrimSpace(testCertPEM)))
	f.Add(block.Bytes)
	f.Add([]byte{0x30, 0x07, 0x30, 0x00, 0x30, 0x00, 0x03, 0x01, 0x00})
	f.Add([]byte{0x30, 0x0b, 0x30, 0x04, 0xa3, 0x02, 0x05, 0x00, 0x30, 0x00, 0x03, 0x01, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		cert, err := x509model.Decode(data)
		if (cert == nil) == (err == nil) {
			t.Fatalf("exactly one of certificate and error expected, got %v and %v", cert, err)
		}
		if cert != nil && len(cert.Fingerprint) != 64 {
			t.Fatalf("fingerprint %q is not 64 hex characters", cert.Fingerprint)
		}
	})
}
