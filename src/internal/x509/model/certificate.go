// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model

import (
	"fmt"
	"strings"
	"time"

	x509ext "github.com/H0llyW00dzZ/peek509/src/internal/x509/extension"
)

// Attribute is one type/value pair of a distinguished name.
type Attribute struct {
	OID   string `json:"oid" yaml:"oid"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Name is an ordered distinguished name.
type Name []Attribute

// String joins the attributes as "Name=Value, Name=Value" in encoding order.
func (n Name) String() string {
	parts := make([]string, len(n))
	for i, attr := range n {
		parts[i] = attr.Name + "=" + attr.Value
	}
	return strings.Join(parts, ", ")
}

// Timestamp is a validity bound. When the encoded time could not be
// interpreted, Time is zero and Raw holds the original string.
type Timestamp struct {
	Time time.Time
	Raw  string
}

// String returns the time in RFC 3339 form, or the raw string.
func (t Timestamp) String() string {
	if t.Time.IsZero() {
		return t.Raw
	}
	return t.Time.UTC().Format(time.RFC3339)
}

// MarshalText encodes the timestamp as [Timestamp.String].
func (t Timestamp) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// KeyKind discriminates the public key variants.
type KeyKind uint8

const (
	KeyUnknown KeyKind = iota
	KeyRSA
	KeyECDSA
)

func (k KeyKind) String() string {
	switch k {
	case KeyRSA:
		return "RSA"
	case KeyECDSA:
		return "ECDSA"
	case KeyUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("KeyKind(%d)", uint8(k))
	}
}

// MarshalText encodes the kind as its name.
func (k KeyKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// RSAKey holds the components of an RSA public key.
type RSAKey struct {
	ModulusHex string `json:"modulus" yaml:"modulus"`
	Exponent   int64  `json:"exponent" yaml:"exponent"`
	Bits       int    `json:"bits" yaml:"bits"`
}

// ECKey holds a named-curve elliptic curve public key.
type ECKey struct {
	CurveOID  string `json:"curveOid" yaml:"curveOid"`
	CurveName string `json:"curveName,omitempty" yaml:"curveName,omitempty"`
	PointHex  string `json:"point" yaml:"point"`
}

// PublicKey is the subjectPublicKeyInfo of a certificate. At most one of RSA
// and ECDSA is set, matching Kind.
type PublicKey struct {
	Kind         KeyKind `json:"kind" yaml:"kind"`
	AlgorithmOID string  `json:"algorithmOid" yaml:"algorithmOid"`
	Algorithm    string  `json:"algorithm" yaml:"algorithm"`
	RSA          *RSAKey `json:"rsa,omitempty" yaml:"rsa,omitempty"`
	ECDSA        *ECKey  `json:"ecdsa,omitempty" yaml:"ecdsa,omitempty"`
}

// Certificate is the structured view of one X.509 certificate.
type Certificate struct {
	// Version is the encoded version number; 2 means X.509 v3.
	Version               int                 `json:"version" yaml:"version"`
	SerialNumber          string              `json:"serialNumber" yaml:"serialNumber"`
	SerialHex             string              `json:"serialHex" yaml:"serialHex"`
	SignatureAlgorithmOID string              `json:"signatureAlgorithmOid" yaml:"signatureAlgorithmOid"`
	SignatureAlgorithm    string              `json:"signatureAlgorithm" yaml:"signatureAlgorithm"`
	Issuer                Name                `json:"issuer" yaml:"issuer"`
	Subject               Name                `json:"subject" yaml:"subject"`
	NotBefore             Timestamp           `json:"notBefore" yaml:"notBefore"`
	NotAfter              Timestamp           `json:"notAfter" yaml:"notAfter"`
	PublicKey             PublicKey           `json:"publicKey" yaml:"publicKey"`
	Fingerprint           string              `json:"fingerprint" yaml:"fingerprint"`
	Signature             string              `json:"signature" yaml:"signature"`
	Extensions            []x509ext.Extension `json:"extensions" yaml:"extensions"`
	Warnings              []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Raw is the complete DER encoding the model was built from.
	Raw []byte `json:"-" yaml:"-"`
}

// Extension returns the first extension of the given kind.
func (c *Certificate) Extension(kind x509ext.Kind) (*x509ext.Extension, bool) {
	for i := range c.Extensions {
		if c.Extensions[i].Kind == kind {
			return &c.Extensions[i], true
		}
	}
	return nil, false
}
