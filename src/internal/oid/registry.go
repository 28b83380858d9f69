// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package oid

import "fmt"

// Public key algorithms.
const (
	RSAEncryption = "1.2.840.113549.1.1.1"
	ECPublicKey   = "1.2.840.10045.2.1"
	Ed25519       = "1.3.101.112"
	Ed448         = "1.3.101.113"
)

// Certificate extensions with a dedicated decoder.
const (
	ExtSubjectKeyIdentifier   = "2.5.29.14"
	ExtKeyUsage               = "2.5.29.15"
	ExtSubjectAltName         = "2.5.29.17"
	ExtBasicConstraints       = "2.5.29.19"
	ExtAuthorityKeyIdentifier = "2.5.29.35"
	ExtExtendedKeyUsage       = "2.5.29.37"
)

var attributes = map[string]string{
	"2.5.4.3":              "Common Name (CN)",
	"2.5.4.4":              "Surname (SN)",
	"2.5.4.5":              "Serial Number",
	"2.5.4.6":              "Country (C)",
	"2.5.4.7":              "Locality (L)",
	"2.5.4.8":              "State (S)",
	"2.5.4.9":              "Street",
	"2.5.4.10":             "Organization (O)",
	"2.5.4.11":             "Organizational Unit (OU)",
	"2.5.4.12":             "Title",
	"2.5.4.17":             "Postal Code",
	"2.5.4.42":             "Given Name",
	"2.5.4.97":             "Organization Identifier",
	"1.2.840.113549.1.9.1": "Email",

	"0.9.2342.19200300.100.1.25": "Domain Component (DC)",
}

var algorithms = map[string]string{
	RSAEncryption: "RSA",
	ECPublicKey:   "ECDSA",
	Ed25519:       "Ed25519",
	Ed448:         "Ed448",

	"1.2.840.113549.1.1.4":  "md5WithRSAEncryption",
	"1.2.840.113549.1.1.5":  "sha1WithRSAEncryption",
	"1.2.840.113549.1.1.10": "RSASSA-PSS",
	"1.2.840.113549.1.1.11": "sha256WithRSAEncryption",
	"1.2.840.113549.1.1.12": "sha384WithRSAEncryption",
	"1.2.840.113549.1.1.13": "sha512WithRSAEncryption",
	"1.2.840.10045.4.1":     "ecdsa-with-SHA1",
	"1.2.840.10045.4.3.2":   "ecdsa-with-SHA256",
	"1.2.840.10045.4.3.3":   "ecdsa-with-SHA384",
	"1.2.840.10045.4.3.4":   "ecdsa-with-SHA512",

	"2.16.840.1.101.3.4.3.17": "ML-DSA-44",
	"2.16.840.1.101.3.4.3.18": "ML-DSA-65",
	"2.16.840.1.101.3.4.3.19": "ML-DSA-87",
}

var extensions = map[string]string{
	ExtSubjectKeyIdentifier:   "subjectKeyIdentifier",
	ExtKeyUsage:               "keyUsage",
	ExtSubjectAltName:         "subjectAltName",
	ExtBasicConstraints:       "basicConstraints",
	ExtAuthorityKeyIdentifier: "authorityKeyIdentifier",
	ExtExtendedKeyUsage:       "extendedKeyUsage",

	"2.5.29.18":               "issuerAltName",
	"2.5.29.30":               "nameConstraints",
	"2.5.29.31":               "cRLDistributionPoints",
	"2.5.29.32":               "certificatePolicies",
	"2.5.29.33":               "policyMappings",
	"2.5.29.36":               "policyConstraints",
	"2.5.29.54":               "inhibitAnyPolicy",
	"1.3.6.1.5.5.7.1.1":       "authorityInfoAccess",
	"1.3.6.1.5.5.7.1.3":       "qcStatements",
	"1.3.6.1.5.5.7.1.24":      "tlsFeature",
	"1.3.6.1.4.1.11129.2.4.2": "ctPrecertificateSCTs",
	"1.3.6.1.4.1.11129.2.4.3": "ctPrecertificatePoison",
}

var curves = map[string]string{
	"1.2.840.10045.3.1.7": "prime256v1",
	"1.3.132.0.34":        "secp384r1",
	"1.3.132.0.35":        "secp521r1",
	"1.3.132.0.10":        "secp256k1",
}

var purposes = map[string]string{
	"1.3.6.1.5.5.7.3.1":      "TLS Web Server Authentication",
	"1.3.6.1.5.5.7.3.2":      "TLS Web Client Authentication",
	"1.3.6.1.5.5.7.3.3":      "Code Signing",
	"1.3.6.1.5.5.7.3.4":      "Email Protection",
	"1.3.6.1.5.5.7.3.8":      "Time Stamping",
	"1.3.6.1.5.5.7.3.9":      "OCSP Signing",
	"2.5.29.37.0":            "Any Extended Key Usage",
	"1.3.6.1.4.1.311.10.3.4": "Microsoft Encrypting File System",
	"1.3.6.1.4.1.311.20.2.2": "Microsoft Smartcard Logon",
}

// tables is the lookup order used by Name.
var tables = []map[string]string{attributes, algorithms, extensions, curves}

// Name returns the registered name of a dotted OID from any table.
func Name(dotted string) (string, bool) {
	for _, t := range tables {
		if name, ok := t[dotted]; ok {
			return name, true
		}
	}
	return "", false
}

// AttributeName returns the display name of a distinguished name attribute,
// falling back to "OID <dotted>" for attributes that are not registered.
func AttributeName(dotted string) string {
	if name, ok := attributes[dotted]; ok {
		return name
	}
	return fmt.Sprintf("OID %s", dotted)
}

// AlgorithmName returns the name of a signature or public key algorithm, or
// the OID itself when unknown.
func AlgorithmName(dotted string) string {
	if name, ok := algorithms[dotted]; ok {
		return name
	}
	return dotted
}

// ExtensionName returns the registered name of an extension, or the OID
// itself when unknown.
func ExtensionName(dotted string) string {
	if name, ok := extensions[dotted]; ok {
		return name
	}
	return dotted
}

// CurveName returns the name of a named elliptic curve.
func CurveName(dotted string) (string, bool) {
	name, ok := curves[dotted]
	return name, ok
}

// Purpose returns the label of an extended key usage purpose. Unregistered
// purposes are labelled "Unknown (<oid>)" so they are never dropped.
func Purpose(dotted string) string {
	if label, ok := purposes[dotted]; ok {
		return label
	}
	return fmt.Sprintf("Unknown (%s)", dotted)
}
