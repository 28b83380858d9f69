// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"fmt"

	"github.com/H0llyW00dzZ/peek509/src/internal/oid"
)

// Kind identifies which decoder produced an [Extension].
type Kind uint8

const (
	KindUnsupported Kind = iota
	KindBasicConstraints
	KindKeyUsage
	KindExtendedKeyUsage
	KindSubjectKeyIdentifier
	KindAuthorityKeyIdentifier
	KindSubjectAltName

	numKinds
)

// String returns the kind's identifier, e.g. "keyUsage".
func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "unsupported"
	case KindBasicConstraints:
		return "basicConstraints"
	case KindKeyUsage:
		return "keyUsage"
	case KindExtendedKeyUsage:
		return "extendedKeyUsage"
	case KindSubjectKeyIdentifier:
		return "subjectKeyIdentifier"
	case KindAuthorityKeyIdentifier:
		return "authorityKeyIdentifier"
	case KindSubjectAltName:
		return "subjectAltName"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalText encodes the kind as its identifier.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// KindOf returns the decoder kind for a dotted extension OID.
func KindOf(dotted string) Kind {
	switch dotted {
	case oid.ExtBasicConstraints:
		return KindBasicConstraints
	case oid.ExtKeyUsage:
		return KindKeyUsage
	case oid.ExtExtendedKeyUsage:
		return KindExtendedKeyUsage
	case oid.ExtSubjectKeyIdentifier:
		return KindSubjectKeyIdentifier
	case oid.ExtAuthorityKeyIdentifier:
		return KindAuthorityKeyIdentifier
	case oid.ExtSubjectAltName:
		return KindSubjectAltName
	default:
		return KindUnsupported
	}
}

// displayNames holds the human-readable name of every decoded kind.
var displayNames = [numKinds]string{
	KindBasicConstraints:       "Basic Constraints",
	KindKeyUsage:               "Key Usage",
	KindExtendedKeyUsage:       "Extended Key Usage",
	KindSubjectKeyIdentifier:   "Subject Key Identifier",
	KindAuthorityKeyIdentifier: "Authority Key Identifier",
	KindSubjectAltName:         "Subject Alternative Name",
}

// DisplayName returns the human-readable name of a decoded kind, or "" for
// [KindUnsupported].
func (k Kind) DisplayName() string {
	if k >= numKinds {
		return ""
	}
	return displayNames[k]
}

// Supported returns every kind that has a decoder, in declaration order.
func Supported() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := KindUnsupported + 1; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
