// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"fmt"

	"github.com/H0llyW00dzZ/peek509/src/internal/der"
)

// NotYetDecoded marks a well-formed value that is recognized but not interpreted.
const NotYetDecoded = "not yet decoded"

// decodeSubjectKeyIdentifier reads SubjectKeyIdentifier ::= OCTET STRING.
func decodeSubjectKeyIdentifier(value []byte) (Fields, []string, error) {
	n, err := parseValue(value, der.ClassUniversal, der.TagOctetString, false)
	if err != nil {
		return nil, nil, err
	}

	var fields Fields
	fields.Set("identifier", ColonHex(n.Value))

	var warnings []string
	if len(n.Value) == 0 {
		warnings = append(warnings, "empty key identifier")
	}
	return fields, warnings, nil
}

// decodeAuthorityKeyIdentifier reads
//
//	AuthorityKeyIdentifier ::= SEQUENCE {
//	    keyIdentifier             [0] KeyIdentifier           OPTIONAL,
//	    authorityCertIssuer       [1] GeneralNames            OPTIONAL,
//	    authorityCertSerialNumber [2] CertificateSerialNumber OPTIONAL }
//
// Components are accepted in any order.
func decodeAuthorityKeyIdentifier(value []byte) (Fields, []string, error) {
	seq, err := parseSequence(value)
	if err != nil {
		return nil, nil, err
	}

	var (
		fields   Fields
		warnings []string
	)
	for _, child := range seq.Children {
		switch {
		case child.IsContext(0) && !child.Constructed:
			fields.Set("keyIdentifier", ColonHex(child.Value))
		case child.IsContext(1) && child.Constructed:
			fields.Set("authorityCertIssuer", NotYetDecoded)
		case child.IsContext(2) && !child.Constructed:
			serial, err := child.Integer()
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("authorityCertSerialNumber: %v", err))
				continue
			}
			fields.Set("authorityCertSerialNumber", serial.String())
		default:
			warnings = append(warnings, fmt.Sprintf("unexpected %s in AuthorityKeyIdentifier", child.TagString()))
		}
	}

	return fields, warnings, nil
}
