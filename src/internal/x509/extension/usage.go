// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"fmt"

	"github.com/H0llyW00dzZ/peek509/src/internal/der"
	"github.com/H0llyW00dzZ/peek509/src/internal/oid"
)

// KeyUsageFlags lists the keyUsage bits in bit order.
var KeyUsageFlags = [...]string{
	"digitalSignature",
	"nonRepudiation",
	"keyEncipherment",
	"dataEncipherment",
	"keyAgreement",
	"keyCertSign",
	"cRLSign",
	"encipherOnly",
	"decipherOnly",
}

// decodeKeyUsage reads the KeyUsage BIT STRING. Bits past the encoded length
// are reported as false, so the result always holds every flag.
func decodeKeyUsage(value []byte) (Fields, []string, error) {
	n, err := parseValue(value, der.ClassUniversal, der.TagBitString, false)
	if err != nil {
		return nil, nil, err
	}

	bits, err := n.BitString()
	if err != nil {
		return nil, nil, err
	}

	fields := make(Fields, 0, len(KeyUsageFlags))
	for i, name := range KeyUsageFlags {
		fields = append(fields, Field{Name: name, Value: bits.At(i) == 1})
	}

	var warnings []string
	for i := len(KeyUsageFlags); i < bits.BitLength; i++ {
		if bits.At(i) == 1 {
			warnings = append(warnings, fmt.Sprintf("undefined key usage bit %d is set", i))
		}
	}

	return fields, warnings, nil
}

// decodeExtendedKeyUsage reads
//
//	ExtKeyUsageSyntax ::= SEQUENCE SIZE (1..MAX) OF KeyPurposeId
//
// Each purpose becomes a field labelled by name, or "Unknown (<oid>)".
func decodeExtendedKeyUsage(value []byte) (Fields, []string, error) {
	seq, err := parseSequence(value)
	if err != nil {
		return nil, nil, err
	}

	var (
		fields   Fields
		warnings []string
	)
	for _, child := range seq.Children {
		if !child.IsUniversal(der.TagOID) {
			warnings = append(warnings, fmt.Sprintf("skipped %s in ExtKeyUsageSyntax", child.TagString()))
			continue
		}
		dotted, err := child.OID()
		if err != nil {
			return nil, nil, err
		}
		fields.Set(oid.Purpose(dotted), true)
	}

	if len(seq.Children) == 0 {
		warnings = append(warnings, "empty ExtKeyUsageSyntax")
	}

	return fields, warnings, nil
}
