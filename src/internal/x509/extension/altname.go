// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"fmt"
	"net/netip"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/peek509/src/internal/der"
)

// GeneralName context tags with a dedicated group.
const (
	tagRFC822Name = 1
	tagDNSName    = 2
	tagURI        = 6
	tagIPAddress  = 7
)

// decodeSubjectAltName reads
//
//	SubjectAltName ::= GeneralNames
//	GeneralNames   ::= SEQUENCE SIZE (1..MAX) OF GeneralName
//
// Names are grouped under email, dns, uri and ip. Every other GeneralName,
// including constructed ones, is listed under other as "Tag [N]" so that no
// entry is dropped.
func decodeSubjectAltName(value []byte) (Fields, []string, error) {
	seq, err := parseSequence(value)
	if err != nil {
		return nil, nil, err
	}

	var (
		fields   Fields
		warnings []string
	)
	for _, name := range seq.Children {
		if name.Class != der.ClassContextSpecific || name.Constructed {
			fields.appendString("other", "Tag "+name.TagString())
			continue
		}

		switch name.Tag {
		case tagRFC822Name:
			fields.appendString("email", ia5(name, &warnings))
		case tagDNSName:
			fields.appendString("dns", ia5(name, &warnings))
		case tagURI:
			fields.appendString("uri", ia5(name, &warnings))
		case tagIPAddress:
			addr, ok := netip.AddrFromSlice(name.Value)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("iPAddress of %d bytes shown as hex", len(name.Value)))
				fields.appendString("ip", ColonHex(name.Value))
				continue
			}
			fields.appendString("ip", addr.String())
		default:
			fields.appendString("other", "Tag "+name.TagString())
		}
	}

	if len(seq.Children) == 0 {
		warnings = append(warnings, "empty GeneralNames")
	}

	return fields, warnings, nil
}

// ia5 returns the IA5String content of a name, noting non-ASCII bytes.
func ia5(n *der.Node, warnings *[]string) string {
	for _, c := range n.Value {
		if c >= utf8.RuneSelf {
			*warnings = append(*warnings, fmt.Sprintf("non-ASCII byte in %s name", n.TagString()))
			break
		}
	}
	return string(n.Value)
}
