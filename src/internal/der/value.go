// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

import (
	encoding_asn1 "encoding/asn1"
	"errors"
	"fmt"
	"math/big"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var (
	// ErrMalformedValue indicates content octets that are invalid for the requested type.
	ErrMalformedValue = errors.New("der: malformed value")

	// ErrConstructed indicates a value accessor used on a constructed node.
	ErrConstructed = errors.New("der: value accessor on constructed node")

	// ErrUnexpectedTag indicates a node whose tag does not match the requested type.
	ErrUnexpectedTag = errors.New("der: unexpected tag")
)

var (
	bmpEncoding       encoding.Encoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	universalEncoding encoding.Encoding = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
)

// element re-encodes the content octets under a universal tag so that both
// universal and IMPLICIT context-tagged nodes can be read with cryptobyte.
// A universal node must already carry the requested tag.
func (n *Node) element(tag cbasn1.Tag) (cryptobyte.String, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: missing node", ErrMalformedValue)
	}
	if n.Constructed {
		return nil, fmt.Errorf("%w: %s at offset %d", ErrConstructed, n.TagString(), n.Offset)
	}
	if n.Class == ClassUniversal && n.Tag != uint32(tag) {
		return nil, fmt.Errorf("%w: %s at offset %d", ErrUnexpectedTag, n.TagString(), n.Offset)
	}

	b := cryptobyte.NewBuilder(make([]byte, 0, len(n.Value)+6))
	b.AddASN1(tag, func(child *cryptobyte.Builder) {
		child.AddBytes(n.Value)
	})
	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedValue, err)
	}

	return cryptobyte.String(out), nil
}

func (n *Node) malformed(kind string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrMalformedValue, kind, n.Offset)
}

// Integer reads the node as an arbitrary-precision INTEGER.
func (n *Node) Integer() (*big.Int, error) {
	s, err := n.element(cbasn1.INTEGER)
	if err != nil {
		return nil, err
	}

	v := new(big.Int)
	if !s.ReadASN1Integer(v) || !s.Empty() {
		return nil, n.malformed("INTEGER")
	}
	return v, nil
}

// Bool reads the node as a DER BOOLEAN (0x00 or 0xFF).
func (n *Node) Bool() (bool, error) {
	s, err := n.element(cbasn1.BOOLEAN)
	if err != nil {
		return false, err
	}

	var v bool
	if !s.ReadASN1Boolean(&v) || !s.Empty() {
		return false, n.malformed("BOOLEAN")
	}
	return v, nil
}

// OID reads the node as an OBJECT IDENTIFIER and returns its dotted form.
func (n *Node) OID() (string, error) {
	s, err := n.element(cbasn1.OBJECT_IDENTIFIER)
	if err != nil {
		return "", err
	}

	var v encoding_asn1.ObjectIdentifier
	if !s.ReadASN1ObjectIdentifier(&v) || !s.Empty() {
		return "", n.malformed("OBJECT IDENTIFIER")
	}
	return v.String(), nil
}

// BitString reads the node as a BIT STRING.
func (n *Node) BitString() (encoding_asn1.BitString, error) {
	s, err := n.element(cbasn1.BIT_STRING)
	if err != nil {
		return encoding_asn1.BitString{}, err
	}

	var v encoding_asn1.BitString
	if !s.ReadASN1BitString(&v) || !s.Empty() {
		return encoding_asn1.BitString{}, n.malformed("BIT STRING")
	}
	return v, nil
}

// Time reads a UTCTime or GeneralizedTime node.
func (n *Node) Time() (time.Time, error) {
	var (
		t  time.Time
		ok bool
	)

	switch {
	case n.IsUniversal(TagUTCTime):
		s, err := n.element(cbasn1.UTCTime)
		if err != nil {
			return t, err
		}
		ok = s.ReadASN1UTCTime(&t) && s.Empty()
	case n.IsUniversal(TagGeneralizedTime):
		s, err := n.element(cbasn1.GeneralizedTime)
		if err != nil {
			return t, err
		}
		ok = s.ReadASN1GeneralizedTime(&t) && s.Empty()
	default:
		return t, fmt.Errorf("%w: %s is not a time", ErrUnexpectedTag, n.TagString())
	}

	if !ok {
		return time.Time{}, n.malformed(n.TagString())
	}
	return t, nil
}

// Text reads a universal string type and returns it as UTF-8.
func (n *Node) Text() (string, error) {
	if n.Class != ClassUniversal {
		return "", fmt.Errorf("%w: %s is not a string", ErrUnexpectedTag, n.TagString())
	}
	if n.Constructed {
		return "", fmt.Errorf("%w: %s at offset %d", ErrConstructed, n.TagString(), n.Offset)
	}

	switch n.Tag {
	case TagUTF8String:
		if !utf8.Valid(n.Value) {
			return "", n.malformed("UTF8String")
		}
		return string(n.Value), nil
	case TagPrintableString, TagIA5String, TagNumericString, TagVisibleString:
		for _, c := range n.Value {
			if c >= utf8.RuneSelf {
				return "", n.malformed(n.TagString())
			}
		}
		return string(n.Value), nil
	case TagT61String:
		return n.decodeWith(charmap.ISO8859_1)
	case TagBMPString:
		if len(n.Value)%2 != 0 {
			return "", n.malformed("BMPString")
		}
		return n.decodeWith(bmpEncoding)
	case TagUniversalString:
		if len(n.Value)%4 != 0 {
			return "", n.malformed("UniversalString")
		}
		return n.decodeWith(universalEncoding)
	default:
		return "", fmt.Errorf("%w: %s is not a string", ErrUnexpectedTag, n.TagString())
	}
}

func (n *Node) decodeWith(enc encoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(n.Value)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedValue, n.TagString(), err)
	}
	return string(out), nil
}
