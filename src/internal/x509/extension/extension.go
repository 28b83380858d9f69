// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/peek509/src/internal/der"
	"github.com/H0llyW00dzZ/peek509/src/internal/oid"
)

// WarnUnsupported is the warning attached to extensions without a decoder.
const WarnUnsupported = "extension not yet supported"

var (
	// ErrUnexpectedType indicates an element whose ASN.1 type does not match the extension grammar.
	ErrUnexpectedType = errors.New("x509ext: unexpected ASN.1 type")

	// ErrDecoderPanic indicates that a decoder panicked on its input.
	ErrDecoderPanic = errors.New("x509ext: decoder panic")
)

// Record is one entry of a certificate's extension list, before decoding.
type Record struct {
	OID      string
	Name     string
	Value    []byte
	Critical bool
}

// Extension is the decoded form of a [Record].
//
// Exactly one of Fields or Raw describes the value: a successful decode fills
// Fields, while an unsupported or malformed value leaves Fields empty and keeps
// the original bytes in Raw together with at least one warning.
type Extension struct {
	Name     string   `json:"name" yaml:"name"`
	OID      string   `json:"oid" yaml:"oid"`
	Critical bool     `json:"critical" yaml:"critical"`
	Kind     Kind     `json:"type" yaml:"type"`
	Fields   Fields   `json:"parsed" yaml:"parsed"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Raw      HexBytes `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// decoder interprets an extension value. Warnings are reported for recoverable
// oddities; an error discards all fields.
type decoder func(value []byte) (Fields, []string, error)

var decoders = [numKinds]decoder{
	KindBasicConstraints:       decodeBasicConstraints,
	KindKeyUsage:               decodeKeyUsage,
	KindExtendedKeyUsage:       decodeExtendedKeyUsage,
	KindSubjectKeyIdentifier:   decodeSubjectKeyIdentifier,
	KindAuthorityKeyIdentifier: decodeAuthorityKeyIdentifier,
	KindSubjectAltName:         decodeSubjectAltName,
}

// Decode interprets rec according to its OID.
//
// Decode never fails and never panics. It is safe for concurrent use.
func Decode(rec Record) Extension {
	kind := KindOf(rec.OID)
	ext := Extension{
		Name:     rec.Name,
		OID:      rec.OID,
		Critical: rec.Critical,
		Kind:     kind,
		Fields:   Fields{},
	}

	if kind == KindUnsupported {
		if ext.Name == "" {
			ext.Name = oid.ExtensionName(rec.OID)
		}
		ext.Warnings = []string{WarnUnsupported}
		ext.Raw = bytes.Clone(rec.Value)
		return ext
	}

	ext.Name = displayNames[kind]

	fields, warnings, err := run(decoders[kind], rec.Value)
	if err != nil {
		ext.Warnings = append(warnings, fmt.Sprintf("Exception during %s decoding: %v", ext.Name, err))
		ext.Raw = bytes.Clone(rec.Value)
		return ext
	}

	if len(fields) > 0 {
		ext.Fields = fields
	}
	ext.Warnings = warnings
	if len(ext.Fields) == 0 && len(ext.Warnings) == 0 {
		ext.Warnings = []string{"no values present"}
		ext.Raw = bytes.Clone(rec.Value)
	}
	return ext
}

// Unparsable builds the Extension for an extension entry that could not be
// split into OID, criticality and value.
func Unparsable(entry []byte, reason error) Extension {
	return Extension{
		Name:     "unparsable extension",
		Kind:     KindUnsupported,
		Fields:   Fields{},
		Warnings: []string{fmt.Sprintf("malformed extension entry: %v", reason)},
		Raw:      bytes.Clone(entry),
	}
}

func run(fn decoder, value []byte) (fields Fields, warnings []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fields, warnings = nil, nil
			err = fmt.Errorf("%w: %v", ErrDecoderPanic, r)
		}
	}()

	return fn(value)
}

// parseValue decodes an extension value and checks its outer type.
func parseValue(value []byte, class der.Class, tag uint32, constructed bool) (*der.Node, error) {
	n, err := der.Decode(value)
	if err != nil {
		return nil, err
	}
	if !n.Is(class, tag) || n.Constructed != constructed {
		want := der.Node{Class: class, Tag: tag}
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrUnexpectedType, want.TagString(), n.TagString())
	}
	return n, nil
}

// parseSequence decodes an extension value that must be a SEQUENCE.
func parseSequence(value []byte) (*der.Node, error) {
	return parseValue(value, der.ClassUniversal, der.TagSequence, true)
}
