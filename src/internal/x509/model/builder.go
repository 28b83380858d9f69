// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/H0llyW00dzZ/peek509/src/internal/der"
	"github.com/H0llyW00dzZ/peek509/src/internal/oid"
	x509ext "github.com/H0llyW00dzZ/peek509/src/internal/x509/extension"
)

// ErrStructuralMismatch indicates that the outer certificate structure is not
// SEQUENCE { tbsCertificate, signatureAlgorithm, signatureValue }.
var ErrStructuralMismatch = errors.New("x509model: structural mismatch")

// BuildError describes why a node tree is not a certificate.
type BuildError struct {
	Field  string
	Offset int
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("x509model: %s at offset %d: %s", e.Field, e.Offset, e.Reason)
}

// Unwrap returns [ErrStructuralMismatch].
func (e *BuildError) Unwrap() error { return ErrStructuralMismatch }

// Decode parses data as DER and builds its certificate model.
func Decode(data []byte) (*Certificate, error) {
	root, err := der.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("x509model: decode DER: %w", err)
	}
	return Build(root, data)
}

// Build interprets root as an X.509 certificate. raw must be the buffer root
// was decoded from; it is hashed for the fingerprint and kept in
// [Certificate.Raw].
//
// Only a wrong outer structure fails the build. Every other problem leaves a
// partial field and a message in [Certificate.Warnings].
//
// Thread Safety: Build has no shared state and may be called concurrently.
func Build(root *der.Node, raw []byte) (*Certificate, error) {
	if root == nil {
		return nil, &BuildError{Field: "certificate", Reason: "no node"}
	}
	if err := expect(root, "certificate", der.TagSequence, true); err != nil {
		return nil, err
	}
	if len(root.Children) != 3 {
		return nil, &BuildError{
			Field:  "certificate",
			Offset: root.Offset,
			Reason: fmt.Sprintf("expected 3 elements, got %d", len(root.Children)),
		}
	}

	tbs, sigAlg, sigValue := root.Children[0], root.Children[1], root.Children[2]
	if err := expect(tbs, "tbsCertificate", der.TagSequence, true); err != nil {
		return nil, err
	}
	if err := expect(sigAlg, "signatureAlgorithm", der.TagSequence, true); err != nil {
		return nil, err
	}
	if err := expect(sigValue, "signatureValue", der.TagBitString, false); err != nil {
		return nil, err
	}

	b := &builder{cert: &Certificate{
		Issuer:     Name{},
		Subject:    Name{},
		Extensions: []x509ext.Extension{},
	}}
	b.tbsCertificate(tbs)

	if outer := b.algorithm(sigAlg, "signatureAlgorithm"); outer != b.cert.SignatureAlgorithmOID {
		b.warnf("signatureAlgorithm %s differs from tbsCertificate signature %s", outer, b.cert.SignatureAlgorithmOID)
	}
	b.signature(sigValue)

	sum := sha256.Sum256(raw)
	b.cert.Fingerprint = hex.EncodeToString(sum[:])
	b.cert.Raw = bytes.Clone(raw)

	return b.cert, nil
}

func expect(n *der.Node, field string, tag uint32, constructed bool) error {
	if n.IsUniversal(tag) && n.Constructed == constructed {
		return nil
	}
	want := der.Node{Tag: tag}
	return &BuildError{
		Field:  field,
		Offset: n.Offset,
		Reason: fmt.Sprintf("expected %s, got %s", want.TagString(), n.TagString()),
	}
}

// builder accumulates one certificate and its warnings.
type builder struct {
	cert *Certificate
}

func (b *builder) warnf(format string, args ...any) {
	b.cert.Warnings = append(b.cert.Warnings, fmt.Sprintf(format, args...))
}

// cursor walks the children of a SEQUENCE in order.
type cursor struct {
	nodes []*der.Node
	pos   int
}

func (c *cursor) peek() *der.Node {
	if c.pos >= len(c.nodes) {
		return nil
	}
	return c.nodes[c.pos]
}

func (c *cursor) next() *der.Node {
	n := c.peek()
	if n != nil {
		c.pos++
	}
	return n
}

// field returns the next element if it has the given universal tag. A missing
// or mismatched element is reported and yields nil; a mismatched one is still
// consumed so later fields keep their positions.
func (b *builder) field(c *cursor, name string, tag uint32) *der.Node {
	n := c.next()
	if n == nil {
		b.warnf("%s: missing", name)
		return nil
	}
	if !n.IsUniversal(tag) {
		want := der.Node{Tag: tag}
		b.warnf("%s: expected %s, got %s at offset %d", name, want.TagString(), n.TagString(), n.Offset)
		return nil
	}
	return n
}

//	TBSCertificate ::= SEQUENCE {
//	    version         [0] EXPLICIT Version DEFAULT v1,
//	    serialNumber         CertificateSerialNumber,
//	    signature            AlgorithmIdentifier,
//	    issuer               Name,
//	    validity             Validity,
//	    subject              Name,
//	    subjectPublicKeyInfo SubjectPublicKeyInfo,
//	    issuerUniqueID  [1] IMPLICIT UniqueIdentifier OPTIONAL,
//	    subjectUniqueID [2] IMPLICIT UniqueIdentifier OPTIONAL,
//	    extensions      [3] EXPLICIT Extensions OPTIONAL }
func (b *builder) tbsCertificate(tbs *der.Node) {
	c := &cursor{nodes: tbs.Children}

	if n := c.peek(); n.IsContext(0) && n.Constructed {
		c.next()
		b.version(n)
	}

	if n := b.field(c, "serialNumber", der.TagInteger); n != nil {
		b.serial(n)
	}
	if n := b.field(c, "signature", der.TagSequence); n != nil {
		b.cert.SignatureAlgorithmOID = b.algorithm(n, "signature")
		b.cert.SignatureAlgorithm = oid.AlgorithmName(b.cert.SignatureAlgorithmOID)
	}
	if n := b.field(c, "issuer", der.TagSequence); n != nil {
		b.cert.Issuer = b.name(n, "issuer")
	}
	if n := b.field(c, "validity", der.TagSequence); n != nil {
		b.validity(n)
	}
	if n := b.field(c, "subject", der.TagSequence); n != nil {
		b.cert.Subject = b.name(n, "subject")
	}
	if n := b.field(c, "subjectPublicKeyInfo", der.TagSequence); n != nil {
		b.cert.PublicKey = b.publicKey(n)
	}

	for n := c.next(); n != nil; n = c.next() {
		switch {
		case n.IsContext(1), n.IsContext(2):
			// Unique identifiers are not shown.
		case n.IsContext(3) && n.Constructed:
			b.extensions(n)
		default:
			b.warnf("tbsCertificate: unexpected %s at offset %d", n.TagString(), n.Offset)
		}
	}
}

func (b *builder) version(n *der.Node) {
	inner := n.Child(0)
	if inner == nil || len(n.Children) != 1 {
		b.warnf("version: expected one INTEGER inside [0]")
		return
	}
	v, err := inner.Integer()
	if err != nil {
		b.warnf("version: %v", err)
		return
	}
	if !v.IsInt64() || v.Int64() < 0 || v.Int64() > 2 {
		b.warnf("version: unsupported value %s", v)
		if !v.IsInt64() {
			return
		}
	}
	b.cert.Version = int(v.Int64())
}

func (b *builder) serial(n *der.Node) {
	v, err := n.Integer()
	if err != nil {
		b.warnf("serialNumber: %v", err)
		b.cert.SerialHex = x509ext.ColonHex(n.Value)
		return
	}

	b.cert.SerialNumber = v.String()
	if v.Sign() < 0 {
		b.warnf("serialNumber: negative value")
		b.cert.SerialHex = x509ext.ColonHex(n.Value)
		return
	}
	b.cert.SerialHex = unsignedHex(v)
}

// unsignedHex formats a non-negative integer as colon-separated hex without
// the DER sign octet.
func unsignedHex(v *big.Int) string {
	if v.Sign() == 0 {
		return "00"
	}
	return x509ext.ColonHex(v.Bytes())
}

// algorithm returns the OID of an AlgorithmIdentifier.
func (b *builder) algorithm(n *der.Node, field string) string {
	id := n.Child(0)
	if !id.IsUniversal(der.TagOID) {
		b.warnf("%s: missing algorithm OID", field)
		return ""
	}
	dotted, err := id.OID()
	if err != nil {
		b.warnf("%s: %v", field, err)
		return ""
	}
	return dotted
}

//	Name ::= SEQUENCE OF RelativeDistinguishedName
//	RelativeDistinguishedName ::= SET SIZE (1..MAX) OF AttributeTypeAndValue
//	AttributeTypeAndValue ::= SEQUENCE { type OBJECT IDENTIFIER, value ANY }
func (b *builder) name(n *der.Node, field string) Name {
	name := Name{}
	for _, rdn := range n.Children {
		if !rdn.IsUniversal(der.TagSet) || !rdn.Constructed {
			b.warnf("%s: expected SET, got %s at offset %d", field, rdn.TagString(), rdn.Offset)
			continue
		}
		for _, atv := range rdn.Children {
			if attr, ok := b.attribute(atv, field); ok {
				name = append(name, attr)
			}
		}
	}
	return name
}

func (b *builder) attribute(atv *der.Node, field string) (Attribute, bool) {
	if !atv.IsUniversal(der.TagSequence) || len(atv.Children) != 2 {
		b.warnf("%s: malformed AttributeTypeAndValue at offset %d", field, atv.Offset)
		return Attribute{}, false
	}

	dotted, err := atv.Child(0).OID()
	if err != nil {
		b.warnf("%s: attribute type: %v", field, err)
		return Attribute{}, false
	}

	attr := Attribute{OID: dotted, Name: oid.AttributeName(dotted)}
	value := atv.Child(1)
	text, err := value.Text()
	if err != nil {
		b.warnf("%s: %s: %v", field, attr.Name, err)
		text = x509ext.ColonHex(value.Value)
	}
	attr.Value = text

	return attr, true
}

//	Validity ::= SEQUENCE { notBefore Time, notAfter Time }
func (b *builder) validity(n *der.Node) {
	if len(n.Children) != 2 {
		b.warnf("validity: expected 2 elements, got %d", len(n.Children))
	}
	b.cert.NotBefore = b.timestamp(n.Child(0), "notBefore")
	b.cert.NotAfter = b.timestamp(n.Child(1), "notAfter")
}

func (b *builder) timestamp(n *der.Node, field string) Timestamp {
	if n == nil {
		b.warnf("%s: missing", field)
		return Timestamp{}
	}
	t, err := n.Time()
	if err != nil {
		b.warnf("%s: unrecognized time %q: %v", field, n.Value, err)
		return Timestamp{Raw: string(n.Value)}
	}
	return Timestamp{Time: t, Raw: string(n.Value)}
}

//	Certificate ::= SEQUENCE { ..., signatureValue BIT STRING }
func (b *builder) signature(n *der.Node) {
	bits, err := n.BitString()
	if err != nil {
		b.warnf("signatureValue: %v", err)
		b.cert.Signature = x509ext.ColonHex(n.Value)
		return
	}
	b.cert.Signature = x509ext.ColonHex(bits.Bytes)
}

//	Extensions ::= SEQUENCE SIZE (1..MAX) OF Extension
//	Extension  ::= SEQUENCE {
//	    extnID    OBJECT IDENTIFIER,
//	    critical  BOOLEAN DEFAULT FALSE,
//	    extnValue OCTET STRING }
func (b *builder) extensions(n *der.Node) {
	list := n.Child(0)
	if len(n.Children) != 1 || !list.IsUniversal(der.TagSequence) {
		b.warnf("extensions: expected SEQUENCE inside [3]")
		return
	}

	seen := make(map[string]bool, len(list.Children))
	for _, entry := range list.Children {
		ext := extension(entry)
		if ext.OID != "" {
			if seen[ext.OID] {
				b.warnf("extensions: %s appears more than once", ext.OID)
			}
			seen[ext.OID] = true
		}
		b.cert.Extensions = append(b.cert.Extensions, ext)
	}
}

func extension(entry *der.Node) x509ext.Extension {
	if !entry.IsUniversal(der.TagSequence) || !entry.Constructed {
		return x509ext.Unparsable(entry.Raw, fmt.Errorf("expected SEQUENCE, got %s", entry.TagString()))
	}

	c := &cursor{nodes: entry.Children}
	id := c.next()
	if !id.IsUniversal(der.TagOID) {
		return x509ext.Unparsable(entry.Raw, errors.New("missing extnID"))
	}
	dotted, err := id.OID()
	if err != nil {
		return x509ext.Unparsable(entry.Raw, err)
	}

	unparsable := func(reason error) x509ext.Extension {
		ext := x509ext.Unparsable(entry.Raw, reason)
		ext.OID = dotted
		ext.Name = oid.ExtensionName(dotted)
		return ext
	}

	var critical bool
	if c.peek().IsUniversal(der.TagBoolean) {
		if critical, err = c.next().Bool(); err != nil {
			return unparsable(err)
		}
	}

	value := c.next()
	if !value.IsUniversal(der.TagOctetString) || value.Constructed {
		return unparsable(errors.New("missing extnValue"))
	}
	if extra := c.next(); extra != nil {
		return unparsable(fmt.Errorf("unexpected %s after extnValue", extra.TagString()))
	}

	return x509ext.Decode(x509ext.Record{
		OID:      dotted,
		Name:     oid.ExtensionName(dotted),
		Value:    value.Value,
		Critical: critical,
	})
}
