// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/peek509/src/internal/der"
	"github.com/H0llyW00dzZ/peek509/src/internal/oid"
	x509ext "github.com/H0llyW00dzZ/peek509/src/internal/x509/extension"
)

// publicKey reads
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//	    algorithm        AlgorithmIdentifier,
//	    subjectPublicKey BIT STRING }
//
// RSA and named-curve EC keys are interpreted; anything else, or an RSA key
// that does not parse, is reported as [KeyUnknown].
func (b *builder) publicKey(spki *der.Node) PublicKey {
	alg := spki.Child(0)
	if !alg.IsUniversal(der.TagSequence) {
		b.warnf("subjectPublicKeyInfo: missing AlgorithmIdentifier")
		return PublicKey{Kind: KeyUnknown}
	}

	dotted := b.algorithm(alg, "subjectPublicKeyInfo")
	key := PublicKey{
		Kind:         KeyUnknown,
		AlgorithmOID: dotted,
		Algorithm:    oid.AlgorithmName(dotted),
	}

	bitsNode := spki.Child(1)
	if !bitsNode.IsUniversal(der.TagBitString) {
		b.warnf("subjectPublicKeyInfo: missing subjectPublicKey")
		return key
	}
	bits, err := bitsNode.BitString()
	if err != nil {
		b.warnf("subjectPublicKey: %v", err)
		return key
	}

	switch dotted {
	case oid.RSAEncryption:
		rsa, err := rsaKey(bits.Bytes)
		if err != nil {
			b.warnf("subjectPublicKey: RSA: %v", err)
			return key
		}
		if rsa.Exponent < 0 {
			b.warnf("subjectPublicKey: RSA exponent is negative or wider than 64 bits")
			rsa.Exponent = 0
		}
		key.Kind, key.RSA = KeyRSA, rsa
	case oid.ECPublicKey:
		ec := &ECKey{PointHex: x509ext.ColonHex(bits.Bytes)}
		params := alg.Child(1)
		if params.IsUniversal(der.TagOID) {
			if curve, err := params.OID(); err == nil {
				ec.CurveOID = curve
				ec.CurveName, _ = oid.CurveName(curve)
			}
		}
		if ec.CurveOID == "" {
			b.warnf("subjectPublicKeyInfo: EC parameters are not a named curve")
		}
		key.Kind, key.ECDSA = KeyECDSA, ec
	}

	return key
}

//	RSAPublicKey ::= SEQUENCE { modulus INTEGER, publicExponent INTEGER }
//
// An exponent wider than 64 bits is returned as -1.
func rsaKey(data []byte) (*RSAKey, error) {
	seq, err := der.Decode(data)
	if err != nil {
		return nil, err
	}
	if !seq.IsUniversal(der.TagSequence) || len(seq.Children) != 2 {
		return nil, fmt.Errorf("expected SEQUENCE of modulus and exponent, got %s", seq.TagString())
	}

	modulus, err := seq.Child(0).Integer()
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}
	exponent, err := seq.Child(1).Integer()
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	if modulus.Sign() <= 0 {
		return nil, errors.New("non-positive modulus")
	}

	key := &RSAKey{
		ModulusHex: unsignedHex(modulus),
		Bits:       modulus.BitLen(),
		Exponent:   -1,
	}
	if exponent.IsInt64() {
		key.Exponent = exponent.Int64()
	}
	return key, nil
}
