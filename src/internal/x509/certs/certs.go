// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"strings"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrEncryptedPEM indicates a PEM block protected with legacy RFC 1423 encryption.
	ErrEncryptedPEM = errors.New("x509certs: encrypted PEM is not supported")

	// ErrUnrecognizedInput indicates data that is neither PEM, DER nor base64-encoded DER.
	ErrUnrecognizedInput = errors.New("x509certs: input is not PEM or DER")
)

// derSequence is the identifier octet every DER certificate starts with.
const derSequence = 0x30

// Decoder extracts DER certificate bytes from PEM, DER or base64 input and
// encodes DER back to PEM. It does not interpret the certificate itself.
type Decoder struct {
	certBlockType string
}

// New creates a new Decoder with default settings.
func New() *Decoder {
	return &Decoder{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// IsDER reports whether data starts like a DER certificate.
func (d *Decoder) IsDER(data []byte) bool {
	return len(data) > 0 && data[0] == derSequence
}

// checkBlock verifies that a PEM block holds a plain certificate.
func (d *Decoder) checkBlock(block *pem.Block) error {
	if block.Type != d.certBlockType {
		return ErrInvalidBlockType
	}
	if strings.Contains(block.Headers["Proc-Type"], "ENCRYPTED") {
		return ErrEncryptedPEM
	}
	return nil
}

// Decode returns the DER bytes of the first certificate in data.
//
// PEM input must carry a CERTIFICATE block; raw DER is passed through; any
// other input is tried as base64-encoded DER. The returned slice does not
// alias data.
func (d *Decoder) Decode(data []byte) ([]byte, error) {
	if d.IsPEM(data) {
		block, _ := pem.Decode(data)
		if err := d.checkBlock(block); err != nil {
			return nil, err
		}
		return block.Bytes, nil
	}

	if d.IsDER(data) {
		return bytes.Clone(data), nil
	}

	if text := bytes.TrimSpace(data); len(text) > 0 {
		if strings.Contains(string(text), "-----BEGIN") {
			return nil, ErrInvalidPEMBlock
		}
		raw, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(string(text)), ""))
		if err == nil && d.IsDER(raw) {
			return raw, nil
		}
	}

	return nil, ErrUnrecognizedInput
}

// DecodeMultiple returns the DER bytes of every certificate in data. PEM
// input may hold several CERTIFICATE blocks; any other input yields one
// certificate as with [Decoder.Decode].
func (d *Decoder) DecodeMultiple(data []byte) ([][]byte, error) {
	if !d.IsPEM(data) {
		der, err := d.Decode(data)
		if err != nil {
			return nil, err
		}
		return [][]byte{der}, nil
	}

	var certs [][]byte
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if err := d.checkBlock(block); err != nil {
			return nil, err
		}

		certs = append(certs, block.Bytes)
		data = rest
	}

	return certs, nil
}

// EncodePEM encodes DER certificate bytes to PEM format.
func (d *Decoder) EncodePEM(der []byte) []byte {
	block := pem.Block{
		Type:  d.certBlockType,
		Bytes: der,
	}
	return pem.EncodeToMemory(&block)
}

// EncodeMultiplePEM encodes several DER certificates to concatenated PEM.
func (d *Decoder) EncodeMultiplePEM(certs [][]byte) []byte {
	var data []byte

	for _, der := range certs {
		data = append(data, d.EncodePEM(der)...)
	}

	return data
}
