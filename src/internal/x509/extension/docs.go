// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509ext decodes the value of individual [X.509] certificate extensions.
//
// Six extensions have dedicated decoders: basicConstraints, keyUsage,
// extendedKeyUsage, subjectKeyIdentifier, authorityKeyIdentifier and
// subjectAltName. Every other extension is reported as [KindUnsupported] with
// its raw value preserved.
//
// [Decode] never fails. A malformed value, or a decoder that panics, produces an
// [Extension] carrying warnings and the raw bytes instead of parsed fields, so a
// single bad extension cannot stop the decoding of a certificate.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509ext
