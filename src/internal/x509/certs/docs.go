// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs handles the input boundary for [X.509] certificates.
// It strips [PEM] armor, passes raw DER through and accepts base64-encoded
// DER, producing the byte buffer that the DER reader consumes. It can also
// encode DER back to PEM for display.
//
// Encrypted PEM and bundle formats such as PKCS#7 are rejected.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
