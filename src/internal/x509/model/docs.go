// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509model turns a decoded DER node tree into a structured,
// human-oriented view of an [X.509] certificate.
//
// The model is built directly from the DER structure defined in [RFC 5280]
// and does not depend on [crypto/x509]. Only a certificate whose outer
// structure is wrong is rejected; a field that cannot be interpreted is kept
// in a degraded form and explained in [Certificate.Warnings].
//
// [X.509]: https://grokipedia.com/page/X.509
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
package x509model
