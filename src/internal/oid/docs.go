// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package oid holds the static object identifier tables used to turn dotted
// [OID] strings from a certificate into human-readable names.
//
// The tables are populated at package initialization and never written
// afterwards, so every lookup is safe for concurrent use without locking.
//
// [OID]: https://grokipedia.com/page/Object_identifier
package oid
