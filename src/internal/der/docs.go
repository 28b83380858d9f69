// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package der implements a self-contained reader for the Distinguished Encoding
// Rules ([DER]) used by [X.509] certificates. It decodes a byte buffer into a tree
// of tag/length/value nodes without interpreting their meaning; typed accessors on
// [Node] then read INTEGER, BOOLEAN, OBJECT IDENTIFIER, BIT STRING, time and
// string values on demand.
//
// Decoding is a pure function of its input. Malformed input always results in an
// [*Error] and never in an out-of-bounds read or a panic.
//
// [DER]: https://grokipedia.com/page/X.690
// [X.509]: https://grokipedia.com/page/X.509
package der
