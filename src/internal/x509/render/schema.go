// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509render

import _ "embed"

// Schema is the JSON Schema (draft-07) describing one certificate in
// [FormatJSON] output.
//
//go:embed certificate.schema.json
var Schema []byte
