// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"fmt"

	"github.com/H0llyW00dzZ/peek509/src/internal/der"
)

// decodeBasicConstraints reads
//
//	BasicConstraints ::= SEQUENCE {
//	    cA                BOOLEAN DEFAULT FALSE,
//	    pathLenConstraint INTEGER (0..MAX) OPTIONAL }
func decodeBasicConstraints(value []byte) (Fields, []string, error) {
	seq, err := parseSequence(value)
	if err != nil {
		return nil, nil, err
	}

	var (
		fields   Fields
		warnings []string
		isCA     bool
	)

	rest := seq.Children
	if len(rest) > 0 && rest[0].IsUniversal(der.TagBoolean) {
		if isCA, err = rest[0].Bool(); err != nil {
			return nil, nil, err
		}
		rest = rest[1:]
	}
	fields.Set("isCA", isCA)

	if len(rest) > 0 && rest[0].IsUniversal(der.TagInteger) {
		n, err := rest[0].Integer()
		if err != nil {
			return nil, nil, err
		}
		if !n.IsInt64() {
			return nil, nil, fmt.Errorf("pathLenConstraint %s out of range", n)
		}
		if n.Sign() < 0 {
			warnings = append(warnings, fmt.Sprintf("negative pathLenConstraint %s", n))
		}
		fields.Set("pathLenConstraint", n.Int64())
		rest = rest[1:]
	}

	if len(rest) > 0 {
		return nil, nil, fmt.Errorf("%w: unexpected %s in BasicConstraints", ErrUnexpectedType, rest[0].TagString())
	}

	return fields, warnings, nil
}
