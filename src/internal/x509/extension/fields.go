// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509ext

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/peek509/src/internal/helper/gc"
)

// Field is one named value decoded from an extension.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered list of decoded values. It marshals to a JSON or YAML
// object whose keys keep the decoding order.
//
// Values are bool, int64, string or []string.
type Fields []Field

// Get returns the value stored under name.
func (f Fields) Get(name string) (any, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (f Fields) Names() []string {
	names := make([]string, len(f))
	for i, field := range f {
		names[i] = field.Name
	}
	return names
}

// Set stores value under name, replacing an existing value in place.
func (f *Fields) Set(name string, value any) {
	for i := range *f {
		if (*f)[i].Name == name {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Name: name, Value: value})
}

// appendString adds s to the []string stored under name.
func (f *Fields) appendString(name, s string) {
	for i := range *f {
		if (*f)[i].Name == name {
			list, _ := (*f)[i].Value.([]string)
			(*f)[i].Value = append(list, s)
			return
		}
	}
	*f = append(*f, Field{Name: name, Value: []string{s}})
}

// MarshalJSON encodes the fields as a JSON object in order.
func (f Fields) MarshalJSON() ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, fmt.Errorf("x509ext: field %q: %w", field.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return bytes.Clone(buf.Bytes()), nil
}

// MarshalYAML encodes the fields as a YAML mapping in order.
func (f Fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range f {
		value := new(yaml.Node)
		if err := value.Encode(field.Value); err != nil {
			return nil, fmt.Errorf("x509ext: field %q: %w", field.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name},
			value,
		)
	}
	return node, nil
}

// HexBytes is a byte string shown as colon-separated lowercase hex.
type HexBytes []byte

// String returns the colon-separated hex form.
func (h HexBytes) String() string { return ColonHex(h) }

// MarshalText returns the colon-separated hex form.
func (h HexBytes) MarshalText() ([]byte, error) { return []byte(ColonHex(h)), nil }

const hexDigits = "0123456789abcdef"

// ColonHex formats b as lowercase hex pairs separated by colons, e.g. "1f:e3:9c".
func ColonHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	out := make([]byte, 0, len(b)*3-1)
	for i, c := range b {
		if i > 0 {
			out = append(out, ':')
		}
		out = append(out, hexDigits[c>>4], hexDigits[c&0x0f])
	}
	return string(out)
}
