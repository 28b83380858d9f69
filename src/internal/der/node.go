// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package der

import (
	"errors"
	"fmt"
)

// Class is the tag class encoded in the two high bits of the identifier octet.
type Class uint8

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Universal tag numbers used by X.509.
const (
	TagBoolean         uint32 = 1
	TagInteger         uint32 = 2
	TagBitString       uint32 = 3
	TagOctetString     uint32 = 4
	TagNull            uint32 = 5
	TagOID             uint32 = 6
	TagUTF8String      uint32 = 12
	TagSequence        uint32 = 16
	TagSet             uint32 = 17
	TagNumericString   uint32 = 18
	TagPrintableString uint32 = 19
	TagT61String       uint32 = 20
	TagIA5String       uint32 = 22
	TagUTCTime         uint32 = 23
	TagGeneralizedTime uint32 = 24
	TagVisibleString   uint32 = 26
	TagUniversalString uint32 = 28
	TagBMPString       uint32 = 30
)

const (
	// maxDepth bounds recursion on hostile input.
	maxDepth = 64
	// maxTag keeps high-tag-number accumulation inside uint32.
	maxTag = 1 << 24
	// maxLengthOctets is the widest long-form length accepted.
	maxLengthOctets = 4
)

var (
	// ErrEmpty indicates that there was nothing to decode.
	ErrEmpty = errors.New("der: empty input")

	// ErrTruncated indicates that the buffer ends inside an identifier or length header.
	ErrTruncated = errors.New("der: truncated header")

	// ErrLengthOverflow indicates that a declared length exceeds the bytes that remain.
	ErrLengthOverflow = errors.New("der: declared length exceeds remaining data")

	// ErrIndefiniteLength indicates the BER indefinite length form, which DER forbids.
	ErrIndefiniteLength = errors.New("der: indefinite length is not allowed")

	// ErrLengthTooLarge indicates a long-form length wider than four octets.
	ErrLengthTooLarge = errors.New("der: length field too large")

	// ErrTagTooLarge indicates a high tag number that does not fit the decoder.
	ErrTagTooLarge = errors.New("der: tag number too large")

	// ErrTrailingData indicates bytes after the single top-level element.
	ErrTrailingData = errors.New("der: trailing data after element")

	// ErrTooDeep indicates nesting beyond the supported depth.
	ErrTooDeep = errors.New("der: nesting too deep")
)

// Error reports where in the input a decode failed.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string { return fmt.Sprintf("%v at offset %d", e.Err, e.Offset) }

func (e *Error) Unwrap() error { return e.Err }

// Node is one decoded tag/length/value element.
//
// Value always holds the content octets, for constructed nodes too, and Raw holds
// the complete encoding including the header. Both alias the decoded buffer.
type Node struct {
	Class       Class
	Tag         uint32
	Constructed bool
	Value       []byte
	Children    []*Node
	Raw         []byte
	Offset      int
}

// Decode parses buf as exactly one DER element and returns its node tree.
func Decode(buf []byte) (*Node, error) {
	if len(buf) == 0 {
		return nil, &Error{Err: ErrEmpty}
	}

	n, next, err := parse(buf, 0, 0)
	if err != nil {
		return nil, err
	}
	if next != len(buf) {
		return nil, &Error{Offset: next, Err: ErrTrailingData}
	}

	return n, nil
}

// parse decodes the element at buf[off:] and returns the offset just past it.
// Children are parsed against buf truncated to the parent's end, so a child can
// never claim bytes outside its parent.
func parse(buf []byte, off, depth int) (*Node, int, error) {
	if depth > maxDepth {
		return nil, 0, &Error{Offset: off, Err: ErrTooDeep}
	}

	start := off
	if off >= len(buf) {
		return nil, 0, &Error{Offset: off, Err: ErrTruncated}
	}

	id := buf[off]
	off++

	n := &Node{
		Class:       Class(id >> 6),
		Constructed: id&0x20 != 0,
		Offset:      start,
	}

	tag := uint32(id & 0x1f)
	if tag == 0x1f {
		tag = 0
		for {
			if off >= len(buf) {
				return nil, 0, &Error{Offset: off, Err: ErrTruncated}
			}
			c := buf[off]
			off++
			if tag >= maxTag {
				return nil, 0, &Error{Offset: start, Err: ErrTagTooLarge}
			}
			tag = tag<<7 | uint32(c&0x7f)
			if c&0x80 == 0 {
				break
			}
		}
	}
	n.Tag = tag

	if off >= len(buf) {
		return nil, 0, &Error{Offset: off, Err: ErrTruncated}
	}

	first := buf[off]
	off++

	length := uint64(first)
	switch {
	case first == 0x80:
		return nil, 0, &Error{Offset: off - 1, Err: ErrIndefiniteLength}
	case first > 0x80:
		width := int(first & 0x7f)
		if width > maxLengthOctets {
			return nil, 0, &Error{Offset: off - 1, Err: ErrLengthTooLarge}
		}
		if width > len(buf)-off {
			return nil, 0, &Error{Offset: off, Err: ErrTruncated}
		}
		length = 0
		for _, c := range buf[off : off+width] {
			length = length<<8 | uint64(c)
		}
		off += width
	}

	if length > uint64(len(buf)-off) {
		return nil, 0, &Error{Offset: start, Err: ErrLengthOverflow}
	}

	end := off + int(length)
	n.Value = buf[off:end:end]
	n.Raw = buf[start:end:end]

	if n.Constructed {
		for pos := off; pos < end; {
			child, next, err := parse(buf[:end], pos, depth+1)
			if err != nil {
				return nil, 0, err
			}
			n.Children = append(n.Children, child)
			pos = next
		}
	}

	return n, end, nil
}

// Is reports whether the node carries the given class and tag number.
func (n *Node) Is(class Class, tag uint32) bool {
	return n != nil && n.Class == class && n.Tag == tag
}

// IsUniversal reports whether the node has the given universal tag.
func (n *Node) IsUniversal(tag uint32) bool { return n.Is(ClassUniversal, tag) }

// IsContext reports whether the node has the given context-specific tag.
func (n *Node) IsContext(tag uint32) bool { return n.Is(ClassContextSpecific, tag) }

// Child returns the i-th child, or nil when it does not exist.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

var universalNames = map[uint32]string{
	TagBoolean:         "BOOLEAN",
	TagInteger:         "INTEGER",
	TagBitString:       "BIT STRING",
	TagOctetString:     "OCTET STRING",
	TagNull:            "NULL",
	TagOID:             "OBJECT IDENTIFIER",
	TagUTF8String:      "UTF8String",
	TagSequence:        "SEQUENCE",
	TagSet:             "SET",
	TagNumericString:   "NumericString",
	TagPrintableString: "PrintableString",
	TagT61String:       "TeletexString",
	TagIA5String:       "IA5String",
	TagUTCTime:         "UTCTime",
	TagGeneralizedTime: "GeneralizedTime",
	TagVisibleString:   "VisibleString",
	TagUniversalString: "UniversalString",
	TagBMPString:       "BMPString",
}

// TagString describes the node's tag, e.g. "SEQUENCE" or "[3]".
func (n *Node) TagString() string {
	switch n.Class {
	case ClassUniversal:
		if name, ok := universalNames[n.Tag]; ok {
			return name
		}
		return fmt.Sprintf("UNIVERSAL %d", n.Tag)
	case ClassApplication:
		return fmt.Sprintf("[APPLICATION %d]", n.Tag)
	case ClassContextSpecific:
		return fmt.Sprintf("[%d]", n.Tag)
	default:
		return fmt.Sprintf("[PRIVATE %d]", n.Tag)
	}
}
