// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

// ErrInputTooLarge indicates that a reader produced more bytes than the allowed limit.
var ErrInputTooLarge = errors.New("gc: input exceeds size limit")

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool. Buffers not obtained from a
// [bytebufferpool.Pool] are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the buffer pool shared by certificate input reads and renderers.
//
// Example usage:
//
//	buf := gc.Default.Get()
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	if _, err := buf.ReadFrom(file); err != nil {
//		return fmt.Errorf("error reading file: %w", err)
//	}
var Default Pool = &pool{p: &bytebufferpool.Pool{}}

// ReadLimited reads r to the end through a pooled buffer and returns a copy of
// the data. It fails with [ErrInputTooLarge] once more than limit bytes are
// seen; a limit of zero or less disables the check.
//
// The returned slice is owned by the caller and is not tied to the pool.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	buf := Default.Get()
	defer func() {
		buf.Reset()
		Default.Put(buf)
	}()

	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}

	if _, err := buf.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("gc: read: %w", err)
	}
	if limit > 0 && int64(buf.Len()) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}

	return bytes.Clone(buf.Bytes()), nil
}
