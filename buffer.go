// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"fmt"
	"sync/atomic"

	"github.com/quadgl/gpu/internal/gl"
)

// BufferKind is the binding target of a Buffer.
type BufferKind uint8

const (
	BufferArray BufferKind = iota
	BufferIndex
	BufferUniform
	BufferTexture
)

// Usage hints how often a Buffer's contents change.
type Usage uint8

const (
	StaticDraw Usage = iota
	DynamicDraw
	StreamDraw
)

// Buffer is an owner of a driver buffer object.
type Buffer struct {
	own   *owner
	obj   gl.Buffer
	kind  BufferKind
	usage Usage
	size  *atomic.Int64
}

// Slice is a byte range of a Buffer.
type Slice struct {
	Buffer *Buffer
	Offset int
	Length int
}

func newBuffer(obj gl.Buffer, q *releaseQueue, kind BufferKind, usage Usage) *Buffer {
	own := newOwner(newDestructor(obj.V, q))
	return track(&Buffer{
		own:   own,
		obj:   obj,
		kind:  kind,
		usage: usage,
		size:  new(atomic.Int64),
	}, own)
}

// ID returns the driver object name.
func (b *Buffer) ID() uint { return b.obj.V }

func (b *Buffer) Kind() BufferKind { return b.kind }

func (b *Buffer) Usage() Usage { return b.usage }

// Size returns the byte size of the last storage initialization, or 0.
func (b *Buffer) Size() int { return int(b.size.Load()) }

// Clone returns a new owner of the same buffer object.
func (b *Buffer) Clone() *Buffer {
	b.own.mustLive()
	c := *b
	c.own = newOwner(b.own.d)
	return track(&c, c.own)
}

// Release drops this owner. The buffer object is deleted by the
// Factory after its last owner is released. Release is idempotent.
func (b *Buffer) Release() { b.own.release() }

// Equal reports whether both handles own the same object.
func (b *Buffer) Equal(o *Buffer) bool { return b.obj == o.obj }

// Slice returns the byte range [offset, offset+length).
func (b *Buffer) Slice(offset, length int) Slice {
	return Slice{Buffer: b, Offset: offset, Length: length}
}

// Whole returns a Slice covering the initialized storage.
func (b *Buffer) Whole() Slice {
	return b.Slice(0, b.Size())
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%d, %s, %s)", b.obj.V, b.kind, b.usage)
}

func (k BufferKind) target() gl.Enum {
	switch k {
	case BufferArray:
		return gl.ARRAY_BUFFER
	case BufferIndex:
		return gl.ELEMENT_ARRAY_BUFFER
	case BufferUniform:
		return gl.UNIFORM_BUFFER
	case BufferTexture:
		return gl.TEXTURE_BUFFER
	default:
		panic("gpu: invalid buffer kind")
	}
}

func (k BufferKind) String() string {
	switch k {
	case BufferArray:
		return "array"
	case BufferIndex:
		return "index"
	case BufferUniform:
		return "uniform"
	case BufferTexture:
		return "texture"
	default:
		return "invalid"
	}
}

func (u Usage) glEnum() gl.Enum {
	switch u {
	case StaticDraw:
		return gl.STATIC_DRAW
	case DynamicDraw:
		return gl.DYNAMIC_DRAW
	case StreamDraw:
		return gl.STREAM_DRAW
	default:
		panic("gpu: invalid buffer usage")
	}
}

func (u Usage) String() string {
	switch u {
	case StaticDraw:
		return "static"
	case DynamicDraw:
		return "dynamic"
	case StreamDraw:
		return "stream"
	default:
		return "invalid"
	}
}

// Accessor describes how to read vertex attributes or indices out of
// a Buffer. It owns a reference to the buffer.
type Accessor struct {
	buffer *Buffer
	format Format
	offset int
	stride int
}

// NewAccessor returns an Accessor reading elements of format from buf,
// starting at byte offset with byte stride between elements. A stride
// of 0 means tightly packed. The Accessor owns a clone of buf.
func NewAccessor(buf *Buffer, format Format, offset, stride int) *Accessor {
	return &Accessor{
		buffer: buf.Clone(),
		format: format,
		offset: offset,
		stride: stride,
	}
}

func (a *Accessor) Buffer() *Buffer { return a.buffer }
func (a *Accessor) Format() Format  { return a.format }
func (a *Accessor) Offset() int     { return a.offset }
func (a *Accessor) Stride() int     { return a.stride }

// Clone returns an Accessor with its own reference to the buffer.
func (a *Accessor) Clone() *Accessor {
	c := *a
	c.buffer = a.buffer.Clone()
	return &c
}

// Release drops the Accessor's buffer reference.
func (a *Accessor) Release() { a.buffer.Release() }
