package geometry

import (
	"slices"

	"github.com/gogpu/geometry/internal/pack"
)

// Buffer is a growable byte buffer holding elements of a fixed size.
//
// Element count is the data size divided by the element size: a buffer of
// 16-bit indices has an element size of 2, so a 12-byte buffer holds six
// indices.
//
// Buffers returned by a Geometry belong to it. Read them, do not modify
// them; use the Geometry append methods instead.
type Buffer struct {
	typ         BufferType
	elementSize uint32
	data        []byte
}

// NewBuffer creates an empty buffer.
func NewBuffer(typ BufferType, elementSize uint32) *Buffer {
	b := newBuffer(typ, elementSize, 0)
	return &b
}

func newBuffer(typ BufferType, elementSize uint32, capacityElements int) Buffer {
	b := Buffer{typ: typ, elementSize: elementSize}
	if capacityElements > 0 && elementSize > 0 {
		b.data = make([]byte, 0, capacityElements*int(elementSize))
	}
	return b
}

// Type returns the buffer type.
func (b *Buffer) Type() BufferType { return b.typ }

// ElementSize returns the size of one element in bytes.
func (b *Buffer) ElementSize() uint32 { return b.elementSize }

// Size returns the data size in bytes.
func (b *Buffer) Size() uint32 { return uint32(len(b.data)) }

// ElementCount returns the number of whole elements in the buffer.
func (b *Buffer) ElementCount() uint32 {
	if b.elementSize == 0 {
		return 0
	}
	return b.Size() / b.elementSize
}

// Data returns the buffer contents without copying.
func (b *Buffer) Data() []byte { return b.data }

// Bytes returns a copy of the buffer contents.
func (b *Buffer) Bytes() []byte { return slices.Clone(b.data) }

// SetSize resizes the data to n bytes, zero-filling any growth. Use it to
// fill a standalone buffer through Data; it does not mix with Append.
func (b *Buffer) SetSize(n uint32) {
	if int(n) <= len(b.data) {
		b.data = b.data[:n]
		return
	}
	b.data = append(b.data, make([]byte, int(n)-len(b.data))...)
}

// Append writes the packed bytes of v to the end of b.
//
// The value is not checked against the element size; the caller picks a
// value type whose size matches the declared format.
func Append[T pack.Value](b *Buffer, v T) {
	b.data = pack.Append(b.data, v)
}
