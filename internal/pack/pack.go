// Package pack encodes fixed-size attribute values into the little-endian
// byte form consumed by vertex and index buffers.
package pack

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Value is the closed set of fixed-size types that can be written to a
// geometry buffer. Restricting appends to this set rules out writes whose
// byte size is unknown at compile time.
type Value interface {
	uint16 | uint32 | float32 | mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4
}

// Size returns the number of bytes Append writes for v.
func Size[T Value](v T) int {
	switch any(v).(type) {
	case uint16:
		return 2
	case uint32, float32:
		return 4
	case mgl32.Vec2:
		return 8
	case mgl32.Vec3:
		return 12
	case mgl32.Vec4:
		return 16
	}
	return 0
}

// Append appends the little-endian encoding of v to dst and returns the
// extended slice. Vector components are written in x, y, z, w order.
func Append[T Value](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case uint16:
		return binary.LittleEndian.AppendUint16(dst, x)
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, x)
	case float32:
		return appendFloat32s(dst, x)
	case mgl32.Vec2:
		return appendFloat32s(dst, x[:]...)
	case mgl32.Vec3:
		return appendFloat32s(dst, x[:]...)
	case mgl32.Vec4:
		return appendFloat32s(dst, x[:]...)
	}
	return dst
}

func appendFloat32s(dst []byte, fs ...float32) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}
