package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/geometry/internal/pack"
)

// VertexSemantic names the role of a vertex attribute.
type VertexSemantic int

const (
	// SemanticUndefined is the zero value and is never a valid attribute.
	SemanticUndefined VertexSemantic = iota
	SemanticPosition
	SemanticNormal
	SemanticColor
	SemanticTangent
	SemanticBitangent
	SemanticTexCoord

	semanticCount
)

// Semantics returns every supported semantic in canonical order:
// position, normal, color, tangent, bitangent, texcoord.
func Semantics() []VertexSemantic {
	out := make([]VertexSemantic, 0, semanticCount-1)
	for s := SemanticPosition; s < semanticCount; s++ {
		out = append(out, s)
	}
	return out
}

// String returns the semantic name.
func (s VertexSemantic) String() string {
	switch s {
	case SemanticUndefined:
		return "Undefined"
	case SemanticPosition:
		return "Position"
	case SemanticNormal:
		return "Normal"
	case SemanticColor:
		return "Color"
	case SemanticTangent:
		return "Tangent"
	case SemanticBitangent:
		return "Bitangent"
	case SemanticTexCoord:
		return "TexCoord"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

func (s VertexSemantic) valid() bool {
	return s > SemanticUndefined && s < semanticCount
}

// DefaultFormat returns the format used when an attribute is declared
// without one.
func (s VertexSemantic) DefaultFormat() gputypes.VertexFormat {
	switch s {
	case SemanticPosition, SemanticNormal, SemanticColor, SemanticBitangent:
		return gputypes.VertexFormatFloat32x3
	case SemanticTexCoord:
		return gputypes.VertexFormatFloat32x2
	case SemanticTangent:
		return gputypes.VertexFormatFloat32x4
	default:
		return gputypes.VertexFormatUndefined
	}
}

// valueSize is the number of bytes the builder writes for one value of
// the semantic. Declared formats must match it.
func (s VertexSemantic) valueSize() uint64 {
	switch s {
	case SemanticPosition, SemanticNormal, SemanticColor, SemanticBitangent:
		return uint64(pack.Size(mgl32.Vec3{}))
	case SemanticTexCoord:
		return uint64(pack.Size(mgl32.Vec2{}))
	case SemanticTangent:
		return uint64(pack.Size(mgl32.Vec4{}))
	default:
		return 0
	}
}

// LayoutMode selects how vertex attributes are arranged in memory.
type LayoutMode int

const (
	// LayoutInterleaved packs all attributes of a vertex contiguously in a
	// single buffer.
	LayoutInterleaved LayoutMode = iota

	// LayoutPlanar stores each attribute in its own buffer.
	LayoutPlanar
)

// String returns the layout mode name.
func (m LayoutMode) String() string {
	switch m {
	case LayoutInterleaved:
		return "Interleaved"
	case LayoutPlanar:
		return "Planar"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// BufferType tells vertex buffers from index buffers.
type BufferType int

const (
	BufferTypeVertex BufferType = iota + 1
	BufferTypeIndex
)

// String returns the buffer type name.
func (t BufferType) String() string {
	switch t {
	case BufferTypeVertex:
		return "Vertex"
	case BufferTypeIndex:
		return "Index"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}
