package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/geometry/internal/pack"
	"github.com/gogpu/geometry/mesh"
)

// Geometry accumulates vertex and index data in the byte layout declared
// by a Layout.
//
// Interleaved layouts own a single vertex buffer; planar layouts own one
// vertex buffer per attribute. Every append that writes a whole vertex
// grows each vertex buffer by exactly one element.
//
// A Geometry is not safe for concurrent use. Populate it from one
// goroutine, then hand it off for upload.
type Geometry struct {
	layout        *Layout
	label         string
	indexBuffer   Buffer
	vertexBuffers []Buffer
	bufferIndex   map[VertexSemantic]int
	writer        vertexWriter
}

// New creates an empty geometry for layout. The layout is copied; later
// changes to it do not affect the geometry.
func New(layout *Layout, opts ...CreateOption) (*Geometry, error) {
	g, err := newGeometry(layout, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	g.logCreated()
	return g, nil
}

func newGeometry(layout *Layout, o createOptions) (*Geometry, error) {
	if layout == nil {
		return nil, ErrNilLayout
	}
	if err := layout.validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	l := layout.Clone()
	g := &Geometry{
		layout:      l,
		label:       o.label,
		bufferIndex: make(map[VertexSemantic]int, l.AttributeCount()),
	}
	if size := l.indexFormat.Size(); size > 0 {
		g.indexBuffer = newBuffer(BufferTypeIndex, size, o.indexCapacity)
	}

	for i, b := range l.bindings {
		g.vertexBuffers = append(g.vertexBuffers, newBuffer(BufferTypeVertex, b.Stride, o.vertexCapacity))
		for _, a := range b.Attributes {
			g.bufferIndex[a.Semantic] = i
		}
	}

	switch l.mode {
	case LayoutPlanar:
		g.writer = newPlanarWriter(l, g.bufferIndex)
	default:
		g.writer = newInterleavedWriter(l)
	}
	return g, nil
}

func (g *Geometry) logCreated() {
	Logger().Debug("geometry: created",
		"label", g.label,
		"layout", g.layout.mode,
		"index", g.layout.indexFormat,
		"topology", g.layout.topology,
		"buffers", len(g.vertexBuffers),
		"vertices", g.VertexCount(),
		"indices", g.IndexCount(),
		"largest", g.LargestBufferSize(),
	)
}

// Layout returns a copy of the layout the geometry was built with.
func (g *Geometry) Layout() *Layout { return g.layout.Clone() }

// Label returns the label set with WithLabel.
func (g *Geometry) Label() string { return g.label }

// IndexFormat returns the index format; IndexFormatUndefined means the
// geometry has no index data.
func (g *Geometry) IndexFormat() gputypes.IndexFormat { return g.layout.indexFormat }

// IndexBuffer returns the index buffer. It stays empty when the geometry
// has no index data.
func (g *Geometry) IndexBuffer() *Buffer { return &g.indexBuffer }

// IndexCount returns the number of indices written.
func (g *Geometry) IndexCount() uint32 { return g.indexBuffer.ElementCount() }

// AttributeLayout returns the layout mode.
func (g *Geometry) AttributeLayout() LayoutMode { return g.layout.mode }

// PrimitiveTopology returns the recorded topology.
func (g *Geometry) PrimitiveTopology() gputypes.PrimitiveTopology { return g.layout.topology }

// VertexBindingCount returns the number of vertex bindings.
func (g *Geometry) VertexBindingCount() int { return g.layout.VertexBindingCount() }

// VertexBinding returns binding i. ok is false if i is out of range.
func (g *Geometry) VertexBinding(i int) (VertexBinding, bool) { return g.layout.VertexBinding(i) }

// BufferLayouts returns the vertex buffer layouts for pipeline creation,
// in vertex buffer order.
func (g *Geometry) BufferLayouts() []gputypes.VertexBufferLayout { return g.layout.BufferLayouts() }

// VertexBufferCount returns the number of vertex buffers.
func (g *Geometry) VertexBufferCount() int { return len(g.vertexBuffers) }

// VertexBuffer returns vertex buffer i, or nil if i is out of range.
func (g *Geometry) VertexBuffer(i int) *Buffer {
	if i < 0 || i >= len(g.vertexBuffers) {
		return nil
	}
	return &g.vertexBuffers[i]
}

// VertexBufferFor returns the vertex buffer holding semantic s, or nil if
// s was not declared.
func (g *Geometry) VertexBufferFor(s VertexSemantic) *Buffer {
	i, ok := g.bufferIndex[s]
	if !ok {
		return nil
	}
	return &g.vertexBuffers[i]
}

// VertexCount returns the number of vertices: the element count of the
// interleaved buffer, or of the position buffer in planar layouts.
func (g *Geometry) VertexCount() uint32 { return g.writer.vertexCount(g) }

// LargestBufferSize returns the size in bytes of the largest buffer,
// index buffer included.
func (g *Geometry) LargestBufferSize() uint32 {
	largest := g.indexBuffer.Size()
	for i := range g.vertexBuffers {
		largest = max(largest, g.vertexBuffers[i].Size())
	}
	return largest
}

func (g *Geometry) indexed() bool {
	return g.layout.indexFormat != gputypes.IndexFormatUndefined
}

func (g *Geometry) appendIndex(i uint32) {
	switch g.layout.indexFormat {
	case gputypes.IndexFormatUint16:
		Append(&g.indexBuffer, uint16(i))
	case gputypes.IndexFormatUint32:
		Append(&g.indexBuffer, i)
	}
}

// AppendIndicesTriangle appends three indices. 16-bit index formats keep
// the low 16 bits of each value. It does nothing if the geometry has no
// index data.
func (g *Geometry) AppendIndicesTriangle(v0, v1, v2 uint32) {
	if !g.indexed() {
		return
	}
	g.appendIndex(v0)
	g.appendIndex(v1)
	g.appendIndex(v2)
}

// AppendIndicesEdge appends two indices, with the same rules as
// AppendIndicesTriangle.
func (g *Geometry) AppendIndicesEdge(v0, v1 uint32) {
	if !g.indexed() {
		return
	}
	g.appendIndex(v0)
	g.appendIndex(v1)
}

// AppendVertexData writes one vertex and returns its index. Only declared
// attributes are written; other fields of v are ignored.
func (g *Geometry) AppendVertexData(v mesh.TriMeshVertexData) uint32 {
	return g.writer.appendVertex(g, &v)
}

// AppendWireVertexData writes one wire-mesh vertex and returns its index.
// Declared attributes a wire vertex does not carry are written as zeros.
func (g *Geometry) AppendWireVertexData(v mesh.WireMeshVertexData) uint32 {
	tv := mesh.TriMeshVertexData{Position: v.Position, Color: v.Color}
	return g.writer.appendVertex(g, &tv)
}

// AppendTriangle writes three vertices and, if the geometry is indexed,
// the triangle's indices.
func (g *Geometry) AppendTriangle(v0, v1, v2 mesh.TriMeshVertexData) {
	n0 := g.AppendVertexData(v0)
	n1 := g.AppendVertexData(v1)
	n2 := g.AppendVertexData(v2)
	g.AppendIndicesTriangle(n0, n1, n2)
}

// AppendEdge writes two vertices and, if the geometry is indexed, the
// edge's indices.
func (g *Geometry) AppendEdge(v0, v1 mesh.WireMeshVertexData) {
	n0 := g.AppendWireVertexData(v0)
	n1 := g.AppendWireVertexData(v1)
	g.AppendIndicesEdge(n0, n1)
}

// appendAttribute writes a single value to the buffer of s. It reports
// false, writing nothing, for interleaved layouts and undeclared semantics.
func appendAttribute[T pack.Value](g *Geometry, s VertexSemantic, v T) (uint32, bool) {
	b := g.writer.attributeBuffer(g, s)
	if b == nil {
		return 0, false
	}
	n := b.ElementCount()
	Append(b, v)
	return n, true
}

// AppendPosition appends a position in planar layouts and returns its
// element index. It does nothing and returns false in interleaved layouts
// or when position is not declared.
//
// The single-attribute appends below follow the same rules. Keeping the
// planar buffers in step is up to the caller.
func (g *Geometry) AppendPosition(v mgl32.Vec3) (uint32, bool) {
	return appendAttribute(g, SemanticPosition, v)
}

// AppendNormal appends a normal in planar layouts.
func (g *Geometry) AppendNormal(v mgl32.Vec3) { appendAttribute(g, SemanticNormal, v) }

// AppendColor appends a color in planar layouts.
func (g *Geometry) AppendColor(v mgl32.Vec3) { appendAttribute(g, SemanticColor, v) }

// AppendTexCoord appends a texture coordinate in planar layouts.
func (g *Geometry) AppendTexCoord(v mgl32.Vec2) { appendAttribute(g, SemanticTexCoord, v) }

// AppendTangent appends a tangent in planar layouts.
func (g *Geometry) AppendTangent(v mgl32.Vec4) { appendAttribute(g, SemanticTangent, v) }

// AppendBitangent appends a bitangent in planar layouts.
func (g *Geometry) AppendBitangent(v mgl32.Vec3) { appendAttribute(g, SemanticBitangent, v) }
