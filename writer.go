package geometry

import (
	"github.com/gogpu/geometry/internal/pack"
	"github.com/gogpu/geometry/mesh"
)

// vertexWriter places vertex data for one layout mode. The geometry picks
// an implementation once at construction.
type vertexWriter interface {
	// appendVertex writes every declared attribute of v and returns the
	// index of the new vertex.
	appendVertex(g *Geometry, v *mesh.TriMeshVertexData) uint32

	// attributeBuffer returns the buffer that accepts single values of s,
	// or nil when s cannot be appended on its own.
	attributeBuffer(g *Geometry, s VertexSemantic) *Buffer

	// vertexCount returns the number of complete vertices written.
	vertexCount(g *Geometry) uint32
}

// appendSemantic packs the value of semantic s from v onto dst.
func appendSemantic(dst []byte, v *mesh.TriMeshVertexData, s VertexSemantic) []byte {
	switch s {
	case SemanticPosition:
		return pack.Append(dst, v.Position)
	case SemanticNormal:
		return pack.Append(dst, v.Normal)
	case SemanticColor:
		return pack.Append(dst, v.Color)
	case SemanticTangent:
		return pack.Append(dst, v.Tangent)
	case SemanticBitangent:
		return pack.Append(dst, v.Bitangent)
	case SemanticTexCoord:
		return pack.Append(dst, v.TexCoord)
	}
	return dst
}

// interleavedWriter concatenates all attributes of a vertex, in
// declaration order, into buffer 0.
type interleavedWriter struct {
	semantics []VertexSemantic
}

func newInterleavedWriter(l *Layout) interleavedWriter {
	attrs := l.Attributes()
	w := interleavedWriter{semantics: make([]VertexSemantic, len(attrs))}
	for i, a := range attrs {
		w.semantics[i] = a.Semantic
	}
	return w
}

func (w interleavedWriter) appendVertex(g *Geometry, v *mesh.TriMeshVertexData) uint32 {
	b := &g.vertexBuffers[0]
	n := b.ElementCount()
	for _, s := range w.semantics {
		b.data = appendSemantic(b.data, v, s)
	}
	return n
}

// Interleaved attributes are only written as whole vertices.
func (interleavedWriter) attributeBuffer(*Geometry, VertexSemantic) *Buffer { return nil }

func (interleavedWriter) vertexCount(g *Geometry) uint32 {
	return g.vertexBuffers[0].ElementCount()
}

// planarWriter appends each attribute to its own buffer.
type planarWriter struct {
	slots []planarSlot

	// counter is the buffer whose element count is the vertex count:
	// the position buffer when declared, otherwise the first buffer.
	counter int
}

type planarSlot struct {
	semantic VertexSemantic
	buffer   int
}

func newPlanarWriter(l *Layout, index map[VertexSemantic]int) planarWriter {
	w := planarWriter{}
	for _, a := range l.Attributes() {
		w.slots = append(w.slots, planarSlot{semantic: a.Semantic, buffer: index[a.Semantic]})
	}
	if i, ok := index[SemanticPosition]; ok {
		w.counter = i
	}
	return w
}

func (w planarWriter) appendVertex(g *Geometry, v *mesh.TriMeshVertexData) uint32 {
	n := w.vertexCount(g)
	for _, sl := range w.slots {
		b := &g.vertexBuffers[sl.buffer]
		b.data = appendSemantic(b.data, v, sl.semantic)
	}
	return n
}

func (planarWriter) attributeBuffer(g *Geometry, s VertexSemantic) *Buffer {
	i, ok := g.bufferIndex[s]
	if !ok {
		return nil
	}
	return &g.vertexBuffers[i]
}

func (w planarWriter) vertexCount(g *Geometry) uint32 {
	return g.vertexBuffers[w.counter].ElementCount()
}
