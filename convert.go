package geometry

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/geometry/mesh"
)

// maxUint16Vertices is the number of vertices 16-bit indices can address.
const maxUint16Vertices = math.MaxUint16 + 1

// fitIndexFormat returns the narrowest index format that addresses
// vertexCount vertices.
func fitIndexFormat(vertexCount int) gputypes.IndexFormat {
	if vertexCount <= maxUint16Vertices {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}

// LayoutForTriMesh derives an interleaved layout declaring exactly the
// streams m carries, in canonical order: position, normal, color, tangent,
// bitangent, texcoord. Indexed meshes get the narrowest index format that
// fits their vertex count; meshes without connectivity get none.
func LayoutForTriMesh(m *mesh.TriMesh) *Layout {
	l := NewLayout(LayoutInterleaved)
	if m.VertexCount() > 0 {
		l.AddPosition()
	}
	if m.HasNormals() {
		l.AddNormal()
	}
	if m.HasColors() {
		l.AddColor()
	}
	if m.HasTangents() {
		l.AddTangent()
	}
	if m.HasBitangents() {
		l.AddBitangent()
	}
	if m.HasTexCoords() {
		l.AddTexCoord()
	}
	if m.Indexed() {
		l.IndexType(fitIndexFormat(m.VertexCount()))
	}
	return l
}

// LayoutForWireMesh derives an interleaved layout declaring the streams m
// carries (position, then color). Edges are written as index pairs; the
// topology stays the triangle-list default and is metadata only.
func LayoutForWireMesh(m *mesh.WireMesh) *Layout {
	l := NewLayout(LayoutInterleaved)
	if m.VertexCount() > 0 {
		l.AddPosition()
	}
	if m.HasColors() {
		l.AddColor()
	}
	if m.Indexed() {
		l.IndexType(fitIndexFormat(m.VertexCount()))
	}
	return l
}

// NewWithTriMesh creates a geometry for layout and fills it from m.
//
// With an indexed layout the mesh vertices are written in order followed
// by the triangle indices. Without one, every triangle writes its three
// vertices. Declared attributes the mesh does not carry are written as
// zeros.
func NewWithTriMesh(layout *Layout, m *mesh.TriMesh, opts ...CreateOption) (*Geometry, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	o := buildOptions(append([]CreateOption{
		WithCapacity(m.VertexCount(), 3*m.TriangleCount()),
	}, opts...))

	g, err := newGeometry(layout, o)
	if err != nil {
		return nil, err
	}
	if err := g.loadTriMesh(m); err != nil {
		return nil, err
	}
	g.logCreated()
	return g, nil
}

// NewWithWireMesh creates a geometry for layout and fills it from m, with
// the same rules as NewWithTriMesh applied to edges.
func NewWithWireMesh(layout *Layout, m *mesh.WireMesh, opts ...CreateOption) (*Geometry, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	o := buildOptions(append([]CreateOption{
		WithCapacity(m.VertexCount(), 2*m.EdgeCount()),
	}, opts...))

	g, err := newGeometry(layout, o)
	if err != nil {
		return nil, err
	}
	if err := g.loadWireMesh(m); err != nil {
		return nil, err
	}
	g.logCreated()
	return g, nil
}

// NewFromTriMesh creates a geometry with the layout LayoutForTriMesh
// derives from m.
func NewFromTriMesh(m *mesh.TriMesh, opts ...CreateOption) (*Geometry, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	return NewWithTriMesh(LayoutForTriMesh(m), m, opts...)
}

// NewFromWireMesh creates a geometry with the layout LayoutForWireMesh
// derives from m.
func NewFromWireMesh(m *mesh.WireMesh, opts ...CreateOption) (*Geometry, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	return NewWithWireMesh(LayoutForWireMesh(m), m, opts...)
}

// checkIndexRange fails if the geometry will hold more vertices than its
// index format can address.
func (g *Geometry) checkIndexRange(vertexCount int) error {
	if g.layout.indexFormat == gputypes.IndexFormatUint16 && vertexCount > maxUint16Vertices {
		return fmt.Errorf("%w: %d vertices with %v indices", ErrIndexOverflow, vertexCount, g.layout.indexFormat)
	}
	return nil
}

func (g *Geometry) logMissing(has func(VertexSemantic) bool) {
	for _, a := range g.layout.Attributes() {
		if !has(a.Semantic) {
			Logger().Debug("geometry: mesh lacks declared attribute, writing zeros",
				"label", g.label, "semantic", a.Semantic)
		}
	}
}

func (g *Geometry) loadTriMesh(m *mesh.TriMesh) error {
	g.logMissing(func(s VertexSemantic) bool {
		switch s {
		case SemanticPosition:
			return m.VertexCount() > 0
		case SemanticNormal:
			return m.HasNormals()
		case SemanticColor:
			return m.HasColors()
		case SemanticTangent:
			return m.HasTangents()
		case SemanticBitangent:
			return m.HasBitangents()
		case SemanticTexCoord:
			return m.HasTexCoords()
		}
		return false
	})

	triangles := m.TriangleCount()
	if !g.indexed() {
		for i := 0; i < triangles; i++ {
			v0, v1, v2, _ := m.Triangle(i)
			g.AppendTriangle(m.VertexData(int(v0)), m.VertexData(int(v1)), m.VertexData(int(v2)))
		}
		return nil
	}

	if err := g.checkIndexRange(m.VertexCount()); err != nil {
		return err
	}
	for i := 0; i < m.VertexCount(); i++ {
		g.AppendVertexData(m.VertexData(i))
	}
	for i := 0; i < triangles; i++ {
		v0, v1, v2, _ := m.Triangle(i)
		g.AppendIndicesTriangle(v0, v1, v2)
	}
	return nil
}

func (g *Geometry) loadWireMesh(m *mesh.WireMesh) error {
	g.logMissing(func(s VertexSemantic) bool {
		switch s {
		case SemanticPosition:
			return m.VertexCount() > 0
		case SemanticColor:
			return m.HasColors()
		}
		return false
	})

	edges := m.EdgeCount()
	if !g.indexed() {
		for i := 0; i < edges; i++ {
			v0, v1, _ := m.Edge(i)
			g.AppendEdge(m.VertexData(int(v0)), m.VertexData(int(v1)))
		}
		return nil
	}

	if err := g.checkIndexRange(m.VertexCount()); err != nil {
		return err
	}
	for i := 0; i < m.VertexCount(); i++ {
		g.AppendWireVertexData(m.VertexData(i))
	}
	for i := 0; i < edges; i++ {
		v0, v1, _ := m.Edge(i)
		g.AppendIndicesEdge(v0, v1)
	}
	return nil
}
