package mesh

import "github.com/go-gl/mathgl/mgl32"

// TriMeshVertexData is the attribute bundle of a single triangle-mesh vertex.
// Fields the mesh does not carry are left at their zero value.
type TriMeshVertexData struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoord  mgl32.Vec2
	Tangent   mgl32.Vec4
	Bitangent mgl32.Vec3
}

// TriMesh is a triangle mesh with optional per-vertex attribute streams.
type TriMesh struct {
	Positions  []mgl32.Vec3
	Colors     []mgl32.Vec3
	Normals    []mgl32.Vec3
	TexCoords  []mgl32.Vec2
	Tangents   []mgl32.Vec4
	Bitangents []mgl32.Vec3

	// Indices is a triangle list, three vertex indices per triangle.
	// Empty means the mesh has no connectivity.
	Indices []uint32
}

// VertexCount returns the number of vertices (positions) in the mesh.
func (m *TriMesh) VertexCount() int { return len(m.Positions) }

// Indexed reports whether the mesh carries explicit triangle indices.
func (m *TriMesh) Indexed() bool { return len(m.Indices) > 0 }

// TriangleCount returns the number of complete triangles.
func (m *TriMesh) TriangleCount() int {
	if m.Indexed() {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

func (m *TriMesh) HasColors() bool     { return len(m.Colors) > 0 }
func (m *TriMesh) HasNormals() bool    { return len(m.Normals) > 0 }
func (m *TriMesh) HasTexCoords() bool  { return len(m.TexCoords) > 0 }
func (m *TriMesh) HasTangents() bool   { return len(m.Tangents) > 0 }
func (m *TriMesh) HasBitangents() bool { return len(m.Bitangents) > 0 }

// Triangle returns the vertex indices of triangle i.
// ok is false if i is out of range.
func (m *TriMesh) Triangle(i int) (v0, v1, v2 uint32, ok bool) {
	if i < 0 || i >= m.TriangleCount() {
		return 0, 0, 0, false
	}
	if m.Indexed() {
		return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2], true
	}
	base := uint32(3 * i)
	return base, base + 1, base + 2, true
}

// VertexData gathers the attribute bundle of vertex i. Streams that are
// missing or shorter than i leave the corresponding field zero.
func (m *TriMesh) VertexData(i int) TriMeshVertexData {
	var v TriMeshVertexData
	if i < 0 {
		return v
	}
	if i < len(m.Positions) {
		v.Position = m.Positions[i]
	}
	if i < len(m.Colors) {
		v.Color = m.Colors[i]
	}
	if i < len(m.Normals) {
		v.Normal = m.Normals[i]
	}
	if i < len(m.TexCoords) {
		v.TexCoord = m.TexCoords[i]
	}
	if i < len(m.Tangents) {
		v.Tangent = m.Tangents[i]
	}
	if i < len(m.Bitangents) {
		v.Bitangent = m.Bitangents[i]
	}
	return v
}

// AppendVertex adds a vertex and returns its index. Only the streams
// selected by opts receive a value.
func (m *TriMesh) AppendVertex(v TriMeshVertexData, opts TriMeshOptions) uint32 {
	n := uint32(len(m.Positions))
	m.Positions = append(m.Positions, v.Position)
	if opts.VertexColors {
		m.Colors = append(m.Colors, v.Color)
	}
	if opts.Normals {
		m.Normals = append(m.Normals, v.Normal)
	}
	if opts.TexCoords {
		m.TexCoords = append(m.TexCoords, v.TexCoord)
	}
	if opts.Tangents {
		m.Tangents = append(m.Tangents, v.Tangent)
		m.Bitangents = append(m.Bitangents, v.Bitangent)
	}
	return n
}

// AppendTriangle adds a triangle over existing vertices.
func (m *TriMesh) AppendTriangle(v0, v1, v2 uint32) {
	m.Indices = append(m.Indices, v0, v1, v2)
}

// Unindexed returns a copy of m with the connectivity expanded: every
// triangle gets its own three vertices and Indices is empty.
func (m *TriMesh) Unindexed() *TriMesh {
	out := &TriMesh{}
	opts := TriMeshOptions{
		VertexColors: m.HasColors(),
		Normals:      m.HasNormals(),
		TexCoords:    m.HasTexCoords(),
		Tangents:     m.HasTangents() || m.HasBitangents(),
	}
	for i := 0; i < m.TriangleCount(); i++ {
		v0, v1, v2, _ := m.Triangle(i)
		out.AppendVertex(m.VertexData(int(v0)), opts)
		out.AppendVertex(m.VertexData(int(v1)), opts)
		out.AppendVertex(m.VertexData(int(v2)), opts)
	}
	return out
}
