package mesh

import "github.com/go-gl/mathgl/mgl32"

// WireMeshVertexData is the attribute bundle of a single wire-mesh vertex.
type WireMeshVertexData struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// WireMesh is a line mesh with optional per-vertex colors.
type WireMesh struct {
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec3

	// Indices is an edge list, two vertex indices per edge.
	// Empty means the mesh has no connectivity.
	Indices []uint32
}

// VertexCount returns the number of vertices (positions) in the mesh.
func (m *WireMesh) VertexCount() int { return len(m.Positions) }

// Indexed reports whether the mesh carries explicit edge indices.
func (m *WireMesh) Indexed() bool { return len(m.Indices) > 0 }

// HasColors reports whether the mesh carries per-vertex colors.
func (m *WireMesh) HasColors() bool { return len(m.Colors) > 0 }

// EdgeCount returns the number of complete edges.
func (m *WireMesh) EdgeCount() int {
	if m.Indexed() {
		return len(m.Indices) / 2
	}
	return len(m.Positions) / 2
}

// Edge returns the vertex indices of edge i.
// ok is false if i is out of range.
func (m *WireMesh) Edge(i int) (v0, v1 uint32, ok bool) {
	if i < 0 || i >= m.EdgeCount() {
		return 0, 0, false
	}
	if m.Indexed() {
		return m.Indices[2*i], m.Indices[2*i+1], true
	}
	base := uint32(2 * i)
	return base, base + 1, true
}

// VertexData gathers the attribute bundle of vertex i.
func (m *WireMesh) VertexData(i int) WireMeshVertexData {
	var v WireMeshVertexData
	if i < 0 {
		return v
	}
	if i < len(m.Positions) {
		v.Position = m.Positions[i]
	}
	if i < len(m.Colors) {
		v.Color = m.Colors[i]
	}
	return v
}

// AppendVertex adds a vertex and returns its index.
func (m *WireMesh) AppendVertex(v WireMeshVertexData, opts WireMeshOptions) uint32 {
	n := uint32(len(m.Positions))
	m.Positions = append(m.Positions, v.Position)
	if opts.VertexColors {
		m.Colors = append(m.Colors, v.Color)
	}
	return n
}

// AppendEdge adds an edge over existing vertices.
func (m *WireMesh) AppendEdge(v0, v1 uint32) {
	m.Indices = append(m.Indices, v0, v1)
}

// Unindexed returns a copy of m where every edge owns its two vertices.
func (m *WireMesh) Unindexed() *WireMesh {
	out := &WireMesh{}
	opts := WireMeshOptions{VertexColors: m.HasColors()}
	for i := 0; i < m.EdgeCount(); i++ {
		v0, v1, _ := m.Edge(i)
		out.AppendVertex(m.VertexData(int(v0)), opts)
		out.AppendVertex(m.VertexData(int(v1)), opts)
	}
	return out
}
