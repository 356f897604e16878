package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTriMesh_ImplicitTriangles(t *testing.T) {
	m := &TriMesh{Positions: make([]mgl32.Vec3, 7)}

	if m.Indexed() {
		t.Fatal("mesh without indices reported Indexed")
	}
	if got := m.TriangleCount(); got != 2 {
		t.Fatalf("TriangleCount() = %d, want 2", got)
	}
	v0, v1, v2, ok := m.Triangle(1)
	if !ok || v0 != 3 || v1 != 4 || v2 != 5 {
		t.Errorf("Triangle(1) = (%d, %d, %d, %v), want (3, 4, 5, true)", v0, v1, v2, ok)
	}
	if _, _, _, ok := m.Triangle(2); ok {
		t.Error("Triangle(2) should be out of range")
	}
}

func TestTriMesh_VertexDataMissingStreams(t *testing.T) {
	m := &TriMesh{
		Positions: []mgl32.Vec3{{1, 2, 3}, {4, 5, 6}},
		Normals:   []mgl32.Vec3{{0, 1, 0}},
	}

	v := m.VertexData(1)
	if v.Position != (mgl32.Vec3{4, 5, 6}) {
		t.Errorf("Position = %v, want [4 5 6]", v.Position)
	}
	if v.Normal != (mgl32.Vec3{}) {
		t.Errorf("Normal = %v, want zero for short stream", v.Normal)
	}
	if v := m.VertexData(-1); v != (TriMeshVertexData{}) {
		t.Errorf("VertexData(-1) = %v, want zero", v)
	}
}

func TestTriMesh_Unindexed(t *testing.T) {
	m := NewPlane(2, 2, TriMeshOptions{Indices: true, Normals: true})
	flat := m.Unindexed()

	if flat.Indexed() {
		t.Fatal("Unindexed() result still has indices")
	}
	if got := flat.VertexCount(); got != 6 {
		t.Errorf("VertexCount() = %d, want 6", got)
	}
	if got := len(flat.Normals); got != 6 {
		t.Errorf("len(Normals) = %d, want 6", got)
	}
	if flat.HasColors() {
		t.Error("Unindexed() invented a color stream")
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c, _ := m.Triangle(i)
		for k, src := range [3]uint32{a, b, c} {
			if flat.Positions[3*i+k] != m.Positions[src] {
				t.Errorf("triangle %d corner %d position mismatch", i, k)
			}
		}
	}
}

func TestNewCube(t *testing.T) {
	tests := []struct {
		name      string
		opts      TriMeshOptions
		vertices  int
		indices   int
		triangles int
	}{
		{"indexed", TriMeshOptions{Indices: true}, 24, 36, 12},
		{"expanded", TriMeshOptions{}, 36, 0, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCube(2, tt.opts)
			if got := m.VertexCount(); got != tt.vertices {
				t.Errorf("VertexCount() = %d, want %d", got, tt.vertices)
			}
			if got := len(m.Indices); got != tt.indices {
				t.Errorf("len(Indices) = %d, want %d", got, tt.indices)
			}
			if got := m.TriangleCount(); got != tt.triangles {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.triangles)
			}
		})
	}
}

func TestNewCube_FaceFrames(t *testing.T) {
	m := NewCube(2, TriMeshOptions{Indices: true, Normals: true, Tangents: true, TexCoords: true})

	if !m.HasNormals() || !m.HasTangents() || !m.HasBitangents() || !m.HasTexCoords() {
		t.Fatal("requested streams are missing")
	}
	if m.HasColors() {
		t.Error("colors were not requested")
	}
	for i, p := range m.Positions {
		n := m.Normals[i]
		// Every vertex lies on the face its normal points out of.
		if d := p.Dot(n); d < 0.999 || d > 1.001 {
			t.Errorf("vertex %d: position·normal = %v, want 1", i, d)
		}
		tb := m.Tangents[i].Vec3().Cross(m.Bitangents[i])
		if !tb.ApproxEqual(n) {
			t.Errorf("vertex %d: tangent×bitangent = %v, want normal %v", i, tb, n)
		}
	}
}

func TestNewSphere(t *testing.T) {
	m := NewSphere(1, 8, 4, TriMeshOptions{Indices: true, Normals: true})

	if got, want := m.VertexCount(), 9*5; got != want {
		t.Errorf("VertexCount() = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 8*4*2; got != want {
		t.Errorf("TriangleCount() = %d, want %d", got, want)
	}
	for i, p := range m.Positions {
		if l := p.Len(); l < 0.999 || l > 1.001 {
			t.Errorf("vertex %d: |p| = %v, want 1", i, l)
		}
	}
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestNewSphere_ClampsResolution(t *testing.T) {
	m := NewSphere(1, 0, 0, TriMeshOptions{Indices: true})
	if got, want := m.VertexCount(), 4*3; got != want {
		t.Errorf("VertexCount() = %d, want %d", got, want)
	}
}

func TestNewWireCube(t *testing.T) {
	m := NewWireCube(1, WireMeshOptions{Indices: true, VertexColors: true})

	if got := m.VertexCount(); got != 8 {
		t.Errorf("VertexCount() = %d, want 8", got)
	}
	if got := m.EdgeCount(); got != 12 {
		t.Errorf("EdgeCount() = %d, want 12", got)
	}
	for i := 0; i < m.EdgeCount(); i++ {
		v0, v1, ok := m.Edge(i)
		if !ok {
			t.Fatalf("Edge(%d) not ok", i)
		}
		// Cube edges are axis-aligned with length equal to the size.
		if l := m.Positions[v0].Sub(m.Positions[v1]).Len(); l < 0.999 || l > 1.001 {
			t.Errorf("edge %d length = %v, want 1", i, l)
		}
	}

	flat := NewWireCube(1, WireMeshOptions{})
	if flat.Indexed() || flat.VertexCount() != 24 || flat.HasColors() {
		t.Errorf("expanded wire cube: indexed=%v vertices=%d colors=%v",
			flat.Indexed(), flat.VertexCount(), flat.HasColors())
	}
}

func TestNewWireCube_Colors(t *testing.T) {
	tests := []struct {
		name string
		size float32
	}{
		{"unit", 1},
		{"zero", 0},
		{"negative", -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewWireCube(tt.size, WireMeshOptions{Indices: true, VertexColors: true})
			for i, c := range m.Colors {
				for axis, v := range c {
					if v != 0 && v != 1 {
						t.Fatalf("color %d = %v, want components of 0 or 1", i, c)
					}
					if want := float32((i >> axis) & 1); v != want {
						t.Errorf("color %d axis %d = %v, want %v", i, axis, v, want)
					}
				}
			}
		})
	}
	m := NewWireCube(0, WireMeshOptions{Indices: true})
	for i, p := range m.Positions {
		if p != (mgl32.Vec3{}) {
			t.Errorf("zero-size cube vertex %d = %v, want origin", i, p)
		}
	}
}

func TestNewWireGrid(t *testing.T) {
	m := NewWireGrid(4, 4, WireMeshOptions{Indices: true, VertexColors: true})

	// 5 lines along each axis, 2 vertices per line.
	if got := m.EdgeCount(); got != 10 {
		t.Errorf("EdgeCount() = %d, want 10", got)
	}
	if got := m.VertexCount(); got != 20 {
		t.Errorf("VertexCount() = %d, want 20", got)
	}
	if _, _, ok := m.Edge(10); ok {
		t.Error("Edge(10) should be out of range")
	}
	for _, p := range m.Positions {
		if p.Y() != 0 {
			t.Fatalf("grid vertex %v is off the XZ plane", p)
		}
	}
}

func TestWireMesh_VertexData(t *testing.T) {
	m := &WireMesh{Positions: []mgl32.Vec3{{1, 1, 1}}}
	v := m.VertexData(0)
	if v.Position != (mgl32.Vec3{1, 1, 1}) || v.Color != (mgl32.Vec3{}) {
		t.Errorf("VertexData(0) = %+v", v)
	}
	if v := m.VertexData(5); v != (WireMeshVertexData{}) {
		t.Errorf("VertexData(5) = %+v, want zero", v)
	}
}
