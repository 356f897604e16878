package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TriMeshOptions selects which streams a generated triangle mesh carries.
// Positions are always generated.
type TriMeshOptions struct {
	Indices      bool // emit triangle indices; otherwise vertices are expanded per triangle
	VertexColors bool
	Normals      bool
	TexCoords    bool
	Tangents     bool // tangents and bitangents
}

// WireMeshOptions selects which streams a generated wire mesh carries.
type WireMeshOptions struct {
	Indices      bool
	VertexColors bool
}

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// normalColor maps a unit normal into the [0, 1] color cube.
func normalColor(n mgl32.Vec3) mgl32.Vec3 {
	return n.Add(mgl32.Vec3{1, 1, 1}).Mul(0.5)
}

// appendQuad adds a four-vertex face centered at c, spanning ±halfT along
// the tangent and ±halfB along the bitangent, wound counter-clockwise when
// viewed from the normal side.
func appendQuad(m *TriMesh, c, n, t mgl32.Vec3, halfT, halfB float32, opts TriMeshOptions) {
	b := n.Cross(t)
	corners := [4]struct{ s, u, v float32 }{
		{-1, 0, 1},
		{1, 1, 1},
		{1, 1, 0},
		{-1, 0, 0},
	}
	signB := [4]float32{-1, -1, 1, 1}

	base := uint32(len(m.Positions))
	for i, k := range corners {
		p := c.Add(t.Mul(k.s * halfT)).Add(b.Mul(signB[i] * halfB))
		m.AppendVertex(TriMeshVertexData{
			Position:  p,
			Color:     normalColor(n),
			Normal:    n,
			TexCoord:  mgl32.Vec2{k.u, k.v},
			Tangent:   t.Vec4(1),
			Bitangent: b,
		}, opts)
	}
	m.AppendTriangle(base, base+1, base+2)
	m.AppendTriangle(base, base+2, base+3)
}

func finishTriMesh(m *TriMesh, opts TriMeshOptions) *TriMesh {
	if opts.Indices {
		return m
	}
	return m.Unindexed()
}

// NewPlane creates a plane in the XZ plane facing +Y.
func NewPlane(width, depth float32, opts TriMeshOptions) *TriMesh {
	m := &TriMesh{}
	appendQuad(m, mgl32.Vec3{}, axisY, axisX, width/2, depth/2, opts)
	return finishTriMesh(m, opts)
}

// NewCube creates an axis-aligned cube centered at the origin with
// four vertices per face, so each face has flat normals.
func NewCube(size float32, opts TriMeshOptions) *TriMesh {
	h := size / 2
	faces := [6]struct{ n, t mgl32.Vec3 }{
		{axisX, axisZ.Mul(-1)},
		{axisX.Mul(-1), axisZ},
		{axisY, axisX},
		{axisY.Mul(-1), axisX},
		{axisZ, axisX},
		{axisZ.Mul(-1), axisX.Mul(-1)},
	}

	m := &TriMesh{}
	for _, f := range faces {
		appendQuad(m, f.n.Mul(h), f.n, f.t, h, h, opts)
	}
	return finishTriMesh(m, opts)
}

// NewSphere creates a UV sphere. slices and stacks are clamped to
// at least 3 and 2.
func NewSphere(radius float32, slices, stacks int, opts TriMeshOptions) *TriMesh {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	m := &TriMesh{}
	for i := 0; i <= stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		sinT, cosT := math.Sincos(theta)
		for j := 0; j <= slices; j++ {
			phi := 2 * math.Pi * float64(j) / float64(slices)
			sinP, cosP := math.Sincos(phi)

			n := mgl32.Vec3{float32(sinT * cosP), float32(cosT), float32(sinT * sinP)}
			t := mgl32.Vec3{float32(-sinP), 0, float32(cosP)}
			m.AppendVertex(TriMeshVertexData{
				Position:  n.Mul(radius),
				Color:     normalColor(n),
				Normal:    n,
				TexCoord:  mgl32.Vec2{float32(j) / float32(slices), float32(i) / float32(stacks)},
				Tangent:   t.Vec4(1),
				Bitangent: n.Cross(t),
			}, opts)
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			m.AppendTriangle(a, b, a+1)
			m.AppendTriangle(a+1, b, b+1)
		}
	}
	return finishTriMesh(m, opts)
}

// NewWireCube creates the twelve edges of an axis-aligned cube centered
// at the origin.
func NewWireCube(size float32, opts WireMeshOptions) *WireMesh {
	h := size / 2
	m := &WireMesh{}
	for i := 0; i < 8; i++ {
		// Corner i sits at +h on the axes whose bit is set and takes the
		// matching RGB cube corner as its color.
		var c mgl32.Vec3
		for axis := range 3 {
			if i&(1<<axis) != 0 {
				c[axis] = 1
			}
		}
		m.AppendVertex(WireMeshVertexData{
			Position: c.Mul(2 * h).Sub(mgl32.Vec3{h, h, h}),
			Color:    c,
		}, opts)
	}
	for i := uint32(0); i < 8; i++ {
		for _, bit := range [3]uint32{1, 2, 4} {
			if i&bit == 0 {
				m.AppendEdge(i, i|bit)
			}
		}
	}
	if opts.Indices {
		return m
	}
	return m.Unindexed()
}

// NewWireGrid creates a square grid of lines in the XZ plane.
// divisions is clamped to at least 1.
func NewWireGrid(size float32, divisions int, opts WireMeshOptions) *WireMesh {
	divisions = max(divisions, 1)
	h := size / 2
	step := size / float32(divisions)

	xColor := mgl32.Vec3{0.8, 0.2, 0.2}
	zColor := mgl32.Vec3{0.2, 0.2, 0.8}

	m := &WireMesh{}
	line := func(a, b, color mgl32.Vec3) {
		v0 := m.AppendVertex(WireMeshVertexData{Position: a, Color: color}, opts)
		v1 := m.AppendVertex(WireMeshVertexData{Position: b, Color: color}, opts)
		m.AppendEdge(v0, v1)
	}
	for k := 0; k <= divisions; k++ {
		c := -h + float32(k)*step
		line(mgl32.Vec3{-h, 0, c}, mgl32.Vec3{h, 0, c}, xColor)
		line(mgl32.Vec3{c, 0, -h}, mgl32.Vec3{c, 0, h}, zColor)
	}
	if opts.Indices {
		return m
	}
	return m.Unindexed()
}
