// Package geometry builds CPU-side vertex and index buffers for upload to a
// graphics device.
//
// # Overview
//
// A [Layout] declares which vertex attributes a geometry has, their
// [gputypes.VertexFormat], whether they are interleaved in one buffer or
// stored planar (one buffer per attribute), the index format and the
// primitive topology. A [Geometry] owns the byte buffers and exposes append
// methods that place each value at the offset the layout implies.
//
// # Quick Start
//
//	layout := geometry.PlanarU16().AddTexCoord()
//
//	g, err := geometry.New(layout)
//	if err != nil {
//		return err
//	}
//	g.AppendTriangle(v0, v1, v2)
//
//	for i := 0; i < g.VertexBufferCount(); i++ {
//		upload(g.VertexBuffer(i).Data())
//	}
//	upload(g.IndexBuffer().Data())
//
// Geometries can also be built straight from a [mesh.TriMesh] or
// [mesh.WireMesh], either with a caller-provided layout ([NewWithTriMesh])
// or with one derived from the streams the mesh carries ([NewFromTriMesh]).
//
// # Layouts
//
// Attributes get shader locations in declaration order. In interleaved
// layouts every attribute lives in binding 0 and offsets accumulate; in
// planar layouts each attribute has its own binding at offset 0.
// [Layout.BufferLayouts] returns the matching [gputypes.VertexBufferLayout]
// slice for render pipeline creation.
//
// # Appending
//
// Whole-vertex appends ([Geometry.AppendVertexData], [Geometry.AppendTriangle],
// [Geometry.AppendEdge]) write every declared attribute and ignore the rest.
// Single-attribute appends such as [Geometry.AppendColor] only act on planar
// layouts, and only for declared semantics; otherwise they do nothing. This
// lets generic conversion code call every appender unconditionally.
//
// Index appends narrow to 16 bits for [gputypes.IndexFormatUint16] and do
// nothing when the layout has no index format.
//
// # Byte Order
//
// Values are written little-endian, float vectors component by component,
// with no padding between attributes.
package geometry
