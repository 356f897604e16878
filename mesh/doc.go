// Package mesh holds the source meshes that feed a geometry builder.
//
// A [TriMesh] stores per-vertex attribute streams (positions, normals, colors,
// texture coordinates, tangents and bitangents) plus optional triangle-list
// connectivity. A [WireMesh] stores positions and colors plus optional
// edge-list connectivity. Streams other than positions are optional: a mesh
// either carries one value per vertex for a stream or leaves it empty.
//
// Meshes without connectivity are read as consecutive triangles (or edges):
// vertices 0, 1, 2 form the first triangle, 3, 4, 5 the second, and so on.
//
// # Generators
//
// The New* functions build common procedural shapes:
//
//	cube := mesh.NewCube(1, mesh.TriMeshOptions{Indices: true, Normals: true, TexCoords: true})
//	grid := mesh.NewWireGrid(10, 10, mesh.WireMeshOptions{Indices: true})
package mesh
