// Command geomdump builds vertex and index buffers from a generated mesh
// and prints the resulting layout and buffer statistics.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/geometry"
	"github.com/gogpu/geometry/config"
	"github.com/gogpu/geometry/mesh"
)

func main() {
	var (
		meshName   = flag.String("mesh", "cube", "mesh to build: cube, plane, sphere, wirecube or grid")
		layoutPath = flag.String("layout", "", "layout file (.yaml, .yml or .toml); derived from the mesh if empty")
		size       = flag.Float64("size", 1, "mesh size")
		segments   = flag.Int("segments", 16, "sphere slices or grid divisions")
		indexed    = flag.Bool("indexed", true, "generate indexed meshes")
		dump       = flag.Int("dump", 0, "hex dump the first N bytes of each buffer")
		emit       = flag.String("emit", "", "print the layout as a yaml or toml file and exit")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		geometry.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var layout *geometry.Layout
	if *layoutPath != "" {
		f, err := config.Load(*layoutPath)
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
		if layout, err = f.Layout(); err != nil {
			log.Fatalf("Invalid layout: %v", err)
		}
	}

	g, err := build(*meshName, float32(*size), *segments, *indexed, layout)
	if err != nil {
		log.Fatalf("Failed to build %s: %v", *meshName, err)
	}

	if *emit != "" {
		data, err := config.FromLayout(g.Layout()).Marshal(*emit)
		if err != nil {
			log.Fatalf("Failed to encode layout: %v", err)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatalf("Failed to write layout: %v", err)
		}
		return
	}

	report(g, *dump)
}

func build(name string, size float32, segments int, indexed bool, layout *geometry.Layout) (*geometry.Geometry, error) {
	triOpts := mesh.TriMeshOptions{
		Indices:      indexed,
		VertexColors: true,
		Normals:      true,
		TexCoords:    true,
		Tangents:     true,
	}
	wireOpts := mesh.WireMeshOptions{Indices: indexed, VertexColors: true}

	var (
		tri  *mesh.TriMesh
		wire *mesh.WireMesh
	)
	switch name {
	case "cube":
		tri = mesh.NewCube(size, triOpts)
	case "plane":
		tri = mesh.NewPlane(size, size, triOpts)
	case "sphere":
		tri = mesh.NewSphere(size/2, segments, segments/2, triOpts)
	case "wirecube":
		wire = mesh.NewWireCube(size, wireOpts)
	case "grid":
		wire = mesh.NewWireGrid(size, segments, wireOpts)
	default:
		return nil, fmt.Errorf("unknown mesh %q", name)
	}

	label := geometry.WithLabel(name)
	switch {
	case tri != nil && layout != nil:
		return geometry.NewWithTriMesh(layout, tri, label)
	case tri != nil:
		return geometry.NewFromTriMesh(tri, label)
	case layout != nil:
		return geometry.NewWithWireMesh(layout, wire, label)
	default:
		return geometry.NewFromWireMesh(wire, label)
	}
}

func report(g *geometry.Geometry, dump int) {
	fmt.Printf("%s: %v layout, %v, index %v\n", g.Label(), g.AttributeLayout(), g.PrimitiveTopology(), g.IndexFormat())

	for i := 0; i < g.VertexBindingCount(); i++ {
		b, _ := g.VertexBinding(i)
		fmt.Printf("binding %d: stride %d\n", b.Index, b.Stride)
		for _, a := range b.Attributes {
			fmt.Printf("  @location(%d) %-9v %-9v offset %d\n", a.Location, a.Semantic, a.Format, a.Offset)
		}
	}

	for i := 0; i < g.VertexBufferCount(); i++ {
		printBuffer(fmt.Sprintf("vertex buffer %d", i), g.VertexBuffer(i), dump)
	}
	if g.IndexFormat() != gputypes.IndexFormatUndefined {
		printBuffer("index buffer", g.IndexBuffer(), dump)
	}

	fmt.Printf("vertices %d, indices %d, largest buffer %d bytes\n",
		g.VertexCount(), g.IndexCount(), g.LargestBufferSize())
}

func printBuffer(name string, b *geometry.Buffer, dump int) {
	fmt.Printf("%s: %d bytes, %d elements of %d bytes\n", name, b.Size(), b.ElementCount(), b.ElementSize())
	if dump <= 0 {
		return
	}
	data := b.Data()
	if len(data) > dump {
		data = data[:dump]
	}
	fmt.Print(hex.Dump(data))
}
