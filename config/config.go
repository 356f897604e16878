// Package config reads vertex layout declarations from YAML or TOML files.
//
// A layout file names the layout mode, the index format, the primitive
// topology and the attributes in declaration order:
//
//	layout: planar
//	index: uint16
//	topology: triangle-list
//	attributes:
//	  - semantic: position
//	  - semantic: texcoord
//	    format: float32x2
//
// Names are matched case-insensitively, ignoring '-', '_' and spaces, so
// "TriangleList", "triangle-list" and "triangle_list" are equivalent.
// Format names are the [gputypes.VertexFormat] names. An omitted format
// selects the semantic's default format.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/geometry"
)

// maxFileSize bounds the size of a layout file accepted by Load.
const maxFileSize = 1 << 20

var (
	// ErrUnknownFileType is returned for file extensions other than
	// .yaml, .yml and .toml.
	ErrUnknownFileType = errors.New("config: unknown file type")

	// ErrFileTooLarge is returned by Load for files over 1 MiB.
	ErrFileTooLarge = errors.New("config: file too large")

	// ErrUnknownMode is returned for a layout mode other than interleaved or planar.
	ErrUnknownMode = errors.New("config: unknown layout mode")

	// ErrUnknownIndex is returned for an unrecognized index format name.
	ErrUnknownIndex = errors.New("config: unknown index format")

	// ErrUnknownTopology is returned for an unrecognized primitive topology name.
	ErrUnknownTopology = errors.New("config: unknown topology")

	// ErrUnknownSemantic is returned for an unrecognized attribute semantic.
	ErrUnknownSemantic = errors.New("config: unknown semantic")

	// ErrUnknownFormat is returned for an unrecognized vertex format name.
	ErrUnknownFormat = errors.New("config: unknown vertex format")
)

// AttributeConfig is one attribute entry of a layout file.
type AttributeConfig struct {
	Semantic string `yaml:"semantic" toml:"semantic"`
	Format   string `yaml:"format,omitempty" toml:"format,omitempty"`
}

// LayoutFile is the decoded form of a layout file.
type LayoutFile struct {
	Mode       string            `yaml:"layout" toml:"layout"`
	Index      string            `yaml:"index,omitempty" toml:"index,omitempty"`
	Topology   string            `yaml:"topology,omitempty" toml:"topology,omitempty"`
	Attributes []AttributeConfig `yaml:"attributes" toml:"attributes"`
}

// Load reads and decodes the layout file at path. The decoder is chosen
// by the file extension.
func Load(path string) (*LayoutFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a layout file. ext selects the decoder and may be given
// with or without the leading dot. Unknown keys are rejected.
func Parse(data []byte, ext string) (*LayoutFile, error) {
	var f LayoutFile
	switch fileType(ext) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parsing yaml: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("config: parsing toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileType, ext)
	}
	return &f, nil
}

// Marshal encodes f in the file type named by ext.
func (f *LayoutFile) Marshal(ext string) ([]byte, error) {
	switch fileType(ext) {
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return nil, fmt.Errorf("config: encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("config: encoding yaml: %w", err)
		}
		return buf.Bytes(), nil
	case "toml":
		data, err := toml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("config: encoding toml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFileType, ext)
	}
}

// Layout builds the layout the file declares. Declaration errors reported
// by the geometry package are returned wrapped.
func (f *LayoutFile) Layout() (*geometry.Layout, error) {
	mode, err := parseMode(f.Mode)
	if err != nil {
		return nil, err
	}
	index, err := parseIndex(f.Index)
	if err != nil {
		return nil, err
	}
	topology, err := parseTopology(f.Topology)
	if err != nil {
		return nil, err
	}

	l := geometry.NewLayout(mode).IndexType(index).Topology(topology)
	for i, a := range f.Attributes {
		s, err := parseSemantic(a.Semantic)
		if err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i, err)
		}
		format := s.DefaultFormat()
		if a.Format != "" {
			if format, err = parseFormat(a.Format); err != nil {
				return nil, fmt.Errorf("attribute %d (%v): %w", i, s, err)
			}
		}
		l.AddAttribute(s, format)
	}
	if err := l.Err(); err != nil {
		return nil, fmt.Errorf("layout file: %w", err)
	}
	return l, nil
}

// FromLayout describes l as a layout file.
func FromLayout(l *geometry.Layout) *LayoutFile {
	f := &LayoutFile{
		Mode:     strings.ToLower(l.Mode().String()),
		Index:    "none",
		Topology: l.PrimitiveTopology().String(),
	}
	if idx := l.IndexFormat(); idx != gputypes.IndexFormatUndefined {
		f.Index = idx.String()
	}
	for _, a := range l.Attributes() {
		f.Attributes = append(f.Attributes, AttributeConfig{
			Semantic: a.Semantic.String(),
			Format:   a.Format.String(),
		})
	}
	return f
}

func fileType(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// normalize folds case and drops separators.
func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

func parseMode(name string) (geometry.LayoutMode, error) {
	switch normalize(name) {
	case "", "interleaved":
		return geometry.LayoutInterleaved, nil
	case "planar":
		return geometry.LayoutPlanar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

func parseIndex(name string) (gputypes.IndexFormat, error) {
	switch normalize(name) {
	case "", "none", "undefined":
		return gputypes.IndexFormatUndefined, nil
	case "u16", "uint16":
		return gputypes.IndexFormatUint16, nil
	case "u32", "uint32":
		return gputypes.IndexFormatUint32, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIndex, name)
}

func parseTopology(name string) (gputypes.PrimitiveTopology, error) {
	n := normalize(name)
	if n == "" {
		return gputypes.PrimitiveTopologyTriangleList, nil
	}
	for t := gputypes.PrimitiveTopologyTriangleList; t <= gputypes.PrimitiveTopologyTriangleStrip; t++ {
		if normalize(t.String()) == n {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
}

func parseSemantic(name string) (geometry.VertexSemantic, error) {
	n := normalize(name)
	if n == "uv" {
		return geometry.SemanticTexCoord, nil
	}
	for _, s := range geometry.Semantics() {
		if normalize(s.String()) == n {
			return s, nil
		}
	}
	return geometry.SemanticUndefined, fmt.Errorf("%w: %q", ErrUnknownSemantic, name)
}

func parseFormat(name string) (gputypes.VertexFormat, error) {
	n := normalize(name)
	for f := gputypes.VertexFormatUint8x2; f <= gputypes.VertexFormatUnorm1010102; f++ {
		if normalize(f.String()) == n {
			return f, nil
		}
	}
	return gputypes.VertexFormatUndefined, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
