package geometry

import (
	"fmt"
	"slices"

	"github.com/gogpu/gputypes"
)

// VertexAttribute is one declared attribute and where it lives.
type VertexAttribute struct {
	Semantic VertexSemantic
	Format   gputypes.VertexFormat

	// Location is the shader input location, equal to the declaration order.
	Location uint32

	// Binding is the vertex buffer slot holding the attribute.
	Binding uint32

	// Offset is the byte offset of the attribute within the binding stride.
	Offset uint32
}

// VertexBinding is one vertex buffer slot and the attributes it carries.
type VertexBinding struct {
	Index      uint32
	Stride     uint32
	Attributes []VertexAttribute
}

// Layout declares the vertex attributes, layout mode, index format and
// primitive topology of a geometry. All methods return the layout for
// chaining:
//
//	l := geometry.NewLayout(geometry.LayoutPlanar).
//		IndexTypeU16().
//		AddPosition().
//		AddTexCoord()
//
// Attributes receive shader locations in declaration order. The first
// failing declaration is recorded and reported by Err and by the geometry
// constructors; later declarations are ignored.
//
// A Layout must not be modified while a Geometry is being built from it.
// Constructors take a private copy.
type Layout struct {
	mode        LayoutMode
	indexFormat gputypes.IndexFormat
	topology    gputypes.PrimitiveTopology
	bindings    []VertexBinding
	count       uint32
	err         error
}

// NewLayout starts an empty layout with the given mode, no index buffer
// and a triangle-list topology.
func NewLayout(mode LayoutMode) *Layout {
	return &Layout{
		mode:        mode,
		indexFormat: gputypes.IndexFormatUndefined,
		topology:    gputypes.PrimitiveTopologyTriangleList,
	}
}

// Interleaved returns an interleaved layout with a position attribute.
func Interleaved() *Layout { return NewLayout(LayoutInterleaved).AddPosition() }

// Planar returns a planar layout with a position attribute.
func Planar() *Layout { return NewLayout(LayoutPlanar).AddPosition() }

// InterleavedU16 returns an interleaved layout with 16-bit indices and a
// position attribute.
func InterleavedU16() *Layout { return Interleaved().IndexTypeU16() }

// InterleavedU32 returns an interleaved layout with 32-bit indices and a
// position attribute.
func InterleavedU32() *Layout { return Interleaved().IndexTypeU32() }

// PlanarU16 returns a planar layout with 16-bit indices and a position
// attribute.
func PlanarU16() *Layout { return Planar().IndexTypeU16() }

// PlanarU32 returns a planar layout with 32-bit indices and a position
// attribute.
func PlanarU32() *Layout { return Planar().IndexTypeU32() }

// IndexType sets the index format. IndexFormatUndefined disables indexing.
func (l *Layout) IndexType(f gputypes.IndexFormat) *Layout {
	l.indexFormat = f
	return l
}

// IndexTypeU16 selects 16-bit indices.
func (l *Layout) IndexTypeU16() *Layout { return l.IndexType(gputypes.IndexFormatUint16) }

// IndexTypeU32 selects 32-bit indices.
func (l *Layout) IndexTypeU32() *Layout { return l.IndexType(gputypes.IndexFormatUint32) }

// NoIndex disables the index buffer.
func (l *Layout) NoIndex() *Layout { return l.IndexType(gputypes.IndexFormatUndefined) }

// Topology sets the primitive topology recorded with the geometry.
func (l *Layout) Topology(t gputypes.PrimitiveTopology) *Layout {
	l.topology = t
	return l
}

// AddPosition declares a position attribute (default Float32x3).
func (l *Layout) AddPosition(format ...gputypes.VertexFormat) *Layout {
	return l.addDefault(SemanticPosition, format)
}

// AddNormal declares a normal attribute (default Float32x3).
func (l *Layout) AddNormal(format ...gputypes.VertexFormat) *Layout {
	return l.addDefault(SemanticNormal, format)
}

// AddColor declares a color attribute (default Float32x3).
func (l *Layout) AddColor(format ...gputypes.VertexFormat) *Layout {
	return l.addDefault(SemanticColor, format)
}

// AddTexCoord declares a texture coordinate attribute (default Float32x2).
func (l *Layout) AddTexCoord(format ...gputypes.VertexFormat) *Layout {
	return l.addDefault(SemanticTexCoord, format)
}

// AddTangent declares a tangent attribute (default Float32x4).
func (l *Layout) AddTangent(format ...gputypes.VertexFormat) *Layout {
	return l.addDefault(SemanticTangent, format)
}

// AddBitangent declares a bitangent attribute (default Float32x3).
func (l *Layout) AddBitangent(format ...gputypes.VertexFormat) *Layout {
	return l.addDefault(SemanticBitangent, format)
}

func (l *Layout) addDefault(s VertexSemantic, format []gputypes.VertexFormat) *Layout {
	f := s.DefaultFormat()
	if len(format) > 0 {
		f = format[0]
	}
	return l.AddAttribute(s, f)
}

// AddAttribute declares an attribute with an explicit format.
//
// Interleaved layouts place the attribute in binding 0 at the running end
// of the stride. Planar layouts give it a binding of its own at offset 0.
func (l *Layout) AddAttribute(s VertexSemantic, format gputypes.VertexFormat) *Layout {
	if l.err != nil {
		return l
	}
	switch {
	case !s.valid():
		l.err = fmt.Errorf("%w: %v", ErrInvalidSemantic, s)
		return l
	case format.Size() == 0:
		l.err = fmt.Errorf("%w: %v for %v", ErrInvalidFormat, format, s)
		return l
	case l.HasSemantic(s):
		l.err = fmt.Errorf("%w: %v", ErrDuplicateSemantic, s)
		return l
	}

	attr := VertexAttribute{
		Semantic: s,
		Format:   format,
		Location: l.count,
	}
	size := uint32(format.Size())

	switch l.mode {
	case LayoutPlanar:
		slot := uint32(len(l.bindings))
		attr.Binding = slot
		l.bindings = append(l.bindings, VertexBinding{
			Index:      slot,
			Stride:     size,
			Attributes: []VertexAttribute{attr},
		})
	default:
		if len(l.bindings) == 0 {
			l.bindings = append(l.bindings, VertexBinding{})
		}
		b := &l.bindings[0]
		attr.Offset = b.Stride
		b.Attributes = append(b.Attributes, attr)
		b.Stride += size
	}
	l.count++
	return l
}

// Err returns the first declaration error, if any.
func (l *Layout) Err() error { return l.err }

// Mode returns the layout mode.
func (l *Layout) Mode() LayoutMode { return l.mode }

// IndexFormat returns the index format; IndexFormatUndefined means the
// geometry has no index data.
func (l *Layout) IndexFormat() gputypes.IndexFormat { return l.indexFormat }

// PrimitiveTopology returns the recorded topology.
func (l *Layout) PrimitiveTopology() gputypes.PrimitiveTopology { return l.topology }

// AttributeCount returns the number of declared attributes.
func (l *Layout) AttributeCount() int { return int(l.count) }

// VertexBindingCount returns the number of vertex buffer slots.
func (l *Layout) VertexBindingCount() int { return len(l.bindings) }

// VertexBinding returns binding i. ok is false if i is out of range.
func (l *Layout) VertexBinding(i int) (b VertexBinding, ok bool) {
	if i < 0 || i >= len(l.bindings) {
		return VertexBinding{}, false
	}
	b = l.bindings[i]
	b.Attributes = slices.Clone(b.Attributes)
	return b, true
}

// Attributes returns all declared attributes in declaration order.
func (l *Layout) Attributes() []VertexAttribute {
	out := make([]VertexAttribute, 0, l.count)
	for _, b := range l.bindings {
		out = append(out, b.Attributes...)
	}
	slices.SortFunc(out, func(a, b VertexAttribute) int { return int(a.Location) - int(b.Location) })
	return out
}

// Attribute returns the declaration of semantic s.
func (l *Layout) Attribute(s VertexSemantic) (VertexAttribute, bool) {
	for _, b := range l.bindings {
		for _, a := range b.Attributes {
			if a.Semantic == s {
				return a, true
			}
		}
	}
	return VertexAttribute{}, false
}

// HasSemantic reports whether s has been declared.
func (l *Layout) HasSemantic(s VertexSemantic) bool {
	_, ok := l.Attribute(s)
	return ok
}

// BufferLayouts converts the bindings to the layouts a render pipeline
// expects, one per vertex buffer.
func (l *Layout) BufferLayouts() []gputypes.VertexBufferLayout {
	out := make([]gputypes.VertexBufferLayout, 0, len(l.bindings))
	for _, b := range l.bindings {
		attrs := make([]gputypes.VertexAttribute, 0, len(b.Attributes))
		for _, a := range b.Attributes {
			attrs = append(attrs, gputypes.VertexAttribute{
				Format:         a.Format,
				Offset:         uint64(a.Offset),
				ShaderLocation: a.Location,
			})
		}
		out = append(out, gputypes.VertexBufferLayout{
			ArrayStride: uint64(b.Stride),
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  attrs,
		})
	}
	return out
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	c := *l
	c.bindings = make([]VertexBinding, len(l.bindings))
	for i, b := range l.bindings {
		b.Attributes = slices.Clone(b.Attributes)
		c.bindings[i] = b
	}
	return &c
}

// validate checks everything a geometry needs before allocating buffers.
func (l *Layout) validate() error {
	if l.err != nil {
		return l.err
	}
	if l.topology != gputypes.PrimitiveTopologyTriangleList {
		return fmt.Errorf("%w: %v", ErrUnsupportedTopology, l.topology)
	}
	switch l.indexFormat {
	case gputypes.IndexFormatUndefined, gputypes.IndexFormatUint16, gputypes.IndexFormatUint32:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidIndexFormat, l.indexFormat)
	}
	if l.count == 0 {
		return ErrNoAttributes
	}

	switch l.mode {
	case LayoutInterleaved:
		if len(l.bindings) != 1 {
			return fmt.Errorf("%w: interleaved layout has %d bindings", ErrInconsistentBindings, len(l.bindings))
		}
	case LayoutPlanar:
		for _, b := range l.bindings {
			if len(b.Attributes) != 1 {
				return fmt.Errorf("%w: binding %d has %d", ErrPlanarBindingCardinality, b.Index, len(b.Attributes))
			}
		}
	default:
		return fmt.Errorf("%w: unknown layout mode %v", ErrInconsistentBindings, l.mode)
	}

	for _, b := range l.bindings {
		for _, a := range b.Attributes {
			if a.Format.Size() != a.Semantic.valueSize() {
				return fmt.Errorf("%w: %v declared as %v (%d bytes), values are %d bytes",
					ErrFormatSizeMismatch, a.Semantic, a.Format, a.Format.Size(), a.Semantic.valueSize())
			}
		}
	}
	return nil
}
