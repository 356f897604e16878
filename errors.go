package geometry

import "errors"

// Layout declaration errors. They are recorded by the Layout on the first
// failing declaration and returned by Layout.Err and every constructor.
var (
	// ErrDuplicateSemantic is returned when a semantic is declared twice.
	ErrDuplicateSemantic = errors.New("geometry: semantic already declared")

	// ErrInvalidSemantic is returned for a semantic outside the supported set.
	ErrInvalidSemantic = errors.New("geometry: invalid vertex semantic")

	// ErrInvalidFormat is returned when an attribute is declared with an
	// undefined or unknown vertex format.
	ErrInvalidFormat = errors.New("geometry: invalid vertex format")

	// ErrPlanarBindingCardinality is returned when a planar binding does not
	// carry exactly one attribute.
	ErrPlanarBindingCardinality = errors.New("geometry: planar binding must hold exactly one attribute")
)

// Construction errors.
var (
	// ErrNilLayout is returned when a constructor receives a nil layout.
	ErrNilLayout = errors.New("geometry: layout is nil")

	// ErrNilMesh is returned when a mesh constructor receives a nil mesh.
	ErrNilMesh = errors.New("geometry: mesh is nil")

	// ErrUnsupportedTopology is returned for topologies other than
	// triangle lists.
	ErrUnsupportedTopology = errors.New("geometry: unsupported primitive topology")

	// ErrInvalidIndexFormat is returned for an index format other than
	// undefined, uint16 or uint32.
	ErrInvalidIndexFormat = errors.New("geometry: invalid index format")

	// ErrNoAttributes is returned when a layout declares no attributes.
	ErrNoAttributes = errors.New("geometry: layout declares no vertex attributes")

	// ErrInconsistentBindings is returned when the binding table does not
	// match the layout mode.
	ErrInconsistentBindings = errors.New("geometry: inconsistent vertex bindings")

	// ErrFormatSizeMismatch is returned when a declared format's byte size
	// differs from the size of the value written for its semantic.
	ErrFormatSizeMismatch = errors.New("geometry: format size does not match attribute value size")

	// ErrIndexOverflow is returned when a mesh has more vertices than the
	// layout's index format can address.
	ErrIndexOverflow = errors.New("geometry: vertex count exceeds index format range")
)
