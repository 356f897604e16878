package geometry

// CreateOption configures a Geometry during construction.
//
// Example:
//
//	g, err := geometry.New(geometry.InterleavedU16().AddNormal(),
//		geometry.WithLabel("terrain"),
//		geometry.WithCapacity(4096, 6*4096))
type CreateOption func(*createOptions)

// createOptions holds optional configuration for Geometry creation.
type createOptions struct {
	label          string
	vertexCapacity int
	indexCapacity  int
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []CreateOption) createOptions {
	var o createOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLabel names the geometry in log output.
func WithLabel(label string) CreateOption {
	return func(o *createOptions) {
		o.label = label
	}
}

// WithCapacity pre-sizes the buffers for the given number of vertices and
// indices. It is a hint: buffers still grow past it on demand.
// Negative values are ignored.
func WithCapacity(vertices, indices int) CreateOption {
	return func(o *createOptions) {
		o.vertexCapacity = max(vertices, 0)
		o.indexCapacity = max(indices, 0)
	}
}
