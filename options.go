package wireframe

// GenerateOption configures a single Generate call.
//
// Example:
//
//	segs, err := wireframe.Generate(wireframe.Sphere, params,
//	    wireframe.WithSegmentPolicy(wireframe.ClampSegments))
type GenerateOption func(*generateOptions)

type generateOptions struct {
	policy SegmentPolicy
	dst    []Segment
}

func defaultOptions() generateOptions {
	return generateOptions{policy: RejectSegments}
}

// WithSegmentPolicy selects how out-of-range segment counts are handled.
// The default is RejectSegments.
func WithSegmentPolicy(p SegmentPolicy) GenerateOption {
	return func(o *generateOptions) {
		o.policy = p
	}
}

// WithBuffer makes Generate append into dst[:0] instead of allocating,
// which lets a per-frame caller reuse one slice. The returned slice may
// share dst's backing array.
func WithBuffer(dst []Segment) GenerateOption {
	return func(o *generateOptions) {
		o.dst = dst[:0]
	}
}
