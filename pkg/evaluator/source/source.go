// Package source provides the Source value object and the helpers an
// evaluator uses to collect and order sources.
package source

// Source is a read-only view over a single file reference.
// Two sources are equal when their paths are equal, whatever reference backs them.
type Source struct {
	ref Reference
}

// New wraps ref in a Source. The reference is shared with the caller and is
// not validated.
func New(ref Reference) *Source {
	return &Source{ref: ref}
}

// Name returns the base name reported by the reference.
func (s *Source) Name() string {
	return s.ref.BaseName()
}

// Path returns the full path reported by the reference.
func (s *Source) Path() string {
	return s.ref.FullPath()
}

// Reference returns the wrapped reference.
func (s *Source) Reference() Reference {
	return s.ref
}

// String returns the source name.
func (s *Source) String() string {
	return s.Name()
}

// Equals reports whether other is a Source with the same path.
// Paths are compared literally.
func (s *Source) Equals(other any) bool {
	var o *Source
	switch v := other.(type) {
	case *Source:
		o = v
	case Source:
		o = &v
	default:
		return false
	}
	if o == nil || o.ref == nil {
		return false
	}
	return o.Path() == s.Path()
}
