package source

// Reference is the capability a Source needs from a file reference.
// Implementations report the name and path of one filesystem location; they
// are not required to check that the location exists.
type Reference interface {
	// BaseName returns the final path segment.
	BaseName() string

	// FullPath returns the path string as the reference reports it.
	FullPath() string
}
