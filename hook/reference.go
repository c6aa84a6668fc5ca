package hook

// Reference identifies a handler in a chain configuration: either an
// already-built handler instance or a fully qualified path string to be
// resolved against a registry on first use.
type Reference struct {
	handler Handler
	path    string
}

// HandlerRef wraps a concrete handler instance as a reference. It resolves
// to itself.
func HandlerRef(h Handler) Reference {
	return Reference{handler: h}
}

// PathRef wraps a fully qualified path string ("container.Member") as a
// deferred reference. Malformed paths are rejected at first resolution, not
// here; chain configuration stays inert until a chain actually runs.
func PathRef(path string) Reference {
	return Reference{path: path}
}

// IsPath returns true if the reference is a deferred path string.
func (r Reference) IsPath() bool {
	return r.handler == nil
}

// String returns the path for deferred references and a fixed marker for
// instance references.
func (r Reference) String() string {
	if r.handler != nil {
		return "<handler instance>"
	}
	return r.path
}

// resolve returns the handler the reference identifies, consulting the
// registry for deferred paths.
func (r Reference) resolve(reg *Registry) (Handler, error) {
	if r.handler != nil {
		return r.handler, nil
	}
	return reg.Resolve(r.path)
}
