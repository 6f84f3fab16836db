// Package assets resolves texture and tileset ids to handles for the
// renderer. The generation core never fails on a missing asset: an
// unresolved id is logged and substituted with the default handle.
package assets

// Handle identifies a registered texture or tileset.
type Handle int

// DefaultHandle is substituted for every unresolved id.
const DefaultHandle Handle = 0

// Resolver reports whether a texture id is loaded and returns its handle.
type Resolver interface {
	Resolve(id string) (Handle, bool)
}

// Registry is an in-memory resolver backed by explicit registration.
type Registry struct {
	handles map[string]Handle
	next    Handle
	warnf   func(format string, args ...any)
}

// NewRegistry creates an empty registry. warnf receives unresolved-id
// warnings and may be nil.
func NewRegistry(warnf func(format string, args ...any)) *Registry {
	return &Registry{
		handles: make(map[string]Handle),
		next:    DefaultHandle + 1,
		warnf:   warnf,
	}
}

// Register assigns a handle to an id, returning the existing handle if
// the id is already registered
func (r *Registry) Register(id string) Handle {
	if handle, found := r.handles[id]; found {
		return handle
	}
	handle := r.next
	r.next++
	r.handles[id] = handle
	return handle
}

// Resolve returns the handle for an id and whether it is registered
func (r *Registry) Resolve(id string) (Handle, bool) {
	handle, found := r.handles[id]
	return handle, found
}

// ResolveOrDefault returns the handle for an id, warning and substituting
// DefaultHandle when the id is not registered
func (r *Registry) ResolveOrDefault(id string) Handle {
	handle, found := r.handles[id]
	if !found {
		if r.warnf != nil {
			r.warnf("assets: texture %q not loaded, using default", id)
		}
		return DefaultHandle
	}
	return handle
}
