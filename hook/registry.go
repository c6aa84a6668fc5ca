package hook

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory constructs a handler instance. Factories run on first use of a
// chain, never at registration or chain construction time.
type Factory func() (Handler, error)

// Container is a named group of handler factories. The container name plays
// the role of a module path in a handler reference: "audit.Recorder" selects
// member "Recorder" from the container registered as "audit".
type Container map[string]Factory

// Registry maps container names to handler factories. Containers are
// registered explicitly at process startup; references are resolved against
// the registry lazily on first use of a chain.
type Registry struct {
	mu         sync.RWMutex
	containers map[string]Container
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		containers: make(map[string]Container),
	}
}

// Register adds the members of a container under the given name. Registering
// the same container name again merges members; later registrations win on
// member-name collisions.
func (r *Registry) Register(name string, c Container) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.containers[name]
	if !ok {
		existing = make(Container, len(c))
		r.containers[name] = existing
	}
	for member, factory := range c {
		existing[member] = factory
	}
}

// RegisterMember adds a single factory to a container, creating the
// container if needed.
func (r *Registry) RegisterMember(container, member string, f Factory) {
	r.Register(container, Container{member: f})
}

// Lookup returns the container registered under the given name.
func (r *Registry) Lookup(name string) (Container, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.containers[name]
	return c, ok
}

// Containers returns the names of all registered containers, sorted.
func (r *Registry) Containers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.containers))
	for name := range r.containers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves a fully qualified reference string to a handler instance.
//
// The reference must contain at least one dot: everything before the last
// dot names the container, the final segment names the member. A bare name
// fails before any container lookup. An unregistered container is a
// load failure; a registered container without the member is a
// configuration error naming both parts. The member's factory is invoked
// and its handler (or error) returned.
func (r *Registry) Resolve(ref string) (Handler, error) {
	idx := strings.LastIndex(ref, ".")
	if idx <= 0 {
		return nil, &ResolveError{Ref: ref, Err: ErrBareReference}
	}

	container, member := ref[:idx], ref[idx+1:]

	c, ok := r.Lookup(container)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrContainerNotFound, container)
	}

	factory, ok := c[member]
	if !ok {
		return nil, &ResolveError{Ref: ref, Container: container, Member: member, Err: ErrUnknownMember}
	}

	h, err := factory()
	if err != nil {
		return nil, fmt.Errorf("constructing handler %q: %w", ref, err)
	}
	if h == nil {
		return nil, &ResolveError{Ref: ref, Err: ErrNilHandler}
	}
	return h, nil
}

// defaultRegistry is the process-wide registry used when a Composite is not
// given an explicit one.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a container to the process-wide registry.
func Register(name string, c Container) {
	defaultRegistry.Register(name, c)
}

// Resolve resolves a reference against the process-wide registry.
func Resolve(ref string) (Handler, error) {
	return defaultRegistry.Resolve(ref)
}
