package hook

import (
	"errors"
	"fmt"
)

// Hook system errors.
var (
	// ErrBareReference is returned when a reference string has no container
	// qualifier. References must be fully qualified ("container.Member").
	ErrBareReference = errors.New("handler reference has no container qualifier")

	// ErrContainerNotFound is returned when a reference names a container
	// that was never registered.
	ErrContainerNotFound = errors.New("hook container not registered")

	// ErrUnknownMember is returned when a registered container has no member
	// with the referenced name.
	ErrUnknownMember = errors.New("hook container has no such member")

	// ErrNilHandler is returned when a factory produces a nil handler.
	ErrNilHandler = errors.New("handler factory returned nil")

	// ErrUnknownPoint is returned when Invoke is given an invalid point.
	ErrUnknownPoint = errors.New("unknown extension point")
)

// ResolveError describes a failure to resolve a handler reference. It wraps
// one of the sentinel errors above and names the parts of the reference that
// were involved.
type ResolveError struct {
	// Ref is the full reference string as configured.
	Ref string

	// Container is the container portion of the reference, if one was
	// determined before the failure.
	Container string

	// Member is the member portion of the reference, if one was determined.
	Member string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	if e.Container != "" && e.Member != "" {
		return fmt.Sprintf("resolving %q: container %q has no member %q", e.Ref, e.Container, e.Member)
	}
	return fmt.Sprintf("resolving %q: %v", e.Ref, e.Err)
}

// Unwrap returns the underlying error.
func (e *ResolveError) Unwrap() error {
	return e.Err
}
