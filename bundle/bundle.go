// Package bundle defines the per-request state passed to resource hooks.
//
// A Bundle travels with a single resource operation. The hosting framework
// owns it and populates its fields as the operation progresses: for a detail
// read the target object is set before serialization and the serialized data
// only after. Handlers may read the bundle and mutate it in place, but must
// not retain it beyond the call.
package bundle

import (
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ObjectList is the authorization-filtered, ordered collection of domain
// objects relevant to the current operation. Handlers treat it as read-only.
type ObjectList []any

// Len returns the number of objects in the list.
func (l ObjectList) Len() int {
	return len(l)
}

// IsEmpty returns true if the list contains no objects.
func (l ObjectList) IsEmpty() bool {
	return len(l) == 0
}

// Bundle is the mutable request-state holder carried through a hook chain.
type Bundle struct {
	// ID uniquely identifies the request this bundle belongs to.
	ID string

	// Object is the target domain object for detail operations.
	// Nil for plain list bundles.
	Object any

	// Meta is free-form scratch space for coordination between handlers
	// within a single request.
	Meta map[string]any

	// data is the serialized JSON representation of the object or response
	// payload. Empty until the host populates it.
	data []byte
}

// New creates an empty bundle with a fresh request ID.
func New() *Bundle {
	return &Bundle{
		ID:   uuid.NewString(),
		Meta: make(map[string]any),
	}
}

// NewWithObject creates a bundle carrying a target object, as the host does
// for detail operations.
func NewWithObject(obj any) *Bundle {
	b := New()
	b.Object = obj
	return b
}

// Data returns the serialized JSON payload. May be empty depending on which
// extension point is firing.
func (b *Bundle) Data() []byte {
	return b.data
}

// SetData replaces the serialized JSON payload.
func (b *Bundle) SetData(data []byte) {
	b.data = data
}

// HasData returns true if a serialized payload is present.
func (b *Bundle) HasData() bool {
	return len(b.data) > 0
}

// Get returns the value at a gjson path within the serialized payload.
func (b *Bundle) Get(path string) gjson.Result {
	return gjson.GetBytes(b.data, path)
}

// Set writes a value at an sjson path within the serialized payload,
// mutating the bundle in place.
func (b *Bundle) Set(path string, value any) error {
	data, err := sjson.SetBytes(b.data, path, value)
	if err != nil {
		return err
	}
	b.data = data
	return nil
}

// Delete removes the value at an sjson path within the serialized payload.
func (b *Bundle) Delete(path string) error {
	data, err := sjson.DeleteBytes(b.data, path)
	if err != nil {
		return err
	}
	b.data = data
	return nil
}
