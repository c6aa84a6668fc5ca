package hook

import (
	"context"

	"github.com/dshills/resthook/bundle"
)

// Handler is the capability contract for resource lifecycle hooks.
//
// Each method corresponds to one extension point and receives the
// authorization-filtered object list and the mutable request bundle. The
// object list is read-only to handlers; the bundle may be mutated in place
// but its reference must never be replaced or retained beyond the call.
//
// Which bundle fields are populated depends on the point: at pre_read_detail
// the target object is set but not yet serialized, at post_read_detail the
// serialized data is present as well.
type Handler interface {
	// Read hooks.
	PreReadList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PostReadList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PreReadDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PostReadDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error

	// Create hooks.
	PreCreateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PostCreateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error

	// Update hooks.
	PreUpdateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PostUpdateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PreUpdateList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PostUpdateList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error

	// Delete hooks.
	PreDeleteList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PostDeleteList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PreDeleteDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
	PostDeleteDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error
}

// Base is a no-op Handler for embedding. Concrete handlers embed Base and
// override only the extension points they care about. Every method returns
// nil and has no side effects.
type Base struct{}

// PreReadList implements Handler.
func (Base) PreReadList(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PostReadList implements Handler.
func (Base) PostReadList(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PreReadDetail implements Handler.
func (Base) PreReadDetail(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PostReadDetail implements Handler.
func (Base) PostReadDetail(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PreCreateDetail implements Handler.
func (Base) PreCreateDetail(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PostCreateDetail implements Handler.
func (Base) PostCreateDetail(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PreUpdateDetail implements Handler.
func (Base) PreUpdateDetail(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PostUpdateDetail implements Handler.
func (Base) PostUpdateDetail(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PreUpdateList implements Handler.
func (Base) PreUpdateList(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PostUpdateList implements Handler.
func (Base) PostUpdateList(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PreDeleteList implements Handler.
func (Base) PreDeleteList(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PostDeleteList implements Handler.
func (Base) PostDeleteList(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PreDeleteDetail implements Handler.
func (Base) PreDeleteDetail(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// PostDeleteDetail implements Handler.
func (Base) PostDeleteDetail(_ context.Context, _ bundle.ObjectList, _ *bundle.Bundle) error {
	return nil
}

// Ensure Base satisfies the contract.
var _ Handler = Base{}
